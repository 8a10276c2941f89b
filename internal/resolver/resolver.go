// Package resolver turns a detected intent plus entities into concrete data:
// knowledge-base lookups, dashboard queries and cart-item construction.
// Downstream failures never escape as errors; every path yields an Outcome
// the response layer can render.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/intent"
	"github.com/citro-voice-kernel/internal/knowledge"
)

// minEventConfidence is the floor for accepting a fuzzy event lookup that a
// pattern captured as an entity.
const minEventConfidence = 0.4

// Context carries caller state from the hosting UI.
type Context struct {
	Page          string `json:"currentPage"`
	UserID        string `json:"userId"`
	Role          string `json:"role"`
	Authenticated bool   `json:"isAuthenticated"`
}

// Outcome is the structured result of resolving one command.
type Outcome struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Page    string         `json:"currentPage"`
	Err     string         `json:"error,omitempty"`
}

func ok(data map[string]any, page string) Outcome {
	return Outcome{Success: true, Data: data, Page: page}
}

func fail(msg, page string) Outcome {
	return Outcome{Success: false, Page: page, Err: msg}
}

// Resolver performs the business lookups behind each intent.
type Resolver struct {
	kb        *knowledge.Base
	dashboard DashboardService
	events    EventService
	logger    *zap.Logger
}

// New creates a resolver. Either collaborator may be nil; the matching
// intents then fail gracefully instead of panicking.
func New(kb *knowledge.Base, dashboard DashboardService, events EventService, logger *zap.Logger) *Resolver {
	return &Resolver{
		kb:        kb,
		dashboard: dashboard,
		events:    events,
		logger:    logger.Named("resolver"),
	}
}

// Resolve dispatches on the detected intent. The action on the result is the
// intent definition's declared action and passes through untouched.
func (r *Resolver) Resolve(ctx context.Context, res intent.Result, cctx Context) Outcome {
	switch res.Intent {
	case intent.NavEvent, intent.EventDetails, intent.EventWhen, intent.EventWhere,
		intent.EventPrice, intent.EventPrize, intent.RegisterEvent:
		return r.resolveEvent(res, cctx)

	case intent.DeptEvents:
		return r.resolveDepartment(res, cctx)

	case intent.DayEvents:
		return r.resolveDay(res, cctx)

	case intent.QueryStats:
		return r.resolveStats(ctx, cctx)

	case intent.QueryUpcomingEvents:
		return r.resolveUpcoming(ctx, cctx)

	case intent.AddToCart, intent.AddCartAndCheckout:
		return r.resolveCart(ctx, res, cctx, true)

	case intent.RemoveFromCart:
		return r.resolveCart(ctx, res, cctx, false)

	default:
		// Pure navigation, small talk and static info: the reply lives in
		// the template layer and the UI reads the declared action.
		return ok(nil, cctx.Page)
	}
}

func (r *Resolver) resolveEvent(res intent.Result, cctx Context) Outcome {
	name := strings.TrimSpace(res.Entities["name"])
	if name == "" {
		return fail("Which event do you mean?", cctx.Page)
	}
	m := r.kb.FindEvent(name)
	if m == nil || m.Confidence < minEventConfidence {
		return fail(fmt.Sprintf("I could not find an event called %q.", name), cctx.Page)
	}
	return ok(map[string]any{
		"event":      m.Event,
		"confidence": m.Confidence,
	}, cctx.Page)
}

func (r *Resolver) resolveDepartment(res intent.Result, cctx Context) Outcome {
	spoken := res.Entities["dept"]
	if spoken == "" {
		spoken = res.Entities["name"]
	}
	code := r.kb.DepartmentCode(spoken)
	if code == "" {
		return fail(fmt.Sprintf("I do not know a department called %q.", spoken), cctx.Page)
	}
	events := r.kb.EventsByDepartment(code)
	return ok(map[string]any{
		"department":     code,
		"departmentName": knowledge.Departments[code],
		"events":         events,
	}, cctx.Page)
}

func (r *Resolver) resolveDay(res intent.Result, cctx Context) Outcome {
	day := parseDay(res.Entities["day"])
	if day == 0 {
		return fail("Which day do you mean? The fest runs day 1 to day 3.", cctx.Page)
	}
	events := r.kb.EventsByDay(day)
	return ok(map[string]any{
		"day":    day,
		"events": events,
	}, cctx.Page)
}

// parseDay maps spoken day references to fest days 1-3. It accepts ordinals
// as well as the calendar dates 8/9/10 the fest runs on. A spoken date like
// "the 10th" therefore resolves the same as "day 3".
func parseDay(spoken string) int {
	s := strings.ToLower(spoken)
	switch {
	case strings.Contains(s, "third"), strings.Contains(s, "last"),
		strings.Contains(s, "10"), strings.Contains(s, "3"):
		return 3
	case strings.Contains(s, "second"), strings.Contains(s, "9"),
		strings.Contains(s, "2"):
		return 2
	case strings.Contains(s, "first"), strings.Contains(s, "opening"),
		strings.Contains(s, "8"), strings.Contains(s, "1"):
		return 1
	}
	return 0
}

func (r *Resolver) resolveStats(ctx context.Context, cctx Context) Outcome {
	if !cctx.Authenticated {
		return fail("Please log in first to see your dashboard.", cctx.Page)
	}
	if r.dashboard == nil {
		return fail("Your dashboard is not available right now.", cctx.Page)
	}
	stats, err := r.dashboard.Stats(ctx, cctx.UserID)
	if err != nil {
		r.logger.Error("Dashboard stats lookup failed", zap.Error(err))
		return fail("I could not reach your dashboard right now.", cctx.Page)
	}
	return ok(map[string]any{"stats": stats}, cctx.Page)
}

func (r *Resolver) resolveUpcoming(ctx context.Context, cctx Context) Outcome {
	if !cctx.Authenticated {
		return fail("Please log in first to see your upcoming events.", cctx.Page)
	}
	if r.dashboard == nil {
		return fail("Your dashboard is not available right now.", cctx.Page)
	}
	upcoming, err := r.dashboard.UpcomingEvents(ctx, cctx.UserID)
	if err != nil {
		r.logger.Error("Upcoming events lookup failed", zap.Error(err))
		return fail("I could not reach your dashboard right now.", cctx.Page)
	}
	return ok(map[string]any{"upcoming": upcoming}, cctx.Page)
}

// resolveCart is the two-phase cart resolution: fuzzy-match the spoken name
// against the static catalog, then reconcile with the live bookable row from
// the event service. Seat checks only apply when adding.
func (r *Resolver) resolveCart(ctx context.Context, res intent.Result, cctx Context, adding bool) Outcome {
	name := strings.TrimSpace(res.Entities["name"])
	if name == "" {
		return fail("Which event should I update in your cart?", cctx.Page)
	}
	m := r.kb.FindEvent(name)
	if m == nil || m.Confidence < minEventConfidence {
		return fail(fmt.Sprintf("I could not find an event called %q.", name), cctx.Page)
	}

	if r.events == nil {
		return fail("Booking is not available right now.", cctx.Page)
	}
	rows, err := r.events.PublishedEvents(ctx, m.Event.Name, 5)
	if err != nil {
		r.logger.Error("Event service lookup failed",
			zap.String("event", m.Event.Name), zap.Error(err))
		return fail("I could not reach the booking service right now.", cctx.Page)
	}
	row := pickRow(rows, m.Event.Name)
	if row == nil {
		return fail(fmt.Sprintf("%s is not open for booking yet.", m.Event.Name), cctx.Page)
	}

	remaining := row.Seats - row.Registered
	if adding && remaining <= 0 {
		out := fail(fmt.Sprintf("Sorry, %s is sold out.", row.Title), cctx.Page)
		out.Data = map[string]any{"soldOut": true, "event": m.Event, "title": row.Title}
		return out
	}

	item := map[string]any{
		"id":       row.ID,
		"title":    row.Title,
		"price":    row.TicketPrice,
		"quantity": 1,
		"venue":    row.Venue,
	}
	if row.StartTime != "" {
		item["startTime"] = row.StartTime
	}
	if len(row.Images) > 0 {
		item["image"] = row.Images[0]
	}

	data := map[string]any{
		"cartItem":  item,
		"event":     m.Event,
		"remaining": remaining,
	}
	if res.Intent == intent.AddCartAndCheckout {
		data["checkout"] = true
	}
	return ok(data, cctx.Page)
}

// pickRow reconciles the catalog name with the service's title search,
// preferring an exact title match over a containment match.
func pickRow(rows []PublishedEvent, name string) *PublishedEvent {
	lower := strings.ToLower(name)
	var contains *PublishedEvent
	for i := range rows {
		title := strings.ToLower(rows[i].Title)
		if title == lower {
			return &rows[i]
		}
		if contains == nil && (strings.Contains(title, lower) || strings.Contains(lower, title)) {
			contains = &rows[i]
		}
	}
	return contains
}
