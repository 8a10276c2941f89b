// Package respond renders the final user-facing reply for each intent. Pure
// string formatting: every piece of data it touches was produced by the
// resolver, and failures render the resolver's own message.
package respond

import (
	"fmt"
	"strings"

	"github.com/citro-voice-kernel/internal/intent"
	"github.com/citro-voice-kernel/internal/knowledge"
	"github.com/citro-voice-kernel/internal/resolver"
)

// Response is what the pipeline hands back to the UI layer.
type Response struct {
	Reply      string         `json:"reply"`
	Action     *intent.Action `json:"action"`
	Data       map[string]any `json:"data"`
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
}

// Context carries everything a template may interpolate.
type Context struct {
	Transcript string
	Result     intent.Result
	Outcome    resolver.Outcome
}

type templateFunc func(Context) string

// staticReplies are intents whose reply never depends on resolver data.
var staticReplies = map[string]string{
	intent.NavHome:      "Taking you home! 🏠",
	intent.NavEvents:    "Here are all the events! 🎪",
	intent.NavDashboard: "Opening your dashboard.",
	intent.NavCart:      "Opening your cart. 🛒",
	intent.NavLogin:     "Taking you to the login page.",
	intent.NavSignup:    "Let's get you signed up!",
	intent.NavProfile:   "Opening your profile.",
	intent.NavContact:   "Here's how to reach the team.",
	intent.NavAbout:     "Here's everything about us.",
	intent.Checkout:     "Taking you to checkout. 💳",
	intent.Greeting:     "Hey there! I'm Citro, your fest assistant. Ask me about events, prices or your cart!",
	intent.Goodbye:      "Bye! See you at the fest! 👋",
	intent.Thanks:       "Happy to help! 😊",
	intent.Help: "You can ask me things like \"show events\", \"when is Codeology\", " +
		"\"add Master Chef to cart\" or \"show my stats\".",
	intent.InfoFest: "Srijan is our annual technical fest — three days of competitions, " +
		"workshops and shows across every department, April 8 to 10.",
	intent.InfoTiming: "The fest runs April 8 to 10, gates open 9:00 AM and events wrap up by 7:00 PM daily.",
	intent.FaqRefund: "Tickets are refundable until 48 hours before the event starts. " +
		"Head to your dashboard to cancel a registration.",
	intent.FaqTeamSize: "Team sizes vary per event — ask me about a specific one, " +
		"like \"team size for Hack Horizon\".",
}

// dynamicReplies interpolate resolver data.
var dynamicReplies = map[string]templateFunc{
	intent.NavEvent:            replyEventNav,
	intent.EventDetails:        replyEventDetails,
	intent.EventWhen:           replyEventWhen,
	intent.EventWhere:          replyEventWhere,
	intent.EventPrice:          replyEventPrice,
	intent.EventPrize:          replyEventPrize,
	intent.RegisterEvent:       replyRegister,
	intent.DeptEvents:          replyDeptEvents,
	intent.DayEvents:           replyDayEvents,
	intent.QueryStats:          replyStats,
	intent.QueryUpcomingEvents: replyUpcoming,
	intent.AddToCart:           replyAddToCart,
	intent.AddCartAndCheckout:  replyAddToCart,
	intent.RemoveFromCart:      replyRemoveFromCart,
}

// Build renders the response for a processed command.
func Build(ctx Context) Response {
	res := ctx.Result
	out := ctx.Outcome

	resp := Response{
		Action:     res.Action,
		Data:       out.Data,
		Intent:     res.Intent,
		Confidence: res.Confidence,
	}

	switch res.Intent {
	case intent.Unknown:
		resp.Reply = fmt.Sprintf(
			"Sorry, I didn't understand %q. Try \"show events\" or \"help\" to see what I can do.",
			ctx.Transcript)
		return resp
	case intent.LowConfidence:
		resp.Reply = fmt.Sprintf(
			"I'm not sure I heard that right — I got %q. Could you say it again?",
			ctx.Transcript)
		return resp
	}

	if !out.Success {
		resp.Reply = out.Err
		// A failed command should not trigger the declared UI action.
		resp.Action = nil
		return resp
	}

	if fn, found := dynamicReplies[res.Intent]; found {
		resp.Reply = fn(ctx)
		return resp
	}
	if reply, found := staticReplies[res.Intent]; found {
		resp.Reply = reply
		return resp
	}
	resp.Reply = "Done!"
	return resp
}

func eventFrom(ctx Context) *knowledge.Event {
	if ctx.Outcome.Data == nil {
		return nil
	}
	ev, _ := ctx.Outcome.Data["event"].(*knowledge.Event)
	return ev
}

func replyEventNav(ctx Context) string {
	if ev := eventFrom(ctx); ev != nil {
		return fmt.Sprintf("Opening %s for you!", ev.Name)
	}
	return "Opening the event page."
}

func replyEventDetails(ctx Context) string {
	if ev := eventFrom(ctx); ev != nil {
		return knowledge.Detail(ev)
	}
	return "Here's what I found."
}

func replyEventWhen(ctx Context) string {
	ev := eventFrom(ctx)
	if ev == nil {
		return "I'm not sure when that is."
	}
	return fmt.Sprintf("%s runs on %s, %s to %s.", ev.Name, ev.Date, ev.StartTime, ev.EndTime)
}

func replyEventWhere(ctx Context) string {
	ev := eventFrom(ctx)
	if ev == nil {
		return "I'm not sure where that is."
	}
	return fmt.Sprintf("%s happens at %s.", ev.Name, ev.Venue)
}

func replyEventPrice(ctx Context) string {
	ev := eventFrom(ctx)
	if ev == nil {
		return "I'm not sure what that costs."
	}
	if ev.Price == 0 {
		return fmt.Sprintf("%s is free to enter!", ev.Name)
	}
	return fmt.Sprintf("%s costs ₹%d per entry.", ev.Name, ev.Price)
}

func replyEventPrize(ctx Context) string {
	ev := eventFrom(ctx)
	if ev == nil {
		return "I'm not sure about the prize for that one."
	}
	return fmt.Sprintf("%s — prize: %s. 🏆", ev.Name, ev.Prize)
}

func replyRegister(ctx Context) string {
	ev := eventFrom(ctx)
	if ev == nil {
		return "Let's get you registered."
	}
	return fmt.Sprintf("Let's get you registered for %s!", ev.Name)
}

func replyDeptEvents(ctx Context) string {
	deptName, _ := ctx.Outcome.Data["departmentName"].(string)
	events, _ := ctx.Outcome.Data["events"].([]knowledge.Event)
	if len(events) == 0 {
		return fmt.Sprintf("No events from %s this year.", deptName)
	}
	return fmt.Sprintf("%s has %s: %s.", deptName, countNoun(len(events), "event"), joinNames(events))
}

func replyDayEvents(ctx Context) string {
	day, _ := ctx.Outcome.Data["day"].(int)
	events, _ := ctx.Outcome.Data["events"].([]knowledge.Event)
	if len(events) == 0 {
		return fmt.Sprintf("Nothing scheduled on day %d.", day)
	}
	return fmt.Sprintf("Day %d has %s: %s.", day, countNoun(len(events), "event"), joinNames(events))
}

func replyStats(ctx Context) string {
	stats, _ := ctx.Outcome.Data["stats"].(*resolver.DashboardStats)
	if stats == nil {
		return "Here are your stats."
	}
	return fmt.Sprintf("You're registered for %s, have %s in your cart and have spent ₹%d so far.",
		countNoun(stats.RegisteredEvents, "event"),
		countNoun(stats.CartItems, "item"),
		stats.TotalSpent)
}

func replyUpcoming(ctx Context) string {
	upcoming, _ := ctx.Outcome.Data["upcoming"].([]resolver.UpcomingEvent)
	if len(upcoming) == 0 {
		return "You have nothing coming up yet — browse the events page to register!"
	}
	names := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		names = append(names, u.Title)
	}
	return fmt.Sprintf("Coming up for you: %s.", capList(names))
}

func replyAddToCart(ctx Context) string {
	title := ""
	if item, found := ctx.Outcome.Data["cartItem"].(map[string]any); found {
		title, _ = item["title"].(string)
	}
	if title == "" {
		return "Added to your cart!"
	}
	if checkout, _ := ctx.Outcome.Data["checkout"].(bool); checkout {
		return fmt.Sprintf("Added %s to your cart — taking you to checkout!", title)
	}
	if remaining, found := ctx.Outcome.Data["remaining"].(int); found && remaining <= 10 {
		return fmt.Sprintf("Added %s to your cart — hurry, only %d seats left!", title, remaining)
	}
	return fmt.Sprintf("Added %s to your cart!", title)
}

func replyRemoveFromCart(ctx Context) string {
	if item, found := ctx.Outcome.Data["cartItem"].(map[string]any); found {
		if title, _ := item["title"].(string); title != "" {
			return fmt.Sprintf("Removed %s from your cart.", title)
		}
	}
	return "Removed it from your cart."
}

// joinNames lists up to three event names, folding the rest into a count.
func joinNames(events []knowledge.Event) string {
	names := make([]string, 0, len(events))
	for i := range events {
		names = append(names, events[i].Name)
	}
	return capList(names)
}

func capList(names []string) string {
	if len(names) <= 3 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:3], ", "), len(names)-3)
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
