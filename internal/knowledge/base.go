package knowledge

import (
	"strings"

	"go.uber.org/zap"
)

// Base is the in-memory knowledge base. The alias index is derived from the
// catalog exactly once in NewBase; after that everything is read-only.
type Base struct {
	events  []Event
	aliases map[string]*Event
	logger  *zap.Logger
}

// Match is a confidence-ranked event lookup result.
type Match struct {
	Event      *Event
	Confidence float64
}

// NewBase builds a knowledge base over the given catalog.
func NewBase(events []Event, logger *zap.Logger) *Base {
	b := &Base{
		events:  events,
		aliases: make(map[string]*Event, len(events)*4),
		logger:  logger.Named("knowledge"),
	}
	b.buildAliasIndex()
	b.logger.Info("Knowledge base built",
		zap.Int("events", len(b.events)),
		zap.Int("aliases", len(b.aliases)))
	return b
}

// buildAliasIndex maps full names, two-word prefix/suffix fragments and
// curated mishearings to their events.
func (b *Base) buildAliasIndex() {
	for i := range b.events {
		ev := &b.events[i]
		full := strings.ToLower(ev.Name)
		b.addAlias(full, ev)

		words := strings.Fields(full)
		if len(words) > 2 {
			b.addAlias(strings.Join(words[:2], " "), ev)
			b.addAlias(strings.Join(words[len(words)-2:], " "), ev)
		}
		for _, m := range ev.Mishearings {
			b.addAlias(strings.ToLower(m), ev)
		}
	}
}

// addAlias registers an alias unless a different event already owns it.
// First writer wins so catalog order stays deterministic.
func (b *Base) addAlias(alias string, ev *Event) {
	if alias == "" {
		return
	}
	if _, taken := b.aliases[alias]; taken {
		return
	}
	b.aliases[alias] = ev
}

// Events returns the full catalog.
func (b *Base) Events() []Event {
	return b.events
}

// FindEvent fuzzy-matches a spoken query against the catalog. Matching order:
// exact alias (1.0), substring containment (length ratio + 0.3 boost, capped
// at 1.0), then word overlap (0.85 x overlap ratio). Anything scoring below
// 0.4 is treated as no match.
func (b *Base) FindEvent(query string) *Match {
	q := cleanQuery(query)
	if q == "" {
		return nil
	}

	if ev, ok := b.aliases[q]; ok {
		return &Match{Event: ev, Confidence: 1.0}
	}

	var best *Match
	for i := range b.events {
		ev := &b.events[i]
		score := b.scoreEvent(q, ev)
		if score <= 0 {
			continue
		}
		if best == nil || score > best.Confidence {
			best = &Match{Event: ev, Confidence: score}
		}
	}

	if best == nil || best.Confidence < 0.4 {
		return nil
	}
	return best
}

// scoreEvent computes the substring / word-overlap score for one event.
func (b *Base) scoreEvent(q string, ev *Event) float64 {
	name := strings.ToLower(ev.Name)

	candidates := make([]string, 0, 1+len(ev.Mishearings))
	candidates = append(candidates, name)
	for _, m := range ev.Mishearings {
		candidates = append(candidates, strings.ToLower(m))
	}

	var best float64
	for _, cand := range candidates {
		if s := substringScore(q, cand); s > best {
			best = s
		}
	}
	if s := overlapScore(q, name); s > best {
		best = s
	}
	return best
}

// substringScore handles containment either way, scoring by length ratio
// with a fixed boost so partial names still beat loose word overlap.
func substringScore(q, name string) float64 {
	if !strings.Contains(name, q) && !strings.Contains(q, name) {
		return 0
	}
	shorter, longer := len(q), len(name)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	score := float64(shorter)/float64(longer) + 0.3
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// overlapScore is a Jaccard-style word overlap, dampened to 0.85 so it can
// never outrank a clean substring hit.
func overlapScore(q, name string) float64 {
	qWords := strings.Fields(q)
	nWords := strings.Fields(name)
	if len(qWords) == 0 || len(nWords) == 0 {
		return 0
	}

	set := make(map[string]bool, len(nWords))
	for _, w := range nWords {
		set[w] = true
	}
	shared := 0
	for _, w := range qWords {
		if set[w] {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}
	union := len(qWords) + len(nWords) - shared
	return 0.85 * float64(shared) / float64(union)
}

// EventsByDepartment returns all events owned by a department code.
func (b *Base) EventsByDepartment(code string) []Event {
	code = strings.ToUpper(strings.TrimSpace(code))
	var out []Event
	for _, ev := range b.events {
		if ev.Department == code {
			out = append(out, ev)
		}
	}
	return out
}

// EventsByDay returns all events running on fest day 1, 2 or 3.
func (b *Base) EventsByDay(day int) []Event {
	var out []Event
	for _, ev := range b.events {
		for _, d := range ev.Days {
			if d == day {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

// DepartmentCode resolves a spoken department reference to a code. Exact code
// first, then a substring of the display name, then the curated alias table.
func (b *Base) DepartmentCode(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	upper := strings.ToUpper(q)
	if _, ok := Departments[upper]; ok {
		return upper
	}

	for code, name := range Departments {
		if strings.Contains(strings.ToLower(name), q) {
			return code
		}
	}

	for _, word := range strings.Fields(q) {
		if code, ok := departmentAliases[word]; ok {
			return code
		}
	}
	return ""
}

// cleanQuery lowercases and strips punctuation for matching.
func cleanQuery(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case ',', '.', '!', '?', '\'', '"', ';', ':':
			// drop
		default:
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
