package intent

import (
	"strings"

	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/knowledge"
	"github.com/citro-voice-kernel/internal/normalizer"
)

// minConfidence is the floor below which the engine refuses to guess.
const minConfidence = 0.5

// kbFallbackDampening is applied to knowledge-base fallback confidence so a
// bare event-name match never outranks an explicit pattern hit.
const kbFallbackDampening = 0.85

// Result is the outcome of one detection. Confidence is always in [0, 1];
// UNKNOWN always carries confidence 0 and a nil action.
type Result struct {
	Intent     string            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Confidence float64           `json:"confidence"`
	Action     *Action           `json:"action"`
}

// Engine scores normalized input against every definition. It holds only
// immutable tables, so Detect is safe for concurrent use.
type Engine struct {
	defs   []Definition
	kb     *knowledge.Base
	logger *zap.Logger
}

// NewEngine creates an intent engine over the static dataset.
func NewEngine(kb *knowledge.Base, logger *zap.Logger) *Engine {
	return &Engine{
		defs:   Definitions(),
		kb:     kb,
		logger: logger.Named("intent"),
	}
}

func unknown() Result {
	return Result{Intent: Unknown, Entities: map[string]string{}, Confidence: 0, Action: nil}
}

// Detect classifies a normalized transcript. Deterministic: no randomness,
// no external calls.
func (e *Engine) Detect(text string) Result {
	clean := normalizer.ForIntent(text)
	if clean == "" {
		return unknown()
	}
	inTokens := tokenize(clean)
	if len(inTokens) == 0 {
		return unknown()
	}

	var (
		bestScore    float64
		bestDef      *Definition
		bestEntities map[string]string
	)

scan:
	for i := range e.defs {
		def := &e.defs[i]
		for _, pattern := range def.Patterns {
			patTokens := strings.Fields(pattern)
			var (
				score    float64
				entities map[string]string
			)
			if hasPlaceholder(patTokens) {
				score, entities = matchEntityPattern(patTokens, inTokens)
			} else {
				score = tokenOverlapScore(patTokens, inTokens)
			}
			if score > bestScore {
				bestScore, bestDef, bestEntities = score, def, entities
				if score >= 1.0 {
					break scan
				}
			}
		}
	}

	if bestScore >= minConfidence && bestDef != nil {
		if bestEntities == nil {
			bestEntities = map[string]string{}
		}
		if bestScore > 1.0 {
			bestScore = 1.0
		}
		e.logger.Debug("Intent matched",
			zap.String("intent", bestDef.ID),
			zap.Float64("confidence", bestScore))
		return Result{Intent: bestDef.ID, Entities: bestEntities, Confidence: bestScore, Action: bestDef.Action}
	}

	// Fallback: the whole utterance might just be an event name.
	if m := e.kb.FindEvent(clean); m != nil && m.Confidence >= minConfidence {
		def := Lookup(EventDetails)
		e.logger.Debug("Knowledge-base fallback",
			zap.String("event", m.Event.Name),
			zap.Float64("confidence", m.Confidence))
		return Result{
			Intent:     EventDetails,
			Entities:   map[string]string{"name": clean},
			Confidence: m.Confidence * kbFallbackDampening,
			Action:     def.Action,
		}
	}

	return unknown()
}

// tokenize splits cleaned text into words, trimming stray punctuation.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:'\"")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func hasPlaceholder(patTokens []string) bool {
	for _, t := range patTokens {
		if strings.HasPrefix(t, "$") {
			return true
		}
	}
	return false
}

// tokenOverlapScore scores a placeholder-free pattern: coverage of pattern
// tokens in the input, with a length term that penalizes noisy long inputs.
func tokenOverlapScore(patTokens, inTokens []string) float64 {
	if len(patTokens) == 0 {
		return 0
	}
	present := make(map[string]bool, len(inTokens))
	for _, t := range inTokens {
		present[t] = true
	}
	hits := 0
	for _, t := range patTokens {
		if present[t] {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	longer := len(inTokens)
	if len(patTokens) > longer {
		longer = len(patTokens)
	}
	coverage := float64(hits) / float64(len(patTokens))
	length := 0.7 + 0.3*float64(len(patTokens))/float64(longer)
	return coverage * length
}

// matchEntityPattern walks the pattern left to right. Fixed tokens must
// appear in order; the cursor consumes skipped input words so no word is
// matched twice, which also guarantees captured entities never overlap. A
// `$token` captures everything up to the next fixed token's position, or the
// rest of the input when none follows.
func matchEntityPattern(patTokens, inTokens []string) (float64, map[string]string) {
	entities := make(map[string]string)
	cursor := 0
	fixedTotal, fixedHits := 0, 0

	for i, pt := range patTokens {
		if strings.HasPrefix(pt, "$") {
			end := len(inTokens)
			if next := nextFixedToken(patTokens, i+1); next != "" {
				if pos := indexFrom(inTokens, next, cursor); pos >= 0 {
					end = pos
				}
			}
			if end > cursor {
				entities[strings.TrimPrefix(pt, "$")] = strings.Join(inTokens[cursor:end], " ")
				cursor = end
			}
			continue
		}
		fixedTotal++
		if pos := indexFrom(inTokens, pt, cursor); pos >= 0 {
			fixedHits++
			cursor = pos + 1
		}
	}

	if fixedTotal == 0 {
		return 0, entities
	}
	factor := 0.5
	if len(entities) > 0 {
		factor = 0.9
	}
	score := float64(fixedHits) / float64(fixedTotal) * factor
	if score > 1.0 {
		score = 1.0
	}
	return score, entities
}

func nextFixedToken(patTokens []string, from int) string {
	for _, t := range patTokens[from:] {
		if !strings.HasPrefix(t, "$") {
			return t
		}
	}
	return ""
}

func indexFrom(tokens []string, want string, from int) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i] == want {
			return i
		}
	}
	return -1
}
