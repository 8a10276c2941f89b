package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/knowledge"
	"github.com/citro-voice-kernel/internal/normalizer"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	kb := knowledge.NewBase(knowledge.DefaultCatalog(), zap.NewNop())
	return NewEngine(kb, zap.NewNop())
}

func TestDetectExactPattern(t *testing.T) {
	e := newTestEngine(t)

	res := e.Detect("show events")
	assert.Equal(t, NavEvents, res.Intent)
	assert.Equal(t, 1.0, res.Confidence)
	require.NotNil(t, res.Action)
	assert.Equal(t, ActionNavigate, res.Action.Type)
	assert.Equal(t, "/events", res.Action.Target)
	assert.Empty(t, res.Entities)
}

func TestDetectAfterNormalization(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		transcript string
		intent     string
		entities   map[string]string
	}{
		{"dikhao events", NavEvents, nil},
		{"register for cardiology", RegisterEvent, map[string]string{"name": "codeology"}},
		{"codeology kab hai", EventWhen, map[string]string{"name": "codeology"}},
		{"master chef kitna hai", EventPrice, map[string]string{"name": "master chef"}},
	}
	for _, tc := range cases {
		res := e.Detect(normalizer.Normalize(tc.transcript))
		assert.Equal(t, tc.intent, res.Intent, "transcript %q", tc.transcript)
		assert.GreaterOrEqual(t, res.Confidence, 0.5, "transcript %q", tc.transcript)
		for k, v := range tc.entities {
			assert.Equal(t, v, res.Entities[k], "transcript %q entity %q", tc.transcript, k)
		}
	}
}

func TestDetectEntityCapture(t *testing.T) {
	e := newTestEngine(t)

	res := e.Detect("add master chef to cart")
	assert.Equal(t, AddToCart, res.Intent)
	assert.Equal(t, "master chef", res.Entities["name"])
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res = e.Detect("buy master chef")
	assert.Equal(t, AddCartAndCheckout, res.Intent)
	assert.Equal(t, "master chef", res.Entities["name"])

	res = e.Detect("events on day 2")
	assert.Equal(t, DayEvents, res.Intent)
	assert.Equal(t, "2", res.Entities["day"])
}

func TestDetectEntityBeatsNavigationTie(t *testing.T) {
	e := newTestEngine(t)

	// both DEPT_EVENTS and NAV_EVENTS score 0.9 here; the entity-bearing
	// definition sits earlier in the table and keeps the tie
	res := e.Detect("show cse events")
	assert.Equal(t, DeptEvents, res.Intent)
	assert.Equal(t, "cse", res.Entities["dept"])
}

func TestDetectPerfectMatchBeatsEntityPattern(t *testing.T) {
	e := newTestEngine(t)

	// "what is $name" captures srijan at 0.9, but the literal INFO_FEST
	// pattern scores 1.0 and wins
	res := e.Detect("what is srijan")
	assert.Equal(t, InfoFest, res.Intent)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestDetectKnowledgeBaseFallback(t *testing.T) {
	e := newTestEngine(t)

	res := e.Detect("codeology")
	assert.Equal(t, EventDetails, res.Intent)
	assert.Equal(t, "codeology", res.Entities["name"])
	assert.InDelta(t, 0.85, res.Confidence, 0.001)
	require.NotNil(t, res.Action)
	assert.Equal(t, ActionDisplay, res.Action.Type)

	// fuzzy fallback is dampened too: "chef" matches at 0.7 via the catalog
	res = e.Detect("chef")
	assert.Equal(t, EventDetails, res.Intent)
	assert.InDelta(t, 0.7*0.85, res.Confidence, 0.001)
}

func TestDetectUnknown(t *testing.T) {
	e := newTestEngine(t)

	for _, in := range []string{"", "   ", "asdkjasd", "umm uh please"} {
		res := e.Detect(in)
		assert.Equal(t, Unknown, res.Intent, "input %q", in)
		assert.Zero(t, res.Confidence, "input %q", in)
		assert.Nil(t, res.Action, "input %q", in)
		assert.NotNil(t, res.Entities, "input %q", in)
	}
}

func TestDetectDeterministic(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{"show events", "register for codeology", "buy master chef", "blah blah"}
	for _, in := range inputs {
		first := e.Detect(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, e.Detect(in), "input %q", in)
		}
	}
}

func TestDetectConfidenceBounds(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{
		"show events please now quickly with extra words attached here",
		"register", "cart", "when", "codeology codeology codeology",
		"add to cart", "what", "events events events events",
	}
	for _, in := range inputs {
		res := e.Detect(in)
		assert.GreaterOrEqual(t, res.Confidence, 0.0, "input %q", in)
		assert.LessOrEqual(t, res.Confidence, 1.0, "input %q", in)
	}
}

func TestTokenOverlapScore(t *testing.T) {
	assert.Equal(t, 1.0, tokenOverlapScore([]string{"show", "events"}, []string{"show", "events"}))
	assert.Zero(t, tokenOverlapScore([]string{"show", "events"}, []string{"banana"}))
	assert.Zero(t, tokenOverlapScore(nil, []string{"x"}))

	// partial coverage with a longer input is penalized twice
	score := tokenOverlapScore([]string{"show", "all", "events"}, []string{"show", "events", "now", "please"})
	assert.InDelta(t, (2.0/3.0)*(0.7+0.3*3.0/4.0), score, 0.001)
}

func TestMatchEntityPattern(t *testing.T) {
	score, ents := matchEntityPattern(
		[]string{"register", "for", "$name"},
		[]string{"register", "for", "robo", "rumble"})
	assert.InDelta(t, 0.9, score, 0.001)
	assert.Equal(t, "robo rumble", ents["name"])

	// two captures never share a word
	score, ents = matchEntityPattern(
		[]string{"move", "$a", "to", "$b"},
		[]string{"move", "alpha", "beta", "to", "gamma"})
	assert.InDelta(t, 0.9, score, 0.001)
	assert.Equal(t, "alpha beta", ents["a"])
	assert.Equal(t, "gamma", ents["b"])

	// no fixed token hits means no score, even with a capture
	score, ents = matchEntityPattern(
		[]string{"$name", "details"},
		[]string{"codeology"})
	assert.Equal(t, "codeology", ents["name"])
	assert.Zero(t, score)
}
