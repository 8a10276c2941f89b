package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/intent"
	"github.com/citro-voice-kernel/internal/knowledge"
	"github.com/citro-voice-kernel/internal/resolver"
)

type fakeDashboard struct {
	stats *resolver.DashboardStats
}

func (f *fakeDashboard) Stats(ctx context.Context, userID string) (*resolver.DashboardStats, error) {
	return f.stats, nil
}

func (f *fakeDashboard) UpcomingEvents(ctx context.Context, userID string) ([]resolver.UpcomingEvent, error) {
	return nil, nil
}

type fakeEvents struct {
	rows []resolver.PublishedEvent
}

func (f *fakeEvents) PublishedEvents(ctx context.Context, search string, limit int) ([]resolver.PublishedEvent, error) {
	return f.rows, nil
}

func newTestPipeline(t *testing.T, dash resolver.DashboardService, events resolver.EventService) *Pipeline {
	t.Helper()
	logger := zap.NewNop()
	kb := knowledge.NewBase(knowledge.DefaultCatalog(), logger)
	engine := intent.NewEngine(kb, logger)
	res := resolver.New(kb, dash, events, logger)
	p, err := New(DefaultConfig(), engine, res, logger)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestProcessNavigation(t *testing.T) {
	p := newTestPipeline(t, nil, nil)

	resp := p.Process(context.Background(), "dikhao events", resolver.Context{Page: "/"})
	assert.Equal(t, intent.NavEvents, resp.Intent)
	assert.Equal(t, 1.0, resp.Confidence)
	assert.Equal(t, "Here are all the events! 🎪", resp.Reply)
	require.NotNil(t, resp.Action)
	assert.Equal(t, "/events", resp.Action.Target)
}

func TestProcessHinglishEventQuestion(t *testing.T) {
	p := newTestPipeline(t, nil, nil)

	resp := p.Process(context.Background(), "codeology kab hai", resolver.Context{})
	assert.Equal(t, intent.EventWhen, resp.Intent)
	assert.Contains(t, resp.Reply, "Codeology runs on April 8, 2025")
}

func TestProcessUnknown(t *testing.T) {
	p := newTestPipeline(t, nil, nil)

	resp := p.Process(context.Background(), "asdkjasd", resolver.Context{})
	assert.Equal(t, intent.Unknown, resp.Intent)
	assert.Contains(t, resp.Reply, "didn't understand")
	assert.Nil(t, resp.Action)

	resp = p.Process(context.Background(), "   ", resolver.Context{})
	assert.Equal(t, intent.Unknown, resp.Intent)
}

func TestProcessSoldOut(t *testing.T) {
	events := &fakeEvents{rows: []resolver.PublishedEvent{{
		ID: "ev-1", Title: "Master Chef", Seats: 40, Registered: 40,
	}}}
	p := newTestPipeline(t, nil, events)

	resp := p.Process(context.Background(), "add master chief to cart", resolver.Context{})
	assert.Equal(t, intent.AddToCart, resp.Intent)
	assert.Contains(t, resp.Reply, "sold out")
	assert.Nil(t, resp.Action)
	assert.Equal(t, true, resp.Data["soldOut"])

	stats := p.Stats()
	assert.Equal(t, int64(1), stats["failed_commands"])
}

func TestProcessAuthenticatedStats(t *testing.T) {
	dash := &fakeDashboard{stats: &resolver.DashboardStats{RegisteredEvents: 2, CartItems: 1, TotalSpent: 300}}
	p := newTestPipeline(t, dash, nil)

	resp := p.Process(context.Background(), "show my stats",
		resolver.Context{UserID: "u1", Authenticated: true})
	assert.Equal(t, intent.QueryStats, resp.Intent)
	assert.Contains(t, resp.Reply, "2 events")
	assert.Contains(t, resp.Reply, "₹300")
}

func TestProcessDetectionCache(t *testing.T) {
	p := newTestPipeline(t, nil, nil)

	first := p.Process(context.Background(), "show events", resolver.Context{})
	p.detections.Wait()
	second := p.Process(context.Background(), "show events", resolver.Context{})

	assert.Equal(t, first.Intent, second.Intent)
	assert.Equal(t, first.Reply, second.Reply)

	stats := p.Stats()
	assert.Equal(t, int64(1), stats["cache_hits"])
	assert.Equal(t, int64(2), stats["total_commands"])
}

func TestStatsRecordsHistory(t *testing.T) {
	p := newTestPipeline(t, nil, nil)

	p.Process(context.Background(), "show events", resolver.Context{})
	p.Process(context.Background(), "hello", resolver.Context{})

	stats := p.Stats()
	recent := stats["recent"].([]Record)
	require.Len(t, recent, 2)
	assert.Equal(t, "show events", recent[0].Transcript)
	assert.Equal(t, intent.Greeting, recent[1].Intent)
}
