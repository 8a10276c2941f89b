// Package pipeline orchestrates the voice command flow: normalize, detect,
// confidence-gate, resolve, render. This is the only entry point the hosting
// layer calls; everything else is an internal collaborator.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/intent"
	"github.com/citro-voice-kernel/internal/normalizer"
	"github.com/citro-voice-kernel/internal/resolver"
	"github.com/citro-voice-kernel/internal/respond"
)

// gateConfidence is the floor below which commands skip the resolver and get
// an immediate low-confidence reply.
const gateConfidence = 0.4

// Config holds pipeline tuning knobs.
type Config struct {
	// DetectionCacheSize is the max number of cached detection results.
	DetectionCacheSize int64
	// HistorySize is how many recent commands the stats endpoint reports.
	HistorySize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DetectionCacheSize: 4096,
		HistorySize:        64,
	}
}

// Record is one processed command kept for the stats endpoint.
type Record struct {
	Transcript string    `json:"transcript"`
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	At         time.Time `json:"at"`
}

// Pipeline is the voice command facade. Detection is a pure function of the
// normalized transcript, so results are cached; resolver output depends on
// live seat counts and never is.
type Pipeline struct {
	engine   *intent.Engine
	resolver *resolver.Resolver
	logger   *zap.Logger

	detections *ristretto.Cache[string, intent.Result]
	history    *lru.Cache[int64, Record]

	mu            sync.Mutex
	seq           int64
	total         int64
	cacheHits     int64
	lowConfidence int64
	failures      int64
}

// New creates a pipeline.
func New(cfg Config, engine *intent.Engine, res *resolver.Resolver, logger *zap.Logger) (*Pipeline, error) {
	if cfg.DetectionCacheSize <= 0 {
		cfg.DetectionCacheSize = DefaultConfig().DetectionCacheSize
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}

	detections, err := ristretto.NewCache(&ristretto.Config[string, intent.Result]{
		NumCounters: cfg.DetectionCacheSize * 10,
		MaxCost:     cfg.DetectionCacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	history, err := lru.New[int64, Record](cfg.HistorySize)
	if err != nil {
		return nil, err
	}

	logger.Info("Voice pipeline initialized",
		zap.Int64("detection_cache_size", cfg.DetectionCacheSize),
		zap.Int("history_size", cfg.HistorySize))

	return &Pipeline{
		engine:     engine,
		resolver:   res,
		logger:     logger.Named("pipeline"),
		detections: detections,
		history:    history,
	}, nil
}

// Process runs one transcript through the full pipeline.
func (p *Pipeline) Process(ctx context.Context, transcript string, cctx resolver.Context) respond.Response {
	normalized := normalizer.Normalize(transcript)

	res := p.detect(normalized)
	p.record(normalized, res)

	p.logger.Debug("Command detected",
		zap.String("transcript", normalized),
		zap.String("intent", res.Intent),
		zap.Float64("confidence", res.Confidence))

	if res.Intent == intent.Unknown {
		return respond.Build(respond.Context{
			Transcript: normalized,
			Result:     res,
			Outcome:    resolver.Outcome{Page: cctx.Page},
		})
	}
	if res.Confidence < gateConfidence {
		p.mu.Lock()
		p.lowConfidence++
		p.mu.Unlock()
		gated := res
		gated.Intent = intent.LowConfidence
		gated.Action = nil
		return respond.Build(respond.Context{
			Transcript: normalized,
			Result:     gated,
			Outcome:    resolver.Outcome{Page: cctx.Page},
		})
	}

	outcome := p.resolver.Resolve(ctx, res, cctx)
	if !outcome.Success {
		p.mu.Lock()
		p.failures++
		p.mu.Unlock()
	}

	return respond.Build(respond.Context{
		Transcript: normalized,
		Result:     res,
		Outcome:    outcome,
	})
}

// detect classifies with a cache in front of the engine. Keyed by the
// normalized transcript since detection is deterministic over it.
func (p *Pipeline) detect(normalized string) intent.Result {
	if normalized != "" {
		if cached, found := p.detections.Get(normalized); found {
			p.mu.Lock()
			p.cacheHits++
			p.mu.Unlock()
			return cached
		}
	}
	res := p.engine.Detect(normalized)
	if normalized != "" {
		p.detections.Set(normalized, res, 1)
	}
	return res
}

func (p *Pipeline) record(normalized string, res intent.Result) {
	p.mu.Lock()
	p.total++
	p.seq++
	seq := p.seq
	p.mu.Unlock()
	p.history.Add(seq, Record{
		Transcript: normalized,
		Intent:     res.Intent,
		Confidence: res.Confidence,
		At:         time.Now(),
	})
}

// Stats reports pipeline counters and the recent command ring.
func (p *Pipeline) Stats() map[string]any {
	p.mu.Lock()
	total, hits, low, failures := p.total, p.cacheHits, p.lowConfidence, p.failures
	p.mu.Unlock()

	recent := make([]Record, 0, p.history.Len())
	for _, key := range p.history.Keys() {
		if rec, found := p.history.Get(key); found {
			recent = append(recent, rec)
		}
	}

	return map[string]any{
		"total_commands":  total,
		"cache_hits":      hits,
		"low_confidence":  low,
		"failed_commands": failures,
		"recent":          recent,
	}
}

// Close releases the detection cache.
func (p *Pipeline) Close() {
	p.detections.Close()
}
