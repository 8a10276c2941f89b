// Load generator for the voice command endpoint. Fires concurrent transcript
// batches at a running instance and reports latency and intent hit rates.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const serverURL = "http://localhost:9100"

// LoadTestConfig configures the load test.
type LoadTestConfig struct {
	ServerURL      string
	Concurrent     int
	TotalRequests  int
	Timeout        time.Duration
	WarmupRequests int
}

// DefaultLoadTestConfig returns sensible defaults.
func DefaultLoadTestConfig() *LoadTestConfig {
	return &LoadTestConfig{
		ServerURL:      serverURL,
		Concurrent:     50,
		TotalRequests:  1000,
		Timeout:        10 * time.Second,
		WarmupRequests: 10,
	}
}

// TestResult is the outcome of a single request.
type TestResult struct {
	Intent  string
	Success bool
	Latency time.Duration
	Error   string
}

// transcripts mixes cached repeats, Hinglish, entities and garbage so the
// run exercises every pipeline branch.
var transcripts = []string{
	"show events",
	"dikhao events",
	"codeology kab hai",
	"register for cardiology",
	"add master chef to cart",
	"events on day 2",
	"show cse events",
	"what is srijan",
	"show my stats",
	"asdkjasd qwerty",
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := DefaultLoadTestConfig()
	client := &http.Client{Timeout: cfg.Timeout}

	logger.Info("Warming up", zap.Int("requests", cfg.WarmupRequests))
	for i := 0; i < cfg.WarmupRequests; i++ {
		fire(client, cfg.ServerURL, transcripts[i%len(transcripts)])
	}

	logger.Info("Starting load test",
		zap.Int("concurrent", cfg.Concurrent),
		zap.Int("total", cfg.TotalRequests))

	results := make([]TestResult, cfg.TotalRequests)
	jobs := make(chan int)
	var wg sync.WaitGroup

	start := time.Now()
	for w := 0; w < cfg.Concurrent; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fire(client, cfg.ServerURL, transcripts[i%len(transcripts)])
			}
		}()
	}
	for i := 0; i < cfg.TotalRequests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	report(logger, results, elapsed)
}

func fire(client *http.Client, baseURL, transcript string) TestResult {
	body, _ := json.Marshal(map[string]any{
		"transcript":      transcript,
		"currentPage":     "/",
		"isAuthenticated": false,
	})

	start := time.Now()
	resp, err := client.Post(baseURL+"/api/command", "application/json", bytes.NewReader(body))
	latency := time.Since(start)
	if err != nil {
		return TestResult{Latency: latency, Error: err.Error()}
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Intent string `json:"intent"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return TestResult{Latency: latency, Error: err.Error()}
	}
	return TestResult{
		Intent:  envelope.Data.Intent,
		Success: resp.StatusCode == http.StatusOK && envelope.Success,
		Latency: latency,
	}
}

func report(logger *zap.Logger, results []TestResult, elapsed time.Duration) {
	latencies := make([]time.Duration, 0, len(results))
	intents := make(map[string]int)
	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
			latencies = append(latencies, r.Latency)
			intents[r.Intent]++
		}
	}
	if len(latencies) == 0 {
		logger.Fatal("No successful requests")
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	pct := func(p float64) time.Duration {
		idx := int(p * float64(len(latencies)-1))
		return latencies[idx]
	}

	logger.Info("Load test complete",
		zap.Int("total", len(results)),
		zap.Int("succeeded", succeeded),
		zap.Duration("elapsed", elapsed),
		zap.Float64("rps", float64(len(results))/elapsed.Seconds()),
		zap.Duration("p50", pct(0.50)),
		zap.Duration("p95", pct(0.95)),
		zap.Duration("p99", pct(0.99)))

	for intent, count := range intents {
		fmt.Printf("%-24s %d\n", intent, count)
	}
}
