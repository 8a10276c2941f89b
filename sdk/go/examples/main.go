// Example usage of the Citro voice kernel Go client.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/citro-voice-kernel/sdk/go/citro"
)

func main() {
	client := citro.NewClient(citro.ClientConfig{
		BaseURL: "http://localhost:9100",
		Timeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		log.Fatalf("service not reachable: %v", err)
	}

	transcripts := []string{
		"dikhao events",
		"codeology kab hai",
		"add master chef to cart",
		"show my stats",
	}
	for _, transcript := range transcripts {
		resp, err := client.Command(ctx, citro.CommandRequest{
			Transcript:    transcript,
			CurrentPage:   "/",
			UserID:        "demo-user",
			Authenticated: true,
		})
		if err != nil {
			log.Fatalf("command %q failed: %v", transcript, err)
		}
		fmt.Printf("%-28s -> %s (%.2f)\n  %s\n", transcript, resp.Intent, resp.Confidence, resp.Reply)
	}

	stats, err := client.Stats(ctx)
	if err != nil {
		log.Fatalf("stats failed: %v", err)
	}
	fmt.Printf("processed %d commands, %d cache hits\n", stats.TotalCommands, stats.CacheHits)
}
