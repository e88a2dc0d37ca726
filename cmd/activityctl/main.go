// activityctl is a small CLI for the clawdock admin API: it lists
// activity entries, prints statistics, or records a new entry.
//
// Usage:
//
//	activityctl [flags] list|stats|log
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clawdock/clawdock/internal/adapter"
	"github.com/clawdock/clawdock/models"
)

func main() {
	address := flag.String("address", "http://localhost:8888", "Admin API base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "Request timeout")
	user := flag.String("user", "", "Filter by user (list) / acting user (log)")
	activityType := flag.String("type", "", "Filter by activity type (list) / type to record (log)")
	limit := flag.Int("limit", 100, "Limit results")
	days := flag.Int("days", 7, "Days for stats")
	source := flag.String("source", "cli", "Source recorded with a log entry")
	details := flag.String("details", "", "Comma-separated key=value details for a log entry")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: activityctl [flags] list|stats|log")
		os.Exit(2)
	}

	client := adapter.NewHTTPAdminClient(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	})
	ctx := context.Background()

	var result any
	var err error
	switch flag.Arg(0) {
	case "list":
		result, err = client.ListActivities(ctx, models.ActivityFilter{
			User:  *user,
			Type:  *activityType,
			Limit: *limit,
		})
	case "stats":
		result, err = client.GetStats(ctx, *days)
	case "log":
		result, err = client.RecordActivity(ctx, *user, *activityType, *source, parseDetails(*details))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "activityctl: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "activityctl: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func parseDetails(raw string) map[string]string {
	details := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		details[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return details
}
