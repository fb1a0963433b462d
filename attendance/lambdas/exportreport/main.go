package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"tapacademy.com/attendance/attendance/export"
	"tapacademy.com/attendance/config"
)

// scratch directory used when no report bucket is configured
const localDir = "/tmp/reports"

// ParseRequest reads the export request from a scheduled event's detail.
// An empty detail exports every record as CSV.
func ParseRequest(event events.CloudWatchEvent) (export.Request, error) {
	var req export.Request
	if len(event.Detail) == 0 || string(event.Detail) == "null" {
		return req, nil
	}
	if err := json.Unmarshal(event.Detail, &req); err != nil {
		return req, fmt.Errorf("invalid event detail: %w", err)
	}
	return req, nil
}

func handler(exporter *export.Exporter) func(context.Context, events.CloudWatchEvent) (export.Result, error) {
	return func(ctx context.Context, event events.CloudWatchEvent) (export.Result, error) {
		req, err := ParseRequest(event)
		if err != nil {
			return export.Result{}, err
		}
		fmt.Printf("[INFO] exporting attendance (%s) for event %s\n", req.Format, event.ID)
		return exporter.Run(ctx, req)
	}
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	exporter, err := export.FromConfig(ctx, cfg, localDir)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(handler(exporter))
		return
	}

	res, err := handler(exporter)(ctx, events.CloudWatchEvent{ID: "local"})
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[INFO] wrote %s (%d rows)\n", res.Key, res.Rows)
}
