// Command fanplan runs the fan activity engine over an activity snapshot
// and writes the combined priority and insights report as JSON.
//
// The snapshot is a JSON array of activities read from stdin or from the
// file named by -input. Fetching activities from a backing store is the
// caller's concern; this binary only runs the pure computation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	service "github.com/piggybong/fanplan/internal/app"
	"github.com/piggybong/fanplan/internal/config"
	"github.com/piggybong/fanplan/internal/domain/model"
	"github.com/piggybong/fanplan/internal/domain/priority"
	"github.com/piggybong/fanplan/pkg/logger"
)

const hoursPerDay = 24

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("fanplan: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	inputPath := flag.String("input", "", "path to an activities JSON file (default: stdin)")
	timeframeDays := flag.Int("timeframe", 0, "analysis window in days (default: configured timeframe)")
	flag.Parse()

	// Initialize logging before anything that might log.
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	activities, err := readActivities(*inputPath)
	if err != nil {
		return err
	}

	weights := make(map[model.Category]float64, len(cfg.CategoryWeights))
	for id, w := range cfg.CategoryWeights {
		weights[model.ParseCategory(id)] = w
	}

	timeframe := time.Duration(cfg.TimeframeDays) * hoursPerDay * time.Hour
	if *timeframeDays > 0 {
		timeframe = time.Duration(*timeframeDays) * hoursPerDay * time.Hour
	}

	engine := service.New(
		service.WithLogger(log),
		service.WithTimeframe(timeframe),
		service.WithImportanceWeights(weights, cfg.DefaultCategoryWeight),
		service.WithRuleEngine(priority.NewRuleEngine(
			priority.WithMaxHigh(cfg.MaxHighPriorities),
			priority.WithEngagementThreshold(cfg.EngagementThreshold),
		)),
	)

	report := engine.Analyze(ctx, activities)
	log.Info(ctx, "analysis complete",
		logger.Int("activities", report.Insights.TotalActivities),
		logger.Int("recommendations", len(report.Insights.Recommendations)),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// readActivities decodes the snapshot from the file or stdin.
func readActivities(path string) ([]model.Activity, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var activities []model.Activity
	if err := json.NewDecoder(r).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}
