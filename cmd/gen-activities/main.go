// Command gen-activities emits a synthetic fan activity snapshot as JSON,
// suitable for piping into the fanplan analyzer during demos and manual
// testing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/piggybong/fanplan/internal/synthetic"
)

const hoursPerDay = 24

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("gen-activities: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	count := flag.Int("count", 20, "number of base activities to generate")
	skew := flag.Int("concert-skew", 0, "extra concert purchases to append")
	windowDays := flag.Int("window", 30, "time span of generated timestamps in days")
	seed := flag.Int64("seed", 42, "random seed for reproducible output")
	flag.Parse()

	gen := synthetic.New(
		synthetic.WithCount(*count),
		synthetic.WithConcertSkew(*skew),
		synthetic.WithWindow(time.Duration(*windowDays)*hoursPerDay*time.Hour),
		synthetic.WithSeed(*seed),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gen.Activities(time.Now())); err != nil {
		return fmt.Errorf("encode activities: %w", err)
	}
	return nil
}
