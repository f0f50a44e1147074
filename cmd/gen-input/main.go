package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/me/cpusched/internal/generator"
	"github.com/me/cpusched/internal/input"
)

func main() {
	count := flag.Int("n", 10, "Number of processes")
	maxCreation := flag.Int("max-creation", 20, "Creation times fall in [0, max-creation)")
	maxDuration := flag.Int("max-duration", 10, "Durations fall in [1, max-duration]")
	maxPriority := flag.Int("max-priority", 5, "Priorities fall in [0, max-priority)")
	output := flag.String("o", "input.txt", "Output file (.yaml/.yml writes the YAML layout)")
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	params := generator.Params{
		Count:       *count,
		MaxCreation: *maxCreation,
		MaxDuration: *maxDuration,
		MaxPriority: *maxPriority,
	}
	descs, err := generator.Generate(generator.Seeded(*seed), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("generated", "processes", len(descs), "seed", *seed)

	if err := input.WriteFile(*output, descs); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d processes to %s (seed %d)\n", len(descs), *output, *seed)
}
