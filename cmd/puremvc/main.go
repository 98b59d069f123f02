package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tailored-agentic-units/puremvc/facade"
	"github.com/tailored-agentic-units/puremvc/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to core config JSON file")
		cores      = flag.Int("cores", 3, "Number of independent cores to run")
		input      = flag.Int("input", 32, "Value sent to every core")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *cores < 1 {
		fmt.Fprintln(os.Stderr, "Usage: puremvc [-config <file>] -cores <n>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := facade.DefaultConfig()
	if *configFile != "" {
		loaded, err := facade.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	events := observability.NewRecordingObserver()
	observability.RegisterObserver("slog", observability.NewMultiObserver(
		observability.NewSlogObserver(logger),
		events,
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]report, *cores)
	g, ctx := errgroup.WithContext(ctx)
	for i := range *cores {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			coreCfg := cfg
			coreCfg.Key = fmt.Sprintf("%s-%d", cfg.Key, i)

			f, err := facade.NewFromConfig(&coreCfg)
			if err != nil {
				return fmt.Errorf("core %s: %w", coreCfg.Key, err)
			}
			defer facade.RemoveCore(f.Key())

			r, err := run(f, *input+i)
			if err != nil {
				return fmt.Errorf("core %s: %w", f.Key(), err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	writeReports(os.Stdout, results)

	counts := make(map[observability.EventType]int)
	for _, e := range events.Events() {
		counts[e.Type]++
	}
	if len(counts) > 0 {
		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, string(t))
		}
		sort.Strings(types)

		fmt.Println("\nEvents:")
		for _, t := range types {
			fmt.Printf("  %-20s %d\n", t, counts[observability.EventType(t)])
		}
	}
}

// writeReports prints one line per core in the order the cores were started.
func writeReports(w io.Writer, results []report) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: input=%d result=%d history=%v\n", r.Core, r.Input, r.Result, r.History)
	}
}
