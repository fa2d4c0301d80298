// Command timetable answers earliest-arrival queries on time-dependent
// networks read from batch input files.
//
// Usage:
//
//	timetable [-config file.yaml] [-kind timetable|static|obstacle]
//	          [-input path] [-output path] [-paths] [-max-time T]
//
// Flags override TIMETABLE_* environment variables, which override the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/timetable/internal/config"
	"github.com/katalvlaran/timetable/internal/logger"
	"github.com/katalvlaran/timetable/internal/runner"
	"github.com/katalvlaran/timetable/internal/telemetry"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "timetable:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("timetable", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	kind := fs.String("kind", "", "input format: timetable, static or obstacle")
	input := fs.String("input", "", "input file (- for stdin)")
	output := fs.String("output", "", "output file (- for stdout)")
	paths := fs.Bool("paths", false, "print the node sequence after each reachable answer")
	maxTime := fs.Int64("max-time", 0, "stop searching past this time (0 = no cap)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Only explicitly set flags override lower layers.
	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kind":
			overrides["problem.kind"] = *kind
		case "input":
			overrides["input.path"] = *input
		case "output":
			overrides["output.path"] = *output
		case "paths":
			overrides["output.paths"] = *paths
		case "max-time":
			overrides["search.max_time"] = *maxTime
		case "log-level":
			overrides["log.level"] = *logLevel
		}
	})

	opts := []config.LoaderOption{config.WithOverrides(overrides)}
	if *configPath != "" {
		opts = append(opts, config.WithFile(*configPath))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return err
	}

	log, logCloser, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Init(ctx, cfg.Tracing, version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown", "error", err)
		}
	}()

	r, err := runner.New(cfg, log, tp.Tracer())
	if err != nil {
		return err
	}
	log.Info("starting", "version", version, "run_id", r.RunID())

	in, err := runner.OpenInput(cfg.Input.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := runner.CreateOutput(cfg.Output.Path)
	if err != nil {
		return err
	}

	if _, err := r.Run(ctx, in, out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return r.WriteMetricsFile(cfg.Metrics.Path)
}
