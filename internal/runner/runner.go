// Package runner drives batch solving: it reads cases, runs one search per
// case and writes the answers in the order the queries were given.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/timetable/dijkstra"
	"github.com/katalvlaran/timetable/ingest"
	"github.com/katalvlaran/timetable/internal/config"
	"github.com/katalvlaran/timetable/internal/telemetry"
	"github.com/katalvlaran/timetable/metrics"
)

// Summary totals one Run.
type Summary struct {
	RunID      string
	Cases      int
	Queries    int
	Impossible int
	Elapsed    time.Duration
}

// Runner solves every case of an input stream with a shared configuration.
type Runner struct {
	cfg       *config.Config
	kind      ingest.Kind
	log       *slog.Logger
	tracer    trace.Tracer
	runID     string
	registry  *prometheus.Registry
	collector *metrics.Collector
}

// New validates the problem kind and prepares metrics when enabled.
func New(cfg *config.Config, log *slog.Logger, tracer trace.Tracer) (*Runner, error) {
	kind, err := ingest.ParseKind(cfg.Problem.Kind)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	r := &Runner{
		cfg:    cfg,
		kind:   kind,
		log:    log.With("run_id", id, "kind", string(kind)),
		tracer: tracer,
		runID:  id,
	}

	if cfg.Metrics.Enabled {
		r.registry = prometheus.NewRegistry()
		r.collector, err = metrics.NewCollector(cfg.Metrics.Namespace, r.registry)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RunID identifies this runner in logs.
func (r *Runner) RunID() string { return r.runID }

// Registry returns the metrics registry, or nil when metrics are disabled.
func (r *Runner) Registry() *prometheus.Registry { return r.registry }

// Run reads all cases from in and writes one answer line per query to out,
// followed by a blank line per case. Parse errors abort before any output.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: r.runID}

	problems, err := ingest.Read(in, r.kind)
	if err != nil {
		r.log.Error("read input", "error", err)
		return sum, err
	}
	r.log.Info("input read", "cases", len(problems))

	w := bufio.NewWriter(out)
	for i, p := range problems {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		answers, err := r.solve(ctx, i+1, p, w)
		if err != nil {
			r.log.Error("solve case", "case", i+1, "error", err)
			_ = w.Flush()
			return sum, err
		}
		sum.Cases++
		sum.Queries += len(answers)
		for _, a := range answers {
			if !a.Reachable {
				sum.Impossible++
			}
		}
	}
	if err := w.Flush(); err != nil {
		return sum, fmt.Errorf("runner: write: %w", err)
	}

	sum.Elapsed = time.Since(start)
	r.log.Info("run finished",
		"cases", sum.Cases,
		"queries", sum.Queries,
		"impossible", sum.Impossible,
		"elapsed", sum.Elapsed,
	)

	return sum, nil
}

func (r *Runner) solve(ctx context.Context, caseNo int, p ingest.Problem, w io.Writer) ([]dijkstra.Answer, error) {
	ctx, span := r.tracer.Start(ctx, "timetable.case", trace.WithAttributes(
		attribute.Int("case", caseNo),
		attribute.String("kind", string(p.Kind)),
		attribute.Int("nodes", p.Graph.NodeCount()),
		attribute.Int("edges", p.Graph.EdgeCount()),
		attribute.Int("queries", len(p.Queries)),
	))
	defer span.End()

	opts := []dijkstra.Option{dijkstra.Source(p.Source), dijkstra.WithStartTime(p.StartTime)}
	if r.cfg.Search.MaxTime > 0 {
		opts = append(opts, dijkstra.WithMaxTime(r.cfg.Search.MaxTime))
	}
	if r.collector != nil {
		opts = append(opts, dijkstra.WithRecorder(r.collector))
	}

	res, err := dijkstra.Dijkstra(p.Graph, opts...)
	if err != nil {
		err = fmt.Errorf("runner: case %d: %w", caseNo, err)
		telemetry.SetError(ctx, err)
		return nil, err
	}

	answers, err := res.Answers(p.Queries)
	if err != nil {
		err = fmt.Errorf("runner: case %d: %w", caseNo, err)
		telemetry.SetError(ctx, err)
		return nil, err
	}
	for _, a := range answers {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return nil, err
		}
		if r.cfg.Output.Paths && a.Reachable {
			if _, err := fmt.Fprintln(w, formatPath(res.Path(a.Node))); err != nil {
				return nil, err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return nil, err
	}

	st := res.Stats()
	telemetry.SetAttributes(ctx,
		attribute.Int("finalized", st.Finalized),
		attribute.Int("stale_discards", st.StaleDiscards),
	)
	if r.collector != nil {
		r.collector.CaseSolved(string(p.Kind))
	}
	r.log.Debug("case solved",
		"case", caseNo,
		"nodes", p.Graph.NodeCount(),
		"edges", p.Graph.EdgeCount(),
		"finalized", st.Finalized,
		"pops", st.Pops,
	)

	return answers, nil
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
