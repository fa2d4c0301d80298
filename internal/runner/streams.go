package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// OpenInput opens path for reading; "" and "-" mean stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runner: open input: %w", err)
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// CreateOutput creates path for writing; "" and "-" mean stdout.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("runner: create output: %w", err)
	}

	return f, nil
}

// WriteMetrics writes every family gathered from g in text exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("runner: gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("runner: write metrics: %w", err)
		}
	}

	return nil
}

// WriteMetricsFile writes the runner's registry to path. It is a no-op when
// metrics are disabled or path is empty.
func (r *Runner) WriteMetricsFile(path string) error {
	if r.registry == nil || path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("runner: create metrics file: %w", err)
	}
	if err := WriteMetrics(f, r.registry); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
