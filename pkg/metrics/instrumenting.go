// Package metrics instruments the compile pipeline with
// prometheus/client_golang counters and histograms. Unlike a long-running
// service that exposes these over an HTTP /metrics endpoint for scraping,
// the compiler is a one-shot CLI invocation with nothing to scrape it:
// metrics are registered the same way and dumped to stderr in the
// Prometheus text exposition format at the end of a run (see DESIGN.md:
// the otel SDK and its HTTP exporter are dropped, the registry/collector
// pattern is kept).
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry is the package-level collector registry every compile-pipeline
// metric registers against.
var Registry = prometheus.NewRegistry()

var (
	// CompileDuration observes how long one full compile run takes,
	// end to end.
	CompileDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nysa_compile_duration_seconds",
		Help:    "Duration of a full compile run, in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	// ContractsCompiled counts contracts successfully lowered to target
	// source across every run in this process.
	ContractsCompiled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nysa_contracts_compiled_total",
		Help: "Total number of contracts successfully compiled.",
	})

	// LinearizationErrors counts C3 linearization failures.
	LinearizationErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nysa_linearization_errors_total",
		Help: "Total number of C3 linearization failures.",
	})
)

func init() {
	Registry.MustRegister(CompileDuration, ContractsCompiled, LinearizationErrors)
}

// Dump writes every registered metric to w in the Prometheus text
// exposition format, the same format an HTTP /metrics handler would serve.
func Dump(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric family %q: %w", mf.GetName(), err)
		}
	}
	return nil
}
