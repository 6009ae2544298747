// Package metrics exposes extraction counters and latencies to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc"
)

// Outcome labels.
const (
	OutcomeOK                  = "ok"
	OutcomeUnrecognized        = "unrecognized_institution"
	OutcomeInvalidFormat       = "invalid_format"
	OutcomeSheetNotFound       = "sheet_not_found"
	OutcomeInsufficientColumns = "insufficient_columns"
	OutcomeError               = "error"
)

// Recorder owns a private registry so several recorders can coexist in tests.
type Recorder struct {
	registry    *prometheus.Registry
	extractions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	uploads     prometheus.Counter
}

// New creates a recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fundalloc",
			Name:      "extractions_total",
			Help:      "Spreadsheet extractions by fund house and outcome.",
		}, []string{"institution", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fundalloc",
			Name:      "extraction_duration_seconds",
			Help:      "Time spent extracting one spreadsheet.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"institution"}),
		uploads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fundalloc",
			Name:      "uploaded_files_total",
			Help:      "Files received over HTTP.",
		}),
	}
	r.registry.MustRegister(
		r.extractions,
		r.duration,
		r.uploads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveExtraction implements fundalloc.Observer.
func (r *Recorder) ObserveExtraction(institution string, err error, elapsed time.Duration) {
	if institution == "" {
		institution = "unknown"
	}
	r.extractions.WithLabelValues(institution, Outcome(err)).Inc()
	r.duration.WithLabelValues(institution).Observe(elapsed.Seconds())
}

// AddUploads counts files received over HTTP.
func (r *Recorder) AddUploads(n int) {
	r.uploads.Add(float64(n))
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Outcome classifies an extraction error into a metric label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var (
		unrecognized *fundalloc.UnrecognizedInstitutionError
		sheet        *fundalloc.SheetNotFoundError
		columns      *fundalloc.InsufficientColumnsError
	)
	switch {
	case errors.As(err, &unrecognized):
		return OutcomeUnrecognized
	case errors.As(err, &sheet):
		return OutcomeSheetNotFound
	case errors.As(err, &columns):
		return OutcomeInsufficientColumns
	case errors.Is(err, fundalloc.ErrInvalidFormat):
		return OutcomeInvalidFormat
	}
	return OutcomeError
}
