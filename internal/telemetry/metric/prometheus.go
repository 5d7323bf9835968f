package metric

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/yndnr/confmerge-go/pkg/format"
)

const namespace = "confmerge"

// UnknownFormat is the format label recorded for identifiers that are not
// registered, so arbitrary file extensions cannot grow the label set.
const UnknownFormat = "unknown"

// FormatChecker reports whether a format identifier is registered.
type FormatChecker interface {
	Has(format string) bool
}

type builtinChecker map[string]string

func (b builtinChecker) Has(id string) bool {
	_, ok := b[id]
	return ok
}

// Registry holds all application metrics. It satisfies format.Observer and
// aggregate.Metrics.
type Registry struct {
	registry *prometheus.Registry
	formats  FormatChecker

	FormatResolutions  *prometheus.CounterVec
	SourcesParsed      *prometheus.CounterVec
	SourceErrors       *prometheus.CounterVec
	DirectoriesMissing prometheus.Counter
}

// NewRegistry creates the metrics and registers them on a fresh registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		formats:  builtinChecker(format.BuiltinFormats()),
		FormatResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "format_resolutions_total",
			Help:      "Parsers built for a format identifier",
		}, []string{"format", "plugin"}),
		SourcesParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sources_parsed_total",
			Help:      "Configuration sources parsed successfully",
		}, []string{"format"}),
		SourceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Configuration sources that failed to resolve, read, or parse",
		}, []string{"format"}),
		DirectoriesMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directories_missing_total",
			Help:      "Directory sources that did not exist and were treated as empty",
		}),
	}

	r.registry.MustRegister(
		r.FormatResolutions,
		r.SourcesParsed,
		r.SourceErrors,
		r.DirectoriesMissing,
	)
	return r
}

// TrackFormats makes c the source of known format labels. Until it is
// called only the built-in identifiers are known.
func (r *Registry) TrackFormats(c FormatChecker) {
	r.formats = c
}

// Register adds an extra collector to the registry.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Gatherer exposes the registry for scraping or inspection.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Resolved records that a parser was built for format.
func (r *Registry) Resolved(format, plugin string) {
	r.FormatResolutions.WithLabelValues(format, plugin).Inc()
}

// SourceParsed records a successfully parsed source.
func (r *Registry) SourceParsed(format string) {
	r.SourcesParsed.WithLabelValues(r.formatLabel(format)).Inc()
}

// SourceFailed records a source that could not be used.
func (r *Registry) SourceFailed(format string) {
	r.SourceErrors.WithLabelValues(r.formatLabel(format)).Inc()
}

func (r *Registry) formatLabel(format string) string {
	if format == "" || !r.formats.Has(format) {
		return UnknownFormat
	}
	return format
}

// DirectoryMissing records a directory source that did not exist.
func (r *Registry) DirectoryMissing() {
	r.DirectoriesMissing.Inc()
}

// WriteText writes every metric in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
