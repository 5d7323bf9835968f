package aggregate

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/yndnr/confmerge-go/pkg/format"
	"github.com/yndnr/confmerge-go/pkg/tree"
)

// FormatResolver maps a format identifier to a parser.
type FormatResolver interface {
	Resolve(format string) (format.Parser, error)
}

// Metrics receives aggregation events.
type Metrics interface {
	SourceParsed(format string)
	SourceFailed(format string)
	DirectoryMissing()
}

type nopMetrics struct{}

func (nopMetrics) SourceParsed(string) {}
func (nopMetrics) SourceFailed(string) {}
func (nopMetrics) DirectoryMissing()   {}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithResolver sets the format resolver.
func WithResolver(r FormatResolver) Option {
	return func(a *Aggregator) {
		a.resolver = r
	}
}

// WithMerger sets the merge engine.
func WithMerger(m tree.Merger) Option {
	return func(a *Aggregator) {
		a.merger = m
	}
}

// WithFs sets the filesystem files and directories are read from.
func WithFs(fs afero.Fs) Option {
	return func(a *Aggregator) {
		a.fs = fs
	}
}

// WithIncludePaths sets the directories searched by UseIncludePath.
func WithIncludePaths(paths ...string) Option {
	return func(a *Aggregator) {
		a.includePaths = append([]string(nil), paths...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

// SourceOption tunes a single file or directory read.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	useIncludePath bool
}

// UseIncludePath resolves a relative path that does not exist as given
// against the aggregator's include paths, first match wins.
func UseIncludePath() SourceOption {
	return func(o *sourceOptions) {
		o.useIncludePath = true
	}
}

func newSourceOptions(opts []SourceOption) sourceOptions {
	var o sourceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
