package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/confmerge-go/pkg/format"
)

// FormatLister reports the formats known to a resolver.
type FormatLister interface {
	Formats() []format.FormatInfo
}

// Collector reports the state of a resolver's parser cache at scrape time.
type Collector struct {
	formats FormatLister

	registered *prometheus.Desc
	cached     *prometheus.Desc
}

// NewCollector creates a collector for lister.
func NewCollector(lister FormatLister) *Collector {
	return &Collector{
		formats: lister,
		registered: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "resolver", "formats"),
			"Format identifiers registered with the resolver",
			nil, nil,
		),
		cached: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "resolver", "cached_parsers"),
			"Format identifiers whose parser has been built",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.registered
	ch <- c.cached
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	infos := c.formats.Formats()
	cached := 0
	for _, info := range infos {
		if info.Resolved {
			cached++
		}
	}
	ch <- prometheus.MustNewConstMetric(c.registered, prometheus.GaugeValue, float64(len(infos)))
	ch <- prometheus.MustNewConstMetric(c.cached, prometheus.GaugeValue, float64(cached))
}
