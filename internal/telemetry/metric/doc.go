// Package metric provides Prometheus metrics for confmerge.
//
//   - prometheus.go: counters for format resolution and source parsing
//   - collector.go: a collector reporting the resolver's parser cache
//
// Metrics live on a private registry owned by Registry, never on the
// global default one. The CLI prints them with --stats:
//
//	confmerge_format_resolutions_total{format="yaml",plugin="yaml"} 1
//	confmerge_sources_parsed_total{format="yaml"} 3
package metric
