// Package aggregate reads configuration from strings, files and directory
// trees and deep-merges the results into one tree.
//
// Sources are folded left to right with a tree.Merger, so later sources
// take precedence:
//
//	agg := aggregate.New()
//	cfg, err := agg.FromDirectories([]string{"config/base", "config/prod"})
//
// Directory traversal is self-first and visits entries sorted by name,
// which makes the fold order reproducible: "10-base.yaml" is merged before
// "20-override.yaml". A missing directory is an empty configuration, not an
// error. Files are parsed with the format named by their extension.
//
// Any result can be wrapped in a read-only View:
//
//	view, err := aggregate.ViewOf(agg.FromDirectory("config"))
//	port := view.Int("server.port")
//
// An Aggregator is safe for concurrent use as long as its Resolver and
// Merger are; the defaults are.
package aggregate
