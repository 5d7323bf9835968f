// Package command provides CLI command definitions for confmerge.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, runtime setup
//   - merge.go: string, file and dir subcommands
//   - formats.go: Format registry listing
//   - version.go: Build information
//
// Merge commands follow a consistent pattern of collecting sources,
// calling the aggregator, and handing the tree to emit for output.
package command
