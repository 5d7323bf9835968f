// Package output renders confmerge results.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: key/value tables for trees, rows for struct slices
//   - json.go: indented JSON preserving tree key order
//   - yaml.go: block-style YAML preserving tree key order
//   - redact.go: masking of secret values before display
//   - fingerprint.go: order-independent hash of a merged tree
package output
