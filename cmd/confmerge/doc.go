// Package main provides the entry point for confmerge.
//
// confmerge merges configuration written in mixed formats into one tree
// and prints it:
//
//   - string: documents of one format from files or stdin
//   - file: files, parser chosen by extension
//   - dir: whole directory trees, walked in name order
//   - formats: the format registry
//
// Usage:
//
//	confmerge [global flags] command [flags] [args]
//	confmerge -o json dir /etc/app/conf.d
//	confmerge -k server.port file base.yaml prod.json
//	cat a.ini | confmerge string -f ini
package main
