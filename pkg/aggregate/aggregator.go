package aggregate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/yndnr/confmerge-go/pkg/format"
	"github.com/yndnr/confmerge-go/pkg/tree"
)

// Aggregator parses configuration sources and folds them into one tree.
type Aggregator struct {
	resolver     FormatResolver
	merger       tree.Merger
	fs           afero.Fs
	includePaths []string
	logger       *slog.Logger
	metrics      Metrics
}

// New creates an Aggregator. Without options it resolves the built-in
// formats, deep-merges, and reads from the OS filesystem.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	if a.resolver == nil {
		a.resolver = format.NewResolver(nil)
	}
	if a.merger == nil {
		a.merger = tree.DeepMerger{}
	}
	if a.fs == nil {
		a.fs = afero.NewOsFs()
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.metrics == nil {
		a.metrics = nopMetrics{}
	}
	return a
}

// FromString parses a single document.
func (a *Aggregator) FromString(content, formatID string) (*tree.Map, error) {
	return a.parse(content, formatID, "string")
}

// FromStrings parses every document with the same format and merges them
// in order. An empty list yields an empty tree.
func (a *Aggregator) FromStrings(contents []string, formatID string) (*tree.Map, error) {
	merged := tree.NewMap()
	for i, content := range contents {
		m, err := a.parse(content, formatID, fmt.Sprintf("strings[%d]", i))
		if err != nil {
			return nil, err
		}
		merged = a.merger.Merge(merged, m)
	}
	return merged, nil
}

// FromFile reads one file, choosing the parser from its extension.
func (a *Aggregator) FromFile(path string, opts ...SourceOption) (*tree.Map, error) {
	o := newSourceOptions(opts)
	return a.readFile(a.resolvePath(path, o.useIncludePath))
}

// FromFiles reads files in order and merges them.
func (a *Aggregator) FromFiles(paths []string, opts ...SourceOption) (*tree.Map, error) {
	merged := tree.NewMap()
	for _, path := range paths {
		m, err := a.FromFile(path, opts...)
		if err != nil {
			return nil, err
		}
		merged = a.merger.Merge(merged, m)
	}
	return merged, nil
}

// FromDirectory merges every regular file below path. Directories are
// visited self-first with entries sorted by name. Symbolic links to files
// are read; links to directories are not followed.
//
// A path that does not exist or is not a directory yields an empty tree.
func (a *Aggregator) FromDirectory(path string, opts ...SourceOption) (*tree.Map, error) {
	o := newSourceOptions(opts)
	dir := a.resolvePath(path, o.useIncludePath)

	isDir, err := afero.DirExists(a.fs, dir)
	if err != nil {
		return nil, format.ErrRead.Wrap(dir, err)
	}
	if !isDir {
		a.logger.Debug("config directory missing, using empty tree", "path", dir)
		a.metrics.DirectoryMissing()
		return tree.NewMap(), nil
	}

	merged := tree.NewMap()
	err = a.walk(dir, func(file string) error {
		m, err := a.readFile(file)
		if err != nil {
			return err
		}
		merged = a.merger.Merge(merged, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// FromDirectories merges the trees of several directories in order.
func (a *Aggregator) FromDirectories(paths []string, opts ...SourceOption) (*tree.Map, error) {
	merged := tree.NewMap()
	for _, path := range paths {
		m, err := a.FromDirectory(path, opts...)
		if err != nil {
			return nil, err
		}
		merged = a.merger.Merge(merged, m)
	}
	return merged, nil
}

func (a *Aggregator) parse(content, formatID, source string) (*tree.Map, error) {
	parser, err := a.resolver.Resolve(formatID)
	if err != nil {
		a.metrics.SourceFailed(formatID)
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	m, err := parser.Parse(content)
	if err != nil {
		a.metrics.SourceFailed(formatID)
		return nil, format.ErrParse.Wrap(source, err)
	}
	if m == nil {
		m = tree.NewMap()
	}

	a.metrics.SourceParsed(formatID)
	a.logger.Debug("config source parsed",
		"source", source,
		"format", formatID,
		"keys", m.Len(),
	)
	return m, nil
}

func (a *Aggregator) readFile(path string) (*tree.Map, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		a.metrics.SourceFailed("")
		return nil, format.ErrUnknownFormat.WithDetails(path + ": no file extension")
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		a.metrics.SourceFailed(ext)
		return nil, format.ErrRead.Wrap(path, err)
	}
	return a.parse(string(data), ext, path)
}

// walk calls fn for each regular file below dir in self-first, name-sorted
// order.
func (a *Aggregator) walk(dir string, fn func(path string) error) error {
	entries, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return format.ErrRead.Wrap(dir, err)
	}

	for _, info := range entries {
		path := filepath.Join(dir, info.Name())

		if info.IsDir() {
			if err := a.walk(path, fn); err != nil {
				return err
			}
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := a.fs.Stat(path)
			if err != nil {
				a.logger.Debug("skipping dangling symlink", "path", path, "error", err)
				continue
			}
			info = target
		}

		if !info.Mode().IsRegular() {
			a.logger.Debug("skipping non-regular entry", "path", path, "mode", info.Mode().String())
			continue
		}

		if err := fn(path); err != nil {
			return err
		}
	}
	return nil
}

// resolvePath applies the include-path search. Absolute paths and paths
// that exist as given are returned unchanged.
func (a *Aggregator) resolvePath(path string, useIncludePath bool) string {
	if !useIncludePath || filepath.IsAbs(path) || a.exists(path) {
		return path
	}
	for _, dir := range a.includePaths {
		candidate := filepath.Join(dir, path)
		if a.exists(candidate) {
			a.logger.Debug("resolved via include path", "path", path, "resolved", candidate)
			return candidate
		}
	}
	return path
}

func (a *Aggregator) exists(path string) bool {
	_, err := a.fs.Stat(path)
	return err == nil
}
