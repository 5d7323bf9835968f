package aggregate

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/v2"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// Delimiter separates segments of View paths.
const Delimiter = "."

// View is a read-only accessor over a configuration tree. Paths are
// dot-delimited ("database.pool.max").
type View struct {
	tree *tree.Map
	k    *koanf.Koanf
}

// NewView snapshots m. Later changes to m are not visible through the view.
func NewView(m *tree.Map) (*View, error) {
	snapshot := m.Clone()

	k := koanf.New(Delimiter)
	if err := k.Load(treeProvider{m: snapshot}, nil); err != nil {
		return nil, fmt.Errorf("load view: %w", err)
	}
	return &View{tree: snapshot, k: k}, nil
}

// ViewOf wraps the result of an Aggregator call:
//
//	view, err := aggregate.ViewOf(agg.FromDirectory("config"))
func ViewOf(m *tree.Map, err error) (*View, error) {
	if err != nil {
		return nil, err
	}
	return NewView(m)
}

// Get returns the plain value at path, or nil.
func (v *View) Get(path string) any {
	return v.k.Get(path)
}

// Value returns a copy of the tree value at path. Literal keys containing
// the delimiter match, as they do for Get.
func (v *View) Value(path string) (tree.Value, bool) {
	val, ok := v.tree.Find(path)
	if !ok {
		return tree.Value{}, false
	}
	return val.Clone(), true
}

// String returns the value at path as a string.
func (v *View) String(path string) string {
	return v.k.String(path)
}

// Int returns the value at path as an int, or 0.
func (v *View) Int(path string) int {
	return v.k.Int(path)
}

// Int64 returns the value at path as an int64, or 0.
func (v *View) Int64(path string) int64 {
	return v.k.Int64(path)
}

// Float64 returns the value at path as a float64, or 0.
func (v *View) Float64(path string) float64 {
	return v.k.Float64(path)
}

// Bool returns the value at path as a bool.
func (v *View) Bool(path string) bool {
	return v.k.Bool(path)
}

// Strings returns the value at path as a string slice.
func (v *View) Strings(path string) []string {
	return v.k.Strings(path)
}

// Duration returns the value at path as a time.Duration. Strings such as
// "1500ms" are parsed.
func (v *View) Duration(path string) time.Duration {
	return v.k.Duration(path)
}

// Exists reports whether path is set.
func (v *View) Exists(path string) bool {
	return v.k.Exists(path)
}

// Keys returns the top-level keys in tree order.
func (v *View) Keys() []string {
	return v.tree.Keys()
}

// Len returns the number of top-level keys.
func (v *View) Len() int {
	return v.tree.Len()
}

// All returns every leaf keyed by its flattened path.
func (v *View) All() map[string]any {
	return v.k.All()
}

// Cut returns a view of the mapping at path. Paths that are missing or do
// not name a mapping give an empty view.
func (v *View) Cut(path string) (*View, error) {
	val, ok := v.tree.Find(path)
	if !ok || val.Kind() != tree.KindMap {
		return NewView(nil)
	}
	return NewView(val.Map())
}

// Unmarshal decodes the value at path into out using koanf struct tags.
// An empty path decodes the whole tree.
func (v *View) Unmarshal(path string, out any) error {
	return v.k.Unmarshal(path, out)
}

// Tree returns a deep copy of the underlying tree.
func (v *View) Tree() *tree.Map {
	return v.tree.Clone()
}
