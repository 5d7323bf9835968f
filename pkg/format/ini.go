package format

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// INIParser parses INI documents.
//
// Keys outside any section land at the top level; each section becomes a
// nested mapping. Dotted key names nest ("db.host = x"), keys ending in
// "[]" collect every occurrence into a sequence, and a plain key given
// twice keeps its last value. Values are strings.
type INIParser struct {
	// NestSeparator splits key names into nested mappings; empty disables
	// nesting.
	NestSeparator string
}

// NewINIParser creates an INI parser nesting on ".".
func NewINIParser() *INIParser {
	return &INIParser{NestSeparator: "."}
}

// Parse implements Parser.
func (p *INIParser) Parse(content string) (*tree.Map, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:             true,
		SpaceBeforeInlineComment: true,
	}, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}

	root := tree.NewMap()
	for _, sec := range f.Sections() {
		target := root
		if sec.Name() != ini.DefaultSection {
			target = tree.NewMap()
			if existing, ok := root.Get(sec.Name()); ok && existing.Kind() == tree.KindMap {
				target = existing.Map()
			}
			root.Set(sec.Name(), tree.MapValue(target))
		}

		for _, key := range sec.Keys() {
			if err := p.assign(target, sec.Name(), key); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

func (p *INIParser) assign(target *tree.Map, section string, key *ini.Key) error {
	name := key.Name()
	values := key.ValueWithShadows()
	if len(values) == 0 {
		values = []string{key.Value()}
	}

	isList := strings.HasSuffix(name, "[]")
	if isList {
		name = strings.TrimSuffix(name, "[]")
	}

	path := []string{name}
	if p.NestSeparator != "" {
		path = strings.Split(name, p.NestSeparator)
	}
	for _, part := range path {
		if part == "" {
			return fmt.Errorf("ini: section %q: invalid key %q", section, key.Name())
		}
	}

	parent := target
	for _, part := range path[:len(path)-1] {
		existing, ok := parent.Get(part)
		switch {
		case !ok:
			next := tree.NewMap()
			parent.Set(part, tree.MapValue(next))
			parent = next
		case existing.Kind() == tree.KindMap:
			parent = existing.Map()
		default:
			return fmt.Errorf("ini: section %q: cannot nest key %q under scalar %q", section, key.Name(), part)
		}
	}

	last := path[len(path)-1]
	if !isList {
		parent.Set(last, tree.String(values[len(values)-1]))
		return nil
	}

	items := make([]tree.Value, 0, len(values))
	if existing, ok := parent.Get(last); ok && existing.Kind() == tree.KindSeq {
		items = append(items, existing.Items()...)
	}
	for _, v := range values {
		items = append(items, tree.String(v))
	}
	parent.Set(last, tree.Seq(items...))
	return nil
}
