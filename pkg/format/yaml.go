package format

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// YAMLParser parses the first document of a YAML stream. Anchors, aliases
// and "<<" merge keys are resolved; key order is kept.
type YAMLParser struct{}

// NewYAMLParser creates a YAML parser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements Parser.
func (p *YAMLParser) Parse(content string) (*tree.Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return tree.NewMap(), nil
	}

	root := doc.Content[0]
	for root.Kind == yaml.AliasNode {
		root = root.Alias
	}
	switch {
	case root.Kind == yaml.MappingNode:
		d := &yamlDecoder{budget: yamlNodeBudget(len(content))}
		return d.mapping(root)
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
		return tree.NewMap(), nil
	default:
		return nil, notMappingError("yaml", yamlKindName(root))
	}
}

// errYAMLAliasing is returned when alias expansion would build far more
// values than the document holds.
var errYAMLAliasing = errors.New("yaml: document contains excessive aliasing")

// yamlNodeBudget bounds the number of values built from a document of the
// given size. Documents without aliases never come close.
func yamlNodeBudget(size int) int {
	return 10000 + 100*size
}

// yamlDecoder converts a node tree into tree values, expanding aliases
// until its budget runs out.
type yamlDecoder struct {
	budget int
}

func (d *yamlDecoder) value(n *yaml.Node) (tree.Value, error) {
	d.budget--
	if d.budget < 0 {
		return tree.Value{}, errYAMLAliasing
	}
	switch n.Kind {
	case yaml.AliasNode:
		return d.value(n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return tree.Null(), nil
		}
		return d.value(n.Content[0])
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.SequenceNode:
		vals := make([]tree.Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := d.value(item)
			if err != nil {
				return tree.Value{}, err
			}
			vals = append(vals, v)
		}
		return tree.Seq(vals...), nil
	case yaml.MappingNode:
		m, err := d.mapping(n)
		if err != nil {
			return tree.Value{}, err
		}
		return tree.MapValue(m), nil
	default:
		return tree.Value{}, fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func (d *yamlDecoder) mapping(n *yaml.Node) (*tree.Map, error) {
	m := tree.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			if err := d.mergeKey(m, valNode); err != nil {
				return nil, err
			}
			continue
		}

		for keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yaml: line %d: mapping keys must be scalars", keyNode.Line)
		}

		v, err := d.value(valNode)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, v)
	}
	return m, nil
}

// mergeKey copies entries of the referenced mapping(s) into m without
// overriding keys already set; earlier sources win over later ones.
func (d *yamlDecoder) mergeKey(m *tree.Map, n *yaml.Node) error {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	var sources []*yaml.Node
	switch n.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{n}
	case yaml.SequenceNode:
		sources = n.Content
	default:
		return fmt.Errorf("yaml: line %d: merge key expects a mapping or a sequence of mappings", n.Line)
	}

	for _, src := range sources {
		v, err := d.value(src)
		if err != nil {
			return err
		}
		if v.Kind() != tree.KindMap {
			return fmt.Errorf("yaml: line %d: merge key expects mappings, got %s", src.Line, v.Kind())
		}
		v.Map().Range(func(key string, item tree.Value) bool {
			if !m.Has(key) {
				m.Set(key, item)
			}
			return true
		})
	}
	return nil
}

func yamlScalar(n *yaml.Node) (tree.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return tree.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return tree.Value{}, err
		}
		return tree.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return tree.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return tree.Value{}, err
		}
		if u > math.MaxInt64 {
			return tree.Float(float64(u)), nil
		}
		return tree.Int(int64(u)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return tree.Value{}, err
		}
		return tree.Float(f), nil
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their text.
		return tree.String(n.Value), nil
	}
}

func yamlKindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar " + n.ShortTag()
	default:
		return fmt.Sprintf("node kind %d", n.Kind)
	}
}
