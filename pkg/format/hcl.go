package format

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// HCLParser parses HCL native syntax.
//
// Attributes are evaluated without variables or functions, so only literal
// expressions (including templates without interpolation, tuples and
// objects) are accepted. Attributes come first, in source order, then
// blocks. A block is nested under its type and then each label; repeating
// a block at the same path turns it into a sequence.
type HCLParser struct {
	// Filename is reported in diagnostics.
	Filename string
}

// NewHCLParser creates an HCL parser.
func NewHCLParser() *HCLParser {
	return &HCLParser{Filename: "config.hcl"}
}

// Parse implements Parser.
func (p *HCLParser) Parse(content string) (*tree.Map, error) {
	file, diags := hclsyntax.ParseConfig([]byte(content), p.Filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("hcl: unexpected body type %T", file.Body)
	}
	return hclBody(body)
}

func hclBody(body *hclsyntax.Body) (*tree.Map, error) {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, a := range body.Attributes {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	m := tree.NewMap()
	for _, a := range attrs {
		val, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		v, err := ctyToValue(val)
		if err != nil {
			return nil, fmt.Errorf("hcl: %s: attribute %q: %w", a.SrcRange, a.Name, err)
		}
		m.Set(a.Name, v)
	}

	for _, block := range body.Blocks {
		inner, err := hclBody(block.Body)
		if err != nil {
			return nil, err
		}
		path := append([]string{block.Type}, block.Labels...)
		if err := insertBlock(m, path, inner); err != nil {
			return nil, fmt.Errorf("hcl: %s: %w", block.TypeRange, err)
		}
	}
	return m, nil
}

func insertBlock(m *tree.Map, path []string, body *tree.Map) error {
	parent := m
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
			return fmt.Errorf("block label %q collides with a %s value", part, existing.Kind())
		}
	}

	last := path[len(path)-1]
	existing, ok := parent.Get(last)
	switch {
	case !ok:
		parent.Set(last, tree.MapValue(body))
	case existing.Kind() == tree.KindSeq:
		parent.Set(last, tree.Seq(append(existing.Items(), tree.MapValue(body))...))
	default:
		parent.Set(last, tree.Seq(existing, tree.MapValue(body)))
	}
	return nil
}

func ctyToValue(v cty.Value) (tree.Value, error) {
	if v.IsNull() {
		return tree.Null(), nil
	}
	if !v.IsKnown() {
		return tree.Value{}, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return tree.String(v.AsString()), nil
	case ty.Equals(cty.Bool):
		return tree.Bool(v.True()), nil
	case ty.Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return tree.Int(i), nil
			}
		}
		f, _ := bf.Float64()
		return tree.Float(f), nil
	case ty.IsObjectType() || ty.IsMapType():
		m := tree.NewMap()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			item, err := ctyToValue(ev)
			if err != nil {
				return tree.Value{}, fmt.Errorf("key %q: %w", k.AsString(), err)
			}
			m.Set(k.AsString(), item)
		}
		return tree.MapValue(m), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		items := make([]tree.Value, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			item, err := ctyToValue(ev)
			if err != nil {
				return tree.Value{}, err
			}
			items = append(items, item)
		}
		return tree.Seq(items...), nil
	default:
		return tree.Value{}, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
