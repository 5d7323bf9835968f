package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// XMLTextKey holds the text of an element that also has attributes or
// child elements.
const XMLTextKey = "_"

// XMLParser parses XML documents. The root element name is dropped and its
// content becomes the top-level mapping:
//
//   - an element without attributes or children becomes its trimmed text
//   - attributes and child elements become keys, in document order
//   - sibling elements sharing a name are collected into a sequence
//   - namespace declarations are ignored
type XMLParser struct{}

// NewXMLParser creates an XML parser.
func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

// Parse implements Parser.
func (p *XMLParser) Parse(content string) (*tree.Map, error) {
	if strings.TrimSpace(content) == "" {
		return tree.NewMap(), nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return nil, fmt.Errorf("xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("xml: document has no root element")
	}

	v := xmlElement(root)
	switch {
	case v.Kind() == tree.KindMap:
		return v.Map(), nil
	case v.Str() == "":
		return tree.NewMap(), nil
	default:
		return nil, notMappingError("xml", "text")
	}
}

func xmlElement(el *etree.Element) tree.Value {
	text := strings.TrimSpace(el.Text())
	attrs := xmlAttrs(el)
	children := el.ChildElements()

	if len(attrs) == 0 && len(children) == 0 {
		return tree.String(text)
	}

	m := tree.NewMap()
	for _, a := range attrs {
		m.Set(a.Key, tree.String(a.Value))
	}

	// Repeated names are collected first and stored once; Set keeps the
	// position of the first occurrence. An attribute of the same name
	// becomes the first item.
	repeated := make(map[string][]tree.Value)
	var order []string
	for _, child := range children {
		v := xmlElement(child)
		if items, ok := repeated[child.Tag]; ok {
			repeated[child.Tag] = append(items, v)
			continue
		}
		existing, ok := m.Get(child.Tag)
		if !ok {
			m.Set(child.Tag, v)
			continue
		}
		repeated[child.Tag] = []tree.Value{existing, v}
		order = append(order, child.Tag)
	}
	for _, tag := range order {
		m.Set(tag, tree.Seq(repeated[tag]...))
	}

	if text != "" {
		m.Set(XMLTextKey, tree.String(text))
	}
	return tree.MapValue(m)
}

func xmlAttrs(el *etree.Element) []etree.Attr {
	out := make([]etree.Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		out = append(out, a)
	}
	return out
}
