package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// JSONParser parses JSON objects, keeping key order.
type JSONParser struct{}

// NewJSONParser creates a JSON parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser.
func (p *JSONParser) Parse(content string) (*tree.Map, error) {
	if strings.TrimSpace(content) == "" {
		return tree.NewMap(), nil
	}
	if !gjson.Valid(content) {
		return nil, jsonSyntaxError(content)
	}

	root := gjson.Parse(content)
	if root.IsArray() {
		return nil, notMappingError("json", "array")
	}
	if !root.IsObject() {
		return nil, notMappingError("json", strings.ToLower(root.Type.String()))
	}
	return jsonObject(root), nil
}

func jsonObject(r gjson.Result) *tree.Map {
	m := tree.NewMap()
	r.ForEach(func(key, value gjson.Result) bool {
		m.Set(key.Str, jsonValue(value))
		return true
	})
	return m
}

func jsonValue(r gjson.Result) tree.Value {
	switch {
	case r.IsObject():
		return tree.MapValue(jsonObject(r))
	case r.IsArray():
		items := r.Array()
		vals := make([]tree.Value, len(items))
		for i, item := range items {
			vals[i] = jsonValue(item)
		}
		return tree.Seq(vals...)
	}

	switch r.Type {
	case gjson.True:
		return tree.Bool(true)
	case gjson.False:
		return tree.Bool(false)
	case gjson.String:
		return tree.String(r.Str)
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
				return tree.Int(i)
			}
		}
		return tree.Float(r.Num)
	default:
		return tree.Null()
	}
}

// jsonSyntaxError builds a diagnostic for content gjson rejected.
// gjson only reports validity, so the position comes from encoding/json.
func jsonSyntaxError(content string) error {
	var discard any
	err := json.Unmarshal([]byte(content), &discard)

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(content, int(syntaxErr.Offset))
		return fmt.Errorf("json: line %d, column %d: %s", line, col, syntaxErr.Error())
	}
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return errors.New("json: invalid document")
}

// position converts a byte offset into a 1-based line and column.
func position(content string, offset int) (line, col int) {
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndex(before, "\n")
	return line, col
}

func notMappingError(syntax, got string) error {
	return fmt.Errorf("%s: document root must be a mapping, got %s", syntax, got)
}
