package output

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// TableFormatter formats data as an aligned text table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Supports: *Table, *tree.Map, tree.Value, structs and slices of structs.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	var (
		table *Table
		err   error
	)
	switch d := data.(type) {
	case *Table:
		table = d
	case Table:
		table = &d
	case *tree.Map:
		table = TreeTable(d)
	case tree.Value:
		table = valueTable(d)
	default:
		table, err = reflectTable(reflect.ValueOf(data))
		if err != nil {
			return (&JSONFormatter{}).Format(w, data)
		}
	}

	return table.RenderWithOptions(w, f.NoHeaders)
}

// TreeTable flattens m into KEY/VALUE rows in tree order. Sequence items
// are addressed as key[i]; empty containers get a row of their own.
func TreeTable(m *tree.Map) *Table {
	table := &Table{Headers: []string{"KEY", "VALUE"}}
	flattenMap(table, "", m)
	return table
}

func valueTable(v tree.Value) *Table {
	switch v.Kind() {
	case tree.KindMap:
		return TreeTable(v.Map())
	case tree.KindSeq:
		table := &Table{Headers: []string{"KEY", "VALUE"}}
		flattenValue(table, "", v)
		return table
	default:
		return &Table{Headers: []string{"VALUE"}, Rows: [][]string{{cell(v)}}}
	}
}

func flattenMap(table *Table, prefix string, m *tree.Map) {
	m.Range(func(key string, v tree.Value) bool {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		flattenValue(table, path, v)
		return true
	})
}

func flattenValue(table *Table, path string, v tree.Value) {
	switch v.Kind() {
	case tree.KindMap:
		if v.Len() == 0 {
			table.AddRow(path, "{}")
			return
		}
		flattenMap(table, path, v.Map())
	case tree.KindSeq:
		if v.Len() == 0 {
			table.AddRow(path, "[]")
			return
		}
		for i, item := range v.Items() {
			flattenValue(table, path+"["+strconv.Itoa(i)+"]", item)
		}
	default:
		table.AddRow(path, cell(v))
	}
}

func cell(v tree.Value) string {
	if v.Kind() == tree.KindString && v.Str() == "" {
		return `""`
	}
	return v.String()
}

func reflectTable(v reflect.Value) (*Table, error) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return &Table{}, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		table := &Table{Headers: []string{"FIELD", "VALUE"}}
		for i, name := range fieldNames(v.Type()) {
			if name == "" {
				continue
			}
			table.AddRow(name, formatValue(v.Field(i)))
		}
		return table, nil
	case reflect.Slice, reflect.Array:
		return sliceTable(v)
	default:
		return nil, fmt.Errorf("unsupported type: %s", v.Kind())
	}
}

// sliceTable renders a slice of structs with one column per field.
func sliceTable(v reflect.Value) (*Table, error) {
	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported element type: %s", elemType.Kind())
	}

	names := fieldNames(elemType)
	table := &Table{}
	for _, name := range names {
		if name != "" {
			table.Headers = append(table.Headers, strings.ToUpper(name))
		}
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		var row []string
		for idx, name := range names {
			if name != "" {
				row = append(row, formatValue(elem.Field(idx)))
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// fieldNames returns the display name of every field, "" for skipped ones.
// The json tag name is used when present.
func fieldNames(t reflect.Type) []string {
	names := make([]string, t.NumField())
	for i := range names {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("table") == "-" {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			if n, _, _ := strings.Cut(tag, ","); n == "-" {
				continue
			} else if n != "" {
				name = n
			}
		}
		names[i] = name
	}
	return names
}

// formatValue formats a reflect.Value for display.
func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return "-"
		}
		return v.String()
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ",")
	case reflect.Map:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", v.Len())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(t.Headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
