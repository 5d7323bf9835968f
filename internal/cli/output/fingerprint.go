package output

import (
	"encoding/json"
	"fmt"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

// Fingerprint returns a 128-bit murmur3 hash of m as 32 hex digits. Key
// order does not affect the result; sequence order and value types do.
func Fingerprint(m *tree.Map) (string, error) {
	// encoding/json sorts map keys, which gives a canonical rendering.
	canonical, err := json.Marshal(canonicalMap(m))
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	h1, h2 := murmur3.Sum128(canonical)
	return fmt.Sprintf("%016x%016x", h1, h2), nil
}

func canonicalMap(m *tree.Map) map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(key string, v tree.Value) bool {
		out[key] = canonicalValue(v)
		return true
	})
	return out
}

// canonicalValue renders scalars as kind and text, so 1, 1.0 and "1" hash
// differently and non-finite floats need no special casing.
func canonicalValue(v tree.Value) any {
	switch v.Kind() {
	case tree.KindMap:
		return canonicalMap(v.Map())
	case tree.KindSeq:
		items := v.Items()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = canonicalValue(item)
		}
		return out
	default:
		return [2]string{v.Kind().String(), v.String()}
	}
}
