package output

import (
	"github.com/yndnr/confmerge-go/internal/telemetry/logger"
	"github.com/yndnr/confmerge-go/pkg/tree"
)

// Redact returns a copy of m with secret string values masked. A value is
// secret when the last segment of its key looks sensitive; URL passwords
// are masked everywhere. Sequence items inherit the key of their sequence.
func Redact(m *tree.Map) *tree.Map {
	out := tree.NewMap()
	m.Range(func(key string, v tree.Value) bool {
		out.Set(key, redactValue(key, v))
		return true
	})
	return out
}

func redactValue(key string, v tree.Value) tree.Value {
	switch v.Kind() {
	case tree.KindMap:
		return tree.MapValue(Redact(v.Map()))
	case tree.KindSeq:
		items := v.Items()
		for i, item := range items {
			items[i] = redactValue(key, item)
		}
		return tree.Seq(items...)
	case tree.KindString:
		return tree.String(logger.RedactValue(key, v.Str()))
	default:
		if logger.IsSensitiveKey(key) {
			return tree.String(logger.RedactedValue)
		}
		return v.Clone()
	}
}
