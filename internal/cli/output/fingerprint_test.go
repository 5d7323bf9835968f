package output

import (
	"math"
	"testing"

	"github.com/yndnr/confmerge-go/pkg/tree"
)

func mustFingerprint(t *testing.T, m *tree.Map) string {
	t.Helper()
	fp, err := Fingerprint(m)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	return fp
}

func TestFingerprint(t *testing.T) {
	a := tree.NewMap()
	a.Set("x", tree.Int(1))
	a.Set("y", tree.Seq(tree.String("a"), tree.String("b")))

	reordered := tree.NewMap()
	reordered.Set("y", tree.Seq(tree.String("a"), tree.String("b")))
	reordered.Set("x", tree.Int(1))

	fp := mustFingerprint(t, a)
	if len(fp) != 32 {
		t.Errorf("Fingerprint() = %q, want 32 hex digits", fp)
	}
	if got := mustFingerprint(t, reordered); got != fp {
		t.Errorf("key order changed the fingerprint: %s != %s", got, fp)
	}

	variants := map[string]func(m *tree.Map){
		"float":      func(m *tree.Map) { m.Set("x", tree.Float(1)) },
		"string":     func(m *tree.Map) { m.Set("x", tree.String("1")) },
		"seq order":  func(m *tree.Map) { m.Set("y", tree.Seq(tree.String("b"), tree.String("a"))) },
		"extra key":  func(m *tree.Map) { m.Set("z", tree.Null()) },
		"non-finite": func(m *tree.Map) { m.Set("x", tree.Float(math.Inf(1))) },
	}
	for name, mutate := range variants {
		t.Run(name, func(t *testing.T) {
			m := a.Clone()
			mutate(m)
			if got := mustFingerprint(t, m); got == fp {
				t.Errorf("fingerprint unchanged after %s", name)
			}
		})
	}
}
