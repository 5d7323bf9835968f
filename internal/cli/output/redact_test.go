package output

import (
	"testing"

	"github.com/yndnr/confmerge-go/internal/telemetry/logger"
	"github.com/yndnr/confmerge-go/pkg/tree"
)

func TestRedact(t *testing.T) {
	db := tree.NewMap()
	db.Set("user", tree.String("app"))
	db.Set("password", tree.String("hunter2"))
	db.Set("dsn", tree.String("postgres://app:hunter2@db/app"))
	db.Set("token_ttl", tree.Int(300))

	m := tree.NewMap()
	m.Set("db", tree.MapValue(db))
	m.Set("tokens", tree.Seq(tree.String("t1"), tree.String("t2")))
	m.Set("name", tree.String("demo"))

	got := Redact(m)

	tests := []struct {
		path string
		want string
	}{
		{"db.user", "app"},
		{"db.password", logger.RedactedValue},
		{"db.dsn", "postgres://app:xxxxx@db/app"},
		{"db.token_ttl", logger.RedactedValue},
		{"name", "demo"},
	}
	for _, tt := range tests {
		v, ok := got.LookupPath(tt.path)
		if !ok {
			t.Errorf("%s missing after Redact", tt.path)
			continue
		}
		if v.String() != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, v.String(), tt.want)
		}
	}

	tokens, _ := got.Get("tokens")
	for i, item := range tokens.Items() {
		if item.Str() != logger.RedactedValue {
			t.Errorf("tokens[%d] = %q, want redacted", i, item.Str())
		}
	}

	if v, _ := m.LookupPath("db.password"); v.Str() != "hunter2" {
		t.Error("Redact modified its input")
	}
}
