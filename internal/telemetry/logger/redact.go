package logger

import (
	"log/slog"
	"net/url"
	"strings"
)

// Key fragments that mark a configuration value as secret.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"apikey",
	"api_key",
	"private_key",
	"credential",
	"auth",
}

// RedactedValue is the placeholder for redacted sensitive data.
const RedactedValue = "***REDACTED***"

// redactSensitive redacts string attributes with a sensitive key and strips
// passwords from URL-shaped values.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, RedactValue(a.Key, a.Value.String()))
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// RedactValue returns the value to show for key. Non-empty values of
// sensitive keys are replaced entirely; URLs keep everything but the
// password.
func RedactValue(key, value string) string {
	if value == "" {
		return value
	}
	if IsSensitiveKey(key) {
		return RedactedValue
	}
	return RedactURL(value)
}

// RedactURL masks the password of a URL with user info, e.g.
// "postgres://app:s3cret@db/app" becomes "postgres://app:xxxxx@db/app".
// Other strings are returned unchanged.
func RedactURL(value string) string {
	if !strings.Contains(value, "://") || !strings.Contains(value, "@") {
		return value
	}
	u, err := url.Parse(value)
	if err != nil || u.User == nil {
		return value
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		return value
	}
	return u.Redacted()
}

// IsSensitiveKey checks if a key name suggests sensitive content. Only the
// last segment of a dotted path is considered.
func IsSensitiveKey(key string) bool {
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
