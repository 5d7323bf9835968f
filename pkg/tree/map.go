package tree

import "strings"

// Map is a string-keyed mapping that remembers insertion order.
//
// Map is not safe for concurrent mutation. A nil *Map behaves as an empty,
// read-only mapping.
type Map struct {
	keys []string
	vals map[string]Value
}

// NewMap creates an empty mapping.
func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, exists := m.vals[key]; !exists {
		return false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls fn for every key in order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}

// Clone creates a deep copy. Cloning a nil map yields an empty map.
func (m *Map) Clone() *Map {
	out := &Map{
		keys: make([]string, 0, m.Len()),
		vals: make(map[string]Value, m.Len()),
	}
	m.Range(func(k string, v Value) bool {
		out.keys = append(out.keys, k)
		out.vals[k] = v.Clone()
		return true
	})
	return out
}

// Lookup walks nested mappings following path.
func (m *Map) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return MapValue(m), m != nil
	}

	current := m
	for i, part := range path {
		v, ok := current.Get(part)
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if v.kind != KindMap {
			return Value{}, false
		}
		current = v.m
	}
	return Value{}, false
}

// Find resolves a dot-separated path. At every level a key that spells
// the rest of the path literally ("db.host") is preferred over splitting
// it, so flat keys from properties files are found as well.
func (m *Map) Find(path string) (Value, bool) {
	if path == "" {
		return m.Lookup()
	}
	if v, ok := m.Get(path); ok {
		return v, true
	}
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		v, ok := m.Get(path[:i])
		if !ok || v.kind != KindMap {
			continue
		}
		if found, ok := v.m.Find(path[i+1:]); ok {
			return found, true
		}
	}
	return Value{}, false
}

// LookupPath is Lookup with a dot-separated path.
func (m *Map) LookupPath(path string) (Value, bool) {
	if path == "" {
		return m.Lookup()
	}
	return m.Lookup(strings.Split(path, ".")...)
}
