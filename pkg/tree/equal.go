package tree

// Equal reports whether a and b hold the same tree. Map key order is not
// significant; sequence order is. Int and Float values never compare equal
// to each other.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindSeq:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return EqualMaps(a.m, b.m)
	default:
		return false
	}
}

// EqualMaps reports whether two maps hold equal values under the same keys.
func EqualMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Range(func(key string, va Value) bool {
		vb, ok := b.Get(key)
		if !ok || !Equal(va, vb) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
