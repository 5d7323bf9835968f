package tree

// Merger combines two configuration trees into one.
type Merger interface {
	// Merge returns the result of applying overlay on top of base.
	Merge(base, overlay *Map) *Map
}

// MergeFunc adapts a function to the Merger interface.
type MergeFunc func(base, overlay *Map) *Map

// Merge calls f(base, overlay).
func (f MergeFunc) Merge(base, overlay *Map) *Map {
	return f(base, overlay)
}

// DeepMerger is the default Merger, backed by Merge.
type DeepMerger struct{}

// Merge implements Merger.
func (DeepMerger) Merge(base, overlay *Map) *Map {
	return Merge(base, overlay)
}

// Merge deep-merges overlay into a copy of base and returns the copy.
// Keys only present in base keep their position; keys new in overlay are
// appended in overlay order. Neither argument is modified; nil arguments
// are treated as empty maps.
func Merge(base, overlay *Map) *Map {
	out := base.Clone()
	mergeInto(out, overlay)
	return out
}

// mergeInto applies src on top of dst. dst must be exclusively owned by
// the caller since nested maps and sequences are updated in place.
func mergeInto(dst, src *Map) {
	src.Range(func(key string, srcVal Value) bool {
		dstVal, exists := dst.vals[key]
		if !exists {
			dst.Set(key, srcVal.Clone())
			return true
		}
		dst.vals[key] = mergeValue(dstVal, srcVal)
		return true
	})
}

func mergeValue(dst, src Value) Value {
	switch {
	case dst.kind == KindMap && src.kind == KindMap:
		mergeInto(dst.m, src.m)
		return dst
	case dst.kind == KindSeq && src.kind == KindSeq:
		seq := make([]Value, 0, len(dst.seq)+len(src.seq))
		seq = append(seq, dst.seq...)
		for _, item := range src.seq {
			seq = append(seq, item.Clone())
		}
		return Value{kind: KindSeq, seq: seq}
	default:
		return src.Clone()
	}
}

// MergeAll folds maps left to right with Merge. MergeAll() is an empty map.
func MergeAll(maps ...*Map) *Map {
	out := NewMap()
	for _, m := range maps {
		mergeInto(out, m)
	}
	return out
}
