// Package tree provides the configuration tree used throughout confmerge.
//
// A tree is a tagged variant over mappings, sequences and scalars:
//
//   - Map: string keys to values, keys kept in insertion order
//   - Seq: ordered list of values
//   - Null, Bool, Int, Float, String: scalars
//
// Merge combines two trees with these rules, applied key by key for every
// key of the overlay:
//
//   - key absent in base: the overlay value is inserted
//   - both values are maps: merged recursively
//   - both values are sequences: overlay items are appended
//   - otherwise: the overlay value replaces the base value
//
// Merge never mutates its inputs. Trees handed out by Merge share no
// storage with either argument.
package tree
