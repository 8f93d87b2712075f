package foundations

import (
	"reflect"
	"sort"
)

// Value is the dynamic value representation shared with the surrounding
// compiler. The content core stores and retrieves values opaquely; it never
// interprets their structure beyond presence and equality.
type Value = any

// ValueEqual reports whether two opaque values are equal. Selector field
// constraints and style lookups compare with this.
func ValueEqual(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}

// Pair is one entry of a Dict.
type Pair struct {
	Key   string
	Value Value
}

// Dict is an insertion-ordered string → value mapping. Field listings use
// it so that fields come out in declaration order.
type Dict struct {
	pairs []Pair
	index map[string]int
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

// Set inserts or replaces the value for key, preserving first-insertion order.
func (d *Dict) Set(key string, value Value) {
	if i, ok := d.index[key]; ok {
		d.pairs[i].Value = value
		return
	}
	d.index[key] = len(d.pairs)
	d.pairs = append(d.pairs, Pair{Key: key, Value: value})
}

// Get returns the value for key.
func (d *Dict) Get(key string) (Value, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.pairs[i].Value, true
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.pairs)
}

// Pairs returns the entries in insertion order. The slice is a copy.
func (d *Dict) Pairs() []Pair {
	out := make([]Pair, len(d.pairs))
	copy(out, d.pairs)
	return out
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.pairs))
	for i, p := range d.pairs {
		keys[i] = p.Key
	}
	return keys
}

// SortedKeys returns the keys in lexicographic order.
func (d *Dict) SortedKeys() []string {
	keys := d.Keys()
	sort.Strings(keys)
	return keys
}
