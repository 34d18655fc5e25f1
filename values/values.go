// Package values implements the typed estimation-state container: a
// sorted map from key to a geometric value, with type-filtered views,
// dense-matrix extraction, seeded perturbation and frame re-expression.
package values

import (
	"errors"
	"fmt"
	"sort"

	"github.com/banshee-data/slamkit/key"
)

var (
	// ErrKeyExists is returned by Insert when the key is already present.
	ErrKeyExists = errors.New("values: key already present")
	// ErrKeyNotFound is returned on access or update of an absent key.
	ErrKeyNotFound = errors.New("values: key not found")
	// ErrWrongType is returned by typed access when the stored value has
	// a different type than requested.
	ErrWrongType = errors.New("values: value has different type")
)

// Values maps keys to heterogeneous geometric values. Iteration is
// always in ascending key order. The zero value is not usable; call New.
//
// Values is not safe for concurrent mutation; callers own exclusivity
// for the duration of each batch operation.
type Values struct {
	keys  []key.Key // ascending
	items map[key.Key]any
}

// New returns an empty store.
func New() *Values {
	return &Values{items: make(map[key.Key]any)}
}

// Len returns the number of entries.
func (v *Values) Len() int {
	return len(v.keys)
}

// Has reports whether k is present.
func (v *Values) Has(k key.Key) bool {
	_, ok := v.items[k]
	return ok
}

// Insert adds a new entry. The key must not already be present.
func (v *Values) Insert(k key.Key, val any) error {
	if _, ok := v.items[k]; ok {
		return fmt.Errorf("%w: %v", ErrKeyExists, k)
	}
	i := sort.Search(len(v.keys), func(i int) bool { return v.keys[i] >= k })
	v.keys = append(v.keys, 0)
	copy(v.keys[i+1:], v.keys[i:])
	v.keys[i] = k
	v.items[k] = val
	return nil
}

// Update replaces the value at an existing key.
func (v *Values) Update(k key.Key, val any) error {
	if _, ok := v.items[k]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	v.items[k] = val
	return nil
}

// Keys returns all keys in ascending order.
func (v *Values) Keys() []key.Key {
	out := make([]key.Key, len(v.keys))
	copy(out, v.keys)
	return out
}

// get returns the raw entry, for in-package dispatch.
func (v *Values) get(k key.Key) (any, bool) {
	val, ok := v.items[k]
	return val, ok
}

// KeyValue is one typed entry of a filtered view.
type KeyValue[T any] struct {
	Key   key.Key
	Value T
}

// At returns the value at k as type T. It fails if the key is absent or
// holds a value of a different type; callers distinguish the two with
// errors.Is against ErrKeyNotFound and ErrWrongType.
func At[T any](v *Values, k key.Key) (T, error) {
	var zero T
	raw, ok := v.items[k]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %v holds %T", ErrWrongType, k, raw)
	}
	return val, nil
}

// Filter returns the entries whose value has type T, in ascending key
// order.
func Filter[T any](v *Values) []KeyValue[T] {
	var out []KeyValue[T]
	for _, k := range v.keys {
		if val, ok := v.items[k].(T); ok {
			out = append(out, KeyValue[T]{Key: k, Value: val})
		}
	}
	return out
}
