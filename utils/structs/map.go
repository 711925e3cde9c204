package structs

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Map is a map of any value indexed by an integer key, generalizing the
// fingerprint-keyed tables this module builds (lhs.Table's entries, in
// particular) the same way Vector generalizes its coefficient slices.
type Map[K constraints.Integer, T any] map[K]*T

// Clone returns a deep copy of m; every stored value must implement
// Cloner[T].
func (m Map[K, T]) Clone() *Map[K, T] {
	if c, isCopiable := any(new(T)).(Cloner[T]); !isCopiable {
		panic(fmt.Errorf("map value of type %T does not comply to %T", new(T), c))
	}

	mcpy := make(Map[K, T], len(m))
	for key, v := range m {
		mcpy[key] = any(v).(Cloner[T]).Clone()
	}
	return &mcpy
}
