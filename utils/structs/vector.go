package structs

import (
	"fmt"
	"reflect"
)

// Vector is a struct wrapping a slice of components of type T.
// T can be:
//   - uint, uint64, uint32, uint16, uint8/byte, int, int64, int32, int16, int8, float64, float32.
//   - Or any object that implements Cloner, Copyer, ShallowCopyer or Equatable
//     depending on the method called.
type Vector[T any] []T

// Size returns the size of the receiver.
func (v Vector[T]) Size() int {
	return len(v)
}

// Copy copies the operand on the receiver, up to the
// maximum available size between the two.
func (v Vector[T]) Copy(other Vector[T]) {

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32:
		copy(v, other)
	default:

		if _, isCopyable := any(&t).(Copyer[T]); !isCopyable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Copyer[T])))
		}

		for i := 0; i < min(v.Size(), other.Size()); i++ {
			any(&v[i]).(Copyer[T]).Copy(&other[i])
		}
	}
}

// Clone returns a deep copy of the object.
// If T is a struct, this method requires that T implements Cloner.
func (v Vector[T]) Clone() (vcpy Vector[T]) {

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32:
		vcpy = Vector[T](make([]T, len(v)))
		copy(vcpy, v)
	default:
		if _, isClonable := any(&t).(Cloner[T]); !isClonable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Cloner[T])))
		}

		vcpy = Vector[T](make([]T, len(v)))
		for i := range v {
			vcpy[i] = *any(&v[i]).(Cloner[T]).Clone()
		}
	}

	return
}

// ShallowCopy returns a shallow copy of the object.
func (v Vector[T]) ShallowCopy() (vcpy Vector[T]) {

	var t T
	if _, isShallowCopyable := any(&t).(ShallowCopyer[T]); !isShallowCopyable {
		panic(fmt.Errorf("component of type %T does not comply to %T", t, new(ShallowCopyer[T])))
	}

	vcpy = Vector[T](make([]T, len(v)))
	for i := range v {
		vcpy[i] = *any(&v[i]).(ShallowCopyer[T]).ShallowCopy()
	}

	return
}

// Equal performs a deep equal. It does not dispatch through a binary
// wire-format package; primitive components compare by value and struct
// components fall back to reflect.DeepEqual unless they implement
// Equatable.
func (v Vector[T]) Equal(other Vector[T]) bool {

	if len(v) != len(other) {
		return false
	}

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32:
		return reflect.DeepEqual([]T(v), []T(other))
	default:
		if _, isEquatable := any(&t).(Equatable[T]); isEquatable {
			for i := range v {
				if !any(&v[i]).(Equatable[T]).Equal(&other[i]) {
					return false
				}
			}
			return true
		}
		return reflect.DeepEqual([]T(v), []T(other))
	}
}
