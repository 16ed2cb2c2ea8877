package value

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are structurally equal.
//
// Floats are compared by bit pattern, so NaNs with the same payload are equal and 0.0 differs
// from -0.0. Owned and borrowed strings or byte strings are never equal to each other, and nil
// and empty slices are.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case F32:
		return math.Float32bits(float32(a)) == math.Float32bits(float32(b.(F32)))
	case F64:
		return math.Float64bits(float64(a)) == math.Float64bits(float64(b.(F64)))
	case Bytes:
		return bytes.Equal(a, b.(Bytes))
	case BorrowedBytes:
		return bytes.Equal(a, b.(BorrowedBytes))
	case Some:
		return Equal(a.Value, b.(Some).Value)
	case NewtypeStruct:
		b := b.(NewtypeStruct)
		return a.Name == b.Name && Equal(a.Value, b.Value)
	case Struct:
		b := b.(Struct)
		return a.Name == b.Name && equalFields(a.Fields, b.Fields)
	case TupleStruct:
		b := b.(TupleStruct)
		return a.Name == b.Name && equalValues(a.Fields, b.Fields)
	case Tuple:
		return equalValues(a, b.(Tuple))
	case NewtypeVariant:
		b := b.(NewtypeVariant)
		return sameVariant(a.Name, a.VariantIndex, a.Variant, b.Name, b.VariantIndex, b.Variant) &&
			Equal(a.Value, b.Value)
	case TupleVariant:
		b := b.(TupleVariant)
		return sameVariant(a.Name, a.VariantIndex, a.Variant, b.Name, b.VariantIndex, b.Variant) &&
			equalValues(a.Fields, b.Fields)
	case StructVariant:
		b := b.(StructVariant)
		return sameVariant(a.Name, a.VariantIndex, a.Variant, b.Name, b.VariantIndex, b.Variant) &&
			equalFields(a.Fields, b.Fields)
	case Seq:
		return equalValues(a, b.(Seq))
	case Map:
		b := b.(Map)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i].Key, b[i].Key) || !Equal(a[i].Value, b[i].Value) {
				return false
			}
		}
		return true
	default:
		// Remaining kinds are comparable scalars and named units.
		return a == b
	}
}

func sameVariant(n1 string, i1 uint32, v1 string, n2 string, i2 uint32, v2 string) bool {
	return n1 == n2 && i1 == i2 && v1 == v2
}

func equalValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !Equal(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}
