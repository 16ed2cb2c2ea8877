package shapebuf

import (
	"bytes"
	"iter"
	"strings"

	"github.com/teenjuna/shapebuf/num"
	"github.com/teenjuna/shapebuf/value"
)

// Field is a named field passed to [RecordStruct] and [RecordStructVariant].
type Field struct {
	Name  string
	Value Ref
}

func leaf(v value.Value) Ref {
	return Ref{root: v}
}

func Unit() Ref { return leaf(value.Unit{}) }
func Bool(v bool) Ref { return leaf(value.Bool(v)) }
func U8(v uint8) Ref { return leaf(value.U8(v)) }
func U16(v uint16) Ref { return leaf(value.U16(v)) }
func U32(v uint32) Ref { return leaf(value.U32(v)) }
func U64(v uint64) Ref { return leaf(value.U64(v)) }
func U128(v num.U128) Ref { return leaf(value.U128(v)) }
func I8(v int8) Ref { return leaf(value.I8(v)) }
func I16(v int16) Ref { return leaf(value.I16(v)) }
func I32(v int32) Ref { return leaf(value.I32(v)) }
func I64(v int64) Ref { return leaf(value.I64(v)) }
func I128(v num.I128) Ref { return leaf(value.I128(v)) }
func F32(v float32) Ref { return leaf(value.F32(v)) }
func F64(v float64) Ref { return leaf(value.F64(v)) }
func Char(v rune) Ref { return leaf(value.Char(v)) }
func None() Ref { return leaf(value.None{}) }

// OwnedStr creates a buffer for a string, copying it.
func OwnedStr(v string) Ref {
	return leaf(value.Str(strings.Clone(v)))
}

// Str creates a buffer for a string borrowed from the caller. The buffer is bounded.
func Str(v string) Ref {
	return Ref{root: value.BorrowedStr(v), bounded: true}
}

// StaticStr creates a buffer for a borrowed string that lives forever, like a constant. The buffer
// isn't bounded.
func StaticStr(v string) Ref {
	return leaf(value.BorrowedStr(v))
}

// OwnedBytes creates a buffer for a byte string, copying it.
func OwnedBytes(v []byte) Ref {
	return leaf(value.Bytes(bytes.Clone(v)))
}

// Bytes creates a buffer for a byte string borrowed from the caller. The buffer is bounded and v
// must not be modified while it is in use.
func Bytes(v []byte) Ref {
	return Ref{root: value.BorrowedBytes(v), bounded: true}
}

// StaticBytes creates a buffer for a borrowed byte string that is never modified. The buffer isn't
// bounded.
func StaticBytes(v []byte) Ref {
	return leaf(value.BorrowedBytes(v))
}

func Some(v Ref) Ref {
	return Ref{root: value.Some{Value: v.root}, bounded: v.bounded}
}

// UnitStruct creates a buffer for a struct without fields, like `struct A`.
func UnitStruct(name string) Ref {
	return leaf(value.UnitStruct{Name: name})
}

// NewtypeStruct creates a buffer for a struct wrapping one value, like `struct A(T)`.
func NewtypeStruct(name string, v Ref) Ref {
	return Ref{root: value.NewtypeStruct{Name: name, Value: v.root}, bounded: v.bounded}
}

// RecordStruct creates a buffer for a struct with named fields, like `struct A { a: T, b: U }`.
func RecordStruct(name string, fields ...Field) Ref {
	fs, bounded := collectFields(fields)
	return Ref{root: value.Struct{Name: name, Fields: fs}, bounded: bounded}
}

// TupleStruct creates a buffer for a struct with unnamed fields, like `struct A(T, U)`.
func TupleStruct(name string, fields ...Ref) Ref {
	vs, bounded := collect(fields)
	return Ref{root: value.TupleStruct{Name: name, Fields: vs}, bounded: bounded}
}

// Tuple creates a buffer for a tuple, like `(T, U)`.
func Tuple(elems ...Ref) Ref {
	vs, bounded := collect(elems)
	return Ref{root: value.Tuple(vs), bounded: bounded}
}

// UnitVariant creates a buffer for an enum variant without payload, like `A::B`.
func UnitVariant(name string, variantIndex uint32, variant string) Ref {
	return leaf(value.UnitVariant{Name: name, VariantIndex: variantIndex, Variant: variant})
}

// NewtypeVariant creates a buffer for an enum variant wrapping one value, like `A::B(T)`.
func NewtypeVariant(name string, variantIndex uint32, variant string, v Ref) Ref {
	return Ref{
		root: value.NewtypeVariant{
			Name:         name,
			VariantIndex: variantIndex,
			Variant:      variant,
			Value:        v.root,
		},
		bounded: v.bounded,
	}
}

// TupleVariant creates a buffer for an enum variant with unnamed fields, like `A::B(T, U)`.
func TupleVariant(name string, variantIndex uint32, variant string, fields ...Ref) Ref {
	vs, bounded := collect(fields)
	return Ref{
		root: value.TupleVariant{
			Name:         name,
			VariantIndex: variantIndex,
			Variant:      variant,
			Fields:       vs,
		},
		bounded: bounded,
	}
}

// RecordStructVariant creates a buffer for an enum variant with named fields, like
// `A::B { a: T, b: U }`.
func RecordStructVariant(name string, variantIndex uint32, variant string, fields ...Field) Ref {
	fs, bounded := collectFields(fields)
	return Ref{
		root: value.StructVariant{
			Name:         name,
			VariantIndex: variantIndex,
			Variant:      variant,
			Fields:       fs,
		},
		bounded: bounded,
	}
}

// Seq creates a buffer for a sequence.
func Seq(elems iter.Seq[Ref]) Ref {
	vs := make([]value.Value, 0)
	bounded := false
	for elem := range elems {
		vs = append(vs, elem.root)
		bounded = bounded || elem.bounded
	}
	return Ref{root: value.Seq(vs), bounded: bounded}
}

// Map creates a buffer for a map. Entries keep their order and aren't deduplicated.
func Map(entries iter.Seq2[Ref, Ref]) Ref {
	es := make([]value.Entry, 0)
	bounded := false
	for k, v := range entries {
		es = append(es, value.Entry{Key: k.root, Value: v.root})
		bounded = bounded || k.bounded || v.bounded
	}
	return Ref{root: value.Map(es), bounded: bounded}
}

func collect(refs []Ref) ([]value.Value, bool) {
	vs := make([]value.Value, 0, len(refs))
	bounded := false
	for _, r := range refs {
		vs = append(vs, r.root)
		bounded = bounded || r.bounded
	}
	return vs, bounded
}

func collectFields(fields []Field) ([]value.Field, bool) {
	fs := make([]value.Field, 0, len(fields))
	bounded := false
	for _, f := range fields {
		fs = append(fs, value.Field{Name: f.Name, Value: f.Value.root})
		bounded = bounded || f.Value.bounded
	}
	return fs, bounded
}
