// This package contains the tagged union every buffered value is made of.
//
// A [Value] is one of the concrete types of this package. Values form a tree: compound values own
// their children and nothing points back up. Once built, a tree must not be modified.
package value

import "github.com/teenjuna/shapebuf/num"

// Value is a node of a buffered tree.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	Bool bool
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	I128 num.I128
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	U128 num.U128
	F32  float32
	F64  float64
	Char rune

	// Str is an owned string.
	Str string
	// BorrowedStr is a string that is valid as long as its source is.
	BorrowedStr string
	// Bytes is an owned byte string. Nothing outside the tree refers to it.
	Bytes []byte
	// BorrowedBytes is a byte string aliasing memory outside the tree.
	BorrowedBytes []byte

	None struct{}
	Unit struct{}

	// Tuple is an unnamed sequence of heterogeneous values, like `(T, U)`.
	Tuple []Value
	// Seq is a homogeneous sequence.
	Seq []Value
	// Map is an ordered list of entries. Keys may be of any shape and aren't deduplicated.
	Map []Entry
)

type Some struct {
	Value Value
}

type UnitStruct struct {
	Name string
}

type NewtypeStruct struct {
	Name  string
	Value Value
}

// Struct holds its fields in declaration order.
type Struct struct {
	Name   string
	Fields []Field
}

type TupleStruct struct {
	Name   string
	Fields []Value
}

type UnitVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
}

type NewtypeVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
	Value        Value
}

type TupleVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
	Fields       []Value
}

type StructVariant struct {
	Name         string
	VariantIndex uint32
	Variant      string
	Fields       []Field
}

// Field is a named field of a struct or struct variant.
type Field struct {
	Name  string
	Value Value
}

// Entry is a key-value pair of a map.
type Entry struct {
	Key   Value
	Value Value
}

func (Bool) Kind() Kind { return KindBool }
func (I8) Kind() Kind { return KindI8 }
func (I16) Kind() Kind { return KindI16 }
func (I32) Kind() Kind { return KindI32 }
func (I64) Kind() Kind { return KindI64 }
func (I128) Kind() Kind { return KindI128 }
func (U8) Kind() Kind { return KindU8 }
func (U16) Kind() Kind { return KindU16 }
func (U32) Kind() Kind { return KindU32 }
func (U64) Kind() Kind { return KindU64 }
func (U128) Kind() Kind { return KindU128 }
func (F32) Kind() Kind { return KindF32 }
func (F64) Kind() Kind { return KindF64 }
func (Char) Kind() Kind { return KindChar }
func (Str) Kind() Kind { return KindStr }
func (BorrowedStr) Kind() Kind { return KindBorrowedStr }
func (Bytes) Kind() Kind { return KindBytes }
func (BorrowedBytes) Kind() Kind { return KindBorrowedBytes }
func (None) Kind() Kind { return KindNone }
func (Some) Kind() Kind { return KindSome }
func (Unit) Kind() Kind { return KindUnit }
func (UnitStruct) Kind() Kind { return KindUnitStruct }
func (NewtypeStruct) Kind() Kind { return KindNewtypeStruct }
func (Struct) Kind() Kind { return KindStruct }
func (TupleStruct) Kind() Kind { return KindTupleStruct }
func (Tuple) Kind() Kind { return KindTuple }
func (UnitVariant) Kind() Kind { return KindUnitVariant }
func (NewtypeVariant) Kind() Kind { return KindNewtypeVariant }
func (TupleVariant) Kind() Kind { return KindTupleVariant }
func (StructVariant) Kind() Kind { return KindStructVariant }
func (Seq) Kind() Kind { return KindSeq }
func (Map) Kind() Kind { return KindMap }

func (Bool) isValue() {}
func (I8) isValue() {}
func (I16) isValue() {}
func (I32) isValue() {}
func (I64) isValue() {}
func (I128) isValue() {}
func (U8) isValue() {}
func (U16) isValue() {}
func (U32) isValue() {}
func (U64) isValue() {}
func (U128) isValue() {}
func (F32) isValue() {}
func (F64) isValue() {}
func (Char) isValue() {}
func (Str) isValue() {}
func (BorrowedStr) isValue() {}
func (Bytes) isValue() {}
func (BorrowedBytes) isValue() {}
func (None) isValue() {}
func (Some) isValue() {}
func (Unit) isValue() {}
func (UnitStruct) isValue() {}
func (NewtypeStruct) isValue() {}
func (Struct) isValue() {}
func (TupleStruct) isValue() {}
func (Tuple) isValue() {}
func (UnitVariant) isValue() {}
func (NewtypeVariant) isValue() {}
func (TupleVariant) isValue() {}
func (StructVariant) isValue() {}
func (Seq) isValue() {}
func (Map) isValue() {}
