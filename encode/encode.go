// This package contains the push interface: an [Encoder] that a value drives, call by call, to
// describe its own shape without committing to a wire format.
package encode

import "github.com/teenjuna/shapebuf/num"

// Encodable is a value that can describe itself to an [Encoder].
type Encodable interface {
	Encode(e Encoder) error
}

// Func adapts a function to [Encodable].
type Func func(e Encoder) error

func (f Func) Encode(e Encoder) error {
	return f(e)
}

// Encoder receives the shape of a value.
//
// Every value makes exactly one top-level call. Compound values return a builder which is driven
// element by element and then finalized with End. Length hints are advisory; a negative hint
// passed to EncodeSeq or EncodeMap means the length is unknown.
//
// Implementations are not considered thread-safe.
type Encoder interface {
	EncodeBool(v bool) error
	EncodeI8(v int8) error
	EncodeI16(v int16) error
	EncodeI32(v int32) error
	EncodeI64(v int64) error
	EncodeI128(v num.I128) error
	EncodeU8(v uint8) error
	EncodeU16(v uint16) error
	EncodeU32(v uint32) error
	EncodeU64(v uint64) error
	EncodeU128(v num.U128) error
	EncodeF32(v float32) error
	EncodeF64(v float64) error
	EncodeChar(v rune) error
	// EncodeStr encodes a string. The encoder must not retain v's memory past the call.
	EncodeStr(v string) error
	// EncodeBytes encodes a byte string. The encoder must not retain v past the call.
	EncodeBytes(v []byte) error

	EncodeNone() error
	EncodeSome(v Encodable) error
	EncodeUnit() error

	// EncodeUnitStruct encodes a struct without fields, like `struct A`.
	EncodeUnitStruct(name string) error
	// EncodeNewtypeStruct encodes a struct wrapping a single value, like `struct A(T)`.
	EncodeNewtypeStruct(name string, v Encodable) error
	// EncodeTupleStruct begins a struct with unnamed fields, like `struct A(T, U)`.
	EncodeTupleStruct(name string, len int) (SeqEncoder, error)
	// EncodeStruct begins a struct with named fields, like `struct A { a: T, b: U }`.
	EncodeStruct(name string, len int) (StructEncoder, error)

	// EncodeUnitVariant encodes an enum variant without a payload. The variant index is assigned
	// by the author of the enum and is what decoders dispatch on; the variant name is diagnostic.
	EncodeUnitVariant(name string, variantIndex uint32, variant string) error
	EncodeNewtypeVariant(name string, variantIndex uint32, variant string, v Encodable) error
	EncodeTupleVariant(name string, variantIndex uint32, variant string, len int) (SeqEncoder, error)
	EncodeStructVariant(name string, variantIndex uint32, variant string, len int) (StructEncoder, error)

	EncodeTuple(len int) (SeqEncoder, error)
	EncodeSeq(len int) (SeqEncoder, error)
	EncodeMap(len int) (MapEncoder, error)
}

// SeqEncoder receives the elements of a sequence, tuple, tuple struct or tuple variant.
type SeqEncoder interface {
	EncodeElement(v Encodable) error
	End() error
}

// StructEncoder receives the fields of a struct or struct variant in declaration order.
type StructEncoder interface {
	EncodeField(key string, v Encodable) error
	End() error
}

// MapEncoder receives the entries of a map.
//
// Entries are either passed whole to EncodeEntry or split into an EncodeKey call that must be
// followed by an EncodeValue call.
type MapEncoder interface {
	EncodeKey(k Encodable) error
	EncodeValue(v Encodable) error
	EncodeEntry(k, v Encodable) error
	End() error
}
