// This package contains the pull interface: a [Decoder] that a consumer drives with a [Visitor]
// to rebuild a typed value.
//
// A Decodable target asks the decoder for the shape it expects. The decoder answers with one call
// on the visitor describing the shape it actually holds; it is up to the visitor to accept or
// reject it. Compound shapes are handed over as cursors ([SeqAccess], [MapAccess], [EnumAccess]).
package decode

import "github.com/teenjuna/shapebuf/num"

// Decodable is a target that can be filled from a [Decoder]. Implementations are usually pointers.
type Decodable interface {
	Decode(d Decoder) error
}

// Decoder produces exactly one visitor call per Decode method.
//
// The shape requested by the method is a hint. Self-describing decoders are free to ignore it and
// report whatever they hold.
type Decoder interface {
	DecodeAny(v Visitor) error
	DecodeBool(v Visitor) error
	DecodeI8(v Visitor) error
	DecodeI16(v Visitor) error
	DecodeI32(v Visitor) error
	DecodeI64(v Visitor) error
	DecodeI128(v Visitor) error
	DecodeU8(v Visitor) error
	DecodeU16(v Visitor) error
	DecodeU32(v Visitor) error
	DecodeU64(v Visitor) error
	DecodeU128(v Visitor) error
	DecodeF32(v Visitor) error
	DecodeF64(v Visitor) error
	DecodeChar(v Visitor) error
	DecodeStr(v Visitor) error
	DecodeString(v Visitor) error
	DecodeBytes(v Visitor) error
	DecodeByteBuf(v Visitor) error
	DecodeOption(v Visitor) error
	DecodeUnit(v Visitor) error
	DecodeUnitStruct(name string, v Visitor) error
	DecodeNewtypeStruct(name string, v Visitor) error
	DecodeSeq(v Visitor) error
	DecodeTuple(len int, v Visitor) error
	DecodeTupleStruct(name string, len int, v Visitor) error
	DecodeMap(v Visitor) error
	DecodeStruct(name string, fields []string, v Visitor) error
	DecodeEnum(name string, variants []string, v Visitor) error
	DecodeIdentifier(v Visitor) error
	DecodeIgnoredAny(v Visitor) error
}

// Visitor receives the shape held by a [Decoder].
//
// Strings and byte strings come in three flavours. VisitStr and VisitBytes pass data that is only
// valid during the call. VisitBorrowedStr and VisitBorrowedBytes pass data that stays valid for as
// long as the decoder's source does, so it can be kept without copying. VisitString and
// VisitByteBuf hand over ownership of the data.
type Visitor interface {
	// Expecting describes what the visitor accepts, like "a string".
	Expecting() string

	VisitBool(v bool) error
	VisitI8(v int8) error
	VisitI16(v int16) error
	VisitI32(v int32) error
	VisitI64(v int64) error
	VisitI128(v num.I128) error
	VisitU8(v uint8) error
	VisitU16(v uint16) error
	VisitU32(v uint32) error
	VisitU64(v uint64) error
	VisitU128(v num.U128) error
	VisitF32(v float32) error
	VisitF64(v float64) error
	VisitChar(v rune) error

	VisitStr(v string) error
	VisitBorrowedStr(v string) error
	VisitString(v string) error
	VisitBytes(v []byte) error
	VisitBorrowedBytes(v []byte) error
	VisitByteBuf(v []byte) error

	VisitNone() error
	VisitSome(d Decoder) error
	VisitUnit() error
	VisitNewtypeStruct(d Decoder) error
	VisitSeq(s SeqAccess) error
	VisitMap(m MapAccess) error
	VisitEnum(e EnumAccess) error
}

// SeqAccess is a single-pass cursor over the elements of a sequence.
type SeqAccess interface {
	// NextElement decodes the next element into seed. It reports false once the sequence is
	// exhausted, leaving seed untouched.
	NextElement(seed Decodable) (bool, error)
	// SizeHint returns the number of remaining elements, if known.
	SizeHint() (int, bool)
}

// MapAccess is a single-pass cursor over the entries of a map. Each NextKey must be followed by
// NextValue before the next key is requested.
type MapAccess interface {
	NextKey(seed Decodable) (bool, error)
	NextValue(seed Decodable) error
	SizeHint() (int, bool)
}

// EnumAccess gives access to the variant identifier of an enum.
type EnumAccess interface {
	// Variant decodes the variant identifier into seed and returns the accessor for the payload.
	Variant(seed Decodable) (VariantAccess, error)
}

// VariantAccess decodes the payload of an enum variant. Exactly one method must be called.
type VariantAccess interface {
	Unit() error
	Newtype(seed Decodable) error
	Tuple(len int, v Visitor) error
	Struct(fields []string, v Visitor) error
}
