// This package contains an encoder that records the calls made to it as a flat list of tokens.
// Two values encode the same way if and only if their traces are equal.
package trace

import (
	"fmt"
	"math"
	"strings"

	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
)

type Op string

const (
	OpBool           Op = "bool"
	OpI8             Op = "i8"
	OpI16            Op = "i16"
	OpI32            Op = "i32"
	OpI64            Op = "i64"
	OpI128           Op = "i128"
	OpU8             Op = "u8"
	OpU16            Op = "u16"
	OpU32            Op = "u32"
	OpU64            Op = "u64"
	OpU128           Op = "u128"
	OpF32            Op = "f32"
	OpF64            Op = "f64"
	OpChar           Op = "char"
	OpStr            Op = "str"
	OpBytes          Op = "bytes"
	OpNone           Op = "none"
	OpSome           Op = "some"
	OpUnit           Op = "unit"
	OpUnitStruct     Op = "unit_struct"
	OpNewtypeStruct  Op = "newtype_struct"
	OpTupleStruct    Op = "tuple_struct"
	OpStruct         Op = "struct"
	OpUnitVariant    Op = "unit_variant"
	OpNewtypeVariant Op = "newtype_variant"
	OpTupleVariant   Op = "tuple_variant"
	OpStructVariant  Op = "struct_variant"
	OpTuple          Op = "tuple"
	OpSeq            Op = "seq"
	OpMap            Op = "map"
	OpField          Op = "field"
	OpKey            Op = "key"
	OpValue          Op = "value"
	OpEnd            Op = "end"
)

// Token is a single recorded call. Floats are recorded by bit pattern.
type Token struct {
	Op           Op
	Name         string
	VariantIndex uint32
	Variant      string
	Len          int
	Value        any
}

func (t Token) String() string {
	var b strings.Builder
	b.WriteString(string(t.Op))
	if t.Name != "" {
		fmt.Fprintf(&b, " %s", t.Name)
	}
	if t.Variant != "" {
		fmt.Fprintf(&b, "::%s(%d)", t.Variant, t.VariantIndex)
	}
	if t.Len != 0 {
		fmt.Fprintf(&b, " len=%d", t.Len)
	}
	if t.Value != nil {
		fmt.Fprintf(&b, " %v", t.Value)
	}
	return b.String()
}

func Bool(v bool) Token { return Token{Op: OpBool, Value: v} }
func I8(v int8) Token { return Token{Op: OpI8, Value: v} }
func I16(v int16) Token { return Token{Op: OpI16, Value: v} }
func I32(v int32) Token { return Token{Op: OpI32, Value: v} }
func I64(v int64) Token { return Token{Op: OpI64, Value: v} }
func I128(v num.I128) Token { return Token{Op: OpI128, Value: v} }
func U8(v uint8) Token { return Token{Op: OpU8, Value: v} }
func U16(v uint16) Token { return Token{Op: OpU16, Value: v} }
func U32(v uint32) Token { return Token{Op: OpU32, Value: v} }
func U64(v uint64) Token { return Token{Op: OpU64, Value: v} }
func U128(v num.U128) Token { return Token{Op: OpU128, Value: v} }
func F32(v float32) Token { return Token{Op: OpF32, Value: math.Float32bits(v)} }
func F64(v float64) Token { return Token{Op: OpF64, Value: math.Float64bits(v)} }
func Char(v rune) Token { return Token{Op: OpChar, Value: v} }
func Str(v string) Token { return Token{Op: OpStr, Value: v} }
func Bytes(v []byte) Token { return Token{Op: OpBytes, Value: string(v)} }
func None() Token { return Token{Op: OpNone} }
func Some() Token { return Token{Op: OpSome} }
func Unit() Token { return Token{Op: OpUnit} }
func UnitStruct(name string) Token { return Token{Op: OpUnitStruct, Name: name} }
func NewtypeStruct(name string) Token { return Token{Op: OpNewtypeStruct, Name: name} }
func Tuple(len int) Token { return Token{Op: OpTuple, Len: len} }
func Seq(len int) Token { return Token{Op: OpSeq, Len: len} }
func Map(len int) Token { return Token{Op: OpMap, Len: len} }
func Field(key string) Token { return Token{Op: OpField, Name: key} }
func Key() Token { return Token{Op: OpKey} }
func Value() Token { return Token{Op: OpValue} }
func End() Token { return Token{Op: OpEnd} }

func TupleStruct(name string, len int) Token {
	return Token{Op: OpTupleStruct, Name: name, Len: len}
}

func Struct(name string, len int) Token {
	return Token{Op: OpStruct, Name: name, Len: len}
}

func UnitVariant(name string, variantIndex uint32, variant string) Token {
	return Token{Op: OpUnitVariant, Name: name, VariantIndex: variantIndex, Variant: variant}
}

func NewtypeVariant(name string, variantIndex uint32, variant string) Token {
	return Token{Op: OpNewtypeVariant, Name: name, VariantIndex: variantIndex, Variant: variant}
}

func TupleVariant(name string, variantIndex uint32, variant string, len int) Token {
	return Token{
		Op:           OpTupleVariant,
		Name:         name,
		VariantIndex: variantIndex,
		Variant:      variant,
		Len:          len,
	}
}

func StructVariant(name string, variantIndex uint32, variant string, len int) Token {
	return Token{
		Op:           OpStructVariant,
		Name:         name,
		VariantIndex: variantIndex,
		Variant:      variant,
		Len:          len,
	}
}

// Record encodes v with a fresh [Recorder] and returns the trace.
func Record(v encode.Encodable) ([]Token, error) {
	r := &Recorder{}
	if err := v.Encode(r); err != nil {
		return nil, err
	}
	return r.Tokens, nil
}

// Recorder is an [encode.Encoder] that appends a token per call. Split map entries and whole ones
// are recorded identically.
type Recorder struct {
	Tokens []Token
}

var _ encode.Encoder = (*Recorder)(nil)

func (r *Recorder) push(t Token) error {
	r.Tokens = append(r.Tokens, t)
	return nil
}

func (r *Recorder) nested(t Token, v encode.Encodable) error {
	r.push(t)
	return v.Encode(r)
}

func (r *Recorder) EncodeBool(v bool) error { return r.push(Bool(v)) }
func (r *Recorder) EncodeI8(v int8) error { return r.push(I8(v)) }
func (r *Recorder) EncodeI16(v int16) error { return r.push(I16(v)) }
func (r *Recorder) EncodeI32(v int32) error { return r.push(I32(v)) }
func (r *Recorder) EncodeI64(v int64) error { return r.push(I64(v)) }
func (r *Recorder) EncodeI128(v num.I128) error { return r.push(I128(v)) }
func (r *Recorder) EncodeU8(v uint8) error { return r.push(U8(v)) }
func (r *Recorder) EncodeU16(v uint16) error { return r.push(U16(v)) }
func (r *Recorder) EncodeU32(v uint32) error { return r.push(U32(v)) }
func (r *Recorder) EncodeU64(v uint64) error { return r.push(U64(v)) }
func (r *Recorder) EncodeU128(v num.U128) error { return r.push(U128(v)) }
func (r *Recorder) EncodeF32(v float32) error { return r.push(F32(v)) }
func (r *Recorder) EncodeF64(v float64) error { return r.push(F64(v)) }
func (r *Recorder) EncodeChar(v rune) error { return r.push(Char(v)) }
func (r *Recorder) EncodeStr(v string) error { return r.push(Str(v)) }
func (r *Recorder) EncodeBytes(v []byte) error { return r.push(Bytes(v)) }
func (r *Recorder) EncodeNone() error { return r.push(None()) }
func (r *Recorder) EncodeSome(v encode.Encodable) error { return r.nested(Some(), v) }
func (r *Recorder) EncodeUnit() error { return r.push(Unit()) }
func (r *Recorder) EncodeUnitStruct(name string) error { return r.push(UnitStruct(name)) }

func (r *Recorder) EncodeNewtypeStruct(name string, v encode.Encodable) error {
	return r.nested(NewtypeStruct(name), v)
}

func (r *Recorder) EncodeTupleStruct(name string, len int) (encode.SeqEncoder, error) {
	r.push(TupleStruct(name, len))
	return builder{r}, nil
}

func (r *Recorder) EncodeStruct(name string, len int) (encode.StructEncoder, error) {
	r.push(Struct(name, len))
	return builder{r}, nil
}

func (r *Recorder) EncodeUnitVariant(name string, variantIndex uint32, variant string) error {
	return r.push(UnitVariant(name, variantIndex, variant))
}

func (r *Recorder) EncodeNewtypeVariant(
	name string,
	variantIndex uint32,
	variant string,
	v encode.Encodable,
) error {
	return r.nested(NewtypeVariant(name, variantIndex, variant), v)
}

func (r *Recorder) EncodeTupleVariant(
	name string,
	variantIndex uint32,
	variant string,
	len int,
) (encode.SeqEncoder, error) {
	r.push(TupleVariant(name, variantIndex, variant, len))
	return builder{r}, nil
}

func (r *Recorder) EncodeStructVariant(
	name string,
	variantIndex uint32,
	variant string,
	len int,
) (encode.StructEncoder, error) {
	r.push(StructVariant(name, variantIndex, variant, len))
	return builder{r}, nil
}

func (r *Recorder) EncodeTuple(len int) (encode.SeqEncoder, error) {
	r.push(Tuple(len))
	return builder{r}, nil
}

func (r *Recorder) EncodeSeq(len int) (encode.SeqEncoder, error) {
	r.push(Seq(len))
	return builder{r}, nil
}

func (r *Recorder) EncodeMap(len int) (encode.MapEncoder, error) {
	r.push(Map(len))
	return builder{r}, nil
}

type builder struct {
	r *Recorder
}

func (b builder) EncodeElement(v encode.Encodable) error {
	return v.Encode(b.r)
}

func (b builder) EncodeField(key string, v encode.Encodable) error {
	return b.r.nested(Field(key), v)
}

func (b builder) EncodeKey(k encode.Encodable) error {
	return b.r.nested(Key(), k)
}

func (b builder) EncodeValue(v encode.Encodable) error {
	return b.r.nested(Value(), v)
}

func (b builder) EncodeEntry(k, v encode.Encodable) error {
	if err := b.EncodeKey(k); err != nil {
		return err
	}
	return b.EncodeValue(v)
}

func (b builder) End() error {
	return b.r.push(End())
}
