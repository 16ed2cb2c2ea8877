package decode

import (
	"math"
	"unicode/utf8"

	"github.com/teenjuna/shapebuf/num"
)

// Decodable targets for Go primitives. Integer targets accept any integer that fits; the other
// targets only accept their own shape.
type (
	Bool  bool
	I8    int8
	I16   int16
	I32   int32
	I64   int64
	I128  num.I128
	U8    uint8
	U16   uint16
	U32   uint32
	U64   uint64
	U128  num.U128
	F32   float32
	F64   float64
	Char  rune
	Str   string
	Bytes []byte
	Unit  struct{}
)

var (
	_ Decodable = (*Bool)(nil)
	_ Decodable = (*U8)(nil)
	_ Decodable = (*Str)(nil)
	_ Decodable = (*Bytes)(nil)
	_ Decodable = (*Unit)(nil)
	_ Decodable = (*Ignored)(nil)
)

func (v *Bool) Decode(d Decoder) error {
	return d.DecodeBool(boolVisitor{Base{"a boolean"}, v})
}

func (v *I8) Decode(d Decoder) error { return d.DecodeI8(newIntVisitor((*int8)(v), "i8")) }
func (v *I16) Decode(d Decoder) error { return d.DecodeI16(newIntVisitor((*int16)(v), "i16")) }
func (v *I32) Decode(d Decoder) error { return d.DecodeI32(newIntVisitor((*int32)(v), "i32")) }
func (v *I64) Decode(d Decoder) error { return d.DecodeI64(newIntVisitor((*int64)(v), "i64")) }
func (v *U8) Decode(d Decoder) error { return d.DecodeU8(newIntVisitor((*uint8)(v), "u8")) }
func (v *U16) Decode(d Decoder) error { return d.DecodeU16(newIntVisitor((*uint16)(v), "u16")) }
func (v *U32) Decode(d Decoder) error { return d.DecodeU32(newIntVisitor((*uint32)(v), "u32")) }
func (v *U64) Decode(d Decoder) error { return d.DecodeU64(newIntVisitor((*uint64)(v), "u64")) }

func (v *I128) Decode(d Decoder) error {
	return d.DecodeI128(wideVisitor{Base: Base{"i128"}, signed: (*num.I128)(v)})
}

func (v *U128) Decode(d Decoder) error {
	return d.DecodeU128(wideVisitor{Base: Base{"u128"}, unsigned: (*num.U128)(v)})
}

func (v *F32) Decode(d Decoder) error {
	return d.DecodeF32(floatVisitor{Base: Base{"f32"}, f32: (*float32)(v)})
}

func (v *F64) Decode(d Decoder) error {
	return d.DecodeF64(floatVisitor{Base: Base{"f64"}, f64: (*float64)(v)})
}

func (v *Char) Decode(d Decoder) error {
	return d.DecodeChar(charVisitor{Base{"a character"}, v})
}

func (v *Str) Decode(d Decoder) error {
	return d.DecodeString(strVisitor{Base{"a string"}, v})
}

func (v *Bytes) Decode(d Decoder) error {
	return d.DecodeByteBuf(bytesVisitor{Base{"a byte array"}, v})
}

func (v *Unit) Decode(d Decoder) error {
	return d.DecodeUnit(unitVisitor{Base{"unit"}})
}

type boolVisitor struct {
	Base
	out *Bool
}

func (v boolVisitor) VisitBool(b bool) error {
	*v.out = Bool(b)
	return nil
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type intVisitor[T integer] struct {
	Base
	out *T
}

func newIntVisitor[T integer](out *T, expected string) intVisitor[T] {
	return intVisitor[T]{Base: Base{expected}, out: out}
}

func (v intVisitor[T]) VisitI8(x int8) error { return v.signed(int64(x)) }
func (v intVisitor[T]) VisitI16(x int16) error { return v.signed(int64(x)) }
func (v intVisitor[T]) VisitI32(x int32) error { return v.signed(int64(x)) }
func (v intVisitor[T]) VisitI64(x int64) error { return v.signed(x) }
func (v intVisitor[T]) VisitU8(x uint8) error { return v.unsigned(uint64(x)) }
func (v intVisitor[T]) VisitU16(x uint16) error { return v.unsigned(uint64(x)) }
func (v intVisitor[T]) VisitU32(x uint32) error { return v.unsigned(uint64(x)) }
func (v intVisitor[T]) VisitU64(x uint64) error { return v.unsigned(x) }

func (v intVisitor[T]) VisitI128(x num.I128) error {
	if (x.Hi == 0 && x.Lo <= math.MaxInt64) || (x.Hi == -1 && x.Lo > math.MaxInt64) {
		return v.signed(int64(x.Lo))
	}
	return InvalidValue(UnexpectedSigned(x), v.Expected)
}

func (v intVisitor[T]) VisitU128(x num.U128) error {
	if x.Hi == 0 {
		return v.unsigned(x.Lo)
	}
	return InvalidValue(UnexpectedUnsigned(x), v.Expected)
}

func (v intVisitor[T]) signed(x int64) error {
	t := T(x)
	if int64(t) != x || (t < 0) != (x < 0) {
		return InvalidValue(UnexpectedSigned(x), v.Expected)
	}
	*v.out = t
	return nil
}

func (v intVisitor[T]) unsigned(x uint64) error {
	t := T(x)
	if uint64(t) != x || t < 0 {
		return InvalidValue(UnexpectedUnsigned(x), v.Expected)
	}
	*v.out = t
	return nil
}

type wideVisitor struct {
	Base
	signed   *num.I128
	unsigned *num.U128
}

func (v wideVisitor) VisitI8(x int8) error { return v.fromSigned(int64(x)) }
func (v wideVisitor) VisitI16(x int16) error { return v.fromSigned(int64(x)) }
func (v wideVisitor) VisitI32(x int32) error { return v.fromSigned(int64(x)) }
func (v wideVisitor) VisitI64(x int64) error { return v.fromSigned(x) }
func (v wideVisitor) VisitU8(x uint8) error { return v.fromUnsigned(uint64(x)) }
func (v wideVisitor) VisitU16(x uint16) error { return v.fromUnsigned(uint64(x)) }
func (v wideVisitor) VisitU32(x uint32) error { return v.fromUnsigned(uint64(x)) }
func (v wideVisitor) VisitU64(x uint64) error { return v.fromUnsigned(x) }

func (v wideVisitor) VisitI128(x num.I128) error {
	if v.signed != nil {
		*v.signed = x
		return nil
	}
	if x.Hi < 0 {
		return InvalidValue(UnexpectedSigned(x), v.Expected)
	}
	*v.unsigned = num.U128{Hi: uint64(x.Hi), Lo: x.Lo}
	return nil
}

func (v wideVisitor) VisitU128(x num.U128) error {
	if v.unsigned != nil {
		*v.unsigned = x
		return nil
	}
	if x.Hi > math.MaxInt64 {
		return InvalidValue(UnexpectedUnsigned(x), v.Expected)
	}
	*v.signed = num.I128{Hi: int64(x.Hi), Lo: x.Lo}
	return nil
}

func (v wideVisitor) fromSigned(x int64) error {
	return v.VisitI128(num.I128From64(x))
}

func (v wideVisitor) fromUnsigned(x uint64) error {
	return v.VisitU128(num.U128From64(x))
}

type floatVisitor struct {
	Base
	f32 *float32
	f64 *float64
}

func (v floatVisitor) VisitF32(x float32) error {
	if v.f32 != nil {
		*v.f32 = x
	} else {
		*v.f64 = float64(x)
	}
	return nil
}

func (v floatVisitor) VisitF64(x float64) error {
	if v.f64 != nil {
		*v.f64 = x
	} else {
		*v.f32 = float32(x)
	}
	return nil
}

type charVisitor struct {
	Base
	out *Char
}

func (v charVisitor) VisitChar(c rune) error {
	*v.out = Char(c)
	return nil
}

func (v charVisitor) VisitStr(s string) error {
	c, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return InvalidValue(UnexpectedStr(s), v.Expected)
	}
	*v.out = Char(c)
	return nil
}

func (v charVisitor) VisitBorrowedStr(s string) error { return v.VisitStr(s) }
func (v charVisitor) VisitString(s string) error { return v.VisitStr(s) }

type strVisitor struct {
	Base
	out *Str
}

func (v strVisitor) VisitStr(s string) error {
	*v.out = Str(s)
	return nil
}

func (v strVisitor) VisitBorrowedStr(s string) error { return v.VisitStr(s) }
func (v strVisitor) VisitString(s string) error { return v.VisitStr(s) }

func (v strVisitor) VisitChar(c rune) error {
	return v.VisitStr(string(c))
}

type bytesVisitor struct {
	Base
	out *Bytes
}

// VisitBytes copies since the data is only valid during the call.
func (v bytesVisitor) VisitBytes(b []byte) error {
	*v.out = append(Bytes(nil), b...)
	return nil
}

func (v bytesVisitor) VisitBorrowedBytes(b []byte) error {
	*v.out = Bytes(b)
	return nil
}

func (v bytesVisitor) VisitByteBuf(b []byte) error {
	*v.out = Bytes(b)
	return nil
}

type unitVisitor struct {
	Base
}

func (unitVisitor) VisitUnit() error {
	return nil
}

// Ignored accepts and discards any value.
type Ignored struct{}

func (v *Ignored) Decode(d Decoder) error {
	return d.DecodeIgnoredAny(ignoredVisitor{Base{"anything at all"}})
}

type ignoredVisitor struct {
	Base
}

func (ignoredVisitor) VisitBool(bool) error { return nil }
func (ignoredVisitor) VisitI8(int8) error { return nil }
func (ignoredVisitor) VisitI16(int16) error { return nil }
func (ignoredVisitor) VisitI32(int32) error { return nil }
func (ignoredVisitor) VisitI64(int64) error { return nil }
func (ignoredVisitor) VisitI128(num.I128) error { return nil }
func (ignoredVisitor) VisitU8(uint8) error { return nil }
func (ignoredVisitor) VisitU16(uint16) error { return nil }
func (ignoredVisitor) VisitU32(uint32) error { return nil }
func (ignoredVisitor) VisitU64(uint64) error { return nil }
func (ignoredVisitor) VisitU128(num.U128) error { return nil }
func (ignoredVisitor) VisitF32(float32) error { return nil }
func (ignoredVisitor) VisitF64(float64) error { return nil }
func (ignoredVisitor) VisitChar(rune) error { return nil }
func (ignoredVisitor) VisitStr(string) error { return nil }
func (ignoredVisitor) VisitBorrowedStr(string) error { return nil }
func (ignoredVisitor) VisitString(string) error { return nil }
func (ignoredVisitor) VisitBytes([]byte) error { return nil }
func (ignoredVisitor) VisitBorrowedBytes([]byte) error { return nil }
func (ignoredVisitor) VisitByteBuf([]byte) error { return nil }
func (ignoredVisitor) VisitNone() error { return nil }
func (ignoredVisitor) VisitUnit() error { return nil }

func (ignoredVisitor) VisitSome(d Decoder) error {
	return new(Ignored).Decode(d)
}

func (ignoredVisitor) VisitNewtypeStruct(d Decoder) error {
	return new(Ignored).Decode(d)
}

func (ignoredVisitor) VisitSeq(s SeqAccess) error {
	for {
		ok, err := s.NextElement(new(Ignored))
		if err != nil || !ok {
			return err
		}
	}
}

func (ignoredVisitor) VisitMap(m MapAccess) error {
	for {
		ok, err := m.NextKey(new(Ignored))
		if err != nil || !ok {
			return err
		}
		if err := m.NextValue(new(Ignored)); err != nil {
			return err
		}
	}
}

func (ignoredVisitor) VisitEnum(e EnumAccess) error {
	va, err := e.Variant(new(Ignored))
	if err != nil {
		return err
	}
	return va.Newtype(new(Ignored))
}
