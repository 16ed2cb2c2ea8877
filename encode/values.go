package encode

import "github.com/teenjuna/shapebuf/num"

// Encodable implementations for Go primitives.
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
	_ Encodable = Bool(false)
	_ Encodable = Str("")
	_ Encodable = Bytes(nil)
	_ Encodable = Unit{}
)

func (v Bool) Encode(e Encoder) error { return e.EncodeBool(bool(v)) }
func (v I8) Encode(e Encoder) error { return e.EncodeI8(int8(v)) }
func (v I16) Encode(e Encoder) error { return e.EncodeI16(int16(v)) }
func (v I32) Encode(e Encoder) error { return e.EncodeI32(int32(v)) }
func (v I64) Encode(e Encoder) error { return e.EncodeI64(int64(v)) }
func (v I128) Encode(e Encoder) error { return e.EncodeI128(num.I128(v)) }
func (v U8) Encode(e Encoder) error { return e.EncodeU8(uint8(v)) }
func (v U16) Encode(e Encoder) error { return e.EncodeU16(uint16(v)) }
func (v U32) Encode(e Encoder) error { return e.EncodeU32(uint32(v)) }
func (v U64) Encode(e Encoder) error { return e.EncodeU64(uint64(v)) }
func (v U128) Encode(e Encoder) error { return e.EncodeU128(num.U128(v)) }
func (v F32) Encode(e Encoder) error { return e.EncodeF32(float32(v)) }
func (v F64) Encode(e Encoder) error { return e.EncodeF64(float64(v)) }
func (v Char) Encode(e Encoder) error { return e.EncodeChar(rune(v)) }
func (v Str) Encode(e Encoder) error { return e.EncodeStr(string(v)) }
func (v Bytes) Encode(e Encoder) error { return e.EncodeBytes([]byte(v)) }
func (Unit) Encode(e Encoder) error { return e.EncodeUnit() }

// Option encodes nil as none and anything else as some.
func Option(v Encodable) Encodable {
	return Func(func(e Encoder) error {
		if v == nil {
			return e.EncodeNone()
		}
		return e.EncodeSome(v)
	})
}

// Seq encodes the elements as a sequence with a known length.
func Seq[T Encodable](elems []T) Encodable {
	return Func(func(e Encoder) error {
		s, err := e.EncodeSeq(len(elems))
		if err != nil {
			return err
		}
		for _, elem := range elems {
			if err := s.EncodeElement(elem); err != nil {
				return err
			}
		}
		return s.End()
	})
}
