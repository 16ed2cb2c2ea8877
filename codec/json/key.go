package json

import (
	"strconv"

	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
)

// keyEncoder writes object keys. Integers are quoted and newtype structs are transparent.
type keyEncoder struct {
	e *encoder
}

var _ encode.Encoder = (*keyEncoder)(nil)

func (k *keyEncoder) str(s string) error {
	return k.e.literal(s)
}

func (k *keyEncoder) EncodeBool(bool) error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeI8(v int8) error { return k.str(strconv.FormatInt(int64(v), 10)) }
func (k *keyEncoder) EncodeI16(v int16) error { return k.str(strconv.FormatInt(int64(v), 10)) }
func (k *keyEncoder) EncodeI32(v int32) error { return k.str(strconv.FormatInt(int64(v), 10)) }
func (k *keyEncoder) EncodeI64(v int64) error { return k.str(strconv.FormatInt(v, 10)) }
func (k *keyEncoder) EncodeI128(v num.I128) error { return k.str(v.String()) }
func (k *keyEncoder) EncodeU8(v uint8) error { return k.str(strconv.FormatUint(uint64(v), 10)) }
func (k *keyEncoder) EncodeU16(v uint16) error { return k.str(strconv.FormatUint(uint64(v), 10)) }
func (k *keyEncoder) EncodeU32(v uint32) error { return k.str(strconv.FormatUint(uint64(v), 10)) }
func (k *keyEncoder) EncodeU64(v uint64) error { return k.str(strconv.FormatUint(v, 10)) }
func (k *keyEncoder) EncodeU128(v num.U128) error { return k.str(v.String()) }
func (k *keyEncoder) EncodeF32(float32) error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeF64(float64) error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeChar(v rune) error { return k.str(string(v)) }
func (k *keyEncoder) EncodeStr(v string) error { return k.str(v) }
func (k *keyEncoder) EncodeBytes([]byte) error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeNone() error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeSome(encode.Encodable) error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeUnit() error { return ErrKeyMustBeString }
func (k *keyEncoder) EncodeUnitStruct(string) error { return ErrKeyMustBeString }

func (k *keyEncoder) EncodeNewtypeStruct(_ string, v encode.Encodable) error {
	return v.Encode(k)
}

func (k *keyEncoder) EncodeUnitVariant(_ string, _ uint32, variant string) error {
	return k.str(variant)
}

func (k *keyEncoder) EncodeNewtypeVariant(string, uint32, string, encode.Encodable) error {
	return ErrKeyMustBeString
}

func (k *keyEncoder) EncodeTupleStruct(string, int) (encode.SeqEncoder, error) {
	return nil, ErrKeyMustBeString
}

func (k *keyEncoder) EncodeStruct(string, int) (encode.StructEncoder, error) {
	return nil, ErrKeyMustBeString
}

func (k *keyEncoder) EncodeTupleVariant(string, uint32, string, int) (encode.SeqEncoder, error) {
	return nil, ErrKeyMustBeString
}

func (k *keyEncoder) EncodeStructVariant(string, uint32, string, int) (encode.StructEncoder, error) {
	return nil, ErrKeyMustBeString
}

func (k *keyEncoder) EncodeTuple(int) (encode.SeqEncoder, error) {
	return nil, ErrKeyMustBeString
}

func (k *keyEncoder) EncodeSeq(int) (encode.SeqEncoder, error) {
	return nil, ErrKeyMustBeString
}

func (k *keyEncoder) EncodeMap(int) (encode.MapEncoder, error) {
	return nil, ErrKeyMustBeString
}
