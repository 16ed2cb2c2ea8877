// This package contains a JSON [codec.Codec].
//
// Enums are externally tagged: a unit variant is its name, other variants are objects with the
// name as the only key. Options and units are null, byte strings are base64 strings and 128-bit
// integers are plain numbers. Map keys must be strings, characters, integers or unit variants.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/teenjuna/shapebuf/codec"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
)

var ErrKeyMustBeString = errors.New("key must be a string")

type Codec struct {
	buf *bytes.Buffer
}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec) Encode(v encode.Encodable) ([]byte, error) {
	c.buf.Reset()
	if err := v.Encode(&encoder{buf: c.buf}); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec) Derive() codec.Codec {
	return New()
}

type encoder struct {
	buf *bytes.Buffer
}

var _ encode.Encoder = (*encoder)(nil)

func (e *encoder) literal(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.buf.Write(b)
	return nil
}

func (e *encoder) null() error {
	e.buf.WriteString("null")
	return nil
}

func (e *encoder) int(v int64) error {
	e.buf.WriteString(strconv.FormatInt(v, 10))
	return nil
}

func (e *encoder) uint(v uint64) error {
	e.buf.WriteString(strconv.FormatUint(v, 10))
	return nil
}

func (e *encoder) float(v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return e.null()
	}
	if bits == 32 {
		return e.literal(float32(v))
	}
	return e.literal(v)
}

func (e *encoder) EncodeBool(v bool) error { return e.literal(v) }
func (e *encoder) EncodeI8(v int8) error { return e.int(int64(v)) }
func (e *encoder) EncodeI16(v int16) error { return e.int(int64(v)) }
func (e *encoder) EncodeI32(v int32) error { return e.int(int64(v)) }
func (e *encoder) EncodeI64(v int64) error { return e.int(v) }
func (e *encoder) EncodeU8(v uint8) error { return e.uint(uint64(v)) }
func (e *encoder) EncodeU16(v uint16) error { return e.uint(uint64(v)) }
func (e *encoder) EncodeU32(v uint32) error { return e.uint(uint64(v)) }
func (e *encoder) EncodeU64(v uint64) error { return e.uint(v) }
func (e *encoder) EncodeF32(v float32) error { return e.float(float64(v), 32) }
func (e *encoder) EncodeF64(v float64) error { return e.float(v, 64) }
func (e *encoder) EncodeChar(v rune) error { return e.literal(string(v)) }
func (e *encoder) EncodeStr(v string) error { return e.literal(v) }
func (e *encoder) EncodeBytes(v []byte) error { return e.literal(v) }
func (e *encoder) EncodeNone() error { return e.null() }
func (e *encoder) EncodeSome(v encode.Encodable) error { return v.Encode(e) }
func (e *encoder) EncodeUnit() error { return e.null() }
func (e *encoder) EncodeUnitStruct(string) error { return e.null() }

func (e *encoder) EncodeI128(v num.I128) error {
	e.buf.WriteString(v.String())
	return nil
}

func (e *encoder) EncodeU128(v num.U128) error {
	e.buf.WriteString(v.String())
	return nil
}

func (e *encoder) EncodeNewtypeStruct(_ string, v encode.Encodable) error {
	return v.Encode(e)
}

func (e *encoder) EncodeTupleStruct(_ string, _ int) (encode.SeqEncoder, error) {
	return e.array(""), nil
}

func (e *encoder) EncodeStruct(_ string, _ int) (encode.StructEncoder, error) {
	return e.object(""), nil
}

func (e *encoder) EncodeUnitVariant(_ string, _ uint32, variant string) error {
	return e.literal(variant)
}

func (e *encoder) EncodeNewtypeVariant(_ string, _ uint32, variant string, v encode.Encodable) error {
	e.buf.WriteByte('{')
	if err := e.key(variant); err != nil {
		return err
	}
	if err := v.Encode(e); err != nil {
		return err
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) EncodeTupleVariant(
	_ string,
	_ uint32,
	variant string,
	_ int,
) (encode.SeqEncoder, error) {
	e.buf.WriteByte('{')
	if err := e.key(variant); err != nil {
		return nil, err
	}
	return e.array("}"), nil
}

func (e *encoder) EncodeStructVariant(
	_ string,
	_ uint32,
	variant string,
	_ int,
) (encode.StructEncoder, error) {
	e.buf.WriteByte('{')
	if err := e.key(variant); err != nil {
		return nil, err
	}
	return e.object("}"), nil
}

func (e *encoder) EncodeTuple(int) (encode.SeqEncoder, error) {
	return e.array(""), nil
}

func (e *encoder) EncodeSeq(int) (encode.SeqEncoder, error) {
	return e.array(""), nil
}

func (e *encoder) EncodeMap(int) (encode.MapEncoder, error) {
	return e.object(""), nil
}

func (e *encoder) key(k string) error {
	if err := e.literal(k); err != nil {
		return err
	}
	e.buf.WriteByte(':')
	return nil
}

func (e *encoder) array(suffix string) *container {
	e.buf.WriteByte('[')
	return &container{e: e, close: "]" + suffix}
}

func (e *encoder) object(suffix string) *container {
	e.buf.WriteByte('{')
	return &container{e: e, close: "}" + suffix}
}

// container writes the elements of an array or the members of an object.
type container struct {
	e     *encoder
	close string
	n     int
}

func (c *container) sep() {
	if c.n > 0 {
		c.e.buf.WriteByte(',')
	}
	c.n++
}

func (c *container) EncodeElement(v encode.Encodable) error {
	c.sep()
	return v.Encode(c.e)
}

func (c *container) EncodeField(key string, v encode.Encodable) error {
	c.sep()
	if err := c.e.key(key); err != nil {
		return err
	}
	return v.Encode(c.e)
}

func (c *container) EncodeKey(k encode.Encodable) error {
	c.sep()
	if err := k.Encode(&keyEncoder{e: c.e}); err != nil {
		return err
	}
	c.e.buf.WriteByte(':')
	return nil
}

func (c *container) EncodeValue(v encode.Encodable) error {
	return v.Encode(c.e)
}

func (c *container) EncodeEntry(k, v encode.Encodable) error {
	if err := c.EncodeKey(k); err != nil {
		return err
	}
	return c.EncodeValue(v)
}

func (c *container) End() error {
	c.e.buf.WriteString(c.close)
	return nil
}
