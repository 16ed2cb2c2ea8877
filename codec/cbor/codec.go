// This package contains a CBOR [codec.Codec] built on github.com/fxamacker/cbor.
//
// Scalars use Core Deterministic Encoding (RFC 8949, section 4.2), so the same value always
// produces the same bytes. Map entries keep the order they were encoded in. Structs are maps keyed
// by field name, enums are externally tagged like in JSON, 128-bit integers are bignums when they
// don't fit into 64 bits.
package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/teenjuna/shapebuf/codec"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
)

const (
	majorArray byte = 4
	majorMap   byte = 5
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}
}

type Codec struct {
	buf []byte
}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	buf := make([]byte, 0)
	return &Codec{
		buf: buf,
	}
}

func (c *Codec) Encode(v encode.Encodable) ([]byte, error) {
	e := encoder{buf: c.buf[:0]}
	if err := v.Encode(&e); err != nil {
		return nil, fmt.Errorf("encode cbor: %w", err)
	}
	c.buf = e.buf

	out := make([]byte, len(e.buf))
	copy(out, e.buf)

	return out, nil
}

func (c *Codec) Derive() codec.Codec {
	return New()
}

type encoder struct {
	buf []byte
}

var _ encode.Encoder = (*encoder)(nil)

func (e *encoder) marshal(v any) error {
	b, err := encMode.Marshal(v)
	if err != nil {
		return err
	}
	e.buf = append(e.buf, b...)
	return nil
}

func (e *encoder) EncodeBool(v bool) error { return e.marshal(v) }
func (e *encoder) EncodeI8(v int8) error { return e.marshal(v) }
func (e *encoder) EncodeI16(v int16) error { return e.marshal(v) }
func (e *encoder) EncodeI32(v int32) error { return e.marshal(v) }
func (e *encoder) EncodeI64(v int64) error { return e.marshal(v) }
func (e *encoder) EncodeI128(v num.I128) error { return e.marshal(v.Big()) }
func (e *encoder) EncodeU8(v uint8) error { return e.marshal(v) }
func (e *encoder) EncodeU16(v uint16) error { return e.marshal(v) }
func (e *encoder) EncodeU32(v uint32) error { return e.marshal(v) }
func (e *encoder) EncodeU64(v uint64) error { return e.marshal(v) }
func (e *encoder) EncodeU128(v num.U128) error { return e.marshal(v.Big()) }
func (e *encoder) EncodeF32(v float32) error { return e.marshal(v) }
func (e *encoder) EncodeF64(v float64) error { return e.marshal(v) }
func (e *encoder) EncodeChar(v rune) error { return e.marshal(string(v)) }
func (e *encoder) EncodeStr(v string) error { return e.marshal(v) }
func (e *encoder) EncodeBytes(v []byte) error { return e.marshal(v) }
func (e *encoder) EncodeNone() error { return e.marshal(nil) }
func (e *encoder) EncodeSome(v encode.Encodable) error { return v.Encode(e) }
func (e *encoder) EncodeUnit() error { return e.marshal(nil) }
func (e *encoder) EncodeUnitStruct(string) error { return e.marshal(nil) }

func (e *encoder) EncodeNewtypeStruct(_ string, v encode.Encodable) error {
	return v.Encode(e)
}

func (e *encoder) EncodeTupleStruct(_ string, len int) (encode.SeqEncoder, error) {
	return e.container(majorArray, nil, len), nil
}

func (e *encoder) EncodeStruct(_ string, len int) (encode.StructEncoder, error) {
	return e.container(majorMap, nil, len), nil
}

func (e *encoder) EncodeUnitVariant(_ string, _ uint32, variant string) error {
	return e.EncodeStr(variant)
}

func (e *encoder) EncodeNewtypeVariant(_ string, _ uint32, variant string, v encode.Encodable) error {
	e.buf = appendHead(e.buf, majorMap, 1)
	if err := e.EncodeStr(variant); err != nil {
		return err
	}
	return v.Encode(e)
}

func (e *encoder) EncodeTupleVariant(
	_ string,
	_ uint32,
	variant string,
	len int,
) (encode.SeqEncoder, error) {
	return e.container(majorArray, &variant, len), nil
}

func (e *encoder) EncodeStructVariant(
	_ string,
	_ uint32,
	variant string,
	len int,
) (encode.StructEncoder, error) {
	return e.container(majorMap, &variant, len), nil
}

func (e *encoder) EncodeTuple(len int) (encode.SeqEncoder, error) {
	return e.container(majorArray, nil, len), nil
}

func (e *encoder) EncodeSeq(len int) (encode.SeqEncoder, error) {
	return e.container(majorArray, nil, len), nil
}

func (e *encoder) EncodeMap(len int) (encode.MapEncoder, error) {
	return e.container(majorMap, nil, len), nil
}

// appendHead appends the initial byte of a data item with the given major type and argument,
// using the shortest form.
func appendHead(b []byte, major byte, n uint64) []byte {
	major <<= 5
	switch {
	case n < 24:
		return append(b, major|byte(n))
	case n <= 0xff:
		return append(b, major|24, byte(n))
	case n <= 0xffff:
		return append(b, major|25, byte(n>>8), byte(n))
	case n <= 0xffffffff:
		return append(b, major|26, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	default:
		return append(b, major|27,
			byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
			byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}

// container buffers its body since deterministic encoding forbids indefinite lengths.
type container struct {
	parent  *encoder
	major   byte
	variant *string
	body    encoder
	n       uint64
}

func (e *encoder) container(major byte, variant *string, hint int) *container {
	return &container{
		parent:  e,
		major:   major,
		variant: variant,
		body:    encoder{buf: make([]byte, 0, min(max(hint, 0), 1024))},
	}
}

func (c *container) EncodeElement(v encode.Encodable) error {
	c.n++
	return v.Encode(&c.body)
}

func (c *container) EncodeField(key string, v encode.Encodable) error {
	c.n++
	if err := c.body.EncodeStr(key); err != nil {
		return err
	}
	return v.Encode(&c.body)
}

func (c *container) EncodeKey(k encode.Encodable) error {
	c.n++
	return k.Encode(&c.body)
}

func (c *container) EncodeValue(v encode.Encodable) error {
	return v.Encode(&c.body)
}

func (c *container) EncodeEntry(k, v encode.Encodable) error {
	if err := c.EncodeKey(k); err != nil {
		return err
	}
	return c.EncodeValue(v)
}

func (c *container) End() error {
	p := c.parent
	if c.variant != nil {
		p.buf = appendHead(p.buf, majorMap, 1)
		if err := p.EncodeStr(*c.variant); err != nil {
			return err
		}
	}
	p.buf = appendHead(p.buf, c.major, c.n)
	p.buf = append(p.buf, c.body.buf...)
	return nil
}
