// This package contains a MessagePack [codec.Codec] built on github.com/tinylib/msgp.
//
// Structs are maps keyed by field name, tuples and sequences are arrays. Enums are externally
// tagged like in JSON: a unit variant is its name, other variants are single-entry maps. Options
// and units are nil. 128-bit integers are 16-byte big-endian binaries.
package msgp

import (
	"encoding/binary"
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/teenjuna/shapebuf/codec"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
)

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
		return nil, fmt.Errorf("encode msgp: %w", err)
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

func (e *encoder) append(b []byte) error {
	e.buf = b
	return nil
}

func (e *encoder) EncodeBool(v bool) error { return e.append(msgp.AppendBool(e.buf, v)) }
func (e *encoder) EncodeI8(v int8) error { return e.append(msgp.AppendInt8(e.buf, v)) }
func (e *encoder) EncodeI16(v int16) error { return e.append(msgp.AppendInt16(e.buf, v)) }
func (e *encoder) EncodeI32(v int32) error { return e.append(msgp.AppendInt32(e.buf, v)) }
func (e *encoder) EncodeI64(v int64) error { return e.append(msgp.AppendInt64(e.buf, v)) }
func (e *encoder) EncodeU8(v uint8) error { return e.append(msgp.AppendUint8(e.buf, v)) }
func (e *encoder) EncodeU16(v uint16) error { return e.append(msgp.AppendUint16(e.buf, v)) }
func (e *encoder) EncodeU32(v uint32) error { return e.append(msgp.AppendUint32(e.buf, v)) }
func (e *encoder) EncodeU64(v uint64) error { return e.append(msgp.AppendUint64(e.buf, v)) }
func (e *encoder) EncodeF32(v float32) error { return e.append(msgp.AppendFloat32(e.buf, v)) }
func (e *encoder) EncodeF64(v float64) error { return e.append(msgp.AppendFloat64(e.buf, v)) }
func (e *encoder) EncodeChar(v rune) error { return e.append(msgp.AppendString(e.buf, string(v))) }
func (e *encoder) EncodeStr(v string) error { return e.append(msgp.AppendString(e.buf, v)) }
func (e *encoder) EncodeBytes(v []byte) error { return e.append(msgp.AppendBytes(e.buf, v)) }
func (e *encoder) EncodeNone() error { return e.append(msgp.AppendNil(e.buf)) }
func (e *encoder) EncodeSome(v encode.Encodable) error { return v.Encode(e) }
func (e *encoder) EncodeUnit() error { return e.append(msgp.AppendNil(e.buf)) }
func (e *encoder) EncodeUnitStruct(string) error { return e.append(msgp.AppendNil(e.buf)) }

func (e *encoder) EncodeI128(v num.I128) error {
	return e.EncodeU128(num.U128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func (e *encoder) EncodeU128(v num.U128) error {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	return e.append(msgp.AppendBytes(e.buf, b[:]))
}

func (e *encoder) EncodeNewtypeStruct(_ string, v encode.Encodable) error {
	return v.Encode(e)
}

func (e *encoder) EncodeTupleStruct(_ string, len int) (encode.SeqEncoder, error) {
	return e.container(containerArray, nil, len), nil
}

func (e *encoder) EncodeStruct(_ string, len int) (encode.StructEncoder, error) {
	return e.container(containerMap, nil, len), nil
}

func (e *encoder) EncodeUnitVariant(_ string, _ uint32, variant string) error {
	return e.EncodeStr(variant)
}

func (e *encoder) EncodeNewtypeVariant(_ string, _ uint32, variant string, v encode.Encodable) error {
	e.buf = msgp.AppendMapHeader(e.buf, 1)
	e.buf = msgp.AppendString(e.buf, variant)
	return v.Encode(e)
}

func (e *encoder) EncodeTupleVariant(
	_ string,
	_ uint32,
	variant string,
	len int,
) (encode.SeqEncoder, error) {
	return e.container(containerArray, &variant, len), nil
}

func (e *encoder) EncodeStructVariant(
	_ string,
	_ uint32,
	variant string,
	len int,
) (encode.StructEncoder, error) {
	return e.container(containerMap, &variant, len), nil
}

func (e *encoder) EncodeTuple(len int) (encode.SeqEncoder, error) {
	return e.container(containerArray, nil, len), nil
}

func (e *encoder) EncodeSeq(len int) (encode.SeqEncoder, error) {
	return e.container(containerArray, nil, len), nil
}

func (e *encoder) EncodeMap(len int) (encode.MapEncoder, error) {
	return e.container(containerMap, nil, len), nil
}

type containerKind uint8

const (
	containerArray containerKind = iota
	containerMap
)

// container buffers its body because the header needs the exact number of elements, which isn't
// known upfront when the length hint is negative.
type container struct {
	parent  *encoder
	kind    containerKind
	variant *string
	body    encoder
	n       uint32
}

func (e *encoder) container(kind containerKind, variant *string, hint int) *container {
	// An element is at least a byte.
	return &container{
		parent:  e,
		kind:    kind,
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
	c.body.buf = msgp.AppendString(c.body.buf, key)
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
	b := c.parent.buf
	if c.variant != nil {
		b = msgp.AppendMapHeader(b, 1)
		b = msgp.AppendString(b, *c.variant)
	}
	switch c.kind {
	case containerArray:
		b = msgp.AppendArrayHeader(b, c.n)
	case containerMap:
		b = msgp.AppendMapHeader(b, c.n)
	}
	c.parent.buf = append(b, c.body.buf...)
	return nil
}
