package shapebuf

import (
	"bytes"
	"strings"
	"time"

	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
	"github.com/teenjuna/shapebuf/value"
)

var defaultCapturer = NewCapturer()

// Capture buffers v into an [Owned] buffer. Encoding the buffer makes exactly the calls that
// encoding v makes.
//
// Errors returned by v are passed through unchanged. On error no buffer is returned.
func Capture(v encode.Encodable) (Owned, error) {
	return defaultCapturer.Capture(v)
}

// CaptureRef buffers v into an unbounded [Ref] buffer.
func CaptureRef(v encode.Encodable) (Ref, error) {
	return defaultCapturer.CaptureRef(v)
}

// Capturer buffers values. It holds no per-capture state and is safe for concurrent use.
type Capturer struct {
	cfg     *Config
	metrics *metrics
}

// NewCapturer creates a capturer with the provided configuration functions.
//
// Default configuration:
//   - SizeHintCap: 32
//   - Prometheus: disabled
func NewCapturer(configFuncs ...func(c *Config)) *Capturer {
	cfg := newConfig(configFuncs...)
	return &Capturer{
		cfg:     cfg,
		metrics: cfg.prometheus.metrics(),
	}
}

func (c *Capturer) Capture(v encode.Encodable) (Owned, error) {
	start := time.Now()
	root, err := c.capture(v)
	c.metrics.observe(time.Since(start), err)
	if err != nil {
		return Owned{}, err
	}
	return Owned{root: root}, nil
}

func (c *Capturer) CaptureRef(v encode.Encodable) (Ref, error) {
	o, err := c.Capture(v)
	if err != nil {
		return Ref{}, err
	}
	return o.Ref(), nil
}

func (c *Capturer) capture(v encode.Encodable) (value.Value, error) {
	e := capturer{c: c}
	if err := v.Encode(&e); err != nil {
		return nil, err
	}
	if e.err != nil {
		return nil, e.err
	}
	if e.out == nil {
		return nil, errNotEncoded
	}
	return e.out, nil
}

func (c *Capturer) capacity(hint int) int {
	return min(max(hint, 0), c.cfg.sizeHintCap)
}

// capturer is the encoder that produces a single node.
type capturer struct {
	c   *Capturer
	out value.Value
	err error
}

var _ encode.Encoder = (*capturer)(nil)

func (e *capturer) set(v value.Value) error {
	if e.out != nil {
		// Remember the violation so that it surfaces even if the caller drops it.
		e.err = errEncodedTwice
		return e.err
	}
	e.c.metrics.count(v.Kind())
	e.out = v
	return nil
}

func (e *capturer) EncodeBool(v bool) error { return e.set(value.Bool(v)) }
func (e *capturer) EncodeI8(v int8) error { return e.set(value.I8(v)) }
func (e *capturer) EncodeI16(v int16) error { return e.set(value.I16(v)) }
func (e *capturer) EncodeI32(v int32) error { return e.set(value.I32(v)) }
func (e *capturer) EncodeI64(v int64) error { return e.set(value.I64(v)) }
func (e *capturer) EncodeI128(v num.I128) error { return e.set(value.I128(v)) }
func (e *capturer) EncodeU8(v uint8) error { return e.set(value.U8(v)) }
func (e *capturer) EncodeU16(v uint16) error { return e.set(value.U16(v)) }
func (e *capturer) EncodeU32(v uint32) error { return e.set(value.U32(v)) }
func (e *capturer) EncodeU64(v uint64) error { return e.set(value.U64(v)) }
func (e *capturer) EncodeU128(v num.U128) error { return e.set(value.U128(v)) }
func (e *capturer) EncodeF32(v float32) error { return e.set(value.F32(v)) }
func (e *capturer) EncodeF64(v float64) error { return e.set(value.F64(v)) }
func (e *capturer) EncodeChar(v rune) error { return e.set(value.Char(v)) }
func (e *capturer) EncodeNone() error { return e.set(value.None{}) }
func (e *capturer) EncodeUnit() error { return e.set(value.Unit{}) }
func (e *capturer) EncodeUnitStruct(name string) error {
	return e.set(value.UnitStruct{Name: name})
}

func (e *capturer) EncodeStr(v string) error {
	return e.set(value.Str(strings.Clone(v)))
}

func (e *capturer) EncodeBytes(v []byte) error {
	return e.set(value.Bytes(bytes.Clone(v)))
}

func (e *capturer) EncodeSome(v encode.Encodable) error {
	inner, err := e.c.capture(v)
	if err != nil {
		return err
	}
	return e.set(value.Some{Value: inner})
}

func (e *capturer) EncodeNewtypeStruct(name string, v encode.Encodable) error {
	inner, err := e.c.capture(v)
	if err != nil {
		return err
	}
	return e.set(value.NewtypeStruct{Name: name, Value: inner})
}

func (e *capturer) EncodeUnitVariant(name string, variantIndex uint32, variant string) error {
	return e.set(value.UnitVariant{Name: name, VariantIndex: variantIndex, Variant: variant})
}

func (e *capturer) EncodeNewtypeVariant(
	name string,
	variantIndex uint32,
	variant string,
	v encode.Encodable,
) error {
	inner, err := e.c.capture(v)
	if err != nil {
		return err
	}
	return e.set(value.NewtypeVariant{
		Name:         name,
		VariantIndex: variantIndex,
		Variant:      variant,
		Value:        inner,
	})
}

func (e *capturer) EncodeSeq(len int) (encode.SeqEncoder, error) {
	return e.seq(len, func(vs []value.Value) value.Value {
		return value.Seq(vs)
	}), nil
}

func (e *capturer) EncodeTuple(len int) (encode.SeqEncoder, error) {
	return e.seq(len, func(vs []value.Value) value.Value {
		return value.Tuple(vs)
	}), nil
}

func (e *capturer) EncodeTupleStruct(name string, len int) (encode.SeqEncoder, error) {
	return e.seq(len, func(vs []value.Value) value.Value {
		return value.TupleStruct{Name: name, Fields: vs}
	}), nil
}

func (e *capturer) EncodeTupleVariant(
	name string,
	variantIndex uint32,
	variant string,
	len int,
) (encode.SeqEncoder, error) {
	return e.seq(len, func(vs []value.Value) value.Value {
		return value.TupleVariant{
			Name:         name,
			VariantIndex: variantIndex,
			Variant:      variant,
			Fields:       vs,
		}
	}), nil
}

func (e *capturer) EncodeStruct(name string, len int) (encode.StructEncoder, error) {
	return e.record(len, func(fs []value.Field) value.Value {
		return value.Struct{Name: name, Fields: fs}
	}), nil
}

func (e *capturer) EncodeStructVariant(
	name string,
	variantIndex uint32,
	variant string,
	len int,
) (encode.StructEncoder, error) {
	return e.record(len, func(fs []value.Field) value.Value {
		return value.StructVariant{
			Name:         name,
			VariantIndex: variantIndex,
			Variant:      variant,
			Fields:       fs,
		}
	}), nil
}

func (e *capturer) EncodeMap(len int) (encode.MapEncoder, error) {
	return &mapCapture{
		e:       e,
		entries: make([]value.Entry, 0, e.c.capacity(len)),
	}, nil
}

func (e *capturer) seq(hint int, build func([]value.Value) value.Value) *seqCapture {
	return &seqCapture{
		e:     e,
		build: build,
		elems: make([]value.Value, 0, e.c.capacity(hint)),
	}
}

func (e *capturer) record(hint int, build func([]value.Field) value.Value) *structCapture {
	return &structCapture{
		e:      e,
		build:  build,
		fields: make([]value.Field, 0, e.c.capacity(hint)),
	}
}

type seqCapture struct {
	e     *capturer
	build func([]value.Value) value.Value
	elems []value.Value
	ended bool
}

func (s *seqCapture) EncodeElement(v encode.Encodable) error {
	if s.ended {
		return errBuilderEnded
	}
	elem, err := s.e.c.capture(v)
	if err != nil {
		return err
	}
	s.elems = append(s.elems, elem)
	return nil
}

func (s *seqCapture) End() error {
	if s.ended {
		return errBuilderEnded
	}
	s.ended = true
	return s.e.set(s.build(s.elems))
}

type structCapture struct {
	e      *capturer
	build  func([]value.Field) value.Value
	fields []value.Field
	ended  bool
}

func (s *structCapture) EncodeField(key string, v encode.Encodable) error {
	if s.ended {
		return errBuilderEnded
	}
	field, err := s.e.c.capture(v)
	if err != nil {
		return err
	}
	s.fields = append(s.fields, value.Field{Name: key, Value: field})
	return nil
}

func (s *structCapture) End() error {
	if s.ended {
		return errBuilderEnded
	}
	s.ended = true
	return s.e.set(s.build(s.fields))
}

type mapState uint8

const (
	mapEmpty mapState = iota
	mapKeyStaged
)

type mapCapture struct {
	e       *capturer
	state   mapState
	key     value.Value
	entries []value.Entry
	ended   bool
}

func (m *mapCapture) EncodeKey(k encode.Encodable) error {
	if m.ended {
		return errBuilderEnded
	}
	if m.state == mapKeyStaged {
		return ErrMissingMapValue
	}
	key, err := m.e.c.capture(k)
	if err != nil {
		return err
	}
	m.key, m.state = key, mapKeyStaged
	return nil
}

func (m *mapCapture) EncodeValue(v encode.Encodable) error {
	if m.ended {
		return errBuilderEnded
	}
	if m.state != mapKeyStaged {
		return ErrMissingMapKey
	}
	val, err := m.e.c.capture(v)
	if err != nil {
		return err
	}
	m.entries = append(m.entries, value.Entry{Key: m.key, Value: val})
	m.key, m.state = nil, mapEmpty
	return nil
}

func (m *mapCapture) EncodeEntry(k, v encode.Encodable) error {
	if m.ended {
		return errBuilderEnded
	}
	if m.state == mapKeyStaged {
		return ErrMissingMapValue
	}
	key, err := m.e.c.capture(k)
	if err != nil {
		return err
	}
	val, err := m.e.c.capture(v)
	if err != nil {
		return err
	}
	m.entries = append(m.entries, value.Entry{Key: key, Value: val})
	return nil
}

func (m *mapCapture) End() error {
	if m.ended {
		return errBuilderEnded
	}
	if m.state == mapKeyStaged {
		return ErrMissingMapValue
	}
	m.ended = true
	return m.e.set(value.Map(m.entries))
}
