package shapebuf

import (
	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/value"
)

type seqAccess struct {
	d     *decoder
	elems []value.Value
}

var _ decode.SeqAccess = (*seqAccess)(nil)

func (s *seqAccess) NextElement(seed decode.Decodable) (bool, error) {
	if len(s.elems) == 0 {
		return false, nil
	}
	elem := s.elems[0]
	s.elems = s.elems[1:]
	if err := seed.Decode(s.d.child(elem)); err != nil {
		return false, err
	}
	return true, nil
}

func (s *seqAccess) SizeHint() (int, bool) {
	return len(s.elems), true
}

// mapAccess walks either map entries or struct fields, whichever is set.
type mapAccess struct {
	d       *decoder
	entries []value.Entry
	fields  []value.Field
	value   value.Value
}

var _ decode.MapAccess = (*mapAccess)(nil)

// NextKey decodes the next key into seed. A value left pending by the previous key is skipped.
func (m *mapAccess) NextKey(seed decode.Decodable) (bool, error) {
	var key decode.Decoder
	switch {
	case len(m.entries) > 0:
		e := m.entries[0]
		m.entries = m.entries[1:]
		key, m.value = m.d.child(e.Key), e.Value
	case len(m.fields) > 0:
		f := m.fields[0]
		m.fields = m.fields[1:]
		key, m.value = fieldName(f.Name), f.Value
	default:
		return false, nil
	}
	if err := seed.Decode(key); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mapAccess) NextValue(seed decode.Decodable) error {
	if m.value == nil {
		return ErrMissingMapValue
	}
	v := m.value
	m.value = nil
	return seed.Decode(m.d.child(v))
}

func (m *mapAccess) SizeHint() (int, bool) {
	return len(m.entries) + len(m.fields), true
}

type payload uint8

const (
	payloadUnit payload = iota
	payloadNewtype
	payloadTuple
	payloadStruct
)

// enumAccess is both the enum and the variant cursor. The payload can be taken only once.
type enumAccess struct {
	d            *decoder
	variantIndex uint32
	variant      string
	payload      payload
	value        value.Value
	elems        []value.Value
	fields       []value.Field
	taken        bool
}

var (
	_ decode.EnumAccess    = (*enumAccess)(nil)
	_ decode.VariantAccess = (*enumAccess)(nil)
)

func (e *enumAccess) Variant(seed decode.Decodable) (decode.VariantAccess, error) {
	if err := seed.Decode(e.d.child(value.U32(e.variantIndex))); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *enumAccess) Unit() error {
	if err := e.take(); err != nil {
		return err
	}
	if e.payload == payloadUnit || e.isUnitNewtype() {
		return nil
	}
	return invalidType(e.unexpected(), "unit variant")
}

func (e *enumAccess) Newtype(seed decode.Decodable) error {
	if err := e.take(); err != nil {
		return err
	}

	var v value.Value
	switch e.payload {
	case payloadUnit:
		v = value.Unit{}
	case payloadNewtype:
		v = e.value
	case payloadTuple:
		v = value.Tuple(e.elems)
	case payloadStruct:
		v = value.Struct{Name: e.variant, Fields: e.fields}
	}
	return seed.Decode(e.d.child(v))
}

func (e *enumAccess) Tuple(_ int, v decode.Visitor) error {
	if err := e.take(); err != nil {
		return err
	}
	if e.payload != payloadTuple {
		return invalidType(e.unexpected(), "tuple variant")
	}
	return v.VisitSeq(e.d.seq(e.elems))
}

func (e *enumAccess) Struct(_ []string, v decode.Visitor) error {
	if err := e.take(); err != nil {
		return err
	}
	if e.payload != payloadStruct {
		return invalidType(e.unexpected(), "struct variant")
	}
	return v.VisitMap(e.d.fields(e.fields))
}

func (e *enumAccess) take() error {
	if e.taken {
		return ErrConsumed
	}
	e.taken = true
	return nil
}

func (e *enumAccess) isUnitNewtype() bool {
	if e.payload != payloadNewtype {
		return false
	}
	_, ok := e.value.(value.Unit)
	return ok
}

func (e *enumAccess) unexpected() decode.Unexpected {
	switch {
	case e.payload == payloadUnit || e.isUnitNewtype():
		return decode.UnexpectedUnitVariant
	case e.payload == payloadNewtype:
		return decode.UnexpectedNewtypeVariant
	case e.payload == payloadTuple:
		return decode.UnexpectedTupleVariant
	default:
		return decode.UnexpectedStructVariant
	}
}
