// This package contains typed values covering every shape of the protocol. Each of them encodes
// itself and decodes back from any decoder holding the same shape.
package fixture

import (
	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
)

// Unit is `()`.
type Unit struct{}

func (Unit) Encode(e encode.Encoder) error {
	return e.EncodeUnit()
}

func (u *Unit) Decode(d decode.Decoder) error {
	return d.DecodeUnit(unitVisitor{decode.Base{Expected: "unit"}})
}

type unitVisitor struct {
	decode.Base
}

func (unitVisitor) VisitUnit() error {
	return nil
}

// UnitStruct is `struct UnitStruct`.
type UnitStruct struct{}

func (UnitStruct) Encode(e encode.Encoder) error {
	return e.EncodeUnitStruct("UnitStruct")
}

func (u *UnitStruct) Decode(d decode.Decoder) error {
	return d.DecodeUnitStruct("UnitStruct", unitVisitor{decode.Base{Expected: "unit struct UnitStruct"}})
}

// NewtypeStruct is `struct NewtypeStruct(u16)`.
type NewtypeStruct struct {
	V uint16
}

func (n NewtypeStruct) Encode(e encode.Encoder) error {
	return e.EncodeNewtypeStruct("NewtypeStruct", encode.U16(n.V))
}

func (n *NewtypeStruct) Decode(d decode.Decoder) error {
	return d.DecodeNewtypeStruct("NewtypeStruct", newtypeVisitor{
		decode.Base{Expected: "tuple struct NewtypeStruct"},
		n,
	})
}

type newtypeVisitor struct {
	decode.Base
	out *NewtypeStruct
}

func (v newtypeVisitor) VisitNewtypeStruct(d decode.Decoder) error {
	return (*decode.U16)(&v.out.V).Decode(d)
}

// TupleStruct is `struct TupleStruct(i64, String)`.
type TupleStruct struct {
	N int64
	S string
}

func (t TupleStruct) Encode(e encode.Encoder) error {
	s, err := e.EncodeTupleStruct("TupleStruct", 2)
	if err != nil {
		return err
	}
	if err := s.EncodeElement(encode.I64(t.N)); err != nil {
		return err
	}
	if err := s.EncodeElement(encode.Str(t.S)); err != nil {
		return err
	}
	return s.End()
}

func (t *TupleStruct) Decode(d decode.Decoder) error {
	return d.DecodeTupleStruct("TupleStruct", 2, tupleVisitor{
		Base: decode.Base{Expected: "tuple struct TupleStruct"},
		seeds: []decode.Decodable{
			(*decode.I64)(&t.N),
			(*decode.Str)(&t.S),
		},
	})
}

// tupleVisitor fills seeds from a sequence of exactly len(seeds) elements.
type tupleVisitor struct {
	decode.Base
	seeds []decode.Decodable
}

func (v tupleVisitor) VisitSeq(s decode.SeqAccess) error {
	for i, seed := range v.seeds {
		ok, err := s.NextElement(seed)
		if err != nil {
			return err
		}
		if !ok {
			return decode.InvalidLength(i, v.Expected)
		}
	}
	return nil
}

// Wide is `(i128, u128)`.
type Wide struct {
	I num.I128
	U num.U128
}

func (w Wide) Encode(e encode.Encoder) error {
	s, err := e.EncodeTuple(2)
	if err != nil {
		return err
	}
	if err := s.EncodeElement(encode.I128(w.I)); err != nil {
		return err
	}
	if err := s.EncodeElement(encode.U128(w.U)); err != nil {
		return err
	}
	return s.End()
}

func (w *Wide) Decode(d decode.Decoder) error {
	return d.DecodeTuple(2, tupleVisitor{
		Base: decode.Base{Expected: "a tuple of size 2"},
		seeds: []decode.Decodable{
			(*decode.I128)(&w.I),
			(*decode.U128)(&w.U),
		},
	})
}

// Struct is `struct Struct { a: (), b: () }`.
type Struct struct {
	A Unit
	B Unit
}

var structFields = []string{"a", "b"}

func (s Struct) Encode(e encode.Encoder) error {
	se, err := e.EncodeStruct("Struct", 2)
	if err != nil {
		return err
	}
	if err := se.EncodeField("a", s.A); err != nil {
		return err
	}
	if err := se.EncodeField("b", s.B); err != nil {
		return err
	}
	return se.End()
}

func (s *Struct) Decode(d decode.Decoder) error {
	return d.DecodeStruct("Struct", structFields, fieldsVisitor{
		Base:   decode.Base{Expected: "struct Struct"},
		names:  structFields,
		fields: map[string]decode.Decodable{"a": &s.A, "b": &s.B},
	})
}

// fieldsVisitor fills named fields from a map with string keys. Every field is required.
type fieldsVisitor struct {
	decode.Base
	names  []string
	fields map[string]decode.Decodable
}

func (v fieldsVisitor) VisitMap(m decode.MapAccess) error {
	seen := make(map[string]bool, len(v.names))
	for {
		var key decode.Str
		ok, err := m.NextKey(&key)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		seed, known := v.fields[string(key)]
		if !known {
			return decode.UnknownField(string(key), v.names)
		}
		if err := m.NextValue(seed); err != nil {
			return err
		}
		seen[string(key)] = true
	}
	for _, name := range v.names {
		if !seen[name] {
			return decode.MissingField(name)
		}
	}
	return nil
}

// Record is a struct mixing scalars, strings, sequences and options.
type Record struct {
	ID    uint32
	Name  string
	Tags  []string
	Score *float64
	Data  []byte
}

var recordFields = []string{"id", "name", "tags", "score", "data"}

func (r Record) Encode(e encode.Encoder) error {
	s, err := e.EncodeStruct("Record", len(recordFields))
	if err != nil {
		return err
	}

	var score encode.Encodable
	if r.Score != nil {
		score = encode.F64(*r.Score)
	}
	tags := make([]encode.Str, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, encode.Str(t))
	}

	fields := []encode.Encodable{
		encode.U32(r.ID),
		encode.Str(r.Name),
		encode.Seq(tags),
		encode.Option(score),
		encode.Bytes(r.Data),
	}
	for i, f := range fields {
		if err := s.EncodeField(recordFields[i], f); err != nil {
			return err
		}
	}
	return s.End()
}

func (r *Record) Decode(d decode.Decoder) error {
	var (
		tags  decode.Seq[decode.Str, *decode.Str]
		score decode.Option[decode.F64, *decode.F64]
	)
	err := d.DecodeStruct("Record", recordFields, fieldsVisitor{
		Base:  decode.Base{Expected: "struct Record"},
		names: recordFields,
		fields: map[string]decode.Decodable{
			"id":    (*decode.U32)(&r.ID),
			"name":  (*decode.Str)(&r.Name),
			"tags":  &tags,
			"score": &score,
			"data":  (*decode.Bytes)(&r.Data),
		},
	})
	if err != nil {
		return err
	}

	r.Tags = nil
	for _, t := range tags {
		r.Tags = append(r.Tags, string(t))
	}
	r.Score = nil
	if score.Valid {
		v := float64(score.Value)
		r.Score = &v
	}
	return nil
}

// Count is an entry of [Counts].
type Count struct {
	Key string
	N   uint64
}

// Counts is an ordered map from strings to counters. Entries are encoded with split key and value
// calls.
type Counts []Count

func (c Counts) Encode(e encode.Encoder) error {
	m, err := e.EncodeMap(len(c))
	if err != nil {
		return err
	}
	for _, count := range c {
		if err := m.EncodeKey(encode.Str(count.Key)); err != nil {
			return err
		}
		if err := m.EncodeValue(encode.U64(count.N)); err != nil {
			return err
		}
	}
	return m.End()
}

func (c *Counts) Decode(d decode.Decoder) error {
	return d.DecodeMap(countsVisitor{decode.Base{Expected: "a map"}, c})
}

type countsVisitor struct {
	decode.Base
	out *Counts
}

func (v countsVisitor) VisitMap(m decode.MapAccess) error {
	counts := Counts{}
	for {
		var count Count
		ok, err := m.NextKey((*decode.Str)(&count.Key))
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := m.NextValue((*decode.U64)(&count.N)); err != nil {
			return err
		}
		counts = append(counts, count)
	}
	*v.out = counts
	return nil
}
