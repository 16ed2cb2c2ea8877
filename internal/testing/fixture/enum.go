package fixture

import (
	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/encode"
)

const (
	VariantUnit uint32 = iota
	VariantNewtype
	VariantTuple
	VariantStruct
)

var (
	enumVariants = []string{"Unit", "Newtype", "Tuple", "Struct"}
	enumFields   = []string{"n", "s"}
)

// Enum is
//
//	enum Enum {
//	    Unit,
//	    Newtype(u8),
//	    Tuple(u8, String),
//	    Struct { n: u8, s: String },
//	}
//
// Fields not used by the variant are zero.
type Enum struct {
	Variant uint32
	N       uint8
	S       string
}

func (v Enum) Encode(e encode.Encoder) error {
	name := enumVariants[v.Variant]
	switch v.Variant {
	case VariantUnit:
		return e.EncodeUnitVariant("Enum", v.Variant, name)
	case VariantNewtype:
		return e.EncodeNewtypeVariant("Enum", v.Variant, name, encode.U8(v.N))
	case VariantTuple:
		s, err := e.EncodeTupleVariant("Enum", v.Variant, name, 2)
		if err != nil {
			return err
		}
		if err := s.EncodeElement(encode.U8(v.N)); err != nil {
			return err
		}
		if err := s.EncodeElement(encode.Str(v.S)); err != nil {
			return err
		}
		return s.End()
	default:
		s, err := e.EncodeStructVariant("Enum", v.Variant, name, 2)
		if err != nil {
			return err
		}
		if err := s.EncodeField("n", encode.U8(v.N)); err != nil {
			return err
		}
		if err := s.EncodeField("s", encode.Str(v.S)); err != nil {
			return err
		}
		return s.End()
	}
}

func (v *Enum) Decode(d decode.Decoder) error {
	return d.DecodeEnum("Enum", enumVariants, enumVisitor{decode.Base{Expected: "enum Enum"}, v})
}

type enumVisitor struct {
	decode.Base
	out *Enum
}

func (v enumVisitor) VisitEnum(e decode.EnumAccess) error {
	var index decode.U32
	va, err := e.Variant(&index)
	if err != nil {
		return err
	}

	out := Enum{Variant: uint32(index)}
	switch out.Variant {
	case VariantUnit:
		err = va.Unit()
	case VariantNewtype:
		err = va.Newtype((*decode.U8)(&out.N))
	case VariantTuple:
		err = va.Tuple(2, tupleVisitor{
			Base:  decode.Base{Expected: "tuple variant Enum::Tuple"},
			seeds: []decode.Decodable{(*decode.U8)(&out.N), (*decode.Str)(&out.S)},
		})
	case VariantStruct:
		err = va.Struct(enumFields, fieldsVisitor{
			Base:  decode.Base{Expected: "struct variant Enum::Struct"},
			names: enumFields,
			fields: map[string]decode.Decodable{
				"n": (*decode.U8)(&out.N),
				"s": (*decode.Str)(&out.S),
			},
		})
	default:
		return decode.UnknownVariant(out.Variant, enumVariants)
	}
	if err != nil {
		return err
	}

	*v.out = out
	return nil
}
