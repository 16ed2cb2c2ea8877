package shapebuf

import (
	"fmt"

	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/num"
	"github.com/teenjuna/shapebuf/value"
)

// node replays a subtree.
type node struct {
	v value.Value
}

func (n node) Encode(e encode.Encoder) error {
	return encodeValue(e, n.v)
}

// encodeValue makes the calls that produced v. Length hints are the exact element counts.
func encodeValue(e encode.Encoder, v value.Value) error {
	switch v := v.(type) {
	case nil:
		return ErrConsumed
	case value.Bool:
		return e.EncodeBool(bool(v))
	case value.I8:
		return e.EncodeI8(int8(v))
	case value.I16:
		return e.EncodeI16(int16(v))
	case value.I32:
		return e.EncodeI32(int32(v))
	case value.I64:
		return e.EncodeI64(int64(v))
	case value.I128:
		return e.EncodeI128(num.I128(v))
	case value.U8:
		return e.EncodeU8(uint8(v))
	case value.U16:
		return e.EncodeU16(uint16(v))
	case value.U32:
		return e.EncodeU32(uint32(v))
	case value.U64:
		return e.EncodeU64(uint64(v))
	case value.U128:
		return e.EncodeU128(num.U128(v))
	case value.F32:
		return e.EncodeF32(float32(v))
	case value.F64:
		return e.EncodeF64(float64(v))
	case value.Char:
		return e.EncodeChar(rune(v))
	case value.Str:
		return e.EncodeStr(string(v))
	case value.BorrowedStr:
		return e.EncodeStr(string(v))
	case value.Bytes:
		return e.EncodeBytes(v)
	case value.BorrowedBytes:
		return e.EncodeBytes(v)
	case value.None:
		return e.EncodeNone()
	case value.Some:
		return e.EncodeSome(node{v.Value})
	case value.Unit:
		return e.EncodeUnit()
	case value.UnitStruct:
		return e.EncodeUnitStruct(v.Name)
	case value.NewtypeStruct:
		return e.EncodeNewtypeStruct(v.Name, node{v.Value})
	case value.Struct:
		s, err := e.EncodeStruct(v.Name, len(v.Fields))
		if err != nil {
			return err
		}
		return encodeFields(s, v.Fields)
	case value.TupleStruct:
		s, err := e.EncodeTupleStruct(v.Name, len(v.Fields))
		if err != nil {
			return err
		}
		return encodeElements(s, v.Fields)
	case value.Tuple:
		s, err := e.EncodeTuple(len(v))
		if err != nil {
			return err
		}
		return encodeElements(s, v)
	case value.UnitVariant:
		return e.EncodeUnitVariant(v.Name, v.VariantIndex, v.Variant)
	case value.NewtypeVariant:
		return e.EncodeNewtypeVariant(v.Name, v.VariantIndex, v.Variant, node{v.Value})
	case value.TupleVariant:
		s, err := e.EncodeTupleVariant(v.Name, v.VariantIndex, v.Variant, len(v.Fields))
		if err != nil {
			return err
		}
		return encodeElements(s, v.Fields)
	case value.StructVariant:
		s, err := e.EncodeStructVariant(v.Name, v.VariantIndex, v.Variant, len(v.Fields))
		if err != nil {
			return err
		}
		return encodeFields(s, v.Fields)
	case value.Seq:
		s, err := e.EncodeSeq(len(v))
		if err != nil {
			return err
		}
		return encodeElements(s, v)
	case value.Map:
		m, err := e.EncodeMap(len(v))
		if err != nil {
			return err
		}
		for _, entry := range v {
			if err := m.EncodeEntry(node{entry.Key}, node{entry.Value}); err != nil {
				return err
			}
		}
		return m.End()
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

func encodeElements(s encode.SeqEncoder, elems []value.Value) error {
	for _, elem := range elems {
		if err := s.EncodeElement(node{elem}); err != nil {
			return err
		}
	}
	return s.End()
}

func encodeFields(s encode.StructEncoder, fields []value.Field) error {
	for _, f := range fields {
		if err := s.EncodeField(f.Name, node{f.Value}); err != nil {
			return err
		}
	}
	return s.End()
}
