package shapebuf

import (
	"fmt"

	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/num"
	"github.com/teenjuna/shapebuf/value"
)

// decoder replays one node to a visitor. In borrow mode the tree is only read and every string
// and byte string is presented as borrowed. Otherwise the node is detached on first use and owned
// data is handed over.
type decoder struct {
	v      value.Value
	borrow bool
}

func newDecoder(v value.Value, borrow bool) decode.Decoder {
	d := &decoder{v: v, borrow: borrow}
	return decode.AnyDecoder(d.decodeAny)
}

func (d *decoder) take() value.Value {
	v := d.v
	if !d.borrow {
		d.v = nil
	}
	return v
}

func (d *decoder) child(v value.Value) decode.Decoder {
	return newDecoder(v, d.borrow)
}

func (d *decoder) decodeAny(vis decode.Visitor) error {
	switch v := d.take().(type) {
	case nil:
		return ErrConsumed
	case value.Bool:
		return vis.VisitBool(bool(v))
	case value.I8:
		return vis.VisitI8(int8(v))
	case value.I16:
		return vis.VisitI16(int16(v))
	case value.I32:
		return vis.VisitI32(int32(v))
	case value.I64:
		return vis.VisitI64(int64(v))
	case value.I128:
		return vis.VisitI128(num.I128(v))
	case value.U8:
		return vis.VisitU8(uint8(v))
	case value.U16:
		return vis.VisitU16(uint16(v))
	case value.U32:
		return vis.VisitU32(uint32(v))
	case value.U64:
		return vis.VisitU64(uint64(v))
	case value.U128:
		return vis.VisitU128(num.U128(v))
	case value.F32:
		return vis.VisitF32(float32(v))
	case value.F64:
		return vis.VisitF64(float64(v))
	case value.Char:
		return vis.VisitChar(rune(v))
	case value.Str:
		if d.borrow {
			return vis.VisitBorrowedStr(string(v))
		}
		return vis.VisitString(string(v))
	case value.BorrowedStr:
		return vis.VisitBorrowedStr(string(v))
	case value.Bytes:
		if d.borrow {
			return vis.VisitBorrowedBytes(v)
		}
		return vis.VisitByteBuf(v)
	case value.BorrowedBytes:
		return vis.VisitBorrowedBytes(v)
	case value.None:
		return vis.VisitNone()
	case value.Some:
		return vis.VisitSome(d.child(v.Value))
	case value.Unit, value.UnitStruct:
		return vis.VisitUnit()
	case value.NewtypeStruct:
		return vis.VisitNewtypeStruct(d.child(v.Value))
	case value.Struct:
		return vis.VisitMap(d.fields(v.Fields))
	case value.TupleStruct:
		return vis.VisitSeq(d.seq(v.Fields))
	case value.Tuple:
		return vis.VisitSeq(d.seq(v))
	case value.Seq:
		return vis.VisitSeq(d.seq(v))
	case value.Map:
		return vis.VisitMap(d.entries(v))
	case value.UnitVariant:
		return vis.VisitEnum(&enumAccess{
			d:            d,
			variantIndex: v.VariantIndex,
			variant:      v.Variant,
			payload:      payloadUnit,
		})
	case value.NewtypeVariant:
		return vis.VisitEnum(&enumAccess{
			d:            d,
			variantIndex: v.VariantIndex,
			variant:      v.Variant,
			payload:      payloadNewtype,
			value:        v.Value,
		})
	case value.TupleVariant:
		return vis.VisitEnum(&enumAccess{
			d:            d,
			variantIndex: v.VariantIndex,
			variant:      v.Variant,
			payload:      payloadTuple,
			elems:        v.Fields,
		})
	case value.StructVariant:
		return vis.VisitEnum(&enumAccess{
			d:            d,
			variantIndex: v.VariantIndex,
			variant:      v.Variant,
			payload:      payloadStruct,
			fields:       v.Fields,
		})
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

func (d *decoder) seq(elems []value.Value) *seqAccess {
	return &seqAccess{d: d, elems: elems}
}

func (d *decoder) entries(entries []value.Entry) *mapAccess {
	return &mapAccess{d: d, entries: entries}
}

func (d *decoder) fields(fields []value.Field) *mapAccess {
	return &mapAccess{d: d, fields: fields}
}

// fieldName presents a struct field name through the transient string path.
func fieldName(name string) decode.Decoder {
	return decode.AnyDecoder(func(v decode.Visitor) error {
		return v.VisitStr(name)
	})
}
