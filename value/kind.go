package value

import "strconv"

// Kind identifies the concrete type of a [Value].
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindF32
	KindF64
	KindChar
	KindStr
	KindBorrowedStr
	KindBytes
	KindBorrowedBytes
	KindNone
	KindSome
	KindUnit
	KindUnitStruct
	KindNewtypeStruct
	KindStruct
	KindTupleStruct
	KindTuple
	KindUnitVariant
	KindNewtypeVariant
	KindTupleVariant
	KindStructVariant
	KindSeq
	KindMap
)

var kindNames = [...]string{
	KindBool:           "bool",
	KindI8:             "i8",
	KindI16:            "i16",
	KindI32:            "i32",
	KindI64:            "i64",
	KindI128:           "i128",
	KindU8:             "u8",
	KindU16:            "u16",
	KindU32:            "u32",
	KindU64:            "u64",
	KindU128:           "u128",
	KindF32:            "f32",
	KindF64:            "f64",
	KindChar:           "char",
	KindStr:            "str",
	KindBorrowedStr:    "borrowed_str",
	KindBytes:          "bytes",
	KindBorrowedBytes:  "borrowed_bytes",
	KindNone:           "none",
	KindSome:           "some",
	KindUnit:           "unit",
	KindUnitStruct:     "unit_struct",
	KindNewtypeStruct:  "newtype_struct",
	KindStruct:         "struct",
	KindTupleStruct:    "tuple_struct",
	KindTuple:          "tuple",
	KindUnitVariant:    "unit_variant",
	KindNewtypeVariant: "newtype_variant",
	KindTupleVariant:   "tuple_variant",
	KindStructVariant:  "struct_variant",
	KindSeq:            "seq",
	KindMap:            "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindBool; k <= KindMap; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
