package decode

import "github.com/teenjuna/shapebuf/num"

// Base is meant to be embedded into visitors. Every method rejects its input with a [TypeError]
// naming Expected, so a visitor only has to implement the shapes it accepts.
type Base struct {
	Expected string
}

var _ Visitor = Base{}

func (b Base) Expecting() string {
	return b.Expected
}

func (b Base) fail(unexp Unexpected) error {
	return InvalidType(unexp, b.Expected)
}

func (b Base) VisitBool(v bool) error { return b.fail(UnexpectedBool(v)) }
func (b Base) VisitI8(v int8) error { return b.fail(UnexpectedSigned(v)) }
func (b Base) VisitI16(v int16) error { return b.fail(UnexpectedSigned(v)) }
func (b Base) VisitI32(v int32) error { return b.fail(UnexpectedSigned(v)) }
func (b Base) VisitI64(v int64) error { return b.fail(UnexpectedSigned(v)) }
func (b Base) VisitI128(v num.I128) error { return b.fail(UnexpectedSigned(v)) }
func (b Base) VisitU8(v uint8) error { return b.fail(UnexpectedUnsigned(v)) }
func (b Base) VisitU16(v uint16) error { return b.fail(UnexpectedUnsigned(v)) }
func (b Base) VisitU32(v uint32) error { return b.fail(UnexpectedUnsigned(v)) }
func (b Base) VisitU64(v uint64) error { return b.fail(UnexpectedUnsigned(v)) }
func (b Base) VisitU128(v num.U128) error { return b.fail(UnexpectedUnsigned(v)) }
func (b Base) VisitF32(v float32) error { return b.fail(UnexpectedFloat(float64(v))) }
func (b Base) VisitF64(v float64) error { return b.fail(UnexpectedFloat(v)) }
func (b Base) VisitChar(v rune) error { return b.fail(UnexpectedChar(v)) }
func (b Base) VisitStr(v string) error { return b.fail(UnexpectedStr(v)) }
func (b Base) VisitBorrowedStr(v string) error { return b.fail(UnexpectedStr(v)) }
func (b Base) VisitString(v string) error { return b.fail(UnexpectedStr(v)) }
func (b Base) VisitBytes([]byte) error { return b.fail(UnexpectedBytes) }
func (b Base) VisitBorrowedBytes([]byte) error { return b.fail(UnexpectedBytes) }
func (b Base) VisitByteBuf([]byte) error { return b.fail(UnexpectedBytes) }
func (b Base) VisitNone() error { return b.fail(UnexpectedOption) }
func (b Base) VisitSome(Decoder) error { return b.fail(UnexpectedOption) }
func (b Base) VisitUnit() error { return b.fail(UnexpectedUnit) }
func (b Base) VisitNewtypeStruct(Decoder) error { return b.fail(UnexpectedNewtypeStruct) }
func (b Base) VisitSeq(SeqAccess) error { return b.fail(UnexpectedSeq) }
func (b Base) VisitMap(MapAccess) error { return b.fail(UnexpectedMap) }
func (b Base) VisitEnum(EnumAccess) error { return b.fail(UnexpectedEnum) }
