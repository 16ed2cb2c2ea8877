package decode

// AnyDecoder is a [Decoder] for self-describing sources. Every Decode method ignores the
// requested shape and calls the function.
type AnyDecoder func(v Visitor) error

var _ Decoder = AnyDecoder(nil)

func (d AnyDecoder) DecodeAny(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeBool(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeI8(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeI16(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeI32(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeI64(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeI128(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeU8(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeU16(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeU32(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeU64(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeU128(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeF32(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeF64(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeChar(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeStr(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeString(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeBytes(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeByteBuf(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeOption(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeUnit(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeSeq(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeMap(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeIdentifier(v Visitor) error { return d(v) }
func (d AnyDecoder) DecodeIgnoredAny(v Visitor) error { return d(v) }

func (d AnyDecoder) DecodeUnitStruct(_ string, v Visitor) error {
	return d(v)
}

func (d AnyDecoder) DecodeNewtypeStruct(_ string, v Visitor) error {
	return d(v)
}

func (d AnyDecoder) DecodeTuple(_ int, v Visitor) error {
	return d(v)
}

func (d AnyDecoder) DecodeTupleStruct(_ string, _ int, v Visitor) error {
	return d(v)
}

func (d AnyDecoder) DecodeStruct(_ string, _ []string, v Visitor) error {
	return d(v)
}

func (d AnyDecoder) DecodeEnum(_ string, _ []string, v Visitor) error {
	return d(v)
}
