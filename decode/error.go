package decode

import (
	"fmt"
	"strings"
)

// Unexpected describes the shape or value a visitor did not expect.
type Unexpected string

const (
	UnexpectedBytes          Unexpected = "byte array"
	UnexpectedUnit           Unexpected = "unit value"
	UnexpectedOption         Unexpected = "Option value"
	UnexpectedNewtypeStruct  Unexpected = "newtype struct"
	UnexpectedSeq            Unexpected = "sequence"
	UnexpectedMap            Unexpected = "map"
	UnexpectedEnum           Unexpected = "enum"
	UnexpectedUnitVariant    Unexpected = "unit variant"
	UnexpectedNewtypeVariant Unexpected = "newtype variant"
	UnexpectedTupleVariant   Unexpected = "tuple variant"
	UnexpectedStructVariant  Unexpected = "struct variant"
)

func UnexpectedBool(v bool) Unexpected {
	return Unexpected(fmt.Sprintf("boolean `%t`", v))
}

func UnexpectedSigned(v any) Unexpected {
	return Unexpected(fmt.Sprintf("integer `%v`", v))
}

func UnexpectedUnsigned(v any) Unexpected {
	return Unexpected(fmt.Sprintf("integer `%v`", v))
}

func UnexpectedFloat(v float64) Unexpected {
	return Unexpected(fmt.Sprintf("floating point `%v`", v))
}

func UnexpectedChar(v rune) Unexpected {
	return Unexpected(fmt.Sprintf("character `%c`", v))
}

func UnexpectedStr(v string) Unexpected {
	return Unexpected(fmt.Sprintf("string %q", v))
}

func (u Unexpected) String() string {
	return string(u)
}

// TypeError reports a shape the visitor can't accept.
type TypeError struct {
	Unexpected Unexpected
	Expected   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Unexpected, e.Expected)
}

// ValueError reports a value of the right shape that is out of the accepted range.
type ValueError struct {
	Unexpected Unexpected
	Expected   string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value: %s, expected %s", e.Unexpected, e.Expected)
}

// LengthError reports a sequence or map with the wrong number of elements.
type LengthError struct {
	Len      int
	Expected string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length %d, expected %s", e.Len, e.Expected)
}

func InvalidType(unexp Unexpected, exp string) error {
	return &TypeError{Unexpected: unexp, Expected: exp}
}

func InvalidValue(unexp Unexpected, exp string) error {
	return &ValueError{Unexpected: unexp, Expected: exp}
}

func InvalidLength(n int, exp string) error {
	return &LengthError{Len: n, Expected: exp}
}

func MissingField(field string) error {
	return fmt.Errorf("missing field `%s`", field)
}

func UnknownField(field string, expected []string) error {
	return fmt.Errorf("unknown field `%s`, expected one of `%s`", field, strings.Join(expected, "`, `"))
}

func UnknownVariant(index uint32, expected []string) error {
	return fmt.Errorf("unknown variant index %d, expected one of `%s`",
		index, strings.Join(expected, "`, `"))
}
