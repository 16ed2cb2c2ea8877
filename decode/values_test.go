package decode_test

import (
	"errors"
	"math"
	"testing"

	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/internal/testing/require"
	"github.com/teenjuna/shapebuf/num"
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		fn(t)
	})
}

// holding returns a decoder that always makes the same visitor call.
func holding(call func(v decode.Visitor) error) decode.Decoder {
	return decode.AnyDecoder(call)
}

func TestIntegers(t *testing.T) {
	run(t, "Widening", func(t *testing.T) {
		var i64 decode.I64
		require.Nil(t, i64.Decode(holding(func(v decode.Visitor) error {
			return v.VisitU32(math.MaxUint32)
		})))
		require.Equal(t, i64, decode.I64(math.MaxUint32))

		var u8 decode.U8
		require.Nil(t, u8.Decode(holding(func(v decode.Visitor) error {
			return v.VisitI64(255)
		})))
		require.Equal(t, u8, decode.U8(255))
	})

	run(t, "Out of range", func(t *testing.T) {
		var (
			i8         decode.I8
			u16        decode.U16
			valueError *decode.ValueError
		)

		err := i8.Decode(holding(func(v decode.Visitor) error {
			return v.VisitU8(128)
		}))
		require.True(t, errors.As(err, &valueError))
		require.Equal(t, err.Error(), "invalid value: integer `128`, expected i8")

		err = u16.Decode(holding(func(v decode.Visitor) error {
			return v.VisitI8(-1)
		}))
		require.True(t, errors.As(err, &valueError))

		err = u16.Decode(holding(func(v decode.Visitor) error {
			return v.VisitU128(num.U128{Hi: 1})
		}))
		require.True(t, errors.As(err, &valueError))
	})

	run(t, "128 bits", func(t *testing.T) {
		var i128 decode.I128
		require.Nil(t, i128.Decode(holding(func(v decode.Visitor) error {
			return v.VisitI8(-1)
		})))
		require.Equal(t, i128, decode.I128(num.I128{Hi: -1, Lo: math.MaxUint64}))

		var u128 decode.U128
		require.Nil(t, u128.Decode(holding(func(v decode.Visitor) error {
			return v.VisitI128(num.I128{Hi: 1, Lo: 2})
		})))
		require.Equal(t, u128, decode.U128(num.U128{Hi: 1, Lo: 2}))

		err := u128.Decode(holding(func(v decode.Visitor) error {
			return v.VisitI64(-1)
		}))
		require.NotNil(t, err)

		var i64 decode.I64
		require.Nil(t, i64.Decode(holding(func(v decode.Visitor) error {
			return v.VisitI128(num.I128From64(math.MinInt64))
		})))
		require.Equal(t, i64, decode.I64(math.MinInt64))
	})
}

func TestStrings(t *testing.T) {
	run(t, "Char from string", func(t *testing.T) {
		var c decode.Char
		require.Nil(t, c.Decode(holding(func(v decode.Visitor) error {
			return v.VisitBorrowedStr("λ")
		})))
		require.Equal(t, c, decode.Char('λ'))

		err := c.Decode(holding(func(v decode.Visitor) error {
			return v.VisitStr("ab")
		}))
		require.ErrorContains(t, err, `invalid value: string "ab"`)
	})

	run(t, "String from char", func(t *testing.T) {
		var s decode.Str
		require.Nil(t, s.Decode(holding(func(v decode.Visitor) error {
			return v.VisitChar('x')
		})))
		require.Equal(t, s, decode.Str("x"))
	})

	run(t, "Bytes", func(t *testing.T) {
		src := []byte("bytes")

		var b decode.Bytes
		require.Nil(t, b.Decode(holding(func(v decode.Visitor) error {
			return v.VisitBytes(src)
		})))
		require.Equal(t, b, decode.Bytes("bytes"))
		require.True(t, &b[0] != &src[0])

		require.Nil(t, b.Decode(holding(func(v decode.Visitor) error {
			return v.VisitBorrowedBytes(src)
		})))
		require.True(t, &b[0] == &src[0])
	})
}

func TestTypeErrors(t *testing.T) {
	cases := []struct {
		name   string
		target decode.Decodable
		call   func(v decode.Visitor) error
		err    string
	}{
		{
			name:   "Bool",
			target: new(decode.Bool),
			call:   func(v decode.Visitor) error { return v.VisitU8(1) },
			err:    "invalid type: integer `1`, expected a boolean",
		},
		{
			name:   "Unit",
			target: new(decode.Unit),
			call:   func(v decode.Visitor) error { return v.VisitNone() },
			err:    "invalid type: Option value, expected unit",
		},
		{
			name:   "Str",
			target: new(decode.Str),
			call:   func(v decode.Visitor) error { return v.VisitBytes(nil) },
			err:    "invalid type: byte array, expected a string",
		},
		{
			name:   "Float",
			target: new(decode.F64),
			call:   func(v decode.Visitor) error { return v.VisitBool(true) },
			err:    "invalid type: boolean `true`, expected f64",
		},
	}

	for _, c := range cases {
		run(t, c.name, func(t *testing.T) {
			err := c.target.Decode(holding(c.call))
			require.Equal(t, err.Error(), c.err)

			var typeError *decode.TypeError
			require.True(t, errors.As(err, &typeError))
		})
	}
}

func TestOption(t *testing.T) {
	var o decode.Option[decode.U8, *decode.U8]
	require.Nil(t, o.Decode(holding(func(v decode.Visitor) error {
		return v.VisitSome(holding(func(v decode.Visitor) error {
			return v.VisitU8(42)
		}))
	})))
	require.Equal(t, o, decode.Option[decode.U8, *decode.U8]{Value: 42, Valid: true})

	require.Nil(t, o.Decode(holding(func(v decode.Visitor) error {
		return v.VisitNone()
	})))
	require.Equal(t, o.Valid, false)
}

func TestSeq(t *testing.T) {
	var s decode.Seq[decode.U16, *decode.U16]
	require.Nil(t, s.Decode(holding(func(v decode.Visitor) error {
		return v.VisitSeq(&seqAccess{elems: []uint16{1, 2, 3}})
	})))
	require.Equal(t, s, decode.Seq[decode.U16, *decode.U16]{1, 2, 3})
}

func TestIgnored(t *testing.T) {
	calls := []func(v decode.Visitor) error{
		func(v decode.Visitor) error { return v.VisitBool(true) },
		func(v decode.Visitor) error { return v.VisitString("s") },
		func(v decode.Visitor) error { return v.VisitUnit() },
		func(v decode.Visitor) error {
			return v.VisitSeq(&seqAccess{elems: []uint16{1, 2}})
		},
	}
	for _, call := range calls {
		require.Nil(t, new(decode.Ignored).Decode(holding(call)))
	}
}

type seqAccess struct {
	elems []uint16
}

func (s *seqAccess) NextElement(seed decode.Decodable) (bool, error) {
	if len(s.elems) == 0 {
		return false, nil
	}
	elem := s.elems[0]
	s.elems = s.elems[1:]
	return true, seed.Decode(holding(func(v decode.Visitor) error {
		return v.VisitU16(elem)
	}))
}

func (s *seqAccess) SizeHint() (int, bool) {
	return len(s.elems), true
}
