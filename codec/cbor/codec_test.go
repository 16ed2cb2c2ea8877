package cbor_test

import (
	"math"
	"math/big"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	"github.com/teenjuna/shapebuf"
	"github.com/teenjuna/shapebuf/codec/cbor"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/internal/testing/fixture"
	"github.com/teenjuna/shapebuf/internal/testing/require"
	"github.com/teenjuna/shapebuf/num"
)

// mustEncode encodes v directly and through a buffer and checks that the results match.
func mustEncode(t *testing.T, v encode.Encodable) []byte {
	t.Helper()
	codec := cbor.New()

	data, err := codec.Encode(v)
	require.Nil(t, err)

	buf, err := shapebuf.Capture(v)
	require.Nil(t, err)
	replayed, err := codec.Encode(buf)
	require.Nil(t, err)
	require.Equal(t, replayed, data)

	return data
}

func TestCodec(t *testing.T) {
	cases := []struct {
		name string
		v    encode.Encodable
		diag string
	}{
		{"bool", encode.Bool(true), `true`},
		{"int", encode.I16(-300), `-300`},
		{"char", encode.Char('c'), `"c"`},
		{"bytes", encode.Bytes("data"), `h'64617461'`},
		{"none", encode.Option(nil), `null`},
		{"some", encode.Option(encode.U8(42)), `42`},
		{"unit struct", fixture.UnitStruct{}, `null`},
		{"newtype struct", fixture.NewtypeStruct{V: 7}, `7`},
		{"tuple struct", fixture.TupleStruct{N: 1, S: "s"}, `[1, "s"]`},
		{"narrow wide", fixture.Wide{I: num.I128From64(-1), U: num.U128From64(1)}, `[-1, 1]`},
		{"struct", fixture.Struct{}, `{"a": null, "b": null}`},
		{"unit variant", fixture.Enum{Variant: fixture.VariantUnit}, `"Unit"`},
		{"newtype variant", fixture.Enum{Variant: fixture.VariantNewtype, N: 1}, `{"Newtype": 1}`},
		{
			"tuple variant",
			fixture.Enum{Variant: fixture.VariantTuple, N: 2, S: "t"},
			`{"Tuple": [2, "t"]}`,
		},
		{
			"struct variant",
			fixture.Enum{Variant: fixture.VariantStruct, N: 3, S: "s"},
			`{"Struct": {"n": 3, "s": "s"}}`,
		},
		{"map order", fixture.Counts{{Key: "b", N: 2}, {Key: "a", N: 1}}, `{"b": 2, "a": 1}`},
		{"empty map", fixture.Counts{}, `{}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			diag, err := fxcbor.Diagnose(mustEncode(t, c.v))
			require.Nil(t, err)
			require.Equal(t, diag, c.diag)
		})
	}
}

func TestCodecRecord(t *testing.T) {
	type record struct {
		ID    uint32   `cbor:"id"`
		Name  string   `cbor:"name"`
		Tags  []string `cbor:"tags"`
		Score *float64 `cbor:"score"`
		Data  []byte   `cbor:"data"`
	}

	score := 0.75
	v := fixture.Record{
		ID:    70000,
		Name:  "name",
		Tags:  []string{"a", "b"},
		Score: &score,
		Data:  []byte{0, 1, 2},
	}

	var out record
	require.Nil(t, fxcbor.Unmarshal(mustEncode(t, v), &out))
	require.Equal(t, out, record{
		ID:    v.ID,
		Name:  v.Name,
		Tags:  v.Tags,
		Score: &score,
		Data:  v.Data,
	})
}

func TestCodecFloats(t *testing.T) {
	var f64 float64
	require.Nil(t, fxcbor.Unmarshal(mustEncode(t, encode.F64(1.1)), &f64))
	require.Equal(t, f64, 1.1)

	var f32 float32
	require.Nil(t, fxcbor.Unmarshal(mustEncode(t, encode.F32(1.5)), &f32))
	require.Equal(t, f32, float32(1.5))

	// Shortest float encoding keeps exact values in half precision.
	require.Equal(t, len(mustEncode(t, encode.F64(1.5))), 3)

	require.Nil(t, fxcbor.Unmarshal(mustEncode(t, encode.F64(math.Inf(1))), &f64))
	require.True(t, math.IsInf(f64, 1))
}

func TestCodecWide(t *testing.T) {
	type wide struct {
		_ struct{} `cbor:",toarray"`
		I big.Int
		U big.Int
	}

	v := fixture.Wide{
		I: num.I128{Hi: math.MinInt64, Lo: 0},
		U: num.U128{Hi: math.MaxUint64, Lo: math.MaxUint64},
	}

	var out wide
	require.Nil(t, fxcbor.Unmarshal(mustEncode(t, v), &out))
	require.Equal(t, out.I.String(), v.I.String())
	require.Equal(t, out.U.String(), v.U.String())
}

func TestCodecUnknownLength(t *testing.T) {
	v := encode.Func(func(e encode.Encoder) error {
		s, err := e.EncodeSeq(-1)
		if err != nil {
			return err
		}
		for i := range 30 {
			if err := s.EncodeElement(encode.U16(i)); err != nil {
				return err
			}
		}
		return s.End()
	})

	data := mustEncode(t, v)
	// Array of 30 items takes a one byte length argument.
	require.Equal(t, data[:2], []byte{0x98, 30})

	var out []uint16
	require.Nil(t, fxcbor.Unmarshal(data, &out))
	require.Equal(t, len(out), 30)
	require.Equal(t, out[29], uint16(29))
}

func TestCodecDerive(t *testing.T) {
	codec := cbor.New()
	_, err := codec.Encode(fixture.Struct{})
	require.Nil(t, err)

	derived := codec.Derive()
	require.NotEqual(t, derived, codec)
}
