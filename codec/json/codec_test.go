package json_test

import (
	stdjson "encoding/json"
	"math"
	"testing"

	"github.com/teenjuna/shapebuf"
	"github.com/teenjuna/shapebuf/codec/json"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/internal/testing/fixture"
	"github.com/teenjuna/shapebuf/internal/testing/require"
	"github.com/teenjuna/shapebuf/num"
)

func TestCodec(t *testing.T) {
	score := 0.75
	cases := []struct {
		name string
		v    encode.Encodable
		json string
	}{
		{"bool", encode.Bool(true), `true`},
		{"int", encode.I16(-300), `-300`},
		{"float32", encode.F32(1.1), `1.1`},
		{"nan", encode.F64(math.NaN()), `null`},
		{"char", encode.Char('λ'), `"λ"`},
		{"bytes", encode.Bytes("data"), `"ZGF0YQ=="`},
		{"none", encode.Option(nil), `null`},
		{"some", encode.Option(encode.U8(42)), `42`},
		{"unit struct", fixture.UnitStruct{}, `null`},
		{"newtype struct", fixture.NewtypeStruct{V: 7}, `7`},
		{"tuple struct", fixture.TupleStruct{N: 1, S: "s"}, `[1,"s"]`},
		{
			"wide",
			fixture.Wide{I: num.I128From64(-1), U: num.U128{Hi: math.MaxUint64, Lo: math.MaxUint64}},
			`[-1,340282366920938463463374607431768211455]`,
		},
		{"struct", fixture.Struct{}, `{"a":null,"b":null}`},
		{
			"record",
			fixture.Record{ID: 1, Name: "n", Tags: []string{"a", "b"}, Score: &score, Data: []byte("data")},
			`{"id":1,"name":"n","tags":["a","b"],"score":0.75,"data":"ZGF0YQ=="}`,
		},
		{"unit variant", fixture.Enum{Variant: fixture.VariantUnit}, `"Unit"`},
		{"newtype variant", fixture.Enum{Variant: fixture.VariantNewtype, N: 1}, `{"Newtype":1}`},
		{
			"tuple variant",
			fixture.Enum{Variant: fixture.VariantTuple, N: 2, S: "t"},
			`{"Tuple":[2,"t"]}`,
		},
		{
			"struct variant",
			fixture.Enum{Variant: fixture.VariantStruct, N: 3, S: "s"},
			`{"Struct":{"n":3,"s":"s"}}`,
		},
		{"map", fixture.Counts{{Key: "a", N: 1}, {Key: "b", N: 2}}, `{"a":1,"b":2}`},
		{"empty map", fixture.Counts{}, `{}`},
		{"integer keys", encode.Func(func(e encode.Encoder) error {
			m, err := e.EncodeMap(2)
			if err != nil {
				return err
			}
			if err := m.EncodeEntry(encode.U8(1), encode.Bool(true)); err != nil {
				return err
			}
			if err := m.EncodeEntry(fixture.Enum{}, encode.Bool(false)); err != nil {
				return err
			}
			return m.End()
		}), `{"1":true,"Unit":false}`},
	}

	codec := json.New()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := codec.Encode(c.v)
			require.Nil(t, err)
			require.Equal(t, string(data), c.json)
			require.True(t, stdjson.Valid(data))

			buf, err := shapebuf.Capture(c.v)
			require.Nil(t, err)
			replayed, err := codec.Encode(buf)
			require.Nil(t, err)
			require.Equal(t, replayed, data)
		})
	}

	derived := codec.Derive()
	require.NotEqual(t, derived, codec)
}

func TestCodecKeys(t *testing.T) {
	_, err := json.New().Encode(encode.Func(func(e encode.Encoder) error {
		m, err := e.EncodeMap(1)
		if err != nil {
			return err
		}
		if err := m.EncodeEntry(fixture.Wide{}, encode.Unit{}); err != nil {
			return err
		}
		return m.End()
	}))
	require.ErrorIs(t, err, json.ErrKeyMustBeString)
	require.ErrorContains(t, err, "encode json: key must be a string")
}
