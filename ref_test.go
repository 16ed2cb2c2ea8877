package shapebuf_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/teenjuna/shapebuf"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/internal/testing/fixture"
	"github.com/teenjuna/shapebuf/internal/testing/require"
	"github.com/teenjuna/shapebuf/num"
	"github.com/teenjuna/shapebuf/value"
)

func TestRefMatchesCapture(t *testing.T) {
	cases := []struct {
		name string
		v    encode.Encodable
		ref  shapebuf.Ref
	}{
		{"unit", encode.Unit{}, shapebuf.Unit()},
		{"bool", encode.Bool(true), shapebuf.Bool(true)},
		{"u8", encode.U8(1), shapebuf.U8(1)},
		{"u16", encode.U16(2), shapebuf.U16(2)},
		{"u32", encode.U32(3), shapebuf.U32(3)},
		{"u64", encode.U64(4), shapebuf.U64(4)},
		{"u128", encode.U128(num.U128From64(5)), shapebuf.U128(num.U128From64(5))},
		{"i8", encode.I8(-1), shapebuf.I8(-1)},
		{"i16", encode.I16(-2), shapebuf.I16(-2)},
		{"i32", encode.I32(-3), shapebuf.I32(-3)},
		{"i64", encode.I64(-4), shapebuf.I64(-4)},
		{"i128", encode.I128(num.I128From64(-5)), shapebuf.I128(num.I128From64(-5))},
		{"f32", encode.F32(1.5), shapebuf.F32(1.5)},
		{"f64", encode.F64(-2.5), shapebuf.F64(-2.5)},
		{"char", encode.Char('x'), shapebuf.Char('x')},
		{"owned str", encode.Str("s"), shapebuf.OwnedStr("s")},
		{"str", encode.Str("s"), shapebuf.Str("s")},
		{"static str", encode.Str("s"), shapebuf.StaticStr("s")},
		{"owned bytes", encode.Bytes("b"), shapebuf.OwnedBytes([]byte("b"))},
		{"bytes", encode.Bytes("b"), shapebuf.Bytes([]byte("b"))},
		{"static bytes", encode.Bytes("b"), shapebuf.StaticBytes([]byte("b"))},
		{"none", encode.Option(nil), shapebuf.None()},
		{"some", encode.Option(encode.U8(42)), shapebuf.Some(shapebuf.U8(42))},
		{"unit struct", fixture.UnitStruct{}, shapebuf.UnitStruct("UnitStruct")},
		{
			"newtype struct",
			fixture.NewtypeStruct{V: 7},
			shapebuf.NewtypeStruct("NewtypeStruct", shapebuf.U16(7)),
		},
		{
			"tuple struct",
			fixture.TupleStruct{N: 1, S: "s"},
			shapebuf.TupleStruct("TupleStruct", shapebuf.I64(1), shapebuf.Str("s")),
		},
		{
			"tuple",
			fixture.Wide{},
			shapebuf.Tuple(shapebuf.I128(num.I128{}), shapebuf.U128(num.U128{})),
		},
		{
			"struct",
			fixture.Struct{},
			shapebuf.RecordStruct("Struct",
				shapebuf.Field{Name: "a", Value: shapebuf.Unit()},
				shapebuf.Field{Name: "b", Value: shapebuf.Unit()},
			),
		},
		{
			"record",
			fixture.Record{ID: 1, Name: "n", Tags: []string{"t"}, Score: &score, Data: []byte("d")},
			shapebuf.RecordStruct("Record",
				shapebuf.Field{Name: "id", Value: shapebuf.U32(1)},
				shapebuf.Field{Name: "name", Value: shapebuf.Str("n")},
				shapebuf.Field{Name: "tags", Value: shapebuf.Seq(slices.Values([]shapebuf.Ref{
					shapebuf.Str("t"),
				}))},
				shapebuf.Field{Name: "score", Value: shapebuf.Some(shapebuf.F64(score))},
				shapebuf.Field{Name: "data", Value: shapebuf.Bytes([]byte("d"))},
			),
		},
		{
			"unit variant",
			fixture.Enum{Variant: fixture.VariantUnit},
			shapebuf.UnitVariant("Enum", fixture.VariantUnit, "Unit"),
		},
		{
			"newtype variant",
			fixture.Enum{Variant: fixture.VariantNewtype, N: 1},
			shapebuf.NewtypeVariant("Enum", fixture.VariantNewtype, "Newtype", shapebuf.U8(1)),
		},
		{
			"tuple variant",
			fixture.Enum{Variant: fixture.VariantTuple, N: 1, S: "s"},
			shapebuf.TupleVariant("Enum", fixture.VariantTuple, "Tuple",
				shapebuf.U8(1),
				shapebuf.Str("s"),
			),
		},
		{
			"struct variant",
			fixture.Enum{Variant: fixture.VariantStruct, N: 1, S: "s"},
			shapebuf.RecordStructVariant("Enum", fixture.VariantStruct, "Struct",
				shapebuf.Field{Name: "n", Value: shapebuf.U8(1)},
				shapebuf.Field{Name: "s", Value: shapebuf.Str("s")},
			),
		},
		{
			"map",
			fixture.Counts{{Key: "a", N: 1}},
			shapebuf.Map(entry(shapebuf.Str("a"), shapebuf.U64(1))),
		},
	}

	for _, c := range cases {
		run(t, c.name, func(t *testing.T) {
			require.Equal(t, record(t, c.ref), record(t, capture(t, c.v)))
		})
	}
}

func TestRefOrder(t *testing.T) {
	entries := func(yield func(shapebuf.Ref, shapebuf.Ref) bool) {
		for i := range 3 {
			if !yield(shapebuf.U8(uint8(i)), shapebuf.Unit()) {
				return
			}
		}
		yield(shapebuf.U8(0), shapebuf.None())
	}

	r := shapebuf.Map(entries)
	require.Equal(t, r.Value(), value.Value(value.Map{
		{Key: value.U8(0), Value: value.Unit{}},
		{Key: value.U8(1), Value: value.Unit{}},
		{Key: value.U8(2), Value: value.Unit{}},
		{Key: value.U8(0), Value: value.None{}},
	}))
}

func TestConversionLaws(t *testing.T) {
	run(t, "Owned to Ref to Owned", func(t *testing.T) {
		for _, shape := range shapes {
			o := capture(t, shape.v)
			back, ok := o.Ref().Owned()
			require.True(t, ok)
			require.True(t, value.Equal(back.Value(), o.Value()))
		}
	})

	run(t, "Unbounded Ref to Owned to Ref", func(t *testing.T) {
		r := shapebuf.RecordStruct("Record",
			shapebuf.Field{Name: "a", Value: shapebuf.StaticStr("a")},
			shapebuf.Field{Name: "b", Value: shapebuf.StaticBytes([]byte("b"))},
			shapebuf.Field{Name: "c", Value: shapebuf.OwnedStr("c")},
		)
		require.Equal(t, r.Bounded(), false)

		o, ok := r.Owned()
		require.True(t, ok)
		back := o.Ref()
		require.Equal(t, back.Bounded(), false)
		require.True(t, value.Equal(back.Value(), r.Value()))
	})

	run(t, "Bounded Ref", func(t *testing.T) {
		bounded := []shapebuf.Ref{
			shapebuf.Str("s"),
			shapebuf.Bytes([]byte("b")),
			shapebuf.Some(shapebuf.Str("s")),
			shapebuf.NewtypeStruct("A", shapebuf.Str("s")),
			shapebuf.Tuple(shapebuf.Unit(), shapebuf.Str("s")),
			shapebuf.TupleStruct("A", shapebuf.Str("s")),
			shapebuf.RecordStruct("A", shapebuf.Field{Name: "s", Value: shapebuf.Str("s")}),
			shapebuf.NewtypeVariant("A", 0, "B", shapebuf.Str("s")),
			shapebuf.TupleVariant("A", 0, "B", shapebuf.Str("s")),
			shapebuf.RecordStructVariant("A", 0, "B", shapebuf.Field{Name: "s", Value: shapebuf.Str("s")}),
			shapebuf.Seq(slices.Values([]shapebuf.Ref{shapebuf.Unit(), shapebuf.Str("s")})),
			shapebuf.Map(entry(shapebuf.Unit(), shapebuf.Str("s"))),
		}
		for _, r := range bounded {
			require.True(t, r.Bounded())
			_, ok := r.Owned()
			require.Equal(t, ok, false)
		}
	})

	run(t, "Captured Ref", func(t *testing.T) {
		r, err := shapebuf.CaptureRef(shapebuf.Str("s"))
		require.Nil(t, err)
		require.Equal(t, r.Bounded(), false)
		require.Equal(t, r.Value(), value.Value(value.Str("s")))
	})
}

func entry(k, v shapebuf.Ref) iter.Seq2[shapebuf.Ref, shapebuf.Ref] {
	return func(yield func(shapebuf.Ref, shapebuf.Ref) bool) {
		yield(k, v)
	}
}
