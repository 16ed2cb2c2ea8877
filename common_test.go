package shapebuf_test

import (
	"testing"

	"github.com/teenjuna/shapebuf"
	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/internal/testing/require"
	"github.com/teenjuna/shapebuf/internal/testing/trace"
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		fn(t)
	})
}

func record(t *testing.T, v encode.Encodable) []trace.Token {
	t.Helper()
	tokens, err := trace.Record(v)
	require.Nil(t, err)
	return tokens
}

func capture(t *testing.T, v encode.Encodable) shapebuf.Owned {
	t.Helper()
	o, err := shapebuf.Capture(v)
	require.Nil(t, err)
	return o
}

// requireDecodes captures v and decodes it back into a fresh T.
func requireDecodes[T encode.Encodable, PT decode.Target[T]](t *testing.T, v T) {
	t.Helper()
	o := capture(t, v)

	var borrowed T
	require.Nil(t, PT(&borrowed).Decode(o.BorrowDecoder()))
	require.Equal(t, borrowed, v)

	var owned T
	require.Nil(t, o.Decode(PT(&owned)))
	require.Equal(t, owned, v)
}
