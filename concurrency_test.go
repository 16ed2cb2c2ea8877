package shapebuf_test

import (
	"fmt"
	"reflect"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/teenjuna/shapebuf/internal/testing/fixture"
	"github.com/teenjuna/shapebuf/internal/testing/require"
	"github.com/teenjuna/shapebuf/internal/testing/trace"
)

func TestConcurrentReplay(t *testing.T) {
	v := fixture.Record{
		ID:    1,
		Name:  "name",
		Tags:  []string{"a", "b", "c"},
		Score: &score,
		Data:  []byte("data"),
	}
	want := record(t, v)
	o := capture(t, v)

	var g errgroup.Group
	g.SetLimit(8)
	for range 64 {
		g.Go(func() error {
			tokens, err := trace.Record(o)
			if err != nil {
				return err
			}
			if !reflect.DeepEqual(tokens, want) {
				return fmt.Errorf("unexpected trace %v", tokens)
			}

			var out fixture.Record
			if err := out.Decode(o.BorrowDecoder()); err != nil {
				return err
			}
			if !reflect.DeepEqual(out, v) {
				return fmt.Errorf("unexpected record %+v", out)
			}
			return nil
		})
	}
	require.Nil(t, g.Wait())
}
