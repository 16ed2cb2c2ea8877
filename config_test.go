package shapebuf_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/teenjuna/shapebuf"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/internal/testing/fixture"
	"github.com/teenjuna/shapebuf/internal/testing/require"
)

func TestConfig(t *testing.T) {
	c := &shapebuf.Config{}

	require.PanicWithError(t, "size hint cap can't be < 0", func() {
		c.SizeHintCap(-1)
	})

	require.PanicWithError(t, "prometheus config can't be nil", func() {
		c.Prometheus(nil)
	})
}

func TestPrometheus(t *testing.T) {
	registry := prometheus.NewRegistry()
	capturer := shapebuf.NewCapturer(func(c *shapebuf.Config) {
		c.Prometheus(shapebuf.Prometheus(registry, func(c *shapebuf.PrometheusConfig) {
			c.Values.Help = "Captured values"
		}))
	})

	_, err := capturer.Capture(fixture.Struct{})
	require.Nil(t, err)

	_, err = capturer.Capture(encode.Func(func(e encode.Encoder) error {
		m, err := e.EncodeMap(0)
		if err != nil {
			return err
		}
		return m.EncodeValue(encode.U8(1))
	}))
	require.ErrorIs(t, err, shapebuf.ErrMissingMapKey)

	expected := `
# HELP shapebuf_captures Number of captured buffers
# TYPE shapebuf_captures counter
shapebuf_captures 2
# HELP shapebuf_capture_errors Number of errors occurred during capture
# TYPE shapebuf_capture_errors counter
shapebuf_capture_errors{type="protocol"} 1
# HELP shapebuf_values Captured values
# TYPE shapebuf_values counter
shapebuf_values{kind="struct"} 1
shapebuf_values{kind="unit"} 2
`
	err = testutil.GatherAndCompare(
		registry,
		strings.NewReader(expected),
		"shapebuf_captures",
		"shapebuf_capture_errors",
		"shapebuf_values",
	)
	require.Nil(t, err)
}
