package shapebuf

// Config is a config of a [Capturer].
type Config struct {
	sizeHintCap int
	prometheus  *PrometheusConfig
}

// SizeHintCap sets the largest number of elements preallocated for a compound value from the
// length hint given to its builder. Zero disables preallocation.
func (c *Config) SizeHintCap(n int) *Config {
	if n < 0 {
		panic("size hint cap can't be < 0")
	}
	c.sizeHintCap = n
	return c
}

// Prometheus sets the config of Prometheus metrics. See [Prometheus].
func (c *Config) Prometheus(p *PrometheusConfig) *Config {
	if p == nil {
		panic("prometheus config can't be nil")
	}
	c.prometheus = p
	return c
}

func newConfig(configFuncs ...func(c *Config)) *Config {
	c := Config{}
	c.SizeHintCap(32)
	c.Prometheus(Prometheus(nil))

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}
