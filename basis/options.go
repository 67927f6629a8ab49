package basis

import "fmt"

// DefaultMemoryLimit is the default ceiling, in bytes, for a model matrix.
const DefaultMemoryLimit = 16e9

// Option configures a leaf basis at construction time.
type Option func(*config)

type config struct {
	memoryLimit float64
	mode        Mode
	low         float64
	high        float64
	derivative  int
	outside     bool
}

func defaultConfig() config {
	return config{
		memoryLimit: DefaultMemoryLimit,
		mode:        ModeEvaluate,
		low:         0,
		high:        1,
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.mode.valid() {
		return cfg, fmt.Errorf("%w: unknown evaluation mode %d", ErrConfig, int(cfg.mode))
	}
	if !(cfg.low >= 0 && cfg.low <= 1 && cfg.high >= 0 && cfg.high <= 1 && cfg.low < cfg.high) {
		return cfg, fmt.Errorf("%w: percentiles must satisfy 0 <= low < high <= 1: low=%g high=%g",
			ErrConfig, cfg.low, cfg.high)
	}
	return cfg, nil
}

// WithMemoryLimit sets the model-matrix ceiling in bytes. Composites use the
// limit of their left-most leaf. Non-positive values are ignored.
func WithMemoryLimit(bytes float64) Option {
	return func(c *config) {
		if bytes > 0 {
			c.memoryLimit = bytes
		}
	}
}

// WithMode selects the routine that produces the model matrix.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithPercentiles bounds the knot range by the given percentiles (fractions
// in [0,1]) of each evaluated sample stream. Default is (0, 1).
func WithPercentiles(low, high float64) Option {
	return func(c *config) {
		c.low = low
		c.high = high
	}
}

// WithDerivative evaluates the given derivative of the basis functions.
// Negative values are ignored.
func WithDerivative(der int) Option {
	return func(c *config) {
		if der >= 0 {
			c.derivative = der
		}
	}
}

// WithOutsideAllowed lets a B-spline basis evaluate samples outside its
// interior knot support instead of failing with [ErrDomain]. Cyclic bases
// always fold such samples.
func WithOutsideAllowed() Option {
	return func(c *config) {
		c.outside = true
	}
}
