package spline

// Option configures knot generation and evaluation.
type Option func(*config)

type config struct {
	low        float64
	high       float64
	cyclic     bool
	derivative int
	outside    bool
}

func defaultConfig() config {
	return config{
		low:  0,
		high: 1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithPercentiles sets the percentiles (fractions in [0,1]) of the sample
// distribution that bound the knot range. The pair is validated by [Knots].
func WithPercentiles(low, high float64) Option {
	return func(c *config) {
		c.low = low
		c.high = high
	}
}

// WithCyclic requests the knot layout of a periodic basis, which carries
// order-1 additional interior knots.
func WithCyclic() Option {
	return func(c *config) {
		c.cyclic = true
	}
}

// WithDerivative selects the derivative order to evaluate (0 = the basis
// functions themselves). Derivatives above order-1 evaluate to zero.
func WithDerivative(der int) Option {
	return func(c *config) {
		if der >= 0 {
			c.derivative = der
		}
	}
}

// WithOutsideAllowed permits samples outside the interior support of the knot
// vector. The knot vector is padded at both ends so boundary evaluation stays
// well defined; samples beyond the outermost knots evaluate to zero.
func WithOutsideAllowed() Option {
	return func(c *config) {
		c.outside = true
	}
}
