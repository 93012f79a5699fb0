package mackay

// Threshold selects how a Repetition block of N symbols is voted back to one symbol.
type Threshold uint8

const (
	// ThresholdHalfFloor decodes a block to true when count(true) >= N/2 (integer
	// division, at least 1). With N=3 a single true symbol is enough, so this is not
	// a strict majority. It is the default and matches the historical behaviour.
	ThresholdHalfFloor Threshold = iota
	// StrictMajority decodes a block to true when count(true) > N/2.
	StrictMajority
)

func (t Threshold) String() string {
	switch t {
	case ThresholdHalfFloor:
		return "half_floor"
	case StrictMajority:
		return "strict_majority"
	default:
		return "unknown"
	}
}

// Option configures a code at construction time.
type Option = func(*config)

type config struct {
	log       Logger
	hooks     Hooks
	threshold Threshold
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithHooks sets event hooks. Nil means NopHooks.
func WithHooks(h Hooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}

// WithThreshold sets the Repetition vote policy. Other codes ignore it.
func WithThreshold(t Threshold) Option {
	if t != ThresholdHalfFloor && t != StrictMajority {
		panic("mackay: unknown threshold")
	}
	return func(c *config) {
		c.threshold = t
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.log = coalesce[Logger](cfg.log, NopLogger{})
	cfg.hooks = coalesce[Hooks](cfg.hooks, NopHooks{})
	return cfg
}
