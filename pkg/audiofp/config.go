package audiofp

// Config is the immutable configuration shared by every pipeline stage.
// It is built once via NewConfig/Option and never mutated while a run is in
// flight (spec.md §5) — there are no setters, only options applied at
// construction.
type Config struct {
	// FFT / STFT (4.B)
	FFTSize    int
	WindowSize int
	HopSize    int
	Window     WindowFunc

	// Peak detection (4.C)
	MinPeakDistance       int
	AdaptiveFactor        float64
	MinMagnitudeThreshold float64

	// Landmark pairing (4.D)
	MaxTimeDeltaMs int
	MaxFreqDeltaHz float64

	// Hash generation (4.E)
	FreqQuantizationHz float64
	TimeQuantizationMs int

	Logger Logger
}

// WindowFunc names which analysis window the preprocessor/STFT applies.
type WindowFunc int

const (
	Hann WindowFunc = iota
	Hamming
)

// Option mutates a Config under construction. See DefaultConfig for the
// values applied before any Option runs.
type Option func(*Config)

func WithFFTSize(n int) Option   { return func(c *Config) { c.FFTSize = n } }
func WithWindowSize(n int) Option { return func(c *Config) { c.WindowSize = n } }
func WithHopSize(n int) Option   { return func(c *Config) { c.HopSize = n } }
func WithWindow(w WindowFunc) Option { return func(c *Config) { c.Window = w } }

func WithMinPeakDistance(n int) Option { return func(c *Config) { c.MinPeakDistance = n } }
func WithAdaptiveFactor(f float64) Option {
	return func(c *Config) { c.AdaptiveFactor = f }
}
func WithMinMagnitudeThreshold(t float64) Option {
	return func(c *Config) { c.MinMagnitudeThreshold = t }
}

func WithMaxTimeDeltaMs(ms int) Option { return func(c *Config) { c.MaxTimeDeltaMs = ms } }
func WithMaxFreqDeltaHz(hz float64) Option {
	return func(c *Config) { c.MaxFreqDeltaHz = hz }
}

func WithFreqQuantizationHz(hz float64) Option {
	return func(c *Config) { c.FreqQuantizationHz = hz }
}
func WithTimeQuantizationMs(ms int) Option {
	return func(c *Config) { c.TimeQuantizationMs = ms }
}

func WithLogger(l Logger) Option { return func(c *Config) { c.Logger = l } }

// DefaultConfig returns the spec.md default tunables (§4.B-E).
func DefaultConfig() *Config {
	return &Config{
		FFTSize:    2048,
		WindowSize: 2048,
		HopSize:    1024,
		Window:     Hann,

		MinPeakDistance:       3,
		AdaptiveFactor:        0.7,
		MinMagnitudeThreshold: 0.01,

		MaxTimeDeltaMs: 2000,
		MaxFreqDeltaHz: 2000.0,

		FreqQuantizationHz: 10.0,
		TimeQuantizationMs: 50,
	}
}

// NewConfig builds a Config from DefaultConfig with the given Options
// applied in order.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks the invariants spec.md calls out as InvalidInput.
func (c *Config) Validate() error {
	if c.FFTSize <= 0 || c.FFTSize&(c.FFTSize-1) != 0 {
		return Newf(InvalidInput, "fft size must be a positive power of two, got %d", c.FFTSize)
	}
	if c.WindowSize <= 0 || c.WindowSize > c.FFTSize {
		return Newf(InvalidInput, "window size must be in (0, fft_size], got %d", c.WindowSize)
	}
	if c.HopSize <= 0 || c.HopSize > c.WindowSize {
		return Newf(InvalidInput, "hop size must be in (0, window_size], got %d", c.HopSize)
	}
	if c.MinPeakDistance < 1 {
		return Newf(InvalidInput, "min peak distance must be >= 1, got %d", c.MinPeakDistance)
	}
	if c.AdaptiveFactor < 0 || c.AdaptiveFactor > 1 {
		return Newf(InvalidInput, "adaptive factor must be in [0,1], got %f", c.AdaptiveFactor)
	}
	if c.MinMagnitudeThreshold < 0 {
		return Newf(InvalidInput, "min magnitude threshold must be >= 0, got %f", c.MinMagnitudeThreshold)
	}
	if c.MaxTimeDeltaMs < 0 {
		return Newf(InvalidInput, "max time delta must be >= 0, got %d", c.MaxTimeDeltaMs)
	}
	if c.MaxFreqDeltaHz < 0 {
		return Newf(InvalidInput, "max freq delta must be >= 0, got %f", c.MaxFreqDeltaHz)
	}
	if c.FreqQuantizationHz <= 0 {
		return Newf(InvalidInput, "freq quantization must be > 0, got %f", c.FreqQuantizationHz)
	}
	if c.TimeQuantizationMs <= 0 {
		return Newf(InvalidInput, "time quantization must be > 0, got %d", c.TimeQuantizationMs)
	}
	return nil
}
