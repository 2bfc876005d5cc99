package core

// Logger is the core's only seam onto the outside world for
// diagnostics text. It is intentionally narrow so any structured
// logger can satisfy it without the core importing one. A nil Logger
// disables all diagnostic output; it is never required for correct
// operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Opts holds every independently-settable configuration toggle for a
// Decoder. All values are bounded per the invariants below and are
// silently clamped into range by their setters; out-of-range input is
// never an error, only a clamp plus a log line when a Logger is set.
type Opts struct {
	// Protocol sync matching toggles.
	FrameDMR      bool
	FrameDStar    bool
	FrameP25P1    bool
	FrameX2TDMA   bool
	FrameNXDN48   bool
	FrameNXDN96   bool
	FrameProVoice bool

	// Polarity conventions.
	InvertedDMR    bool
	InvertedX2TDMA bool

	// Modulation auto-selection toggles.
	ModC4FM bool
	ModQPSK bool
	ModGFSK bool

	// ModThreshold is the flip-count boundary between QPSK and GFSK.
	// The GFSK/C4FM boundary is the fixed constant gfskFlipThreshold.
	ModThreshold int

	// SSize is the QPSK symbol buffer size, clamped to [1,128].
	SSize int
	// MSize is the QPSK min/max averaging window, clamped to [1,1024].
	MSize int

	// Diagnostic surfaces.
	ErrorBars    bool
	Verbose      int
	Datascope    bool
	SymbolTiming bool
	ScopeRate    int

	// Audio/vocoder parameters, out of the core's scope but carried
	// here on the same settings surface as everything else in Opts.
	AudioGain          float64 // <0 disabled, =0 auto, >0 fixed
	UvQuality          int     // [1,64]
	Upsample           int     // one of {0,6,7}
	UnmuteEncryptedP25 bool
	Resume             bool
	UseCosineFilter    bool
	AudioOut           bool

	log Logger
}

// NewOpts returns an Opts with conservative historical defaults: every
// protocol and modulation family enabled, non-inverted, 36/20 buffer
// sizes, and a mod threshold of 26.
func NewOpts() *Opts {
	return &Opts{
		FrameDMR:      true,
		FrameDStar:    true,
		FrameP25P1:    true,
		FrameX2TDMA:   true,
		FrameNXDN48:   true,
		FrameNXDN96:   true,
		FrameProVoice: true,
		ModC4FM:       true,
		ModQPSK:       true,
		ModGFSK:       true,
		ModThreshold:  26,
		SSize:         36,
		MSize:         20,
		ScopeRate:     1,
		AudioGain:     0,
		UvQuality:     3,
		Upsample:      0,
	}
}

// SetLogger attaches a diagnostic sink. Pass nil to disable logging.
func (o *Opts) SetLogger(l Logger) { o.log = l }

func (o *Opts) warnf(format string, args ...any) {
	if o.log != nil {
		o.log.Warnf(format, args...)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetSSize clamps and sets the QPSK symbol buffer size to [1,128].
func (o *Opts) SetSSize(n int) {
	c := clampInt(n, 1, 128)
	if c != n {
		o.warnf("ssize %d out of range, clamped to %d", n, c)
	}
	o.SSize = c
}

// SetMSize clamps and sets the QPSK min/max averaging window to [1,1024].
func (o *Opts) SetMSize(n int) {
	c := clampInt(n, 1, 1024)
	if c != n {
		o.warnf("msize %d out of range, clamped to %d", n, c)
	}
	o.MSize = c
}

// SetUvQuality clamps and sets the vocoder quality to [1,64].
func (o *Opts) SetUvQuality(n int) {
	c := clampInt(n, 1, 64)
	if c != n {
		o.warnf("uvquality %d out of range, clamped to %d", n, c)
	}
	o.UvQuality = c
}

// SetUpsample clamps to the nearest of the only legal values {0,6,7}.
func (o *Opts) SetUpsample(n int) {
	switch n {
	case 0, 6, 7:
		o.Upsample = n
		return
	}
	c := 0
	switch {
	case n < 3:
		c = 0
	case n < 7:
		c = 6
	default:
		c = 7
	}
	o.warnf("upsample %d is not one of {0,6,7}, clamped to %d", n, c)
	o.Upsample = c
}

// SetAudioGain stores the audio gain policy: negative disables audio
// output, zero requests automatic gain, positive is a fixed gain.
func (o *Opts) SetAudioGain(gain float64) { o.AudioGain = gain }

// SetModThreshold sets the QPSK/GFSK flip-count boundary. Any integer
// is accepted; the matcher clamps the comparison implicitly since a
// threshold below gfskFlipThreshold simply means GFSK is never chosen.
func (o *Opts) SetModThreshold(n int) { o.ModThreshold = n }
