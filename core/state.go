package core

const (
	maxSSize = 128
	maxMSize = 1024

	// dibitBufCapacity mirrors the source's fixed dibit history ring;
	// the write cursor wraps back to dibitBufBase once it runs past
	// dibitBufWrapAt.
	dibitBufCapacity = 900200
	dibitBufBase     = 200
	dibitBufWrapAt   = 900000

	// syncTestRingCapacity only needs to be wide enough to hold the
	// largest matcher window (32 characters for ProVoice); the logical
	// syncTestPos counter (0..syncTestCapacity) is tracked separately
	// so the 1800/10200 symbol timeouts still apply verbatim.
	syncTestRingCapacity = 64
)

// State is the runtime state of a single decoder instance. It is
// never shared between concurrently-running decoders; each Decoder
// owns exactly one.
type State struct {
	// Levels.
	Min, Max, Centre, UMid, LMid int
	MinRef, MaxRef               int

	// QPSK averaging.
	minBuf, maxBuf []int
	midx           int

	// Symbol history.
	sbuf []int
	sidx int

	// Dibit trail.
	dibitBuf  []byte
	dibitPos  int

	// Sync bookkeeping.
	LastSyncType SyncCode
	LastP25Type  int
	SyncType     SyncCode
	Carrier      bool
	FirstFrame   bool
	Offset       int

	// Modulation.
	RFMod    Modulation
	numFlips int
	lastSign bool
	haveSign bool

	// Descriptive strings (rendered to fixed width only at the
	// display boundary; internally these are plain values).
	FType      string
	FSubtype   string
	ErrStr     string
	Slot0Light string
	Slot1Light string
	AlgID      string
	KeyID      string

	// Counters.
	symbolCnt        int
	scopeSymbolCnt   int
	t                int
	lastT            int
	lidx             int
	samplesPerSymbol int

	// Sync-test rolling window.
	syncRing   []byte
	syncRingWr int
	syncTestPos int

	// lbuf is the 24-entry rolling symbol-amplitude window.
	lbuf [lbufLen]int

	hasSync bool

	nac     int
	lastSrc int
	lastTg  int
}

// NewState allocates a State sized per Opts and resets it to its
// initial post-construction values.
func NewState(o *Opts) *State {
	ssize := clampInt(o.SSize, 1, maxSSize)
	msize := clampInt(o.MSize, 1, maxMSize)
	s := &State{
		sbuf:     make([]int, ssize),
		minBuf:   make([]int, msize),
		maxBuf:   make([]int, msize),
		dibitBuf: make([]byte, dibitBufCapacity),
		syncRing: make([]byte, syncTestRingCapacity),
	}
	s.reset()
	return s
}

// reset zeroes the transient fields and re-seeds levels, matching the
// teacher/source's noCarrier() semantics so that construction and
// carrier loss produce identical state.
func (s *State) reset() {
	s.Min = levelFloor
	s.Max = levelCeiling
	s.Centre = 0
	s.UMid = 0
	s.LMid = 0
	s.MinRef = s.Min
	s.MaxRef = s.Max

	s.LastSyncType = SyncMiss
	s.LastP25Type = 0
	s.SyncType = SyncMiss
	s.Carrier = false
	s.FirstFrame = false
	s.Offset = 0

	s.ErrStr = ""
	s.FType = "             "
	s.FSubtype = "              "
	s.Slot0Light = " slot0 "
	s.Slot1Light = " slot1 "
	s.AlgID = "________"
	s.KeyID = "________________"

	s.nac = 0
	s.lastSrc = 0
	s.lastTg = 0
	s.numFlips = 0
	s.haveSign = false
	s.scopeSymbolCnt = 0

	s.dibitPos = dibitBufBase
	for i := 0; i < dibitBufBase && i < len(s.dibitBuf); i++ {
		s.dibitBuf[i] = 0
	}

	s.hasSync = false
}

// resetFrameSync clears the sync matcher's working set (rolling
// windows, flip counter, symbol-since-reset counters) without
// disturbing carrier/level history. Idempotent: applying it twice in
// a row leaves the same state as applying it once.
func (s *State) resetFrameSync() {
	for i := 18; i < lbufLen; i++ {
		s.lbuf[i] = 0
	}
	s.t = 0
	s.syncTestPos = 0
	s.numFlips = 0
	s.lidx = 0
	s.lastT = 0
	s.haveSign = false
}

// pushDibit appends one polarity symbol ('1' for positive, '3' for
// negative) to both the long-lived dibit trail and the sync-test
// rolling window, returning the ASCII character written.
func (s *State) pushDibit(positive bool) byte {
	var raw byte
	var ch byte
	if positive {
		raw, ch = 1, '1'
	} else {
		raw, ch = 3, '3'
	}

	if s.dibitPos > dibitBufWrapAt {
		s.dibitPos = dibitBufBase
	}
	s.dibitBuf[s.dibitPos] = raw
	s.dibitPos++

	s.syncRing[s.syncRingWr%len(s.syncRing)] = ch
	s.syncRingWr++

	return ch
}

// window returns the last n characters written to the sync-test ring,
// oldest first, exactly as the source's strncpy(p-n+1, n) would.
func (s *State) window(n int) string {
	if n > len(s.syncRing) {
		n = len(s.syncRing)
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		idx := (s.syncRingWr - n + i) % len(s.syncRing)
		if idx < 0 {
			idx += len(s.syncRing)
		}
		buf[i] = s.syncRing[idx]
	}
	return string(buf)
}
