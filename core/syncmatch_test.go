package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nullSlicer satisfies SymbolSlicer for tests that drive feedSymbol
// directly and never call Run/PushSample.
type nullSlicer struct{}

func (nullSlicer) PushSample(pcm int16, hasSync bool) bool { return false }
func (nullSlicer) CurrentSymbol() int16                    { return 0 }

func newTestDecoder(o *Opts) *Decoder {
	d := NewDecoder(o, nullSlicer{})
	d.WireDefaults()
	return d
}

func feedPattern(d *Decoder, pattern string) SyncCode {
	var last SyncCode = SyncSearching
	for _, ch := range pattern {
		amp := -100
		if ch == '1' {
			amp = 100
		}
		last = d.feedSymbol(amp)
	}
	return last
}

func TestColdStartNoSignalReachesNoCarrier(t *testing.T) {
	o := NewOpts()
	o.FrameDMR, o.FrameDStar, o.FrameP25P1 = false, false, false
	o.FrameX2TDMA, o.FrameNXDN48, o.FrameNXDN96, o.FrameProVoice = false, false, false, false
	d := newTestDecoder(o)

	// 17 warm-up symbols, then 1800 sync-test positions: the 1817th
	// symbol is the one that reports the miss.
	var last SyncCode = SyncSearching
	for i := 0; i < 1817; i++ {
		last = d.feedSymbol(i%2*200 - 100)
	}
	assert.Equal(t, SyncMiss, last)
	assert.False(t, d.State.Carrier)
	assert.Equal(t, levelFloor, d.State.Min)
	assert.Equal(t, levelCeiling, d.State.Max)
}

func TestSyncTestBufferWrapAt10200(t *testing.T) {
	o := NewOpts()
	o.FrameDMR, o.FrameDStar, o.FrameP25P1 = false, false, false
	o.FrameX2TDMA, o.FrameNXDN48, o.FrameNXDN96, o.FrameProVoice = false, false, false, false
	d := newTestDecoder(o)
	// lastsynctype == P25P1Neg is the one value that exempts the
	// matcher from the 1800-symbol timeout, letting syncTestPos run
	// all the way out to the 10200 wrap.
	d.State.LastSyncType = SyncP25P1Neg
	d.State.Carrier = true

	sawWrap := false
	for i := 0; i < 10220; i++ {
		d.feedSymbol(i%2*200 - 100)
		if !d.State.Carrier {
			sawWrap = true
			break
		}
	}
	require.True(t, sawWrap, "expected noCarrier to fire once syncTestPos wraps at 10200")
}

func TestDMRVoiceLockNonInverted(t *testing.T) {
	o := NewOpts()
	d := newTestDecoder(o)
	code := feedPattern(d, dmrBSVoiceSync)
	assert.Equal(t, SyncDMRVoicePos, code)
	assert.EqualValues(t, 12, code)
}

func TestDMRVoiceInverted(t *testing.T) {
	o := NewOpts()
	o.InvertedDMR = true
	d := newTestDecoder(o)
	code := feedPattern(d, dmrBSDataSync)
	assert.Equal(t, SyncDMRVoiceInvAsPos, code)
	assert.EqualValues(t, 11, code)
}

func TestNXDNRequiresDoubleMatch(t *testing.T) {
	o := NewOpts()
	d := newTestDecoder(o)

	var last SyncCode = SyncSearching
	for _, ch := range nxdnBSVoiceSync {
		amp := -100
		if ch == '1' {
			amp = 100
		}
		last = d.feedSymbol(amp)
	}
	// First full window only latches; it must not report a hit yet.
	assert.Equal(t, SyncSearching, last)
	assert.Equal(t, SyncNXDNVoicePos, d.State.LastSyncType)

	for _, ch := range nxdnBSVoiceSync {
		amp := -100
		if ch == '1' {
			amp = 100
		}
		last = d.feedSymbol(amp)
	}
	assert.Equal(t, SyncNXDNVoicePos, last)
}

func TestModulationSwitchAtNumFlips(t *testing.T) {
	o := NewOpts()
	o.ModThreshold = 26

	s := NewState(o)
	s.numFlips = 10
	o.selectModulation(s)
	assert.Equal(t, ModC4FM, s.RFMod)

	s.numFlips = 20
	o.selectModulation(s)
	assert.Equal(t, ModGFSK, s.RFMod)

	s.numFlips = 30
	o.selectModulation(s)
	assert.Equal(t, ModQPSK, s.RFMod)
}

func TestModulationDisabledFamilyLeavesModUnchanged(t *testing.T) {
	o := NewOpts()
	o.ModQPSK = false
	s := NewState(o)
	s.RFMod = ModC4FM
	s.numFlips = 30
	o.selectModulation(s)
	assert.Equal(t, ModC4FM, s.RFMod)
}
