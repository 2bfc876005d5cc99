package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// patternSlicer replays a fixed sequence of dibit characters ('1'/'3')
// as one symbol per PushSample call, ignoring the PCM value and the
// hasSync hint — enough to drive Run() through a full sync-then-frame
// cycle in tests without a real timing recovery loop.
type patternSlicer struct {
	pattern string
	pos     int
}

func (p *patternSlicer) PushSample(pcm int16, hasSync bool) bool {
	return p.pos < len(p.pattern)
}

func (p *patternSlicer) CurrentSymbol() int16 {
	ch := p.pattern[p.pos]
	p.pos++
	if ch == '1' {
		return 100
	}
	return -100
}

func TestRunDispatchesDMRVoiceFrame(t *testing.T) {
	slicer := &patternSlicer{pattern: dmrBSVoiceSync + repeatPattern("1", dmrFrameSymbols)}
	d := NewDecoder(NewOpts(), slicer)
	d.WireDefaults()

	var gotHit, gotDispatch bool
	d.SetObserver(func(ev Event) {
		switch ev.Kind {
		case EventSyncHit:
			gotHit = true
			assert.Equal(t, SyncDMRVoicePos, ev.SyncCode)
		case EventFrameDispatch:
			gotDispatch = true
			assert.Equal(t, ProcessDMRVoice, ev.State)
		}
	})

	for i := 0; i < len(slicer.pattern); i++ {
		d.Run(0)
	}

	require.True(t, gotHit)
	require.True(t, gotDispatch)
	assert.Equal(t, LookForSync, d.FSMState())
}

func repeatPattern(ch string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = ch[0]
	}
	return string(out)
}

func TestRunReturnsToLookForSyncAfterUnwiredCode(t *testing.T) {
	slicer := &patternSlicer{pattern: p25p1Sync}
	d := NewDecoder(NewOpts(), slicer)
	// No WireDefaults: P25 Phase 1 has no processor registered.

	for i := 0; i < len(slicer.pattern); i++ {
		d.Run(0)
	}
	assert.Equal(t, LookForSync, d.FSMState())
}

// TestClampLawsHold is a rapid property test over the Opts setters
// that are documented to clamp rather than error.
func TestClampLawsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := NewOpts()
		n := rapid.IntRange(-1000, 1000).Draw(t, "ssize")
		o.SetSSize(n)
		assert.GreaterOrEqual(t, o.SSize, 1)
		assert.LessOrEqual(t, o.SSize, 128)

		m := rapid.IntRange(-1000, 5000).Draw(t, "msize")
		o.SetMSize(m)
		assert.GreaterOrEqual(t, o.MSize, 1)
		assert.LessOrEqual(t, o.MSize, 1024)

		q := rapid.IntRange(-1000, 1000).Draw(t, "uvquality")
		o.SetUvQuality(q)
		assert.GreaterOrEqual(t, o.UvQuality, 1)
		assert.LessOrEqual(t, o.UvQuality, 64)

		u := rapid.IntRange(-1000, 1000).Draw(t, "upsample")
		o.SetUpsample(u)
		assert.Contains(t, []int{0, 6, 7}, o.Upsample)
	})
}

// TestPolarityDualityLaw checks the polarity duality invariant: for
// every positive/inverted pattern pair, matching the inverted pattern
// (all characters swapped) against the opposite-polarity code holds
// for every named family, since the constants are constructed as
// exact character-swapped pairs.
func TestPolarityDualityLaw(t *testing.T) {
	pairs := []struct{ pos, neg string }{
		{p25p1Sync, invP25p1Sync},
		{dstarSync, invDstarSync},
		{dstarHDSync, invDstarHDSync},
		{provoiceSync, invProvoiceSync},
		{nxdnBSVoiceSync, invNxdnBSVoiceSync},
		{nxdnBSDataSync, invNxdnBSDataSync},
	}
	for _, p := range pairs {
		require.Equal(t, len(p.pos), len(p.neg))
		swapped := make([]byte, len(p.pos))
		for i := 0; i < len(p.pos); i++ {
			if p.pos[i] == '1' {
				swapped[i] = '3'
			} else {
				swapped[i] = '1'
			}
		}
		assert.Equal(t, p.neg, string(swapped))
	}
}

func TestDeterminismOfFeedSymbol(t *testing.T) {
	pattern := dmrBSVoiceSync
	run := func() SyncCode {
		d := newTestDecoder(NewOpts())
		var last SyncCode
		for _, ch := range pattern {
			amp := -100
			if ch == '1' {
				amp = 100
			}
			last = d.feedSymbol(amp)
		}
		return last
	}
	assert.Equal(t, run(), run())
}
