package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeCentreInvariant(t *testing.T) {
	s := NewState(NewOpts())
	s.Min = -12000
	s.Max = 9000
	s.recomputeCentre()

	assert.LessOrEqual(t, s.Min, s.Centre)
	assert.LessOrEqual(t, s.Centre, s.Max)

	wantUMid := (s.Max-s.Centre)*5/8 + s.Centre
	wantLMid := (s.Min-s.Centre)*5/8 + s.Centre
	assert.Equal(t, wantUMid, s.UMid)
	assert.Equal(t, wantLMid, s.LMid)
}

func TestUpdateRefScalesOnlyUnderQPSK(t *testing.T) {
	s := NewState(NewOpts())
	s.Max = 10000
	s.Min = -10000

	s.RFMod = ModC4FM
	s.updateRef()
	assert.Equal(t, s.Max, s.MaxRef)
	assert.Equal(t, s.Min, s.MinRef)

	s.RFMod = ModQPSK
	s.updateRef()
	assert.Equal(t, int(float64(10000)*0.80), s.MaxRef)
	assert.Equal(t, int(float64(-10000)*0.80), s.MinRef)
}

func TestBlendLevelIsMidpoint(t *testing.T) {
	assert.Equal(t, 50, blendLevel(0, 100))
	assert.Equal(t, -25, blendLevel(-50, 0))
}

func TestSortedTripleMean(t *testing.T) {
	var vals [lbufLen]int
	for i := range vals {
		vals[i] = i - 12
	}
	lo := sortedTripleMean(vals, true)
	hi := sortedTripleMean(vals, false)
	assert.Less(t, lo, hi)
}

func TestResetIsIdempotent(t *testing.T) {
	s := NewState(NewOpts())
	s.Carrier = true
	s.Offset = 42
	s.reset()
	first := *s
	s.reset()
	assert.Equal(t, first.Min, s.Min)
	assert.Equal(t, first.Max, s.Max)
	assert.Equal(t, first.Centre, s.Centre)
	assert.Equal(t, first.LastSyncType, s.LastSyncType)
	assert.Equal(t, first.Carrier, s.Carrier)
	assert.False(t, s.Carrier)
}

func TestResetFrameSyncIsIdempotent(t *testing.T) {
	s := NewState(NewOpts())
	s.t = 17
	s.numFlips = 5
	s.lidx = 3
	s.resetFrameSync()
	first := *s
	s.resetFrameSync()
	assert.Equal(t, first.t, s.t)
	assert.Equal(t, first.numFlips, s.numFlips)
	assert.Equal(t, first.lidx, s.lidx)
	assert.Equal(t, 0, s.t)
}

func TestPushDibitWindow(t *testing.T) {
	s := NewState(NewOpts())
	for i := 0; i < 5; i++ {
		s.pushDibit(i%2 == 0)
	}
	assert.Equal(t, "13131", s.window(5))
	assert.Equal(t, "131", s.window(3))
}
