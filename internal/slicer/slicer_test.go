package slicer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDPLLStepPerSampleScalesWithBaud(t *testing.T) {
	slow := NewDPLL(48000, 2400)
	fast := NewDPLL(48000, 4800)
	assert.Less(t, slow.stepPerSample, fast.stepPerSample)
}

func TestPushSampleEventuallyWraps(t *testing.T) {
	p := NewDPLL(48000, 4800)
	wrapped := false
	for i := 0; i < 48000 && !wrapped; i++ {
		pcm := int16(1000)
		if i%20 < 10 {
			pcm = -1000
		}
		if p.PushSample(pcm, true) {
			wrapped = true
		}
	}
	assert.True(t, wrapped)
}

func TestCurrentSymbolZeroBeforeFirstWrap(t *testing.T) {
	p := NewDPLL(48000, 4800)
	assert.Equal(t, int16(0), p.CurrentSymbol())
}
