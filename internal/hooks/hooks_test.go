package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsdgo/dsdgo/core"
)

func TestGPIOIndicatorNilSafe(t *testing.T) {
	var g *GPIOIndicator
	assert.NotPanics(t, func() {
		g.Observe(core.Event{Kind: core.EventSyncHit})
		_ = g.Close()
	})

	empty := &GPIOIndicator{}
	assert.NotPanics(t, func() {
		empty.Observe(core.Event{Kind: core.EventNoCarrier})
		_ = empty.Close()
	})
}

func TestSerialPTTNilSafe(t *testing.T) {
	var p *SerialPTT
	assert.NotPanics(t, func() {
		p.Observe(core.Event{Kind: core.EventSyncHit})
		_ = p.Close()
	})

	empty := &SerialPTT{}
	assert.NotPanics(t, func() {
		empty.Observe(core.Event{Kind: core.EventNoCarrier})
		_ = empty.Close()
	})
}

func TestRigControllerNilSafe(t *testing.T) {
	var r *RigController
	assert.NotPanics(t, func() {
		r.Observe(core.Event{Kind: core.EventFrameDispatch})
		_ = r.Close()
	})
}
