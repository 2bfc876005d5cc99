package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsdgo/dsdgo/core"
)

func TestSyncCodeLabel(t *testing.T) {
	assert.Equal(t, "none", syncCodeLabel(core.SyncMiss))
	assert.Equal(t, "none", syncCodeLabel(core.SyncSearching))
	assert.Equal(t, "0", syncCodeLabel(core.SyncP25P1Pos))
	assert.Equal(t, "12", syncCodeLabel(core.SyncCode(12)))
}

func TestToScopeMessageSyncHit(t *testing.T) {
	msg := toScopeMessage(core.Event{Kind: core.EventSyncHit, SyncCode: 3, Offset: 42, Modulation: core.ModQPSK})
	if assert.NotNil(t, msg) {
		assert.Equal(t, "sync_hit", msg.Kind)
		assert.Equal(t, 3, msg.SyncCode)
		assert.Equal(t, 42, msg.Offset)
		assert.Equal(t, "QPSK", msg.Modulation)
	}
}

func TestToScopeMessageNoCarrier(t *testing.T) {
	msg := toScopeMessage(core.Event{Kind: core.EventNoCarrier})
	if assert.NotNil(t, msg) {
		assert.Equal(t, "no_carrier", msg.Kind)
	}
}

func TestToScopeMessageDatascopeNilScopeIgnored(t *testing.T) {
	msg := toScopeMessage(core.Event{Kind: core.EventDatascope, Scope: nil})
	assert.Nil(t, msg)
}

func TestToScopeMessageUnhandledKind(t *testing.T) {
	msg := toScopeMessage(core.Event{Kind: core.EventFrameDispatch})
	assert.Nil(t, msg)
}

func TestScopeHubObserveNilSafe(t *testing.T) {
	var h *ScopeHub
	assert.NotPanics(t, func() { h.Observe(core.Event{Kind: core.EventNoCarrier}) })
}

func TestScopeHubObserveWithNoClientsDoesNotBlock(t *testing.T) {
	h := NewScopeHub()
	assert.NotPanics(t, func() { h.Observe(core.Event{Kind: core.EventSyncHit}) })
}
