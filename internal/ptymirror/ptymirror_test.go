package ptymirror

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsdgo/dsdgo/core"
)

func TestNilMirrorIsSafe(t *testing.T) {
	var m *Mirror
	assert.NotPanics(t, func() {
		m.Observe(core.Event{Kind: core.EventSyncHit})
		_ = m.Close()
	})
	assert.Equal(t, "", m.SlaveName())
}
