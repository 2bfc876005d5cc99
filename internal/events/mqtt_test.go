package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsdgo/dsdgo/core"
)

func TestGenerateClientIDIsUniqueAndPrefixed(t *testing.T) {
	a := generateClientID()
	b := generateClientID()
	assert.NotEqual(t, a, b)
	assert.Equal(t, "dsdgo_", a[:6])
}

func TestTopicAndPayloadSyncHit(t *testing.T) {
	ev := core.Event{Kind: core.EventSyncHit, SyncCode: 12, Offset: 7, Modulation: core.ModC4FM}
	topic, payload, ok := topicAndPayload("dsdgo", ev, 1000)
	assert.True(t, ok)
	assert.Equal(t, "dsdgo/sync", topic)
	assert.Equal(t, 12, payload.SyncCode)
	assert.Equal(t, 7, payload.Offset)
	assert.Equal(t, "C4FM", payload.Modulation)
	assert.Equal(t, int64(1000), payload.Timestamp)
}

func TestTopicAndPayloadNoCarrier(t *testing.T) {
	topic, _, ok := topicAndPayload("dsdgo", core.Event{Kind: core.EventNoCarrier}, 5)
	assert.True(t, ok)
	assert.Equal(t, "dsdgo/no_carrier", topic)
}

func TestTopicAndPayloadUnhandledKind(t *testing.T) {
	_, _, ok := topicAndPayload("dsdgo", core.Event{Kind: core.EventFrameDispatch}, 5)
	assert.False(t, ok)
}
