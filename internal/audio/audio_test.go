package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, contains("USB Audio Device", "USB"))
	assert.True(t, contains("USB Audio Device", ""))
	assert.False(t, contains("USB Audio Device", "bluetooth"))
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 4, indexOf("USB Audio", "Audio"))
	assert.Equal(t, -1, indexOf("USB Audio", "missing"))
}
