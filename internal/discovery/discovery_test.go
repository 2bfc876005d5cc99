package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultServiceNameIsStable(t *testing.T) {
	assert.Equal(t, "dsdgo", defaultServiceName())
}
