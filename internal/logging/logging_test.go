package logging

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, parseLevel("debug"))
	assert.Equal(t, log.WarnLevel, parseLevel("warn"))
	assert.Equal(t, log.ErrorLevel, parseLevel("error"))
	assert.Equal(t, log.InfoLevel, parseLevel("info"))
	assert.Equal(t, log.InfoLevel, parseLevel("bogus"))
}

func TestLoggerWritesToProvidedFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/test.log"

	lg, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	lg.Infof("hello %s", "world")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello world")
}
