package debuglog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
		{"off", LevelOff},
		{"bogus", LevelOff},
		{"", LevelOff},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestSetupAndFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	require.NoError(t, Setup(LevelWarn, path))
	defer Close()

	Debugf("dropped %d", 1)
	Infof("dropped too")
	Warnf("kept warning")
	Errorf("kept error")

	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.NotContains(t, content, "dropped")
	assert.Contains(t, content, "[WARN] kept warning")
	assert.Contains(t, content, "[ERROR] kept error")
}

func TestSetupOffWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "off.log")

	require.NoError(t, Setup(LevelOff, path))
	Infof("nothing")
	require.NoError(t, Close())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
