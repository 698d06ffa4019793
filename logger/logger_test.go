package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeText})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "path", "a.txt")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "path=a.txt")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})

	l.Debug("moved", "x", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "moved", record["msg"])
	assert.EqualValues(t, 3, record["x"])
}

func TestLogger_OrNop(t *testing.T) {
	assert.Equal(t, Nop, OrNop(nil))
	assert.Equal(t, DefaultLogger, OrNop(DefaultLogger))
}
