package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_WritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Error("save failed", errors.New("disk full"), Fields{"key": "slot"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "save failed", line["msg"])
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "disk full", line["error"])
	assert.Equal(t, "slot", line["key"])
	assert.NotEmpty(t, line["ts"])
}

func TestSetLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("info")

	Debug("hidden", nil)
	assert.Zero(t, buf.Len())

	SetLevel("debug")
	Debug("shown", nil)
	assert.Contains(t, buf.String(), "shown")

	SetLevel("not-a-level")
	Debug("still shown", nil)
	assert.Contains(t, buf.String(), "still shown")
}
