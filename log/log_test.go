package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLogLevel_Parse(t *testing.T) {
	level, err := ParseLevel("Warning")
	require.NoError(t, err)
	assert.Equal(t, WARNING, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogLevel_Marshal(t *testing.T) {
	var level LogLevel
	require.NoError(t, json.Unmarshal([]byte(`"debug"`), &level))
	assert.Equal(t, DEBUG, level)

	buf, err := json.Marshal(ERROR)
	require.NoError(t, err)
	assert.Equal(t, `"error"`, string(buf))

	require.NoError(t, yaml.Unmarshal([]byte("silent"), &level))
	assert.Equal(t, SILENT, level)
	assert.Error(t, yaml.Unmarshal([]byte("loud"), &level))
}

func TestLogLevel_FlagValue(t *testing.T) {
	level := INFO
	require.NoError(t, level.Set("error"))
	assert.Equal(t, ERROR, level)
	assert.Equal(t, "level", level.Type())
	assert.Error(t, level.Set("nope"))
}

func TestLog_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetLevel(Level())
	SetLevel(WARNING)

	Infoln("hidden %d", 1)
	Warnln("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "|warn| shown 2")
}
