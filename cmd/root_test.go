package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	C "github.com/realm-go/realm/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_ListenAndConfigConflict(t *testing.T) {
	_, err := execute(t, "-L", "tcp://bad", "-c", "config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
	// rejected by flag validation, the listen spec is never parsed
	assert.NotErrorIs(t, err, C.ErrMalformedListenSpec)
	assert.NotErrorIs(t, err, C.ErrFileRead)
}

func TestRoot_ListenText(t *testing.T) {
	out, err := execute(t,
		"-L", "tcp://:8080/127.0.0.1:1080",
		"--listen", "UDP://10.0.0.1:53/8.8.8.8:53")
	require.NoError(t, err)
	assert.Equal(t, "tcp://0.0.0.0:8080/127.0.0.1:1080\nudp://10.0.0.1:53/8.8.8.8:53\n", out)
}

func TestRoot_ConfigJSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "listening_addresses": ["0.0.0.0"],
  "listening_ports": ["80-82"],
  "remote_addresses": ["1.2.3.4"],
  "remote_ports": ["8080"]
}`), 0o644))

	out, err := execute(t, "-c", path, "-o", "json")
	require.NoError(t, err)

	var relays []C.RelayConfig
	require.NoError(t, json.Unmarshal([]byte(out), &relays))
	require.Len(t, relays, 3)
	assert.Equal(t, "82", relays[2].ListeningPort)
	assert.Equal(t, "1.2.3.4", relays[2].RemoteAddress)
}

func TestRoot_YAMLOutput(t *testing.T) {
	out, err := execute(t, "-L", ":1080/127.0.0.1:8080", "-o", "yaml")
	require.NoError(t, err)

	var relays []C.RelayConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &relays))
	require.Len(t, relays, 1)
	assert.Equal(t, "0.0.0.0", relays[0].ListeningAddress)
}

func TestRoot_UnknownOutput(t *testing.T) {
	_, err := execute(t, "-L", ":1080/127.0.0.1:8080", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRoot_MissingSource(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, C.ErrMissingListenSource)
	assert.Contains(t, err.Error(), "MissingListenSource")

	out, err := execute(t, "--default-endpoint")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1080/127.0.0.1:8080\n", out)
}

func TestRoot_ParseErrorIsFatal(t *testing.T) {
	out, err := execute(t, "-L", ":1080/127.0.0.1:8080", "-L", "sctp://:1/2.2.2.2:2")
	assert.ErrorIs(t, err, C.ErrInvalidProtocol)
	assert.Contains(t, err.Error(), "InvalidProtocol")
	assert.Contains(t, err.Error(), "sctp")
	assert.Empty(t, out)
}

func TestRoot_TestConfig(t *testing.T) {
	out, err := execute(t, "-t", "-L", ":1080/127.0.0.1:8080")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration test is successful, 1 relay(s)")

	out, err = execute(t, "test", "-L", ":1080/127.0.0.1:8080", "-L", ":1081/127.0.0.1:8081")
	require.NoError(t, err)
	assert.Contains(t, out, "2 relay(s)")
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "version", "-n")
	require.NoError(t, err)
	assert.Equal(t, "Version: "+C.Version+"\n", out)
}
