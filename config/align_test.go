package config

import (
	"testing"

	C "github.com/realm-go/realm/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignEndpoints_Broadcast(t *testing.T) {
	configs, err := AlignEndpoints(
		[]string{"0.0.0.0"},
		[]uint16{80, 81, 82},
		[]string{"1.2.3.4"},
		[]uint16{8080},
	)
	require.NoError(t, err)
	require.Len(t, configs, 3)

	for i, port := range []string{"80", "81", "82"} {
		assert.Equal(t, C.RelayConfig{
			ListeningAddress: "0.0.0.0",
			ListeningPort:    port,
			RemoteAddress:    "1.2.3.4",
			RemotePort:       "8080",
		}, configs[i])
	}
}

func TestAlignEndpoints_Parallel(t *testing.T) {
	configs, err := AlignEndpoints(
		[]string{"10.0.0.1", "10.0.0.2"},
		[]uint16{80, 443},
		[]string{"192.168.0.1", "192.168.0.2"},
		[]uint16{8080, 8443},
	)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:80/192.168.0.1:8080", configs[0].ListenSpec())
	assert.Equal(t, "10.0.0.2:443/192.168.0.2:8443", configs[1].ListenSpec())
}

// Shorter remote lists fall back to their first element instead of failing.
func TestAlignEndpoints_ShortRemoteListsFallBack(t *testing.T) {
	configs, err := AlignEndpoints(
		[]string{"0.0.0.0"},
		[]uint16{1000, 1001, 1002},
		[]string{"a.example", "b.example"},
		[]uint16{2000, 2001},
	)
	require.NoError(t, err)
	require.Len(t, configs, 3)
	assert.Equal(t, "0.0.0.0:1002/a.example:2000", configs[2].ListenSpec())
	assert.Equal(t, "0.0.0.0:1001/b.example:2001", configs[1].ListenSpec())
}

// Endpoints are driven by the listening ports; extra remote entries are ignored.
func TestAlignEndpoints_LongRemoteListsIgnored(t *testing.T) {
	configs, err := AlignEndpoints(
		[]string{"0.0.0.0"},
		[]uint16{1000},
		[]string{"a.example", "b.example"},
		[]uint16{2000, 2001, 2002},
	)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "0.0.0.0:1000/a.example:2000", configs[0].ListenSpec())
}

func TestAlignEndpoints_EmptyListenAddressDefaults(t *testing.T) {
	configs, err := AlignEndpoints([]string{""}, []uint16{80}, []string{"1.1.1.1"}, []uint16{80})
	require.NoError(t, err)
	assert.Equal(t, C.DefaultListeningAddress, configs[0].ListeningAddress)

	_, err = AlignEndpoints([]string{"0.0.0.0"}, []uint16{80}, []string{""}, []uint16{80})
	assert.ErrorIs(t, err, C.ErrMalformedAddress)
}

func TestAlignEndpoints_EmptyLists(t *testing.T) {
	addrs := []string{"0.0.0.0"}
	ports := []uint16{80}

	cases := []struct {
		name        string
		listenAddrs []string
		listenPorts []uint16
		remoteAddrs []string
		remotePorts []uint16
	}{
		{"listening_addresses", nil, ports, addrs, ports},
		{"listening_ports", addrs, []uint16{}, addrs, ports},
		{"remote_addresses", addrs, ports, []string{}, ports},
		{"remote_ports", addrs, ports, addrs, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configs, err := AlignEndpoints(tc.listenAddrs, tc.listenPorts, tc.remoteAddrs, tc.remotePorts)
			assert.ErrorIs(t, err, C.ErrEmptyConfigList)
			assert.Contains(t, err.Error(), tc.name)
			assert.Nil(t, configs)
		})
	}
}
