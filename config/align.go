package config

import (
	"fmt"
	"strconv"

	C "github.com/realm-go/realm/constant"
)

// AlignEndpoints builds one relay config per listening port. For every index
// each list contributes its own element when it is long enough and its first
// element otherwise, so a single address or remote port is shared by all
// listening ports. Remote lists shorter than listenPorts are not an error;
// callers that need a strict 1:1 mapping must pad the lists themselves.
func AlignEndpoints(listenAddrs []string, listenPorts []uint16, remoteAddrs []string, remotePorts []uint16) ([]C.RelayConfig, error) {
	switch {
	case len(listenAddrs) == 0:
		return nil, fmt.Errorf("%w: listening_addresses", C.ErrEmptyConfigList)
	case len(listenPorts) == 0:
		return nil, fmt.Errorf("%w: listening_ports", C.ErrEmptyConfigList)
	case len(remoteAddrs) == 0:
		return nil, fmt.Errorf("%w: remote_addresses", C.ErrEmptyConfigList)
	case len(remotePorts) == 0:
		return nil, fmt.Errorf("%w: remote_ports", C.ErrEmptyConfigList)
	}

	configs := make([]C.RelayConfig, 0, len(listenPorts))
	for i := range listenPorts {
		listenAddr := at(listenAddrs, i)
		if listenAddr == "" {
			listenAddr = C.DefaultListeningAddress
		}
		if at(remoteAddrs, i) == "" {
			return nil, fmt.Errorf("%w: empty entry in remote_addresses used by endpoint #%d", C.ErrMalformedAddress, i)
		}
		configs = append(configs, C.RelayConfig{
			ListeningAddress: listenAddr,
			ListeningPort:    strconv.Itoa(int(at(listenPorts, i))),
			RemoteAddress:    at(remoteAddrs, i),
			RemotePort:       strconv.Itoa(int(at(remotePorts, i))),
		})
	}
	return configs, nil
}

func at[T any](list []T, i int) T {
	if i < len(list) {
		return list[i]
	}
	return list[0]
}
