package config

import (
	"fmt"
	"strings"

	C "github.com/realm-go/realm/constant"

	"github.com/samber/lo"
)

// ParseListenSpec parses [proto://][bind_host]:bind_port/remote_host:remote_port.
// Each side is split on its last colon, so hosts may themselves contain colons.
func ParseListenSpec(spec string) (C.RelayConfig, error) {
	protocol := C.ProtocolAny
	rest := spec
	if proto, remainder, found := strings.Cut(spec, "://"); found {
		p := C.Protocol(strings.ToLower(proto))
		if !lo.Contains(C.Protocols, p) {
			return C.RelayConfig{}, fmt.Errorf("%w %q in %q, protocol must be %s",
				C.ErrInvalidProtocol, proto, spec, strings.Join(lo.Map(C.Protocols, func(p C.Protocol, _ int) string {
					return p.String()
				}), " or "))
		}
		protocol = p
		rest = remainder
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return C.RelayConfig{}, fmt.Errorf("%w %q, expected [proto://][host]:port/host:port", C.ErrMalformedListenSpec, spec)
	}

	listenHost, listenPort, err := splitHostPort(parts[0])
	if err != nil {
		return C.RelayConfig{}, fmt.Errorf("%w: listen address %q in %q", err, parts[0], spec)
	}
	remoteHost, remotePort, err := splitHostPort(parts[1])
	if err != nil {
		return C.RelayConfig{}, fmt.Errorf("%w: remote address %q in %q", err, parts[1], spec)
	}

	if listenHost == "" {
		listenHost = C.DefaultListeningAddress
	}
	switch {
	case listenPort == "":
		return C.RelayConfig{}, fmt.Errorf("%w: empty listen port in %q", C.ErrMalformedAddress, spec)
	case remoteHost == "":
		return C.RelayConfig{}, fmt.Errorf("%w: empty remote host in %q", C.ErrMalformedAddress, spec)
	case remotePort == "":
		return C.RelayConfig{}, fmt.Errorf("%w: empty remote port in %q", C.ErrMalformedAddress, spec)
	}

	return C.RelayConfig{
		ListeningAddress: listenHost,
		ListeningPort:    listenPort,
		RemoteAddress:    remoteHost,
		RemotePort:       remotePort,
		Protocol:         protocol,
	}, nil
}

// ParseListenSpecs parses specs in order and stops at the first failure.
func ParseListenSpecs(specs []string) ([]C.RelayConfig, error) {
	configs := make([]C.RelayConfig, 0, len(specs))
	for idx, spec := range specs {
		cfg, err := ParseListenSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("listen spec #%d: %w", idx, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func splitHostPort(addr string) (host, port string, err error) {
	i := strings.LastIndexByte(addr, ':')
	if i < 0 {
		return "", "", C.ErrMalformedAddress
	}
	return addr[:i], addr[i+1:], nil
}
