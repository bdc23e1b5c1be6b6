package constant

import (
	"net"
	"strings"
)

const (
	// DefaultListeningAddress replaces an empty bind host.
	DefaultListeningAddress = "0.0.0.0"

	protocolSeparator = "://"
)

type Protocol string

const (
	ProtocolAny Protocol = ""
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// Protocols lists every protocol accepted in a listen spec.
var Protocols = []Protocol{ProtocolTCP, ProtocolUDP}

func (p Protocol) String() string {
	return string(p)
}

// Networks returns the socket networks the relay engine should open.
// An empty protocol leaves the choice to the engine, which serves both.
func (p Protocol) Networks() []string {
	switch p {
	case ProtocolTCP:
		return []string{"tcp"}
	case ProtocolUDP:
		return []string{"udp"}
	default:
		return []string{"tcp", "udp"}
	}
}

// RelayConfig is one normalized relay endpoint handed to the relay engine.
type RelayConfig struct {
	ListeningAddress string   `json:"listening_address" yaml:"listening_address"`
	ListeningPort    string   `json:"listening_port" yaml:"listening_port"`
	RemoteAddress    string   `json:"remote_address" yaml:"remote_address"`
	RemotePort       string   `json:"remote_port" yaml:"remote_port"`
	Protocol         Protocol `json:"protocol" yaml:"protocol"`
}

// DefaultRelayConfig is the endpoint used when no listen source is given
// and the caller opted into a default.
func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		ListeningAddress: DefaultListeningAddress,
		ListeningPort:    "1080",
		RemoteAddress:    "127.0.0.1",
		RemotePort:       "8080",
		Protocol:         ProtocolAny,
	}
}

func (c RelayConfig) ListenAddr() string {
	return net.JoinHostPort(c.ListeningAddress, c.ListeningPort)
}

func (c RelayConfig) RemoteAddr() string {
	return net.JoinHostPort(c.RemoteAddress, c.RemotePort)
}

// ListenSpec renders c in the listen spec grammar
// [proto://]host:port/remote_host:remote_port.
// Hosts are written without brackets; the parser splits on the last colon.
func (c RelayConfig) ListenSpec() string {
	var b strings.Builder
	if c.Protocol != ProtocolAny {
		b.WriteString(c.Protocol.String())
		b.WriteString(protocolSeparator)
	}
	b.WriteString(c.ListeningAddress)
	b.WriteByte(':')
	b.WriteString(c.ListeningPort)
	b.WriteByte('/')
	b.WriteString(c.RemoteAddress)
	b.WriteByte(':')
	b.WriteString(c.RemotePort)
	return b.String()
}

func (c RelayConfig) String() string {
	return c.ListenSpec()
}
