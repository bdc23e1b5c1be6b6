package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/realm-go/realm/common/utils"
	C "github.com/realm-go/realm/constant"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects the decoder used for a config file.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatOf picks YAML for .yaml/.yml files and JSON for everything else.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// RawConfig is the on-disk config: four parallel lists aligned by index.
// Port entries are "N" or "N-M".
type RawConfig struct {
	ListeningAddresses []string `json:"listening_addresses" yaml:"listening_addresses"`
	ListeningPorts     []string `json:"listening_ports" yaml:"listening_ports"`
	RemoteAddresses    []string `json:"remote_addresses" yaml:"remote_addresses"`
	RemotePorts        []string `json:"remote_ports" yaml:"remote_ports"`
}

// Config is RawConfig with both port lists expanded.
type Config struct {
	ListeningAddresses []string
	ListeningPorts     utils.PortRanges
	RemoteAddresses    []string
	RemotePorts        utils.PortRanges
}

// UnmarshalRawConfig decodes buf and requires all four fields to be present.
// A present but empty list is left to ParseRawConfig to reject.
func UnmarshalRawConfig(buf []byte, format Format) (*RawConfig, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, fmt.Errorf("%w: empty %s document", C.ErrFileParse, format)
	}

	rawCfg := &RawConfig{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(buf, rawCfg)
	default:
		err = json.Unmarshal(buf, rawCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", C.ErrFileParse, err)
	}

	for _, field := range rawCfg.fields() {
		if field.values == nil {
			return nil, fmt.Errorf("%w: missing field %s", C.ErrFileParse, field.name)
		}
	}
	return rawCfg, nil
}

// ParseRawConfig expands the port lists of rawCfg.
func ParseRawConfig(rawCfg *RawConfig) (*Config, error) {
	listeningPorts, err := utils.ParsePortRanges(rawCfg.ListeningPorts)
	if err != nil {
		return nil, fmt.Errorf("listening_ports: %w", err)
	}
	remotePorts, err := utils.ParsePortRanges(rawCfg.RemotePorts)
	if err != nil {
		return nil, fmt.Errorf("remote_ports: %w", err)
	}

	return &Config{
		ListeningAddresses: rawCfg.ListeningAddresses,
		ListeningPorts:     listeningPorts,
		RemoteAddresses:    rawCfg.RemoteAddresses,
		RemotePorts:        remotePorts,
	}, nil
}

// Relays aligns the expanded lists into one relay config per listening port.
func (c *Config) Relays() ([]C.RelayConfig, error) {
	return AlignEndpoints(
		c.ListeningAddresses,
		c.ListeningPorts.Expand(),
		c.RemoteAddresses,
		c.RemotePorts.Expand(),
	)
}

// Validate lists every length mismatch that alignment will paper over by
// falling back to the first element. Mismatches are not errors.
func (c *Config) Validate() []string {
	total := c.ListeningPorts.Len()
	lengths := []struct {
		name string
		n    int
	}{
		{"listening_addresses", len(c.ListeningAddresses)},
		{"remote_addresses", len(c.RemoteAddresses)},
		{"remote_ports", c.RemotePorts.Len()},
	}

	var warnings []string
	for _, l := range lengths {
		if l.n != 1 && l.n != total {
			warnings = append(warnings, fmt.Sprintf(
				"%s has %d entries but listening_ports expands to %d, entries past the end fall back to the first one or are ignored",
				l.name, l.n, total))
		}
	}
	return warnings
}

type rawField struct {
	name   string
	values []string
}

func (c *RawConfig) fields() []rawField {
	return []rawField{
		{"listening_addresses", c.ListeningAddresses},
		{"listening_ports", c.ListeningPorts},
		{"remote_addresses", c.RemoteAddresses},
		{"remote_ports", c.RemotePorts},
	}
}
