package executor

import (
	"fmt"
	"io"
	"os"

	"github.com/realm-go/realm/config"
	C "github.com/realm-go/realm/constant"
	LC "github.com/realm-go/realm/listener/config"
	"github.com/realm-go/realm/log"
)

// MissingSourcePolicy decides what Parse does when neither listen specs nor
// a config file were given.
type MissingSourcePolicy int

const (
	// FailOnMissingSource returns C.ErrMissingListenSource.
	FailOnMissingSource MissingSourcePolicy = iota
	// UseDefaultEndpoint returns C.DefaultRelayConfig.
	UseDefaultEndpoint
)

func (p MissingSourcePolicy) String() string {
	switch p {
	case UseDefaultEndpoint:
		return "default-endpoint"
	default:
		return "fail"
	}
}

// Source is the invocation input, captured once by the command line layer.
type Source struct {
	ConfigFile string
	Listen     []string
	Missing    MissingSourcePolicy
}

// Parse builds the relay list from whichever source is set. Listen specs and
// a config file are never merged; passing both is rejected before parsing.
func Parse(src Source) ([]C.RelayConfig, error) {
	switch {
	case src.ConfigFile != "" && len(src.Listen) > 0:
		return nil, fmt.Errorf("%w: got %d listen spec(s) and config file %s",
			C.ErrConflictingListenSources, len(src.Listen), src.ConfigFile)
	case src.ConfigFile != "":
		return ParseWithPath(src.ConfigFile)
	case len(src.Listen) > 0:
		return ParseListen(src.Listen)
	}

	if src.Missing == UseDefaultEndpoint {
		relay := C.DefaultRelayConfig()
		log.Warnln("No listen spec or config file given, using default endpoint %s", relay)
		return []C.RelayConfig{relay}, nil
	}
	return nil, C.ErrMissingListenSource
}

// ParseListen parses command line listen specs, stopping at the first bad one.
func ParseListen(specs []string) ([]C.RelayConfig, error) {
	return LC.ParseListenSpecs(specs)
}

// ParseWithPath parses the config file at path, picking the decoder by extension.
func ParseWithPath(path string) ([]C.RelayConfig, error) {
	buf, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	relays, err := ParseWithBytes(buf, config.FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return relays, nil
}

// ParseWithReader parses a config document from an already opened stream.
func ParseWithReader(r io.Reader, format config.Format) ([]C.RelayConfig, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", C.ErrFileRead, err)
	}
	return ParseWithBytes(buf, format)
}

// ParseWithBytes parses a config document held in memory.
func ParseWithBytes(buf []byte, format config.Format) ([]C.RelayConfig, error) {
	rawCfg, err := config.UnmarshalRawConfig(buf, format)
	if err != nil {
		return nil, err
	}

	cfg, err := config.ParseRawConfig(rawCfg)
	if err != nil {
		return nil, err
	}

	for _, warning := range cfg.Validate() {
		log.Warnln("[Config] %s", warning)
	}

	return cfg.Relays()
}

func readConfig(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", C.ErrFileRead, path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", C.ErrFileRead, path, err)
	}
	return buf, nil
}
