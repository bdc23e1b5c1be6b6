package log

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	// LogLevelMapping is a mapping for LogLevel enum
	LogLevelMapping = map[string]LogLevel{
		ERROR.String():   ERROR,
		WARNING.String(): WARNING,
		INFO.String():    INFO,
		DEBUG.String():   DEBUG,
		SILENT.String():  SILENT,
	}

	errInvalidLevel = errors.New("invalid log level, use debug, info, warning, error or silent")
)

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	SILENT
)

type LogLevel int

// ParseLevel looks up a level by name, case-insensitively.
func ParseLevel(s string) (LogLevel, error) {
	level, exist := LogLevelMapping[strings.ToLower(strings.TrimSpace(s))]
	if !exist {
		return INFO, errInvalidLevel
	}
	return level, nil
}

// UnmarshalYAML unserialize LogLevel with yaml
func (l *LogLevel) UnmarshalYAML(unmarshal func(any) error) error {
	var tp string
	if err := unmarshal(&tp); err != nil {
		return err
	}
	level, err := ParseLevel(tp)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// UnmarshalJSON unserialize LogLevel with json
func (l *LogLevel) UnmarshalJSON(data []byte) error {
	var tp string
	if err := json.Unmarshal(data, &tp); err != nil {
		return err
	}
	level, err := ParseLevel(tp)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// MarshalJSON serialize LogLevel with json
func (l LogLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// MarshalYAML serialize LogLevel with yaml
func (l LogLevel) MarshalYAML() (any, error) {
	return l.String(), nil
}

// Set implements pflag.Value
func (l *LogLevel) Set(s string) error {
	level, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Type implements pflag.Value
func (l *LogLevel) Type() string {
	return "level"
}

func (l LogLevel) String() string {
	switch l {
	case INFO:
		return "info"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	case DEBUG:
		return "debug"
	case SILENT:
		return "silent"
	default:
		return "unknown"
	}
}
