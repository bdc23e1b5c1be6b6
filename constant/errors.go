package constant

import "errors"

// ErrorKind classifies a configuration failure. Every error returned while
// building relay configs wraps exactly one of the sentinels below.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidProtocol
	KindMalformedListenSpec
	KindMalformedAddress
	KindInvalidPortRange
	KindPortRangeDescending
	KindEmptyConfigList
	KindFileRead
	KindFileParse
	KindMissingListenSource
	KindConflictingListenSources
)

var (
	ErrInvalidProtocol          = errors.New("invalid protocol")
	ErrMalformedListenSpec      = errors.New("malformed listen spec")
	ErrMalformedAddress         = errors.New("malformed address")
	ErrInvalidPortRange         = errors.New("invalid port range")
	ErrPortRangeDescending      = errors.New("descending port range")
	ErrEmptyConfigList          = errors.New("empty config list")
	ErrFileRead                 = errors.New("could not read config file")
	ErrFileParse                = errors.New("could not parse config file")
	ErrMissingListenSource      = errors.New("no listen spec or config file given")
	ErrConflictingListenSources = errors.New("listen specs and config file are mutually exclusive")
)

var errorKinds = []struct {
	kind ErrorKind
	err  error
	name string
}{
	{KindInvalidProtocol, ErrInvalidProtocol, "InvalidProtocol"},
	{KindMalformedListenSpec, ErrMalformedListenSpec, "MalformedListenSpec"},
	{KindMalformedAddress, ErrMalformedAddress, "MalformedAddress"},
	{KindInvalidPortRange, ErrInvalidPortRange, "InvalidPortRange"},
	{KindPortRangeDescending, ErrPortRangeDescending, "PortRangeDescending"},
	{KindEmptyConfigList, ErrEmptyConfigList, "EmptyConfigList"},
	{KindFileRead, ErrFileRead, "FileReadError"},
	{KindFileParse, ErrFileParse, "FileParseError"},
	{KindMissingListenSource, ErrMissingListenSource, "MissingListenSource"},
	{KindConflictingListenSources, ErrConflictingListenSources, "ConflictingListenSources"},
}

func (k ErrorKind) String() string {
	for _, e := range errorKinds {
		if e.kind == k {
			return e.name
		}
	}
	return "Unknown"
}

// ErrorKindOf reports which sentinel err wraps.
func ErrorKindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, e := range errorKinds {
		if errors.Is(err, e.err) {
			return e.kind
		}
	}
	return KindUnknown
}
