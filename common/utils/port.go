package utils

import (
	"fmt"
	"strconv"
	"strings"

	C "github.com/realm-go/realm/constant"
)

// ParsePortRange parses "N" or "N-M" (inclusive, N <= M) with ports in 0-65535.
func ParsePortRange(token string) (Range[uint16], error) {
	token = strings.TrimSpace(token)
	bounds := strings.Split(token, "-")
	switch len(bounds) {
	case 1:
		port, err := parsePort(bounds[0])
		if err != nil {
			return Range[uint16]{}, fmt.Errorf("%w %q", C.ErrInvalidPortRange, token)
		}
		return NewRange(port, port), nil
	case 2:
		start, err := parsePort(bounds[0])
		if err != nil {
			return Range[uint16]{}, fmt.Errorf("%w %q: bad start", C.ErrInvalidPortRange, token)
		}
		end, err := parsePort(bounds[1])
		if err != nil {
			return Range[uint16]{}, fmt.Errorf("%w %q: bad end", C.ErrInvalidPortRange, token)
		}
		if start > end {
			return Range[uint16]{}, fmt.Errorf("%w %q: %d > %d", C.ErrPortRangeDescending, token, start, end)
		}
		return NewRange(start, end), nil
	default:
		return Range[uint16]{}, fmt.Errorf("%w %q: too many '-'", C.ErrInvalidPortRange, token)
	}
}

// ParsePortRanges parses every token, keeping source order.
func ParsePortRanges(tokens []string) (PortRanges, error) {
	ranges := make(PortRanges, 0, len(tokens))
	for _, token := range tokens {
		r, err := ParsePortRange(token)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// ExpandPorts turns port tokens into individual ports, in token order and
// ascending within a range. Nothing is sorted or deduplicated, and the size
// is not capped: a token may expand to 65536 ports, so check
// PortRanges.Len first when the tokens are untrusted.
func ExpandPorts(tokens []string) ([]uint16, error) {
	ranges, err := ParsePortRanges(tokens)
	if err != nil {
		return nil, err
	}
	return ranges.Expand(), nil
}

func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(port), nil
}
