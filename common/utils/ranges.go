package utils

import (
	"strconv"
	"strings"
)

// PortRanges keeps parsed port tokens in their original order.
type PortRanges []Range[uint16]

// Len is the total number of ports Expand would produce.
func (ranges PortRanges) Len() int {
	total := 0
	for _, r := range ranges {
		total += r.Len()
	}
	return total
}

// Expand flattens ranges in order. Duplicates are kept.
func (ranges PortRanges) Expand() []uint16 {
	ports := make([]uint16, 0, ranges.Len())
	for _, r := range ranges {
		ports = r.AppendTo(ports)
	}
	return ports
}

func (ranges PortRanges) String() string {
	terms := make([]string, len(ranges))
	for i, r := range ranges {
		start := r.Start()
		end := r.End()

		var term string
		if start == end {
			term = strconv.Itoa(int(start))
		} else {
			term = strconv.Itoa(int(start)) + "-" + strconv.Itoa(int(end))
		}

		terms[i] = term
	}

	return strings.Join(terms, "/")
}
