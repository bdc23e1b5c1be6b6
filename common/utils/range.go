package utils

import (
	"golang.org/x/exp/constraints"
)

// Range is an inclusive [start, end] interval.
type Range[T constraints.Integer] struct {
	start T
	end   T
}

func NewRange[T constraints.Integer](start, end T) Range[T] {
	if start > end {
		return Range[T]{
			start: end,
			end:   start,
		}
	}

	return Range[T]{
		start: start,
		end:   end,
	}
}

func (r Range[T]) Contains(t T) bool {
	return t >= r.start && t <= r.end
}

func (r Range[T]) Start() T {
	return r.start
}

func (r Range[T]) End() T {
	return r.end
}

// Len is the number of values in r.
func (r Range[T]) Len() int {
	return int(r.end-r.start) + 1
}

// AppendTo appends every value of r in ascending order.
func (r Range[T]) AppendTo(dst []T) []T {
	for i := r.start; ; i++ {
		dst = append(dst, i)
		if i == r.end {
			return dst
		}
	}
}
