// Package random provides minimal, non-cryptographic pseudo-random helpers:
// integers and floats in inclusive ranges, and random slice elements.
//
// The generator is xorshift64*, reseeded on every call from wall-clock
// nanoseconds mixed with a process-wide counter so concurrent callers do not
// share a seed. Never use this package where unpredictability matters.
package random

import (
	"sync/atomic"
	"time"
)

var sequence atomic.Uint64

func mix(h, x uint64) uint64 {
	h ^= x * 0x9E3779B97F4A7C15
	h = (h<<27 | h>>37) * 0x94D049BB133111EB
	return h
}

// xorshift64* step.
func step(state uint64) uint64 {
	state ^= state >> 12
	state ^= state << 25
	state ^= state >> 27
	return state
}

func draw() uint64 {
	h := mix(0x9E3779B97F4A7C15, uint64(time.Now().UnixNano()))
	h = mix(h, sequence.Add(1))
	if h == 0 {
		h = 1
	}
	return step(h) * 0x2545F4914F6CDD1D
}

// IntBetween returns a uniform int64 in the inclusive range [min, max].
// It panics if min > max.
func IntBetween(min, max int64) int64 {
	if min > max {
		panic("random: min must be <= max")
	}
	if min == max {
		return min
	}
	r := draw()
	// Two's complement makes this the range width even across zero; a width
	// of zero means the full int64 range.
	width := uint64(max) - uint64(min) + 1
	if width == 0 {
		return int64(r)
	}
	return int64(uint64(min) + r%width)
}

// FloatBetween returns a uniform float64 in the inclusive range [min, max],
// within floating point error. It panics if min > max.
func FloatBetween(min, max float64) float64 {
	if min > max {
		panic("random: min must be <= max")
	}
	if min == max {
		return min
	}
	// Top 53 bits become a mantissa in [0, 1).
	unit := float64(draw()>>11) / float64(uint64(1)<<53)
	return min + (max-min)*unit
}

// Choose returns a random element of items, or the zero value and false if
// items is empty.
func Choose[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[IntBetween(0, int64(len(items)-1))], true
}
