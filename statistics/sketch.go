package statistics

import (
	"math"
	"math/rand/v2"

	. "github.com/suxiao111/terrier/error"
	"github.com/suxiao111/terrier/util"
)

const (
	defaultDepth = 4
	minWidth     = 64
)

// FrequencySketch is a count-min style frequency estimator with signed
// counters. Each of the depth rows hashes the key with its own seed and the
// estimate for a key is the minimum over its row counters. For increment-only
// workloads the estimate never underestimates; because decrements are also
// allowed, counters and estimates may go negative under collisions.
//
// Dimensions are fixed at construction and counters mutate in place for the
// sketch's entire lifetime. Memory is O(width * depth) regardless of how many
// distinct keys pass through.
type FrequencySketch[K comparable] struct {
	width uint32
	depth uint32
	mask  uint32
	seeds []uint32
	rows  [][]int64
	buf   []byte
}

// NewFrequencySketch sizes a sketch from a capacity hint, the expected number
// of distinct keys. The width is the hint rounded up to a power of two so row
// indices reduce with a mask.
func NewFrequencySketch[K comparable](hint int) (*FrequencySketch[K], error) {
	if hint <= 0 {
		return nil, ErrInvalidSketchSize
	}
	return NewFrequencySketchWithSize[K](hint, defaultDepth)
}

// NewFrequencySketchWithSize builds a sketch with explicit dimensions. The
// width is rounded up to a power of two and clamped to a small minimum.
func NewFrequencySketchWithSize[K comparable](width, depth int) (*FrequencySketch[K], error) {
	if width <= 0 || depth <= 0 {
		return nil, ErrInvalidSketchSize
	}
	if width < minWidth {
		width = minWidth
	}
	width = util.Next2Power(width)

	seeds := make([]uint32, depth)
	for i := range seeds {
		seeds[i] = rand.Uint32()
	}
	rows := make([][]int64, depth)
	for i := range rows {
		rows[i] = make([]int64, width)
	}
	return &FrequencySketch[K]{
		width: uint32(width),
		depth: uint32(depth),
		mask:  uint32(width) - 1,
		seeds: seeds,
		rows:  rows,
	}, nil
}

// Increment adds delta to one counter per row and returns the post-update
// estimate so callers don't have to hash the key a second time. Delta may be
// negative.
func (s *FrequencySketch[K]) Increment(key K, delta int64) int64 {
	s.buf = appendKey(s.buf[:0], key)
	estimate := int64(math.MaxInt64)
	for i, seed := range s.seeds {
		row := s.rows[i]
		index := util.SeededHash(s.buf, seed) & s.mask
		row[index] += delta
		if row[index] < estimate {
			estimate = row[index]
		}
	}
	return estimate
}

// Decrement is Increment with the sign flipped.
func (s *FrequencySketch[K]) Decrement(key K, delta int64) int64 {
	return s.Increment(key, -delta)
}

// EstimateCount returns the minimum over the key's row counters. Keys never
// seen return whatever residual collision noise exists, typically <= 0.
func (s *FrequencySketch[K]) EstimateCount(key K) int64 {
	s.buf = appendKey(s.buf[:0], key)
	estimate := int64(math.MaxInt64)
	for i, seed := range s.seeds {
		index := util.SeededHash(s.buf, seed) & s.mask
		if v := s.rows[i][index]; v < estimate {
			estimate = v
		}
	}
	return estimate
}

func (s *FrequencySketch[K]) Width() int {
	return int(s.width)
}

func (s *FrequencySketch[K]) Depth() int {
	return int(s.depth)
}
