package statistics

import (
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/suxiao111/terrier/config"
	zerr "github.com/suxiao111/terrier/error"
	"github.com/suxiao111/terrier/log"
)

// CollectorOptions configures a ColumnStatsCollector.
type CollectorOptions struct {
	// TopK is the number of exactly tracked frequent values.
	TopK int
	// SketchHint is the expected distinct-value cardinality of the column.
	SketchHint int
	// SampleRate in (0, 1]. Below 1, values are sampled by hash so that a
	// given value is either always or never counted.
	SampleRate float64
}

// DefaultCollectorOptions pulls defaults from the config file.
func DefaultCollectorOptions() CollectorOptions {
	config.Init()
	return CollectorOptions{
		TopK:       config.GetInt("stats.topk"),
		SketchHint: config.GetInt("stats.sketch_hint"),
		SampleRate: config.GetFloat64("stats.sample_rate"),
	}
}

// ValueCount pairs a column value with its (exact or estimated) frequency.
type ValueCount[K comparable] struct {
	Value K
	Count int64
}

// ColumnStats is the result of one collection pass over a column.
type ColumnStats[K comparable] struct {
	NumRows    uint64
	NumNulls   uint64
	NumSampled uint64
	TopValues  []ValueCount[K]
}

// ColumnStatsCollector feeds observed column values through a TopKTracker
// during a scan or sampling pass, then reads the tracked set back to build
// value-frequency statistics for the optimizer.
type ColumnStatsCollector[K comparable] struct {
	topk       *TopKTracker[K]
	sampleRate float64
	threshold  uint64
	numRows    uint64
	numNulls   uint64
	numSampled uint64
	buf        []byte
}

func NewColumnStatsCollector[K comparable](opts CollectorOptions) (*ColumnStatsCollector[K], error) {
	if opts.SampleRate <= 0 || opts.SampleRate > 1 {
		return nil, zerr.ErrInvalidSampleRate
	}
	topk, err := NewTopKTracker[K](opts.TopK, opts.SketchHint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create top-k tracker")
	}
	threshold := uint64(math.MaxUint64)
	if opts.SampleRate < 1 {
		threshold = uint64(opts.SampleRate * float64(math.MaxUint64))
	}
	return &ColumnStatsCollector[K]{
		topk:       topk,
		sampleRate: opts.SampleRate,
		threshold:  threshold,
	}, nil
}

// Observe records one non-null cell. With a sample rate below 1, the value's
// hash decides whether it is counted; hashing the value rather than rolling a
// die keeps sampled frequencies coherent, since every occurrence of a value
// lands on the same side of the threshold.
func (c *ColumnStatsCollector[K]) Observe(value K) {
	c.numRows++
	if c.sampleRate < 1 {
		c.buf = appendKey(c.buf[:0], value)
		if xxhash.Sum64(c.buf) > c.threshold {
			return
		}
	}
	c.numSampled++
	c.topk.Increment(value, 1)
}

// ObserveNull records one null cell. Nulls never enter the tracker.
func (c *ColumnStatsCollector[K]) ObserveNull() {
	c.numRows++
	c.numNulls++
}

// Stats snapshots the collected statistics.
func (c *ColumnStatsCollector[K]) Stats() ColumnStats[K] {
	keys := c.topk.SortedTopKeys()
	top := make([]ValueCount[K], len(keys))
	for i, key := range keys {
		top[i] = ValueCount[K]{Value: key, Count: c.topk.EstimateCount(key)}
	}
	return ColumnStats[K]{
		NumRows:    c.numRows,
		NumNulls:   c.numNulls,
		NumSampled: c.numSampled,
		TopValues:  top,
	}
}

// LogSummary writes the current tracked values through the logger. This is
// observational only and never affects collector or tracker state.
func (c *ColumnStatsCollector[K]) LogSummary() {
	log.Init()
	log.Logger.Debugf("column stats: rows=%d nulls=%d sampled=%d %s",
		c.numRows, c.numNulls, c.numSampled, c.topk)
}
