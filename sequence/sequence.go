package sequence

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/coinpath/core"
)

// Default generation parameters, matching the classic 9-tile board.
const (
	// DefaultLength is the number of tiles generated when unspecified.
	DefaultLength = 9

	// DefaultMinValue is the lower bound of the tile value interval.
	DefaultMinValue = -9

	// DefaultMaxValue is the upper bound of the tile value interval.
	DefaultMaxValue = 9
)

// Options configures sequence generation.
//
// Fields:
//   - Length   — number of tiles to produce; must be ≥ 1.
//   - MinValue — inclusive lower bound of each tile's value.
//   - MaxValue — inclusive upper bound of each tile's value.
//   - Rand     — randomness source. nil means a time-seeded source; tests
//     pass rand.New(rand.NewSource(k)) for reproducible boards.
type Options struct {
	Length   int
	MinValue int
	MaxValue int
	Rand     *rand.Rand
}

// DefaultOptions returns the classic board: 9 tiles drawn from [-9, 9],
// time-seeded randomness.
func DefaultOptions() Options {
	return Options{
		Length:   DefaultLength,
		MinValue: DefaultMinValue,
		MaxValue: DefaultMaxValue,
		Rand:     nil,
	}
}

// Generate produces a sequence of exactly opts.Length non-zero integers,
// each drawn uniformly from [opts.MinValue, opts.MaxValue] \ {0},
// independently per position.
//
// Zeros are rejected and redrawn, which keeps every remaining value in the
// interval uniformly likely. Returns core.ErrInvalidRange when the interval
// contains no non-zero integer and core.ErrEmptySequence when Length < 1.
func Generate(opts Options) (core.Sequence, error) {
	if opts.Length < 1 {
		return nil, fmt.Errorf("sequence: length %d: %w", opts.Length, core.ErrEmptySequence)
	}
	if err := validateBounds(opts.MinValue, opts.MaxValue); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	span := opts.MaxValue - opts.MinValue + 1
	seq := make(core.Sequence, 0, opts.Length)
	for len(seq) < opts.Length {
		v := opts.MinValue + rng.Intn(span)
		if v == 0 {
			continue
		}
		seq = append(seq, v)
	}

	return seq, nil
}

// validateBounds rejects intervals with no usable (non-zero) integer:
// an inverted interval, or the degenerate interval {0}.
func validateBounds(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("sequence: bounds [%d,%d] inverted: %w", lo, hi, core.ErrInvalidRange)
	}
	if lo == 0 && hi == 0 {
		return fmt.Errorf("sequence: bounds [0,0] contain no non-zero integer: %w", core.ErrInvalidRange)
	}

	return nil
}
