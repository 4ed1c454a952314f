// This file declares Sequence, Range, and the module-wide sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core sequence/range operations.
var (
	// ErrEmptySequence indicates an operation was invoked on a zero-length sequence.
	ErrEmptySequence = errors.New("core: sequence must be non-empty")

	// ErrInvalidRange indicates a malformed or out-of-bounds index range.
	ErrInvalidRange = errors.New("core: invalid index range")
)

// Sequence is an ordered, fixed-length list of non-zero integers.
//
// A Sequence is immutable by contract: it is created once (typically by
// sequence.Generate) and replaced, never mutated. Callers that need to
// hand a Sequence to untrusted code should pass Clone().
type Sequence []int

// Len returns the number of elements in the sequence.
func (s Sequence) Len() int { return len(s) }

// Validate returns ErrEmptySequence when the sequence has no elements.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySequence
	}

	return nil
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Slice returns a copy of the elements addressed by r.
// Returns ErrInvalidRange when r does not fit the sequence.
func (s Sequence) Slice(r Range) ([]int, error) {
	if err := r.Validate(len(s)); err != nil {
		return nil, err
	}
	out := make([]int, 0, r.Len())
	out = append(out, s[r.Start:r.End+1]...)

	return out, nil
}

// Sum returns the sum of the elements addressed by r.
// Returns ErrInvalidRange when r does not fit the sequence.
func (s Sequence) Sum(r Range) (int, error) {
	if err := r.Validate(len(s)); err != nil {
		return 0, err
	}
	total := 0
	for i := r.Start; i <= r.End; i++ {
		total += s[i]
	}

	return total, nil
}

// Range is an inclusive pair of indices (Start, End) addressing a
// contiguous, non-empty subrange of a Sequence. Zero-length subranges do
// not exist in this model: a valid Range always covers at least one element.
//
// Range is a comparable value type; two ranges are the same iff both
// endpoints match.
type Range struct {
	// Start is the index of the first element covered, 0-based.
	Start int

	// End is the index of the last element covered, inclusive.
	End int
}

// Len returns the number of elements the range covers.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return r.Start <= i && i <= r.End }

// Validate checks the range against a sequence of length n.
// It returns an error wrapping ErrInvalidRange when Start > End or either
// endpoint falls outside [0, n).
func (r Range) Validate(n int) error {
	if r.Start > r.End {
		return fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, r.Start, r.End)
	}
	if r.Start < 0 || r.End >= n {
		return fmt.Errorf("%w: (%d,%d) outside [0,%d)", ErrInvalidRange, r.Start, r.End, n)
	}

	return nil
}

// String renders the range as "(start,end)" for narratives and logs.
func (r Range) String() string { return fmt.Sprintf("(%d,%d)", r.Start, r.End) }
