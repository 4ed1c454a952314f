// Package core provides the fundamental value types shared by every
// coinpath package: the immutable integer Sequence, the inclusive index
// Range, and the sentinel errors all operations report through.
//
// The types here are deliberately plain:
//
//   - Sequence — an ordered, fixed-length list of non-zero integers.
//     Treat it as immutable: a session replaces its Sequence wholesale
//     (via sequence.Generate) and never edits one in place.
//   - Range — an inclusive (Start, End) pair addressing a contiguous
//     subrange of a Sequence. Ranges are comparable with ==.
//
// Errors:
//
//	ErrEmptySequence - an operation was invoked on a zero-length sequence.
//	ErrInvalidRange  - a malformed or out-of-bounds Range, or an integer
//	                   interval containing no usable (non-zero) value.
//
// Every downstream package (kadane, walk, grade, sequence) wraps these two
// sentinels with fmt.Errorf("...: %w", ...), so errors.Is works across the
// whole module.
package core
