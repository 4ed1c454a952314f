// This file declares the Solve result type and the functional options
// (per-index trace hook) accepted by Solve.
package kadane

import "github.com/katalvlaran/coinpath/core"

// Result is the outcome of Solve: the maximum achievable sum and the
// inclusive range that achieves it.
//
// Invariant: Sum equals the sum of the sequence over Range, and no other
// contiguous subrange has a strictly greater sum. Among equal-sum optima,
// Range is the earliest-starting one found by the canonical left-to-right
// scan.
type Result struct {
	// Sum is the maximum contiguous-subrange sum.
	Sum int

	// Range is the inclusive index range achieving Sum.
	Range core.Range
}

// StepInfo describes one scanned index of the recurrence, delivered to the
// OnStep hook after the decision for that index has been applied.
type StepInfo struct {
	// Index is the sequence position this step examined (1 ≤ Index < n).
	Index int

	// Extend is the candidate sum from continuing the previous path.
	Extend int

	// Restart is the candidate sum from starting fresh at Index.
	Restart int

	// Restarted reports which branch won: true means the path was
	// restarted at Index, false means it was extended.
	Restarted bool

	// Improved reports whether this step strictly improved the best sum.
	Improved bool

	// CurrentSum and CurrentStart describe the path ending at Index
	// after the decision.
	CurrentSum   int
	CurrentStart int

	// BestSum, BestStart, BestEnd describe the best path found so far.
	BestSum   int
	BestStart int
	BestEnd   int
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunable behavior of Solve.
type Options struct {
	// OnStep is called once per scanned index (1..n-1), after the
	// extend/restart decision and best-update for that index. Never
	// called for index 0 (the scan's seed) and never on error.
	OnStep func(StepInfo)
}

// DefaultOptions returns Options with a no-op trace hook.
func DefaultOptions() Options {
	return Options{
		OnStep: func(StepInfo) {},
	}
}

// WithOnStep registers a trace hook observing every scanned index.
func WithOnStep(fn func(StepInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
