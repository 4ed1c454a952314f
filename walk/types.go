// This file declares the walk Status enum and the mutable State carried
// across Advance calls.
package walk

import "github.com/katalvlaran/coinpath/core"

// Status labels where a walk stands relative to its sequence.
//
//   - Walking  — at least one index remains to be processed.
//   - Finished — the last index has been processed; only Reset moves on.
type Status int

const (
	// Walking means Advance will still process a new index.
	Walking Status = iota

	// Finished means Advance is a narrative-only no-op until Reset.
	Finished
)

// String renders the status for logs and debugging.
func (s Status) String() string {
	if s == Finished {
		return "Finished"
	}

	return "Walking"
}

// State is the mutable per-session record of an in-progress walk.
//
// One State exists per active sequence; Reset creates it, each Advance
// mutates it in place, and replacing the sequence discards it. A State
// holds no external resources, so discarding one needs no cleanup.
//
// All numeric fields mirror the batch recurrence exactly; Narrative is a
// display-only projection regenerated from the numbers on every
// transition.
type State struct {
	// Position is the index of the last element processed. The seed
	// element at index 0 counts as processed at Reset.
	Position int

	// CurrentSum and CurrentStart describe the path ending at Position
	// under the extend-or-restart recurrence.
	CurrentSum   int
	CurrentStart int

	// BestSum, BestStart, BestEnd describe the best path found among all
	// positions processed so far, Position included.
	BestSum   int
	BestStart int
	BestEnd   int

	// Narrative describes the most recent transition in plain words.
	// Never used in comparisons.
	Narrative string
}

// Current returns the range of the path currently being walked.
func (s *State) Current() core.Range {
	return core.Range{Start: s.CurrentStart, End: s.Position}
}

// Best returns the range of the best path found so far.
func (s *State) Best() core.Range {
	return core.Range{Start: s.BestStart, End: s.BestEnd}
}

// Status reports Walking or Finished for this state against seq.
func (s *State) Status(seq core.Sequence) Status {
	if s.Position >= seq.Len()-1 {
		return Finished
	}

	return Walking
}

// Done reports whether the walk has processed the final index of seq.
func (s *State) Done(seq core.Sequence) bool {
	return s.Status(seq) == Finished
}
