// Package walk replays Kadane's recurrence one index at a time, so a
// learner can watch every extend-or-restart decision instead of receiving
// the answer all at once.
//
// 🚀 What is a walk?
//
//	Reset seeds a State at index 0, then each Advance processes exactly
//	one more index: it weighs the two candidate sums (keep walking vs.
//	start fresh), applies the SAME tie-breaks as kadane.Solve, updates
//	the best path under the same strict-improvement rule, and rewrites a
//	human-readable narrative explaining what just happened and why.
//
// ✨ Key guarantees:
//   - prefix equivalence: after k Advances the numeric fields equal
//     kadane's recurrence run through index k — the walk never drifts
//     from the batch solver
//   - terminal idempotence: once the last index is processed, further
//     Advances only refresh the "done walking" narrative; numeric state
//     is frozen until Reset
//   - the narrative is a derived projection of the numbers; comparisons
//     and tests never depend on its phrasing
//
// ⚙️ Usage:
//
//	st, err := walk.Reset(seq)
//	for !st.Done(seq) {
//	  _ = st.Advance(seq)
//	  fmt.Println(st.Narrative)
//	}
//
// State machine:
//
//	WALKING --Advance--> WALKING ... --Advance--> FINISHED
//	FINISHED --Advance--> FINISHED (narrative refresh only)
//	any state --Reset--> WALKING at index 0
//
// Errors:
//   - core.ErrEmptySequence — Reset/Advance against a zero-length sequence.
package walk
