// Package grade scores a player's hand-picked coin path against the true
// optimum computed by kadane.Solve.
//
// 🚀 How is a guess scored?
//
//	Grade sums the player's inclusive range and classifies it:
//	  • ExactMatch — same sum AND same range as the reference optimum.
//	  • TiedSum    — the sum is optimal but the range differs, meaning
//	    the board admits more than one best path.
//	  • Suboptimal — a strictly smaller sum; try again.
//
// ✨ Properties:
//   - pure: no state, no side effects, fully derived from its inputs
//   - defensive: the range is validated even though the UI constrains it
//
// ⚙️ Usage:
//
//	ref, _ := kadane.Solve(seq)
//	rep, err := grade.Grade(seq, core.Range{Start: 2, End: 4}, ref)
//	if err == nil {
//	  fmt.Println(rep.Outcome, rep.UserSum)
//	}
//
// Errors:
//   - core.ErrInvalidRange — Start > End or an endpoint out of bounds.
package grade
