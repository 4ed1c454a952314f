// Package kadane solves the Maximum Subarray problem: find the contiguous,
// non-empty subrange of an integer sequence with the largest possible sum.
//
// 🚀 What is Kadane's algorithm?
//
//	A single left-to-right scan that, at every index, answers one question:
//	is it better to EXTEND the best path ending at the previous index, or
//	to START FRESH from the current element alone? Keeping the running
//	answer to that question yields the global optimum in O(n) time and
//	O(1) extra space — the textbook introduction to dynamic programming.
//
// ✨ Key features:
//   - exact, deterministic tie-break policy (see Solve) so equal-sum
//     boards always report the same range
//   - optional per-index trace hook (WithOnStep) for visualizers and
//     teaching tools that want to watch every decision
//   - the same recurrence the walk package replays one step at a time;
//     Solve is the correctness oracle for the interactive walkthrough
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/coinpath/kadane"
//
//	res, err := kadane.Solve(seq)
//	if err != nil {
//	  // core.ErrEmptySequence
//	}
//	fmt.Println(res.Sum, res.Range) // e.g. 9 (0,4)
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1)
package kadane
