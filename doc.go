// Package coinpath is an educational playground for the Maximum Subarray
// problem — play it as a coin-collecting game, then watch Kadane's
// algorithm solve it one decision at a time.
//
// 🚀 What is coinpath?
//
//	A small, deterministic core plus a terminal game on top:
//		• Sequence generation: random non-zero coin tiles within bounds
//		• Batch solver: the optimal path and its boundaries in one O(n) scan
//		• Step walk: the same recurrence replayed index by index, with a
//		  plain-words narrative for every extend-or-restart decision
//		• Grading: score a hand-picked path as exact, tied, or suboptimal
//
// ✨ Why choose coinpath?
//
//   - Beginner-friendly — the whole of dynamic programming in one decision:
//     keep walking, or start fresh?
//   - Deterministic — pinned tie-breaks mean every board has exactly one
//     reported answer; randomness is confined to sequence generation
//   - Oracle-backed — the interactive walk is provably prefix-equivalent
//     to the batch solver, and the tests hold it to that
//
// Everything is organized under five packages:
//
//	core/     — Sequence, Range, and the shared sentinel errors
//	sequence/ — randomized board generation (the only randomized part)
//	kadane/   — the batch solver, with an optional per-index trace hook
//	walk/     — the resumable step machine and its narrative
//	grade/    — scoring a player's range against the optimum
//
// Quick ASCII example:
//
//	  [ 3 ][-2 ][ 5 ][-1 ][ 4 ][-9 ][ 2 ]
//	    └──────── best path: 9 ───┘
//
//	absorbing the small losses pays off; the -9 does not.
//
// The cmd/coinpath binary wraps the core in a bubbletea TUI with Play,
// Learn, and About tabs.
//
//	go get github.com/katalvlaran/coinpath
package coinpath
