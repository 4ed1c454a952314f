// Package sequence generates the random coin-tile sequences the rest of
// coinpath operates on.
//
// 🚀 What does it do?
//
//	Generate produces a core.Sequence of exactly Length integers, each
//	drawn uniformly from [MinValue, MaxValue] with zero excluded — every
//	tile must change the running coin total, so a zero tile would teach
//	nothing. Repeats across positions are allowed.
//
// ✨ Key properties:
//   - the ONLY randomized component in the module; everything downstream
//     (kadane, walk, grade) is deterministic given a Sequence
//   - randomness is injected via Options.Rand, so tests seed their own
//     *rand.Rand and replay identical sequences
//   - rejection sampling: zeros are redrawn, all non-zero values in the
//     interval stay uniformly likely
//
// ⚙️ Usage:
//
//	opts := sequence.DefaultOptions() // 9 tiles in [-9, 9]
//	seq, err := sequence.Generate(opts)
//
// Errors:
//   - core.ErrInvalidRange  — [MinValue, MaxValue] holds no non-zero integer.
//   - core.ErrEmptySequence — Length < 1.
package sequence
