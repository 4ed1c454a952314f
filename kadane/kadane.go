package kadane

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// Solve — Maximum Subarray (Kadane)
//
// Description:
//
//	Computes the maximum-sum contiguous subrange of seq and its inclusive
//	boundaries in a single left-to-right scan.
//
// Algorithm Outline:
//  1. Seed with index 0: currentSum = best = seq[0];
//     currentStart = bestStart = bestEnd = 0.
//  2. For each index i from 1 to n-1 compute two candidates:
//     extend  = currentSum + seq[i]   (keep walking the current path)
//     restart = seq[i]                (start fresh at i)
//  3. Take restart only when restart > extend STRICTLY; on exact equality
//     extend wins, preserving the earliest possible start for equal-sum
//     paths.
//  4. When currentSum > best STRICTLY, record (best, bestStart, bestEnd).
//     Equal sums never overwrite the recorded best, so the earliest
//     optimal range is the one reported.
//  5. Result: {Sum: best, Range: (bestStart, bestEnd)}.
//
// Both strict comparisons are load-bearing tie-breaks, not implementation
// details: walk.Advance replays them verbatim and tests pin them.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - core.ErrEmptySequence — seq has no elements.
func Solve(seq core.Sequence, opts ...Option) (Result, error) {
	if err := seq.Validate(); err != nil {
		return Result{}, fmt.Errorf("kadane: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	currentSum, currentStart := seq[0], 0
	best, bestStart, bestEnd := seq[0], 0, 0

	for i := 1; i < len(seq); i++ {
		extend := currentSum + seq[i]
		restart := seq[i]

		restarted := restart > extend
		if restarted {
			currentSum = restart
			currentStart = i
		} else {
			currentSum = extend
		}

		improved := currentSum > best
		if improved {
			best = currentSum
			bestStart = currentStart
			bestEnd = i
		}

		o.OnStep(StepInfo{
			Index:        i,
			Extend:       extend,
			Restart:      restart,
			Restarted:    restarted,
			Improved:     improved,
			CurrentSum:   currentSum,
			CurrentStart: currentStart,
			BestSum:      best,
			BestStart:    bestStart,
			BestEnd:      bestEnd,
		})
	}

	return Result{Sum: best, Range: core.Range{Start: bestStart, End: bestEnd}}, nil
}
