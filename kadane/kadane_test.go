package kadane_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/kadane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce scans every contiguous subrange and returns the best sum with
// the earliest-starting, then shortest, optimal range — the same canonical
// choice Solve's tie-breaks produce.
func bruteForce(seq core.Sequence) kadane.Result {
	best := kadane.Result{Sum: seq[0], Range: core.Range{Start: 0, End: 0}}
	for s := 0; s < len(seq); s++ {
		sum := 0
		for e := s; e < len(seq); e++ {
			sum += seq[e]
			if sum > best.Sum {
				best = kadane.Result{Sum: sum, Range: core.Range{Start: s, End: e}}
			}
		}
	}

	return best
}

// TestSolve_EmptySequence verifies the core.ErrEmptySequence sentinel.
func TestSolve_EmptySequence(t *testing.T) {
	_, err := kadane.Solve(core.Sequence{})
	assert.ErrorIs(t, err, core.ErrEmptySequence, "empty sequence must error")
}

// TestSolve_ClassicBoard pins the reference scenario:
// [3,-2,5,-1,4,-9,2] → sum 9 over (0,4).
func TestSolve_ClassicBoard(t *testing.T) {
	seq := core.Sequence{3, -2, 5, -1, 4, -9, 2}

	res, err := kadane.Solve(seq)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Sum, "best path is 3-2+5-1+4")
	assert.Equal(t, core.Range{Start: 0, End: 4}, res.Range)
}

// TestSolve_SingleElement covers n=1, including a negative lone tile.
func TestSolve_SingleElement(t *testing.T) {
	res, err := kadane.Solve(core.Sequence{-5})
	require.NoError(t, err)
	assert.Equal(t, -5, res.Sum, "a single tile is its own best path")
	assert.Equal(t, core.Range{Start: 0, End: 0}, res.Range)
}

// TestSolve_AllNegative confirms the least-bad single tile wins when every
// value is negative.
func TestSolve_AllNegative(t *testing.T) {
	res, err := kadane.Solve(core.Sequence{-8, -3, -6, -3})
	require.NoError(t, err)
	assert.Equal(t, -3, res.Sum)
	assert.Equal(t, core.Range{Start: 1, End: 1}, res.Range, "earliest -3 must be reported")
}

// TestSolve_TieBreakEarliestRange verifies that among disjoint equal-sum
// optima the earliest-starting range is reported: [2,-2,2] → (0,0).
func TestSolve_TieBreakEarliestRange(t *testing.T) {
	res, err := kadane.Solve(core.Sequence{2, -2, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sum)
	assert.Equal(t, core.Range{Start: 0, End: 0}, res.Range, "equal sums must not overwrite the earlier best")
}

// TestSolve_TieBreakExtendWins verifies the within-step rule: on
// extend == restart the path is extended, keeping the earliest start.
// In [3,-3,3] index 2 sees extend=3 and restart=3; extending keeps
// currentStart=0, and the equal-sum best update is suppressed, so the
// reported optimum stays (0,0).
func TestSolve_TieBreakExtendWins(t *testing.T) {
	var steps []kadane.StepInfo
	res, err := kadane.Solve(core.Sequence{3, -3, 3}, kadane.WithOnStep(func(s kadane.StepInfo) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Sum)
	assert.Equal(t, core.Range{Start: 0, End: 0}, res.Range)

	require.Len(t, steps, 2)
	last := steps[1]
	assert.Equal(t, 3, last.Extend, "extend candidate at index 2")
	assert.Equal(t, 3, last.Restart, "restart candidate at index 2")
	assert.False(t, last.Restarted, "exact equality must extend, not restart")
	assert.Equal(t, 0, last.CurrentStart, "extending preserves the earliest start")
}

// TestSolve_OnStepTrace checks the hook fires once per scanned index with
// a consistent running state.
func TestSolve_OnStepTrace(t *testing.T) {
	seq := core.Sequence{3, -2, 5, -1, 4, -9, 2}

	var steps []kadane.StepInfo
	res, err := kadane.Solve(seq, kadane.WithOnStep(func(s kadane.StepInfo) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)
	require.Len(t, steps, seq.Len()-1, "one step per index after the seed")

	for k, s := range steps {
		assert.Equal(t, k+1, s.Index, "steps must arrive in scan order")
	}
	final := steps[len(steps)-1]
	assert.Equal(t, res.Sum, final.BestSum, "final step must carry the solved best")
	assert.Equal(t, res.Range.Start, final.BestStart)
	assert.Equal(t, res.Range.End, final.BestEnd)
}

// TestSolve_BruteForceCross cross-checks Solve against exhaustive search
// on randomized small boards, range included (tie-breaks must agree).
func TestSolve_BruteForceCross(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for trial := 0; trial < 500; trial++ {
		n := 1 + rng.Intn(10)
		seq := make(core.Sequence, n)
		for i := range seq {
			v := rng.Intn(19) - 9
			if v == 0 {
				v = 1
			}
			seq[i] = v
		}

		res, err := kadane.Solve(seq)
		require.NoError(t, err)

		want := bruteForce(seq)
		assert.Equal(t, want, res, "seq=%v", seq)
	}
}
