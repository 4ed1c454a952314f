package grade_test

import (
	"testing"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/grade"
	"github.com/katalvlaran/coinpath/kadane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrade_ExactMatch verifies the perfect-answer branch on the classic
// board: guessing (0,4) on [3,-2,5,-1,4,-9,2] is an exact match.
func TestGrade_ExactMatch(t *testing.T) {
	seq := core.Sequence{3, -2, 5, -1, 4, -9, 2}
	ref, err := kadane.Solve(seq)
	require.NoError(t, err)

	rep, err := grade.Grade(seq, core.Range{Start: 0, End: 4}, ref)
	require.NoError(t, err)
	assert.Equal(t, grade.ExactMatch, rep.Outcome)
	assert.Equal(t, 9, rep.UserSum)
	assert.Equal(t, ref, rep.Reference, "report must carry the reference it judged against")
}

// TestGrade_TiedSum verifies the multiple-optima branch: on [2,-2,2] the
// solver reports (0,0), so guessing (2,2) ties the sum without matching
// the range.
func TestGrade_TiedSum(t *testing.T) {
	seq := core.Sequence{2, -2, 2}
	ref, err := kadane.Solve(seq)
	require.NoError(t, err)
	require.Equal(t, core.Range{Start: 0, End: 0}, ref.Range)

	rep, err := grade.Grade(seq, core.Range{Start: 2, End: 2}, ref)
	require.NoError(t, err)
	assert.Equal(t, grade.TiedSum, rep.Outcome)
	assert.Equal(t, 2, rep.UserSum)
}

// TestGrade_Suboptimal verifies the strictly-worse branch.
func TestGrade_Suboptimal(t *testing.T) {
	seq := core.Sequence{3, -2, 5, -1, 4, -9, 2}
	ref, err := kadane.Solve(seq)
	require.NoError(t, err)

	rep, err := grade.Grade(seq, core.Range{Start: 5, End: 6}, ref)
	require.NoError(t, err)
	assert.Equal(t, grade.Suboptimal, rep.Outcome)
	assert.Equal(t, -7, rep.UserSum, "-9+2")
}

// TestGrade_WholeBoardGuess grades the default slider position (the whole
// board) — suboptimal here, since the trailing tiles lose coins.
func TestGrade_WholeBoardGuess(t *testing.T) {
	seq := core.Sequence{3, -2, 5, -1, 4, -9, 2}
	ref, err := kadane.Solve(seq)
	require.NoError(t, err)

	rep, err := grade.Grade(seq, core.Range{Start: 0, End: seq.Len() - 1}, ref)
	require.NoError(t, err)
	assert.Equal(t, grade.Suboptimal, rep.Outcome)
	assert.Equal(t, 2, rep.UserSum)
}

// TestGrade_InvalidRange verifies core.ErrInvalidRange on malformed or
// out-of-bounds guesses.
func TestGrade_InvalidRange(t *testing.T) {
	seq := core.Sequence{1, 2, 3}
	ref, err := kadane.Solve(seq)
	require.NoError(t, err)

	_, err = grade.Grade(seq, core.Range{Start: 2, End: 1}, ref)
	assert.ErrorIs(t, err, core.ErrInvalidRange, "inverted guess must error")

	_, err = grade.Grade(seq, core.Range{Start: 0, End: 3}, ref)
	assert.ErrorIs(t, err, core.ErrInvalidRange, "out-of-bounds guess must error")

	_, err = grade.Grade(seq, core.Range{Start: -1, End: 0}, ref)
	assert.ErrorIs(t, err, core.ErrInvalidRange, "negative start must error")
}

// TestOutcome_String pins the log rendering of each outcome.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ExactMatch", grade.ExactMatch.String())
	assert.Equal(t, "TiedSum", grade.TiedSum.String())
	assert.Equal(t, "Suboptimal", grade.Suboptimal.String())
}
