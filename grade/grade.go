package grade

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/kadane"
)

// Outcome classifies a graded guess.
type Outcome int

const (
	// ExactMatch — the guess is the reference optimum, range and all.
	ExactMatch Outcome = iota

	// TiedSum — the guessed sum equals the optimum but over a different
	// range; the board has multiple best paths.
	TiedSum

	// Suboptimal — the guessed sum is strictly below the optimum.
	Suboptimal
)

// String renders the outcome for logs and messages.
func (o Outcome) String() string {
	switch o {
	case ExactMatch:
		return "ExactMatch"
	case TiedSum:
		return "TiedSum"
	default:
		return "Suboptimal"
	}
}

// Report is the full grading verdict: the classification, the sum the
// player's range actually earns, and the reference optimum it was judged
// against. Derived on demand, never stored.
type Report struct {
	Outcome   Outcome
	UserSum   int
	Reference kadane.Result
}

// Grade — score a guess against the optimum
//
// Description:
//
//	Sums seq over user and classifies the guess relative to ref
//	(normally the output of kadane.Solve on the same sequence).
//	The range is validated here even though callers are expected to
//	constrain it at the input layer.
//
// Errors:
//   - core.ErrInvalidRange — user.Start > user.End or out of bounds.
func Grade(seq core.Sequence, user core.Range, ref kadane.Result) (Report, error) {
	userSum, err := seq.Sum(user)
	if err != nil {
		return Report{}, fmt.Errorf("grade: %w", err)
	}

	rep := Report{UserSum: userSum, Reference: ref}
	switch {
	case userSum == ref.Sum && user == ref.Range:
		rep.Outcome = ExactMatch
	case userSum == ref.Sum:
		rep.Outcome = TiedSum
	default:
		rep.Outcome = Suboptimal
	}

	return rep, nil
}
