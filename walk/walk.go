package walk

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// Reset — seed a fresh walk
//
// Description:
//
//	Initializes a State at index 0 of seq: the seed element is the whole
//	current path and the whole best path. Mirrors step 1 of the batch
//	recurrence in kadane.Solve.
//
// Errors:
//   - core.ErrEmptySequence — seq has no elements.
func Reset(seq core.Sequence) (*State, error) {
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	st := &State{
		Position:     0,
		CurrentSum:   seq[0],
		CurrentStart: 0,
		BestSum:      seq[0],
		BestStart:    0,
		BestEnd:      0,
	}
	st.Narrative = initialNarrative(seq[0])

	return st, nil
}

// Advance — process exactly one more index
//
// Description:
//
//	Applies the extend-or-restart decision for index Position+1 with the
//	SAME tie-breaks as kadane.Solve: restart only when it is STRICTLY
//	better than extending, and record a new best only on STRICT
//	improvement. The transition is committed atomically — the state is
//	either fully advanced to the new index or untouched.
//
//	Once Position sits on the last index the walk is finished: Advance
//	becomes a no-op that only refreshes the narrative to the completion
//	message, safe to call any number of times.
//
// Errors:
//   - core.ErrEmptySequence — seq has no elements.
func (s *State) Advance(seq core.Sequence) error {
	if err := seq.Validate(); err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	if s.Position >= seq.Len()-1 {
		s.Narrative = doneNarrative(s.BestSum, s.BestStart, s.BestEnd)

		return nil
	}

	i := s.Position + 1
	extend := s.CurrentSum + seq[i]
	restart := seq[i]

	restarted := restart > extend
	if restarted {
		s.CurrentSum = restart
		s.CurrentStart = i
	} else {
		s.CurrentSum = extend
	}

	improved := s.CurrentSum > s.BestSum
	if improved {
		s.BestSum = s.CurrentSum
		s.BestStart = s.CurrentStart
		s.BestEnd = i
	}

	s.Position = i
	s.Narrative = stepNarrative(i, seq[i], restarted, improved, s.CurrentSum, s.BestSum)

	return nil
}
