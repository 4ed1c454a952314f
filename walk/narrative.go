// Narrative generation lives apart from the recurrence on purpose: every
// function here is a pure projection of numeric state, so the numeric
// invariants stay testable independent of phrasing.
package walk

import "fmt"

// initialNarrative describes the freshly seeded walk at index 0.
func initialNarrative(first int) string {
	return fmt.Sprintf(
		"We start at index 0 with number %d. Current sum = %d, best sum so far = %d.",
		first, first, first,
	)
}

// stepNarrative describes one committed Advance: the index examined, which
// branch won and why, the resulting path sum, the running best, and a
// "new best" annotation only when the best strictly improved.
func stepNarrative(i, value int, restarted, improved bool, currentSum, bestSum int) string {
	var choice string
	if restarted {
		choice = fmt.Sprintf(
			"It's better to START FRESH at index %d (number %d), instead of keeping the old total.",
			i, value,
		)
	} else {
		choice = fmt.Sprintf("We KEEP WALKING and add number %d to our current path.", value)
	}

	extra := ""
	if improved {
		extra = fmt.Sprintf(" Now this is the BEST sum so far: %d.", bestSum)
	}

	return fmt.Sprintf(
		"Looking at index %d, number %d. %s Current path sum = %d. Best sum so far = %d.%s",
		i, value, choice, currentSum, bestSum, extra,
	)
}

// doneNarrative reports the final result once the walk is finished.
func doneNarrative(bestSum, bestStart, bestEnd int) string {
	return fmt.Sprintf(
		"We are done walking! The best sum is %d, from indexes %d to %d.",
		bestSum, bestStart, bestEnd,
	)
}
