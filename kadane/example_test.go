package kadane_test

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/kadane"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic teaching board [3, -2, 5, -1, 4, -9, 2].
//	Absorbing the small losses at indices 1 and 3 pays off: the best
//	path walks tiles 0..4 for a total of 9 coins.
//
// Complexity: O(n) time, O(1) memory
func ExampleSolve() {
	seq := core.Sequence{3, -2, 5, -1, 4, -9, 2}

	res, err := kadane.Solve(seq)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d range=%s\n", res.Sum, res.Range)
	// Output:
	// sum=9 range=(0,4)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve_trace
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Watch every extend/restart decision on [1, -3, 4, -1].
//	Index 1 extends (losing is still better than restarting at -3),
//	index 2 restarts (4 alone beats 2-3+4), index 3 extends.
//
// Use case:
//
//	Visualizers subscribe with WithOnStep instead of re-deriving the
//	recurrence themselves.
func ExampleSolve_trace() {
	seq := core.Sequence{1, -3, 4, -1}

	_, err := kadane.Solve(seq, kadane.WithOnStep(func(s kadane.StepInfo) {
		branch := "extend"
		if s.Restarted {
			branch = "restart"
		}
		fmt.Printf("i=%d %s current=%d best=%d\n", s.Index, branch, s.CurrentSum, s.BestSum)
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	// Output:
	// i=1 extend current=-2 best=1
	// i=2 restart current=4 best=4
	// i=3 extend current=3 best=4
}
