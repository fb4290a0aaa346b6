package expand_test

import (
	"fmt"

	"github.com/katalvlaran/trotter/expand"
	"github.com/katalvlaran/trotter/op"
)

// ExampleSuzuki demonstrates the order-2 palindromic expansion of
// H = 1.0·X + 1.0·Z at evolution time 2: the half-time factor list,
// reversed, then forward.
func ExampleSuzuki() {
	sum, err := op.NewSummedOp([]op.Term{
		{Coeff: 1, Gen: op.MustPauli("X")},
		{Coeff: 1, Gen: op.MustPauli("Z")},
	}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	composed, err := expand.NewSuzuki().Expand(sum)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, f := range composed.Factors() {
		fmt.Println(f)
	}
	// Output:
	// exp(i*(1+0i)*Z)
	// exp(i*(1+0i)*X)
	// exp(i*(1+0i)*X)
	// exp(i*(1+0i)*Z)
}

// ExampleSuzuki_reps shows how the repetition count divides the evolution
// time: two first-order slices at t/2 each.
func ExampleSuzuki_reps() {
	sum, err := op.NewSummedOp([]op.Term{
		{Coeff: 1, Gen: op.MustPauli("X")},
		{Coeff: 1, Gen: op.MustPauli("Z")},
	}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	composed, err := expand.NewTrotter(expand.WithReps(2)).Expand(sum)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(composed)
	// Output:
	// exp(i*(1+0i)*X) * exp(i*(1+0i)*Z) * exp(i*(1+0i)*X) * exp(i*(1+0i)*Z)
}

// ExampleSuzuki_SetOrder shows the lazy validation contract: an invalid
// order is stored silently and only rejected when Expand runs.
func ExampleSuzuki_SetOrder() {
	sum, err := op.NewSummedOp(
		[]op.Term{{Coeff: 1, Gen: op.MustPauli("X")}}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := expand.NewSuzuki()
	s.SetOrder(3)

	if _, err = s.Expand(sum); err != nil {
		fmt.Println(err)
	}
	// Output:
	// expand: order must be 1 or an even integer >= 2
}
