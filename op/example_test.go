package op_test

import (
	"fmt"

	"github.com/katalvlaran/trotter/op"
)

// ExampleTerm_ExpI builds one exponentiated factor from a weighted Pauli
// term.
func ExampleTerm_ExpI() {
	term := op.Term{Coeff: 2, Gen: op.MustPauli("XZ")}
	fmt.Println(term.ExpI())
	// Output:
	// exp(i*(2+0i)*XZ)
}

// ExampleComposedOp_Power shows repetition by concatenation: the internal
// order is preserved in every copy.
func ExampleComposedOp_Power() {
	seq := op.Compose(
		op.Term{Coeff: 1, Gen: op.MustPauli("X")}.ExpI(),
		op.Term{Coeff: 1, Gen: op.MustPauli("Z")}.ExpI(),
	)

	repeated, err := seq.Power(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(repeated)
	// Output:
	// exp(i*(1+0i)*X) * exp(i*(1+0i)*Z) * exp(i*(1+0i)*X) * exp(i*(1+0i)*Z)
}

// ExampleComposedOp_Reduce drops identity factors while preserving the
// sequence structure.
func ExampleComposedOp_Reduce() {
	seq := op.Compose(
		op.Term{Coeff: 1, Gen: op.MustPauli("X")}.ExpI(),
		op.Term{Coeff: 0, Gen: op.MustPauli("Y")}.ExpI(),
		op.Term{Coeff: -1, Gen: op.MustPauli("Z")}.ExpI(),
	)

	fmt.Println(seq.Reduce())
	// Output:
	// exp(i*(1+0i)*X) * exp(i*(-1+0i)*Z)
}
