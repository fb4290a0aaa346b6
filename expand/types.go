package expand

import (
	"errors"

	"github.com/katalvlaran/trotter/op"
)

// Sentinel errors for expansion strategies. All are raised synchronously
// from Expand, before any recursion; there is never a partial result.
var (
	// ErrOperandType indicates an operand that is not one of the two
	// admissible weighted-sum shapes (op.SummedOp, op.PauliSumOp).
	ErrOperandType = errors.New("expand: operand must be a weighted sum of generators")

	// ErrBadOrder indicates an expansion order that is neither 1 nor an
	// even integer >= 2. Odd orders above 1 are undefined by the Suzuki
	// construction and are rejected rather than silently mis-expanded.
	ErrBadOrder = errors.New("expand: order must be 1 or an even integer >= 2")

	// ErrBadReps indicates a repetition count below 1.
	ErrBadReps = errors.New("expand: reps must be >= 1")
)

// minReps is the smallest admissible repetition count.
const minReps = 1

// Strategy is the capability contract shared by all expansion strategies:
// it carries a repetition count and expands a weighted operator sum into a
// composed, repeated, reduced sequence of exponentiated factors.
type Strategy interface {
	// Reps returns the configured repetition (time-slice) count.
	Reps() int

	// Expand builds the product-formula approximation of the operand's
	// time evolution. See the concrete strategies for error semantics.
	Expand(operator op.Operator) (*op.ComposedOp, error)
}

// operandTerms resolves the two admissible weighted-sum shapes into the
// shared {terms, coefficient} form. Any other Operator kind fails with
// ErrOperandType before any expansion work happens.
func operandTerms(operator op.Operator) ([]op.Term, complex128, error) {
	switch o := operator.(type) {
	case *op.SummedOp:
		return o.Terms(), o.Coeff(), nil
	case *op.PauliSumOp:
		return o.Terms(), o.Coeff(), nil
	default:
		return nil, 0, ErrOperandType
	}
}
