package expand

import (
	"math"

	"github.com/katalvlaran/trotter/op"
)

// Suzuki expands a weighted operator sum by the recursive Trotter–Suzuki
// "bookends" construction, then repeats the whole composed slice reps
// times.
//
// Configuration is validated lazily: the order property may be mutated
// freely via SetOrder and is only checked when Expand runs.
type Suzuki struct {
	reps  int
	order int
}

// NewSuzuki returns a Suzuki strategy with the documented defaults
// (reps=1, order=2), overridden by the given options. WithSeed is ignored.
func NewSuzuki(opts ...Option) *Suzuki {
	o := gatherOptions(opts...)

	return &Suzuki{reps: o.reps, order: o.order}
}

// Reps returns the configured repetition count.
func (s *Suzuki) Reps() int { return s.reps }

// Order returns the configured expansion order.
func (s *Suzuki) Order() int { return s.order }

// SetOrder replaces the expansion order without validation; an invalid
// order surfaces as ErrBadOrder from the next Expand call.
func (s *Suzuki) SetOrder(order int) { s.order = order }

// validOrder reports whether k is an admissible Suzuki order: 1, or an
// even integer >= 2. Odd k > 1 is undefined by the construction.
func validOrder(k int) bool {
	return k == 1 || (k >= 2 && k%2 == 0)
}

// Expand builds the product-formula approximation of exp(i·coeff·Σterms):
//
//  1. Resolve the operand shape (ErrOperandType otherwise).
//  2. Validate reps >= 1 (ErrBadReps) and the order (ErrBadOrder).
//  3. Build one repetition slice via recursiveExpansion.
//  4. Compose the slice, raise it to the power reps (concatenation,
//     internal order preserved), and reduce the result.
//
// The transformation is pure: no state is mutated and the same inputs
// always produce the identical ordered factor list.
//
// Complexity: O(nₜ·5^((order−2)/2)·reps) output factors for nₜ terms at
// even order; the time to build them is linear in the output length.
func (s *Suzuki) Expand(operator op.Operator) (*op.ComposedOp, error) {
	terms, evoTime, err := operandTerms(operator)
	if err != nil {
		return nil, err
	}
	if s.reps < minReps {
		return nil, ErrBadReps
	}
	if !validOrder(s.order) {
		return nil, ErrBadOrder
	}

	slice := recursiveExpansion(terms, evoTime, s.order, s.reps)

	single := op.Compose(slice...)
	full, err := single.Power(s.reps)
	if err != nil {
		return nil, err
	}

	return full.Reduce(), nil
}

// suzukiSplit returns the fractional time-split coefficient of the order-k
// recursion level: p_k = 1 / (4 − 4^(1/(2k−1))).
func suzukiSplit(k int) complex128 {
	return complex(1/(4-math.Pow(4, 1/float64(2*k-1))), 0)
}

// recursiveExpansion computes a single repetition slice of the Suzuki
// expansion as an ordered factor list. evoTime is the overall coefficient;
// the division by reps is baked into the order-1 base case, so every
// recursive level works on the full evoTime.
//
//   - order 1: one factor exp(i·wᵢ·Gᵢ·t/reps) per term, original order.
//   - order 2: the order-1 list at half time, reversed, then forward -
//     the palindromic (Strang) splitting.
//   - even order k > 2: with p = suzukiSplit(k), the order-(k−2) slice at
//     time t·p forms the side block and the slice at t·(1−4p) the middle;
//     the layout is side·side ++ middle ++ side·side. The side block is
//     computed once and appended twice per flank - list concatenation,
//     never element-wise doubling - which keeps the tree O(3^levels)
//     instead of O(5^levels).
//
// Callers guarantee a valid order (see validOrder); the function is total
// and deterministic for valid inputs.
func recursiveExpansion(terms []op.Term, evoTime complex128, order, reps int) []op.ExpFactor {
	if order == 1 {
		scale := evoTime / complex(float64(reps), 0)
		out := make([]op.ExpFactor, len(terms))
		for i, t := range terms {
			out[i] = t.Mul(scale).ExpI()
		}

		return out
	}

	if order == 2 {
		half := recursiveExpansion(terms, evoTime/2, order-1, reps)
		out := make([]op.ExpFactor, 0, 2*len(half))
		for i := len(half) - 1; i >= 0; i-- {
			out = append(out, half[i])
		}

		return append(out, half...)
	}

	p := suzukiSplit(order)
	side := recursiveExpansion(terms, evoTime*p, order-2, reps)
	middle := recursiveExpansion(terms, evoTime*(1-4*p), order-2, reps)

	out := make([]op.ExpFactor, 0, 4*len(side)+len(middle))
	out = append(out, side...)
	out = append(out, side...)
	out = append(out, middle...)
	out = append(out, side...)

	return append(out, side...)
}
