package op

import (
	"strings"

	"github.com/katalvlaran/trotter/cmat"
)

// ComposedOp is an ordered, immutable sequence of exponentiated factors,
// applied left to right: Factors()[0] first, then the next, and so on.
// Power and Reduce return new sequences; the receiver is never mutated.
type ComposedOp struct {
	factors []ExpFactor
}

// Compose wraps factors into a ComposedOp. The slice is copied.
// Complexity: O(n).
func Compose(factors ...ExpFactor) *ComposedOp {
	own := make([]ExpFactor, len(factors))
	copy(own, factors)

	return &ComposedOp{factors: own}
}

// Len returns the number of factors in the sequence.
func (c *ComposedOp) Len() int { return len(c.factors) }

// Factors returns the ordered factor list as a defensive copy.
func (c *ComposedOp) Factors() []ExpFactor {
	out := make([]ExpFactor, len(c.factors))
	copy(out, c.factors)

	return out
}

// Coeff reports 1: a composed sequence carries no global scalar. Present
// so ComposedOp satisfies Operator.
func (c *ComposedOp) Coeff() complex128 { return 1 }

// Power returns the sequence repeated n times by concatenation, internal
// order preserved in every copy. n == 0 yields the empty sequence.
// Returns ErrNegativePower for n < 0.
// Complexity: O(n·len) time and memory.
func (c *ComposedOp) Power(n int) (*ComposedOp, error) {
	if n < 0 {
		return nil, ErrNegativePower
	}
	out := make([]ExpFactor, 0, n*len(c.factors))
	for i := 0; i < n; i++ {
		out = append(out, c.factors...)
	}

	return &ComposedOp{factors: out}, nil
}

// Reduce simplifies the sequence by dropping every factor whose scalar is
// exactly zero: exp(0·G) is the identity and contributes nothing to the
// product. Adjacent same-generator factors are deliberately NOT merged -
// the slice structure of an expansion (e.g. the order-2 palindrome) stays
// inspectable factor by factor. The pass is idempotent: a zero-free
// sequence reduces to itself.
//
// Complexity: O(len) time and memory.
func (c *ComposedOp) Reduce() *ComposedOp {
	out := make([]ExpFactor, 0, len(c.factors))
	for _, f := range c.factors {
		if f.term.Coeff == 0 {
			continue
		}
		out = append(out, f)
	}

	return &ComposedOp{factors: out}
}

// Equal reports whether two sequences hold pairwise-equal factors in the
// same order. Scalar comparison is exact (see ExpFactor.Equal).
func (c *ComposedOp) Equal(o *ComposedOp) bool {
	if len(c.factors) != len(o.factors) {
		return false
	}
	for i := range c.factors {
		if !c.factors[i].Equal(o.factors[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: factors joined by " * " in application
// order, or "1" for the empty sequence.
func (c *ComposedOp) String() string {
	if len(c.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(c.factors))
	for i, f := range c.factors {
		parts[i] = f.String()
	}

	return strings.Join(parts, " * ")
}

// Matrix multiplies the factors out numerically in application order:
// Factors()[0] · Factors()[1] · … . The empty sequence is undefined here
// (there is no dimension to build an identity from); callers reduce before
// lowering, and a reduced expansion of a non-empty sum is non-empty.
// Returns ErrDimensionMismatch if factor dimensions disagree.
// Complexity: O(len·n³) for n×n generators.
func (c *ComposedOp) Matrix() (*cmat.Dense, error) {
	if len(c.factors) == 0 {
		return nil, cmat.ErrInvalidDimensions
	}
	acc, err := c.factors[0].Matrix()
	if err != nil {
		return nil, err
	}
	for _, f := range c.factors[1:] {
		m, merr := f.Matrix()
		if merr != nil {
			return nil, merr
		}
		acc, err = acc.Mul(m)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}
