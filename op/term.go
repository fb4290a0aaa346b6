package op

import (
	"fmt"

	"github.com/katalvlaran/trotter/cmat"
)

// Term is a scalar-weighted generator: Coeff·Gen. It doubles as the
// "scaled term" of an expansion slice - scaling is just Mul. The value is
// immutable; Mul returns a new Term.
type Term struct {
	// Coeff is the complex weight attached to the generator.
	Coeff complex128

	// Gen is the elementary generator being weighted.
	Gen Generator
}

// Mul returns a new Term with the coefficient multiplied by s.
// Complexity: O(1).
func (t Term) Mul(s complex128) Term {
	return Term{Coeff: s * t.Coeff, Gen: t.Gen}
}

// ExpI exponentiates the scaled term into an opaque factor exp(i·Coeff·Gen).
// Complexity: O(1) - the exponential is symbolic until Matrix is called.
func (t Term) ExpI() ExpFactor {
	return ExpFactor{term: t}
}

// String implements fmt.Stringer, e.g. "(2+0i)*XZ".
func (t Term) String() string {
	return fmt.Sprintf("%v*%s", t.Coeff, t.Gen.Label())
}

// ExpFactor is the opaque unit exp(i·c·G) produced by Term.ExpI. Expansion
// code never inspects it beyond ordering and counting; tests and callers
// may read the underlying term back or lower the factor to a matrix.
type ExpFactor struct {
	term Term
}

// Term returns the scaled term under the exponential.
func (f ExpFactor) Term() Term { return f.term }

// Coeff returns the scalar of the underlying term; ExpFactor thereby
// satisfies Operator.
func (f ExpFactor) Coeff() complex128 { return f.term.Coeff }

// Equal reports whether two factors carry the same scalar and generator
// label. Exact scalar comparison: expansions must be reproducible bit for
// bit, so no tolerance is applied here.
func (f ExpFactor) Equal(o ExpFactor) bool {
	return f.term.Coeff == o.term.Coeff && f.term.Gen.Label() == o.term.Gen.Label()
}

// String implements fmt.Stringer, e.g. "exp(i*(1+0i)*X)".
func (f ExpFactor) String() string {
	return fmt.Sprintf("exp(i*%s)", f.term)
}

// Matrix lowers the factor to exp(i·c·G) numerically via cmat.Expm.
// Complexity: dominated by Expm, O(n³) per call for an n×n generator.
func (f ExpFactor) Matrix() (*cmat.Dense, error) {
	g, err := f.term.Gen.Matrix()
	if err != nil {
		return nil, err
	}

	return cmat.Expm(g.Scale(complex(0, 1) * f.term.Coeff))
}
