package op

// SummedOp is a generic weighted sum Σ coeffᵢ·Gᵢ with one overall scalar
// coefficient, typically the evolution time. The term order is preserved
// verbatim: expansions emit factors in this order, so construction order
// is part of the reproducibility contract.
type SummedOp struct {
	terms []Term
	coeff complex128
}

// NewSummedOp builds a weighted sum from terms with the given overall
// coefficient. The terms slice is copied. Returns ErrEmptySum when no
// terms are supplied.
// Complexity: O(n) for the defensive copy.
func NewSummedOp(terms []Term, coeff complex128) (*SummedOp, error) {
	if len(terms) == 0 {
		return nil, ErrEmptySum
	}
	own := make([]Term, len(terms))
	copy(own, terms)

	return &SummedOp{terms: own, coeff: coeff}, nil
}

// Terms returns the ordered term list as a defensive copy.
func (s *SummedOp) Terms() []Term {
	out := make([]Term, len(s.terms))
	copy(out, s.terms)

	return out
}

// Coeff returns the overall coefficient (evolution time).
func (s *SummedOp) Coeff() complex128 { return s.coeff }

// Len returns the number of terms in the sum.
func (s *SummedOp) Len() int { return len(s.terms) }

// PauliSumOp is a weighted sum specialized to Pauli generators, stored as
// parallel pauli/coeff slices. It exposes the same {Terms, Coeff} shape as
// SummedOp, so expansion strategies accept either interchangeably.
type PauliSumOp struct {
	paulis []Pauli
	coeffs []complex128
	coeff  complex128
}

// NewPauliSumOp builds a Pauli-specialized weighted sum.
//
// Contracts:
//   - len(paulis) == len(coeffs) > 0 (ErrLengthMismatch / ErrEmptySum).
//   - All Pauli strings act on the same qubit count (ErrQubitMismatch).
//
// Complexity: O(n).
func NewPauliSumOp(paulis []Pauli, coeffs []complex128, coeff complex128) (*PauliSumOp, error) {
	if len(paulis) != len(coeffs) {
		return nil, ErrLengthMismatch
	}
	if len(paulis) == 0 {
		return nil, ErrEmptySum
	}

	width := paulis[0].Len()
	for _, p := range paulis[1:] {
		if p.Len() != width {
			return nil, ErrQubitMismatch
		}
	}

	ownP := make([]Pauli, len(paulis))
	copy(ownP, paulis)
	ownC := make([]complex128, len(coeffs))
	copy(ownC, coeffs)

	return &PauliSumOp{paulis: ownP, coeffs: ownC, coeff: coeff}, nil
}

// Terms adapts the parallel storage to the generic ordered term shape.
// Complexity: O(n) per call.
func (s *PauliSumOp) Terms() []Term {
	out := make([]Term, len(s.paulis))
	for i, p := range s.paulis {
		out[i] = Term{Coeff: s.coeffs[i], Gen: p}
	}

	return out
}

// Coeff returns the overall coefficient (evolution time).
func (s *PauliSumOp) Coeff() complex128 { return s.coeff }

// Len returns the number of terms in the sum.
func (s *PauliSumOp) Len() int { return len(s.paulis) }

// NumQubits returns the qubit count shared by every term.
func (s *PauliSumOp) NumQubits() int { return s.paulis[0].Len() }
