package op

import (
	"errors"

	"github.com/katalvlaran/trotter/cmat"
)

// Sentinel errors for operator construction and composition.
var (
	// ErrBadPauliLabel indicates a Pauli label with a rune outside I/X/Y/Z.
	ErrBadPauliLabel = errors.New("op: pauli label must be a non-empty string over I, X, Y, Z")

	// ErrEmptySum indicates a summed operator built with no terms.
	ErrEmptySum = errors.New("op: weighted sum must contain at least one term")

	// ErrLengthMismatch indicates paulis and coeffs of differing lengths.
	ErrLengthMismatch = errors.New("op: paulis and coeffs must have equal length")

	// ErrQubitMismatch indicates terms acting on differing qubit counts.
	ErrQubitMismatch = errors.New("op: all terms must act on the same number of qubits")

	// ErrNegativePower indicates ComposedOp.Power with a negative exponent.
	ErrNegativePower = errors.New("op: power exponent must be >= 0")
)

// Generator is an elementary operator that product formulas treat as
// atomic: it can name itself and lower itself to a dense matrix. Pauli is
// the canonical implementation; generic sums may carry any Generator.
type Generator interface {
	// Label returns a stable identifier; two generators with equal labels
	// are treated as the same operator by Reduce.
	Label() string

	// Matrix lowers the generator to its dense matrix representation.
	Matrix() (*cmat.Dense, error)
}

// Operator marks the value kinds that participate in operator algebra:
// SummedOp, PauliSumOp, ExpFactor and ComposedOp. Expansion strategies
// accept an Operator and reject shapes they cannot expand.
type Operator interface {
	// Coeff returns the overall scalar carried by the operator; kinds
	// without a global scalar report 1.
	Coeff() complex128
}
