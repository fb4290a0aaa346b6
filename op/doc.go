// Package op defines the operator algebra consumed by product-formula
// expansions: elementary generators, weighted terms, summed operators,
// opaque exponentiated factors and ordered factor sequences.
//
// The type layering mirrors the math:
//
//	Pauli       — an elementary generator, a string over {I, X, Y, Z}
//	Term        — coeff · generator (a weighted or scaled term)
//	SummedOp    — Σ coeffᵢ·Gᵢ with an overall coefficient (evolution time)
//	PauliSumOp  — the same sum, specialized to Pauli generators
//	ExpFactor   — exp(i · coeff · G), an opaque composable unit
//	ComposedOp  — an ordered left-to-right product of ExpFactor values
//
// Every value is immutable once constructed: arithmetic methods return
// fresh values and accessors return defensive copies, so callers can never
// alias internal state across operations.
//
// ComposedOp supports Power (repeated self-composition by concatenation)
// and Reduce (dropping exact-zero identity factors; the slice structure is
// otherwise preserved). Reduce is idempotent:
// Reduce(Reduce(x)) == Reduce(x).
//
// For verification, Pauli, ExpFactor and ComposedOp can all be lowered to
// dense complex matrices via the cmat package.
//
// Errors:
//
//	ErrBadPauliLabel   - a Pauli label contains a rune outside I/X/Y/Z.
//	ErrEmptySum        - a summed operator was built with no terms.
//	ErrLengthMismatch  - PauliSumOp paulis/coeffs differ in length.
//	ErrQubitMismatch   - terms in one sum act on differing qubit counts.
//	ErrNegativePower   - ComposedOp.Power called with n < 0.
package op
