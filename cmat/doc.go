// SPDX-License-Identifier: MIT

// Package cmat provides dense complex-valued linear algebra primitives.
//
// Dense is a concrete, row-major matrix of complex128 values, stored in a
// flat slice for performance and cache friendliness. The package covers
// exactly what operator verification needs:
//
//   - Construction: NewDense, Identity
//   - Element access: At, Set (bounds-checked, sentinel errors)
//   - Arithmetic: Add, Mul, Scale, Kron
//   - Comparison: AllClose with an explicit tolerance
//   - Exponential: Expm via scaling-and-squaring with a Taylor core
//
// All operations are deterministic and allocation patterns are explicit:
// every arithmetic method returns a freshly allocated result and never
// mutates its receiver or arguments.
//
// Errors:
//
//	ErrInvalidDimensions  - requested dimensions are non-positive.
//	ErrIndexOutOfBounds   - a row or column index is outside valid range.
//	ErrDimensionMismatch  - operand shapes are incompatible.
//	ErrNonSquare          - a square matrix is required (Expm).
package cmat
