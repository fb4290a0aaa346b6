// Package trotter is your in-memory toolkit for approximating quantum
// time evolution — product formulas, Pauli-operator algebra and the
// dense complex matrices needed to verify them.
//
// 🚀 What is trotter?
//
//	A deterministic, small-surface library that brings together:
//		• Operator algebra: Pauli strings, weighted terms, summed operators
//		• Exponential factors: opaque exp(i·c·G) units and ordered products
//		• Product formulas: first-order Trotter, even-order Suzuki fractals
//		• Randomized formulas: seeded qDRIFT sampling
//		• Verification: dense complex matrices with a matrix exponential
//
// ✨ Why choose trotter?
//
//   - Reproducible – the same operator and options always yield the exact
//     same ordered factor list, bit for bit
//   - Strict sentinels – every failure mode is an errors.Is-comparable value
//   - Pure Go – no cgo, no hidden deps
//   - Verifiable – every expansion can be multiplied out and compared
//     against the exact exponential
//
// Under the hood, everything is organized under three subpackages:
//
//	cmat/   — dense complex128 matrices: Add, Mul, Kron, Expm
//	op/     — Pauli generators, weighted sums, exponentiated factor lists
//	expand/ — Suzuki / Trotter / qDRIFT expansion strategies
//
// Quick sketch:
//
//	H = 1.0·X + 1.0·Z, evolved for time t, is approximated at order 2 by
//
//	    exp(i·Z·t/2) · exp(i·X·t/2) · exp(i·X·t/2) · exp(i·Z·t/2)
//
//	repeated reps times at time t/reps per slice.
//
// Dive into each package's doc.go for contracts, error sentinels and
// complexity notes.
//
//	go get github.com/katalvlaran/trotter
package trotter
