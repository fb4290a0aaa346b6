// SPDX-License-Identifier: MIT

package cmat

// expmTaylorTerms bounds the Taylor series used on the scaled matrix.
// With the scaled max-entry norm at or below 0.5 the truncation error is
// far below double precision.
const expmTaylorTerms = 20

// expmScaleTarget is the max-entry-norm threshold the scaling step drives
// the matrix under before the Taylor core runs.
const expmScaleTarget = 0.5

// Expm computes the matrix exponential e^A via scaling-and-squaring:
//
//  1. Pick s ≥ 0 so that the entries of B = A / 2^s are small
//     (max modulus ≤ expmScaleTarget).
//  2. Evaluate the truncated Taylor series e^B = Σ_{k≤K} B^k / k!.
//  3. Square the result s times: e^A = (e^B)^(2^s).
//
// The input is not mutated. Returns ErrNonSquare for rectangular input.
//
// Complexity: O((K + s)·n³) time, O(n²) memory.
func Expm(a *Dense) (*Dense, error) {
	if a.r != a.c {
		return nil, ErrNonSquare
	}

	// Stage 1 - scaling exponent.
	var (
		s    int
		norm = a.maxAbs() * float64(a.c)
	)
	for norm > expmScaleTarget {
		norm /= 2
		s++
	}
	b := a.Scale(complex(1/float64(uint64(1)<<uint(s)), 0))

	// Stage 2 - Taylor core on the scaled matrix.
	sum, err := Identity(a.r)
	if err != nil {
		return nil, err
	}
	term := sum.Clone()

	var k int
	for k = 1; k <= expmTaylorTerms; k++ {
		term, err = term.Mul(b)
		if err != nil {
			return nil, err
		}
		term = term.Scale(complex(1/float64(k), 0))
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
	}

	// Stage 3 - undo the scaling by repeated squaring.
	for k = 0; k < s; k++ {
		sum, err = sum.Mul(sum)
		if err != nil {
			return nil, err
		}
	}

	return sum, nil
}
