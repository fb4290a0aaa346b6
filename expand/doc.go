// Package expand provides product-formula expansion strategies for
// approximating the time evolution exp(i·t·H) of a weighted operator sum
// H = Σ wᵢ·Gᵢ by a finite ordered product of exponentials of the
// individual terms.
//
// It includes three strategies over an op.SummedOp / op.PauliSumOp:
//
//   - Suzuki — the recursive Trotter–Suzuki "bookends" construction
//     (https://arxiv.org/abs/quant-ph/0508139): order 1 is the plain
//     term-by-term product, order 2 the palindromic Strang splitting, and
//     each even order k > 2 a symmetric five-block split of order k−2
//     slices with the fractional time coefficient
//     p_k = 1 / (4 − 4^(1/(2k−1))).
//
//   - Trotter — the first-order formula, a Suzuki fixed at order 1.
//
//   - QDrift — the randomized product formula: terms are sampled with
//     probability proportional to |wᵢ| from a deterministic seeded stream,
//     each exponentiated at a uniform fraction of the total weight.
//
// Every strategy follows the same pipeline: validate the operand shape,
// build one repetition slice as an ordered factor list, compose it, raise
// it to the configured repetition count by concatenation, and reduce the
// result. The output is fully reproducible: the same operand and options
// always yield the identical ordered factor list.
//
// Validation is lazy by design: SetOrder accepts any value and the check
// happens when Expand runs, so a strategy can be constructed, reconfigured
// and only then held to its contract.
//
// Errors:
//
//	ErrOperandType - the operand is not a weighted sum of generators.
//	ErrBadOrder    - order is neither 1 nor an even integer ≥ 2.
//	ErrBadReps     - the repetition count is < 1.
package expand
