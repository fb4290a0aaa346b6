package expand

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/trotter/op"
)

// QDrift expands a weighted operator sum by the randomized qDRIFT protocol
// (Campbell, 2019): instead of exponentiating every term per slice, terms
// are sampled with probability proportional to their weight magnitude and
// each sampled factor carries the same uniform fraction of the total
// weight. For N samples at total weight λ = Σ|wᵢ| the slice is
//
//	exp(i·φ₁·λ·t/(N·reps)) · … · exp(i·φ_N·λ·t/(N·reps))
//
// where φⱼ is the unit phase wᵢ/|wᵢ| of the sampled term. In expectation
// the exponents sum to the exact i·t·H/reps per slice.
//
// Sampling is fully deterministic for a given seed (see rng.go), so the
// reproducibility contract of the package holds here too.
type QDrift struct {
	reps int
	seed int64
}

// NewQDrift returns a QDrift strategy with the documented defaults
// (reps=1, seed=0), overridden by the given options. WithOrder is ignored.
func NewQDrift(opts ...Option) *QDrift {
	o := gatherOptions(opts...)

	return &QDrift{reps: o.reps, seed: o.seed}
}

// Reps returns the configured repetition count.
func (q *QDrift) Reps() int { return q.reps }

// Seed returns the configured sampling seed (0 = default stream).
func (q *QDrift) Seed() int64 { return q.seed }

// Expand builds the randomized product-formula approximation of
// exp(i·coeff·Σterms). The pipeline matches Suzuki.Expand: resolve the
// operand (ErrOperandType), validate reps (ErrBadReps), build one sampled
// slice, compose, power by reps, reduce.
//
// The per-slice sample count follows the qDRIFT bound N = ⌈2·λ²·|t|²⌉,
// with a floor of one sample. A sum whose weights are all zero evolves
// trivially and yields the empty (identity) sequence.
//
// Complexity: O(N·nₜ) sampling time, O(N·reps) output factors.
func (q *QDrift) Expand(operator op.Operator) (*op.ComposedOp, error) {
	terms, evoTime, err := operandTerms(operator)
	if err != nil {
		return nil, err
	}
	if q.reps < minReps {
		return nil, ErrBadReps
	}

	// λ and the sampling distribution.
	var (
		lambda  float64
		weights = make([]float64, len(terms))
	)
	for i, t := range terms {
		weights[i] = cmplx.Abs(t.Coeff)
		lambda += weights[i]
	}
	if lambda == 0 {
		return op.Compose().Reduce(), nil
	}

	t := cmplx.Abs(evoTime)
	n := int(math.Ceil(2 * lambda * lambda * t * t))
	if n < 1 {
		n = 1
	}

	// Uniform scalar magnitude per sampled factor; only the phase of the
	// sampled weight varies.
	base := evoTime * complex(lambda/float64(n*q.reps), 0)

	rng := rngFromSeed(q.seed)
	slice := make([]op.ExpFactor, n)
	for j := 0; j < n; j++ {
		i := sampleIndex(rng, weights, lambda)
		phase := terms[i].Coeff / complex(weights[i], 0)
		slice[j] = op.Term{Coeff: phase * base, Gen: terms[i].Gen}.ExpI()
	}

	full, err := op.Compose(slice...).Power(q.reps)
	if err != nil {
		return nil, err
	}

	return full.Reduce(), nil
}
