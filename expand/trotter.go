package expand

// NewTrotter returns the first-order Lie–Trotter strategy: a Suzuki
// expansion with the order pinned to 1. Any WithOrder option is
// overridden; WithReps applies as usual.
//
// At order 1 a single slice is simply one factor exp(i·wᵢ·Gᵢ·t/reps) per
// term, in the original term order, repeated reps times.
func NewTrotter(opts ...Option) *Suzuki {
	s := NewSuzuki(opts...)
	s.order = 1

	return s
}
