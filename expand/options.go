package expand

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultReps is the repetition count used when WithReps is absent.
	DefaultReps = 1

	// DefaultOrder is the Suzuki expansion order used when WithOrder is
	// absent: the palindromic second-order (Strang) splitting.
	DefaultOrder = 2

	// DefaultSeed selects the fixed deterministic stream for QDrift when
	// WithSeed is absent (seed==0 policy, see rng.go).
	DefaultSeed int64 = 0
)

// Option mutates strategy configuration. Setters store values verbatim -
// validation is deliberately deferred to Expand, matching the lazy
// validation contract documented in doc.go.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported: public entry points accept ...Option.
type options struct {
	reps  int
	order int
	seed  int64
}

// WithReps sets the repetition (time-slice) count. Values below 1 are
// stored as-is and rejected by Expand with ErrBadReps.
func WithReps(n int) Option {
	return func(o *options) { o.reps = n }
}

// WithOrder sets the Suzuki expansion order. Invalid orders are stored
// as-is and rejected by Expand with ErrBadOrder.
func WithOrder(k int) Option {
	return func(o *options) { o.order = k }
}

// WithSeed sets the sampling seed for QDrift. Seed 0 selects the default
// deterministic stream. Ignored by Suzuki and Trotter.
func WithSeed(s int64) Option {
	return func(o *options) { o.seed = s }
}

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins.
func gatherOptions(user ...Option) options {
	o := options{
		reps:  DefaultReps,
		order: DefaultOrder,
		seed:  DefaultSeed,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
