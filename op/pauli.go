package op

import "github.com/katalvlaran/trotter/cmat"

// Pauli is an elementary generator: a tensor product of single-qubit Pauli
// operators, written as a string over the alphabet {I, X, Y, Z}. The value
// is immutable; construct it with NewPauli.
type Pauli struct {
	label string
}

// NewPauli validates label and returns the corresponding Pauli generator.
// Returns ErrBadPauliLabel for an empty label or any rune outside I/X/Y/Z.
// Complexity: O(len(label)).
func NewPauli(label string) (Pauli, error) {
	if len(label) == 0 {
		return Pauli{}, ErrBadPauliLabel
	}
	for _, r := range label {
		switch r {
		case 'I', 'X', 'Y', 'Z':
		default:
			return Pauli{}, ErrBadPauliLabel
		}
	}

	return Pauli{label: label}, nil
}

// MustPauli is NewPauli for compile-time-known labels; panics on a bad
// label (programmer error). Intended for tests and examples.
func MustPauli(label string) Pauli {
	p, err := NewPauli(label)
	if err != nil {
		panic(err)
	}

	return p
}

// Label returns the Pauli string, e.g. "XZ".
func (p Pauli) Label() string { return p.label }

// Len returns the number of qubits the Pauli acts on.
func (p Pauli) Len() int { return len(p.label) }

// Equal reports whether p and q denote the same Pauli string.
func (p Pauli) Equal(q Pauli) bool { return p.label == q.label }

// String implements fmt.Stringer.
func (p Pauli) String() string { return p.label }

// singleQubit returns the 2×2 matrix of one Pauli letter.
func singleQubit(r byte) *cmat.Dense {
	m, _ := cmat.NewDense(2, 2)
	switch r {
	case 'I':
		_ = m.Set(0, 0, 1)
		_ = m.Set(1, 1, 1)
	case 'X':
		_ = m.Set(0, 1, 1)
		_ = m.Set(1, 0, 1)
	case 'Y':
		_ = m.Set(0, 1, complex(0, -1))
		_ = m.Set(1, 0, complex(0, 1))
	case 'Z':
		_ = m.Set(0, 0, 1)
		_ = m.Set(1, 1, -1)
	}

	return m
}

// Matrix lowers the Pauli string to its dense 2ⁿ×2ⁿ matrix via Kronecker
// products, leftmost letter acting on the most significant qubit.
// Complexity: O(4ⁿ) time and memory.
func (p Pauli) Matrix() (*cmat.Dense, error) {
	if len(p.label) == 0 {
		return nil, ErrBadPauliLabel
	}
	out := singleQubit(p.label[0])
	for i := 1; i < len(p.label); i++ {
		out = out.Kron(singleQubit(p.label[i]))
	}

	return out, nil
}
