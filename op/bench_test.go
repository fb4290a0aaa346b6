package op_test

import (
	"testing"

	"github.com/katalvlaran/trotter/op"
)

func BenchmarkComposedOp_Power(b *testing.B) {
	seq := op.Compose(
		op.Term{Coeff: 1, Gen: op.MustPauli("X")}.ExpI(),
		op.Term{Coeff: 1, Gen: op.MustPauli("Z")}.ExpI(),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Power(100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComposedOp_Reduce(b *testing.B) {
	factors := make([]op.ExpFactor, 0, 200)
	for i := 0; i < 100; i++ {
		factors = append(factors,
			op.Term{Coeff: 1, Gen: op.MustPauli("X")}.ExpI(),
			op.Term{Coeff: 0, Gen: op.MustPauli("Z")}.ExpI(),
		)
	}
	seq := op.Compose(factors...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.Reduce()
	}
}

func BenchmarkPauli_Matrix(b *testing.B) {
	p := op.MustPauli("XYZXY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Matrix(); err != nil {
			b.Fatal(err)
		}
	}
}
