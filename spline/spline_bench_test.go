package spline

import (
	"testing"

	"github.com/cwbudde/algo-basis/internal/testutil"
)

func BenchmarkEvaluate(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	knots, err := Knots(x, 4, 20)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(x, knots, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateCyclic(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EvaluateCyclic(x, 4, 20); err != nil {
			b.Fatal(err)
		}
	}
}
