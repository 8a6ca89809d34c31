// Package operator_test provides benchmarks for the operator kernels:
// composition, matrix exponential, and eigen-decomposition, using
// deterministic random Hermitian inputs.
package operator_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// benchDims are the operator dimensions to benchmark. Eigen above dim 2
// runs the fixed-budget power iteration, so cost scales with dim³.
var benchDims = []int{4, 8, 16}

// sinks to defeat dead-code elimination
var (
	sinkOp    *operator.Operator
	sinkPairs []operator.EigenPair
)

// benchHermitian builds a dim×dim Hermitian operator from a symmetrized
// deterministic random matrix.
func benchHermitian(b *testing.B, dim int, seed int64) *operator.Hermitian {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]complex128, dim)
	for i := 0; i < dim; i++ {
		rows[i] = make([]complex128, dim)
		for j := 0; j < dim; j++ {
			rows[i][j] = complex(rng.Float64()-0.5, rng.Float64()-0.5)
		}
	}
	m, err := zmat.NewDense(rows)
	if err != nil {
		b.Fatal(err)
	}
	sym, err := operator.Symmetrize(m)
	if err != nil {
		b.Fatal(err)
	}
	h, err := operator.NewHermitian(sym, fmt.Sprintf("H%d", dim))
	if err != nil {
		b.Fatal(err)
	}

	return h
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			x := benchHermitian(b, dim, 101).Operator
			y := benchHermitian(b, dim, 202).Operator
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				op, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkOp = op
			}
		})
	}
}

func BenchmarkExp(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			h := benchHermitian(b, dim, 303).Operator
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkOp = h.Exp()
			}
		})
	}
}

func BenchmarkEigen(b *testing.B) {
	b.ReportAllocs()
	for _, dim := range benchDims {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			h := benchHermitian(b, dim, 404)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pairs, err := operator.Eigen(h)
				if err != nil {
					b.Fatal(err)
				}
				sinkPairs = pairs
			}
		})
	}
}
