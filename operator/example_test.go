package operator_test

import (
	"fmt"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// ExampleNewCommutator verifies the canonical Pauli relation [X,Y] = 2iZ.
func ExampleNewCommutator() {
	xm, _ := zmat.NewDense([][]complex128{{0, 1}, {1, 0}})
	ym, _ := zmat.NewDense([][]complex128{{0, -1i}, {1i, 0}})
	zm, _ := zmat.NewDense([][]complex128{{1, 0}, {0, -1}})

	x, _ := operator.New(xm, "X")
	y, _ := operator.New(ym, "Y")
	z, _ := operator.New(zm, "Z")

	comm, _ := operator.NewCommutator(x, y)
	fmt.Println(comm.Result().Equal(z.Scale(2i), operator.DefaultTolerance))

	// Output:
	// true
}

// ExampleEigen decomposes Pauli Z through the analytic 2×2 path.
func ExampleEigen() {
	zm, _ := zmat.NewDense([][]complex128{{1, 0}, {0, -1}})
	z, _ := operator.NewHermitian(zm, "Z")

	pairs, _ := operator.Eigen(z)
	for _, p := range pairs {
		fmt.Printf("λ=%+.0f v=%s\n", p.Value, p.Vector)
	}

	// Output:
	// λ=+1 v=[(1+0i), (0+0i)]
	// λ=-1 v=[(0+0i), (1+0i)]
}
