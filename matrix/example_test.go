// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// ExampleMultiplyNaive multiplies two small matrices with the baseline
// triple-loop strategy.
func ExampleMultiplyNaive() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, _ := matrix.MultiplyNaive(a, b)
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMultiplyTiled shows that a tile size exceeding every dimension
// still produces the exact result — padding rounds up to one full tile.
func ExampleMultiplyTiled() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, _ := matrix.MultiplyTiled(a, b, 3) // tile 3 > dimension 2
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMultiply demonstrates the options-driven facade.
func ExampleMultiply() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 0, 2}, {0, 3, 0}})
	b, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {2, 2}, {0, 3}})

	c, _ := matrix.Multiply(a, b,
		matrix.WithStrategy(matrix.StrategyTiledParallel),
		matrix.WithTileSize(2),
		matrix.WithWorkers(2),
	)
	fmt.Print(c)

	// Output:
	// [4, 7]
	// [6, 6]
}

// ExampleNewDensePadded demonstrates the padding round-trip the tiled
// strategy relies on.
func ExampleNewDensePadded() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})

	p, _ := matrix.NewDensePadded(m, 1, 1) // round 2x2 up to 3x3
	fmt.Print(p)

	_ = p.Unpad(1, 1) // strip the padding back off
	fmt.Print(p)

	// Output:
	// [1, 2, 0]
	// [3, 4, 0]
	// [0, 0, 0]
	// [1, 2]
	// [3, 4]
}
