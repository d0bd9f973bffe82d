// Package matmul is a dense double-precision matrix multiplication engine
// offering three interchangeable strategies over one row-major representation.
//
// 🚀 What is matmul?
//
//	A small, deterministic library built around a single question — how do you
//	multiply two dense matrices well? — answered three ways:
//		• Naive: the triple-loop baseline with intentionally column-strided
//		  access on the right operand
//		• BLAS: delegation to gonum's blas64 GEMM behind a narrow, stubbable
//		  kernel contract
//		• Tiled: pad to a tile multiple, stage the right tile transposed,
//		  reduce with unit stride, unpad — plus a grid-parallel variant
//
// ✨ Why choose matmul?
//
//   - Safe by contract – bounds-checked accessors return sentinel errors,
//     never panic on user input
//   - Deterministic – fixed loop orders, reproducible results, the parallel
//     kernel is bit-identical to the sequential one
//   - Interoperable – copy-based conversions to gonum mat.Dense and
//     gorgonia tensor.Dense
//
// Everything lives in one subpackage:
//
//	matrix/ — Dense storage, Block/Tiler tiling machinery, validators,
//	          sentinel errors, the strategy kernels and the Multiply facade
//
// Dive into examples/ for runnable demonstrations of the strategies, the
// padding round-trip, and the parallel tile grid.
//
//	go get github.com/katalvlaran/matmul/matrix
package matmul
