// SPDX-License-Identifier: MIT

// Package matrix - interop conversions.
//
// Purpose:
//   - Bridge Dense to the two dense-matrix representations of the wider Go
//     numeric ecosystem: gonum's mat.Dense and gorgonia's tensor.Dense.
//   - Every conversion copies; no storage is ever shared across library
//     boundaries, so neither side can invalidate the other.
//
// Determinism & Policy:
//   - Both ecosystems use row-major float64 storage, so conversions are
//     straight buffer copies (stride-aware on the gonum side).
//   - Zero-sized matrices cannot cross: both target libraries reject empty
//     shapes at construction, so we fail fast with ErrInvalidDimensions.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// tensorRank is the only tensor rank convertible into a Dense.
const tensorRank = 2

// ToGonum converts m into a freshly allocated gonum *mat.Dense.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for zero-sized shapes (gonum's
//     constructor rejects empty matrices).
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrInvalidDimensions)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data) // same layout, single copy
	} else {
		var i, j int
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, _ = m.At(i, j)
				buf[i*c+j] = v
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum converts a gonum *mat.Dense into a Dense, honoring the source
// stride (a gonum view may be wider than its data rows).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r*c).
func FromGonum(dm *mat.Dense) (*Dense, error) {
	if dm == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	raw := dm.RawMatrix()

	res, err := newDenseWithPolicy(raw.Rows, raw.Cols, DefaultValidateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i int
	for i = 0; i < raw.Rows; i++ { // stride-aware row copy
		copy(res.data[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return res, nil
}

// ToTensor converts m into a freshly allocated 2-D gorgonia *tensor.Dense
// with float64 backing.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for zero-sized shapes.
//
// Complexity: O(r*c).
func ToTensor(m Matrix) (*tensor.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToTensor: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToTensor: %dx%d: %w", r, c, ErrInvalidDimensions)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, _ = m.At(i, j)
				buf[i*c+j] = v
			}
		}
	}

	return tensor.New(tensor.WithShape(r, c), tensor.WithBacking(buf)), nil
}

// FromTensor converts a 2-D float64 gorgonia tensor into a Dense.
//
// Implementation:
//   - Stage 1: validate non-nil, rank 2 and Float64 dtype.
//   - Stage 2: materialize to contiguous row-major if needed and copy.
//
// Errors:
//   - ErrNilMatrix; ErrUnsupportedTensor for any other rank or dtype.
//
// Complexity: O(r*c).
func FromTensor(t *tensor.Dense) (*Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("FromTensor: %w", ErrNilMatrix)
	}
	if t.Dims() != tensorRank {
		return nil, fmt.Errorf("FromTensor: rank %d: %w", t.Dims(), ErrUnsupportedTensor)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("FromTensor: dtype %v: %w", t.Dtype(), ErrUnsupportedTensor)
	}

	shape := t.Shape()
	src, ok := t.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("FromTensor: backing: %w", ErrUnsupportedTensor)
	}

	res, err := newDenseWithPolicy(shape[0], shape[1], DefaultValidateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("FromTensor: %w", err)
	}
	copy(res.data, src) // gorgonia dense tensors are row-major contiguous

	return res, nil
}
