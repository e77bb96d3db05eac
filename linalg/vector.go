package linalg

import "gonum.org/v1/gonum/blas/blas64"

// Vector is a dense float64 vector with unit stride.
type Vector struct {
	data []float64
}

// NewVector allocates a vector of length n.
func NewVector(n int, data []float64) *Vector {
	if data == nil {
		data = make([]float64, n)
	} else if len(data) != n {
		panic(ErrShapeMismatch)
	}
	return &Vector{data: data}
}

// Len returns the vector's length.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i.
func (v *Vector) At(i int) float64 { return v.data[i] }

// Set assigns v[i] = x.
func (v *Vector) Set(i int, x float64) { v.data[i] = x }

// RawData returns the backing slice.
func (v *Vector) RawData() []float64 { return v.data }

// Blas64 returns a blas64.Vector view with unit increment.
func (v *Vector) Blas64() blas64.Vector {
	return blas64.Vector{N: len(v.data), Data: v.data, Inc: 1}
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)
	return &Vector{data: cp}
}
