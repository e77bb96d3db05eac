// Package linalg provides the dense and packed-symmetric matrix types used
// throughout the Hartree-Fock engine, implemented as thin wrappers over
// gonum's blas64/lapack64 layer.
//
// Dense uses conventional row-major storage, exactly as mat64.Dense does.
// Symmetric uses packed lower-triangle storage (half the memory of Dense,
// matching the AO-integral matrices' natural shape) and expands to a
// conventional blas64.Symmetric only when a LAPACK routine requires it.
package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Error represents a linalg package error. Shape and dimension errors are
// programmer errors and are panicked with a value of this type, mirroring
// mat64.Error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrShapeMismatch       = Error("linalg: dimension mismatch")
	ErrNotSquare           = Error("linalg: expect square matrix")
	ErrIndexOutOfRange     = Error("linalg: index out of range")
	ErrZeroLength          = Error("linalg: zero length in matrix definition")
	ErrSingular            = Error("linalg: matrix is singular")
	ErrDecompositionFailed = Error("linalg: decomposition failed to converge")
	ErrNegativeEigenvalue  = Error("linalg: fractional power of matrix with negative eigenvalue")
)

// Dense is a general M-by-N matrix in row-major order.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates an r-by-c matrix. If data is non-nil it is used
// directly as backing storage and must have length r*c.
func NewDense(r, c int, data []float64) *Dense {
	if r <= 0 || c <= 0 {
		panic(ErrZeroLength)
	}
	if data == nil {
		data = make([]float64, r*c)
	} else if len(data) != r*c {
		panic(ErrShapeMismatch)
	}
	return &Dense{rows: r, cols: c, data: data}
}

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (r, c int) { return d.rows, d.cols }

// At returns the element at (i, j).
func (d *Dense) At(i, j int) float64 {
	d.checkIndex(i, j)
	return d.data[i*d.cols+j]
}

// Set assigns v to the element at (i, j).
func (d *Dense) Set(i, j int, v float64) {
	d.checkIndex(i, j)
	d.data[i*d.cols+j] = v
}

func (d *Dense) checkIndex(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(ErrIndexOutOfRange)
	}
}

// RawData returns the backing slice in row-major order. Mutating it
// mutates the matrix.
func (d *Dense) RawData() []float64 { return d.data }

// Blas64 returns a blas64.General view of d backed by the same storage.
func (d *Dense) Blas64() blas64.General {
	return blas64.General{Rows: d.rows, Cols: d.cols, Stride: d.cols, Data: d.data}
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)
	return &Dense{rows: d.rows, cols: d.cols, data: cp}
}

// Zero sets every element of d to 0.
func (d *Dense) Zero() {
	for i := range d.data {
		d.data[i] = 0
	}
}

// Add sets d = a + b. Panics if shapes differ.
func (d *Dense) Add(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShapeMismatch)
	}
	d.reshapeLike(a)
	for i := range a.data {
		d.data[i] = a.data[i] + b.data[i]
	}
}

// Sub sets d = a - b. Panics if shapes differ.
func (d *Dense) Sub(a, b *Dense) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(ErrShapeMismatch)
	}
	d.reshapeLike(a)
	for i := range a.data {
		d.data[i] = a.data[i] - b.data[i]
	}
}

// Scale sets d = f*a.
func (d *Dense) Scale(f float64, a *Dense) {
	d.reshapeLike(a)
	for i := range a.data {
		d.data[i] = f * a.data[i]
	}
}

func (d *Dense) reshapeLike(a *Dense) {
	if d.rows != a.rows || d.cols != a.cols {
		if d.data != nil {
			panic(ErrShapeMismatch)
		}
		d.rows, d.cols = a.rows, a.cols
		d.data = make([]float64, a.rows*a.cols)
	}
}

// T returns the transpose of d as a new Dense.
func (d *Dense) T() *Dense {
	t := NewDense(d.cols, d.rows, nil)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			t.Set(j, i, d.At(i, j))
		}
	}
	return t
}

// Trace returns the sum of the diagonal elements. Panics if d is not square.
func (d *Dense) Trace() float64 {
	if d.rows != d.cols {
		panic(ErrNotSquare)
	}
	var s float64
	for i := 0; i < d.rows; i++ {
		s += d.At(i, i)
	}
	return s
}

// Dot returns sum_ij d_ij * a_ij, the Frobenius inner product. Panics if
// shapes differ.
func (d *Dense) Dot(a *Dense) float64 {
	if d.rows != a.rows || d.cols != a.cols {
		panic(ErrShapeMismatch)
	}
	var s float64
	for i := range d.data {
		s += d.data[i] * a.data[i]
	}
	return s
}

// Uplo selects which packed triangle a Symmetric stores, mirroring blas.Uplo.
type Uplo = blas.Uplo

const (
	Lower Uplo = blas.Lower
	Upper Uplo = blas.Upper
)
