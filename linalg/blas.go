package linalg

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Gemm computes c = alpha*op(a)*op(b) + beta*c, where op is the identity or
// transpose according to tA/tB. c must already have the correct shape.
func Gemm(tA, tB blas.Transpose, alpha float64, a, b *Dense, beta float64, c *Dense) {
	m, k := a.rows, a.cols
	if tA == blas.Trans {
		m, k = k, m
	}
	kb, n := b.rows, b.cols
	if tB == blas.Trans {
		kb, n = n, kb
	}
	if k != kb {
		panic(ErrShapeMismatch)
	}
	if c.rows != m || c.cols != n {
		panic(ErrShapeMismatch)
	}
	blas64.Gemm(tA, tB, alpha, a.Blas64(), b.Blas64(), beta, c.Blas64())
}

// Gemv computes y = alpha*op(a)*x + beta*y.
func Gemv(tA blas.Transpose, alpha float64, a *Dense, x *Vector, beta float64, y *Vector) {
	blas64.Gemv(tA, alpha, a.Blas64(), x.Blas64(), beta, y.Blas64())
}

// Symm computes c = alpha*a*b + beta*c for symmetric a (left-multiply).
func Symm(alpha float64, a *Symmetric, b *Dense, beta float64, c *Dense) {
	blas64.Symm(blas.Left, alpha, a.blas64Symmetric(), b.Blas64(), beta, c.Blas64())
}

// Spmv computes y = alpha*a*x + beta*y for packed-symmetric a.
func Spmv(alpha float64, a *Symmetric, x *Vector, beta float64, y *Vector) {
	ap := blas64.SymmetricPacked{N: a.n, Data: lowerPacked(a), Uplo: Lower}
	blas64.Spmv(alpha, ap, x.Blas64(), beta, y.Blas64())
}

// lowerPacked returns a's own packed data verbatim: Symmetric already
// stores column-major-compatible lower-triangle packing with the same
// row-major indexing convention blas64.SymmetricPacked expects for Lower.
func lowerPacked(a *Symmetric) []float64 {
	return a.data
}

// Axpy computes y = alpha*x + y.
func Axpy(alpha float64, x, y *Vector) {
	blas64.Axpy(alpha, x.Blas64(), y.Blas64())
}

// Scal computes x = alpha*x.
func Scal(alpha float64, x *Vector) {
	blas64.Scal(alpha, x.Blas64())
}

// Dot returns the inner product of x and y.
func Dot(x, y *Vector) float64 {
	return blas64.Dot(x.Blas64(), y.Blas64())
}

// Nrm2 returns the Euclidean norm of x.
func Nrm2(x *Vector) float64 {
	return blas64.Nrm2(x.Blas64())
}

// FrobeniusNorm returns the Frobenius (Euclidean, entrywise) norm of d.
func FrobeniusNorm(d *Dense) float64 {
	var s float64
	for _, v := range d.data {
		s += v * v
	}
	return math.Sqrt(s)
}
