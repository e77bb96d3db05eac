package linalg

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// blas64GeneralZero returns an empty General used to signal "no left
// eigenvectors wanted" to Geev.
func blas64GeneralZero() blas64.General {
	return blas64.General{}
}

// denseFromBlas64 wraps a blas64.General's backing storage as a Dense
// without copying.
func denseFromBlas64(g blas64.General) *Dense {
	return &Dense{rows: g.Rows, cols: g.Cols, data: g.Data}
}

// EigenSym holds the result of a symmetric eigendecomposition: ascending
// eigenvalues and the corresponding eigenvectors as columns of Vectors.
type EigenSym struct {
	Values  []float64
	Vectors *Dense
}

// Eigen diagonalizes the symmetric matrix a and returns its EigenSym.
// Syev orders eigenvalues ascending, matching LAPACK's dsyev convention
// (HOMO/LUMO sit at a fixed offset from the bottom of the spectrum).
func Eigen(a *Symmetric) *EigenSym {
	n := a.N()
	sym := a.blas64Symmetric()
	w := make([]float64, n)

	work := make([]float64, 1)
	ok := lapack64.Syev(lapack.EVCompute, sym, w, work, -1)
	if !ok {
		panic(ErrDecompositionFailed)
	}
	work = make([]float64, int(work[0]))
	ok = lapack64.Syev(lapack.EVCompute, sym, w, work, len(work))
	if !ok {
		panic(ErrDecompositionFailed)
	}

	vecs := NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Syev overwrites sym.Data with eigenvectors, row-major by
			// LAPACK's column convention once Uplo==Lower is honored; the
			// j-th eigenvector occupies column j.
			vecs.Set(i, j, sym.Data[i*n+j])
		}
	}
	return &EigenSym{Values: w, Vectors: vecs}
}

// EigenGeneral holds the (possibly complex) eigenvalues of a general real
// matrix as parallel real/imaginary slices, and right eigenvectors for the
// real ones.
type EigenGeneral struct {
	Re, Im  []float64
	Vectors *Dense
}

// EigenGen diagonalizes a general (non-symmetric) real matrix via LAPACK's
// dgeev, used by spec components that need eigenvalues of a non-symmetric
// propagator rather than a Fock-like symmetric operator.
func EigenGen(a *Dense) *EigenGeneral {
	n, m := a.Dims()
	if n != m {
		panic(ErrNotSquare)
	}
	ac := a.Clone().Blas64()
	wr := make([]float64, n)
	wi := make([]float64, n)
	vr := NewDense(n, n, nil).Blas64()

	work := make([]float64, 1)
	lapack64.Geev(lapack.LeftEVNone, lapack.RightEVCompute, ac, wr, wi, blas64GeneralZero(), vr, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geev(lapack.LeftEVNone, lapack.RightEVCompute, ac, wr, wi, blas64GeneralZero(), vr, work, len(work))

	return &EigenGeneral{Re: wr, Im: wi, Vectors: denseFromBlas64(vr)}
}

// LinearSolve solves a*x = b for general a via LU factorization (LAPACK
// dgesv), returning x as a new Dense with the same column count as b.
func LinearSolve(a, b *Dense) *Dense {
	n, m := a.Dims()
	if n != m {
		panic(ErrNotSquare)
	}
	br, bc := b.Dims()
	if br != n {
		panic(ErrShapeMismatch)
	}
	ac := a.Clone().Blas64()
	x := b.Clone()
	ipiv := make([]int, n)
	ok := lapack64.Gesv(ac, x.Blas64(), ipiv)
	if !ok {
		panic(ErrSingular)
	}
	_ = bc
	return x
}

// PowSym raises the symmetric matrix a to the real power p via spectral
// decomposition: a = L diag(lambda) L^T, a^p = L diag(lambda^p) L^T. The
// half-integer powers used to build the Lowdin orthonormalizer (p = -0.5)
// and its inverse (p = 0.5) are the primary callers.
func PowSym(a *Symmetric, p float64) *Symmetric {
	eig := Eigen(a)
	n := a.N()
	lambda := make([]float64, n)
	for i, v := range eig.Values {
		if v < 0 && p != math.Trunc(p) {
			panic(ErrNegativeEigenvalue)
		}
		lambda[i] = math.Pow(v, p)
	}
	// result = V * diag(lambda) * V^T
	scaled := eig.Vectors.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scaled.Set(i, j, scaled.At(i, j)*lambda[j])
		}
	}
	result := NewDense(n, n, nil)
	GemmTN(scaled, eig.Vectors, result)
	return SymmetricFromDense(result)
}

// GemmTN computes out = a * bT (b transposed), i.e. out_ij = sum_k a_ik*b_jk.
func GemmTN(a, b *Dense, out *Dense) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != bc {
		panic(ErrShapeMismatch)
	}
	or, oc := out.Dims()
	if or != ar || oc != br {
		panic(ErrShapeMismatch)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < br; j++ {
			var s float64
			for k := 0; k < ac; k++ {
				s += a.At(i, k) * b.At(j, k)
			}
			out.Set(i, j, s)
		}
	}
}

// sortAscending sorts xs in place in ascending order.
func sortAscending(xs []float64) {
	sort.Float64s(xs)
}
