package hf

import (
	"gonum.org/v1/gonum/blas"

	"github.com/quantumgo/hartreefock/linalg"
)

// diis implements Pulay's Direct Inversion in the Iterative Subspace: a
// fixed-size ring buffer of (error, Fock) pairs, a bordered least-squares
// solve for the extrapolation coefficients, and damping that turns off
// for good once the error's largest element drops below dampOffThreshold.
type diis struct {
	dimMax      int
	iterStart   int
	dampFactor  float64
	dampOff     bool
	errors      []*linalg.Dense
	focks       []*linalg.Symmetric
}

func newDIIS(dimMax, iterStart int) *diis {
	return &diis{dimMax: dimMax, iterStart: iterStart, dampFactor: 0.7}
}

// dampOffThreshold is the DIIS error-vector max-element below which
// density damping switches off for good: by that point DIIS itself is
// steering convergence and mixing in the stale density only slows it down.
const dampOffThreshold = 1e-2

// applyDamping mixes dNew with the previous iterate's density,
// (1-dampFactor)*dNew + dampFactor*dOld, while the SCF is still far from
// convergence, and returns dNew unchanged once damping has switched off.
// Damping turns off permanently the first time errMax drops below
// dampOffThreshold.
func (di *diis) applyDamping(dNew, dOld *linalg.Symmetric, errMax float64) *linalg.Symmetric {
	if di.dampOff {
		return dNew
	}
	if errMax < dampOffThreshold {
		di.dampOff = true
		return dNew
	}
	n := dNew.N()
	out := linalg.NewSymmetric(n)
	for p := 0; p < n; p++ {
		for q := 0; q <= p; q++ {
			out.Set(p, q, (1-di.dampFactor)*dNew.At(p, q)+di.dampFactor*dOld.At(p, q))
		}
	}
	return out
}

// errorMatrix computes e = FDS - SDF in the AO basis (no S^-1/2
// transform), matching calc_error_matrix's untransformed commutator.
func errorMatrix(f, d, s *linalg.Symmetric) *linalg.Dense {
	n := f.N()
	sDense := s.ToDense()

	fd := linalg.NewDense(n, n, nil)
	linalg.Symm(1, f, d.ToDense(), 0, fd)
	fds := linalg.NewDense(n, n, nil)
	linalg.Gemm(blas.NoTrans, blas.NoTrans, 1, fd, sDense, 0, fds)

	sd := linalg.NewDense(n, n, nil)
	linalg.Symm(1, s, d.ToDense(), 0, sd)
	sdf := linalg.NewDense(n, n, nil)
	linalg.Gemm(blas.NoTrans, blas.NoTrans, 1, sd, f.ToDense(), 0, sdf)

	e := linalg.NewDense(n, n, nil)
	e.Sub(fds, sdf)
	return e
}

// errorMax returns the maximum absolute element of e, the convergence
// signal used to decide whether damping should still apply.
func errorMax(e *linalg.Dense) float64 {
	var m float64
	r, c := e.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := e.At(i, j)
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
	}
	return m
}

// push records one iteration's (error, Fock) pair, evicting the oldest
// entry once the ring buffer is full.
func (di *diis) push(e *linalg.Dense, f *linalg.Symmetric) {
	di.errors = append(di.errors, e)
	di.focks = append(di.focks, f)
	if len(di.errors) > di.dimMax {
		di.errors = di.errors[1:]
		di.focks = di.focks[1:]
	}
}

// extrapolate solves the bordered DIIS least-squares problem and returns
// the extrapolated Fock matrix, or nil if fewer than two vectors have
// been accumulated yet.
func (di *diis) extrapolate() *linalg.Symmetric {
	dim := len(di.errors)
	if dim < 2 {
		return nil
	}
	b := linalg.NewDense(dim+1, dim+1, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			b.Set(i, j, frobeniusDot(di.errors[i], di.errors[j]))
		}
		b.Set(i, dim, -1)
		b.Set(dim, i, -1)
	}
	b.Set(dim, dim, 0)

	rhs := linalg.NewDense(dim+1, 1, nil)
	rhs.Set(dim, 0, -1)

	sol := linalg.LinearSolve(b, rhs)

	n := di.focks[0].N()
	out := linalg.NewSymmetric(n)
	for i := 0; i < dim; i++ {
		ci := sol.At(i, 0)
		for p := 0; p < n; p++ {
			for q := 0; q <= p; q++ {
				out.Set(p, q, out.At(p, q)+ci*di.focks[i].At(p, q))
			}
		}
	}
	return out
}

func frobeniusDot(a, b *linalg.Dense) float64 {
	ar, ac := a.Dims()
	var s float64
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			s += a.At(i, j) * b.At(i, j)
		}
	}
	return s
}
