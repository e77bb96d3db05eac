package hf

import (
	"gonum.org/v1/gonum/blas"

	"github.com/quantumgo/hartreefock/linalg"
)

// Solve runs the RHF or UHF self-consistent field iteration to
// convergence (or until Config.MaxIter is exhausted) and returns the
// result along with the full per-iteration trace. ErrNotConverged is
// returned, not panicked, if the thresholds are never jointly met;
// Result still holds the last iterate in that case.
func Solve(cfg Config, h, s *linalg.Symmetric, eri *linalg.Container, eNuc float64) (Result, error) {
	sMinusHalf := linalg.PowSym(s, -0.5).ToDense()

	switch cfg.Kind {
	case UHF:
		return solveUHF(cfg, h, s, sMinusHalf, eri, eNuc)
	default:
		return solveRHF(cfg, h, s, sMinusHalf, eri, eNuc)
	}
}

// diagonalizeFock orthogonalizes F' = S^-1/2 F S^-1/2, diagonalizes it,
// and back-transforms the eigenvectors into the AO basis: C = S^-1/2 C'.
func diagonalizeFock(f *linalg.Symmetric, sMinusHalf *linalg.Dense) (*linalg.Dense, []float64) {
	n := f.N()
	tmp := linalg.NewDense(n, n, nil)
	linalg.Symm(1, f, sMinusHalf, 0, tmp) // tmp = F * S^-1/2

	fPrime := linalg.NewDense(n, n, nil)
	linalg.Gemm(blas.NoTrans, blas.NoTrans, 1, sMinusHalf, tmp, 0, fPrime) // S^-1/2 * F * S^-1/2

	eig := linalg.Eigen(linalg.SymmetricFromDense(fPrime))

	c := linalg.NewDense(n, n, nil)
	linalg.Gemm(blas.NoTrans, blas.NoTrans, 1, sMinusHalf, eig.Vectors, 0, c) // C = S^-1/2 * C'
	return c, eig.Values
}

func solveRHF(cfg Config, h, s *linalg.Symmetric, sMinusHalf *linalg.Dense, eri *linalg.Container, eNuc float64) (Result, error) {
	c, eps := diagonalizeFock(h, sMinusHalf)
	d := densityFromCoefficients(c, cfg.NAlpha)

	di := newDIIS(cfg.DIISDimMax, cfg.DIISIterStart)
	var trace []Trace
	var f *linalg.Symmetric
	var e float64

	for iter := 0; iter < cfg.MaxIter; iter++ {
		f = buildFock(d, h, eri, 2.0, 1.0)
		ePrev := e
		e = d.Dot(addSym(h, f)) + eNuc
		deltaE := e - ePrev

		errMat := errorMatrix(f, d, s)
		errMax := errorMax(errMat)
		if iter >= cfg.DIISIterStart {
			di.push(errMat, f)
			if extrap := di.extrapolate(); extrap != nil {
				f = extrap
			}
		}

		newC, newEps := diagonalizeFock(f, sMinusHalf)
		newD := densityFromCoefficients(newC, cfg.NAlpha)
		newD = di.applyDamping(newD, d, errMax)
		rms := drms(newD, d)

		c, eps, d = newC, newEps, newD

		trace = append(trace, Trace{Iter: iter, E: e, DeltaE: deltaE, DRms: rms})

		if iter > 0 && absf(deltaE) < cfg.EThreshold && rms < cfg.RMSThreshold {
			return Result{Converged: true, Energy: e, Iterations: trace, C: c, Eps: eps, D: d, F: f}, nil
		}
	}
	return Result{Converged: false, Energy: e, Iterations: trace, C: c, Eps: eps, D: d, F: f}, ErrNotConverged
}

func solveUHF(cfg Config, h, s *linalg.Symmetric, sMinusHalf *linalg.Dense, eri *linalg.Container, eNuc float64) (Result, error) {
	cA, epsA := diagonalizeFock(h, sMinusHalf)
	cB, epsB := diagonalizeFock(h, sMinusHalf)
	dA := densityFromCoefficients(cA, cfg.NAlpha)
	dB := densityFromCoefficients(cB, cfg.NBeta)

	diA := newDIIS(cfg.DIISDimMax, cfg.DIISIterStart)
	diB := newDIIS(cfg.DIISDimMax, cfg.DIISIterStart)

	var trace []Trace
	var fA, fB *linalg.Symmetric
	var e float64

	for iter := 0; iter < cfg.MaxIter; iter++ {
		dTotal := addSym(dA, dB)
		j := buildCoulomb(dTotal, eri)
		kA := buildExchange(dA, eri)
		kB := buildExchange(dB, eri)

		fA = addSym(addSym(h, j), scaleSym(kA, -1))
		fB = addSym(addSym(h, j), scaleSym(kB, -1))

		ePrev := e
		e = 0.5*(dA.Dot(addSym(h, fA))+dB.Dot(addSym(h, fB))) + eNuc
		deltaE := e - ePrev

		errA := errorMatrix(fA, dA, s)
		errB := errorMatrix(fB, dB, s)
		errMaxA := errorMax(errA)
		errMaxB := errorMax(errB)
		if iter >= cfg.DIISIterStart {
			diA.push(errA, fA)
			diB.push(errB, fB)
			if extrap := diA.extrapolate(); extrap != nil {
				fA = extrap
			}
			if extrap := diB.extrapolate(); extrap != nil {
				fB = extrap
			}
		}

		newCA, newEpsA := diagonalizeFock(fA, sMinusHalf)
		newCB, newEpsB := diagonalizeFock(fB, sMinusHalf)
		newDA := densityFromCoefficients(newCA, cfg.NAlpha)
		newDB := densityFromCoefficients(newCB, cfg.NBeta)
		newDA = diA.applyDamping(newDA, dA, errMaxA)
		newDB = diB.applyDamping(newDB, dB, errMaxB)
		rms := drms(newDA, dA) + drms(newDB, dB)

		cA, epsA, dA = newCA, newEpsA, newDA
		cB, epsB, dB = newCB, newEpsB, newDB

		trace = append(trace, Trace{Iter: iter, E: e, DeltaE: deltaE, DRms: rms})

		if iter > 0 && absf(deltaE) < cfg.EThreshold && rms < cfg.RMSThreshold {
			return Result{
				Converged: true, Energy: e, Iterations: trace,
				CAlpha: cA, EpsAlpha: epsA, DAlpha: dA, FAlpha: fA,
				CBeta: cB, EpsBeta: epsB, DBeta: dB, FBeta: fB,
			}, nil
		}
	}
	return Result{
		Converged: false, Energy: e, Iterations: trace,
		CAlpha: cA, EpsAlpha: epsA, DAlpha: dA, FAlpha: fA,
		CBeta: cB, EpsBeta: epsB, DBeta: dB, FBeta: fB,
	}, ErrNotConverged
}

func addSym(a, b *linalg.Symmetric) *linalg.Symmetric {
	out := linalg.NewSymmetric(a.N())
	out.Add(a, b)
	return out
}

func scaleSym(a *linalg.Symmetric, f float64) *linalg.Symmetric {
	n := a.N()
	out := linalg.NewSymmetric(n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			out.Set(i, j, f*a.At(i, j))
		}
	}
	return out
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
