package hf

import (
	"math"

	"github.com/quantumgo/hartreefock/linalg"
)

// buildFock computes F = H + facJ*J(D) - facK*K(D), the generalized Fock
// build RHF uses with facJ=2, facK=1. UHF does not call it: it assembles
// its per-spin Fock matrices from buildCoulomb and buildExchange.
func buildFock(d *linalg.Symmetric, h *linalg.Symmetric, eri *linalg.Container, facJ, facK float64) *linalg.Symmetric {
	n := h.N()
	f := h.Clone()
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu <= mu; nu++ {
			var j, k float64
			for rho := 0; rho < n; rho++ {
				for sigma := 0; sigma < n; sigma++ {
					dRhoSigma := d.At(rho, sigma)
					if dRhoSigma == 0 {
						continue
					}
					j += eri.Get(mu, nu, rho, sigma) * dRhoSigma
					k += eri.Get(mu, rho, nu, sigma) * dRhoSigma
				}
			}
			f.Set(mu, nu, f.At(mu, nu)+facJ*j-facK*k)
		}
	}
	return f
}

// buildCoulomb computes J(D)_{mu nu} = sum_{rho sigma} (mu nu|rho sigma) D_{rho sigma},
// used by UHF to build the total-density Coulomb term shared by both spins.
func buildCoulomb(d *linalg.Symmetric, eri *linalg.Container) *linalg.Symmetric {
	n := d.N()
	j := linalg.NewSymmetric(n)
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu <= mu; nu++ {
			var s float64
			for rho := 0; rho < n; rho++ {
				for sigma := 0; sigma < n; sigma++ {
					s += eri.Get(mu, nu, rho, sigma) * d.At(rho, sigma)
				}
			}
			j.Set(mu, nu, s)
		}
	}
	return j
}

// buildExchange computes K(D)_{mu nu} = sum_{rho sigma} (mu rho|nu sigma) D_{rho sigma}.
func buildExchange(d *linalg.Symmetric, eri *linalg.Container) *linalg.Symmetric {
	n := d.N()
	k := linalg.NewSymmetric(n)
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu <= mu; nu++ {
			var s float64
			for rho := 0; rho < n; rho++ {
				for sigma := 0; sigma < n; sigma++ {
					s += eri.Get(mu, rho, nu, sigma) * d.At(rho, sigma)
				}
			}
			k.Set(mu, nu, s)
		}
	}
	return k
}

// densityFromCoefficients builds D = C_occ C_occ^T (Convention B: no
// absorbed factor of 2) from the occupied columns of C.
func densityFromCoefficients(c *linalg.Dense, nOcc int) *linalg.Symmetric {
	n, _ := c.Dims()
	d := linalg.NewSymmetric(n)
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu <= mu; nu++ {
			var s float64
			for occ := 0; occ < nOcc; occ++ {
				s += c.At(mu, occ) * c.At(nu, occ)
			}
			d.Set(mu, nu, s)
		}
	}
	return d
}

// drms returns the root-mean-square change between two density matrices.
func drms(dNew, dOld *linalg.Symmetric) float64 {
	n := dNew.N()
	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			diff := dNew.At(i, j) - dOld.At(i, j)
			s += diff * diff
		}
	}
	return math.Sqrt(s / float64(n*n))
}
