package integrals

import (
	"math"

	"github.com/quantumgo/hartreefock/basis"
	"github.com/quantumgo/hartreefock/linalg"
)

// dipolePrimitive returns the Cartesian electric-dipole moment integral
// <a|r_dim - origin_dim|b> for two unnormalized primitives, via the
// McMurchie-Davidson Hermite expansion: the dimension being measured picks
// up an extra E(i,j,1) term (the Gaussian-product-center shift) on top of
// the plain overlap term, the other two dimensions contribute ordinary
// overlap factors.
func dipolePrimitive(a, b primitive, la, lb [3]int, dim int, origin [3]float64) float64 {
	p := a.alpha + b.alpha
	pref := math.Pow(math.Pi/p, 1.5)

	moment := 1.0
	for d := 0; d < 3; d++ {
		qd := a.center[d] - b.center[d]
		hc := newHermiteCache(a.alpha, b.alpha, qd)
		if d == dim {
			pd := (a.alpha*a.center[d] + b.alpha*b.center[d]) / p
			moment *= hc.E(la[d], lb[d], 1) + (pd-origin[d])*hc.E(la[d], lb[d], 0)
		} else {
			moment *= hc.E(la[d], lb[d], 0)
		}
	}
	return moment * pref
}

// dipoleShellPairCartesian builds the Cartesian shell-pair block for one
// moment-integral dimension, summed over the contraction, mirroring
// shellPairCartesian's structure for the one-electron kernels.
func dipoleShellPairCartesian(a, b basis.BasisShell, dim int, origin [3]float64) [][]float64 {
	la := basis.CartesianLayout(a.L)
	lb := basis.CartesianLayout(b.L)
	out := make([][]float64, len(la))
	for i := range out {
		out[i] = make([]float64, len(lb))
	}

	for pi, ae := range a.Exps {
		ca := a.NormCoefs[pi]
		pa := primitive{alpha: ae, center: a.Center}
		for pj, be := range b.Exps {
			cb := b.NormCoefs[pj]
			pb := primitive{alpha: be, center: b.Center}
			for i, ta := range la {
				for j, tb := range lb {
					laArr := [3]int{ta.LX, ta.LY, ta.LZ}
					lbArr := [3]int{tb.LX, tb.LY, tb.LZ}
					out[i][j] += ca * cb * dipolePrimitive(pa, pb, laArr, lbArr, dim, origin)
				}
			}
		}
	}
	return out
}

func buildDipoleComponent(b *basis.Basis, dim int, origin [3]float64) *linalg.Symmetric {
	offs := shellOffsets(b)
	n := b.SphericalDim()
	out := linalg.NewSymmetric(n)
	for i, sa := range b.Shells {
		ta := b.Transform(sa.L)
		for j := 0; j <= i; j++ {
			sb := b.Shells[j]
			tb := b.Transform(sb.L)
			cart := dipoleShellPairCartesian(sa, sb, dim, origin)
			sph := transformToSpherical(cart, ta, tb)
			for p := 0; p < basis.SDim(sa.L); p++ {
				for q := 0; q < basis.SDim(sb.L); q++ {
					mu, nu := offs[i]+p, offs[j]+q
					if mu >= nu {
						out.Set(mu, nu, sph[p][q])
					} else {
						out.Set(nu, mu, sph[p][q])
					}
				}
			}
		}
	}
	return out
}

// Dipole builds the three AO electric-dipole moment matrices
// <mu|x-Ox|nu>, <mu|y-Oy|nu>, <mu|z-Oz|nu> about the given gauge origin
// (typically the coordinate origin, in bohr, for a molecule whose nuclear
// positions are expressed in the same frame).
func Dipole(b *basis.Basis, origin [3]float64) [3]*linalg.Symmetric {
	var out [3]*linalg.Symmetric
	for dim := 0; dim < 3; dim++ {
		out[dim] = buildDipoleComponent(b, dim, origin)
	}
	return out
}
