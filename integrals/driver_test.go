package integrals_test

import (
	"math"
	"testing"

	"github.com/quantumgo/hartreefock/basis"
	"github.com/quantumgo/hartreefock/basisset"
	"github.com/quantumgo/hartreefock/integrals"
)

// waterBasis builds the STO-3G basis for the Crawford-group benchmark
// water geometry, shared by several of this file's tests.
func waterBasis(t *testing.T) *basis.Basis {
	t.Helper()
	centers := []struct {
		symbol string
		pos    [3]float64
	}{
		{"O", [3]float64{0.000000000000, -0.143225816552, 0.000000000000}},
		{"H", [3]float64{1.638036840407, 1.136548822547, 0.000000000000}},
		{"H", [3]float64{-1.638036840407, 1.136548822547, 0.000000000000}},
	}
	var shells []basis.BasisShell
	for _, c := range centers {
		tmpls, err := basisset.ShellsFor("sto-3g", c.symbol)
		if err != nil {
			t.Fatalf("basis set lookup for %q: %v", c.symbol, err)
		}
		for _, tmpl := range tmpls {
			tmpl.Center = c.pos
			shells = append(shells, basis.NewBasisShell(tmpl))
		}
	}
	return basis.NewBasis(shells)
}

// TestOverlapSelfBlockIsNormalized checks S_mu_mu = 1 for every diagonal AO,
// the direct statement that each contracted shell's own normalization
// constant was computed correctly by the basis package and carried through
// the real overlap kernel unchanged.
func TestOverlapSelfBlockIsNormalized(t *testing.T) {
	b := waterBasis(t)
	s := integrals.Overlap(b)
	n := b.SphericalDim()
	for mu := 0; mu < n; mu++ {
		if got := s.At(mu, mu); math.Abs(got-1) > 1e-10 {
			t.Errorf("S[%d][%d] = %v, want 1", mu, mu, got)
		}
	}
}

// TestOverlapIsSymmetric checks S_mu_nu = S_nu_mu across the full AO basis,
// including cross-shell, cross-atom, and cross-angular-momentum blocks.
func TestOverlapIsSymmetric(t *testing.T) {
	b := waterBasis(t)
	s := integrals.Overlap(b)
	n := b.SphericalDim()
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu < mu; nu++ {
			if got, want := s.At(mu, nu), s.At(nu, mu); got != want {
				t.Errorf("S[%d][%d] = %v, S[%d][%d] = %v, want equal", mu, nu, got, nu, mu, want)
			}
		}
	}
}

// TestERIEightfoldSymmetryRealKernels checks (mu nu|rho sigma) agrees
// across all eight bra/ket/pair permutations on the real water/STO-3G
// basis, computed through the actual shell-quartet driver rather than a
// hand-built toy matrix — the scenario that exposed the container bra/ket
// storage bug.
func TestERIEightfoldSymmetryRealKernels(t *testing.T) {
	b := waterBasis(t)
	eri := integrals.ERI(b)
	n := b.SphericalDim()

	for mu := 0; mu < n; mu++ {
		for nu := 0; nu <= mu; nu++ {
			for rho := 0; rho < n; rho++ {
				for sigma := 0; sigma <= rho; sigma++ {
					v := eri.Get(mu, nu, rho, sigma)
					perms := [][4]int{
						{mu, nu, rho, sigma}, {nu, mu, rho, sigma},
						{mu, nu, sigma, rho}, {nu, mu, sigma, rho},
						{rho, sigma, mu, nu}, {sigma, rho, mu, nu},
						{rho, sigma, nu, mu}, {sigma, rho, nu, mu},
					}
					for _, p := range perms {
						if got := eri.Get(p[0], p[1], p[2], p[3]); math.Abs(got-v) > 1e-10 {
							t.Fatalf("Get(%d,%d,%d,%d) = %v, want %v (from Get(%d,%d,%d,%d))",
								p[0], p[1], p[2], p[3], got, v, mu, nu, rho, sigma)
						}
					}
				}
			}
		}
	}
}

// TestHCoreIsSymmetric checks the assembled core Hamiltonian H = T + V is
// symmetric, since buildFock relies on Symmetric's packed storage and
// never revisits the upper triangle.
func TestHCoreIsSymmetric(t *testing.T) {
	b := waterBasis(t)
	nuclei := []integrals.Center{
		{Charge: 8, Pos: [3]float64{0.000000000000, -0.143225816552, 0.000000000000}},
		{Charge: 1, Pos: [3]float64{1.638036840407, 1.136548822547, 0.000000000000}},
		{Charge: 1, Pos: [3]float64{-1.638036840407, 1.136548822547, 0.000000000000}},
	}
	h := integrals.HCore(b, nuclei)
	n := b.SphericalDim()
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu <= mu; nu++ {
			if got, want := h.At(mu, nu), h.At(nu, mu); got != want {
				t.Errorf("H[%d][%d] = %v, H[%d][%d] = %v, want equal", mu, nu, got, nu, mu, want)
			}
		}
	}
}
