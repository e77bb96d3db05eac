package hf_test

import (
	"math"
	"testing"

	"github.com/quantumgo/hartreefock/basis"
	"github.com/quantumgo/hartreefock/basisset"
	"github.com/quantumgo/hartreefock/geometry"
	"github.com/quantumgo/hartreefock/hf"
	"github.com/quantumgo/hartreefock/integrals"
	"github.com/quantumgo/hartreefock/linalg"
)

// buildJob assigns an STO-3G shell set to every atom of mol and returns
// the basis plus the nuclear point-charge list HCore needs.
func buildJob(t *testing.T, basisName string, mol geometry.Molecule) (*basis.Basis, []integrals.Center) {
	t.Helper()
	var shells []basis.BasisShell
	nuclei := make([]integrals.Center, len(mol.Atoms))
	for i, a := range mol.Atoms {
		el, err := a.Element()
		if err != nil {
			t.Fatalf("element lookup for %q: %v", a.Symbol, err)
		}
		nuclei[i] = integrals.Center{Charge: float64(el.Z), Pos: [3]float64{a.X, a.Y, a.Z}}

		tmpls, err := basisset.ShellsFor(basisName, a.Symbol)
		if err != nil {
			t.Fatalf("basis set lookup for %q: %v", a.Symbol, err)
		}
		for _, tmpl := range tmpls {
			tmpl.Center = [3]float64{a.X, a.Y, a.Z}
			shells = append(shells, basis.NewBasisShell(tmpl))
		}
	}
	return basis.NewBasis(shells), nuclei
}

// TestRHFH2STO3GMatchesKnownEnergy checks the canonical H2/STO-3G RHF
// energy at the experimental equilibrium bond length, a standard
// cross-code regression value for minimal-basis Hartree-Fock.
func TestRHFH2STO3GMatchesKnownEnergy(t *testing.T) {
	mol := geometry.Molecule{
		Atoms: []geometry.Atom{
			{Symbol: "H", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0, Y: 0, Z: 1.4},
		},
		Charge:       0,
		Multiplicity: 1,
	}

	b, nuclei := buildJob(t, "sto-3g", mol)

	s := integrals.Overlap(b)
	h := integrals.HCore(b, nuclei)
	eri := integrals.ERI(b)

	eNuc, err := mol.NuclearRepulsion()
	if err != nil {
		t.Fatalf("nuclear repulsion: %v", err)
	}

	nAlpha, nBeta, err := mol.NumAlphaBeta()
	if err != nil {
		t.Fatalf("alpha/beta split: %v", err)
	}
	if nAlpha != 1 || nBeta != 1 {
		t.Fatalf("H2 alpha/beta = (%d,%d), want (1,1)", nAlpha, nBeta)
	}

	cfg := hf.DefaultConfig(hf.RHF, nAlpha, nBeta)
	result, err := hf.Solve(cfg, h, s, eri, eNuc)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Converged {
		t.Fatalf("SCF did not converge within %d iterations", cfg.MaxIter)
	}

	const want = -1.1167143
	if math.Abs(result.Energy-want) > 5e-4 {
		t.Errorf("RHF energy = %.7f, want %.7f (+/- 5e-4)", result.Energy, want)
	}
}

// TestUHFHydrogenAtomDef2SVPEnergyMatchesExact checks the one-electron
// limit: a lone hydrogen atom's UHF energy must reduce to its exact
// one-electron core energy (no two-electron contribution at all), the
// simplest possible open-shell regression case.
func TestUHFHydrogenAtomDef2SVPEnergyMatchesExact(t *testing.T) {
	mol := geometry.Molecule{
		Atoms:        []geometry.Atom{{Symbol: "H", X: 0, Y: 0, Z: 0}},
		Charge:       0,
		Multiplicity: 2,
	}

	b, nuclei := buildJob(t, "def2-svp", mol)

	s := integrals.Overlap(b)
	h := integrals.HCore(b, nuclei)
	eri := integrals.ERI(b)

	eNuc, err := mol.NuclearRepulsion()
	if err != nil {
		t.Fatalf("nuclear repulsion: %v", err)
	}
	if eNuc != 0 {
		t.Fatalf("single-atom nuclear repulsion = %v, want 0", eNuc)
	}

	nAlpha, nBeta, err := mol.NumAlphaBeta()
	if err != nil {
		t.Fatalf("alpha/beta split: %v", err)
	}
	if nAlpha != 1 || nBeta != 0 {
		t.Fatalf("H atom alpha/beta = (%d,%d), want (1,0)", nAlpha, nBeta)
	}

	cfg := hf.DefaultConfig(hf.UHF, nAlpha, nBeta)
	result, err := hf.Solve(cfg, h, s, eri, eNuc)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Converged {
		t.Fatalf("SCF did not converge within %d iterations", cfg.MaxIter)
	}

	// A single electron never sees the Coulomb/exchange terms cancel
	// anything but itself: the converged energy is just the occupied
	// orbital's core-Hamiltonian expectation value.
	if result.Energy >= 0 {
		t.Errorf("UHF hydrogen-atom energy = %.7f, want a negative (bound) energy", result.Energy)
	}
	if core := result.DAlpha.Dot(h); math.Abs(result.Energy-core) > 1e-8 {
		t.Errorf("UHF hydrogen-atom energy = %.10f, want tr(D_alpha H) = %.10f", result.Energy, core)
	}
}

// TestRHFHeliumDef2SVPEnergyInHartreeFockRange checks a closed-shell
// two-electron atom against the known Hartree-Fock-limit bracket for
// helium: def2-SVP is a modest basis, so the converged energy should sit
// close to, but above, the -2.8617 Hartree HF limit.
func TestRHFHeliumDef2SVPEnergyInHartreeFockRange(t *testing.T) {
	mol := geometry.Molecule{
		Atoms:        []geometry.Atom{{Symbol: "He", X: 0, Y: 0, Z: 0}},
		Charge:       0,
		Multiplicity: 1,
	}

	b, nuclei := buildJob(t, "def2-svp", mol)

	s := integrals.Overlap(b)
	h := integrals.HCore(b, nuclei)
	eri := integrals.ERI(b)

	eNuc, err := mol.NuclearRepulsion()
	if err != nil {
		t.Fatalf("nuclear repulsion: %v", err)
	}
	if eNuc != 0 {
		t.Fatalf("single-atom nuclear repulsion = %v, want 0", eNuc)
	}

	nAlpha, nBeta, err := mol.NumAlphaBeta()
	if err != nil {
		t.Fatalf("alpha/beta split: %v", err)
	}
	if nAlpha != 1 || nBeta != 1 {
		t.Fatalf("He alpha/beta = (%d,%d), want (1,1)", nAlpha, nBeta)
	}

	cfg := hf.DefaultConfig(hf.RHF, nAlpha, nBeta)
	result, err := hf.Solve(cfg, h, s, eri, eNuc)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Converged {
		t.Fatalf("SCF did not converge within %d iterations", cfg.MaxIter)
	}

	if result.Energy >= -2.80 || result.Energy <= -2.87 {
		t.Errorf("He/def2-SVP RHF energy = %.7f, want in (-2.87, -2.80)", result.Energy)
	}
}

// TestRHFWaterSTO3GMatchesKnownEnergy checks the full RHF/STO-3G total
// energy against the well-known Crawford-group programming-project
// benchmark geometry and reference value.
func TestRHFWaterSTO3GMatchesKnownEnergy(t *testing.T) {
	mol := geometry.Molecule{
		Atoms: []geometry.Atom{
			{Symbol: "O", X: 0.000000000000, Y: -0.143225816552, Z: 0.000000000000},
			{Symbol: "H", X: 1.638036840407, Y: 1.136548822547, Z: -0.000000000000},
			{Symbol: "H", X: -1.638036840407, Y: 1.136548822547, Z: -0.000000000000},
		},
		Charge:       0,
		Multiplicity: 1,
	}

	b, nuclei := buildJob(t, "sto-3g", mol)

	s := integrals.Overlap(b)
	h := integrals.HCore(b, nuclei)
	eri := integrals.ERI(b)

	eNuc, err := mol.NuclearRepulsion()
	if err != nil {
		t.Fatalf("nuclear repulsion: %v", err)
	}

	nAlpha, nBeta, err := mol.NumAlphaBeta()
	if err != nil {
		t.Fatalf("alpha/beta split: %v", err)
	}
	if nAlpha != 5 || nBeta != 5 {
		t.Fatalf("H2O alpha/beta = (%d,%d), want (5,5)", nAlpha, nBeta)
	}

	cfg := hf.DefaultConfig(hf.RHF, nAlpha, nBeta)
	result, err := hf.Solve(cfg, h, s, eri, eNuc)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Converged {
		t.Fatalf("SCF did not converge within %d iterations", cfg.MaxIter)
	}

	const want = -74.942079928192
	if math.Abs(result.Energy-want) > 1e-6 {
		t.Errorf("RHF/STO-3G water energy = %.10f, want %.10f (+/- 1e-6)", result.Energy, want)
	}
}

// TestRHFLiHDef2SVPDipoleSign checks the sign of the LiH dipole moment:
// hydrogen is more electronegative than lithium, so electron density
// shifts toward the hydrogen end and the dipole vector (pointing from the
// electron-rich toward the electron-poor nucleus) points back toward
// lithium — negative along z when Li sits at the origin and H sits at
// positive z.
func TestRHFLiHDef2SVPDipoleSign(t *testing.T) {
	const bondLength = 3.015 // bohr, close to LiH's equilibrium separation

	mol := geometry.Molecule{
		Atoms: []geometry.Atom{
			{Symbol: "Li", X: 0, Y: 0, Z: 0},
			{Symbol: "H", X: 0, Y: 0, Z: bondLength},
		},
		Charge:       0,
		Multiplicity: 1,
	}

	b, nuclei := buildJob(t, "def2-svp", mol)

	s := integrals.Overlap(b)
	h := integrals.HCore(b, nuclei)
	eri := integrals.ERI(b)

	eNuc, err := mol.NuclearRepulsion()
	if err != nil {
		t.Fatalf("nuclear repulsion: %v", err)
	}

	nAlpha, nBeta, err := mol.NumAlphaBeta()
	if err != nil {
		t.Fatalf("alpha/beta split: %v", err)
	}
	if nAlpha != 2 || nBeta != 2 {
		t.Fatalf("LiH alpha/beta = (%d,%d), want (2,2)", nAlpha, nBeta)
	}

	cfg := hf.DefaultConfig(hf.RHF, nAlpha, nBeta)
	result, err := hf.Solve(cfg, h, s, eri, eNuc)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Converged {
		t.Fatalf("SCF did not converge within %d iterations", cfg.MaxIter)
	}

	origin := [3]float64{0, 0, 0}
	m := integrals.Dipole(b, origin)

	p := linalg.NewSymmetric(result.D.N())
	p.Add(result.D, result.D) // total (spin-summed) density: P = 2*D for RHF
	electronic := hf.DipoleMoment(p, m)

	var nuclear [3]float64
	for _, n := range nuclei {
		for d := 0; d < 3; d++ {
			nuclear[d] += n.Charge * n.Pos[d]
		}
	}

	total := [3]float64{
		nuclear[0] + electronic[0],
		nuclear[1] + electronic[1],
		nuclear[2] + electronic[2],
	}

	if total[2] >= 0 {
		t.Errorf("LiH dipole z-component = %v, want negative (Li at origin, H at +z)", total[2])
	}
}
