package geometry

import (
	"math"
	"testing"
)

func water() Molecule {
	return Molecule{
		Atoms: []Atom{
			{Symbol: "O", X: 0.000000000000, Y: -0.143225816552, Z: 0.000000000000},
			{Symbol: "H", X: 1.638036840407, Y: 1.136548822547, Z: -0.000000000000},
			{Symbol: "H", X: -1.638036840407, Y: 1.136548822547, Z: -0.000000000000},
		},
		Charge:       0,
		Multiplicity: 1,
	}
}

func TestNuclearRepulsionWater(t *testing.T) {
	e, err := water().NuclearRepulsion()
	if err != nil {
		t.Fatal(err)
	}
	want := 9.055003146181436
	if math.Abs(e-want) > 1e-9 {
		t.Errorf("E_nuc = %.15f, want %.15f", e, want)
	}
}

func TestNumElectronsWater(t *testing.T) {
	n, err := water().NumElectrons()
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("NumElectrons = %d, want 10", n)
	}
	na, nb, err := water().NumAlphaBeta()
	if err != nil {
		t.Fatal(err)
	}
	if na != 5 || nb != 5 {
		t.Errorf("NumAlphaBeta = (%d,%d), want (5,5)", na, nb)
	}
}

func TestNumAlphaBetaHydrogenAtom(t *testing.T) {
	h := Molecule{Atoms: []Atom{{Symbol: "H"}}, Charge: 0, Multiplicity: 2}
	na, nb, err := h.NumAlphaBeta()
	if err != nil {
		t.Fatal(err)
	}
	if na != 1 || nb != 0 {
		t.Errorf("NumAlphaBeta(H atom, doublet) = (%d,%d), want (1,0)", na, nb)
	}
}

func TestInvalidMultiplicityParity(t *testing.T) {
	h2 := Molecule{Atoms: []Atom{{Symbol: "H"}, {Symbol: "H"}}, Charge: 0, Multiplicity: 2}
	if _, _, err := h2.NumAlphaBeta(); err != ErrInvalidCharge {
		t.Errorf("expected ErrInvalidCharge for singlet-incompatible H2 doublet, got %v", err)
	}
}

func TestXYZRoundTrip(t *testing.T) {
	m := water()
	text := m.String()
	got, err := ParseMolecule(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Atoms) != len(m.Atoms) {
		t.Fatalf("round-trip atom count = %d, want %d", len(got.Atoms), len(m.Atoms))
	}
	for i := range m.Atoms {
		a, b := m.Atoms[i], got.Atoms[i]
		if a.Symbol != b.Symbol {
			t.Errorf("atom %d symbol = %s, want %s", i, b.Symbol, a.Symbol)
		}
		if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 || math.Abs(a.Z-b.Z) > 1e-9 {
			t.Errorf("atom %d coords = (%v,%v,%v), want (%v,%v,%v)", i, b.X, b.Y, b.Z, a.X, a.Y, a.Z)
		}
	}
}

func TestConvertUnitRoundTrip(t *testing.T) {
	m := water()
	bohr := m.ConvertUnit(Angstrom, Bohr)
	back := bohr.ConvertUnit(Bohr, Angstrom)
	for i := range m.Atoms {
		if math.Abs(m.Atoms[i].X-back.Atoms[i].X) > 1e-9 {
			t.Errorf("unit round-trip drifted on atom %d", i)
		}
	}
}
