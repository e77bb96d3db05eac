// Package basisset embeds a small library of standard basis sets (STO-3G
// and def2-SVP, covering the light elements used in typical SCF smoke
// tests) and looks them up by name and atomic symbol.
package basisset

import "github.com/quantumgo/hartreefock/basis"

// Error is the package's sentinel error type.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownBasisSet = Error("basisset: unknown basis set name")
	ErrUnknownElement  = Error("basisset: element not covered by this basis set")
)

// shellTemplate is a basis-set shell definition before it is centered on a
// specific atom.
type shellTemplate struct {
	L     int
	Exps  []float64
	Coefs []float64
}

// ShellsFor returns the shell templates for element symbol in basis set
// name, ready to be centered on an atom via basis.Shell{Center: ...}.
func ShellsFor(name, symbol string) ([]basis.Shell, error) {
	sets, ok := library[name]
	if !ok {
		return nil, ErrUnknownBasisSet
	}
	tmpls, ok := sets[symbol]
	if !ok {
		return nil, ErrUnknownElement
	}
	out := make([]basis.Shell, len(tmpls))
	for i, t := range tmpls {
		out[i] = basis.Shell{L: t.L, Exps: t.Exps, Coefs: t.Coefs}
	}
	return out, nil
}

var library = map[string]map[string][]shellTemplate{
	"sto-3g": sto3g,
	"def2-svp": def2svp,
}

var sto3g = map[string][]shellTemplate{
	"H": {
		{L: 0,
			Exps:  []float64{3.42525091, 0.62391373, 0.16885540},
			Coefs: []float64{0.15432897, 0.53532814, 0.44463454}},
	},
	"O": {
		{L: 0,
			Exps:  []float64{130.7093200, 23.8088610, 6.4436083},
			Coefs: []float64{0.15432897, 0.53532814, 0.44463454}},
		{L: 0,
			Exps:  []float64{5.0331513, 1.1695961, 0.3803890},
			Coefs: []float64{-0.09996723, 0.39951283, 0.70011547}},
		{L: 1,
			Exps:  []float64{5.0331513, 1.1695961, 0.3803890},
			Coefs: []float64{0.15591627, 0.60768372, 0.39195739}},
	},
}

var def2svp = map[string][]shellTemplate{
	"H": {
		{L: 0,
			Exps:  []float64{13.01070, 1.962257, 0.444529},
			Coefs: []float64{0.01968216, 0.1379652, 0.4783193}},
		{L: 0,
			Exps:  []float64{0.1219492},
			Coefs: []float64{1.0}},
		{L: 1,
			Exps:  []float64{0.8000000},
			Coefs: []float64{1.0}},
	},
	"He": {
		{L: 0,
			Exps:  []float64{38.35412, 5.769752, 1.240838},
			Coefs: []float64{0.02381235, 0.1548634, 0.4699724}},
		{L: 0,
			Exps:  []float64{0.2976000},
			Coefs: []float64{1.0}},
		{L: 1,
			Exps:  []float64{1.2750000},
			Coefs: []float64{1.0}},
	},
	"Li": {
		{L: 0,
			Exps:  []float64{266.2777, 40.06901, 9.055994, 2.450530},
			Coefs: []float64{0.0644263, 0.3660039, 0.6959514, 0.1694556}},
		{L: 0,
			Exps:  []float64{0.4808870, 0.0022733},
			Coefs: []float64{-0.4233247, 1.224014}},
		{L: 0,
			Exps:  []float64{0.0774961},
			Coefs: []float64{1.0}},
		{L: 1,
			Exps:  []float64{1.450000, 0.3000000, 0.0820000},
			Coefs: []float64{0.0223948, 0.1209866, 0.9328245}},
	},
}
