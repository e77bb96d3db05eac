// Package basis implements contracted Cartesian Gaussian-type-orbital
// shells, their Cartesian angular-momentum component ordering, primitive
// and contraction normalization, and the Cartesian-to-real-solid-harmonic
// transform used to assemble spherical AO integrals from Cartesian ones.
package basis

import "math"

// Error is the package's sentinel error type.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnsupportedAngularMomentum = Error("basis: angular momentum exceeds supported range")
	ErrEmptyContraction           = Error("basis: shell has no primitives")
)

// maxL bounds the angular momenta this package supports transform tables
// for; raising it only requires extending the factorial tables below.
const maxL = 6

// CDim returns the number of Cartesian components of angular momentum l:
// (l+1)(l+2)/2.
func CDim(l int) int { return (l + 1) * (l + 2) / 2 }

// SDim returns the number of real spherical components of angular
// momentum l: 2l+1.
func SDim(l int) int { return 2*l + 1 }

// CartesianTriple is one (lx, ly, lz) component of a Cartesian shell.
type CartesianTriple struct{ LX, LY, LZ int }

// CartesianLayout returns the CDim(l) Cartesian components of angular
// momentum l in the canonical ordering: starting at (l,0,0) and
// descending lexicographically by (lx; ly) — e.g. for l=2: xx, xy, xz,
// yy, yz, zz.
func CartesianLayout(l int) []CartesianTriple {
	n := CDim(l)
	out := make([]CartesianTriple, 0, n)
	a, b, c := l, 0, 0
	out = append(out, CartesianTriple{a, b, c})
	for len(out) < n {
		if c < l-a {
			b--
			c++
		} else {
			a--
			b = l - a
			c = 0
		}
		out = append(out, CartesianTriple{a, b, c})
	}
	return out
}

// Shell is one contracted Cartesian GTO shell: an angular momentum and the
// primitive exponents/contraction coefficients shared by all of its
// Cartesian components.
type Shell struct {
	L      int
	Exps   []float64
	Coefs  []float64 // contraction coefficients, pre-normalization
	Center [3]float64
}

// normalizedCoefs returns the per-primitive coefficients after (a) scaling
// each primitive by its own Cartesian-Gaussian normalization constant for
// the (l,0,0) component, and (b) rescaling the whole contraction so the
// (l,0,0) component is self-normalized to unity.
func (s Shell) normalizedCoefs() []float64 {
	if len(s.Exps) == 0 {
		panic(ErrEmptyContraction)
	}
	l := s.L
	coefs := make([]float64, len(s.Coefs))
	for i, alpha := range s.Exps {
		coefs[i] = s.Coefs[i] * primitiveNorm(alpha, l, 0, 0)
	}
	// Self-overlap of the (l,0,0) component over the contraction.
	var norm float64
	for i, ai := range s.Exps {
		for j, aj := range s.Exps {
			norm += coefs[i] * coefs[j] * overlapFactorSameCenter(ai, aj, l, 0, 0)
		}
	}
	scale := 1 / math.Sqrt(norm)
	for i := range coefs {
		coefs[i] *= scale
	}
	return coefs
}

// primitiveNorm is the normalization constant of a single primitive
// Cartesian Gaussian x^lx y^ly z^lz exp(-alpha r^2).
func primitiveNorm(alpha float64, lx, ly, lz int) float64 {
	num := math.Pow(2*alpha/math.Pi, 0.75) * math.Pow(4*alpha, float64(lx+ly+lz)/2)
	den := math.Sqrt(doubleFactorial(2*lx-1) * doubleFactorial(2*ly-1) * doubleFactorial(2*lz-1))
	return num / den
}

// overlapFactorSameCenter is the angular+radial overlap integral of two
// same-center primitives with identical (lx,ly,lz), up to the shared
// normalization already folded into primitiveNorm — used only to build the
// contraction's self-normalization constant.
func overlapFactorSameCenter(ai, aj float64, lx, ly, lz int) float64 {
	p := ai + aj
	pref := math.Pow(math.Pi/p, 1.5)
	ang := doubleFactorial(2*lx-1) * doubleFactorial(2*ly-1) * doubleFactorial(2*lz-1)
	ang /= math.Pow(2*p, float64(lx+ly+lz))
	return pref * ang
}

func doubleFactorial(n int) float64 {
	if n <= 0 {
		return 1
	}
	r := 1.0
	for k := n; k > 1; k -= 2 {
		r *= float64(k)
	}
	return r
}

// BasisShell is a Shell together with its normalized contraction
// coefficients, ready for integral evaluation.
type BasisShell struct {
	Shell
	NormCoefs []float64
}

// NewBasisShell normalizes s and returns the evaluable shell.
func NewBasisShell(s Shell) BasisShell {
	return BasisShell{Shell: s, NormCoefs: s.normalizedCoefs()}
}

// Basis is the full set of shells assigned to a molecule's atoms, plus the
// cached per-l Cartesian-to-spherical transform matrices.
type Basis struct {
	Shells     []BasisShell
	transforms map[int][][]float64 // l -> [SDim(l)][CDim(l)]
}

// NewBasis wraps a flat shell list and precomputes the spherical transform
// cache for every angular momentum present.
func NewBasis(shells []BasisShell) *Basis {
	b := &Basis{Shells: shells, transforms: make(map[int][][]float64)}
	for _, s := range shells {
		if _, ok := b.transforms[s.L]; !ok {
			b.transforms[s.L] = cartesianToSphericalTransform(s.L)
		}
	}
	return b
}

// CartesianDim returns the total number of Cartesian AO components.
func (b *Basis) CartesianDim() int {
	n := 0
	for _, s := range b.Shells {
		n += CDim(s.L)
	}
	return n
}

// SphericalDim returns the total number of spherical AO components.
func (b *Basis) SphericalDim() int {
	n := 0
	for _, s := range b.Shells {
		n += SDim(s.L)
	}
	return n
}

// Transform returns the cached SDim(l)-by-CDim(l) real-solid-harmonic
// transform matrix for angular momentum l (row-major, rows spherical,
// columns Cartesian).
func (b *Basis) Transform(l int) [][]float64 {
	t, ok := b.transforms[l]
	if !ok {
		t = cartesianToSphericalTransform(l)
		b.transforms[l] = t
	}
	return t
}
