package basis

import "math"

// cartesianToSphericalTransform builds the SDim(l)-by-CDim(l) matrix Ta
// such that sphericalAO = Ta * cartesianAO, following the real
// solid-harmonic decomposition of Cartesian Gaussians (Schlegel & Frisch,
// Int. J. Quantum Chem. 54, 83 (1995)). Row order is m = 0, +1, -1, +2,
// -2, ..., +l, -l; column order matches CartesianLayout(l).
func cartesianToSphericalTransform(l int) [][]float64 {
	cart := CartesianLayout(l)
	ms := sphericalMOrder(l)
	out := make([][]float64, len(ms))
	for row, m := range ms {
		out[row] = make([]float64, len(cart))
		for col, t := range cart {
			out[row][col] = solidHarmonicCoef(l, m, t.LX, t.LY, t.LZ)
		}
	}
	return out
}

// sphericalMOrder returns the m values in the row order the transform
// matrix uses: 0, 1, -1, 2, -2, ..., l, -l.
func sphericalMOrder(l int) []int {
	ms := make([]int, 0, 2*l+1)
	ms = append(ms, 0)
	for m := 1; m <= l; m++ {
		ms = append(ms, m, -m)
	}
	return ms
}

// solidHarmonicCoef returns the coefficient of the Cartesian Gaussian
// component (lx,ly,lz) (with lx+ly+lz == l) in the real solid harmonic
// S(l,m), for Cartesian components that all carry the (l,0,0)
// normalization constant, as BasisShell's NormCoefs do.
func solidHarmonicCoef(l, m, lx, ly, lz int) float64 {
	ma := m
	if ma < 0 {
		ma = -ma
	}
	j2 := lx + ly - ma
	if j2 < 0 || j2%2 != 0 {
		return 0
	}
	j := j2 / 2

	norm := normSolidHarmonic(l, ma)

	var total float64
	iMax := (l - ma) / 2
	for i := 0; i <= iMax; i++ {
		if i < j {
			continue // binomial(i, j) == 0
		}
		term1 := binomial(l, i) * binomial(i, j) * signPow(i) *
			factorial(2*l-2*i) / factorial(l-ma-2*i)

		var inner float64
		for k := 0; k <= j; k++ {
			p := lx - 2*k
			if p < 0 || p > ma {
				continue
			}
			coef := binomial(j, k) * binomial(ma, p)
			phase := ma - p // exponent tracking i^phase, real/imag selection
			if m >= 0 {
				switch ((phase % 4) + 4) % 4 {
				case 0:
					inner += coef
				case 2:
					inner -= coef
				default:
					// odd phase contributes to the imaginary part only
				}
			} else {
				switch ((phase % 4) + 4) % 4 {
				case 1:
					inner += coef
				case 3:
					inner -= coef
				default:
				}
			}
		}
		total += term1 * inner
	}

	return norm * total
}

// normSolidHarmonic is the overall l,m-dependent prefactor N(l,m) of the
// real solid harmonic in terms of Cartesian components.
func normSolidHarmonic(l, ma int) float64 {
	n := 1.0 / (math.Pow(2, float64(l)) * factorial(l))
	n *= math.Sqrt(2 * factorial(l-ma) / factorial(l+ma))
	if ma == 0 {
		n /= math.Sqrt(2)
	}
	return n
}

func signPow(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}

var factTable = func() []float64 {
	const n = 2*maxL + 4
	t := make([]float64, n)
	t[0] = 1
	for i := 1; i < n; i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

func factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	if n < len(factTable) {
		return factTable[n]
	}
	r := factTable[len(factTable)-1]
	for k := len(factTable); k <= n; k++ {
		r *= float64(k)
	}
	return r
}

func binomial(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	return factorial(n) / (factorial(k) * factorial(n-k))
}
