package integrals

import (
	"github.com/quantumgo/hartreefock/basis"
	"github.com/quantumgo/hartreefock/linalg"
)

// Center pairs a point charge with its position, the minimal nuclear
// attraction source the driver needs (decoupled from geometry.Atom to
// avoid a dependency cycle).
type Center struct {
	Charge float64
	Pos    [3]float64
}

// kernel1e identifies which one-electron primitive kernel a shell-pair
// block should be built from.
type kernel1e int

const (
	kernelOverlap kernel1e = iota
	kernelKinetic
	kernelNuclear
)

// shellPairCartesian builds the CDim(a.L)-by-CDim(b.L) Cartesian block for
// one of the one-electron kernels, summed over the contraction.
func shellPairCartesian(a, b basis.BasisShell, kind kernel1e, nuclei []Center) [][]float64 {
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
					var v float64
					switch kind {
					case kernelOverlap:
						v = overlapPrimitive(pa, pb, laArr, lbArr)
					case kernelKinetic:
						v = kineticPrimitive(pa, pb, laArr, lbArr)
					case kernelNuclear:
						for _, n := range nuclei {
							v += nuclearAttractionPrimitive(pa, pb, laArr, lbArr, n.Pos, n.Charge)
						}
					}
					out[i][j] += ca * cb * v
				}
			}
		}
	}
	return out
}

// transformToSpherical converts a Cartesian shell-pair block to the
// spherical basis via Ta * M * Tbᵀ.
func transformToSpherical(m [][]float64, ta, tb [][]float64) [][]float64 {
	rows, inner := len(ta), len(tb[0])
	cols := len(tb)
	half := make([][]float64, rows)
	for i := range half {
		half[i] = make([]float64, inner)
		for k := 0; k < inner; k++ {
			var s float64
			for c := 0; c < len(ta[0]); c++ {
				s += ta[i][c] * m[c][k]
			}
			half[i][k] = s
		}
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			var s float64
			for k := 0; k < inner; k++ {
				s += half[i][k] * tb[j][k]
			}
			out[i][j] = s
		}
	}
	return out
}

// shellOffsets returns the spherical AO-index offset of each shell in b.
func shellOffsets(b *basis.Basis) []int {
	offs := make([]int, len(b.Shells))
	n := 0
	for i, s := range b.Shells {
		offs[i] = n
		n += basis.SDim(s.L)
	}
	return offs
}

// build1e assembles a full AO matrix for a one-electron kernel, scattering
// each shell-pair's spherical block into the symmetric result (lower
// triangle only, matching the integral container's storage convention).
func build1e(b *basis.Basis, kind kernel1e, nuclei []Center) *linalg.Symmetric {
	offs := shellOffsets(b)
	n := b.SphericalDim()
	out := linalg.NewSymmetric(n)
	for i, sa := range b.Shells {
		ta := b.Transform(sa.L)
		for j := 0; j <= i; j++ {
			sb := b.Shells[j]
			tb := b.Transform(sb.L)
			cart := shellPairCartesian(sa, sb, kind, nuclei)
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

// Overlap builds the AO overlap matrix S.
func Overlap(b *basis.Basis) *linalg.Symmetric {
	return build1e(b, kernelOverlap, nil)
}

// Kinetic builds the AO kinetic-energy matrix T.
func Kinetic(b *basis.Basis) *linalg.Symmetric {
	return build1e(b, kernelKinetic, nil)
}

// NuclearAttraction builds the AO nuclear-attraction matrix V over the
// given point charges.
func NuclearAttraction(b *basis.Basis, nuclei []Center) *linalg.Symmetric {
	return build1e(b, kernelNuclear, nuclei)
}

// HCore builds the core Hamiltonian H = T + V.
func HCore(b *basis.Basis, nuclei []Center) *linalg.Symmetric {
	t := Kinetic(b)
	v := NuclearAttraction(b, nuclei)
	h := linalg.NewSymmetric(b.SphericalDim())
	h.Add(t, v)
	return h
}

// ERI assembles the full two-electron repulsion integral container over
// the basis, using the eightfold permutational symmetry of real ERIs to
// visit each distinct shell quartet once.
func ERI(b *basis.Basis) *linalg.Container {
	offs := shellOffsets(b)
	n := b.SphericalDim()
	out := linalg.NewContainer(n)

	shells := b.Shells
	for i := range shells {
		for j := 0; j <= i; j++ {
			for k := 0; k <= i; k++ {
				lMax := k
				if k == i {
					lMax = j
				}
				for l := 0; l <= lMax; l++ {
					eriShellQuartet(b, offs, i, j, k, l, out)
				}
			}
		}
	}
	return out
}

func eriShellQuartet(b *basis.Basis, offs []int, i, j, k, l int, out *linalg.Container) {
	sa, sb, sc, sd := b.Shells[i], b.Shells[j], b.Shells[k], b.Shells[l]
	la := basis.CartesianLayout(sa.L)
	lb := basis.CartesianLayout(sb.L)
	lc := basis.CartesianLayout(sc.L)
	ld := basis.CartesianLayout(sd.L)

	// Cartesian block (ab|cd), flattened as [len(la)*len(lb)][len(lc)*len(ld)].
	cart := make([][]float64, len(la)*len(lb))
	for idx := range cart {
		cart[idx] = make([]float64, len(lc)*len(ld))
	}

	for pi, ae := range sa.Exps {
		ca := sa.NormCoefs[pi]
		pa := primitive{alpha: ae, center: sa.Center}
		for pj, be := range sb.Exps {
			cb := sb.NormCoefs[pj]
			pb := primitive{alpha: be, center: sb.Center}
			for pk, ce := range sc.Exps {
				cc := sc.NormCoefs[pk]
				pc := primitive{alpha: ce, center: sc.Center}
				for pl, de := range sd.Exps {
					cd := sd.NormCoefs[pl]
					pd := primitive{alpha: de, center: sd.Center}
					coef := ca * cb * cc * cd
					for ai, ta := range la {
						for bi, tb := range lb {
							row := ai*len(lb) + bi
							laArr := [3]int{ta.LX, ta.LY, ta.LZ}
							lbArr := [3]int{tb.LX, tb.LY, tb.LZ}
							for ci, tc := range lc {
								for di, td := range ld {
									col := ci*len(ld) + di
									lcArr := [3]int{tc.LX, tc.LY, tc.LZ}
									ldArr := [3]int{td.LX, td.LY, td.LZ}
									v := eriPrimitive(pa, pb, pc, pd, laArr, lbArr, lcArr, ldArr)
									cart[row][col] += coef * v
								}
							}
						}
					}
				}
			}
		}
	}

	sph := transformERIBlock(cart, b.Transform(sa.L), b.Transform(sb.L), b.Transform(sc.L), b.Transform(sd.L))

	oa, ob, oc, od := offs[i], offs[j], offs[k], offs[l]
	for p := 0; p < basis.SDim(sa.L); p++ {
		for q := 0; q < basis.SDim(sb.L); q++ {
			for r := 0; r < basis.SDim(sc.L); r++ {
				for s := 0; s < basis.SDim(sd.L); s++ {
					out.Set(oa+p, ob+q, oc+r, od+s, sph[p][q][r][s])
				}
			}
		}
	}
}

// transformERIBlock applies the two half-transforms (ab|cd) -> (ij|cd) ->
// (ij|kl) that convert a Cartesian four-index block into the spherical
// basis, one bra/ket pair at a time.
func transformERIBlock(cart [][]float64, ta, tb, tc, td [][]float64) [][][][]float64 {
	nCartA, nCartB := len(ta[0]), len(tb[0])
	nSphA, nSphB := len(ta), len(tb)
	nCartC, nCartD := len(tc[0]), len(td[0])
	nSphC, nSphD := len(tc), len(td)

	// First half-transform over the bra pair: (ab|cd) -> (ij|cd).
	bra := make([][][]float64, nSphA)
	for i := range bra {
		bra[i] = make([][]float64, nSphB)
		for j := range bra[i] {
			bra[i][j] = make([]float64, nCartC*nCartD)
			for a := 0; a < nCartA; a++ {
				for b := 0; b < nCartB; b++ {
					w := ta[i][a] * tb[j][b]
					if w == 0 {
						continue
					}
					row := a*nCartB + b
					for cd := 0; cd < nCartC*nCartD; cd++ {
						bra[i][j][cd] += w * cart[row][cd]
					}
				}
			}
		}
	}

	// Second half-transform over the ket pair: (ij|cd) -> (ij|kl).
	out := make([][][][]float64, nSphA)
	for i := range out {
		out[i] = make([][][]float64, nSphB)
		for j := range out[i] {
			out[i][j] = make([][]float64, nSphC)
			for k := range out[i][j] {
				out[i][j][k] = make([]float64, nSphD)
			}
		}
	}
	for i := 0; i < nSphA; i++ {
		for j := 0; j < nSphB; j++ {
			for k := 0; k < nSphC; k++ {
				for l := 0; l < nSphD; l++ {
					var s float64
					for c := 0; c < nCartC; c++ {
						for d := 0; d < nCartD; d++ {
							s += tc[k][c] * td[l][d] * bra[i][j][c*nCartD+d]
						}
					}
					out[i][j][k][l] = s
				}
			}
		}
	}
	return out
}
