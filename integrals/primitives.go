package integrals

import "math"

// primitive bundles one Gaussian primitive's exponent and center, shared
// by all the kernels below.
type primitive struct {
	alpha  float64
	center [3]float64
}

// overlapPrimitive returns the overlap integral of two unnormalized
// primitive Cartesian Gaussians with angular momentum components
// (la, lb int[3]) each, S = E(lax,lbx,0)*E(lay,lby,0)*E(laz,lbz,0)*(pi/p)^1.5.
func overlapPrimitive(a, b primitive, la, lb [3]int) float64 {
	p := a.alpha + b.alpha
	pref := math.Pow(math.Pi/p, 1.5)
	var s float64 = 1
	for d := 0; d < 3; d++ {
		q := a.center[d] - b.center[d]
		s *= newHermiteCache(a.alpha, b.alpha, q).E(la[d], lb[d], 0)
	}
	return s * pref
}

// kineticPrimitive returns the kinetic-energy integral via the standard
// decomposition into overlap integrals with shifted angular momenta:
// T_d = -2 b^2 S(l, l+2) + b(2l+1) S(l,l) - 0.5 l(l-1) S(l,l-2),
// applied per Cartesian direction and combined with the other two
// directions' plain overlaps.
func kineticPrimitive(a, b primitive, la, lb [3]int) float64 {
	var total float64
	for d := 0; d < 3; d++ {
		term := kinetic1D(a, b, la, lb, d)
		total += term
	}
	return total
}

func kinetic1D(a, b primitive, la, lb [3]int, dim int) float64 {
	lbOther := lb
	lbOther[dim] = lb[dim] + 2
	sPlus := overlapPrimitive(a, b, la, lbOther)

	sSame := overlapPrimitive(a, b, la, lb)

	var sMinus float64
	if lb[dim] >= 2 {
		lbMinus := lb
		lbMinus[dim] = lb[dim] - 2
		sMinus = overlapPrimitive(a, b, la, lbMinus)
	}

	bj := b.alpha
	l := lb[dim]
	term := -2*bj*bj*sPlus + bj*float64(2*l+1)*sSame
	if l >= 2 {
		term -= 0.5 * float64(l*(l-1)) * sMinus
	}

	return term
}

// nuclearAttractionPrimitive returns the nuclear-attraction integral of
// two primitives with a point charge Z at nucleusCenter, via the
// McMurchie-Davidson Hermite-Coulomb expansion.
func nuclearAttractionPrimitive(a, b primitive, la, lb [3]int, nucleusCenter [3]float64, z float64) float64 {
	p := a.alpha + b.alpha
	pCenter := [3]float64{
		(a.alpha*a.center[0] + b.alpha*b.center[0]) / p,
		(a.alpha*a.center[1] + b.alpha*b.center[1]) / p,
		(a.alpha*a.center[2] + b.alpha*b.center[2]) / p,
	}
	pc := [3]float64{pCenter[0] - nucleusCenter[0], pCenter[1] - nucleusCenter[1], pCenter[2] - nucleusCenter[2]}

	nmax := la[0] + la[1] + la[2] + lb[0] + lb[1] + lb[2]
	cc := newCoulombCache(p, pc, nmax)

	ex := newHermiteCache(a.alpha, b.alpha, a.center[0]-b.center[0])
	ey := newHermiteCache(a.alpha, b.alpha, a.center[1]-b.center[1])
	ez := newHermiteCache(a.alpha, b.alpha, a.center[2]-b.center[2])

	var sum float64
	for t := 0; t <= la[0]+lb[0]; t++ {
		et := ex.E(la[0], lb[0], t)
		if et == 0 {
			continue
		}
		for u := 0; u <= la[1]+lb[1]; u++ {
			eu := ey.E(la[1], lb[1], u)
			if eu == 0 {
				continue
			}
			for v := 0; v <= la[2]+lb[2]; v++ {
				ev := ez.E(la[2], lb[2], v)
				if ev == 0 {
					continue
				}
				sum += et * eu * ev * cc.R(t, u, v, 0)
			}
		}
	}
	return -z * 2 * math.Pi / p * sum
}

// eriPrimitive returns the two-electron repulsion integral
// (ab|cd) = integral integral phi_a(1) phi_b(1) (1/r12) phi_c(2) phi_d(2)
// over four unnormalized primitives, via the McMurchie-Davidson
// Hermite-Coulomb expansion over both Hermite Gaussian overlap
// distributions.
func eriPrimitive(a, b, c, d primitive, la, lb, lc, ld [3]int) float64 {
	p := a.alpha + b.alpha
	q := c.alpha + d.alpha
	alpha := p * q / (p + q)

	pCenter := [3]float64{
		(a.alpha*a.center[0] + b.alpha*b.center[0]) / p,
		(a.alpha*a.center[1] + b.alpha*b.center[1]) / p,
		(a.alpha*a.center[2] + b.alpha*b.center[2]) / p,
	}
	qCenter := [3]float64{
		(c.alpha*c.center[0] + d.alpha*d.center[0]) / q,
		(c.alpha*c.center[1] + d.alpha*d.center[1]) / q,
		(c.alpha*c.center[2] + d.alpha*d.center[2]) / q,
	}
	pq := [3]float64{pCenter[0] - qCenter[0], pCenter[1] - qCenter[1], pCenter[2] - qCenter[2]}

	nmax := la[0] + la[1] + la[2] + lb[0] + lb[1] + lb[2] +
		lc[0] + lc[1] + lc[2] + ld[0] + ld[1] + ld[2]
	cc := newCoulombCache(alpha, pq, nmax)

	exAB := newHermiteCache(a.alpha, b.alpha, a.center[0]-b.center[0])
	eyAB := newHermiteCache(a.alpha, b.alpha, a.center[1]-b.center[1])
	ezAB := newHermiteCache(a.alpha, b.alpha, a.center[2]-b.center[2])
	exCD := newHermiteCache(c.alpha, d.alpha, c.center[0]-d.center[0])
	eyCD := newHermiteCache(c.alpha, d.alpha, c.center[1]-d.center[1])
	ezCD := newHermiteCache(c.alpha, d.alpha, c.center[2]-d.center[2])

	var sum float64
	for t1 := 0; t1 <= la[0]+lb[0]; t1++ {
		et1 := exAB.E(la[0], lb[0], t1)
		if et1 == 0 {
			continue
		}
		for u1 := 0; u1 <= la[1]+lb[1]; u1++ {
			eu1 := eyAB.E(la[1], lb[1], u1)
			if eu1 == 0 {
				continue
			}
			for v1 := 0; v1 <= la[2]+lb[2]; v1++ {
				ev1 := ezAB.E(la[2], lb[2], v1)
				if ev1 == 0 {
					continue
				}
				for t2 := 0; t2 <= lc[0]+ld[0]; t2++ {
					et2 := exCD.E(lc[0], ld[0], t2)
					if et2 == 0 {
						continue
					}
					for u2 := 0; u2 <= lc[1]+ld[1]; u2++ {
						eu2 := eyCD.E(lc[1], ld[1], u2)
						if eu2 == 0 {
							continue
						}
						for v2 := 0; v2 <= lc[2]+ld[2]; v2++ {
							ev2 := ezCD.E(lc[2], ld[2], v2)
							if ev2 == 0 {
								continue
							}
							sign := 1.0
							if (t2+u2+v2)%2 == 1 {
								sign = -1.0
							}
							sum += et1 * eu1 * ev1 * et2 * eu2 * ev2 * sign *
								cc.R(t1+t2, u1+u2, v1+v2, 0)
						}
					}
				}
			}
		}
	}
	pref := 2 * math.Pow(math.Pi, 2.5) / (p * q * math.Sqrt(p+q))
	return pref * sum
}
