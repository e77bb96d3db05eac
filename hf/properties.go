package hf

import "github.com/quantumgo/hartreefock/linalg"

// DipoleMoment returns the electronic contribution to the Cartesian
// electric dipole moment, -tr(P*M) for each moment-integral matrix in m,
// where p is the total (spin-summed) electron density in the same AO
// basis: callers must supply p as 2*D for a converged RHF result (D has
// no factor of 2 in this package's convention) or DAlpha+DBeta for UHF.
// The nuclear contribution, sum(Z_A * R_A) about the same gauge origin
// used to build m, is the caller's to add; this package has no geometry
// dependency.
func DipoleMoment(p *linalg.Symmetric, m [3]*linalg.Symmetric) [3]float64 {
	var out [3]float64
	for d := 0; d < 3; d++ {
		out[d] = -p.Dot(m[d])
	}
	return out
}
