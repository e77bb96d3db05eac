package integrals

// coulombCache memoizes the Hermite Coulomb auxiliary integrals
// R(t,u,v,n) for a single Gaussian-overlap center P and nuclear/electron
// center C during one primitive's evaluation.
type coulombCache struct {
	p        float64
	pcx, pcy, pcz float64
	boys     []float64 // F_0(p*RPC2) .. F_nmax(p*RPC2)
	memo     map[[4]int]float64
}

func newCoulombCache(p float64, pc [3]float64, nmax int) *coulombCache {
	rpc2 := pc[0]*pc[0] + pc[1]*pc[1] + pc[2]*pc[2]
	return &coulombCache{
		p: p, pcx: pc[0], pcy: pc[1], pcz: pc[2],
		boys: BoysArray(nmax, p*rpc2),
		memo: make(map[[4]int]float64),
	}
}

// R returns R(t,u,v,n), the (t,u,v)-th Hermite derivative of the nuclear
// attraction/ERI Coulomb kernel at recursion order n.
func (c *coulombCache) R(t, u, v, n int) float64 {
	if t < 0 || u < 0 || v < 0 {
		return 0
	}
	if t == 0 && u == 0 && v == 0 {
		return signedPow(-2*c.p, n) * c.boys[n]
	}
	key := [4]int{t, u, v, n}
	if val, ok := c.memo[key]; ok {
		return val
	}
	var val float64
	switch {
	case t > 0:
		val = float64(t-1)*c.R(t-2, u, v, n+1) + c.pcx*c.R(t-1, u, v, n+1)
	case u > 0:
		val = float64(u-1)*c.R(t, u-2, v, n+1) + c.pcy*c.R(t, u-1, v, n+1)
	default: // v > 0
		val = float64(v-1)*c.R(t, u, v-2, n+1) + c.pcz*c.R(t, u, v-1, n+1)
	}
	c.memo[key] = val
	return val
}

// signedPow returns x^n for integer n >= 0 without the accuracy loss of
// math.Pow's general path for small integer exponents.
func signedPow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}
