package linalg

// pairKey identifies an unordered shell(or basis-function) pair (a, b)
// with a >= b, the lower-triangle-only convention the two-electron
// integral driver fills.
type pairKey struct{ a, b int }

func makeKey(a, b int) pairKey {
	if a < b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Container stores the two-electron repulsion integrals (mu nu | rho
// sigma), indexed by the (mu, nu) bra pair, each entry itself a packed
// symmetric matrix over (rho, sigma). Set writes each quartet under both
// its bra-pair and ket-pair key, so every stored integral is reachable
// regardless of which side of the bra/ket divide a caller queries by.
type Container struct {
	n       int
	entries map[pairKey]*Symmetric
}

// NewContainer allocates an empty ERI container over an AO basis of
// dimension n.
func NewContainer(n int) *Container {
	return &Container{n: n, entries: make(map[pairKey]*Symmetric)}
}

// N returns the AO basis dimension this container was built over.
func (c *Container) N() int { return c.n }

// Set stores (mu nu | rho sigma) = v under both the bra-keyed and
// ket-keyed entry, exploiting the full eightfold permutational symmetry
// of real ERIs: (mu nu|rho sigma) = (nu mu|rho sigma) = (mu nu|sigma rho)
// = (rho sigma|mu nu). The within-pair symmetries (mu<->nu, rho<->sigma)
// fall out of Symmetric.Set/makeKey; the bra<->ket symmetry is handled
// here by writing to both pair-keyed entries so Get never has to guess
// which direction a caller originally stored a quartet under.
func (c *Container) Set(mu, nu, rho, sigma int, v float64) {
	kBra := makeKey(mu, nu)
	kKet := makeKey(rho, sigma)

	eBra, ok := c.entries[kBra]
	if !ok {
		eBra = NewSymmetric(c.n)
		c.entries[kBra] = eBra
	}
	eBra.Set(rho, sigma, v)

	if kKet != kBra {
		eKet, ok := c.entries[kKet]
		if !ok {
			eKet = NewSymmetric(c.n)
			c.entries[kKet] = eKet
		}
		eKet.Set(mu, nu, v)
	}
}

// Get returns (mu nu | rho sigma), using the eightfold permutational
// symmetry of real ERIs over real orbitals.
func (c *Container) Get(mu, nu, rho, sigma int) float64 {
	k := makeKey(mu, nu)
	e, ok := c.entries[k]
	if !ok {
		return 0
	}
	return e.At(rho, sigma)
}

// Entry returns the packed (rho sigma) block for bra pair (mu, nu),
// or nil if nothing has been stored for that pair.
func (c *Container) Entry(mu, nu int) *Symmetric {
	return c.entries[makeKey(mu, nu)]
}

// Pairs returns every stored bra-pair key as (a, b) with a >= b, for
// iteration during persistence or the Fock build.
func (c *Container) Pairs() [][2]int {
	out := make([][2]int, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, [2]int{k.a, k.b})
	}
	return out
}
