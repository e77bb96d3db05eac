package persist

import (
	"encoding/binary"
	"os"

	"github.com/quantumgo/hartreefock/linalg"
)

// SaveContainer writes the ERI container to path as the AO dimension
// followed by each stored bra pair's (mu, nu, packed-ket-triangle).
func SaveContainer(path string, c *linalg.Container) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	pairs := c.Pairs()
	if err := writeHeader(f, formatVersion, uint64(c.N()), uint64(len(pairs)), 0); err != nil {
		return err
	}
	for _, pair := range pairs {
		mu, nu := pair[0], pair[1]
		entry := c.Entry(mu, nu)
		n := entry.N()
		packed := make([]float64, n*(n+1)/2)
		idx := 0
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				packed[idx] = entry.At(i, j)
				idx++
			}
		}
		if err := binary.Write(f, binary.LittleEndian, uint64(mu)); err != nil {
			return err
		}
		if err := binary.Write(f, binary.LittleEndian, uint64(nu)); err != nil {
			return err
		}
		if err := binary.Write(f, binary.LittleEndian, packed); err != nil {
			return err
		}
	}
	return nil
}

// LoadContainer reads a container previously written by SaveContainer.
func LoadContainer(path string) (*linalg.Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	version, n, numPairs, _, err := readHeader(f)
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, ErrVersion
	}
	c := linalg.NewContainer(int(n))
	packedLen := int(n) * (int(n) + 1) / 2
	for p := uint64(0); p < numPairs; p++ {
		var mu, nu uint64
		if err := binary.Read(f, binary.LittleEndian, &mu); err != nil {
			return nil, err
		}
		if err := binary.Read(f, binary.LittleEndian, &nu); err != nil {
			return nil, err
		}
		packed := make([]float64, packedLen)
		if err := binary.Read(f, binary.LittleEndian, packed); err != nil {
			return nil, err
		}
		idx := 0
		for i := 0; i < int(n); i++ {
			for j := 0; j <= i; j++ {
				c.Set(int(mu), int(nu), i, j, packed[idx])
				idx++
			}
		}
	}
	return c, nil
}
