// Package persist implements a binary on-disk format for the matrices and
// ERI container the integral and SCF stages exchange: a small versioned
// header followed by raw little-endian float64 payload.
package persist

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/quantumgo/hartreefock/linalg"
)

// Error is the package's sentinel error type.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrCorruptHeader = Error("persist: corrupt or unrecognized file header")
	ErrVersion       = Error("persist: unsupported format version")
)

const formatVersion uint64 = 1

// Fixed filenames matching the external file-interface contract: one-
// electron AO matrices and the ERI tensor are cached under these names so
// a job can resume without recomputing integrals.
const (
	FileHCore    = "h_ao.tmp"
	FileKinetic  = "t_ao.tmp"
	FileNuclear  = "v_ao.tmp"
	FileOverlap  = "s_ao.tmp"
	FileERI      = "eri_ao.tmp"
	FileDensity0 = ".p0.tmp"
	FileDensity1 = ".p1.tmp"
)

// SaveDense writes d to path in row-major binary form.
func SaveDense(path string, d *linalg.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r, c := d.Dims()
	return writeDense(f, r, c, d.RawData())
}

// LoadDense reads a Dense matrix previously written by SaveDense.
func LoadDense(path string) (*linalg.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, c, data, err := readDense(f)
	if err != nil {
		return nil, err
	}
	return linalg.NewDense(r, c, data), nil
}

// SaveSymmetric writes s's packed lower triangle to path.
func SaveSymmetric(path string, s *linalg.Symmetric) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	n := s.N()
	data := make([]float64, n*(n+1)/2)
	idx := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			data[idx] = s.At(i, j)
			idx++
		}
	}
	if err := writeHeader(f, formatVersion, uint64(n), 0, uint64(len(data))); err != nil {
		return err
	}
	return binary.Write(f, binary.LittleEndian, data)
}

// LoadSymmetric reads a Symmetric matrix previously written by
// SaveSymmetric.
func LoadSymmetric(path string) (*linalg.Symmetric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	version, n, _, packedLen, err := readHeader(f)
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, ErrVersion
	}
	data := make([]float64, packedLen)
	if err := binary.Read(f, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	s := linalg.NewSymmetric(int(n))
	idx := 0
	for i := 0; i < int(n); i++ {
		for j := 0; j <= i; j++ {
			s.Set(i, j, data[idx])
			idx++
		}
	}
	return s, nil
}

func writeDense(w io.Writer, rows, cols int, data []float64) error {
	if err := writeHeader(w, formatVersion, uint64(rows), uint64(cols), uint64(len(data))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}

func readDense(r io.Reader) (rows, cols int, data []float64, err error) {
	var version, rr, cc, n uint64
	if version, rr, cc, n, err = readHeader(r); err != nil {
		return 0, 0, nil, err
	}
	if version != formatVersion {
		return 0, 0, nil, ErrVersion
	}
	data = make([]float64, n)
	if err = binary.Read(r, binary.LittleEndian, data); err != nil {
		return 0, 0, nil, err
	}
	return int(rr), int(cc), data, nil
}

func writeHeader(w io.Writer, version, rows, cols, n uint64) error {
	hdr := []uint64{version, rows, cols, n}
	for _, v := range hdr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

func readHeader(r io.Reader) (version, rows, cols, n uint64, err error) {
	vals := make([]uint64, 4)
	for i := range vals {
		if err = binary.Read(r, binary.LittleEndian, &vals[i]); err != nil {
			return 0, 0, 0, 0, ErrCorruptHeader
		}
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}
