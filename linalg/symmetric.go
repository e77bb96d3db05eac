package linalg

import "gonum.org/v1/gonum/blas/blas64"

// Symmetric is a symmetric N-by-N matrix stored in packed lower-triangle
// form: element (i, j) with i >= j lives at index i*(i+1)/2 + j. This is
// the natural storage for the one-electron AO matrices (overlap, core
// Hamiltonian, kinetic, nuclear attraction), which are built and consumed
// triangle-at-a-time.
type Symmetric struct {
	n    int
	data []float64
}

// NewSymmetric allocates an n-by-n packed-symmetric matrix.
func NewSymmetric(n int) *Symmetric {
	if n <= 0 {
		panic(ErrZeroLength)
	}
	return &Symmetric{n: n, data: make([]float64, n*(n+1)/2)}
}

// N returns the dimension.
func (s *Symmetric) N() int { return s.n }

func (s *Symmetric) index(i, j int) int {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		panic(ErrIndexOutOfRange)
	}
	if i < j {
		i, j = j, i
	}
	return i*(i+1)/2 + j
}

// At returns element (i, j). Symmetric, so (i, j) == (j, i).
func (s *Symmetric) At(i, j int) float64 { return s.data[s.index(i, j)] }

// Set assigns v to element (i, j) and its mirror (j, i).
func (s *Symmetric) Set(i, j int, v float64) { s.data[s.index(i, j)] = v }

// Zero clears every element.
func (s *Symmetric) Zero() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// Dot returns the Frobenius inner product sum_ij s_ij*a_ij of two
// symmetric matrices of equal dimension.
func (s *Symmetric) Dot(a *Symmetric) float64 {
	if s.n != a.n {
		panic(ErrShapeMismatch)
	}
	var sum float64
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			sum += s.At(i, j) * a.At(i, j)
		}
	}
	return sum
}

// Add sets s = a + b.
func (s *Symmetric) Add(a, b *Symmetric) {
	if a.n != b.n {
		panic(ErrShapeMismatch)
	}
	s.reshapeLike(a)
	for i := range a.data {
		s.data[i] = a.data[i] + b.data[i]
	}
}

func (s *Symmetric) reshapeLike(a *Symmetric) {
	if s.n != a.n {
		if s.data != nil {
			panic(ErrShapeMismatch)
		}
		s.n = a.n
		s.data = make([]float64, len(a.data))
	}
}

// ToDense expands the packed triangle into a full Dense matrix.
func (s *Symmetric) ToDense() *Dense {
	d := NewDense(s.n, s.n, nil)
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			d.Set(i, j, s.At(i, j))
		}
	}
	return d
}

// SymmetricFromDense returns a new Symmetric holding the lower triangle of
// the square matrix a.
func SymmetricFromDense(a *Dense) *Symmetric {
	r, c := a.Dims()
	if r != c {
		panic(ErrNotSquare)
	}
	s := NewSymmetric(r)
	for i := 0; i < r; i++ {
		for j := 0; j <= i; j++ {
			s.Set(i, j, a.At(i, j))
		}
	}
	return s
}

// blas64Symmetric expands s into the conventional (row-major, full-stride)
// storage blas64.Symmetric/lapack64 routines require.
func (s *Symmetric) blas64Symmetric() blas64.Symmetric {
	data := make([]float64, s.n*s.n)
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			data[i*s.n+j] = s.At(i, j)
		}
	}
	return blas64.Symmetric{N: s.n, Stride: s.n, Data: data, Uplo: Lower}
}

// Clone returns a deep copy.
func (s *Symmetric) Clone() *Symmetric {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)
	return &Symmetric{n: s.n, data: cp}
}
