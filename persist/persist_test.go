package persist

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/quantumgo/hartreefock/linalg"
)

func TestDenseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.tmp")

	d := linalg.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err := SaveDense(path, d); err != nil {
		t.Fatal(err)
	}
	got, err := LoadDense(path)
	if err != nil {
		t.Fatal(err)
	}
	r, c := got.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("round-tripped dims = (%d,%d), want (2,3)", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(got.At(i, j)-d.At(i, j)) > 1e-15 {
				t.Errorf("[%d][%d] = %v, want %v", i, j, got.At(i, j), d.At(i, j))
			}
		}
	}
}

func TestSymmetricRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.tmp")

	s := linalg.NewSymmetric(3)
	s.Set(0, 0, 1)
	s.Set(1, 0, 2)
	s.Set(1, 1, 3)
	s.Set(2, 0, 4)
	s.Set(2, 1, 5)
	s.Set(2, 2, 6)

	if err := SaveSymmetric(path, s); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSymmetric(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			if got.At(i, j) != s.At(i, j) {
				t.Errorf("[%d][%d] = %v, want %v", i, j, got.At(i, j), s.At(i, j))
			}
		}
	}
}

func TestContainerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eri.tmp")

	c := linalg.NewContainer(2)
	c.Set(0, 0, 0, 0, 1.5)
	c.Set(1, 0, 1, 1, 2.5)

	if err := SaveContainer(path, c); err != nil {
		t.Fatal(err)
	}
	got, err := LoadContainer(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Get(0, 0, 0, 0) != 1.5 {
		t.Errorf("Get(0,0,0,0) = %v, want 1.5", got.Get(0, 0, 0, 0))
	}
	if got.Get(1, 0, 1, 1) != 2.5 {
		t.Errorf("Get(1,0,1,1) = %v, want 2.5", got.Get(1, 0, 1, 1))
	}
}
