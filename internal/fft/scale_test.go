package fft

import (
	"math/cmplx"
	"testing"
)

func TestScaleInPlace(t *testing.T) {
	t.Parallel()

	data := []complex128{1, 2 + 2i, -3i}
	ScaleInPlace(data, 0.5)

	want := []complex128{0.5, 1 + 1i, -1.5i}
	for i := range want {
		if cmplx.Abs(data[i]-want[i]) > 1e-15 {
			t.Errorf("element %d = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestScaleInPlaceIdentity(t *testing.T) {
	t.Parallel()

	data := []complex64{1 + 1i, 2}
	orig := append([]complex64(nil), data...)

	ScaleInPlace(data, 1)

	for i := range orig {
		if data[i] != orig[i] {
			t.Errorf("scale by 1 modified element %d", i)
		}
	}
}
