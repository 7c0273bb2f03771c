package fft

import (
	"fmt"
	"testing"

	m "github.com/cwbudde/algo-fourier/internal/math"
	"github.com/cwbudde/algo-fourier/internal/reference"
)

// Sizes with prime factors outside {2, 3, 5, 7}, plus a couple of supported
// sizes to confirm the fallback is not special-cased to primes.
var bluesteinSizes = []int{2, 11, 13, 17, 22, 31, 97, 101, 127, 251, 509}

func TestBluesteinMatchesReference(t *testing.T) {
	t.Parallel()

	for _, n := range bluesteinSizes {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			t.Run("complex64", func(t *testing.T) {
				testBluesteinAgainstReference[complex64](t, n)
			})
			t.Run("complex128", func(t *testing.T) {
				testBluesteinAgainstReference[complex128](t, n)
			})
		})
	}
}

func testBluesteinAgainstReference[T Complex](t *testing.T, n int) {
	t.Helper()

	b := NewBluestein[T](n)
	defer b.Release()

	if b.Len() != n {
		t.Fatalf("Len() = %d, want %d", b.Len(), n)
	}

	src := randomSlice[T](n, int64(3000+n))

	// The convolution path loses a little more precision than the direct
	// stages, so widen the tolerance.
	tol := 4 * toleranceFor[T](b.InnerLen())

	data := append([]T(nil), src...)
	b.Apply(data, true, 1)
	assertClose(t, data, reference.DFT(src, true), tol, "forward")

	data = append([]T(nil), src...)
	b.Apply(data, false, 1)
	assertClose(t, data, reference.DFT(src, false), tol, "inverse")
}

func TestBluesteinInnerSize(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct{ n, inner int }{
		{2, 4},
		{11, 32},
		{17, 64},
		{101, 256},
		{509, 1024},
	} {
		b := NewBluestein[complex128](tt.n)

		if b.InnerLen() != tt.inner {
			t.Errorf("InnerLen for n=%d: got %d, want %d", tt.n, b.InnerLen(), tt.inner)
		}

		if b.InnerLen() < 2*tt.n-1 || !m.IsPowerOf2(b.InnerLen()) {
			t.Errorf("inner size %d is not a power of two >= %d", b.InnerLen(), 2*tt.n-1)
		}

		b.Release()
	}
}

func TestBluesteinRoundTrip(t *testing.T) {
	t.Parallel()

	const n = 127

	b := NewBluestein[complex128](n)
	defer b.Release()

	src := randomSlice[complex128](n, 41)
	data := append([]complex128(nil), src...)

	b.Apply(data, true, 1)
	b.Apply(data, false, 1.0/n)

	assertClose(t, data, src, 4*toleranceFor[complex128](b.InnerLen()), "round trip")
}
