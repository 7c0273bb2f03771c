package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared helpers for the engine tests.

func randomSlice[T Complex](n int, seed int64) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)

	for i := range out {
		var zero T
		switch any(zero).(type) {
		case complex64:
			out[i] = any(complex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))).(T)
		case complex128:
			out[i] = any(complex(rng.Float64()*2-1, rng.Float64()*2-1)).(T)
		}
	}

	return out
}

func toComplex128[T Complex](v T) complex128 {
	switch x := any(v).(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		panic("unsupported complex type")
	}
}

// toleranceFor scales the comparison tolerance with the transform size and
// the element type's epsilon.
func toleranceFor[T Complex](n int) float64 {
	var zero T

	scale := math.Sqrt(float64(n)) + 1
	switch any(zero).(type) {
	case complex64:
		return 2e-3 * scale
	default:
		return 1e-9 * scale
	}
}

func assertClose[T Complex](t *testing.T, got, want []T, tol float64, format string, args ...any) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range want {
		diff := cmplx.Abs(toComplex128(got[i]) - toComplex128(want[i]))
		if diff > tol {
			t.Fatalf(format+": element %d: got %v want %v (diff=%v, tol=%v)",
				append(args, i, got[i], want[i], diff, tol)...)
		}
	}
}
