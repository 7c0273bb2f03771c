// Package reference provides a naive O(N²) DFT used as a test oracle.
// It is far too slow for production use but its correctness is obvious.
package reference

import (
	stdmath "math"

	"github.com/cwbudde/algo-fourier/internal/fftypes"
	m "github.com/cwbudde/algo-fourier/internal/math"
)

// Complex is a type alias for the complex number constraint.
type Complex = fftypes.Complex

// DFT computes the unnormalized discrete Fourier transform of x by direct
// summation, forward or inverse. Accumulation happens in complex128
// regardless of T so the oracle stays more accurate than the code under
// test.
func DFT[T Complex](x []T, forward bool) []T {
	n := len(x)
	out := make([]T, n)

	sign := -1.0
	if !forward {
		sign = 1.0
	}

	for k := 0; k < n; k++ {
		var sum complex128

		for j := 0; j < n; j++ {
			angle := sign * m.TwoPi * float64(int64(j)*int64(k)%int64(n)) / float64(n)
			w := complex(stdmath.Cos(angle), stdmath.Sin(angle))
			sum += toComplex128(x[j]) * w
		}

		out[k] = m.ComplexFromFloat64[T](real(sum), imag(sum))
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
