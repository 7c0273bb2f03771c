// Package fft implements the transform engine: twiddle generation, the
// Stockham mixed-radix stage executor, the Bluestein fallback for sizes with
// large prime factors, and the shared twiddle table cache.
package fft

import (
	stdmath "math"

	"github.com/cwbudde/algo-fourier/internal/fftypes"
	m "github.com/cwbudde/algo-fourier/internal/math"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// ComputeTwiddle returns W_size^index = exp(-2πi·index/size) for the forward
// direction, or its conjugate for the inverse. Angles are computed in float64
// and narrowed to T.
func ComputeTwiddle[T Complex](index, size int, forward bool) T {
	index %= size

	angle := -m.TwoPi * float64(index) / float64(size)
	re := stdmath.Cos(angle)
	im := stdmath.Sin(angle)

	if !forward {
		im = -im
	}

	return m.ComplexFromFloat64[T](re, im)
}

// stageTwiddleLen returns the total table length for the given radix counts:
// each stage contributes its current size (m blocks of radix entries).
func stageTwiddleLen(n int, counts [m.NumRadices]int) int {
	total := 0
	size := n

	for ri, radix := range m.Radices {
		for c := 0; c < counts[ri]; c++ {
			total += size
			size /= radix
		}
	}

	return total
}

// computeStageTwiddles builds the per-stage twiddle tables for both
// directions. Each stage stores m = size/radix blocks of the form
// [1, W_size^i, W_size^{2i}, ..., W_size^{(radix-1)i}].
func computeStageTwiddles[T Complex](n int, counts [m.NumRadices]int) (forward, inverse []T) {
	total := stageTwiddleLen(n, counts)
	forward = make([]T, 0, total)
	inverse = make([]T, 0, total)

	one := m.ComplexFromFloat64[T](1, 0)
	size := n

	for ri, radix := range m.Radices {
		for c := 0; c < counts[ri]; c++ {
			blocks := size / radix
			for i := 0; i < blocks; i++ {
				forward = append(forward, one)
				inverse = append(inverse, one)
				for j := 1; j < radix; j++ {
					forward = append(forward, ComputeTwiddle[T](i*j, size, true))
					inverse = append(inverse, ComputeTwiddle[T](i*j, size, false))
				}
			}

			size = blocks
		}
	}

	return forward, inverse
}
