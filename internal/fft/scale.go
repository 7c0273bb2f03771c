package fft

import m "github.com/cwbudde/algo-fourier/internal/math"

// ScaleInPlace multiplies every element of data by scale. A scale of 1 is
// a no-op so unnormalized variants pay nothing.
func ScaleInPlace[T Complex](data []T, scale float64) {
	if scale == 1 {
		return
	}

	factor := m.ComplexFromFloat64[T](scale, 0)
	for i := range data {
		data[i] *= factor
	}
}
