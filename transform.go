package algofourier

import "math"

// Transform selects the direction and normalization convention of one
// transform call. The variant is chosen per call; a single Plan serves all
// five.
type Transform int

const (
	// FFT is the forward transform, unnormalized.
	FFT Transform = iota
	// IFFT is the inverse transform scaled by 1/N, so IFFT∘FFT is the
	// identity up to rounding.
	IFFT
	// UnscaledIFFT is the inverse transform without normalization;
	// UnscaledIFFT∘FFT multiplies the input by N.
	UnscaledIFFT
	// SqrtScaledFFT is the forward transform scaled by 1/√N (unitary).
	SqrtScaledFFT
	// SqrtScaledIFFT is the inverse transform scaled by 1/√N (unitary).
	SqrtScaledIFFT
)

// IsForward reports whether the variant transforms in the forward
// direction.
func (t Transform) IsForward() bool {
	switch t {
	case FFT, SqrtScaledFFT:
		return true
	default:
		return false
	}
}

// Inverse returns the variant that undoes t, and whether one exists.
// UnscaledIFFT has no inverse among the five variants.
func (t Transform) Inverse() (Transform, bool) {
	switch t {
	case FFT:
		return IFFT, true
	case IFFT:
		return FFT, true
	case SqrtScaledFFT:
		return SqrtScaledIFFT, true
	case SqrtScaledIFFT:
		return SqrtScaledFFT, true
	default:
		return 0, false
	}
}

// String returns the conventional name of the variant.
func (t Transform) String() string {
	switch t {
	case FFT:
		return "fft"
	case IFFT:
		return "ifft"
	case UnscaledIFFT:
		return "unscaled_ifft"
	case SqrtScaledFFT:
		return "sqrt_scaled_fft"
	case SqrtScaledIFFT:
		return "sqrt_scaled_ifft"
	default:
		return "unknown"
	}
}

func (t Transform) valid() bool {
	return t >= FFT && t <= SqrtScaledIFFT
}

// scale returns the normalization factor the variant applies to a size-n
// transform.
func (t Transform) scale(n int) float64 {
	switch t {
	case IFFT:
		return 1 / float64(n)
	case SqrtScaledFFT, SqrtScaledIFFT:
		return 1 / math.Sqrt(float64(n))
	default:
		return 1
	}
}
