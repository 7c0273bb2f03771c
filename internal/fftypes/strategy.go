package fftypes

// Strategy identifies which execution path a plan resolved to at build time.
type Strategy uint32

const (
	// StrategyCodelet executes a fixed-size straight-line kernel.
	StrategyCodelet Strategy = iota
	// StrategyMixedRadix executes Stockham autosort stages over the
	// factorization of the size.
	StrategyMixedRadix
	// StrategyBluestein executes the chirp-z convolution fallback for sizes
	// with prime factors larger than the supported radices.
	StrategyBluestein
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyCodelet:
		return "codelet"
	case StrategyMixedRadix:
		return "mixed-radix"
	case StrategyBluestein:
		return "bluestein"
	default:
		return "unknown"
	}
}

// SIMDLevel describes the minimum required CPU features for a codelet.
type SIMDLevel uint8

const (
	SIMDNone SIMDLevel = iota // Pure Go implementation
	SIMDSSE2                  // Requires SSE2 (x86_64 baseline)
	SIMDAVX2                  // Requires AVX2
	SIMDNEON                  // Requires ARM NEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}
