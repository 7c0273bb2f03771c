// Package kernels provides fixed-size straight-line DFT codelets and the
// registry plans use to resolve them at build time.
package kernels

import (
	"github.com/cwbudde/algo-fourier/internal/cpu"
	"github.com/cwbudde/algo-fourier/internal/fftypes"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// CodeletFunc is an in-place unnormalized transform for one hardcoded size.
// Codelets perform no runtime checks; the caller guarantees len(data) equals
// the codelet's size.
type CodeletFunc[T Complex] func(data []T)

// CodeletEntry describes one registered codelet and the CPU features it
// requires.
type CodeletEntry[T Complex] struct {
	Size    int
	Level   fftypes.SIMDLevel
	Forward CodeletFunc[T]
	Inverse CodeletFunc[T]
}

// Registry64 holds the complex64 codelets, most capable first per size.
var Registry64 = []CodeletEntry[complex64]{
	{Size: 2, Level: fftypes.SIMDNone, Forward: forwardDFT2Complex64, Inverse: forwardDFT2Complex64},
	{Size: 4, Level: fftypes.SIMDNone, Forward: forwardDFT4Complex64, Inverse: inverseDFT4Complex64},
	{Size: 8, Level: fftypes.SIMDNone, Forward: forwardDFT8Complex64, Inverse: inverseDFT8Complex64},
}

// Registry128 holds the complex128 codelets.
var Registry128 = []CodeletEntry[complex128]{
	{Size: 2, Level: fftypes.SIMDNone, Forward: forwardDFT2Complex128, Inverse: forwardDFT2Complex128},
	{Size: 4, Level: fftypes.SIMDNone, Forward: forwardDFT4Complex128, Inverse: inverseDFT4Complex128},
	{Size: 8, Level: fftypes.SIMDNone, Forward: forwardDFT8Complex128, Inverse: inverseDFT8Complex128},
}

// Lookup returns the best eligible codelet pair for size n given the
// detected CPU features, or ok=false when no codelet is registered.
func Lookup[T Complex](n int, features cpu.Features) (fwd, inv CodeletFunc[T], ok bool) {
	var zero T

	switch any(zero).(type) {
	case complex64:
		for _, entry := range Registry64 {
			if entry.Size == n && features.Supports(entry.Level) {
				return any(entry.Forward).(CodeletFunc[T]), any(entry.Inverse).(CodeletFunc[T]), true
			}
		}
	case complex128:
		for _, entry := range Registry128 {
			if entry.Size == n && features.Supports(entry.Level) {
				return any(entry.Forward).(CodeletFunc[T]), any(entry.Inverse).(CodeletFunc[T]), true
			}
		}
	}

	return nil, nil, false
}
