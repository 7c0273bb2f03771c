// Package cpu detects the CPU features that gate codelet selection.
package cpu

import (
	"runtime"

	xcpu "golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-fourier/internal/fftypes"
)

// Features describes the SIMD capabilities of the current process.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
// The golang.org/x/sys/cpu vectors are zero-valued on foreign architectures,
// so a single detection path covers all targets.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      xcpu.X86.HasSSE2,
		HasAVX2:      xcpu.X86.HasAVX2,
		HasNEON:      xcpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Supports reports whether a codelet requiring the given SIMD level is
// eligible for dispatch on this machine.
func (f Features) Supports(level fftypes.SIMDLevel) bool {
	switch level {
	case fftypes.SIMDNone:
		return true
	case fftypes.SIMDSSE2:
		return f.HasSSE2
	case fftypes.SIMDAVX2:
		return f.HasAVX2
	case fftypes.SIMDNEON:
		return f.HasNEON
	default:
		return false
	}
}
