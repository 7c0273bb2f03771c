package algofourier

import "github.com/cwbudde/algo-fourier/internal/fftypes"

// Complex is the type constraint for sample types supported by a Plan:
// complex64 for single precision, complex128 for double.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is the type constraint for the matching real component types.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float
