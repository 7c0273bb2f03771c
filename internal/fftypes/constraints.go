package fftypes

// Complex is the type constraint for complex sample types supported by the
// engine. complex64 selects single precision, complex128 double precision;
// a plan never mixes the two.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for the real component types matching the
// Complex constraint.
type Float interface {
	float32 | float64
}
