// Package algofourier computes complex-to-complex discrete Fourier
// transforms of arbitrary size, in single or double precision.
//
// A Plan bundles the precomputed state for one transform size: the
// factorization into butterfly stages, the twiddle tables, and the scratch
// buffer the executor ping-pongs through. Building a plan is the expensive
// step; executing it is cheap and allocation-free, so plans are meant to be
// built once per size and reused for unboundedly many transforms.
//
//	plan, err := algofourier.NewPlan[complex128](1024)
//	if err != nil {
//	    // handle err
//	}
//	defer plan.Close()
//
//	plan.TransformInPlace(data, algofourier.FFT)
//	plan.TransformInPlace(data, algofourier.IFFT) // recovers the input
//
// Sizes that factor into 2, 3, 5 and 7 run as mixed-radix Stockham stages
// in O(N log N); tiny sizes bind straight-line codelets; everything else
// (large primes included) runs through Bluestein's chirp-z convolution.
// The same stage machinery computes both directions, so forward and
// inverse results always correspond.
//
// A plan's tables are immutable after construction and may be read from
// any goroutine, but each transform call mutates the plan's scratch
// buffer: concurrent calls on one Plan must be serialized by the caller.
// Plans are cheap enough to build one per worker instead.
package algofourier
