package fft

import (
	stdmath "math"

	m "github.com/cwbudde/algo-fourier/internal/math"
)

// Bluestein implements the chirp-z fallback for sizes whose factorization
// contains primes outside the supported radices. The transform becomes a
// circular convolution of length >= 2n-1, rounded up to a power of two and
// executed by an inner Stages plan owned by this value.
type Bluestein[T Complex] struct {
	n int // outer transform size
	m int // padded convolution size, power of two

	inner *Stages[T]

	// Chirp sequences, per direction. The w filters are stored already
	// transformed by the inner FFT.
	wForward, wInverse []T // length m
	xForward, xInverse []T // length n

	work      []T // length m, convolution staging
	innerWork []T // length m, ping-pong buffer for the inner plan
}

// chirp returns exp(-iπ·index/n) narrowed to T. index is taken modulo 2n,
// the period of the exponential, to keep the angle small.
func chirp[T Complex](index int64, n int) T {
	index %= int64(2 * n)

	theta := float64(index) * stdmath.Pi / float64(n)

	return m.ComplexFromFloat64[T](stdmath.Cos(theta), -stdmath.Sin(theta))
}

// NewBluestein builds the fallback plan for size n >= 1.
func NewBluestein[T Complex](n int) *Bluestein[T] {
	padded := m.NextPowerOfTwo(2*n - 1)

	inner, ok := NewStages[T](padded)
	if !ok {
		// Power-of-two sizes always factor.
		panic("fft: inner bluestein plan rejected power-of-two size")
	}

	b := &Bluestein[T]{
		n:         n,
		m:         padded,
		inner:     inner,
		wForward:  make([]T, padded),
		wInverse:  make([]T, padded),
		xForward:  make([]T, n),
		xInverse:  make([]T, n),
		work:      make([]T, padded),
		innerWork: make([]T, padded),
	}

	for i := 0; i < n; i++ {
		t := chirp[T](int64(i)*int64(i), n)
		b.xForward[i] = t
		b.xInverse[i] = m.Conj(t)
	}

	for i := 0; i < padded; i++ {
		var index int64

		switch {
		case i < n:
			index = int64(i) * int64(i)
		case i > padded-n:
			d := int64(padded - i)
			index = d * d
		default:
			continue // leave zero
		}

		t := chirp[T](index, n)
		b.wForward[i] = m.Conj(t)
		b.wInverse[i] = t
	}

	// The filters are applied in the frequency domain; transform them once.
	b.inner.Apply(b.wForward, b.work, true, 1)
	b.inner.Apply(b.wInverse, b.work, true, 1)

	return b
}

// Len returns the outer transform size.
func (b *Bluestein[T]) Len() int {
	return b.n
}

// InnerLen returns the padded convolution size. Exposed for tests.
func (b *Bluestein[T]) InnerLen() int {
	return b.m
}

// Release drops the inner plan's reference on the shared twiddle tables.
func (b *Bluestein[T]) Release() {
	b.inner.Release()
}

// Apply transforms data in place, fusing the final scale factor into the
// de-chirp pass. len(data) must be >= the outer size.
func (b *Bluestein[T]) Apply(data []T, forward bool, scale float64) {
	x, w := b.xForward, b.wForward
	if !forward {
		x, w = b.xInverse, b.wInverse
	}

	for i := 0; i < b.n; i++ {
		b.work[i] = x[i] * data[i]
	}

	clear(b.work[b.n:])

	b.inner.Apply(b.work, b.innerWork, true, 1)

	for i := range b.work {
		b.work[i] *= w[i]
	}

	b.inner.Apply(b.work, b.innerWork, false, 1/float64(b.m))

	if scale == 1 {
		for i := 0; i < b.n; i++ {
			data[i] = b.work[i] * x[i]
		}
		return
	}

	factor := m.ComplexFromFloat64[T](scale, 0)
	for i := 0; i < b.n; i++ {
		data[i] = b.work[i] * x[i] * factor
	}
}
