package algofourier

import (
	"sync"

	"github.com/cwbudde/algo-fourier/internal/cpu"
	"github.com/cwbudde/algo-fourier/internal/fft"
	"github.com/cwbudde/algo-fourier/internal/fftypes"
	"github.com/cwbudde/algo-fourier/internal/kernels"
)

// Plan holds the precomputed state for transforms of one size and
// precision: the resolved execution strategy, the shared twiddle tables,
// and the plan-owned scratch buffer.
//
// All dispatch is resolved at construction time; Transform and
// TransformInPlace only fail on caller precondition violations and never
// invalidate the plan. The twiddle tables are read-only and safe for
// concurrent readers, but the scratch buffer is mutated during every call,
// so concurrent transforms on the same Plan require external mutual
// exclusion (or one Plan per goroutine, which amortizes to the same
// tables via the shared cache).
type Plan[T Complex] struct {
	n        int
	strategy fftypes.Strategy

	forwardCodelet kernels.CodeletFunc[T]
	inverseCodelet kernels.CodeletFunc[T]

	stages    *fft.Stages[T]
	bluestein *fft.Bluestein[T]

	work []T

	closeOnce sync.Once
}

// NewPlan builds a plan for transforms of length n. The decomposition is
// deterministic: the same n always yields the same stage ordering.
//
// Returns ErrInvalidLength if n < 1.
func NewPlan[T Complex](n int) (*Plan[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	p := &Plan[T]{n: n}

	features := cpu.DetectFeatures()
	if fwd, inv, ok := kernels.Lookup[T](n, features); ok {
		p.strategy = fftypes.StrategyCodelet
		p.forwardCodelet = fwd
		p.inverseCodelet = inv

		return p, nil
	}

	if stages, ok := fft.NewStages[T](n); ok {
		p.strategy = fftypes.StrategyMixedRadix
		p.stages = stages
		p.work = make([]T, n)

		return p, nil
	}

	p.strategy = fftypes.StrategyBluestein
	p.bluestein = fft.NewBluestein[T](n)

	return p, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// Transform computes the requested variant of src into dst without
// modifying src. dst and src must both have length Len; passing the same
// slice for both is equivalent to TransformInPlace.
func (p *Plan[T]) Transform(dst, src []T, tr Transform) error {
	if err := p.checkBuffer(src); err != nil {
		return err
	}

	if err := p.checkBuffer(dst); err != nil {
		return err
	}

	if !tr.valid() {
		return ErrInvalidTransform
	}

	if !sameSlice(dst, src) {
		copy(dst, src)
	}

	p.apply(dst, tr)

	return nil
}

// TransformInPlace computes the requested variant of data in place.
func (p *Plan[T]) TransformInPlace(data []T, tr Transform) error {
	if err := p.checkBuffer(data); err != nil {
		return err
	}

	if !tr.valid() {
		return ErrInvalidTransform
	}

	p.apply(data, tr)

	return nil
}

// Forward computes the unnormalized forward transform of src into dst.
func (p *Plan[T]) Forward(dst, src []T) error {
	return p.Transform(dst, src, FFT)
}

// Inverse computes the 1/N-normalized inverse transform of src into dst.
func (p *Plan[T]) Inverse(dst, src []T) error {
	return p.Transform(dst, src, IFFT)
}

// Close releases the plan's reference on the shared twiddle tables. It is
// idempotent and never fails; the error return exists for io.Closer
// compatibility. Callers that never Close merely keep the tables cached
// for the life of the process.
func (p *Plan[T]) Close() error {
	p.closeOnce.Do(func() {
		switch p.strategy {
		case fftypes.StrategyMixedRadix:
			p.stages.Release()
		case fftypes.StrategyBluestein:
			p.bluestein.Release()
		}
	})

	return nil
}

func (p *Plan[T]) apply(data []T, tr Transform) {
	data = data[:p.n]
	scale := tr.scale(p.n)

	switch p.strategy {
	case fftypes.StrategyCodelet:
		if tr.IsForward() {
			p.forwardCodelet(data)
		} else {
			p.inverseCodelet(data)
		}

		fft.ScaleInPlace(data, scale)
	case fftypes.StrategyMixedRadix:
		p.stages.Apply(data, p.work, tr.IsForward(), scale)
	case fftypes.StrategyBluestein:
		p.bluestein.Apply(data, tr.IsForward(), scale)
	}
}

func (p *Plan[T]) checkBuffer(buf []T) error {
	if buf == nil {
		return ErrNilSlice
	}

	if len(buf) != p.n {
		return ErrLengthMismatch
	}

	return nil
}

func sameSlice[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// used by tests to assert strategy routing without exporting the field.
func (p *Plan[T]) strategyName() string {
	return p.strategy.String()
}
