package fft

import (
	m "github.com/cwbudde/algo-fourier/internal/math"
)

// Stages is the Stockham autosort executor for sizes that factor completely
// into the supported radices. One butterfly pass runs per factor, ping-pong
// between the data buffer and a caller-provided work buffer; no separate
// bit-reversal pass is needed because the stage permutation is self-sorting.
//
// The twiddle tables are shared across all Stages of the same size and
// precision and are read-only after construction.
type Stages[T Complex] struct {
	n      int
	counts [m.NumRadices]int
	tw     *stageTwiddles[T]

	// Direction-specific butterfly constants, precomputed at build time.
	rotF, rotI       T // -i / +i for the radix-4 butterfly
	w3F, w3I         T // primitive cube root of unity
	roots5F, roots5I [5]T
	roots7F, roots7I [7]T
}

// NewStages builds the stage executor for size n. ok is false when n does
// not factor into {2, 3, 5, 7}; such sizes take the Bluestein path instead.
func NewStages[T Complex](n int) (*Stages[T], bool) {
	counts, ok := m.RadixCounts(n)
	if !ok {
		return nil, false
	}

	s := &Stages[T]{
		n:      n,
		counts: counts,
		tw:     acquireStageTwiddles[T](n, counts),
	}

	s.rotF = m.ComplexFromFloat64[T](0, -1)
	s.rotI = m.ComplexFromFloat64[T](0, 1)
	s.w3F = ComputeTwiddle[T](1, 3, true)
	s.w3I = ComputeTwiddle[T](1, 3, false)

	for k := range s.roots5F {
		s.roots5F[k] = ComputeTwiddle[T](k, 5, true)
		s.roots5I[k] = ComputeTwiddle[T](k, 5, false)
	}

	for k := range s.roots7F {
		s.roots7F[k] = ComputeTwiddle[T](k, 7, true)
		s.roots7I[k] = ComputeTwiddle[T](k, 7, false)
	}

	return s, true
}

// Len returns the transform size.
func (s *Stages[T]) Len() int {
	return s.n
}

// Release drops this executor's reference on the shared twiddle tables.
func (s *Stages[T]) Release() {
	releaseStageTwiddles[T](s.n)
}

// Apply runs all stages on data, using work as the ping-pong buffer, and
// fuses the final scale factor into the last pass. Both slices must have
// length >= the transform size. The result lands in data; the contents of
// work are unspecified afterwards.
func (s *Stages[T]) Apply(data, work []T, forward bool, scale float64) {
	tw := s.tw.forward
	rot, w3 := s.rotF, s.w3F
	roots5, roots7 := &s.roots5F, &s.roots7F

	if !forward {
		tw = s.tw.inverse
		rot, w3 = s.rotI, s.w3I
		roots5, roots7 = &s.roots5I, &s.roots7I
	}

	size := s.n
	stride := 1
	offset := 0
	inData := true

	for ri, radix := range m.Radices {
		for c := 0; c < s.counts[ri]; c++ {
			in, out := data, work
			if !inData {
				in, out = work, data
			}

			stageTw := tw[offset : offset+size]

			switch radix {
			case 4:
				stageRadix4(in, out, size, stride, stageTw, rot)
			case 2:
				stageRadix2(in, out, size, stride, stageTw)
			case 3:
				stageRadix3(in, out, size, stride, stageTw, w3, m.Conj(w3))
			case 5:
				stageRadixOdd(in, out, 5, size, stride, stageTw, roots5[:])
			case 7:
				stageRadixOdd(in, out, 7, size, stride, stageTw, roots7[:])
			}

			offset += size
			size /= radix
			stride *= radix
			inData = !inData
		}
	}

	finishStages(data, work, inData, scale)
}

// finishStages moves the result back into data if the last stage left it in
// work, applying the normalization factor in the same pass.
func finishStages[T Complex](data, work []T, inData bool, scale float64) {
	if inData {
		ScaleInPlace(data, scale)
		return
	}

	work = work[:len(data)]

	if scale == 1 {
		copy(data, work)
		return
	}

	factor := m.ComplexFromFloat64[T](scale, 0)
	for i := range data {
		data[i] = work[i] * factor
	}
}

func stageRadix2[T Complex](in, out []T, size, stride int, tw []T) {
	blocks := size / 2
	last := size == 2
	step := stride * blocks

	for i := 0; i < blocks; i++ {
		w := tw[2*i+1]
		load := stride * i
		store := 2 * stride * i

		for j := 0; j < stride; j++ {
			x0 := in[load+j]
			x1 := in[load+step+j]

			a0, a1 := x0+x1, x0-x1
			if !last {
				a1 *= w
			}

			out[store+j] = a0
			out[store+stride+j] = a1
		}
	}
}

func stageRadix3[T Complex](in, out []T, size, stride int, tw []T, w, wc T) {
	blocks := size / 3
	last := size == 3
	step := stride * blocks

	for i := 0; i < blocks; i++ {
		w1, w2 := tw[3*i+1], tw[3*i+2]
		load := stride * i
		store := 3 * stride * i

		for j := 0; j < stride; j++ {
			x0 := in[load+j]
			x1 := in[load+step+j]
			x2 := in[load+2*step+j]

			a0 := x0 + x1 + x2
			a1 := x0 + w*x1 + wc*x2
			a2 := x0 + wc*x1 + w*x2

			if !last {
				a1 *= w1
				a2 *= w2
			}

			out[store+j] = a0
			out[store+stride+j] = a1
			out[store+2*stride+j] = a2
		}
	}
}

func stageRadix4[T Complex](in, out []T, size, stride int, tw []T, rot T) {
	blocks := size / 4
	last := size == 4
	step := stride * blocks

	for i := 0; i < blocks; i++ {
		w1, w2, w3 := tw[4*i+1], tw[4*i+2], tw[4*i+3]
		load := stride * i
		store := 4 * stride * i

		for j := 0; j < stride; j++ {
			x0 := in[load+j]
			x1 := in[load+step+j]
			x2 := in[load+2*step+j]
			x3 := in[load+3*step+j]

			a0, a1 := x0+x2, x0-x2
			a2, a3 := x1+x3, x1-x3
			t := a3 * rot

			b0, b1 := a0+a2, a1+t
			b2, b3 := a0-a2, a1-t

			if !last {
				b1 *= w1
				b2 *= w2
				b3 *= w3
			}

			out[store+j] = b0
			out[store+stride+j] = b1
			out[store+2*stride+j] = b2
			out[store+3*stride+j] = b3
		}
	}
}

// stageRadixOdd is the direct small-DFT pass for radix 5 and 7. roots holds
// the direction-specific r-th roots of unity W_r^0..W_r^{r-1}.
func stageRadixOdd[T Complex](in, out []T, radix, size, stride int, tw []T, roots []T) {
	blocks := size / radix
	last := size == radix
	step := stride * blocks

	var x, y [7]T

	for i := 0; i < blocks; i++ {
		base := radix * i
		load := stride * i
		store := radix * stride * i

		for j := 0; j < stride; j++ {
			for k := 0; k < radix; k++ {
				x[k] = in[load+k*step+j]
			}

			for k := 0; k < radix; k++ {
				acc := x[0]
				idx := 0

				for l := 1; l < radix; l++ {
					idx += k
					if idx >= radix {
						idx -= radix
					}
					acc += x[l] * roots[idx]
				}

				y[k] = acc
			}

			if !last {
				for k := 1; k < radix; k++ {
					y[k] *= tw[base+k]
				}
			}

			for k := 0; k < radix; k++ {
				out[store+k*stride+j] = y[k]
			}
		}
	}
}
