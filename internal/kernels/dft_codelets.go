package kernels

import "math"

// Straight-line codelets for tiny sizes. Each computes the unnormalized DFT
// in natural order, in place. The size-2 butterfly is its own inverse.

const sqrt1_2 = math.Sqrt2 / 2

func forwardDFT2Complex64(data []complex64) {
	x0, x1 := data[0], data[1]
	data[0], data[1] = x0+x1, x0-x1
}

func forwardDFT2Complex128(data []complex128) {
	x0, x1 := data[0], data[1]
	data[0], data[1] = x0+x1, x0-x1
}

func forwardDFT4Complex64(data []complex64) {
	x0, x1, x2, x3 := data[0], data[1], data[2], data[3]
	a0, a1 := x0+x2, x0-x2
	a2, a3 := x1+x3, x1-x3
	t := complex(imag(a3), -real(a3)) // -i * (x1 - x3)
	data[0] = a0 + a2
	data[1] = a1 + t
	data[2] = a0 - a2
	data[3] = a1 - t
}

func inverseDFT4Complex64(data []complex64) {
	x0, x1, x2, x3 := data[0], data[1], data[2], data[3]
	a0, a1 := x0+x2, x0-x2
	a2, a3 := x1+x3, x1-x3
	t := complex(-imag(a3), real(a3)) // i * (x1 - x3)
	data[0] = a0 + a2
	data[1] = a1 + t
	data[2] = a0 - a2
	data[3] = a1 - t
}

func forwardDFT4Complex128(data []complex128) {
	x0, x1, x2, x3 := data[0], data[1], data[2], data[3]
	a0, a1 := x0+x2, x0-x2
	a2, a3 := x1+x3, x1-x3
	t := complex(imag(a3), -real(a3))
	data[0] = a0 + a2
	data[1] = a1 + t
	data[2] = a0 - a2
	data[3] = a1 - t
}

func inverseDFT4Complex128(data []complex128) {
	x0, x1, x2, x3 := data[0], data[1], data[2], data[3]
	a0, a1 := x0+x2, x0-x2
	a2, a3 := x1+x3, x1-x3
	t := complex(-imag(a3), real(a3))
	data[0] = a0 + a2
	data[1] = a1 + t
	data[2] = a0 - a2
	data[3] = a1 - t
}

func forwardDFT8Complex64(data []complex64) {
	// Even and odd size-4 DFTs, then one radix-2 pass with W8 twiddles.
	e0, e1, e2, e3 := dft4c64(data[0], data[2], data[4], data[6], true)
	o0, o1, o2, o3 := dft4c64(data[1], data[3], data[5], data[7], true)

	const s = float32(sqrt1_2)
	o1 *= complex(s, -s)                  // W8^1
	o2 = complex(imag(o2), -real(o2))     // W8^2 = -i
	o3 *= complex(-s, -s)                 // W8^3

	data[0], data[4] = e0+o0, e0-o0
	data[1], data[5] = e1+o1, e1-o1
	data[2], data[6] = e2+o2, e2-o2
	data[3], data[7] = e3+o3, e3-o3
}

func inverseDFT8Complex64(data []complex64) {
	e0, e1, e2, e3 := dft4c64(data[0], data[2], data[4], data[6], false)
	o0, o1, o2, o3 := dft4c64(data[1], data[3], data[5], data[7], false)

	const s = float32(sqrt1_2)
	o1 *= complex(s, s)                   // conj(W8^1)
	o2 = complex(-imag(o2), real(o2))     // conj(W8^2) = i
	o3 *= complex(-s, s)                  // conj(W8^3)

	data[0], data[4] = e0+o0, e0-o0
	data[1], data[5] = e1+o1, e1-o1
	data[2], data[6] = e2+o2, e2-o2
	data[3], data[7] = e3+o3, e3-o3
}

func dft4c64(x0, x1, x2, x3 complex64, forward bool) (complex64, complex64, complex64, complex64) {
	a0, a1 := x0+x2, x0-x2
	a2, a3 := x1+x3, x1-x3

	var t complex64
	if forward {
		t = complex(imag(a3), -real(a3))
	} else {
		t = complex(-imag(a3), real(a3))
	}

	return a0 + a2, a1 + t, a0 - a2, a1 - t
}

func forwardDFT8Complex128(data []complex128) {
	e0, e1, e2, e3 := dft4c128(data[0], data[2], data[4], data[6], true)
	o0, o1, o2, o3 := dft4c128(data[1], data[3], data[5], data[7], true)

	o1 *= complex(sqrt1_2, -sqrt1_2)
	o2 = complex(imag(o2), -real(o2))
	o3 *= complex(-sqrt1_2, -sqrt1_2)

	data[0], data[4] = e0+o0, e0-o0
	data[1], data[5] = e1+o1, e1-o1
	data[2], data[6] = e2+o2, e2-o2
	data[3], data[7] = e3+o3, e3-o3
}

func inverseDFT8Complex128(data []complex128) {
	e0, e1, e2, e3 := dft4c128(data[0], data[2], data[4], data[6], false)
	o0, o1, o2, o3 := dft4c128(data[1], data[3], data[5], data[7], false)

	o1 *= complex(sqrt1_2, sqrt1_2)
	o2 = complex(-imag(o2), real(o2))
	o3 *= complex(-sqrt1_2, sqrt1_2)

	data[0], data[4] = e0+o0, e0-o0
	data[1], data[5] = e1+o1, e1-o1
	data[2], data[6] = e2+o2, e2-o2
	data[3], data[7] = e3+o3, e3-o3
}

func dft4c128(x0, x1, x2, x3 complex128, forward bool) (complex128, complex128, complex128, complex128) {
	a0, a1 := x0+x2, x0-x2
	a2, a3 := x1+x3, x1-x3

	var t complex128
	if forward {
		t = complex(imag(a3), -real(a3))
	} else {
		t = complex(-imag(a3), real(a3))
	}

	return a0 + a2, a1 + t, a0 - a2, a1 - t
}
