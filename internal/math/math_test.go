package math

import "testing"

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 20} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false, want true", n)
		}
	}

	for _, n := range []int{0, -1, -2, 3, 6, 12, 1000} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true, want false", n)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{17, 32},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for exp := 0; exp < 30; exp++ {
		if got := Log2(1 << exp); got != exp {
			t.Errorf("Log2(%d) = %d, want %d", 1<<exp, got, exp)
		}
	}
}

func TestComplexFromFloat64(t *testing.T) {
	t.Parallel()

	if got := ComplexFromFloat64[complex128](1.5, -2.5); got != complex(1.5, -2.5) {
		t.Errorf("complex128 conversion = %v", got)
	}

	if got := ComplexFromFloat64[complex64](1.5, -2.5); got != complex64(complex(1.5, -2.5)) {
		t.Errorf("complex64 conversion = %v", got)
	}
}

func TestConj(t *testing.T) {
	t.Parallel()

	if got := Conj[complex128](complex(3, 4)); got != complex(3, -4) {
		t.Errorf("Conj complex128 = %v", got)
	}

	if got := Conj[complex64](complex(3, 4)); got != complex64(complex(3, -4)) {
		t.Errorf("Conj complex64 = %v", got)
	}
}
