package math

// NumRadices is the number of distinct stage radices used by the
// mixed-radix executor.
const NumRadices = 5

// Radices lists the stage radices in the order stages are applied.
// Pairs of 2s are consumed as radix-4 stages first, then a lone radix-2,
// then the odd radices.
var Radices = [NumRadices]int{4, 2, 3, 5, 7}

// RadixCounts decomposes n into counts of the supported radices, applied in
// Radices order. ok is false when a factor outside {2, 3, 5, 7} remains;
// such sizes route through the Bluestein fallback instead.
//
// The decomposition is a pure function of n, so every plan for the same
// size produces the same stage ordering.
func RadixCounts(n int) (counts [NumRadices]int, ok bool) {
	if n < 1 {
		return counts, false
	}

	twos := 0
	for n%2 == 0 {
		n /= 2
		twos++
	}

	counts[0] = twos / 2 // radix-4 stages
	counts[1] = twos % 2 // at most one radix-2 stage

	for i, radix := range []int{3, 5, 7} {
		for n%radix == 0 {
			n /= radix
			counts[2+i]++
		}
	}

	return counts, n == 1
}

// CanMixedRadix reports whether n factors completely into the supported
// radices.
func CanMixedRadix(n int) bool {
	_, ok := RadixCounts(n)
	return ok
}
