package algofourier_test

import (
	"fmt"

	algofourier "github.com/cwbudde/algo-fourier"
)

func ExampleNewPlan() {
	plan, err := algofourier.NewPlan[complex128](4)
	if err != nil {
		panic(err)
	}
	defer plan.Close()

	data := []complex128{1, 1, 1, 1}
	if err := plan.TransformInPlace(data, algofourier.FFT); err != nil {
		panic(err)
	}

	fmt.Println(data)
	// Output: [(4+0i) (0+0i) (0+0i) (0+0i)]
}

func ExamplePlan_Transform() {
	plan, err := algofourier.NewPlan[complex128](8)
	if err != nil {
		panic(err)
	}
	defer plan.Close()

	impulse := make([]complex128, 8)
	impulse[0] = 1

	spectrum := make([]complex128, 8)
	if err := plan.Transform(spectrum, impulse, algofourier.FFT); err != nil {
		panic(err)
	}

	// A unit impulse transforms to a flat spectrum.
	fmt.Println(spectrum[0], spectrum[4])
	// Output: (1+0i) (1+0i)
}
