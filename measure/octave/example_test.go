package octave_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/measure/octave"
)

func ExampleBandEnergies() {
	x := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	energies, err := octave.BandEnergies(x)
	if err != nil {
		panic(err)
	}
	for band, e := range energies {
		fmt.Printf("band %d: %.3f\n", band, e)
	}

	// Output:
	// band 0: 0.000
	// band 1: 0.000
	// band 2: 0.000
	// band 3: 8.000
}
