package passband_test

import (
	"fmt"

	"github.com/cwbudde/algo-photom/phot/passband"
	"github.com/cwbudde/algo-photom/unit"
)

func ExampleNew() {
	// A symmetric triangular response between 5000 and 6000 Å.
	wave := []float64{5000, 5500, 6000}
	resp := []float64{0, 0.8, 0}

	f, _ := passband.New(unit.Angstroms(wave), resp, passband.WithName("r"))
	fmt.Printf("%s: center=%.0f\n", f.Name(), f.Center())

	// Output:
	// r: center=5500
}

func ExampleNewSet() {
	mk := func(name string, lo, mid, hi float64) *passband.Filter {
		f, _ := passband.New(unit.Angstroms([]float64{lo, mid, hi}), []float64{0, 1, 0}, passband.WithName(name))
		return f
	}

	// Supplied out of wavelength order; the set sorts by center.
	s, _ := passband.NewSet("demo",
		mk("i", 7000, 7500, 8000),
		mk("g", 4200, 4700, 5200),
		mk("r", 5700, 6200, 6700),
	)

	for _, f := range s.Filters() {
		fmt.Printf("%s ", f.Name())
	}
	fmt.Println()

	// Output:
	// g r i
}
