// Package unit provides explicit physical unit tags for the wavelength and
// flux-density arrays consumed by the photometry packages.
//
// Every array crosses package boundaries wrapped in a [WaveGrid] or
// [FluxGrid] whose unit tag states what the raw numbers mean. The zero
// value of each tag is the library's default unit (angstrom for
// wavelengths, jansky for flux densities), so untagged grids built with
// [Angstroms] or [Janskys] carry the default explicitly rather than by
// runtime guessing.
package unit

import "errors"

// SpeedOfLight is the speed of light in angstrom hertz (Å·Hz).
const SpeedOfLight = 2.99792458e18

var (
	ErrUnknownLength      = errors.New("unit: unknown length unit")
	ErrUnknownFluxDensity = errors.New("unit: unknown flux density unit")
)

// Length identifies a wavelength unit.
type Length int

const (
	// Angstrom is the default wavelength unit. It is the zero value, so an
	// untagged WaveGrid is interpreted in angstroms.
	Angstrom Length = iota
	Nanometer
	Micrometer
	Millimeter
	Centimeter
	Meter
)

// String returns a human-readable name for the length unit.
func (l Length) String() string {
	switch l {
	case Angstrom:
		return "angstrom"
	case Nanometer:
		return "nanometer"
	case Micrometer:
		return "micrometer"
	case Millimeter:
		return "millimeter"
	case Centimeter:
		return "centimeter"
	case Meter:
		return "meter"
	default:
		return "unknown"
	}
}

// ToAngstroms converts a value in l to angstroms.
func (l Length) ToAngstroms(v float64) (float64, error) {
	switch l {
	case Angstrom:
		return v, nil
	case Nanometer:
		return v * 1e1, nil
	case Micrometer:
		return v * 1e4, nil
	case Millimeter:
		return v * 1e7, nil
	case Centimeter:
		return v * 1e8, nil
	case Meter:
		return v * 1e10, nil
	default:
		return 0, ErrUnknownLength
	}
}

// FluxDensity identifies a spectral flux density unit.
type FluxDensity int

const (
	// Jansky is the default flux density unit (1 Jy = 1e-26 W·m⁻²·Hz⁻¹).
	// It is the zero value, so an untagged FluxGrid is interpreted in
	// janskys.
	Jansky FluxDensity = iota
	MilliJansky
	MicroJansky
	ErgPerCm2SHz
	WattPerM2Hz
)

// String returns a human-readable name for the flux density unit.
func (u FluxDensity) String() string {
	switch u {
	case Jansky:
		return "Jy"
	case MilliJansky:
		return "mJy"
	case MicroJansky:
		return "uJy"
	case ErgPerCm2SHz:
		return "erg/s/cm2/Hz"
	case WattPerM2Hz:
		return "W/m2/Hz"
	default:
		return "unknown"
	}
}

// ToJanskys converts a value in u to janskys.
func (u FluxDensity) ToJanskys(v float64) (float64, error) {
	switch u {
	case Jansky:
		return v, nil
	case MilliJansky:
		return v * 1e-3, nil
	case MicroJansky:
		return v * 1e-6, nil
	case ErgPerCm2SHz:
		return v * 1e23, nil
	case WattPerM2Hz:
		return v * 1e26, nil
	default:
		return 0, ErrUnknownFluxDensity
	}
}

// WaveGrid couples wavelength samples with an explicit unit tag.
type WaveGrid struct {
	Values []float64
	Unit   Length
}

// Waves tags values with the given wavelength unit.
func Waves(values []float64, u Length) WaveGrid {
	return WaveGrid{Values: values, Unit: u}
}

// Angstroms tags values as angstroms, the default wavelength unit.
func Angstroms(values []float64) WaveGrid {
	return WaveGrid{Values: values}
}

// Angstroms returns the samples converted to angstroms.
func (g WaveGrid) Angstroms() ([]float64, error) {
	if g.Unit == Angstrom {
		return g.Values, nil
	}
	out := make([]float64, len(g.Values))
	for i, v := range g.Values {
		a, err := g.Unit.ToAngstroms(v)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// FluxGrid couples flux density samples with an explicit unit tag.
type FluxGrid struct {
	Values []float64
	Unit   FluxDensity
}

// Fluxes tags values with the given flux density unit.
func Fluxes(values []float64, u FluxDensity) FluxGrid {
	return FluxGrid{Values: values, Unit: u}
}

// Janskys tags values as janskys, the default flux density unit.
func Janskys(values []float64) FluxGrid {
	return FluxGrid{Values: values}
}

// Janskys returns the samples converted to janskys.
func (g FluxGrid) Janskys() ([]float64, error) {
	if g.Unit == Jansky {
		return g.Values, nil
	}
	out := make([]float64, len(g.Values))
	for i, v := range g.Values {
		jy, err := g.Unit.ToJanskys(v)
		if err != nil {
			return nil, err
		}
		out[i] = jy
	}
	return out, nil
}

// FrequenciesHz converts wavelengths in angstroms to frequencies in hertz
// via ν = c/λ. The mapping is monotonically decreasing: an ascending
// wavelength grid yields a descending frequency grid.
func FrequenciesHz(angstroms []float64) []float64 {
	out := make([]float64, len(angstroms))
	for i, w := range angstroms {
		out[i] = SpeedOfLight / w
	}
	return out
}
