// Package passband models photometric filter response curves and computes
// the flux or magnitude a filter measures when exposed to an arbitrary
// spectral energy distribution.
//
// A [Filter] owns a tabulated response curve over a wavelength grid. At
// construction it derives three summary statistics by Simpson quadrature
// over the (possibly non-uniform) grid:
//
//	norm   = integral(R)
//	center = integral(R/norm * wave)                  (first moment)
//	width  = sqrt(integral(R/norm * (wave-center)^2)) (second central moment)
//
// Synthesis integrates the response against an input spectrum in the
// frequency domain. Because freq = c/wave decreases monotonically with
// wavelength, the integrand is re-sorted into ascending frequency order
// before quadrature; integrating in wavelength order would invert the sign
// of the result.
//
// A [Set] is a non-empty collection of filters kept sorted ascending by
// center wavelength. Aggregate accessors and the vectorized Flux/Mags
// calls report results in that order.
//
// # Usage
//
// Build a filter and synthesize an AB magnitude from a spectrum:
//
//	f, _ := passband.New(unit.Angstroms(wave), resp, passband.WithName("r"))
//	mag, _ := f.Mag(unit.Angstroms(specWave), unit.Janskys(specFlux))
//
// All objects are immutable after construction; every operation is a pure
// computation over in-memory grids.
package passband
