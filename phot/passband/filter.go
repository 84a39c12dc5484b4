package passband

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-photom/unit"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// ABZeropointJy is the AB magnitude system zeropoint flux density in jansky.
const ABZeropointJy = 3631.0

var (
	ErrGridMismatch       = errors.New("passband: wavelength and response grids differ in length")
	ErrGridTooShort       = errors.New("passband: grid needs at least 3 points")
	ErrGridOrder          = errors.New("passband: wavelength grid must be strictly increasing")
	ErrRepeatedWavelength = errors.New("passband: spectrum wavelengths repeat")
	ErrResponseRange      = errors.New("passband: response value exceeds 1")
	ErrSpectrumMismatch   = errors.New("passband: wavelength and flux grids differ in length")
	ErrZeropoint          = errors.New("passband: zeropoint flux is not positive")
	ErrEmptySet           = errors.New("passband: filter set is empty")
)

// Filter models a photometric passband: a response curve tabulated over a
// wavelength grid, together with its derived summary statistics and the
// zeropoint used for magnitude conversion.
//
// A Filter is immutable after [New].
type Filter struct {
	wave []float64 // angstroms, strictly increasing
	resp []float64 // response fraction per grid point, each <= 1
	name string
	zpJy float64 // zeropoint flux density in jansky

	norm   float64 // area under the response curve (Å)
	center float64 // response-weighted mean wavelength (Å)
	width  float64 // response-weighted wavelength standard deviation (Å)

	itp interp.PiecewiseLinear
}

type filterConfig struct {
	name   string
	zp     float64
	zpUnit unit.FluxDensity
}

func defaultFilterConfig() filterConfig {
	return filterConfig{zp: ABZeropointJy, zpUnit: unit.Jansky}
}

// Option configures a Filter.
type Option func(*filterConfig)

// WithName sets the filter's display name.
func WithName(name string) Option {
	return func(cfg *filterConfig) {
		cfg.name = name
	}
}

// WithZeropoint sets the flux density zeropoint used for magnitude
// conversion. The default is the AB zeropoint of 3631 Jy.
func WithZeropoint(value float64, u unit.FluxDensity) Option {
	return func(cfg *filterConfig) {
		cfg.zp = value
		cfg.zpUnit = u
	}
}

// New builds a filter from a wavelength grid and a response curve.
//
// The grids must have equal length with at least three points (Simpson
// quadrature needs three), the wavelengths must be strictly increasing,
// and no response value may exceed 1. The summary statistics and the
// response interpolant are computed once here; the filter never changes
// afterwards.
func New(wave unit.WaveGrid, resp []float64, opts ...Option) (*Filter, error) {
	cfg := defaultFilterConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	ang, err := wave.Angstroms()
	if err != nil {
		return nil, err
	}

	switch {
	case len(resp) != len(ang):
		return nil, ErrGridMismatch
	case len(ang) < 3:
		return nil, ErrGridTooShort
	}
	for i := 1; i < len(ang); i++ {
		if ang[i] <= ang[i-1] {
			return nil, ErrGridOrder
		}
	}
	for _, r := range resp {
		if r > 1 {
			return nil, ErrResponseRange
		}
	}

	zpJy, err := cfg.zpUnit.ToJanskys(cfg.zp)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		wave: append([]float64(nil), ang...),
		resp: append([]float64(nil), resp...),
		name: cfg.name,
		zpJy: zpJy,
	}
	if err := f.itp.Fit(f.wave, f.resp); err != nil {
		return nil, fmt.Errorf("passband: fitting response interpolant: %w", err)
	}

	f.norm = integrate.Simpsons(f.wave, f.resp)

	// Response-weighted first and second central moments.
	buf := make([]float64, len(f.wave))
	vecmath.MulBlock(buf, f.resp, f.wave)
	for i := range buf {
		buf[i] /= f.norm
	}
	f.center = integrate.Simpsons(f.wave, buf)

	for i, w := range f.wave {
		d := w - f.center
		buf[i] = f.resp[i] / f.norm * d * d
	}
	f.width = math.Sqrt(integrate.Simpsons(f.wave, buf))

	return f, nil
}

// Name returns the filter's display label.
func (f *Filter) Name() string { return f.name }

// Center returns the response-weighted mean wavelength in angstroms.
func (f *Filter) Center() float64 { return f.center }

// Width returns the response-weighted wavelength standard deviation in
// angstroms.
func (f *Filter) Width() float64 { return f.width }

// Norm returns the area under the response curve in angstroms.
func (f *Filter) Norm() float64 { return f.norm }

// Zeropoint returns the magnitude zeropoint flux density in jansky.
func (f *Filter) Zeropoint() float64 { return f.zpJy }

// Wave returns a copy of the tabulated wavelength grid in angstroms.
func (f *Filter) Wave() []float64 { return append([]float64(nil), f.wave...) }

// Resp returns a copy of the tabulated response curve.
func (f *Filter) Resp() []float64 { return append([]float64(nil), f.resp...) }

// responseAt evaluates the response interpolant at an angstrom wavelength.
// Queries outside the tabulated range return 0.
func (f *Filter) responseAt(w float64) float64 {
	if w < f.wave[0] || w > f.wave[len(f.wave)-1] {
		return 0
	}
	return f.itp.Predict(w)
}

// Resample regrids the response curve onto a new wavelength axis using
// piecewise-linear interpolation. Wavelengths outside the tabulated range
// map to exactly 0; out-of-range queries never fail.
func (f *Filter) Resample(wave unit.WaveGrid) ([]float64, error) {
	ang, err := wave.Angstroms()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(ang))
	for i, w := range ang {
		out[i] = f.responseAt(w)
	}
	return out, nil
}

// Flux integrates a spectrum against the filter response, returning the
// total measured flux in Jy·Hz (1 Jy·Hz = 1e-26 W·m⁻²).
//
// The response is resampled onto the input wavelength grid, both are
// converted to the frequency domain, and the product is Simpson-integrated
// in ascending frequency order.
func (f *Filter) Flux(wave unit.WaveGrid, flux unit.FluxGrid) (float64, error) {
	fluxJy, freqs, resp, err := f.prepare(wave, flux)
	if err != nil {
		return 0, err
	}

	integrand := make([]float64, len(resp))
	vecmath.MulBlock(integrand, resp, fluxJy)

	return integrate.Simpsons(freqs, integrand), nil
}

// Mag returns the magnitude of a spectrum through the filter, referenced
// to the filter's zeropoint:
//
//	mag = -2.5 * log10(flux / zpFlux)
//
// zpFlux integrates the same frequency-sorted response against the
// constant zeropoint flux density over the same frequency grid, so a
// spectrum that is flat at exactly the zeropoint yields magnitude 0.
func (f *Filter) Mag(wave unit.WaveGrid, flux unit.FluxGrid) (float64, error) {
	fluxJy, freqs, resp, err := f.prepare(wave, flux)
	if err != nil {
		return 0, err
	}

	integrand := make([]float64, len(resp))
	vecmath.MulBlock(integrand, resp, fluxJy)
	total := integrate.Simpsons(freqs, integrand)

	for i, r := range resp {
		integrand[i] = r * f.zpJy
	}
	zpFlux := integrate.Simpsons(freqs, integrand)
	if zpFlux <= 0 {
		return 0, ErrZeropoint
	}

	return -2.5 * math.Log10(total/zpFlux), nil
}

// prepare normalizes the spectrum to angstrom/jansky, samples the response
// on the input grid, converts wavelengths to frequencies and returns flux,
// frequency and response arrays sorted by ascending frequency.
//
// The re-sort is a correctness requirement: ν = c/λ is monotonically
// decreasing, and Simpson quadrature over a descending axis would invert
// the sign of the integral.
func (f *Filter) prepare(wave unit.WaveGrid, flux unit.FluxGrid) (fluxJy, freqs, resp []float64, err error) {
	ang, err := wave.Angstroms()
	if err != nil {
		return nil, nil, nil, err
	}
	jy, err := flux.Janskys()
	if err != nil {
		return nil, nil, nil, err
	}

	switch {
	case len(jy) != len(ang):
		return nil, nil, nil, ErrSpectrumMismatch
	case len(ang) < 3:
		return nil, nil, nil, ErrGridTooShort
	}

	freqs = unit.FrequenciesHz(ang)
	inds := make([]int, len(freqs))
	floats.Argsort(freqs, inds)

	// Quadrature needs distinct abscissae; a repeated wavelength maps to a
	// repeated frequency after the sort.
	for i := 1; i < len(freqs); i++ {
		if freqs[i] == freqs[i-1] {
			return nil, nil, nil, ErrRepeatedWavelength
		}
	}

	fluxJy = make([]float64, len(inds))
	resp = make([]float64, len(inds))
	for i, idx := range inds {
		fluxJy[i] = jy[idx]
		resp[i] = f.responseAt(ang[idx])
	}

	return fluxJy, freqs, resp, nil
}
