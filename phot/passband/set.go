package passband

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-photom/unit"
)

// Set is an ordered collection of filters, sorted ascending by center
// wavelength at construction. The sorted position fixes the output
// ordering of every aggregate accessor and of [Set.Flux] and [Set.Mags].
//
// A Set is immutable after [NewSet].
type Set struct {
	name    string
	filters []*Filter
}

// NewSet builds a filter set from at least one filter.
func NewSet(name string, filters ...*Filter) (*Set, error) {
	if len(filters) == 0 {
		return nil, ErrEmptySet
	}

	s := &Set{
		name:    name,
		filters: append([]*Filter(nil), filters...),
	}
	sort.Slice(s.filters, func(i, j int) bool {
		return s.filters[i].center < s.filters[j].center
	})

	return s, nil
}

// Name returns the set's display label.
func (s *Set) Name() string { return s.name }

// Len returns the number of member filters.
func (s *Set) Len() int { return len(s.filters) }

// Filter returns the i-th filter in ascending center order.
func (s *Set) Filter(i int) *Filter { return s.filters[i] }

// Filters returns a copy of the member filter list in ascending center
// order.
func (s *Set) Filters() []*Filter { return append([]*Filter(nil), s.filters...) }

// Centers returns each member's center wavelength in angstroms, in
// ascending order.
func (s *Set) Centers() []float64 {
	out := make([]float64, len(s.filters))
	for i, f := range s.filters {
		out[i] = f.center
	}
	return out
}

// Widths returns each member's width in angstroms, ordered to match
// [Set.Centers].
func (s *Set) Widths() []float64 {
	out := make([]float64, len(s.filters))
	for i, f := range s.filters {
		out[i] = f.width
	}
	return out
}

// Flux applies every member filter to the same spectrum, returning one
// integrated flux (Jy·Hz) per filter in sorted order.
func (s *Set) Flux(wave unit.WaveGrid, flux unit.FluxGrid) ([]float64, error) {
	out := make([]float64, len(s.filters))
	for i, f := range s.filters {
		v, err := f.Flux(wave, flux)
		if err != nil {
			return nil, fmt.Errorf("passband: filter %q: %w", f.name, err)
		}
		out[i] = v
	}
	return out, nil
}

// Mags applies every member filter to the same spectrum, returning one
// magnitude per filter in sorted order.
func (s *Set) Mags(wave unit.WaveGrid, flux unit.FluxGrid) ([]float64, error) {
	out := make([]float64, len(s.filters))
	for i, f := range s.filters {
		v, err := f.Mag(wave, flux)
		if err != nil {
			return nil, fmt.Errorf("passband: filter %q: %w", f.name, err)
		}
		out[i] = v
	}
	return out, nil
}

// String implements fmt.Stringer.
func (s *Set) String() string {
	return fmt.Sprintf("<%s Set, %d filters>", s.name, len(s.filters))
}
