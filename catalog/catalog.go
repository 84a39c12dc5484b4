// Package catalog bundles named photometric filter catalogs together with
// their on-disk response-curve tables.
//
// Each catalog maps to a fixed set of two-column tables (wavelength in
// angstroms, response fraction) parsed with a catalog-specific column
// separator. The tables ship embedded in the binary; [LoadFS] accepts an
// explicit data root instead.
package catalog

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-photom/phot/passband"
	"github.com/cwbudde/algo-photom/unit"
)

//go:embed data
var dataFS embed.FS

// ErrUnknownCatalog reports a catalog name or value that does not resolve
// to a bundled catalog.
var ErrUnknownCatalog = errors.New("catalog: unknown catalog")

// Catalog identifies a bundled filter catalog.
type Catalog int

const (
	// SDSS is the Sloan Digital Sky Survey ugriz broadband complement,
	// stored as whitespace-separated .dat tables.
	SDSS Catalog = iota

	// DES is the Dark Energy Survey grizY wide-field complement, stored as
	// comma-separated .csv tables.
	DES
)

type catalogSpec struct {
	name    string
	dir     string
	ext     string
	comma   bool // comma-separated columns instead of whitespace
	filters []string
}

var specs = map[Catalog]catalogSpec{
	SDSS: {
		name:    "SDSS",
		dir:     "data/sdss",
		ext:     ".dat",
		filters: []string{"u", "g", "r", "i", "z"},
	},
	DES: {
		name:    "DES",
		dir:     "data/des",
		ext:     ".csv",
		comma:   true,
		filters: []string{"g", "r", "i", "z", "Y"},
	},
}

// String returns the catalog's display name.
func (c Catalog) String() string {
	if s, ok := specs[c]; ok {
		return s.name
	}
	return "Unknown"
}

// Names lists the known catalog names in enumeration order.
func Names() []string {
	return []string{SDSS.String(), DES.String()}
}

// ParseCatalog resolves a catalog by name, case-insensitively. Unknown
// names fail with an error wrapping [ErrUnknownCatalog] and naming the
// request.
func ParseCatalog(name string) (Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sdss":
		return SDSS, nil
	case "des":
		return DES, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownCatalog, name)
	}
}

// Load builds a filter set from the catalog's bundled response tables.
// The set carries the catalog's name; each filter is named after its
// table.
func Load(c Catalog) (*passband.Set, error) {
	return LoadFS(dataFS, c)
}

// LoadFS builds a filter set from response tables under an explicit data
// root laid out like the bundled data directory.
func LoadFS(fsys fs.FS, c Catalog) (*passband.Set, error) {
	spec, ok := specs[c]
	if !ok {
		return nil, fmt.Errorf("%w (%d)", ErrUnknownCatalog, int(c))
	}

	filters := make([]*passband.Filter, 0, len(spec.filters))
	for _, name := range spec.filters {
		path := spec.dir + "/" + name + spec.ext
		wave, resp, err := readTable(fsys, path, spec.comma)
		if err != nil {
			return nil, err
		}
		f, err := passband.New(unit.Angstroms(wave), resp, passband.WithName(name))
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		filters = append(filters, f)
	}

	return passband.NewSet(spec.name, filters...)
}

// readTable parses a two-column numeric table: wavelength in angstroms and
// response fraction. Blank lines and #-comments are skipped.
func readTable(fsys fs.FS, path string, comma bool) (wave, resp []float64, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: opening table: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var cols []string
		if comma {
			cols = strings.Split(line, ",")
		} else {
			cols = strings.Fields(line)
		}
		if len(cols) < 2 {
			return nil, nil, fmt.Errorf("catalog: %s:%d: expected 2 columns, got %d", path, lineNo, len(cols))
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(cols[0]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: %s:%d: %w", path, lineNo, err)
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(cols[1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog: %s:%d: %w", path, lineNo, err)
		}

		wave = append(wave, w)
		resp = append(resp, r)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("catalog: reading table %s: %w", path, err)
	}

	return wave, resp, nil
}
