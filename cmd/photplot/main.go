// Command photplot renders the response curves of a bundled filter catalog
// to an HTML line chart.
package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/cwbudde/algo-photom/catalog"
	"github.com/cwbudde/algo-photom/unit"
)

const gridPoints = 600

func main() {
	var catalogName string
	var outFile string

	app := &cli.App{
		Name:                 "photplot",
		Usage:                "Render filter response curves to an HTML chart",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "catalog",
				Aliases:     []string{"c"},
				Usage:       "Catalog to render (sdss, des)",
				Value:       "sdss",
				Destination: &catalogName,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output HTML file",
				Value:       "filters.html",
				Destination: &outFile,
			},
		},
		Action: func(cCtx *cli.Context) error {
			return render(catalogName, outFile)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func render(catalogName, outFile string) error {
	c, err := catalog.ParseCatalog(catalogName)
	if err != nil {
		return err
	}

	set, err := catalog.Load(c)
	if err != nil {
		return err
	}
	log.Infof("loaded %s with %d filters", set.Name(), set.Len())

	// Common wavelength axis spanning all member filters.
	lo, hi := span(set.Filters()[0].Wave())
	for _, f := range set.Filters()[1:] {
		flo, fhi := span(f.Wave())
		if flo < lo {
			lo = flo
		}
		if fhi > hi {
			hi = fhi
		}
	}

	grid := make([]float64, gridPoints)
	labels := make([]string, gridPoints)
	for i := range grid {
		grid[i] = lo + (hi-lo)*float64(i)/float64(gridPoints-1)
		labels[i] = fmt.Sprintf("%.0f", grid[i])
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    set.Name() + " filter response curves",
		Subtitle: "wavelength in angstroms",
	}))
	line.SetXAxis(labels)

	for _, f := range set.Filters() {
		samples, err := f.Resample(unit.Angstroms(grid))
		if err != nil {
			return err
		}

		data := make([]opts.LineData, len(samples))
		for i, v := range samples {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(f.Name(), data)
		log.Debugf("added series %s (center %.0f Å)", f.Name(), f.Center())
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outFile, err)
	}
	defer out.Close()

	if err := line.Render(out); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	log.Infof("wrote %s", outFile)

	return nil
}

func span(wave []float64) (lo, hi float64) {
	return wave[0], wave[len(wave)-1]
}
