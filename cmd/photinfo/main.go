// Command photinfo prints summary statistics of bundled filter catalogs.
//
// Usage:
//
//	photinfo [flags] [catalog-name ...]
//
// Without arguments it prints info for all bundled catalogs.
//
// Examples:
//
//	photinfo sdss
//	photinfo sdss des
//	photinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-photom/catalog"
)

func main() {
	list := flag.Bool("list", false, "list available catalog names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: photinfo [flags] [catalog-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints center, width and normalization of bundled filter catalogs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all catalogs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  photinfo sdss\n")
		fmt.Fprintf(os.Stderr, "  photinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = catalog.Names()
	}

	cats := resolveCatalogs(names)
	if len(cats) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching catalogs\n")
		os.Exit(1)
	}

	printCatalogs(cats)
}

func resolveCatalogs(names []string) []catalog.Catalog {
	var result []catalog.Catalog
	for _, name := range names {
		c, err := catalog.ParseCatalog(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}
		result = append(result, c)
	}
	return result
}

func printCatalogs(cats []catalog.Catalog) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Catalog\tFilter\tCenter [Å]\tWidth [Å]\tNorm [Å]\tPoints\n")
	fmt.Fprintf(tw, "-------\t------\t----------\t---------\t--------\t------\n")

	for _, c := range cats {
		set, err := catalog.Load(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: loading %s: %v\n", c, err)
			os.Exit(1)
		}

		for _, f := range set.Filters() {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%d\n",
				set.Name(),
				f.Name(),
				f.Center(),
				f.Width(),
				f.Norm(),
				len(f.Wave()),
			)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
