// Command bankinfo prints a summary of an IIR filter-bank configuration file.
//
// Usage:
//
//	bankinfo [flags] bank.json
//
// Without flags it prints one summary row per filter in the bank.
//
// Examples:
//
//	bankinfo bank.json
//	bankinfo -class 2 bank.json
//	bankinfo -class 2 -filter 5 -coeffs bank.json
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-veckernel/iirbank"
)

func main() {
	class := flag.Int("class", -1, "restrict output to one order class")
	filter := flag.Int("filter", -1, "restrict output to one filter index (requires -class)")
	coeffs := flag.Bool("coeffs", false, "dump dequantized coefficients per section")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bankinfo [flags] bank.json\n\n")
		fmt.Fprintf(os.Stderr, "Prints a summary of an IIR filter-bank configuration file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bankinfo bank.json\n")
		fmt.Fprintf(os.Stderr, "  bankinfo -class 2 bank.json\n")
		fmt.Fprintf(os.Stderr, "  bankinfo -class 2 -filter 5 -coeffs bank.json\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	bank, err := iirbank.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *filter >= 0 && *class < 0 {
		fmt.Fprintf(os.Stderr, "error: -filter requires -class\n")
		os.Exit(1)
	}

	rows, err := selectFilters(bank, *class, *filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(rows)

	if *coeffs {
		for _, r := range rows {
			printCoeffs(r)
		}
	}
}

type filterRow struct {
	class  int
	index  int
	filter *iirbank.Filter
}

func selectFilters(bank *iirbank.Bank, class, filter int) ([]filterRow, error) {
	if class >= 0 {
		if filter >= 0 {
			f, err := bank.Filter(class, filter)
			if err != nil {
				return nil, err
			}
			return []filterRow{{class, filter, f}}, nil
		}

		c, err := bank.Class(class)
		if err != nil {
			return nil, err
		}

		rows := make([]filterRow, len(c.Filters))
		for fi := range c.Filters {
			rows[fi] = filterRow{class, fi, &c.Filters[fi]}
		}
		return rows, nil
	}

	var rows []filterRow
	for ci := range bank.Classes {
		for fi := range bank.Classes[ci].Filters {
			rows = append(rows, filterRow{ci, fi, &bank.Classes[ci].Filters[fi]})
		}
	}
	return rows, nil
}

func printSummary(rows []filterRow) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Class\tFilter\tSections\tQ\tCoeff Min\tCoeff Max\n")
	fmt.Fprintf(tw, "-----\t------\t--------\t-\t---------\t---------\n")

	for _, r := range rows {
		lo, hi := coeffExtremes(r.filter)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.6g\t%.6g\n",
			r.class, r.index, r.filter.Sections, r.filter.QFactor, lo, hi)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
	}
}

func coeffExtremes(f *iirbank.Filter) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, sc := range f.Dequantize() {
		for _, v := range []float64{sc.B0, sc.B1, sc.B2, sc.A1, sc.A2} {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

func printCoeffs(r filterRow) {
	fmt.Printf("\nclass %d, filter %d (Q%d):\n", r.class, r.index, r.filter.QFactor)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tB0\tB1\tB2\tA1\tA2\n")
	for s, sc := range r.filter.Dequantize() {
		fmt.Fprintf(tw, "%d\t%.9g\t%.9g\t%.9g\t%.9g\t%.9g\n",
			s, sc.B0, sc.B1, sc.B2, sc.A1, sc.A2)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
	}
}
