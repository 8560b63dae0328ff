/*
 * main.go, part of goPTable.
 *
 *
 * Copyright 2025 Lucia Fuentes <lfuentes{at}protonmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//goptable reads an XYZ/EXTXYZ trajectory or a two-column CSV table, tallies
//atoms per element and plots the tally on a periodic-table heatmap.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	ptable "github.com/lfuentes/goptable"
	"github.com/lfuentes/goptable/csvtab"
	"github.com/lfuentes/goptable/render"
	"github.com/lfuentes/goptable/xyz"
)

//listFlag collects the values of a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	frame        string
	unique       bool
	title        string
	saveHTML     string
	saveCSV      string
	dpi          int
	logScale     bool
	exclude      listFlag
	printData    bool
	allBlackText bool
	fraction     bool
	logFraction  bool
	cmap         string
	colorMin     float64
	colorMax     float64
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: goptable [flags] <input> <output>\n\n")
	fmt.Fprintf(os.Stderr, "Reads XYZ/EXTXYZ or CSV data, counts elements, and plots them on a periodic table.\n")
	fmt.Fprintf(os.Stderr, "<input> is a .xyz/.extxyz file (optionally .gz or .zst compressed) or a .csv file\n")
	fmt.Fprintf(os.Stderr, "with Element/element_count columns. <output> is a .png or .html file.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  goptable traj.xyz counts.png\n")
	fmt.Fprintf(os.Stderr, "  goptable -frame 0 -print-data traj.extxyz frame0.html\n")
	fmt.Fprintf(os.Stderr, "  goptable -fraction -log-fraction -cmap viridis counts.csv fractions.png\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	var opts options
	flag.StringVar(&opts.frame, "frame", "all", "frame index for trajectory input (integer, negative counts from the end) or 'all'")
	flag.BoolVar(&opts.unique, "unique-structure", false, "count only the first frame per unique structure_name")
	flag.StringVar(&opts.title, "title", "Element Counts", "plot title")
	flag.StringVar(&opts.saveHTML, "save-html", "", "also save an interactive HTML figure to this path")
	flag.StringVar(&opts.saveCSV, "save-csv", "", "path for the CSV export of element counts (default derived from <output>)")
	flag.IntVar(&opts.dpi, "dpi", 300, "PNG resolution, used to compute the render scale factor")
	flag.BoolVar(&opts.logScale, "log-scale", false, "map raw values to colors on a logarithmic scale")
	flag.Var(&opts.exclude, "exclude-elements", "element symbols to exclude, comma separated; may be repeated")
	flag.BoolVar(&opts.printData, "print-data", false, "print each element's value inside its cell")
	flag.BoolVar(&opts.allBlackText, "all-black-text", false, "render all text in black instead of adapting to the fill color")
	flag.BoolVar(&opts.fraction, "fraction", false, "visualize element fractions (count / max_count)")
	flag.BoolVar(&opts.logFraction, "log-fraction", false, "visualize log10 of the element fraction; requires -fraction")
	flag.StringVar(&opts.cmap, "cmap", "plasma", "colormap name, e.g. plasma, viridis, cividis, inferno")
	flag.Float64Var(&opts.colorMin, "color-min", math.NaN(), "low end of the colorbar range (default: data minimum)")
	flag.Float64Var(&opts.colorMax, "color-max", math.NaN(), "high end of the colorbar range (default: data maximum)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

//defaultCSVPath derives the CSV export path from the figure output path,
//with a suffix reflecting the visualization mode.
func defaultCSVPath(output string, fraction, logFraction bool) string {
	stem := strings.TrimSuffix(output, filepath.Ext(output))
	switch {
	case fraction && logFraction:
		return stem + "_fraction_log.csv"
	case fraction:
		return stem + "_fraction.csv"
	default:
		return stem + "_counts.csv"
	}
}

func run(input, output string, opts options) error {
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("Input file not found: %s", input)
	}
	exclude, err := ptable.ParseExclusions(opts.exclude)
	if err != nil {
		return err
	}
	cmap, err := render.Resolve(opts.cmap)
	if err != nil {
		return err
	}
	if err := ptable.ValidateModes(opts.fraction, opts.logFraction, opts.logScale); err != nil {
		return err
	}
	if err := ptable.ValidateColorRange(opts.colorMin, opts.colorMax); err != nil {
		return err
	}

	var counts ptable.ElementCount
	var total, selected int
	csvInput := strings.ToLower(filepath.Ext(input)) == ".csv"
	if csvInput {
		if opts.unique {
			return fmt.Errorf("-unique-structure can only be used with XYZ/EXTXYZ input")
		}
		if opts.frame != "all" {
			return fmt.Errorf("-frame can only be used with XYZ/EXTXYZ input")
		}
		counts, err = csvtab.ElementCounts(input, exclude)
		if err != nil {
			return err
		}
	} else {
		sel, err2 := ptable.ParseFrameSelector(opts.frame)
		if err2 != nil {
			return err2
		}
		counts, total, selected, err = xyz.ElementCounts(input, sel, opts.unique, exclude)
		if err != nil {
			return err
		}
	}

	tab, exp, err := ptable.BuildTables(counts, opts.fraction, opts.logFraction)
	if err != nil {
		return err
	}

	csvPath := opts.saveCSV
	if csvPath == "" {
		csvPath = defaultCSVPath(output, opts.fraction, opts.logFraction)
	}
	if err := csvtab.WriteExport(csvPath, exp); err != nil {
		return err
	}

	ropts := render.DefaultExportOptions()
	ropts.Title = opts.title
	ropts.Cmap = cmap
	ropts.LogScale = opts.logScale
	ropts.Exclude = exclude
	ropts.PrintData = opts.printData
	ropts.AllBlackText = opts.allBlackText
	ropts.ColorMin = opts.colorMin
	ropts.ColorMax = opts.colorMax
	ropts.DPI = opts.dpi
	if err := render.Export(tab, output, ropts); err != nil {
		return err
	}
	if opts.saveHTML != "" {
		if err := render.Export(tab, opts.saveHTML, ropts); err != nil {
			return err
		}
	}

	switch {
	case opts.unique:
		fmt.Printf("Frames counted: %d/%d (unique structure_name)\n", selected, total)
	case !csvInput:
		fmt.Printf("Frames counted: %d/%d\n", selected, total)
	default:
		fmt.Println("Frames counted: N/A (CSV input)")
	}
	if csvInput {
		fmt.Println("Total frames in input: N/A (CSV input)")
	} else {
		fmt.Printf("Total frames in input: %d\n", total)
	}
	if opts.logFraction {
		fmt.Println("Visualization mode: log(Element fraction) (Element fraction = count / max_count)")
	} else if opts.fraction {
		fmt.Println("Visualization mode: Element fraction (count / max_count)")
	}
	if len(exclude) > 0 {
		fmt.Printf("Excluded elements (white + black border): %s\n", strings.Join(exclude, ", "))
	}
	fmt.Println("Element counts:")
	for _, sym := range counts.SortedSymbols() {
		fmt.Printf("  %s: %d\n", sym, counts[sym])
	}
	fmt.Printf("Saved: %s\n", output)
	if opts.saveHTML != "" {
		fmt.Printf("Saved: %s\n", opts.saveHTML)
	}
	fmt.Printf("Saved: %s\n", csvPath)
	return nil
}
