/*
 * render.go, part of goPTable.
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

/*Package render turns a plot table into a periodic-table heatmap figure
and exports it as a rasterized PNG or a standalone interactive HTML page.
The figure is built by Plotter, adjusted by a set of idempotent
post-processing passes (excluded-element borders, adaptive text colors,
colorbar title style, NaN-label suppression) and then handed to one of the
writers.*/
package render

import (
	"math"
	"path/filepath"
	"strings"

	ptable "github.com/lfuentes/goptable"
	"gonum.org/v1/plot/palette"
)

//ExportOptions configures Export. The zero value is not useful: Cmap is
//mandatory and the color bounds must be NaN (not zero) to mean
//"data-driven"; use DefaultExportOptions as the starting point.
type ExportOptions struct {
	Title        string
	Cmap         palette.ColorMap
	LogScale     bool
	Exclude      []string
	PrintData    bool
	AllBlackText bool
	ColorMin     float64
	ColorMax     float64
	DPI          int
	PNG          PNGOptions
}

//DefaultExportOptions returns the option defaults: plasma colormap, data
//driven color range, 300 dpi.
func DefaultExportOptions() ExportOptions {
	cmap, _ := Resolve("plasma") //a builtin, can't fail
	return ExportOptions{
		Title:    "Element Counts",
		Cmap:     cmap,
		ColorMin: math.NaN(),
		ColorMax: math.NaN(),
		DPI:      300,
	}
}

//Export renders the plot table to the file with the given path. The
//extension picks the writer: .html for the standalone page, .png for the
//headless-browser rasterization; anything else is an error. The figure is
//identical for both writers.
func Export(tab *ptable.Table, path string, opts ExportOptions) error {
	var writer func(*Figure) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html":
		writer = func(fig *Figure) error { return WriteHTML(fig, path) }
	case ".png":
		writer = func(fig *Figure) error { return WritePNG(fig, path, opts.DPI, opts.PNG) }
	default:
		return errorf("Output extension must be .png or .html")
	}
	fig, err := Plotter(tab, Options{
		Cmap:      opts.Cmap,
		LogScale:  opts.LogScale,
		PrintData: opts.PrintData,
		Decimals:  tab.Decimals,
		ColorMin:  opts.ColorMin,
		ColorMax:  opts.ColorMax,
		Special:   opts.Exclude,
		Title:     opts.Title,
		CbarTitle: tab.Label,
	})
	if err != nil {
		return errDecorate(err, "Export")
	}
	ApplyExcludedBorders(fig, opts.Exclude)
	ApplyAdaptiveTextColors(fig, opts.AllBlackText)
	ApplyColorbarTitleStyle(fig)
	HideNaNLabels(fig)
	return writer(fig)
}
