/*
 * figure.go, part of goPTable.
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

package render

import (
	"fmt"
	"math"
	"strconv"

	ptable "github.com/lfuentes/goptable"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/palette"
)

//blankColor fills elements that carry no data, specialColor the excluded
//ones (which additionally get a black border in post-processing).
const (
	blankColor   = "#c4c4c4"
	specialColor = "#FFFFFF"
)

//Cell is one element tile of the figure. The color and text fields are
//deliberately plain strings (hex colors), so the post-processing passes
//can inspect and rewrite them the same way the HTML writer reads them.
type Cell struct {
	Symbol  string
	Z       int
	Name    string
	Row     int
	Col     int
	Value   float64 //NaN when the element carries no data
	HasData bool
	Fill    string  //hex fill color
	Text    string  //hex text color for the symbol and data label
	Line    string  //hex border color
	LineA   float64 //border opacity, 0 = invisible
	LineW   float64 //border width, points
	Label   string  //in-cell value label; empty unless requested
}

//Tick is one labeled position on the colorbar, with Pos in [0,1] from the
//low end.
type Tick struct {
	Pos   float64
	Label string
}

//Colorbar is the colorbar of a figure: a sampled gradient plus ticks.
type Colorbar struct {
	Title    string
	FontSize float64 //title font size, points
	Italic   bool
	Stops    []string //hex colors sampled low to high
	Ticks    []Tick
	Min, Max float64
	LogScale bool
}

//Figure is the renderable periodic-table heatmap. It is what the writers
//(HTML, PNG) consume and what the post-processing passes operate on.
type Figure struct {
	Title    string
	Cells    []Cell
	Colorbar Colorbar
}

//Options configures Plotter.
type Options struct {
	Cmap      palette.ColorMap
	LogScale  bool    //map values to colors on a log10 scale
	PrintData bool    //write the value of each element inside its cell
	Decimals  int     //precision of value labels
	ColorMin  float64 //low end of the color range; NaN = data minimum
	ColorMax  float64 //high end of the color range; NaN = data maximum
	Special   []string
	Title     string
	CbarTitle string
}

//Plotter builds the figure for a plot table: one cell per element of the
//periodic table, with the cells present in the table color-mapped by value
//over [ColorMin, ColorMax]. Elements in Special are filled white and carry
//no value. Values outside the color range are clamped to its ends.
func Plotter(tab *ptable.Table, opts Options) (*Figure, error) {
	if opts.Cmap == nil {
		return nil, errorf("Plotter needs a colormap")
	}
	if len(tab.Symbols) == 0 {
		return nil, errorf("Plotter given an empty table")
	}
	cmin, cmax := opts.ColorMin, opts.ColorMax
	if math.IsNaN(cmin) {
		cmin = floats.Min(tab.Values)
	}
	if math.IsNaN(cmax) {
		cmax = floats.Max(tab.Values)
	}
	if cmin > cmax {
		return nil, errorf("-color-min must be smaller than -color-max")
	}
	if opts.LogScale && cmin <= 0 {
		return nil, errorf("-log-scale requires a positive color range (minimum is %g)", cmin)
	}
	scale := func(v float64) float64 { return v }
	lo, hi := cmin, cmax
	if opts.LogScale {
		scale = math.Log10
		lo, hi = math.Log10(cmin), math.Log10(cmax)
	}
	if lo == hi { //a single distinct value still needs a nonempty range
		hi = lo + 1
	}
	opts.Cmap.SetMin(lo)
	opts.Cmap.SetMax(hi)

	values := make(map[string]float64, len(tab.Symbols))
	for i, sym := range tab.Symbols {
		values[sym] = tab.Values[i]
	}
	special := make(map[string]bool, len(opts.Special))
	for _, sym := range opts.Special {
		special[sym] = true
	}

	fig := &Figure{Title: opts.Title}
	for _, sym := range ptable.Elements() {
		z, _ := ptable.AtomicNumber(sym)
		row, col := gridPos(z)
		cell := Cell{
			Symbol: sym,
			Z:      z,
			Name:   ptable.ElementName(sym),
			Row:    row,
			Col:    col,
			Value:  math.NaN(),
			Fill:   blankColor,
			Text:   "#000000",
			Line:   "#000000",
		}
		switch v, ok := values[sym]; {
		case special[sym]:
			cell.Fill = specialColor
		case ok:
			cell.Value = v
			cell.HasData = true
			clamped := math.Min(math.Max(scale(v), lo), hi)
			c, err := opts.Cmap.At(clamped)
			if err != nil {
				return nil, errorf("can't map value %g of element %s to a color: %s", v, sym, err.Error())
			}
			cell.Fill = colorToHex(c)
		}
		if opts.PrintData {
			cell.Label = formatValue(cell.Value, opts.Decimals)
		}
		fig.Cells = append(fig.Cells, cell)
	}

	fig.Colorbar = Colorbar{
		Title:    opts.CbarTitle,
		FontSize: 13, //the title-style pass bumps this to 16
		Min:      cmin,
		Max:      cmax,
		LogScale: opts.LogScale,
	}
	const nstops = 32
	for i := 0; i <= nstops; i++ {
		c, err := opts.Cmap.At(lo + (hi-lo)*float64(i)/nstops)
		if err != nil {
			return nil, errorf("can't sample the colorbar gradient: %s", err.Error())
		}
		fig.Colorbar.Stops = append(fig.Colorbar.Stops, colorToHex(c))
	}
	const nticks = 5
	for i := 0; i < nticks; i++ {
		pos := float64(i) / (nticks - 1)
		v := lo + (hi-lo)*pos
		if opts.LogScale {
			v = math.Pow(10, v)
		}
		label := formatValue(v, opts.Decimals)
		if opts.Decimals <= 0 && !math.IsNaN(v) {
			//interior ticks of a custom color range need not be integers
			label = fmt.Sprintf("%.0f", v)
		}
		fig.Colorbar.Ticks = append(fig.Colorbar.Ticks, Tick{Pos: pos, Label: label})
	}
	return fig, nil
}

//formatValue renders a value the way the cell labels expect: integers for
//zero decimals, fixed point otherwise. NaN renders as "nan" so that the
//label-suppression pass can blank it.
func formatValue(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "nan"
	}
	if decimals <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
