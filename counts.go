/*
 * counts.go, part of goPTable.
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

package ptable

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

//The value-column names used in the plot and CSV tables, and the
//corresponding colorbar titles.
const (
	ColCount       = "element_count"
	ColFraction    = "element_fraction"
	ColLogFraction = "element_fraction_log10"

	LabelCount       = "Count"
	LabelFraction    = "Element fraction"
	LabelLogFraction = "log(Element fraction)"
)

//ElementCount maps canonical element symbols to atom counts. Elements that
//were never seen are absent, so every count present is at least 1 for data
//coming from a trajectory (CSV input may legitimately carry zeros).
type ElementCount map[string]int

//SortedSymbols returns the symbols present in the count, sorted by atomic
//number. Symbols the periodic table doesn't know (which counting should
//never produce) sort last.
func (c ElementCount) SortedSymbols() []string {
	syms := make([]string, 0, len(c))
	for sym := range c {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		zi, oki := symbolZ[syms[i]]
		zj, okj := symbolZ[syms[j]]
		if !oki {
			zi = 999
		}
		if !okj {
			zj = 999
		}
		if zi == zj {
			return syms[i] < syms[j]
		}
		return zi < zj
	})
	return syms
}

//Table is the two-column table handed to the plotter: one row per element,
//sorted by atomic number, with a single numeric value column.
type Table struct {
	Symbols  []string
	Values   []float64
	Column   string //value-column name, one of the Col* constants
	Label    string //colorbar title for the value column
	Decimals int    //label precision for rendered values
}

//Export is the table written to CSV. It always keeps the raw counts; the
//derived columns are nil unless the corresponding mode was requested.
type Export struct {
	Symbols      []string
	Counts       []int
	Fractions    []float64
	LogFractions []float64
}

//Header returns the CSV header for the export table.
func (e *Export) Header() []string {
	h := []string{"Element", ColCount}
	if e.Fractions != nil {
		h = append(h, ColFraction)
	}
	if e.LogFractions != nil {
		h = append(h, ColLogFraction)
	}
	return h
}

//BuildTables produces the plotting table and the CSV export table for the
//given counts. With both flags false the value column is the raw count.
//fraction normalizes each count by the maximum count, giving values in
//(0,1]; logFraction (which requires fraction) takes the base-10 logarithm
//of those, giving values <= 0. Both derived modes render with 3 decimals,
//raw counts as integers.
func BuildTables(counts ElementCount, fraction, logFraction bool) (*Table, *Export, error) {
	if logFraction && !fraction {
		return nil, nil, errorf("-log-fraction requires -fraction")
	}
	syms := counts.SortedSymbols()
	raw := make([]int, len(syms))
	maxCount := 0
	for i, sym := range syms {
		raw[i] = counts[sym]
		if raw[i] > maxCount {
			maxCount = raw[i]
		}
	}
	if !fraction {
		vals := make([]float64, len(raw))
		for i, v := range raw {
			vals[i] = float64(v)
		}
		tab := &Table{Symbols: syms, Values: vals, Column: ColCount, Label: LabelCount, Decimals: 0}
		exp := &Export{Symbols: syms, Counts: raw}
		return tab, exp, nil
	}
	//CSV input may carry only zero counts, so maxCount can be zero here.
	if maxCount <= 0 {
		return nil, nil, errorf("Cannot compute fractions because max element count is not positive")
	}
	fracs := make([]float64, len(raw))
	for i, v := range raw {
		fracs[i] = float64(v) / float64(maxCount)
	}
	if !logFraction {
		tab := &Table{Symbols: syms, Values: fracs, Column: ColFraction, Label: LabelFraction, Decimals: 3}
		exp := &Export{Symbols: syms, Counts: raw, Fractions: fracs}
		return tab, exp, nil
	}
	if len(fracs) > 0 && floats.Min(fracs) <= 0 {
		return nil, nil, errorf("Cannot compute log-fraction because some element fractions are <= 0")
	}
	logs := make([]float64, len(fracs))
	for i, v := range fracs {
		logs[i] = math.Log10(v)
	}
	tab := &Table{Symbols: syms, Values: logs, Column: ColLogFraction, Label: LabelLogFraction, Decimals: 3}
	exp := &Export{Symbols: syms, Counts: raw, Fractions: fracs, LogFractions: logs}
	return tab, exp, nil
}
