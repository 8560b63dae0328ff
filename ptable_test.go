/*
 * ptable_test.go, part of goPTable.
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
	"strings"
	"testing"
)

func TestAtomicData(Te *testing.T) {
	elems := Elements()
	if len(elems) != 118 {
		Te.Errorf("expected 118 elements, got %d", len(elems))
	}
	if elems[0] != "H" || elems[25] != "Fe" || elems[117] != "Og" {
		Te.Errorf("elements not sorted by atomic number: %s %s %s", elems[0], elems[25], elems[117])
	}
	z, ok := AtomicNumber("U")
	if !ok || z != 92 {
		Te.Errorf("wrong atomic number for U: %d", z)
	}
	if _, ok := AtomicNumber("Xx"); ok {
		Te.Error("Xx should not be an element")
	}
	if ElementName("Fe") != "Iron" {
		Te.Errorf("wrong name for Fe: %s", ElementName("Fe"))
	}
}

func TestNormalizeSymbol(Te *testing.T) {
	for raw, want := range map[string]string{"fe": "Fe", " o ": "O", "NA": "Na", "H": "H"} {
		got, err := NormalizeSymbol(raw)
		if err != nil {
			Te.Error(err)
		}
		if got != want {
			Te.Errorf("NormalizeSymbol(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := NormalizeSymbol("Zz"); err == nil {
		Te.Error("Zz should not normalize")
	}
	if _, err := NormalizeSymbol("  "); err == nil {
		Te.Error("blank symbol should not normalize")
	}
}

func TestParseExclusions(Te *testing.T) {
	got, err := ParseExclusions([]string{"H,o", "fe", "H"})
	if err != nil {
		Te.Error(err)
	}
	want := []string{"H", "O", "Fe"}
	if len(got) != len(want) {
		Te.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("got %v, want %v", got, want)
			break
		}
	}
	if _, err := ParseExclusions([]string{"H,Qq"}); err == nil {
		Te.Error("invalid symbol in exclusion list should fail")
	}
	got, err = ParseExclusions(nil)
	if err != nil || got != nil {
		Te.Errorf("empty exclusion list should parse to nil, got %v (%v)", got, err)
	}
}

func TestParseFrameSelector(Te *testing.T) {
	sel, err := ParseFrameSelector("all")
	if err != nil || !sel.All {
		Te.Errorf("'all' should select all frames: %+v (%v)", sel, err)
	}
	sel, err = ParseFrameSelector("-2")
	if err != nil || sel.All || sel.Index != -2 {
		Te.Errorf("'-2' should select frame -2: %+v (%v)", sel, err)
	}
	if _, err = ParseFrameSelector("first"); err == nil {
		Te.Error("'first' should not parse as a frame selector")
	}
}

func TestValidateModes(Te *testing.T) {
	if err := ValidateModes(true, true, false); err != nil {
		Te.Error(err)
	}
	if err := ValidateModes(false, true, false); err == nil {
		Te.Error("log-fraction without fraction should fail")
	}
	if err := ValidateModes(true, true, true); err == nil {
		Te.Error("log-fraction together with log-scale should fail")
	}
}

func TestValidateColorRange(Te *testing.T) {
	nan := math.NaN()
	if err := ValidateColorRange(nan, nan); err != nil {
		Te.Error(err)
	}
	if err := ValidateColorRange(0, nan); err != nil {
		Te.Error(err)
	}
	if err := ValidateColorRange(0, 1); err != nil {
		Te.Error(err)
	}
	if err := ValidateColorRange(1, 1); err == nil {
		Te.Error("equal bounds should fail")
	}
	if err := ValidateColorRange(2, 1); err == nil {
		Te.Error("inverted bounds should fail")
	}
}

func TestSortedSymbols(Te *testing.T) {
	counts := ElementCount{"O": 2, "Fe": 3, "H": 4}
	got := counts.SortedSymbols()
	want := []string{"H", "O", "Fe"}
	for i := range want {
		if got[i] != want[i] {
			Te.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuildTablesRaw(Te *testing.T) {
	tab, exp, err := BuildTables(ElementCount{"H": 10, "O": 2}, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if tab.Column != ColCount || tab.Label != LabelCount || tab.Decimals != 0 {
		Te.Errorf("wrong raw-mode table metadata: %+v", tab)
	}
	if tab.Symbols[0] != "H" || tab.Values[0] != 10 || tab.Symbols[1] != "O" || tab.Values[1] != 2 {
		Te.Errorf("wrong raw-mode table contents: %v %v", tab.Symbols, tab.Values)
	}
	if exp.Fractions != nil || exp.LogFractions != nil {
		Te.Error("raw-mode export should carry no derived columns")
	}
	if h := strings.Join(exp.Header(), ","); h != "Element,element_count" {
		Te.Errorf("wrong raw-mode header: %s", h)
	}
}

func TestBuildTablesFraction(Te *testing.T) {
	tab, exp, err := BuildTables(ElementCount{"H": 10, "O": 2}, true, false)
	if err != nil {
		Te.Fatal(err)
	}
	if tab.Column != ColFraction || tab.Decimals != 3 {
		Te.Errorf("wrong fraction-mode table metadata: %+v", tab)
	}
	//the max-count element always has fraction exactly 1
	if tab.Values[0] != 1.0 || tab.Values[1] != 0.2 {
		Te.Errorf("wrong fractions: %v", tab.Values)
	}
	if exp.Fractions == nil || exp.LogFractions != nil {
		Te.Error("fraction-mode export should carry fractions only")
	}
}

func TestBuildTablesLogFraction(Te *testing.T) {
	tab, exp, err := BuildTables(ElementCount{"H": 10, "O": 2}, true, true)
	if err != nil {
		Te.Fatal(err)
	}
	if tab.Column != ColLogFraction || tab.Label != LabelLogFraction {
		Te.Errorf("wrong log-fraction-mode table metadata: %+v", tab)
	}
	//the max-count element maps to exactly 0; everything else is negative
	if tab.Values[0] != 0 {
		Te.Errorf("log-fraction of the max-count element is %g, want 0", tab.Values[0])
	}
	if want := math.Log10(0.2); math.Abs(tab.Values[1]-want) > 1e-12 {
		Te.Errorf("log-fraction of O is %g, want %g", tab.Values[1], want)
	}
	if h := strings.Join(exp.Header(), ","); h != "Element,element_count,element_fraction,element_fraction_log10" {
		Te.Errorf("wrong log-fraction-mode header: %s", h)
	}
	if _, _, err := BuildTables(ElementCount{"H": 1}, false, true); err == nil {
		Te.Error("log-fraction without fraction should fail")
	}
}

func TestBuildTablesZeroCounts(Te *testing.T) {
	if _, _, err := BuildTables(ElementCount{"H": 0}, true, false); err == nil {
		Te.Error("fraction mode with a zero max count should fail")
	}
}
