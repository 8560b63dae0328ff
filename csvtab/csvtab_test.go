/*
 * csvtab_test.go, part of goPTable.
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

package csvtab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ptable "github.com/lfuentes/goptable"
)

//TestNamedColumns tests ingestion with the named-column schema: duplicate
//symbols are summed and rows with a missing symbol are dropped.
func TestNamedColumns(Te *testing.T) {
	counts, err := ElementCounts("../test/counts.csv", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if counts["Fe"] != 15 || counts["O"] != 2 || counts["Ni"] != 1 || len(counts) != 3 {
		Te.Errorf("wrong counts: %v", counts)
	}
}

//TestPositionalColumns tests the fallback schema: no Element/element_count
//header, so the first two columns are used and symbols are normalized.
func TestPositionalColumns(Te *testing.T) {
	counts, err := ElementCounts("../test/positional.csv", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if counts["H"] != 4 || counts["O"] != 2 || len(counts) != 2 {
		Te.Errorf("wrong counts: %v", counts)
	}
}

func writeTemp(Te *testing.T, content string) string {
	Te.Helper()
	name := filepath.Join(Te.TempDir(), "in.csv")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestBadCounts(Te *testing.T) {
	for _, c := range []struct{ content, want string }{
		{"Element,element_count\nH,ten\n", "non-numeric count"},
		{"Element,element_count\nH,-3\n", "negative counts"},
		{"Element,element_count\nH,2.5\n", "non-integer counts"},
		{"Element,element_count\n", "no valid Element/count rows"},
		{"Element,element_count\nQq,1\n", "Invalid element symbol"},
	} {
		_, err := ElementCounts(writeTemp(Te, c.content), nil)
		if err == nil {
			Te.Errorf("input %q should fail", c.content)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			Te.Errorf("input %q gave %q, want it to mention %q", c.content, err.Error(), c.want)
		}
	}
}

func TestExclusion(Te *testing.T) {
	counts, err := ElementCounts("../test/counts.csv", []string{"Fe"})
	if err != nil {
		Te.Fatal(err)
	}
	if counts["O"] != 2 || counts["Ni"] != 1 || len(counts) != 2 {
		Te.Errorf("wrong counts with Fe excluded: %v", counts)
	}
	_, err = ElementCounts("../test/counts.csv", []string{"O", "Fe", "Ni"})
	if err == nil {
		Te.Fatal("excluding every element present should fail")
	}
	if !strings.Contains(err.Error(), "No counts left after excluding elements (O, Fe, Ni)") {
		Te.Errorf("wrong empty-after-exclusion error: %s", err.Error())
	}
}

//TestRoundTrip exports raw-mode counts and reads them back through the CSV
//ingestion path, which must reproduce the original map exactly.
func TestRoundTrip(Te *testing.T) {
	counts := ptable.ElementCount{"H": 4, "O": 2, "Fe": 7}
	_, exp, err := ptable.BuildTables(counts, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "out.csv")
	if err := WriteExport(name, exp); err != nil {
		Te.Fatal(err)
	}
	back, err := ElementCounts(name, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(back) != len(counts) {
		Te.Fatalf("round trip changed the counts: %v vs %v", back, counts)
	}
	for sym, n := range counts {
		if back[sym] != n {
			Te.Errorf("round trip changed %s: %d vs %d", sym, back[sym], n)
		}
	}
}

//TestExportColumns checks the derived-mode CSV layout against the header.
func TestExportColumns(Te *testing.T) {
	_, exp, err := ptable.BuildTables(ptable.ElementCount{"H": 10, "O": 2}, true, true)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "out.csv")
	if err := WriteExport(name, exp); err != nil {
		Te.Fatal(err)
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if lines[0] != "Element,element_count,element_fraction,element_fraction_log10" {
		Te.Errorf("wrong header: %s", lines[0])
	}
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "H,10,1,0") {
		Te.Errorf("wrong rows: %v", lines[1:])
	}
}
