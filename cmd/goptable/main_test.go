/*
 * main_test.go, part of goPTable.
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

package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCSVPath(Te *testing.T) {
	if got := defaultCSVPath("out/figure.png", false, false); got != "out/figure_counts.csv" {
		Te.Errorf("wrong raw-mode CSV path: %s", got)
	}
	if got := defaultCSVPath("figure.html", true, false); got != "figure_fraction.csv" {
		Te.Errorf("wrong fraction-mode CSV path: %s", got)
	}
	if got := defaultCSVPath("figure.png", true, true); got != "figure_fraction_log.csv" {
		Te.Errorf("wrong log-fraction-mode CSV path: %s", got)
	}
}

func testRunOptions() options {
	return options{
		frame:    "all",
		title:    "Element Counts",
		dpi:      300,
		cmap:     "plasma",
		colorMin: math.NaN(),
		colorMax: math.NaN(),
	}
}

//TestRunHTML exercises the whole pipeline with an HTML output, which needs
//no browser.
func TestRunHTML(Te *testing.T) {
	dir := Te.TempDir()
	out := filepath.Join(dir, "figure.html")
	if err := run("../../test/sample.xyz", out, testRunOptions()); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		Te.Error(err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "figure_counts.csv"))
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 3 || lines[0] != "Element,element_count" || lines[1] != "H,4" || lines[2] != "O,2" {
		Te.Errorf("wrong CSV export: %v", lines)
	}
}

func TestRunValidation(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "figure.html")

	opts := testRunOptions()
	if err := run("../../test/missing.xyz", out, opts); err == nil || !strings.Contains(err.Error(), "Input file not found") {
		Te.Errorf("missing input should fail: %v", err)
	}

	opts = testRunOptions()
	opts.logFraction = true
	if err := run("../../test/sample.xyz", out, opts); err == nil || !strings.Contains(err.Error(), "-log-fraction requires -fraction") {
		Te.Errorf("log-fraction without fraction should fail: %v", err)
	}

	opts = testRunOptions()
	opts.frame = "0"
	if err := run("../../test/counts.csv", out, opts); err == nil || !strings.Contains(err.Error(), "-frame can only be used with XYZ/EXTXYZ input") {
		Te.Errorf("frame selection on CSV input should fail: %v", err)
	}

	opts = testRunOptions()
	opts.unique = true
	if err := run("../../test/counts.csv", out, opts); err == nil || !strings.Contains(err.Error(), "-unique-structure can only be used with XYZ/EXTXYZ input") {
		Te.Errorf("unique-structure on CSV input should fail: %v", err)
	}

	opts = testRunOptions()
	opts.cmap = "jet"
	if err := run("../../test/sample.xyz", out, opts); err == nil || !strings.Contains(err.Error(), "Unknown colormap") {
		Te.Errorf("unknown colormap should fail: %v", err)
	}
}
