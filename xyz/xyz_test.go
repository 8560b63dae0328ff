/*
 * xyz_test.go, part of goPTable.
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

package xyz

import (
	"strings"
	"testing"

	ptable "github.com/lfuentes/goptable"
)

//TestXYZRead tests that multi-frame XYZ files are opened and read
//correctly, including the per-atom symbols and coordinates.
func TestXYZRead(Te *testing.T) {
	frames, err := ReadAll("../test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 2 {
		Te.Fatalf("expected 2 frames, got %d", len(frames))
	}
	F := frames[0]
	if F.Len() != 3 {
		Te.Errorf("expected 3 atoms in the first frame, got %d", F.Len())
	}
	if F.Symbols[0] != "O" || F.Symbols[1] != "H" {
		Te.Errorf("wrong symbols: %v", F.Symbols)
	}
	if x := F.Coords.At(1, 0); x != 0.757 {
		Te.Errorf("wrong x coordinate for the first H: %g", x)
	}
}

//TestTrailingBlankLine tests that a blank line after the last frame ends
//the trajectory instead of failing as a malformed atom-count line.
func TestTrailingBlankLine(Te *testing.T) {
	frames, err := ReadAll("../test/trailing.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 2 {
		Te.Errorf("expected 2 frames, got %d", len(frames))
	}
}

func TestGzipRead(Te *testing.T) {
	frames, err := ReadAll("../test/sample.xyz.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 2 || frames[0].Len() != 3 {
		Te.Errorf("gzip read gave %d frames", len(frames))
	}
}

func TestZstdRead(Te *testing.T) {
	frames, err := ReadAll("../test/sample.xyz.zst")
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 2 || frames[0].Len() != 3 {
		Te.Errorf("zstd read gave %d frames", len(frames))
	}
	if frames[1].Symbols[0] != "O" {
		Te.Errorf("wrong symbols after decompression: %v", frames[1].Symbols)
	}
}

//TestInfoParsing tests the EXTXYZ comment-line metadata, including
//double-quoted values with spaces.
func TestInfoParsing(Te *testing.T) {
	frames, err := ReadAll("../test/traj.extxyz")
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 5 {
		Te.Fatalf("expected 5 frames, got %d", len(frames))
	}
	if name := frames[0].StructureName(); name != "rocksalt-a" {
		Te.Errorf("wrong structure name for frame 0: %q", name)
	}
	if name := frames[3].StructureName(); name != "rutile tio2" {
		Te.Errorf("quoted structure name parsed wrong: %q", name)
	}
	if lat := frames[1].Info["Lattice"]; !strings.HasPrefix(lat, "5.0") {
		Te.Errorf("wrong lattice metadata for frame 1: %q", lat)
	}
}

func TestElementCountsAll(Te *testing.T) {
	counts, total, counted, err := ElementCounts("../test/sample.xyz", ptable.FrameSelector{All: true}, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if total != 2 || counted != 2 {
		Te.Errorf("expected 2/2 frames, got %d/%d", counted, total)
	}
	if counts["H"] != 4 || counts["O"] != 2 || len(counts) != 2 {
		Te.Errorf("wrong counts: %v", counts)
	}
}

func TestFrameSelection(Te *testing.T) {
	counts, total, counted, err := ElementCounts("../test/traj.extxyz", ptable.FrameSelector{Index: 0}, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if total != 5 || counted != 1 {
		Te.Errorf("expected 1/5 frames, got %d/%d", counted, total)
	}
	if counts["Na"] != 1 || counts["Cl"] != 1 || len(counts) != 2 {
		Te.Errorf("wrong counts for frame 0: %v", counts)
	}
	//negative indices count from the end
	counts, _, _, err = ElementCounts("../test/traj.extxyz", ptable.FrameSelector{Index: -1}, false, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if counts["Fe"] != 1 || len(counts) != 1 {
		Te.Errorf("wrong counts for frame -1: %v", counts)
	}
	_, _, _, err = ElementCounts("../test/traj.extxyz", ptable.FrameSelector{Index: 7}, false, nil)
	if err == nil {
		Te.Error("out-of-range frame index should fail")
	}
}

func TestUniqueStructure(Te *testing.T) {
	counts, total, counted, err := ElementCounts("../test/traj.extxyz", ptable.FrameSelector{All: true}, true, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if total != 5 || counted != 3 {
		Te.Errorf("expected 3/5 unique frames, got %d/%d", counted, total)
	}
	want := ptable.ElementCount{"Na": 1, "Cl": 1, "Fe": 1, "Ti": 1, "O": 2}
	for sym, n := range want {
		if counts[sym] != n {
			Te.Errorf("wrong unique counts: %v, want %v", counts, want)
			break
		}
	}
}

func TestUniqueMissingName(Te *testing.T) {
	_, _, _, err := ElementCounts("../test/noname.extxyz", ptable.FrameSelector{All: true}, true, nil)
	if err == nil {
		Te.Fatal("frames without structure_name should fail in unique mode")
	}
	if !strings.Contains(err.Error(), "frame indices: 0, 2") {
		Te.Errorf("error should list the offending frame indices: %s", err.Error())
	}
}

func TestExclusion(Te *testing.T) {
	counts, _, _, err := ElementCounts("../test/sample.xyz", ptable.FrameSelector{All: true}, false, []string{"H"})
	if err != nil {
		Te.Fatal(err)
	}
	if counts["O"] != 2 || len(counts) != 1 {
		Te.Errorf("wrong counts with H excluded: %v", counts)
	}
	_, _, _, err = ElementCounts("../test/sample.xyz", ptable.FrameSelector{All: true}, false, []string{"H", "O"})
	if err == nil {
		Te.Fatal("excluding every element present should fail")
	}
	if !strings.Contains(err.Error(), "No atoms left after excluding elements (H, O)") {
		Te.Errorf("wrong empty-after-exclusion error: %s", err.Error())
	}
}
