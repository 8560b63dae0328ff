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

package xyz

import (
	"fmt"
	"sort"
	"strings"

	ptable "github.com/lfuentes/goptable"
)

//uniqueFrames deduplicates frames by their structure_name metadata entry,
//keeping only the first frame per distinct name. A frame with a missing or
//empty structure_name is a hard failure; the error lists the offending
//frame indices, up to 10 of them.
func uniqueFrames(frames []*Frame, filename string) ([]*Frame, error) {
	seen := make(map[string]bool)
	unique := make([]*Frame, 0, len(frames))
	var missing []int
	for i, F := range frames {
		name := F.StructureName()
		if name == "" {
			missing = append(missing, i)
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, F)
	}
	if len(missing) > 0 {
		preview := make([]string, 0, 10)
		for _, idx := range missing {
			if len(preview) == 10 {
				break
			}
			preview = append(preview, fmt.Sprintf("%d", idx))
		}
		suffix := ""
		if len(missing) > 10 {
			suffix = " ..."
		}
		msg := fmt.Sprintf("-unique-structure requires a non-empty structure_name in every frame. Missing at frame indices: %s%s",
			strings.Join(preview, ", "), suffix)
		return nil, Error{msg, filename, []string{"uniqueFrames"}, true}
	}
	return unique, nil
}

//byAtomicNumber sorts the given symbols by atomic number, in place, for
//stable error messages.
func byAtomicNumber(syms []string) []string {
	sort.Slice(syms, func(i, j int) bool {
		zi, _ := ptable.AtomicNumber(syms[i])
		zj, _ := ptable.AtomicNumber(syms[j])
		return zi < zj
	})
	return syms
}

//ElementCounts reads the file with the given name and tallies how many
//atoms of each element appear in the selected frames. With sel selecting
//all frames every frame is counted; otherwise exactly one frame is, with
//negative indices counting from the end. If unique is true and more than
//one frame was selected, only the first frame per distinct structure_name
//is counted. Atoms whose symbol is in exclude are skipped. It returns the
//counts, the total number of frames in the file, and the number of frames
//actually counted.
func ElementCounts(name string, sel ptable.FrameSelector, unique bool, exclude []string) (ptable.ElementCount, int, int, error) {
	frames, err := ReadAll(name)
	if err != nil {
		return nil, 0, 0, err
	}
	total := len(frames)
	if total == 0 {
		return nil, 0, 0, Error{fmt.Sprintf("No atoms found in '%s'", name), name, []string{"ElementCounts"}, true}
	}
	if !sel.All {
		idx := sel.Index
		if idx < 0 {
			idx += total
		}
		if idx < 0 || idx >= total {
			return nil, 0, 0, Error{fmt.Sprintf("Frame %d requested, but the trajectory has %d frames", sel.Index, total), name, []string{"ElementCounts"}, true}
		}
		frames = frames[idx : idx+1]
	}
	if unique && len(frames) > 1 {
		frames, err = uniqueFrames(frames, name)
		if err != nil {
			return nil, 0, 0, errDecorate(err, "ElementCounts")
		}
	}
	counted := len(frames)
	excluded := make(map[string]bool, len(exclude))
	for _, sym := range exclude {
		excluded[sym] = true
	}
	counts := make(ptable.ElementCount)
	for _, F := range frames {
		for _, sym := range F.Symbols {
			if excluded[sym] {
				continue
			}
			counts[sym]++
		}
	}
	if len(counts) == 0 {
		if len(exclude) > 0 {
			listed := byAtomicNumber(append([]string{}, exclude...))
			return nil, 0, 0, Error{fmt.Sprintf("No atoms left after excluding elements (%s) in '%s'", strings.Join(listed, ", "), name), name, []string{"ElementCounts"}, true}
		}
		return nil, 0, 0, Error{fmt.Sprintf("No atoms found in '%s'", name), name, []string{"ElementCounts"}, true}
	}
	return counts, total, counted, nil
}
