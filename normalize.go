/*
 * normalize.go, part of goPTable.
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
	"strconv"
	"strings"
)

//NormalizeSymbol trims the given text and brings it to the canonical
//element-symbol capitalization (first letter upper, rest lower). It returns
//an error if the text is empty or, after normalization, is not a valid
//element symbol.
func NormalizeSymbol(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", errorf("Element symbol cannot be empty")
	}
	normalized := strings.ToUpper(cleaned[:1]) + strings.ToLower(cleaned[1:])
	if _, ok := symbolZ[normalized]; !ok {
		return "", errorf("Invalid element symbol: %s", raw)
	}
	return normalized, nil
}

//ParseExclusions normalizes a list of element-symbol tokens into an
//exclusion list. Each token may itself be a comma-separated list, so both
//"-exclude-elements H,O" and repeated flags work. Duplicates are removed
//keeping the first-seen order. An invalid symbol anywhere is an error.
func ParseExclusions(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	parsed := make([]string, 0, len(raw))
	seen := make(map[string]bool)
	for _, r := range raw {
		for _, token := range strings.Split(r, ",") {
			if strings.TrimSpace(token) == "" {
				continue
			}
			sym, err := NormalizeSymbol(token)
			if err != nil {
				return nil, err
			}
			if seen[sym] {
				continue
			}
			seen[sym] = true
			parsed = append(parsed, sym)
		}
	}
	return parsed, nil
}

//FrameSelector selects which frames of a trajectory are counted: either
//every frame, or exactly one frame by index. Negative indices count from
//the end of the trajectory.
type FrameSelector struct {
	All   bool
	Index int
}

//ParseFrameSelector parses the text of the -frame flag: the literal "all"
//(case-insensitive) or an integer.
func ParseFrameSelector(text string) (FrameSelector, error) {
	if strings.ToLower(strings.TrimSpace(text)) == "all" {
		return FrameSelector{All: true}, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return FrameSelector{}, errorf("-frame must be an integer or 'all'")
	}
	return FrameSelector{Index: i}, nil
}

//ValidateModes checks the visualization-mode flags for compatibility. It
//must be called before any input is read.
func ValidateModes(fraction, logFraction, logScale bool) error {
	if logFraction && !fraction {
		return errorf("-log-fraction requires -fraction")
	}
	if logFraction && logScale {
		return errorf("-log-fraction cannot be combined with -log-scale. Use one log transform at a time")
	}
	return nil
}

//ValidateColorRange checks the colorbar bounds. Either bound may be NaN,
//meaning "use the data min/max"; if both are given, min must be strictly
//smaller than max.
func ValidateColorRange(cmin, cmax float64) error {
	if !math.IsNaN(cmin) && !math.IsNaN(cmax) && cmin >= cmax {
		return errorf("-color-min must be smaller than -color-max")
	}
	return nil
}
