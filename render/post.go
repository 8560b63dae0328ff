/*
 * post.go, part of goPTable.
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

//The post-processing passes below run after Plotter and before any writer.
//Each is idempotent, and apart from the adaptive text pass needing the
//final fill colors they do not care about their order.

import (
	"math"
	"strings"
)

//ApplyExcludedBorders gives every excluded element a black border and
//makes the border of every other cell invisible. The pass covers all
//cells uniformly.
func ApplyExcludedBorders(fig *Figure, excluded []string) {
	if len(excluded) == 0 {
		return
	}
	set := make(map[string]bool, len(excluded))
	for _, sym := range excluded {
		set[sym] = true
	}
	for i := range fig.Cells {
		fig.Cells[i].Line = "#000000"
		fig.Cells[i].LineW = 1.25
		if set[fig.Cells[i].Symbol] {
			fig.Cells[i].LineA = 1.0
		} else {
			fig.Cells[i].LineA = 0.0
		}
	}
}

//ApplyAdaptiveTextColors picks black or white text for every cell from the
//perceptual luminance of its fill, unless forceBlack is set, in which case
//every label is black and no luminance is computed.
func ApplyAdaptiveTextColors(fig *Figure, forceBlack bool) {
	for i := range fig.Cells {
		if forceBlack {
			fig.Cells[i].Text = "#000000"
			continue
		}
		fig.Cells[i].Text = textColorForFill(fig.Cells[i].Fill)
	}
}

//textColorForFill returns white for dark fills and black for light ones.
//Anything that does not parse as a hex color gets black text.
func textColorForFill(hex string) string {
	c, err := parseHexColor(hex)
	if err != nil {
		return "#000000"
	}
	lin := func(x float64) float64 {
		if x <= 0.04045 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	luminance := 0.2126*lin(float64(c.R)/255.0) +
		0.7152*lin(float64(c.G)/255.0) +
		0.0722*lin(float64(c.B)/255.0)
	if luminance < 0.45 {
		return "#FFFFFF"
	}
	return "#000000"
}

//ApplyColorbarTitleStyle fixes the colorbar title at 16 points, upright.
func ApplyColorbarTitleStyle(fig *Figure) {
	fig.Colorbar.FontSize = 16
	fig.Colorbar.Italic = false
}

//HideNaNLabels blanks any in-cell label that reads "nan" (in any case), so
//elements without data render an empty tile instead of the word.
func HideNaNLabels(fig *Figure) {
	for i := range fig.Cells {
		if strings.ToLower(strings.TrimSpace(fig.Cells[i].Label)) == "nan" {
			fig.Cells[i].Label = ""
		}
	}
}
