/*
 * html.go, part of goPTable.
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
	"html/template"
	"math"
	"os"
)

//Pixel geometry of the SVG. Cells are laid out on a fixed pitch; the
//colorbar sits to the right of the grid.
const (
	cellSize  = 64.0
	cellPitch = 68.0
	marginX   = 20.0
	gridTop   = 70.0
	cbarWidth = 20.0
	cbarPad   = 40.0
)

type svgCell struct {
	Cell
	X, Y float64
}

type svgStop struct {
	Offset string //percentage, e.g. "25.0%"
	Color  string
}

type svgTick struct {
	Y     float64
	Label string
}

type svgView struct {
	Title      string
	W, H       float64
	CellSize   float64
	Cells      []svgCell
	CbarX      float64
	CbarY      float64
	CbarW      float64
	CbarH      float64
	CbarStops  []svgStop
	CbarTicks  []svgTick
	CbarTitle  string
	CbarFont   float64 //px
	CbarStyle  string  //font-style value
	CbarTitleX float64
	CbarTitleY float64
}

//buildView computes all pixel positions so the template stays dumb.
func buildView(fig *Figure) *svgView {
	v := &svgView{
		Title:    fig.Title,
		CellSize: cellSize,
	}
	gridW := float64(gridCols) * cellPitch
	gridH := float64(gridRows) * cellPitch
	v.W = marginX + gridW + cbarPad + cbarWidth + 70
	v.H = gridTop + gridH + 20
	for _, c := range fig.Cells {
		v.Cells = append(v.Cells, svgCell{
			Cell: c,
			X:    marginX + float64(c.Col-1)*cellPitch,
			Y:    gridTop + float64(c.Row-1)*cellPitch,
		})
	}
	v.CbarX = marginX + gridW + cbarPad
	v.CbarY = gridTop
	v.CbarW = cbarWidth
	v.CbarH = 7 * cellPitch
	n := len(fig.Colorbar.Stops)
	for i, c := range fig.Colorbar.Stops {
		off := 0.0
		if n > 1 {
			off = float64(i) / float64(n-1) * 100
		}
		v.CbarStops = append(v.CbarStops, svgStop{Offset: fmt.Sprintf("%.1f%%", off), Color: c})
	}
	for _, t := range fig.Colorbar.Ticks {
		v.CbarTicks = append(v.CbarTicks, svgTick{
			Y:     v.CbarY + (1-t.Pos)*v.CbarH,
			Label: t.Label,
		})
	}
	v.CbarTitle = fig.Colorbar.Title
	v.CbarFont = math.Round(fig.Colorbar.FontSize * 96 / 72) //pt to CSS px
	v.CbarStyle = "normal"
	if fig.Colorbar.Italic {
		v.CbarStyle = "italic"
	}
	v.CbarTitleX = v.CbarX + v.CbarW + 55
	v.CbarTitleY = v.CbarY + v.CbarH/2
	return v
}

var htmlTmpl = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; background: #ffffff; font-family: Helvetica, Arial, sans-serif; }
.cell:hover rect { stroke: #333333; stroke-opacity: 1; stroke-width: 2; cursor: default; }
text { user-select: none; }
</style>
</head>
<body>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.W}}" height="{{.H}}" viewBox="0 0 {{.W}} {{.H}}">
<defs>
<linearGradient id="cbar-gradient" x1="0" y1="1" x2="0" y2="0">
{{- range .CbarStops}}
<stop offset="{{.Offset}}" stop-color="{{.Color}}"/>
{{- end}}
</linearGradient>
</defs>
<text x="{{.CellSize}}" y="40" font-size="24" fill="#000000">{{.Title}}</text>
{{- range .Cells}}
<g class="cell">
<title>{{.Name}} ({{.Symbol}}, Z={{.Z}}){{if .HasData}}: {{printf "%g" .Value}}{{end}}</title>
<rect x="{{.X}}" y="{{.Y}}" width="{{$.CellSize}}" height="{{$.CellSize}}" fill="{{.Fill}}" stroke="{{.Line}}" stroke-opacity="{{.LineA}}" stroke-width="{{.LineW}}"/>
<text x="{{.X}}" y="{{.Y}}" dx="4" dy="12" font-size="9" fill="{{.Text}}">{{.Z}}</text>
<text x="{{.X}}" y="{{.Y}}" dx="32" dy="38" font-size="20" text-anchor="middle" fill="{{.Text}}">{{.Symbol}}</text>
{{- if .Label}}
<text x="{{.X}}" y="{{.Y}}" dx="32" dy="56" font-size="10" text-anchor="middle" fill="{{.Text}}">{{.Label}}</text>
{{- end}}
</g>
{{- end}}
<rect x="{{.CbarX}}" y="{{.CbarY}}" width="{{.CbarW}}" height="{{.CbarH}}" fill="url(#cbar-gradient)" stroke="#000000" stroke-width="0.5"/>
{{- range .CbarTicks}}
<text x="{{$.CbarX}}" y="{{.Y}}" dx="26" dy="4" font-size="11" fill="#000000">{{.Label}}</text>
{{- end}}
<text x="{{.CbarTitleX}}" y="{{.CbarTitleY}}" font-size="{{.CbarFont}}" font-style="{{.CbarStyle}}" fill="#000000" text-anchor="middle" transform="rotate(90 {{.CbarTitleX}} {{.CbarTitleY}})">{{.CbarTitle}}</text>
</svg>
</body>
</html>
`))

//WriteHTML writes the figure as a standalone HTML page: a single file, no
//external scripts or styles, viewable in any browser.
func WriteHTML(fig *Figure, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errorf("can't create %s: %s", path, err.Error())
	}
	defer f.Close()
	if err := htmlTmpl.Execute(f, buildView(fig)); err != nil {
		return errorf("can't write HTML figure to %s: %s", path, err.Error())
	}
	return nil
}
