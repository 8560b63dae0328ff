/*
 * cmap.go, part of goPTable.
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
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// linearRamp is a palette.ColorMap interpolating linearly between a fixed
// list of anchor colors. The matplotlib-compatible maps below are built
// from 10 anchors each, which is plenty for heatmap cells.
type linearRamp struct {
	stops    []color.NRGBA
	min, max float64
	alpha    float64
}

func (r *linearRamp) Min() float64       { return r.min }
func (r *linearRamp) Max() float64       { return r.max }
func (r *linearRamp) SetMin(min float64) { r.min = min }
func (r *linearRamp) SetMax(max float64) { r.max = max }
func (r *linearRamp) Alpha() float64     { return r.alpha }

func (r *linearRamp) SetAlpha(alpha float64) {
	if alpha < 0 || alpha > 1 {
		panic(errorf("invalid alpha: %g", alpha))
	}
	r.alpha = alpha
}

// Palette samples the ramp at n evenly spaced positions, as the gonum
// moreland maps do.
func (r *linearRamp) Palette(n int) palette.Palette {
	return sampleMap(r, n)
}

func (r *linearRamp) At(v float64) (color.Color, error) {
	if r.max <= r.min {
		return nil, errorf("colormap range is not set")
	}
	t := (v - r.min) / (r.max - r.min)
	if t < 0 || t > 1 || t != t {
		return nil, errorf("value %g outside the colormap range [%g, %g]", v, r.min, r.max)
	}
	pos := t * float64(len(r.stops)-1)
	lo := int(pos)
	if lo >= len(r.stops)-1 {
		return r.stops[len(r.stops)-1], nil
	}
	f := pos - float64(lo)
	a, b := r.stops[lo], r.stops[lo+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + f*(float64(y)-float64(x)) + 0.5)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}, nil
}

// rescaled adapts a colormap with a fixed native range (the moreland maps
// work on [0,1]) to whatever range the figure needs, including negative
// ranges that the diverging maps would reject outright.
type rescaled struct {
	inner    palette.ColorMap
	min, max float64
}

func wrap(inner palette.ColorMap) palette.ColorMap {
	inner.SetMin(0)
	inner.SetMax(1)
	return &rescaled{inner: inner}
}

func (r *rescaled) Min() float64                  { return r.min }
func (r *rescaled) Max() float64                  { return r.max }
func (r *rescaled) SetMin(min float64)            { r.min = min }
func (r *rescaled) SetMax(max float64)            { r.max = max }
func (r *rescaled) Alpha() float64                { return r.inner.Alpha() }
func (r *rescaled) SetAlpha(alpha float64)        { r.inner.SetAlpha(alpha) }
func (r *rescaled) Palette(n int) palette.Palette { return sampleMap(r, n) }

// sampleMap builds a palette by sampling a colormap at n evenly spaced
// positions, as the gonum moreland maps do.
func sampleMap(m palette.ColorMap, n int) palette.Palette {
	if m.Min() == 0 && m.Max() == 0 {
		m.SetMin(0)
		m.SetMax(1)
	}
	min, max := m.Min(), m.Max()
	delta := (max - min) / float64(n-1)
	colors := make(sampledPalette, n)
	for i := range colors {
		c, err := m.At(min + delta*float64(i))
		if err != nil {
			panic(err)
		}
		colors[i] = c
	}
	return colors
}

// sampledPalette fulfills the palette.Palette interface.
type sampledPalette []color.Color

func (p sampledPalette) Colors() []color.Color { return p }

func (r *rescaled) At(v float64) (color.Color, error) {
	if r.max <= r.min {
		return nil, errorf("colormap range is not set")
	}
	t := (v - r.min) / (r.max - r.min)
	if t < 0 || t > 1 || t != t {
		return nil, errorf("value %g outside the colormap range [%g, %g]", v, r.min, r.max)
	}
	return r.inner.At(t)
}

func ramp(hexes ...string) func() palette.ColorMap {
	stops := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		c, err := parseHexColor(h)
		if err != nil {
			panic("bad builtin colormap anchor: " + h) //can't happen with the literals below
		}
		stops[i] = c
	}
	return func() palette.ColorMap {
		return &linearRamp{stops: stops, alpha: 1}
	}
}

// The named colormaps. The first five mirror the matplotlib maps of the
// same names; the rest come from gonum/plot's moreland palettes.
var colormaps = map[string]func() palette.ColorMap{
	"plasma": ramp("#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"),
	"viridis": ramp("#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"),
	"inferno": ramp("#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d03c", "#fcffa4"),
	"magma": ramp("#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"),
	"cividis": ramp("#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"),
	"smoothbluered":     func() palette.ColorMap { return wrap(moreland.SmoothBlueRed()) },
	"kindlmann":         func() palette.ColorMap { return wrap(moreland.Kindlmann()) },
	"extendedkindlmann": func() palette.ColorMap { return wrap(moreland.ExtendedKindlmann()) },
	"blackbody":         func() palette.ColorMap { return wrap(moreland.BlackBody()) },
	"extendedblackbody": func() palette.ColorMap { return wrap(moreland.ExtendedBlackBody()) },
}

// Resolve looks up a colormap by name (case-insensitive). Unknown or empty
// names are an error; the error for unknown names lists a few valid ones.
func Resolve(name string) (palette.ColorMap, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, errorf("-cmap must be a non-empty colormap name")
	}
	mk, ok := colormaps[normalized]
	if !ok {
		return nil, errorf("Unknown colormap for -cmap: %s. Try common options like: plasma, viridis, inferno, magma, cividis", normalized)
	}
	return mk(), nil
}

// parseHexColor converts "#rrggbb" or "#rgb" to a color. Follows the usual
// rules: a 3-digit color duplicates each digit.
func parseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return c, errorf("invalid hex color format: missing #")
	}
	hexToByte := func(b byte) (byte, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return c, errorf("invalid hex color length: %d", len(s)-1)
	}
	var vals [6]byte
	for i := 0; i < 6; i++ {
		v, ok := hexToByte(digits[i])
		if !ok {
			return c, errorf("invalid hex char: %c", digits[i])
		}
		vals[i] = v
	}
	c.R = vals[0]<<4 + vals[1]
	c.G = vals[2]<<4 + vals[3]
	c.B = vals[4]<<4 + vals[5]
	return c, nil
}

// colorToHex renders any color as "#rrggbb", dropping alpha.
func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	const hexdigits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint32{r >> 8, g >> 8, b >> 8} {
		out[1+2*i] = hexdigits[v>>4]
		out[2+2*i] = hexdigits[v&0xf]
	}
	return string(out)
}
