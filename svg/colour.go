// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the series of colours used to tell points and rays apart
var Palette = []string{"#e74c3c", "#3498db", "#27ae60", "#f39c12", "#9b59b6", "#1abc9c"}

// Colour returns the i'th palette colour, wrapping around
func Colour(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Tint returns the solid colour which hex drawn with the given
// opacity over white would appear as. An unparseable colour is
// returned unchanged.
func Tint(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return white.BlendRgb(c, alpha).Clamped().Hex()
}
