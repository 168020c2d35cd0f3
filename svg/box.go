// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"math"
	"strconv"
)

func boxed(w, h float64) *Canvas {
	c := New(w, h)
	c.Rect(10, 10, w-20, h-20, Attrs{Class: "box"})
	return c
}

// FormulaBox draws formulas in a framed box, under an optional title
func FormulaBox(title string, formulas []string) string {
	w, h := 350.0, 60+float64(len(formulas))*35
	c := boxed(w, h)
	y := 40.0
	if title != "" {
		c.Text(25, 35, title, Attrs{Class: "label"})
		y = 60
	}
	for i, f := range formulas {
		c.Text(30, y+float64(i)*32, f, Attrs{Class: "formula"})
	}
	return c.String()
}

// Steps draws numbered working steps in a framed box
func Steps(steps []string) string {
	w, h := 380.0, 50+float64(len(steps))*30
	c := boxed(w, h)
	for i, s := range steps {
		y := 40 + float64(i)*28
		c.Circle(25, y-5, 10, Attrs{Fill: "#667eea"})
		c.Text(25, y, strconv.Itoa(i+1), Attrs{Anchor: "middle", Fill: "white", FontSize: 11})
		c.Text(45, y, s, Attrs{Class: "small"})
	}
	return c.String()
}

// Definition draws a newly defined operation: its symbol highlighted,
// what it means, and an example
func Definition(symbol, definition, example string) string {
	c := boxed(350, 120)
	c.Rect(20, 25, 60, 35, Attrs{Class: "highlight", Rx: 5})
	c.Text(50, 50, symbol, Attrs{Class: "formula", Anchor: "middle"})
	c.Text(95, 48, definition, Attrs{Class: "label"})
	c.Text(25, 85, "例："+example, Attrs{Class: "small"})
	return c.String()
}

// FractionSequence draws the sum 1/(1×2) + 1/(2×3) + ... of n terms
func FractionSequence(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: sequence of %d terms", ErrRange, n)
	}
	const start, spacing = 30.0, 70.0
	w := math.Max(400, start+float64(n)*spacing+60)
	c := boxed(w, 80)
	for i := 1; i <= n; i++ {
		x := start + float64(i-1)*spacing
		c.Text(x, 35, "1", Attrs{Class: "small"})
		c.Line(x-5, 40, x+15, 40, Attrs{Stroke: "#333", StrokeWidth: 1})
		c.Text(x, 55, fmt.Sprintf("%d×%d", i, i+1), Attrs{Class: "small"})
		if i < n {
			c.Text(x+40, 45, "+", Attrs{Class: "label"})
		}
	}
	c.Text(start+float64(n)*spacing-20, 45, "+ ...", Attrs{Class: "label"})
	return c.String(), nil
}

// Gear draws the n'th figure of a gear pattern: a hub with eight
// teeth, captioned 图n
func Gear(n int) string {
	const w, h = 200.0, 200.0
	const r1, r2, teeth = 30.0, 50.0, 8
	centre := Pt(w/2, h/2)
	c := New(w, h)
	c.Circle(centre.X, centre.Y, r1, Attrs{Class: "shape-fill"})
	for i := 0; i < teeth; i++ {
		deg := 360 * float64(i) / teeth
		p, q := polar(centre, r1, deg), polar(centre, r2, deg)
		c.Line(p.X, p.Y, q.X, q.Y, Attrs{Class: "shape"})
	}
	c.Label(w/2, h-10, fmt.Sprintf("图%d", n), "small")
	return c.String()
}

// Derivation draws one expression turning into another, with how
// written under the arrow between them. Highlights shade spans of
// the first expression, given as x offset and width.
func Derivation(from, how, to string, highlights ...[2]float64) string {
	c := boxed(350, 100)
	for _, hl := range highlights {
		c.Rect(30+hl[0], 22, hl[1], 25, Attrs{Class: "highlight", Rx: 3})
	}
	c.Text(30, 40, from, Attrs{Class: "label"})
	c.Line(170, 35, 210, 35, Attrs{Class: "line", Marker: "arrow-blue"})
	c.Label(190, 55, how, "small")
	c.Text(225, 40, to, Attrs{Class: "label"})
	return c.String()
}

// Working draws an equation with a note on how it is solved beneath
// a dashed rule
func Working(equation, note string) string {
	const w = 320.0
	c := boxed(w, 100)
	c.Text(30, 40, equation, Attrs{Class: "formula"})
	c.Line(30, 55, w-30, 55, Attrs{Stroke: "#667eea", StrokeWidth: 1, Dash: "3,3"})
	c.Text(30, 75, note, Attrs{Class: "small"})
	return c.String()
}
