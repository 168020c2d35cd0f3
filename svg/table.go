// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"
)

// TableOpts describes a table with a shaded header row
type TableOpts struct {
	Headers   []string
	Rows      [][]string
	ColWidth  float64
	RowHeight float64
	// Signed colours cells starting with + green and with - red
	Signed bool
}

func signColour(s string) string {
	switch {
	case strings.HasPrefix(s, "+"):
		return "#10B981"
	case strings.HasPrefix(s, "-"):
		return "#e74c3c"
	}
	return ""
}

// Table draws a ruled table. Rows longer than the header are an
// error; shorter ones leave their last cells empty.
func Table(o TableOpts) (string, error) {
	cols := len(o.Headers)
	if cols == 0 {
		return "", fmt.Errorf("%w: table without headers", ErrRange)
	}
	for i, r := range o.Rows {
		if len(r) > cols {
			return "", fmt.Errorf("%w: table row %d has %d cells for %d columns", ErrRange, i, len(r), cols)
		}
	}
	cw, rh := o.ColWidth, o.RowHeight
	if cw == 0 {
		cw = 65
	}
	if rh == 0 {
		rh = 35
	}
	x0, y0 := 20.0, 20.0
	tw, th := cw*float64(cols), rh*float64(len(o.Rows)+1)

	c := New(tw+2*x0, th+2*y0)
	c.Rect(x0, y0, tw, rh, Attrs{Class: "table-header"})
	for i := 0; i <= len(o.Rows)+1; i++ {
		y := y0 + float64(i)*rh
		c.Line(x0, y, x0+tw, y, Attrs{Class: "table-line"})
	}
	for i := 0; i <= cols; i++ {
		x := x0 + float64(i)*cw
		c.Line(x, y0, x, y0+th, Attrs{Class: "table-line"})
	}

	for i, h := range o.Headers {
		c.Label(x0+float64(i)*cw+cw/2, y0+rh/2+5, h, "label")
	}
	for r, row := range o.Rows {
		y := y0 + float64(r+1)*rh + rh/2 + 5
		for i, cell := range row {
			a := Attrs{Class: "small", Anchor: "middle"}
			if o.Signed {
				a.Fill = signColour(cell)
			}
			c.Text(x0+float64(i)*cw+cw/2, y, cell, a)
		}
	}
	return c.String(), nil
}

// Cell is a grid intersection, counting from the top left
type Cell struct {
	Row, Col int
}

// GridOpts describes a board of Rows by Cols squares with stones on
// its intersections
type GridOpts struct {
	Rows, Cols   int
	Black, White []Cell
	Size         float64
	Caption      string
}

// Grid draws a go board with black and white stones, as used for
// pattern counting questions
func Grid(o GridOpts) (string, error) {
	if o.Rows < 1 || o.Cols < 1 {
		return "", fmt.Errorf("%w: grid of %dx%d", ErrRange, o.Rows, o.Cols)
	}
	size := o.Size
	if size == 0 {
		size = 40
	}
	m := 40.0
	w, h := 2*m+float64(o.Cols)*size, 2*m+float64(o.Rows)*size
	if o.Caption != "" {
		h += 10
	}

	c := New(w, h)
	for i := 0; i <= o.Rows; i++ {
		y := m + float64(i)*size
		c.Line(m, y, m+float64(o.Cols)*size, y, Attrs{Stroke: "#333", StrokeWidth: 1})
	}
	for j := 0; j <= o.Cols; j++ {
		x := m + float64(j)*size
		c.Line(x, m, x, m+float64(o.Rows)*size, Attrs{Stroke: "#333", StrokeWidth: 1})
	}

	r := size * 0.375
	for _, s := range o.Black {
		if s.Row < 0 || s.Row > o.Rows || s.Col < 0 || s.Col > o.Cols {
			return "", fmt.Errorf("%w: stone at %v off the board", ErrRange, s)
		}
		c.Circle(m+float64(s.Col)*size, m+float64(s.Row)*size, r, Attrs{Fill: "#333", Stroke: "#333"})
	}
	for _, s := range o.White {
		if s.Row < 0 || s.Row > o.Rows || s.Col < 0 || s.Col > o.Cols {
			return "", fmt.Errorf("%w: stone at %v off the board", ErrRange, s)
		}
		c.Circle(m+float64(s.Col)*size, m+float64(s.Row)*size, r, Attrs{Fill: "#fff", Stroke: "#333", StrokeWidth: 2})
	}
	if o.Caption != "" {
		c.Label(w/2, h-15, o.Caption, "small")
	}
	return c.String(), nil
}

// GoPieces draws the n'th figure of the growing square pattern: a
// block of black stones in the middle of a 5x5 board, ringed by white
func GoPieces(n int) (string, error) {
	if n < 1 || n > 4 {
		return "", fmt.Errorf("%w: pattern figure %d", ErrRange, n)
	}
	o := GridOpts{Rows: 4, Cols: 4, Size: 25, Caption: fmt.Sprintf("图%d", n)}
	half := n / 2
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			s := Cell{Row: j + 2, Col: i + 2}
			if abs(i) <= half && abs(j) <= half {
				o.Black = append(o.Black, s)
			} else {
				o.White = append(o.White, s)
			}
		}
	}
	return Grid(o)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Matchsticks draws n squares in a row made of matchsticks
func Matchsticks(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: %d squares of matchsticks", ErrRange, n)
	}
	const l, m, top = 40.0, 30.0, 30.0
	w := 2*m + float64(n)*l
	if w < 400 {
		w = 400
	}

	c := New(w, 150)
	stick := Attrs{Stroke: "#8B4513", StrokeWidth: 4, Cap: "round"}
	for i := 0; i <= n; i++ {
		x := m + float64(i)*l
		c.Line(x, top, x, top+l, stick)
		if i == n {
			break
		}
		c.Line(x, top, x+l, top, stick)
		c.Line(x, top+l, x+l, top+l, stick)
	}
	c.Text(m+float64(n)*l/2, 100, fmt.Sprintf("图%d", n), Attrs{Anchor: "middle", FontSize: 14, Fill: "#333"})
	return c.String(), nil
}
