// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"math"
	"strconv"
)

// Rectangle draws a w by h rectangle with its corners labelled
// clockwise from the top left
func Rectangle(w, h float64, labels []string) string {
	ox, oy := 30.0, 30.0
	c := New(w+60, h+60)
	c.Rect(ox, oy, w, h, Attrs{Class: "shape-fill"})
	corners := []struct{ x, y, dx, dy float64 }{
		{ox, oy, -10, -5},
		{ox + w, oy, 5, -5},
		{ox + w, oy + h, 5, 15},
		{ox, oy + h, -10, 15},
	}
	for i, p := range corners {
		c.Circle(p.x, p.y, 3, Attrs{Class: "point-blue"})
		if i < len(labels) {
			c.Text(p.x+p.dx, p.y+p.dy, labels[i], Attrs{Class: "label"})
		}
	}
	return c.String()
}

// RegularPolygon draws a regular polygon with a triangle standing
// out from each of its sides
func RegularPolygon(sides int) (string, error) {
	if sides < 3 {
		return "", fmt.Errorf("%w: polygon with %d sides", ErrRange, sides)
	}
	centre := Pt(150, 150)
	r := 60.0
	pts := make([]Point, sides)
	for i := range pts {
		pts[i] = polar(centre, r, 90-float64(i)*360/float64(sides))
	}

	blue, red := Colour(1), Colour(0)
	c := New(300, 300)
	c.Polygon(pts, Attrs{Stroke: blue, StrokeWidth: 2, Fill: Tint(blue, 0.3)})
	for i := range pts {
		p1, p2 := pts[i], pts[(i+1)%sides]
		mid := Pt((p1.X+p2.X)/2, (p1.Y+p2.Y)/2)
		dx, dy := mid.X-centre.X, mid.Y-centre.Y
		l := math.Hypot(dx, dy)
		outer := Pt(mid.X+dx/l*r*0.8, mid.Y+dy/l*r*0.8)
		c.Polygon([]Point{p1, p2, outer}, Attrs{Stroke: red, StrokeWidth: 1.5, Fill: Tint(red, 0.3)})
	}
	return c.String(), nil
}

// cubeFaces draws a cube of side s with its front face's top left
// corner at p, seen from the front right
func (c *Canvas) cubeFaces(p Point, s float64, fills [3]string, stroke float64) {
	d := s / 4
	front := []Point{p, {p.X + s, p.Y}, {p.X + s, p.Y + s}, {p.X, p.Y + s}}
	top := []Point{p, {p.X + d, p.Y - d}, {p.X + s + d, p.Y - d}, {p.X + s, p.Y}}
	side := []Point{{p.X + s, p.Y}, {p.X + s + d, p.Y - d}, {p.X + s + d, p.Y + s - d}, {p.X + s, p.Y + s}}
	c.Polygon(top, Attrs{Stroke: "#333", StrokeWidth: stroke, Fill: fills[0]})
	c.Polygon(side, Attrs{Stroke: "#333", StrokeWidth: stroke, Fill: fills[1]})
	c.Polygon(front, Attrs{Stroke: "#333", StrokeWidth: stroke, Fill: fills[2]})
}

// Cube draws a cube of side size with its edge labelled a
func Cube(size float64) string {
	p := Pt(50, 60)
	c := New(size+120, size+120)
	c.cubeFaces(p, size, [3]string{Tint(Colour(2), 0.3), Tint(Colour(3), 0.3), Tint(Colour(0), 0.2)}, 1.5)
	y := p.Y + size + 15
	c.Line(p.X, y, p.X+size, y, Attrs{Stroke: "#333", StrokeWidth: 1})
	c.Text(p.X+size/2, y+15, "a", Attrs{Anchor: "middle", FontSize: 14, Fill: "#333"})
	return c.String()
}

// CubeStack draws n cubes climbing diagonally, each resting on the
// back right corner of the one below
func CubeStack(n int, caption string) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: stack of %d cubes", ErrRange, n)
	}
	s := 40.0
	w, h := 40+float64(n)*s+s/4, 50+float64(n)*s+s/4
	c := New(w, h)
	if caption != "" {
		c.Label(w/2, 20, caption, "small")
	}
	light, mid, dark := "#f0f0f0", "#e0e0e0", "#d0d0d0"
	for i := 0; i < n; i++ {
		p := Pt(20+float64(i)*s, h-10-float64(i+1)*s)
		c.cubeFaces(p, s, [3]string{light, mid, dark}, 1.5)
	}
	return c.String(), nil
}

// CubeNet draws the cross shaped net of a cube, with a number on
// each face. faces are given top, then the row of four left to
// right, then bottom.
func CubeNet(faces []string, caption string) (string, error) {
	if len(faces) != 6 {
		return "", fmt.Errorf("%w: cube net with %d faces", ErrRange, len(faces))
	}
	s := 40.0
	c := New(240, 180)
	if caption != "" {
		c.Label(120, 25, caption, "small")
	}
	cells := []Point{{80, 40}, {40, 80}, {80, 80}, {120, 80}, {160, 80}, {80, 120}}
	for i, p := range cells {
		c.Rect(p.X, p.Y, s, s, Attrs{Stroke: "#333", StrokeWidth: 1.5, Fill: "none"})
		c.Label(p.X+s/2, p.Y+27, faces[i], "label")
	}
	return c.String(), nil
}

// AreaSquare draws a square of side a+b cut into a², two ab
// rectangles and b², as used to show (a+b)² = a² + 2ab + b²
func AreaSquare(a, b float64) (string, error) {
	if a <= 0 || b <= 0 {
		return "", fmt.Errorf("%w: square of sides %v and %v", ErrRange, a, b)
	}
	const o, side = 50.0, 200.0
	pa := side * a / (a + b)
	pb := side - pa
	red, blue, green := Colour(0), Colour(1), Colour(2)

	c := New(300, 300)
	c.Rect(o, o, side, side, Attrs{Stroke: "#333", StrokeWidth: 2, Fill: "none"})
	parts := []struct {
		x, y, w, h float64
		colour     string
		label      string
		size       float64
	}{
		{o, o, pa, pa, red, "a²", 20},
		{o + pa, o + pa, pb, pb, blue, "b²", 16},
		{o + pa, o, pb, pa, green, "ab", 14},
		{o, o + pa, pa, pb, green, "ab", 14},
	}
	for _, p := range parts {
		c.Rect(p.x, p.y, p.w, p.h, Attrs{Stroke: p.colour, StrokeWidth: 1, Fill: p.colour, FillOpacity: 0.3})
		c.Text(p.x+p.w/2, p.y+p.h/2+5, p.label, Attrs{Anchor: "middle", FontSize: p.size, Weight: "bold", Fill: "#333"})
	}

	c.Line(o, o-5, o+pa, o-5, Attrs{Stroke: "#333", StrokeWidth: 1})
	c.Line(o+pa, o-5, o+side, o-5, Attrs{Stroke: "#333", StrokeWidth: 1})
	label := Attrs{Anchor: "middle", FontSize: 16, Fill: "#333"}
	c.Text(o+pa/2, o-10, "a", label)
	c.Text(o+pa+pb/2, o-10, "b", label)
	c.Text(o+side+15, o+pa/2, "a", label)
	c.Text(o+side+15, o+pa+pb/2, "b", label)
	return c.String(), nil
}

// NamedPoint is a labelled point in coordinate space
type NamedPoint struct {
	Label string
	X, Y  float64
}

// CoordOpts describes a pair of coordinate axes
type CoordOpts struct {
	XMin, XMax, YMin, YMax int
	Points                 []NamedPoint
	Width, Height          float64
}

// Coordinate draws x and y axes with a tick at every integer other
// than 0, and the given points
func Coordinate(o CoordOpts) (string, error) {
	if err := checkRange(o.XMin, o.XMax); err != nil {
		return "", err
	}
	if err := checkRange(o.YMin, o.YMax); err != nil {
		return "", err
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = 280
	}
	if h == 0 {
		h = 280
	}
	m := 35.0
	sx := (w - 2*m) / float64(o.XMax-o.XMin)
	sy := (h - 2*m) / float64(o.YMax-o.YMin)
	cx := m - float64(o.XMin)*sx
	cy := h - m + float64(o.YMin)*sy

	c := New(w, h)
	c.Line(m, cy, w-m+10, cy, Attrs{Class: "axis", Marker: "arrow"})
	c.Text(w-m+5, cy-10, "x", Attrs{Class: "label"})
	c.Line(cx, h-m, cx, m-10, Attrs{Class: "axis", Marker: "arrow"})
	c.Text(cx+12, m, "y", Attrs{Class: "label"})
	c.Text(cx-12, cy+15, "O", Attrs{Class: "small"})

	for i := o.XMin; i <= o.XMax; i++ {
		if i == 0 {
			continue
		}
		x := cx + float64(i)*sx
		c.Line(x, cy-3, x, cy+3, Attrs{Class: "tick"})
		c.Text(x, cy+15, strconv.Itoa(i), Attrs{Class: "tick-label", Anchor: "middle", FontSize: 10})
	}
	for i := o.YMin; i <= o.YMax; i++ {
		if i == 0 {
			continue
		}
		y := cy - float64(i)*sy
		c.Line(cx-3, y, cx+3, y, Attrs{Class: "tick"})
		c.Text(cx-12, y+4, strconv.Itoa(i), Attrs{Class: "tick-label", Anchor: "end", FontSize: 10})
	}
	for _, p := range o.Points {
		x, y := cx+p.X*sx, cy-p.Y*sy
		c.Circle(x, y, 4, Attrs{Class: "point"})
		c.Text(x+8, y-5, p.Label, Attrs{Class: "label"})
	}
	return c.String(), nil
}

// Room is one rectangle of a floor plan
type Room struct {
	X, Y, W, H float64
	Name, Note string
	Colour     string
}

// FloorPlan draws rooms inside an outer wall, with the top and side
// of the first room dimensioned by top and side
func FloorPlan(rooms []Room, top, side string) string {
	c := New(400, 300)
	c.Rect(50, 50, 300, 200, Attrs{Stroke: "#333", StrokeWidth: 2, Fill: "none"})
	for i, r := range rooms {
		colour := r.Colour
		if colour == "" {
			colour = Colour(i)
		}
		c.Rect(r.X, r.Y, r.W, r.H, Attrs{Stroke: "#333", StrokeWidth: 1, Fill: colour, FillOpacity: 0.2})
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		c.Text(cx, cy+5, r.Name, Attrs{Anchor: "middle", FontSize: 14, Fill: "#333"})
		if r.Note != "" {
			c.Text(cx, cy+25, r.Note, Attrs{Anchor: "middle", FontSize: 12, Fill: "#666"})
		}
	}
	if len(rooms) > 0 {
		r := rooms[0]
		c.Text(r.X+r.W/2, r.Y-10, top, Attrs{Anchor: "middle", FontSize: 12, Fill: "#333"})
		x, y := r.X-15, r.Y+r.H/2
		c.Text(x, y, side, Attrs{Anchor: "middle", FontSize: 12, Fill: "#333",
			Transform: fmt.Sprintf("rotate(-90 %s %s)", Num(x), Num(y))})
	}
	return c.String()
}

// Panel is one captioned part of a multiple choice figure. Shapes
// and label positions are relative to the panel's top left corner.
type Panel struct {
	Caption string
	Shapes  [][]Point
	Labels  []PanelLabel
}

// PanelLabel is a piece of text placed in a panel
type PanelLabel struct {
	At   Point
	Text string
}

// Panels draws figures side by side, each captioned below, as for
// the choices of a multiple choice question
func Panels(panels []Panel, size float64) string {
	gap := size * 0.6
	w := 30 + float64(len(panels))*(size+gap) - gap + 30
	c := New(w, size+50)
	for i, p := range panels {
		off := Pt(30+float64(i)*(size+gap), 20)
		for _, s := range p.Shapes {
			moved := make([]Point, len(s))
			for j, q := range s {
				moved[j] = q.Add(off)
			}
			c.Polygon(moved, Attrs{Stroke: "#333", StrokeWidth: 1.5, Fill: "none"})
		}
		for _, l := range p.Labels {
			at := l.At.Add(off)
			c.Text(at.X, at.Y, l.Text, Attrs{FontSize: 14, FontStyle: "italic", Fill: "#333"})
		}
		c.Label(off.X+size/2, off.Y+size+25, p.Caption, "label")
	}
	return c.String()
}
