// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"math"
)

// Ray is a half line from the origin of a fan. Deg is measured
// anticlockwise from pointing right, as on paper.
type Ray struct {
	Label  string
	Deg    float64
	Length float64
	Colour string
	Dashed bool
	Thin   bool
}

// Arc marks the angle between two directions. Right draws the square
// corner used for right angles instead of an arc.
type Arc struct {
	From, To float64
	R        float64
	Label    string
	Colour   string
	Arrow    bool
	Right    bool
}

// FanOpts describes rays drawn from a single point
type FanOpts struct {
	Width, Height float64
	Origin        Point
	OriginLabel   string
	Rays          []Ray
	Arcs          []Arc
	// Arrows puts an arrow head at the end of each ray
	Arrows  bool
	Caption string
}

func arrowFor(colour string) string {
	switch colour {
	case "#3498db", "#667eea":
		return "arrow-blue"
	case "#e74c3c":
		return "arrow-red"
	case "#27ae60":
		return "arrow-green"
	}
	return "arrow"
}

// Fan draws rays from Origin, with their labels just beyond their
// ends, and any angle arcs between them
func Fan(o FanOpts) string {
	c := New(o.Width, o.Height)
	for _, r := range o.Rays {
		colour := r.Colour
		if colour == "" {
			colour = "#333"
		}
		end := polar(o.Origin, r.Length, r.Deg)
		a := Attrs{Stroke: colour, StrokeWidth: 2}
		if r.Thin {
			a.StrokeWidth = 1.5
		}
		if r.Dashed {
			a.Dash = "5"
		}
		if o.Arrows {
			a.Marker = arrowFor(colour)
		}
		c.Line(o.Origin.X, o.Origin.Y, end.X, end.Y, a)
		if r.Label != "" {
			l := polar(end, 15, r.Deg)
			c.Text(l.X, l.Y+5, r.Label, Attrs{Anchor: "middle", FontSize: 16, Weight: "bold", Fill: colour})
		}
	}

	for _, a := range o.Arcs {
		colour := a.Colour
		if colour == "" {
			colour = "#666"
		}
		at := Attrs{Stroke: colour, StrokeWidth: 1.5, Fill: "none"}
		if a.Arrow {
			at.Marker = arrowFor(colour)
		}
		if a.Right {
			p, q := polar(o.Origin, a.R, a.From), polar(o.Origin, a.R, a.To)
			corner := Pt(p.X+q.X-o.Origin.X, p.Y+q.Y-o.Origin.Y)
			c.Polyline([]Point{p, corner, q}, Attrs{Stroke: colour, StrokeWidth: 1})
		} else {
			c.Path(arc(o.Origin, a.R, a.From, a.To), at)
		}
		if a.Label != "" {
			mid := (a.From + a.To) / 2
			if a.To < a.From {
				mid += 180
			}
			l := polar(o.Origin, a.R+14, mid)
			c.Text(l.X, l.Y+4, a.Label, Attrs{Anchor: "middle", FontSize: 12, Fill: colour})
		}
	}

	c.Circle(o.Origin.X, o.Origin.Y, 4, Attrs{Class: "point-dark"})
	if o.OriginLabel != "" {
		c.Text(o.Origin.X-15, o.Origin.Y+20, o.OriginLabel, Attrs{Anchor: "middle", FontSize: 16, Weight: "bold", Fill: "#333"})
	}
	if o.Caption != "" {
		c.Label(o.Width/2, o.Height-15, o.Caption, "small")
	}
	return c.String()
}

func letter(i int) string {
	return string(rune('A' + i))
}

// Rays draws n labelled rays spread evenly over span degrees and
// centred on straight up
func Rays(n int, span float64) (string, error) {
	if n < 1 || n > 26 {
		return "", fmt.Errorf("%w: %d rays", ErrRange, n)
	}
	if span <= 0 || span >= 360 {
		return "", fmt.Errorf("%w: rays spread over %v degrees", ErrRange, span)
	}
	step := 0.0
	if n > 1 {
		step = span / float64(n-1)
	}
	o := FanOpts{Width: 400, Height: 300, Origin: Pt(200, 200), OriginLabel: "O", Arrows: true}
	for i := 0; i < n; i++ {
		o.Rays = append(o.Rays, Ray{
			Label:  letter(i),
			Deg:    90 + span/2 - float64(i)*step,
			Length: 150,
			Colour: Colour(i),
		})
	}
	return Fan(o), nil
}

// Bisector draws the angle AOB of deg degrees with its bisector OC
// dashed
func Bisector(deg float64) (string, error) {
	if deg <= 0 || deg >= 180 {
		return "", fmt.Errorf("%w: angle of %v degrees", ErrRange, deg)
	}
	o := FanOpts{
		Width: 400, Height: 300, Origin: Pt(80, 250), OriginLabel: "O", Arrows: true,
		Rays: []Ray{
			{Label: "A", Deg: 0, Length: 250},
			{Label: "B", Deg: deg, Length: 250},
			{Label: "C", Deg: deg / 2, Length: 250 * 0.85, Colour: "#e74c3c", Dashed: true},
		},
		Arcs: []Arc{{From: 0, To: deg, R: 50, Label: Num(deg) + "°"}},
	}
	return Fan(o), nil
}

// Angle draws a single angle of deg degrees between rays OA and OB
func Angle(deg float64) (string, error) {
	if deg <= 0 || deg > 180 {
		return "", fmt.Errorf("%w: angle of %v degrees", ErrRange, deg)
	}
	w, h := 180.0, 150.0
	o := Pt(40, h-40)
	a := polar(o, 100, 0)
	b := polar(o, 100, deg)

	c := New(w, h)
	c.Line(o.X, o.Y, a.X, a.Y, Attrs{Class: "axis"})
	c.Line(o.X, o.Y, b.X, b.Y, Attrs{Class: "axis"})
	c.Path(arc(o, 25, 0, deg), Attrs{Class: "shape"})
	c.Circle(o.X, o.Y, 3, Attrs{Class: "point-blue"})
	c.Text(o.X-12, o.Y+15, "O", Attrs{Class: "label"})
	c.Text(a.X+8, a.Y+5, "A", Attrs{Class: "label"})
	c.Text(b.X+5, b.Y-5, "B", Attrs{Class: "label"})
	c.Text(o.X+35, o.Y-15, Num(deg)+"°", Attrs{Class: "small"})
	return c.String(), nil
}

// SegmentPoint is a labelled point At a fraction of the way along a
// segment
type SegmentPoint struct {
	At     float64
	Label  string
	Below  bool
	Colour string
}

// Segment draws a line segment with labelled points on it. Points
// without a colour take the palette in turn; Plain draws them all
// dark.
func Segment(pts []SegmentPoint, width, height float64, plain bool) (string, error) {
	if width == 0 {
		width = 400
	}
	if height == 0 {
		height = 100
	}
	y := height / 2
	x0, x1 := 50.0, width-50

	c := New(width, height)
	c.Line(x0, y, x1, y, Attrs{Stroke: "#333", StrokeWidth: 2})
	for i, p := range pts {
		if p.At < 0 || p.At > 1 {
			return "", fmt.Errorf("%w: point %s at %v", ErrRange, p.Label, p.At)
		}
		colour := p.Colour
		switch {
		case colour != "":
		case plain:
			colour = "#333"
		default:
			colour = Colour(i)
		}
		dy := -15.0
		if p.Below {
			dy = 25
		}
		c.Dot(Pt(x0+p.At*(x1-x0), y), 4, Attrs{Fill: colour}, p.Label, dy, Attrs{FontSize: 14, Weight: "bold", Fill: colour})
	}
	return c.String(), nil
}

// Triangle draws the triangle through vertices, labelled outward from
// its centre. Median adds the dashed median from the first vertex to
// the midpoint D of the opposite side.
func Triangle(vertices [3]Point, labels [3]string, median bool, width, height float64) string {
	c := New(width, height)
	c.Polygon(vertices[:], Attrs{Stroke: "#333", StrokeWidth: 2, Fill: "none"})

	centre := Pt((vertices[0].X+vertices[1].X+vertices[2].X)/3, (vertices[0].Y+vertices[1].Y+vertices[2].Y)/3)
	for i, v := range vertices {
		dx, dy := v.X-centre.X, v.Y-centre.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			d = 1
		}
		c.Text(v.X+dx/d*14, v.Y+dy/d*14+5, labels[i], Attrs{Anchor: "middle", FontSize: 14, Weight: "bold", Fill: "#333"})
	}

	if median {
		red := Colour(0)
		m := Pt((vertices[1].X+vertices[2].X)/2, (vertices[1].Y+vertices[2].Y)/2)
		c.Line(vertices[0].X, vertices[0].Y, m.X, m.Y, Attrs{Stroke: red, StrokeWidth: 1.5, Dash: "4"})
		c.Circle(m.X, m.Y, 3, Attrs{Fill: red})
		c.Text(m.X+10, m.Y+15, "D", Attrs{FontSize: 12, Fill: red})
	}
	return c.String()
}
