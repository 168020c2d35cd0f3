// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strconv"
)

const margin = 40

// Mark is a point placed on a number line at Value
type Mark struct {
	Value float64
	Label string
	Class string
}

var pointClasses = []string{"point", "point-blue", "point-green"}

// axis maps number line values to x positions
type axis struct {
	start int
	x0    float64
	scale float64
	y     float64
}

func (a axis) x(v float64) float64 {
	return a.x0 + (v-float64(a.start))*a.scale
}

func checkRange(start, end int) error {
	if start >= end {
		return fmt.Errorf("%w: number line from %d to %d", ErrRange, start, end)
	}
	return nil
}

// arrowAxis draws the main line of a number line, with an arrow head
func (c *Canvas) arrowAxis(x1, x2, y float64) {
	c.Line(x1, y, x2, y, Attrs{Class: "axis", Marker: "arrow"})
}

// ticks draws a tick and label for every integer from..to. Only every
// labelEvery'th value gets a full tick and a label, the rest get a
// minor tick.
func (c *Canvas) ticks(a axis, from, to int, half, labelDy float64, labelEvery int) {
	for i := from; i <= to; i++ {
		x := a.x(float64(i))
		if labelEvery > 1 && i%labelEvery != 0 {
			c.Line(x, a.y-half/2, x, a.y+half/2, Attrs{Class: "tick", StrokeWidth: 1})
			continue
		}
		c.Line(x, a.y-half, x, a.y+half, Attrs{Class: "tick"})
		c.Label(x, a.y+labelDy, strconv.Itoa(i), "tick-label")
	}
}

// NumberLineOpts describes a number line running from Start to End
type NumberLineOpts struct {
	Start, End    int
	Points        []Mark
	Width, Height float64
	// Cycle colours points in turn rather than all alike, when they
	// have no class of their own
	Cycle bool
}

func (o NumberLineOpts) size(w, h float64) (float64, float64) {
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	return w, h
}

func (o NumberLineOpts) class(i int, def string) string {
	switch {
	case o.Points[i].Class != "":
		return o.Points[i].Class
	case o.Cycle:
		return pointClasses[i%len(pointClasses)]
	}
	return def
}

// NumberLine draws an axis with a tick and label at each integer from
// Start to End, and the given points on it
func NumberLine(o NumberLineOpts) (string, error) {
	if err := checkRange(o.Start, o.End); err != nil {
		return "", err
	}
	w, h := o.size(400, 80)
	a := axis{start: o.Start, x0: margin, y: h / 2}
	a.scale = (w - 2*margin) / float64(o.End-o.Start)

	c := New(w, h)
	c.arrowAxis(margin, w-margin+10, a.y)
	c.ticks(a, o.Start, o.End, 5, 20, 1)
	for i, p := range o.Points {
		c.Dot(Pt(a.x(p.Value), a.y), 5, Attrs{Class: o.class(i, "point")}, p.Label, -12, Attrs{Class: "label"})
	}
	return c.String(), nil
}

// NumberLineSegment draws a number line with the points raised above
// it, and the first two joined as a segment
func NumberLineSegment(o NumberLineOpts) (string, error) {
	if err := checkRange(o.Start, o.End); err != nil {
		return "", err
	}
	w, h := o.size(450, 90)
	a := axis{start: o.Start, x0: margin, y: h - 30}
	a.scale = (w - 2*margin) / float64(o.End-o.Start)

	c := New(w, h)
	c.arrowAxis(margin, w-margin+10, a.y)
	c.ticks(a, o.Start, o.End, 4, 18, 1)
	raised := a.y - 20
	if len(o.Points) >= 2 {
		c.Line(a.x(o.Points[0].Value), raised, a.x(o.Points[1].Value), raised, Attrs{Class: "segment"})
	}
	for i, p := range o.Points {
		c.Dot(Pt(a.x(p.Value), raised), 4, Attrs{Class: o.class(i, "point-blue")}, p.Label, -12, Attrs{Class: "label"})
	}
	return c.String(), nil
}

// Letter is a position along an unscaled number line, At being the
// fraction of the way along. Above and Below are labels; a Point
// class draws a dot, otherwise a tick is drawn.
type Letter struct {
	At           float64
	Above, Below string
	Point        string
	Tick         bool
}

// NumberLineLetters draws a number line without a scale, marking
// positions by letter, as used to compare unknowns
func NumberLineLetters(letters []Letter, width, height float64) (string, error) {
	if width == 0 {
		width = 400
	}
	if height == 0 {
		height = 80
	}
	y := height / 2
	l := width - 2*margin

	c := New(width, height)
	c.arrowAxis(margin-10, width-margin+10, y)
	for _, m := range letters {
		if m.At < 0 || m.At > 1 {
			return "", fmt.Errorf("%w: letter %q at %v", ErrRange, m.Above+m.Below, m.At)
		}
		x := margin + m.At*l
		if m.Tick || m.Point == "" {
			c.Line(x, y-5, x, y+5, Attrs{Class: "tick"})
		}
		if m.Point != "" {
			c.Circle(x, y, 5, Attrs{Class: m.Point})
		}
		if m.Above != "" {
			c.Label(x, y-12, m.Above, "label")
		}
		if m.Below != "" {
			class := "small"
			if m.Point == "" && m.Above == "" {
				class = "label"
			}
			c.Label(x, y+20, m.Below, class)
		}
	}
	return c.String(), nil
}

// FoldOpts describes a number line folded so that two points meet
type FoldOpts struct {
	Start, End    int
	Points        []Mark
	Fold          float64
	Paper         bool
	Width, Height float64
}

// NumberLineFold draws a number line being folded. An arc joins the
// first two points over their midpoint, or, on Paper, the line is
// drawn on a sheet with the crease at Fold.
func NumberLineFold(o FoldOpts) (string, error) {
	if err := checkRange(o.Start, o.End); err != nil {
		return "", err
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = 400
	}
	if h == 0 {
		h = 100
	}
	a := axis{start: o.Start, x0: margin + 30, y: h/2 + 10}
	if o.Paper {
		a.y = h - 40
	}
	a.scale = (w - 2*margin - 50) / float64(o.End-o.Start)

	c := New(w, h)
	if o.Paper {
		c.Rect(margin-10, a.y-50, w-2*margin+20, 70, Attrs{Class: "highlight", Rx: 5})
	}
	c.arrowAxis(margin, w-margin, a.y)
	c.ticks(a, o.Start, o.End, 4, 18, 1)

	for i, p := range o.Points {
		c.Dot(Pt(a.x(p.Value), a.y), 5, Attrs{Class: pointClasses[i%len(pointClasses)]}, p.Label, -12, Attrs{Class: "label"})
	}

	switch {
	case o.Paper:
		x := a.x(o.Fold)
		c.Line(x, a.y-50, x, a.y+25, Attrs{Class: "segment-red"})
		c.Text(x, a.y-55, "折痕", Attrs{Class: "small", Anchor: "middle", Fill: "#e74c3c"})
	case len(o.Points) >= 2:
		xa, xb := a.x(o.Points[0].Value), a.x(o.Points[1].Value)
		mid := (xa + xb) / 2
		c.Path(new(PathData).M(xa, a.y-8).Q(mid, a.y-40, xb, a.y-8), Attrs{Class: "shape"})
		c.Label(mid, a.y-45, "折叠", "small")
	}
	return c.String(), nil
}

// Roll is a circle of Radius units resting on a number line at At
type Roll struct {
	At, Radius float64
	Colour     string
	Label      string
	ShowRadius bool
}

// RollingCircles draws circles standing on a number line, each
// touching it at a marked point
func RollingCircles(start, end int, circles []Roll, width, height float64) (string, error) {
	if err := checkRange(start, end); err != nil {
		return "", err
	}
	if width == 0 {
		width = 600
	}
	if height == 0 {
		height = 150
	}
	a := axis{start: start, x0: margin + 10, y: height - 50}
	a.scale = (width - 2*a.x0) / float64(end-start)

	c := New(width, height)
	c.arrowAxis(margin-10, width-margin+10, a.y)
	c.ticks(a, start, end, 5, 20, 1)
	for i, r := range circles {
		if r.Radius <= 0 {
			return "", fmt.Errorf("%w: circle radius %v", ErrRange, r.Radius)
		}
		colour := r.Colour
		if colour == "" {
			colour = Colour(i + 1)
		}
		x, rad := a.x(r.At), r.Radius*a.scale
		c.Circle(x, a.y-rad, rad, Attrs{Stroke: colour, StrokeWidth: 2, Fill: "none"})
		if r.ShowRadius {
			c.Text(x, a.y-rad+5, "r="+Num(r.Radius), Attrs{Anchor: "middle", FontSize: 12, Fill: colour})
		}
		c.Dot(Pt(x, a.y), 4, Attrs{Fill: colour}, r.Label, 35, Attrs{FontSize: 12, Fill: colour})
	}
	return c.String(), nil
}

// MovingOpts describes points on a number line with one of them,
// Mover, setting off in Direction (1 right, -1 left)
type MovingOpts struct {
	Start, End    int
	Points        []Mark
	Mover         Mark
	Direction     int
	Width, Height float64
}

// MovingPoints draws a finely divided number line, labelled at every
// even value, with fixed end points and a moving point whose heading
// is shown by a dashed arrow
func MovingPoints(o MovingOpts) (string, error) {
	if err := checkRange(o.Start, o.End); err != nil {
		return "", err
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = 600
	}
	if h == 0 {
		h = 120
	}
	a := axis{start: o.Start, x0: margin + 60, y: h / 2}
	a.scale = (w - a.x0 - 50) / float64(o.End-o.Start)

	c := New(w, h)
	c.arrowAxis(margin-10, w-margin+10, a.y)
	c.ticks(a, o.Start, o.End, 5, 20, 2)
	for i, p := range o.Points {
		colour := Colour(i)
		c.Dot(Pt(a.x(p.Value), a.y), 6, Attrs{Fill: colour}, p.Label, -15, Attrs{FontSize: 12, Weight: "bold", Fill: colour})
	}

	if o.Mover.Label != "" {
		colour := Colour(2)
		x := a.x(o.Mover.Value)
		c.Dot(Pt(x, a.y), 5, Attrs{Fill: colour}, o.Mover.Label, 35, Attrs{FontSize: 11, Fill: colour})
		dir := 1.0
		if o.Direction < 0 {
			dir = -1
		}
		c.Line(x+10*dir, a.y-12, x+40*dir, a.y-12, Attrs{Stroke: colour, StrokeWidth: 2, Dash: "4", Marker: "arrow-green"})
	}
	return c.String(), nil
}

// TriangleOpts describes an equilateral triangle of Side units
// standing on a number line with its vertex A at At and C to its left
type TriangleOpts struct {
	Start, End    int
	At, Side      float64
	Rolled        bool
	Width, Height float64
}

// TriangleOnAxis draws an equilateral triangle standing on a number
// line. When Rolled, the triangle is shown dashed in its first place
// and again after turning over its right hand vertex.
func TriangleOnAxis(o TriangleOpts) (string, error) {
	if err := checkRange(o.Start, o.End); err != nil {
		return "", err
	}
	if o.Side <= 0 {
		return "", fmt.Errorf("%w: triangle side %v", ErrRange, o.Side)
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = 400
	}
	if h == 0 {
		h = 120
	}
	if o.Rolled && o.Height == 0 {
		h = 150
	}
	a := axis{start: o.Start, x0: margin + 30, y: h - 30}
	a.scale = (w - 2*margin - 60) / float64(o.End-o.Start)

	c := New(w, h)
	c.arrowAxis(margin, w-margin, a.y)
	c.ticks(a, o.Start, o.End, 4, 18, 1)

	ax, cx := a.x(o.At), a.x(o.At-o.Side)
	bx, by := (ax+cx)/2, a.y-(ax-cx)*0.866
	tri := []Point{{ax, a.y}, {cx, a.y}, {bx, by}}
	if !o.Rolled {
		c.Polygon(tri, Attrs{Class: "shape"})
		c.Text(ax+8, a.y-5, "A", Attrs{Class: "label"})
		c.Text(cx-12, a.y-5, "C", Attrs{Class: "label"})
		c.Label(bx, by-8, "B", "label")
		return c.String(), nil
	}

	c.Polygon(tri, Attrs{Stroke: "#999", StrokeWidth: 1, Dash: "3,3", Fill: "none"})
	d := ax - cx
	rolled := []Point{{ax + d, a.y}, {ax, a.y}, {bx + d, by}}
	c.Polygon(rolled, Attrs{Class: "shape-fill"})
	mid := ax + d/2
	c.Path(new(PathData).M(bx+10, by+10).Q(mid, by-25, bx+d-10, by+10), Attrs{Stroke: "#667eea", Marker: "arrow-blue"})
	c.Text(mid, by-28, "翻转60°", Attrs{Class: "small", Anchor: "middle", Fill: "#667eea"})
	return c.String(), nil
}

// NumberedCircle draws a circle with labels spaced evenly around it,
// the first at the top and the rest clockwise, above a number line
// from start to end onto which it is to be rolled
func NumberedCircle(labels []string, start, end int) (string, error) {
	if err := checkRange(start, end); err != nil {
		return "", err
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: circle without labels", ErrRange)
	}
	const w, h = 400.0, 200.0
	centre, r := Pt(200, 80), 60.0

	c := New(w, h)
	c.Circle(centre.X, centre.Y, r, Attrs{Stroke: Colour(1), StrokeWidth: 2, Fill: "none"})
	c.Circle(centre.X, centre.Y, 3, Attrs{Class: "point-dark"})
	for i, l := range labels {
		p := polar(centre, r-10, 90-360*float64(i)/float64(len(labels)))
		fill := "#333"
		if i == 0 {
			fill = Colour(0)
		}
		c.Text(p.X, p.Y+5, l, Attrs{Anchor: "middle", FontSize: 16, Weight: "bold", Fill: fill})
	}

	a := axis{start: start, x0: 100, y: 180}
	a.scale = 200 / float64(end-start)
	c.arrowAxis(50, 350, a.y)
	c.ticks(a, start, end, 5, 18, 1)
	return c.String(), nil
}

// Jumps draws a point starting at from and hopping along a number
// line to each of hops in turn, every hop shown as a dashed arc
func Jumps(start, end int, from Mark, hops []Mark, width, height float64) (string, error) {
	if err := checkRange(start, end); err != nil {
		return "", err
	}
	if width == 0 {
		width = 500
	}
	if height == 0 {
		height = 150
	}
	a := axis{start: start, x0: margin + 20, y: height - 50}
	a.scale = (width - 2*a.x0) / float64(end-start)

	c := New(width, height)
	c.arrowAxis(margin-10, width-margin+10, a.y)
	c.ticks(a, start, end, 5, 20, 1)
	red := Colour(0)
	c.Dot(Pt(a.x(from.Value), a.y), 5, Attrs{Fill: red}, from.Label, -15, Attrs{FontSize: 12, Fill: red})

	prev := a.x(from.Value)
	for i, h := range hops {
		colour := Colour(i + 1)
		x := a.x(h.Value)
		mid := (prev + x) / 2
		c.Path(new(PathData).M(prev, a.y-10).Q(mid, a.y-50, x, a.y-10), Attrs{Stroke: colour, StrokeWidth: 1.5, Dash: "4"})
		c.Text(mid, a.y-35, h.Label, Attrs{Anchor: "middle", FontSize: 10, Fill: colour})
		c.Circle(x, a.y, 4, Attrs{Fill: colour})
		prev = x
	}
	return c.String(), nil
}
