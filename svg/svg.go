// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package svg builds the line drawings used in exercise documents,
// such as number lines, angles, polygons, tables and formula boxes.
//
// Every figure is drawn onto a Canvas from a small set of elements,
// and every builder is a pure function of its arguments, so the same
// call always produces byte-identical output.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"sort"
	"strings"

	svgo "github.com/ajstarks/svgo/float"
)

// ErrRange is returned by builders given arguments which can't be
// drawn, such as a number line which ends before it starts
var ErrRange = errors.New("argument out of range")

// Point is a position on the canvas, in pixels from the top left
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Add returns p moved by q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Attrs are the presentation attributes of an element. Any set field
// overrides the value given by the element's class.
type Attrs struct {
	Class       string
	Stroke      string
	StrokeWidth float64
	Dash        string
	Cap         string
	Fill        string
	FillOpacity float64
	Rx          float64
	FontSize    float64
	Weight      string
	FontStyle   string
	Anchor      string
	Marker      string
	Transform   string
}

// classes holds the look of each class. These are written inline on
// every element rather than in a stylesheet, so that renderers which
// ignore CSS draw figures the same way browsers do.
var classes = map[string]Attrs{
	"axis":         {Stroke: "#333", StrokeWidth: 2, Fill: "none"},
	"tick":         {Stroke: "#333", StrokeWidth: 1.5},
	"grid":         {Stroke: "#ddd", StrokeWidth: 0.5},
	"point":        {Fill: "#e74c3c"},
	"point-blue":   {Fill: "#667eea"},
	"point-green":  {Fill: "#27ae60"},
	"point-dark":   {Fill: "#333"},
	"label":        {FontSize: 14, Fill: "#333", Weight: "500"},
	"tick-label":   {FontSize: 12, Fill: "#666"},
	"small":        {FontSize: 12, Fill: "#666"},
	"shape":        {Stroke: "#667eea", StrokeWidth: 2, Fill: "none"},
	"shape-fill":   {Stroke: "#667eea", StrokeWidth: 2, Fill: Tint("#667eea", 0.1)},
	"segment":      {Stroke: "#667eea", StrokeWidth: 3},
	"segment-red":  {Stroke: "#e74c3c", StrokeWidth: 2, Dash: "4"},
	"ray":          {Stroke: "#333", StrokeWidth: 2},
	"box":          {Stroke: "#667eea", StrokeWidth: 2, Fill: Tint("#667eea", 0.05), Rx: 8},
	"highlight":    {Stroke: "#fbbf24", Fill: "#fef3c7"},
	"formula":      {FontSize: 16, Fill: "#333", Weight: "500", FontStyle: "italic"},
	"line":         {Stroke: "#667eea", StrokeWidth: 2},
	"table-header": {Fill: Tint("#667eea", 0.1)},
	"table-line":   {Stroke: "#333", StrokeWidth: 1},
}

// markers are the arrow heads available to line ends, by id
var markers = map[string]string{
	"arrow":       "#333",
	"arrow-blue":  "#667eea",
	"arrow-red":   "#e74c3c",
	"arrow-green": "#27ae60",
}

func (a Attrs) merged() Attrs {
	c, ok := classes[a.Class]
	if !ok {
		return a
	}
	if a.Stroke == "" {
		a.Stroke = c.Stroke
	}
	if a.StrokeWidth == 0 {
		a.StrokeWidth = c.StrokeWidth
	}
	if a.Dash == "" {
		a.Dash = c.Dash
	}
	if a.Cap == "" {
		a.Cap = c.Cap
	}
	if a.Fill == "" {
		a.Fill = c.Fill
	}
	if a.FillOpacity == 0 {
		a.FillOpacity = c.FillOpacity
	}
	if a.Rx == 0 {
		a.Rx = c.Rx
	}
	if a.FontSize == 0 {
		a.FontSize = c.FontSize
	}
	if a.Weight == "" {
		a.Weight = c.Weight
	}
	if a.FontStyle == "" {
		a.FontStyle = c.FontStyle
	}
	return a
}

// list returns the attributes as name="value" pairs, in a fixed order
func (a Attrs) list() []string {
	a = a.merged()
	var l []string
	attr := func(name, value string) {
		if value == "" {
			return
		}
		var b strings.Builder
		xml.EscapeText(&b, []byte(value))
		l = append(l, name+`="`+b.String()+`"`)
	}
	num := func(name string, v float64) {
		if v != 0 {
			attr(name, Num(v))
		}
	}
	attr("class", a.Class)
	attr("stroke", a.Stroke)
	num("stroke-width", a.StrokeWidth)
	attr("stroke-dasharray", a.Dash)
	attr("stroke-linecap", a.Cap)
	attr("fill", a.Fill)
	num("fill-opacity", a.FillOpacity)
	num("rx", a.Rx)
	num("font-size", a.FontSize)
	attr("font-weight", a.Weight)
	attr("font-style", a.FontStyle)
	attr("text-anchor", a.Anchor)
	if a.Marker != "" {
		attr("marker-end", "url(#"+a.Marker+")")
	}
	attr("transform", a.Transform)
	return l
}

// Canvas collects the elements of a figure
type Canvas struct {
	Width, Height float64
	body          bytes.Buffer
	doc           *svgo.SVG
	markers       map[string]bool
}

// New returns an empty canvas of the given size
func New(width, height float64) *Canvas {
	return &Canvas{Width: width, Height: height, markers: map[string]bool{}}
}

// use records the marker of a, and returns the writer for the body
func (c *Canvas) use(a Attrs) *svgo.SVG {
	if a.Marker != "" {
		if c.markers == nil {
			c.markers = map[string]bool{}
		}
		c.markers[a.Marker] = true
	}
	if c.doc == nil {
		c.doc = svgo.New(&c.body)
	}
	return c.doc
}

// Line draws a straight line
func (c *Canvas) Line(x1, y1, x2, y2 float64, a Attrs) {
	c.use(a).Line(x1, y1, x2, y2, a.list()...)
}

// Circle draws a circle centred on cx, cy
func (c *Canvas) Circle(cx, cy, r float64, a Attrs) {
	c.use(a).Circle(cx, cy, r, a.list()...)
}

// Rect draws a rectangle with its top left corner at x, y
func (c *Canvas) Rect(x, y, w, h float64, a Attrs) {
	c.use(a).Rect(x, y, w, h, a.list()...)
}

func coords(pts []Point) ([]float64, []float64) {
	x := make([]float64, len(pts))
	y := make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

// Polygon draws a closed shape through pts
func (c *Canvas) Polygon(pts []Point, a Attrs) {
	x, y := coords(pts)
	c.use(a).Polygon(x, y, a.list()...)
}

// Polyline draws an open line through pts
func (c *Canvas) Polyline(pts []Point, a Attrs) {
	if a.Fill == "" && classes[a.Class].Fill == "" {
		a.Fill = "none"
	}
	x, y := coords(pts)
	c.use(a).Polyline(x, y, a.list()...)
}

// Path draws the outline described by d
func (c *Canvas) Path(d *PathData, a Attrs) {
	if a.Fill == "" && classes[a.Class].Fill == "" {
		a.Fill = "none"
	}
	c.use(a).Path(d.String(), a.list()...)
}

// Text writes s with its baseline at y. The text is escaped.
func (c *Canvas) Text(x, y float64, s string, a Attrs) {
	c.use(a).Text(x, y, s, a.list()...)
}

// Label writes s centred on x
func (c *Canvas) Label(x, y float64, s string, class string) {
	c.Text(x, y, s, Attrs{Class: class, Anchor: "middle"})
}

// Dot draws a filled point with an optional label centred dy above
// it (or below, for a positive dy)
func (c *Canvas) Dot(p Point, r float64, a Attrs, label string, dy float64, la Attrs) {
	c.Circle(p.X, p.Y, r, a)
	if label == "" {
		return
	}
	if la.Anchor == "" {
		la.Anchor = "middle"
	}
	c.Text(p.X, p.Y+dy, label, la)
}

const fontStyle = "text { font-family: -apple-system, 'Helvetica Neue', sans-serif; }\n"

// String renders the full SVG document
func (c *Canvas) String() string {
	var b bytes.Buffer
	doc := svgo.New(&b)
	doc.Start(c.Width, c.Height, ` viewBox="0 0 `+Num(c.Width)+" "+Num(c.Height)+`"`)
	doc.Style("text/css", fontStyle)

	if len(c.markers) > 0 {
		var ids []string
		for id := range c.markers {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		doc.Def()
		for _, id := range ids {
			fill, ok := markers[id]
			if !ok {
				fill = "#333"
			}
			doc.Marker(id, 9, 3, 10, 10, `orient="auto"`)
			doc.Path("M0,0 L0,6 L9,3 z", `fill="`+fill+`"`)
			doc.MarkerEnd()
		}
		doc.DefEnd()
	}

	b.Write(c.body.Bytes())
	doc.End()
	return b.String()
}
