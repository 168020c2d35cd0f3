// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package figure finds the diagrams on scanned exercise pages, such
// as number lines, tables and geometric shapes, and saves each as its
// own image.
package figure

import (
	"image"
	"io"
	"log"
	"sort"

	"rescribe.xyz/mathsheet/internal/integralimg"
	"rescribe.xyz/mathsheet/lines"
	"rescribe.xyz/preproc"
)

// Kind is the sort of diagram a region holds
type Kind string

const (
	NumberLine Kind = "number_line"
	Table      Kind = "table"
	Geometry   Kind = "geometry"
	Shape      Kind = "shape"
	Unknown    Kind = "unknown"
)

const (
	dilateSize       = 15
	dilateIterations = 2
	minAreaRatio     = 0.01
	maxAreaRatio     = 0.5
	maxAspect        = 10
	minAspect        = 0.1
	stripAbove       = 60
	stripBelow       = 40
	stripSide        = 20
	duplicateOverlap = 0.5
)

// Region is an area of a page holding a diagram
type Region struct {
	image.Rectangle
	Kind Kind
}

// Binarizer returns a mask of the ink pixels of an image, in row
// order relative to the image bounds
type Binarizer func(img *image.Gray) []bool

// DefaultThreshold is the lightest grey counted as ink by default
const DefaultThreshold = 240

// Threshold treats every pixel no lighter than thresh as ink
func Threshold(thresh uint8) Binarizer {
	return func(img *image.Gray) []bool {
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		mask := make([]bool, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				mask[y*w+x] = img.GrayAt(b.Min.X+x, b.Min.Y+y).Y <= thresh
			}
		}
		return mask
	}
}

// Sauvola binarises adaptively, with a window of wsize pixels
func Sauvola(ksize float64, wsize int) Binarizer {
	return func(img *image.Gray) []bool {
		bin := preproc.IntegralSauvola(img, ksize, wsize)
		b := bin.Bounds()
		w, h := b.Dx(), b.Dy()
		mask := make([]bool, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				mask[y*w+x] = integralimg.IsInk(bin.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
		return mask
	}
}

// Extractor finds diagram regions on pages
type Extractor struct {
	Lines     lines.Detector
	Binarizer Binarizer
	Logger    *log.Logger
}

func (e *Extractor) binarizer() Binarizer {
	if e.Binarizer == nil {
		return Threshold(DefaultThreshold)
	}
	return e.Binarizer
}

func (e *Extractor) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return e.Logger
}

// Regions finds all the diagrams on a page: blocks of ink of a
// plausible size and shape, followed by any number lines found from
// long horizontal rules. Regions overlapping an earlier one by more
// than half their own area are dropped.
func (e *Extractor) Regions(img image.Image) []Region {
	gray := lines.Gray(img)
	all := append(e.Blocks(gray), e.NumberLines(gray)...)
	return Dedupe(all)
}

// Blocks finds connected blocks of ink, after joining nearby marks,
// which cover between 1% and 50% of the page and are not too long
// and thin to be anything but a line of text. They are classified
// and returned ordered from the top of the page.
func (e *Extractor) Blocks(gray *image.Gray) []Region {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := e.binarizer()(gray)
	dilated := integralimg.Dilate(mask, w, h, dilateSize, dilateIterations)

	minArea := float64(w*h) * minAreaRatio
	maxArea := float64(w*h) * maxAreaRatio

	var regions []Region
	for _, r := range outermost(components(dilated, w, h)) {
		area := float64(r.Dx() * r.Dy())
		if area < minArea || area > maxArea {
			continue
		}
		aspect := float64(r.Dx()) / float64(r.Dy())
		if aspect > maxAspect || aspect < minAspect {
			continue
		}
		roi := gray.SubImage(r.Add(b.Min)).(*image.Gray)
		regions = append(regions, Region{Rectangle: r, Kind: e.Classify(roi)})
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Min.Y < regions[j].Min.Y
	})
	return regions
}

// Classify decides what kind of diagram an image holds from the
// directions of the straight lines in it
func (e *Extractor) Classify(roi *image.Gray) Kind {
	if roi.Bounds().Empty() {
		return Unknown
	}
	if e.Lines == nil {
		return Shape
	}
	segs, err := e.Lines.Detect(roi, lines.DefaultParams(50, 30, 10))
	if err != nil {
		e.logger().Println("Error detecting lines:", err)
		return Shape
	}
	return Classify(segs)
}

// Classify decides what kind of diagram a set of lines makes up:
// several horizontals with barely any verticals is a number line,
// a few of each a table, and many lines in any direction geometry
func Classify(segs []lines.Segment) Kind {
	if len(segs) == 0 {
		return Shape
	}
	var horiz, vert int
	for _, s := range segs {
		a := s.Angle()
		if a < 0 {
			a = -a
		}
		switch {
		case a < 10 || a > 170:
			horiz++
		case a > 80 && a < 100:
			vert++
		}
	}
	switch {
	case horiz > 3 && vert < 2:
		return NumberLine
	case horiz > 2 && vert > 2:
		return Table
	case len(segs) > 5:
		return Geometry
	}
	return Shape
}

// NumberLines finds long horizontal rules, at least 30% of the page
// width, and returns regions around them big enough to hold the
// ticks and labels of a number line
func (e *Extractor) NumberLines(gray *image.Gray) []Region {
	if e.Lines == nil {
		return nil
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	segs, err := e.Lines.Detect(gray, lines.DefaultParams(100, float64(w)*0.3, 20))
	if err != nil {
		e.logger().Println("Error detecting lines:", err)
		return nil
	}

	var regions []Region
	for _, s := range segs {
		if !s.Horizontal(10) {
			continue
		}
		s.X1, s.X2 = s.X1-b.Min.X, s.X2-b.Min.X
		s.Y1, s.Y2 = s.Y1-b.Min.Y, s.Y2-b.Min.Y
		yc := s.MidY()
		left, right := s.X1, s.X2
		if left > right {
			left, right = right, left
		}
		r := image.Rect(
			max(0, left-stripSide), max(0, yc-stripAbove),
			min(w, right+stripSide), min(h, yc+stripBelow))
		regions = append(regions, Region{Rectangle: r, Kind: NumberLine})
	}
	return regions
}

// Dedupe drops any region which overlaps one already kept by more
// than half of its own area
func Dedupe(regions []Region) []Region {
	var kept []Region
	for _, r := range regions {
		dup := false
		own := float64(r.Dx() * r.Dy())
		for _, k := range kept {
			o := r.Intersect(k.Rectangle)
			if float64(o.Dx()*o.Dy()) > own*duplicateOverlap {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, r)
		}
	}
	return kept
}

// components labels the 8-connected areas of a mask, returning the
// bounding box of each in the order they are first met
func components(mask []bool, w, h int) []image.Rectangle {
	seen := make([]bool, w*h)
	var boxes []image.Rectangle
	var stack []int
	for start := range mask {
		if !mask[start] || seen[start] {
			continue
		}
		seen[start] = true
		stack = append(stack[:0], start)
		box := image.Rect(start%w, start/w, start%w+1, start/w+1)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%w, i/w
			box = box.Union(image.Rect(x, y, x+1, y+1))
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if mask[n] && !seen[n] {
						seen[n] = true
						stack = append(stack, n)
					}
				}
			}
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// outermost drops boxes which lie wholly inside another box, so
// marks enclosed by a frame are not reported separately
func outermost(boxes []image.Rectangle) []image.Rectangle {
	var out []image.Rectangle
	for i, b := range boxes {
		inside := false
		for j, o := range boxes {
			if i != j && b.In(o) && !b.Eq(o) {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, b)
		}
	}
	return out
}
