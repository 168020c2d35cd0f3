// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package lines

import (
	"image"
	"math"
	"sort"
)

// tolerance is how far, in pixels, an edge pixel may sit from the
// ideal line and still be counted as lying on it
const tolerance = 1

type peak struct {
	votes int32
	n, r  int
}

// HoughP finds line segments in an edge image, in the manner of the
// progressive probabilistic Hough transform but deterministic. Every
// edge pixel votes for each (theta, rho) line through it; peaks are
// taken in descending vote order, and for each the line is walked,
// collecting unused edge pixels, splitting wherever the gap between
// them exceeds p.MaxLineGap. Segments at least p.MinLineLength long
// are returned, and their pixels are not considered again.
//
// Coordinates are relative to the edge image's bounds.
func HoughP(edges *image.Gray, p Params) []Segment {
	b := edges.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	rhoStep, thetaStep := p.Rho, p.Theta
	if rhoStep <= 0 {
		rhoStep = 1
	}
	if thetaStep <= 0 {
		thetaStep = math.Pi / 180
	}

	avail := make([]bool, w*h)
	var pts []image.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if edges.Pix[edges.PixOffset(b.Min.X+x, b.Min.Y+y)] > 0 {
				avail[y*w+x] = true
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	if len(pts) == 0 {
		return nil
	}

	numAngle := int(math.Round(math.Pi / thetaStep))
	numRho := int(math.Round(float64((w+h)*2+1) / rhoStep))
	offset := (numRho - 1) / 2
	cosT := make([]float64, numAngle)
	sinT := make([]float64, numAngle)
	for n := 0; n < numAngle; n++ {
		theta := float64(n) * thetaStep
		cosT[n] = math.Cos(theta)
		sinT[n] = math.Sin(theta)
	}

	acc := make([]int32, numAngle*numRho)
	for _, pt := range pts {
		for n := 0; n < numAngle; n++ {
			r := int(math.Round((float64(pt.X)*cosT[n]+float64(pt.Y)*sinT[n])/rhoStep)) + offset
			if r >= 0 && r < numRho {
				acc[n*numRho+r]++
			}
		}
	}

	threshold := int32(p.Threshold)
	if threshold < 1 {
		threshold = 1
	}
	var peaks []peak
	for n := 0; n < numAngle; n++ {
		for r := 0; r < numRho; r++ {
			v := acc[n*numRho+r]
			if v < threshold || !localMax(acc, numAngle, numRho, n, r) {
				continue
			}
			peaks = append(peaks, peak{votes: v, n: n, r: r})
		}
	}
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].votes > peaks[j].votes
	})

	var segs []Segment
	for _, pk := range peaks {
		rho := float64(pk.r-offset) * rhoStep
		found := walk(avail, w, h, rho, cosT[pk.n], sinT[pk.n], p)
		segs = append(segs, found...)
	}

	for i := range segs {
		segs[i].X1 += b.Min.X
		segs[i].X2 += b.Min.X
		segs[i].Y1 += b.Min.Y
		segs[i].Y2 += b.Min.Y
	}
	return segs
}

func localMax(acc []int32, numAngle, numRho, n, r int) bool {
	v := acc[n*numRho+r]
	for dn := -1; dn <= 1; dn++ {
		for dr := -1; dr <= 1; dr++ {
			nn, rr := n+dn, r+dr
			if (dn == 0 && dr == 0) || nn < 0 || rr < 0 || nn >= numAngle || rr >= numRho {
				continue
			}
			if acc[nn*numRho+rr] > v {
				return false
			}
		}
	}
	return true
}

// walk steps along the line x*cos + y*sin = rho, one pixel at a time
// along its major axis, returning the segments of available edge
// pixels found on it and marking their pixels as used
func walk(avail []bool, w, h int, rho, cos, sin float64, p Params) []Segment {
	horizontal := math.Abs(sin) > math.Abs(cos)
	steps := h
	if horizontal {
		steps = w
	}
	// point returns the ideal line position at step i, and whether
	// it falls inside the image
	point := func(i int) (int, int, bool) {
		var x, y int
		if horizontal {
			x = i
			y = int(math.Round((rho - float64(i)*cos) / sin))
		} else {
			y = i
			x = int(math.Round((rho - float64(i)*sin) / cos))
		}
		return x, y, x >= 0 && y >= 0 && x < w && y < h
	}
	// hit reports whether an available edge pixel lies within
	// tolerance of the ideal point at step i
	hit := func(i int) bool {
		x, y, _ := point(i)
		for d := -tolerance; d <= tolerance; d++ {
			nx, ny := x, y
			if horizontal {
				ny += d
			} else {
				nx += d
			}
			if nx >= 0 && ny >= 0 && nx < w && ny < h && avail[ny*w+nx] {
				return true
			}
		}
		return false
	}
	consume := func(from, to int) {
		for i := from; i <= to; i++ {
			x, y, _ := point(i)
			for d := -tolerance; d <= tolerance; d++ {
				nx, ny := x, y
				if horizontal {
					ny += d
				} else {
					nx += d
				}
				if nx >= 0 && ny >= 0 && nx < w && ny < h {
					avail[ny*w+nx] = false
				}
			}
		}
	}

	var segs []Segment
	start, last, gap := -1, -1, 0
	finish := func() {
		if start < 0 {
			return
		}
		x1, y1, _ := point(start)
		x2, y2, _ := point(last)
		s := Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}
		if s.Len() >= p.MinLineLength {
			segs = append(segs, s)
			consume(start, last)
		}
		start, last, gap = -1, -1, 0
	}

	for i := 0; i < steps; i++ {
		if _, _, ok := point(i); !ok {
			finish()
			continue
		}
		if hit(i) {
			if start < 0 {
				start = i
			}
			last = i
			gap = 0
			continue
		}
		if start >= 0 {
			gap++
			if float64(gap) > p.MaxLineGap {
				finish()
			}
		}
	}
	finish()

	return segs
}
