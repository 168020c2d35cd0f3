// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"
)

// page makes a white image with black horizontal bars, each given
// as x0, x1, y and thickness
func page(w, h int, bars ...[4]int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for _, bar := range bars {
		for y := bar[2]; y < bar[2]+bar[3]; y++ {
			for x := bar[0]; x < bar[1]; x++ {
				img.SetGray(x, y, color.Gray{0})
			}
		}
	}
	return img
}

func TestCannyBlank(t *testing.T) {
	edges := Canny(page(50, 50), 50, 150)
	for _, v := range edges.Pix {
		if v != 0 {
			t.Fatalf("Found an edge in a blank image")
		}
	}
}

func TestCannyBar(t *testing.T) {
	edges := Canny(page(100, 100, [4]int{10, 90, 50, 3}), 50, 150)
	rows := map[int]int{}
	for y := 0; y < 100; y++ {
		for x := 20; x < 80; x++ {
			if edges.GrayAt(x, y).Y > 0 {
				rows[y]++
			}
		}
	}
	for _, y := range []int{49, 52} {
		if rows[y] != 60 {
			t.Errorf("Row %d has %d edge pixels in the middle, expected 60", y, rows[y])
		}
	}
	if len(rows) != 2 {
		t.Errorf("Edges found on %d rows, expected 2: %v", len(rows), rows)
	}
}

func TestHorizontalLines(t *testing.T) {
	cases := []struct {
		bar   [4]int
		minY  int
		maxY  int
		found bool
	}{
		{[4]int{50, 550, 300, 3}, 298, 303, true},
		{[4]int{100, 500, 120, 2}, 118, 122, true},
		{[4]int{100, 200, 300, 3}, 0, 0, false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.bar), func(t *testing.T) {
			img := page(600, 600, c.bar)
			segs, err := Hough{}.Detect(img, DefaultParams(100, 300, 10))
			if err != nil {
				t.Fatalf("Error detecting lines: %v", err)
			}
			var horiz []Segment
			for _, s := range segs {
				if s.Horizontal(10) {
					horiz = append(horiz, s)
				}
			}
			if !c.found {
				if len(horiz) > 0 {
					t.Errorf("Found lines %v, expected none", horiz)
				}
				return
			}
			if len(horiz) == 0 {
				t.Fatalf("No horizontal lines found")
			}
			for _, s := range horiz {
				if s.MidY() < c.minY || s.MidY() > c.maxY {
					t.Errorf("Line %v at y %d, expected between %d and %d", s, s.MidY(), c.minY, c.maxY)
				}
				if s.Len() < 300 {
					t.Errorf("Line %v shorter than minimum length", s)
				}
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	img := page(400, 400, [4]int{20, 380, 100, 2}, [4]int{40, 360, 250, 4})
	p := DefaultParams(100, 200, 10)
	a, _ := Hough{}.Detect(img, p)
	b, _ := Hough{}.Detect(img, p)
	if len(a) != len(b) {
		t.Fatalf("Different numbers of lines across runs: %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Line %d differs across runs: %v and %v", i, a[i], b[i])
		}
	}
}

func TestSegment(t *testing.T) {
	cases := []struct {
		s     Segment
		horiz bool
		midy  int
		angle float64
	}{
		{Segment{0, 10, 100, 10}, true, 10, 0},
		{Segment{0, 10, 100, 19}, true, 14, 0},
		{Segment{0, 10, 100, 20}, false, 15, 0},
		{Segment{50, 0, 50, 100}, false, 50, 90},
		{Segment{100, 5, 0, 5}, true, 5, 180},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.s), func(t *testing.T) {
			if c.s.Horizontal(10) != c.horiz {
				t.Errorf("Horizontal %v, expected %v", c.s.Horizontal(10), c.horiz)
			}
			if c.s.MidY() != c.midy {
				t.Errorf("MidY %d, expected %d", c.s.MidY(), c.midy)
			}
			if math.Abs(c.s.Angle()-c.angle) > 1e-9 && c.angle != 0 {
				t.Errorf("Angle %f, expected %f", c.s.Angle(), c.angle)
			}
		})
	}
}
