// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package lines finds straight line segments in page images, for locating
// the rule between a worked example and its exercises, and for
// classifying figures by the lines they are drawn with.
package lines

import (
	"image"
	"math"
)

// Segment is a straight line between two points
type Segment struct {
	X1, Y1, X2, Y2 int
}

// Params controls edge detection and the line transform
type Params struct {
	CannyLow, CannyHigh float64
	Rho, Theta          float64
	Threshold           int
	MinLineLength       float64
	MaxLineGap          float64
}

// DefaultParams returns the usual edge thresholds and resolution,
// with the given vote threshold, minimum length and maximum gap
func DefaultParams(threshold int, minLen, maxGap float64) Params {
	return Params{
		CannyLow:      50,
		CannyHigh:     150,
		Rho:           1,
		Theta:         math.Pi / 180,
		Threshold:     threshold,
		MinLineLength: minLen,
		MaxLineGap:    maxGap,
	}
}

// Detector finds line segments in a grayscale image. Segment
// coordinates are in the image's own coordinate space.
type Detector interface {
	Detect(img *image.Gray, p Params) ([]Segment, error)
}

// Len is the length of the segment
func (s Segment) Len() float64 {
	return math.Hypot(float64(s.X2-s.X1), float64(s.Y2-s.Y1))
}

// MidY is the floored average of the two y coordinates
func (s Segment) MidY() int {
	return (s.Y1 + s.Y2) / 2
}

// Horizontal reports whether the segment rises or falls by less
// than tol pixels
func (s Segment) Horizontal(tol int) bool {
	dy := s.Y2 - s.Y1
	if dy < 0 {
		dy = -dy
	}
	return dy < tol
}

// Angle is the direction of the segment in degrees, in (-180, 180]
func (s Segment) Angle() float64 {
	return math.Atan2(float64(s.Y2-s.Y1), float64(s.X2-s.X1)) * 180 / math.Pi
}

// Hough is a Detector written in pure Go, using Canny and HoughP
type Hough struct{}

// Detect finds edges and then line segments in img
func (Hough) Detect(img *image.Gray, p Params) ([]Segment, error) {
	edges := Canny(img, p.CannyLow, p.CannyHigh)
	segs := HoughP(edges, p)
	min := img.Bounds().Min
	for i := range segs {
		segs[i].X1 += min.X
		segs[i].X2 += min.X
		segs[i].Y1 += min.Y
		segs[i].Y2 += min.Y
	}
	return segs, nil
}
