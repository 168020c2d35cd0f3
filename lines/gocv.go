//go:build gocv

// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// OpenCV is a Detector using gocv's Canny and HoughLinesP
type OpenCV struct{}

// Default returns the OpenCV detector
func Default() Detector {
	return OpenCV{}
}

// Detect finds edges and then line segments in img
func (OpenCV) Detect(img *image.Gray, p Params) ([]Segment, error) {
	b := img.Bounds()
	// copy so that the pixel buffer is tightly packed from 0,0
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(g.Pix[y*g.Stride:(y+1)*g.Stride], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
	}

	src, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8U, g.Pix)
	if err != nil {
		return nil, fmt.Errorf("Error converting image for OpenCV: %v", err)
	}
	defer src.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(src, &edges, float32(p.CannyLow), float32(p.CannyHigh))

	found := gocv.NewMat()
	defer found.Close()
	gocv.HoughLinesPWithParams(edges, &found, float32(p.Rho), float32(p.Theta), p.Threshold, float32(p.MinLineLength), float32(p.MaxLineGap))

	var segs []Segment
	for i := 0; i < found.Rows(); i++ {
		v := found.GetVeciAt(i, 0)
		segs = append(segs, Segment{
			X1: int(v[0]) + b.Min.X,
			Y1: int(v[1]) + b.Min.Y,
			X2: int(v[2]) + b.Min.X,
			Y2: int(v[3]) + b.Min.Y,
		})
	}
	return segs, nil
}
