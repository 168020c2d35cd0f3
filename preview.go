// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws an SVG document onto a white image, scale pixels
// to each user unit. Text is not drawn, as oksvg does not support
// it, so previews show only the shapes of a figure.
func Rasterize(svg string, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		scale = 1
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("Error reading svg: %v", err)
	}
	w, h := int(icon.ViewBox.W*scale), int(icon.ViewBox.H*scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("Error reading svg: empty view box %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1)
	return img, nil
}

// SavePreview rasterizes an SVG document to a PNG file
func SavePreview(svg string, scale float64, path string) error {
	img, err := Rasterize(svg, scale)
	if err != nil {
		return err
	}
	err = imaging.Save(img, path)
	if err != nil {
		return fmt.Errorf("Error saving preview %s: %v", path, err)
	}
	return nil
}
