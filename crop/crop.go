// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package crop cuts scanned exercise pages into two images, the
// worked example above the split row and the exercises below it.
package crop

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"rescribe.xyz/mathsheet/split"
)

const (
	exampleSuffix  = "_例题"
	exerciseSuffix = "_习题"
)

// DefaultQuality is the JPEG quality used for saved halves
const DefaultQuality = 95

// Splitter decides where a page should be cut
type Splitter interface {
	SplitRow(ctx context.Context, img image.Image) split.Result
}

// FixedRatio cuts every page at the same proportion of its height
type FixedRatio float64

// SplitRow returns the row at the ratio, rounded down
func (r FixedRatio) SplitRow(ctx context.Context, img image.Image) split.Result {
	h := img.Bounds().Dy()
	return split.Result{Method: split.MethodFixed, Row: int(float64(h) * float64(r)), Height: h}
}

// Smart cuts each page where a split.Finder decides
type Smart struct {
	Finder *split.Finder
}

// SplitRow runs the finder's heuristics
func (s Smart) SplitRow(ctx context.Context, img image.Image) split.Result {
	return s.Finder.Find(ctx, img)
}

// Split cuts img at row, returning the part above the row and the
// part from the row down. Rows outside the image are moved to its
// nearest edge.
func Split(img image.Image, row int) (image.Image, image.Image) {
	b := img.Bounds()
	if row < 0 {
		row = 0
	}
	if row > b.Dy() {
		row = b.Dy()
	}
	top := imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+row))
	bottom := imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y+row, b.Max.X, b.Max.Y))
	return top, bottom
}

// Names returns the example and exercise file names for a page
func Names(path string) (string, string) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + exampleSuffix + ext, stem + exerciseSuffix + ext
}

// Open decodes an image file
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error opening image %s: %v", path, err)
	}
	return img, nil
}

// Save encodes an image to a file, in the format given by its
// extension, using quality for JPEGs
func Save(img image.Image, path string, quality int) error {
	if quality <= 0 {
		quality = DefaultQuality
	}
	err := imaging.Save(img, path, imaging.JPEGQuality(quality))
	if err != nil {
		return fmt.Errorf("Error saving image %s: %v", path, err)
	}
	return nil
}
