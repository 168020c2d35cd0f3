// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Border is the white margin added around saved figures
const Border = 10

// Name is the file name for the i'th figure (counting from 0) of a page
func Name(stem string, i int, kind Kind) string {
	return fmt.Sprintf("%s_fig%d_%s.png", stem, i+1, kind)
}

// Padded crops a region from img and surrounds it with a white
// border
func Padded(img image.Image, r image.Rectangle) *image.NRGBA {
	b := img.Bounds()
	cropped := imaging.Crop(img, r.Add(b.Min))
	bg := imaging.New(r.Dx()+2*Border, r.Dy()+2*Border, color.White)
	return imaging.Paste(bg, cropped, image.Pt(Border, Border))
}

// Extract finds the figures on the page at path and saves each,
// returning the paths written. outPath maps a file name to where it
// should be saved.
func (e *Extractor) Extract(path string, outPath func(name string) string) ([]string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error opening image %s: %v", path, err)
	}
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var saved []string
	for i, r := range e.Regions(img) {
		fn := outPath(Name(stem, i, r.Kind))
		err = imaging.Save(Padded(img, r.Rectangle), fn)
		if err != nil {
			return saved, fmt.Errorf("Error saving figure %s: %v", fn, err)
		}
		saved = append(saved, fn)
	}
	return saved, nil
}
