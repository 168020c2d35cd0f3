//go:build gosseract

// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Gosseract is an Engine which calls the tesseract library directly,
// avoiding a temporary file and process per image
type Gosseract struct {
	Lang []string
	PSM  int
}

// NewGosseract returns an in-process engine for the given languages,
// or chi_sim and eng if none are given
func NewGosseract(lang ...string) (*Gosseract, error) {
	if len(lang) == 0 {
		lang = []string{"chi_sim", "eng"}
	}
	return &Gosseract{Lang: lang, PSM: 6}, nil
}

func (g *Gosseract) client(img image.Image) (*gosseract.Client, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return nil, fmt.Errorf("Error encoding image: %v", err)
	}
	c := gosseract.NewClient()
	err = c.SetLanguage(g.Lang...)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("Error setting languages %v: %v", g.Lang, err)
	}
	err = c.SetPageSegMode(gosseract.PageSegMode(g.PSM))
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("Error setting page segmentation mode: %v", err)
	}
	err = c.SetImageFromBytes(buf.Bytes())
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("Error setting image: %v", err)
	}
	return c, nil
}

// Words returns the words found, grouping them into lines by
// their vertical overlap
func (g *Gosseract) Words(ctx context.Context, img image.Image) ([]Word, error) {
	c, err := g.client(img)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("Error getting word boxes: %v", err)
	}

	min := img.Bounds().Min
	var words []Word
	line := 0
	for i, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		if i > 0 && !sameLine(boxes[i-1].Box, b.Box) {
			line++
		}
		words = append(words, Word{Text: text, Box: b.Box.Add(min), Line: line, Conf: b.Confidence})
	}
	return words, nil
}

func sameLine(a, b image.Rectangle) bool {
	if b.Min.X < a.Min.X {
		return false
	}
	overlap := a.Intersect(image.Rect(a.Min.X, b.Min.Y, a.Max.X, b.Max.Y)).Dy()
	return overlap*2 > a.Dy() || overlap*2 > b.Dy()
}

// Text returns all the text found
func (g *Gosseract) Text(ctx context.Context, img image.Image) (string, error) {
	c, err := g.client(img)
	if err != nil {
		return "", err
	}
	defer c.Close()
	return c.Text()
}
