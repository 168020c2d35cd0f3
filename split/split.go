// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package split finds the row at which a scanned exercise page should
// be cut, separating the worked example above from the exercises
// below. It looks for the heading which introduces the exercises,
// then for a horizontal rule across the middle of the page, and
// otherwise falls back to a fixed proportion of the page height.
package split

import (
	"context"
	"image"
	"io"
	"log"
	"math"
	"strings"

	"rescribe.xyz/mathsheet/lines"
	"rescribe.xyz/mathsheet/ocr"
)

// Method records how a split row was decided
type Method string

const (
	MethodOCR     Method = "ocr"
	MethodLine    Method = "line"
	MethodDefault Method = "default"
	MethodFixed   Method = "fixed"
)

const (
	bandTop      = 0.35
	bandBottom   = 0.65
	stripStep    = 30
	stripHeight  = 60
	DefaultRatio = 0.48
	minRatio     = 0.3
	maxRatio     = 0.7
)

// Keywords are the headings which start the exercise half of a page,
// most specific first
var Keywords = []string{"针对训练", "对训练", "训练"}

// Result is a decided split row for a page
type Result struct {
	Method Method
	Row    int
	Height int
}

// Ratio is the split row as a proportion of the page height
func (r Result) Ratio() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Row) / float64(r.Height)
}

// DefaultRow is the row used when nothing better is found
func DefaultRow(height int) int {
	return int(math.Round(float64(height) * DefaultRatio))
}

// Clamp keeps a split row between 30% and 70% of the page height
func Clamp(row, height int) int {
	lo := int(float64(height) * minRatio)
	hi := int(float64(height) * maxRatio)
	if row > hi {
		row = hi
	}
	if row < lo {
		row = lo
	}
	return row
}

// Finder decides split rows. A nil OCR or Lines skips that step.
type Finder struct {
	OCR      ocr.Engine
	Lines    lines.Detector
	Keywords []string
	Logger   *log.Logger
}

func (f *Finder) keywords() []string {
	if len(f.Keywords) == 0 {
		return Keywords
	}
	return f.Keywords
}

func (f *Finder) logger() *log.Logger {
	if f.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return f.Logger
}

// Find decides the split row for an image. Errors from the
// detectors are logged and the next method is tried, so Find always
// returns a row.
func (f *Finder) Find(ctx context.Context, img image.Image) Result {
	gray := lines.Gray(img)
	h := gray.Bounds().Dy()

	method := MethodOCR
	row, ok, err := f.FindKeyword(ctx, gray)
	if err != nil {
		f.logger().Println("  OCR error:", err)
	}
	if !ok {
		method = MethodLine
		row, ok, err = f.FindLine(gray)
		if err != nil {
			f.logger().Println("  Line detection error:", err)
		}
	}
	if !ok {
		method = MethodDefault
		row = DefaultRow(h)
	}

	return Result{Method: method, Row: Clamp(row, h), Height: h}
}

// FindKeyword looks for the exercise heading. The whole page is
// recognised first; if no keyword is found, horizontal strips across
// the middle of the page are recognised one at a time. It returns the
// top row of the heading, or of the strip containing it.
func (f *Finder) FindKeyword(ctx context.Context, gray *image.Gray) (int, bool, error) {
	if f.OCR == nil {
		return 0, false, nil
	}
	words, err := f.OCR.Words(ctx, gray)
	if err != nil {
		return 0, false, err
	}
	if row, ok := MatchWords(words, f.keywords()); ok {
		return row, true, nil
	}

	b := gray.Bounds()
	h := b.Dy()
	start := int(float64(h) * bandTop)
	end := int(float64(h) * bandBottom)
	texts := map[int]string{}
	for _, k := range f.keywords() {
		for y := start; y < end; y += stripStep {
			text, done := texts[y]
			if !done {
				bottom := y + stripHeight
				if bottom > h {
					bottom = h
				}
				strip := gray.SubImage(image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+bottom))
				text, err = f.OCR.Text(ctx, strip)
				if err != nil {
					return 0, false, err
				}
				texts[y] = text
			}
			if strings.Contains(text, k) {
				return y, true, nil
			}
		}
	}
	return 0, false, nil
}

// MatchWords finds the first keyword present in the recognised words
// and returns the top of the word containing it. A keyword split
// across a word and the word before it on the same line also
// matches, with the later word's top returned.
func MatchWords(words []ocr.Word, keywords []string) (int, bool) {
	var texts []string
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	joined := strings.Join(texts, " ")

	for _, k := range keywords {
		if !strings.Contains(joined, k) {
			continue
		}
		for i, w := range words {
			if strings.Contains(w.Text, k) {
				return w.Box.Min.Y, true
			}
			if i > 0 && words[i-1].Line == w.Line && strings.Contains(words[i-1].Text+w.Text, k) {
				return w.Box.Min.Y, true
			}
		}
	}
	return 0, false
}

// FindLine looks for a long horizontal rule in the middle band of the
// page, returning the row of the one closest to the centre
func (f *Finder) FindLine(gray *image.Gray) (int, bool, error) {
	if f.Lines == nil {
		return 0, false, nil
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	segs, err := f.Lines.Detect(gray, lines.DefaultParams(100, float64(w)*0.5, 10))
	if err != nil {
		return 0, false, err
	}

	centre := float64(h) * 0.5
	best, found := 0, false
	for _, s := range segs {
		if !s.Horizontal(10) {
			continue
		}
		y := s.MidY() - b.Min.Y
		if float64(y) <= float64(h)*bandTop || float64(y) >= float64(h)*bandBottom {
			continue
		}
		if !found || math.Abs(float64(y)-centre) < math.Abs(float64(best)-centre) {
			best, found = y, true
		}
	}
	return best, found, nil
}
