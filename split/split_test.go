// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package split

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"

	"rescribe.xyz/mathsheet/lines"
	"rescribe.xyz/mathsheet/ocr"
)

// fakeOCR returns fixed words for whole pages, and for strips
// returns the text of any keyword whose row lies in the strip
type fakeOCR struct {
	words    []ocr.Word
	rows     map[int]string
	err      error
	textruns int
}

func (f *fakeOCR) Words(ctx context.Context, img image.Image) ([]ocr.Word, error) {
	return f.words, f.err
}

func (f *fakeOCR) Text(ctx context.Context, img image.Image) (string, error) {
	f.textruns++
	if f.err != nil {
		return "", f.err
	}
	b := img.Bounds()
	s := ""
	for y, text := range f.rows {
		if y >= b.Min.Y && y < b.Max.Y {
			s += text
		}
	}
	return s, nil
}

type fakeLines struct {
	segs []lines.Segment
	err  error
}

func (f fakeLines) Detect(img *image.Gray, p lines.Params) ([]lines.Segment, error) {
	return f.segs, f.err
}

func blank(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func word(text string, line, y int) ocr.Word {
	return ocr.Word{Text: text, Line: line, Box: image.Rect(10, y, 60, y+30)}
}

func TestFind(t *testing.T) {
	cases := []struct {
		name   string
		ocr    ocr.Engine
		lines  lines.Detector
		method Method
		row    int
	}{
		{"keyword", &fakeOCR{words: []ocr.Word{word("例题", 0, 100), word("针对训练", 1, 480)}}, nil, MethodOCR, 480},
		{"keywordclamped", &fakeOCR{words: []ocr.Word{word("训练", 0, 100)}}, nil, MethodOCR, 300},
		{"strip", &fakeOCR{rows: map[int]string{415: "对训练"}}, nil, MethodOCR, 380},
		{"line", &fakeOCR{}, fakeLines{segs: []lines.Segment{{0, 420, 900, 424}, {0, 530, 900, 530}}}, MethodLine, 530},
		{"lineoutsideband", &fakeOCR{}, fakeLines{segs: []lines.Segment{{0, 350, 900, 350}, {0, 700, 900, 700}}}, MethodDefault, 480},
		{"slopedline", nil, fakeLines{segs: []lines.Segment{{0, 450, 900, 470}}}, MethodDefault, 480},
		{"ocrerror", &fakeOCR{err: errors.New("broken")}, fakeLines{segs: []lines.Segment{{0, 600, 900, 600}}}, MethodLine, 600},
		{"lineerror", nil, fakeLines{err: errors.New("broken")}, MethodDefault, 480},
		{"nothing", nil, nil, MethodDefault, 480},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := Finder{OCR: c.ocr, Lines: c.lines}
			r := f.Find(context.Background(), blank(1000, 1000))
			if r.Method != c.method {
				t.Errorf("Method %s, expected %s", r.Method, c.method)
			}
			if r.Row != c.row {
				t.Errorf("Row %d, expected %d", r.Row, c.row)
			}
			if r.Height != 1000 {
				t.Errorf("Height %d, expected 1000", r.Height)
			}
		})
	}
}

func TestStripTextReused(t *testing.T) {
	o := &fakeOCR{}
	f := Finder{OCR: o}
	_, ok, err := f.FindKeyword(context.Background(), blank(100, 1000))
	if err != nil || ok {
		t.Fatalf("Expected no keyword and no error, got %v %v", ok, err)
	}
	// strips start at 350, 380, ... 620
	if o.textruns != 10 {
		t.Errorf("Recognised %d strips, expected 10", o.textruns)
	}
}

func TestMatchWords(t *testing.T) {
	cases := []struct {
		name  string
		words []ocr.Word
		row   int
		ok    bool
	}{
		{"whole", []ocr.Word{word("针对训练", 0, 50)}, 50, true},
		{"inside", []ocr.Word{word("一、针对训练：", 0, 70)}, 70, true},
		{"adjacent", []ocr.Word{word("针对", 0, 90), word("训", 0, 91), word("练", 0, 92), word("训练", 1, 300)}, 92, true},
		{"otherline", []ocr.Word{word("训", 0, 90), word("练", 1, 120), word("训练", 2, 300)}, 300, true},
		{"splitonly", []ocr.Word{word("训", 0, 90), word("练", 0, 92)}, 0, false},
		{"firstoccurrence", []ocr.Word{word("习题", 0, 10), word("训练", 1, 200), word("训练", 2, 400)}, 200, true},
		{"specificfirst", []ocr.Word{word("训练", 0, 200), word("针对训练", 1, 400)}, 400, true},
		{"none", []ocr.Word{word("例题", 0, 10)}, 0, false},
		{"empty", nil, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row, ok := MatchWords(c.words, Keywords)
			if ok != c.ok || row != c.row {
				t.Errorf("Got %d %v, expected %d %v", row, ok, c.row, c.ok)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	for _, h := range []int{1, 7, 99, 1000, 1337, 4001} {
		for _, row := range []int{-10, 0, h / 4, h / 2, h * 3 / 4, h, h * 2} {
			t.Run(fmt.Sprintf("%d_%d", h, row), func(t *testing.T) {
				c := Clamp(row, h)
				lo, hi := int(float64(h)*0.3), int(float64(h)*0.7)
				if c < lo || c > hi {
					t.Errorf("Clamped to %d, outside %d..%d", c, lo, hi)
				}
				if row >= lo && row <= hi && c != row {
					t.Errorf("Clamped %d to %d, though already in range", row, c)
				}
			})
		}
	}
}

func TestDefaultRow(t *testing.T) {
	cases := []struct {
		h, row int
	}{
		{1000, 480},
		{1001, 480},
		{1010, 485},
		{2339, 1123},
	}
	for _, c := range cases {
		if r := DefaultRow(c.h); r != c.row {
			t.Errorf("Default row for %d is %d, expected %d", c.h, r, c.row)
		}
		r := (&Finder{}).Find(context.Background(), blank(10, c.h))
		if r.Row != c.row || r.Method != MethodDefault {
			t.Errorf("Find on blank %d high page gave %v, expected %d", c.h, r, c.row)
		}
	}
}

func TestRatio(t *testing.T) {
	r := Result{Row: 480, Height: 1000}
	if r.Ratio() != 0.48 {
		t.Errorf("Ratio %f, expected 0.48", r.Ratio())
	}
	if (Result{}).Ratio() != 0 {
		t.Errorf("Ratio of empty result should be 0")
	}
}
