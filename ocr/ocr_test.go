// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package ocr

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const sampleHOCR = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"
    "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
 <head>
  <title></title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name='ocr-system' content='tesseract 5.3.0' />
 </head>
 <body>
  <div class='ocr_page' id='page_1' title='image "page.png"; bbox 0 0 1000 1000; ppageno 0'>
   <div class='ocr_carea' id='block_1_1' title="bbox 40 100 600 180">
    <p class='ocr_par' id='par_1_1' lang='chi_sim' title="bbox 40 100 600 180">
     <span class='ocr_line' id='line_1_1' title="bbox 40 100 600 130; baseline 0 0; x_size 30">
      <span class='ocrx_word' id='word_1_1' title='bbox 40 100 120 130; x_wconf 91'>例题</span>
      <span class='ocrx_word' id='word_1_2' title='bbox 130 101 200 130; x_wconf 88'>1</span>
     </span>
     <span class='ocr_line' id='line_1_2' title="bbox 40 480 600 510; baseline 0 0; x_size 30">
      <span class='ocrx_word' id='word_1_3' title='bbox 40 480 90 510; x_wconf 77'>针对</span>
      <span class='ocrx_word' id='word_1_4' title='bbox 95 482 150 510; x_wconf 80'>训练</span>
      <span class='ocrx_word' id='word_1_5' title='bbox 160 482 170 510; x_wconf 80'> </span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>
`

func TestParseHOCR(t *testing.T) {
	words, err := ParseHOCR([]byte(sampleHOCR))
	if err != nil {
		t.Fatalf("Error parsing hOCR: %v", err)
	}
	expected := []Word{
		{"例题", image.Rect(40, 100, 120, 130), 0, 91},
		{"1", image.Rect(130, 101, 200, 130), 0, 88},
		{"针对", image.Rect(40, 480, 90, 510), 1, 77},
		{"训练", image.Rect(95, 482, 150, 510), 1, 80},
	}
	if len(words) != len(expected) {
		t.Fatalf("Found %d words, expected %d: %v", len(words), len(expected), words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("Word %d is %v, expected %v", i, w, expected[i])
		}
	}
}

func TestCheckTesseractMissing(t *testing.T) {
	err := CheckTesseract(filepath.Join(t.TempDir(), "no-such-tesseract"))
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Expected ErrNotInstalled, got %v", err)
	}
}

// fakeTesseract writes a script which behaves like tesseract
// producing hOCR output, by copying a saved hOCR file
func fakeTesseract(t *testing.T) string {
	if runtime.GOOS == "windows" {
		t.Skip("Fake tesseract script needs a unix shell")
	}
	dir := t.TempDir()
	hocrfn := filepath.Join(dir, "sample.hocr")
	err := os.WriteFile(hocrfn, []byte(sampleHOCR), 0644)
	if err != nil {
		t.Fatalf("Error writing %s: %v", hocrfn, err)
	}
	script := filepath.Join(dir, "tesseract")
	err = os.WriteFile(script, []byte("#!/bin/sh\ncp '"+hocrfn+"' \"$2.hocr\"\necho 例题 > \"$2.txt\"\n"), 0755)
	if err != nil {
		t.Fatalf("Error writing %s: %v", script, err)
	}
	return script
}

func TestTesseractWords(t *testing.T) {
	cmd := fakeTesseract(t)
	tess := &Tesseract{Cmd: cmd, TempDir: t.TempDir()}

	img := image.NewGray(image.Rect(0, 0, 1000, 1000))
	words, err := tess.Words(context.Background(), img)
	if err != nil {
		t.Fatalf("Error getting words: %v", err)
	}
	if len(words) != 4 {
		t.Fatalf("Found %d words, expected 4", len(words))
	}

	// words from a sub image are in the parent image's coordinates
	sub := img.SubImage(image.Rect(0, 300, 1000, 360))
	words, err = tess.Words(context.Background(), sub)
	if err != nil {
		t.Fatalf("Error getting words: %v", err)
	}
	if words[0].Box.Min.Y != 400 {
		t.Errorf("First word top at %d, expected 400", words[0].Box.Min.Y)
	}

	text, err := tess.Text(context.Background(), img)
	if err != nil {
		t.Fatalf("Error getting text: %v", err)
	}
	if text != "例题\n" {
		t.Errorf("Text %q, expected %q", text, "例题\n")
	}
}

func TestTesseractArgs(t *testing.T) {
	cases := []struct {
		tess     Tesseract
		expected []string
	}{
		{Tesseract{}, []string{"in.png", "out", "--oem", "3", "--psm", "6", "-l", "chi_sim+eng"}},
		{Tesseract{Lang: "eng", OEM: 1, PSM: 7}, []string{"in.png", "out", "--oem", "1", "--psm", "7", "-l", "eng"}},
	}
	for _, c := range cases {
		args := c.tess.args("in.png", "out")
		if len(args) != len(c.expected) {
			t.Fatalf("Args %v, expected %v", args, c.expected)
		}
		for i := range args {
			if args[i] != c.expected[i] {
				t.Errorf("Args %v, expected %v", args, c.expected)
				break
			}
		}
	}
}
