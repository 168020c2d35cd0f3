// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package ocr recognises text on page images, returning the words
// found with their positions. The usual engine runs the tesseract
// command; an in-process engine is available with -tags gosseract.
package ocr

import (
	"context"
	"errors"
	"image"
)

// ErrNotInstalled is returned when the tesseract command can't be run
var ErrNotInstalled = errors.New("tesseract is not installed")

// ErrNotEnabled is returned by engines that were not compiled in
var ErrNotEnabled = errors.New("OCR engine not enabled in this build")

// InstallHint tells people how to get tesseract and the Chinese
// training data
const InstallHint = `Tesseract OCR, with the chi_sim language data, is needed.

Install it with:
  macOS:          brew install tesseract tesseract-lang
  Debian/Ubuntu:  sudo apt install tesseract-ocr tesseract-ocr-chi-sim
  Windows:        https://github.com/UB-Mannheim/tesseract/wiki`

// Word is a single recognised word. Words that share a Line value
// were recognised on the same text line.
type Word struct {
	Text string
	Box  image.Rectangle
	Line int
	Conf float64
}

// Engine recognises text in images
type Engine interface {
	Words(ctx context.Context, img image.Image) ([]Word, error)
	Text(ctx context.Context, img image.Image) (string, error)
}
