//go:build !gosseract

// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package ocr

import (
	"context"
	"image"
)

// Gosseract is only usable when built with -tags gosseract
type Gosseract struct{}

// NewGosseract returns ErrNotEnabled; rebuild with -tags gosseract
// to use the tesseract library in process.
func NewGosseract(lang ...string) (*Gosseract, error) {
	return nil, ErrNotEnabled
}

func (g *Gosseract) Words(ctx context.Context, img image.Image) ([]Word, error) {
	return nil, ErrNotEnabled
}

func (g *Gosseract) Text(ctx context.Context, img image.Image) (string, error) {
	return "", ErrNotEnabled
}
