//go:build !gosseract

// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package ocr

import (
	"errors"
	"testing"
)

func TestGosseractNotEnabled(t *testing.T) {
	_, err := NewGosseract()
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got %v", err)
	}
}
