//go:build !gocv

// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package lines

// Default returns the pure Go detector. Build with -tags gocv to use
// OpenCV instead.
func Default() Detector {
	return Hough{}
}
