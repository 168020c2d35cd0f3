// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package lines

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

const (
	tan22 = 0.4142135623730951
	tan67 = 2.414213562373095
)

// Gray converts any image to a grayscale image with its origin at 0,0
func Gray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Canny finds the edges in an image, returning an image of the same
// size in which edge pixels are 255 and all others 0. Gradients are
// found with a 3x3 Sobel operator and an L1 magnitude; edges are
// thinned by non-maximum suppression along the gradient direction and
// kept by hysteresis between the low and high thresholds.
func Canny(img *image.Gray, low, high float64) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return out
	}

	px := func(x, y int) float64 {
		return float64(img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)])
	}

	mag := make([]float64, w*h)
	dir := make([]uint8, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := px(x+1, y-1) + 2*px(x+1, y) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x-1, y) - px(x-1, y+1)
			gy := px(x-1, y+1) + 2*px(x, y+1) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x, y-1) - px(x+1, y-1)
			ax, ay := math.Abs(gx), math.Abs(gy)
			i := y*w + x
			mag[i] = ax + ay
			switch {
			case ay <= ax*tan22:
				dir[i] = 0
			case ay >= ax*tan67:
				dir[i] = 2
			case (gx > 0) == (gy > 0):
				dir[i] = 1
			default:
				dir[i] = 3
			}
		}
	}

	// 0: compare left and right, 1: up-left and down-right,
	// 2: up and down, 3: up-right and down-left
	offsets := [4][2]int{{-1, 1}, {-w - 1, w + 1}, {-w, w}, {-w + 1, w - 1}}

	candidate := make([]bool, w*h)
	var stack []int
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}
			o := offsets[dir[i]]
			if !(m > mag[i+o[0]] && m >= mag[i+o[1]]) {
				continue
			}
			candidate[i] = true
			if m > high {
				out.Pix[i] = 255
				stack = append(stack, i)
			}
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				n := ny*w + nx
				if candidate[n] && out.Pix[n] == 0 {
					out.Pix[n] = 255
					stack = append(stack, n)
				}
			}
		}
	}

	return out
}
