// integralimg provides summed-area tables over binary ink masks,
// used to dilate figure regions and measure how much of an area is
// covered by ink without rescanning pixels.
package integralimg

import (
	"image"
)

// I is an Integral Image. It has one more row and column than the
// image it was made from, so that row 0 and column 0 are all zero.
type I [][]uint64

// Window is a part of an Integral Image
type Window struct {
	topleft     uint64
	topright    uint64
	bottomleft  uint64
	bottomright uint64
	width       int
	height      int
}

// IsInk reports whether a gray value counts as ink
func IsInk(v uint8) bool {
	return v < 128
}

// FromMask creates an integral image counting the true cells of a
// row-major mask of the given width and height
func FromMask(mask []bool, w, h int) I {
	integral := make(I, h+1)
	integral[0] = make([]uint64, w+1)
	for y := 0; y < h; y++ {
		row := make([]uint64, w+1)
		var run uint64
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				run++
			}
			row[x+1] = integral[y][x+1] + run
		}
		integral[y+1] = row
	}
	return integral
}

// ToInkIntegralImg creates an integral image counting the ink
// pixels of img. Coordinates are relative to the image bounds.
func ToInkIntegralImg(img *image.Gray) I {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask[y*w+x] = IsInk(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}
	return FromMask(mask, w, h)
}

// Width is the width of the source image
func (i I) Width() int {
	if len(i) == 0 {
		return 0
	}
	return len(i[0]) - 1
}

// Height is the height of the source image
func (i I) Height() int {
	if len(i) == 0 {
		return 0
	}
	return len(i) - 1
}

// GetRect gets the corner values for a rectangle of the source
// image, clipped to the image
func (i I) GetRect(r image.Rectangle) Window {
	r = r.Intersect(image.Rect(0, 0, i.Width(), i.Height()))
	if r.Empty() {
		return Window{}
	}
	return Window{
		topleft:     i[r.Min.Y][r.Min.X],
		topright:    i[r.Min.Y][r.Max.X],
		bottomleft:  i[r.Max.Y][r.Min.X],
		bottomright: i[r.Max.Y][r.Max.X],
		width:       r.Dx(),
		height:      r.Dy(),
	}
}

// GetWindow gets a square Window of the given size centred on
// x, y, clipped to the image
func (i I) GetWindow(x, y, size int) Window {
	lo := size / 2
	hi := size - lo
	return i.GetRect(image.Rect(x-lo, y-lo, x+hi, y+hi))
}

// Sum returns the sum of all pixels in a Window
func (w Window) Sum() uint64 {
	return w.bottomright + w.topleft - w.topright - w.bottomleft
}

// Size returns the total size of a Window
func (w Window) Size() int {
	return w.width * w.height
}

// Mean returns the average value of pixels in a Window, which for
// an ink integral is the proportion of the window that is ink
func (w Window) Mean() float64 {
	if w.Size() == 0 {
		return 0
	}
	return float64(w.Sum()) / float64(w.Size())
}

// Dilate grows the true cells of a w x h mask by a square of the
// given size, repeated iterations times. This matches a morphological
// dilation with a size x size rectangular kernel centred on each
// pixel.
func Dilate(mask []bool, w, h, size, iterations int) []bool {
	out := mask
	for n := 0; n < iterations; n++ {
		integral := FromMask(out, w, h)
		next := make([]bool, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				next[y*w+x] = integral.GetWindow(x, y, size).Sum() > 0
			}
		}
		out = next
	}
	return out
}
