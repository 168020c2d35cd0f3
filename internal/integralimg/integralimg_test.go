package integralimg

import (
	"fmt"
	"image"
	"image/color"
	"testing"
)

func TestSums(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	// a 3x2 block of ink at 4,4
	for y := 4; y < 6; y++ {
		for x := 4; x < 7; x++ {
			img.SetGray(x, y, color.Gray{0})
		}
	}
	integral := ToInkIntegralImg(img)

	cases := []struct {
		r    image.Rectangle
		sum  uint64
		size int
	}{
		{image.Rect(0, 0, 10, 10), 6, 100},
		{image.Rect(4, 4, 7, 6), 6, 6},
		{image.Rect(0, 0, 4, 4), 0, 16},
		{image.Rect(5, 5, 20, 20), 2, 25},
		{image.Rect(-5, -5, 5, 5), 1, 25},
		{image.Rect(20, 20, 30, 30), 0, 0},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.r), func(t *testing.T) {
			w := integral.GetRect(c.r)
			if w.Sum() != c.sum {
				t.Errorf("Sum %d, expected %d", w.Sum(), c.sum)
			}
			if w.Size() != c.size {
				t.Errorf("Size %d, expected %d", w.Size(), c.size)
			}
		})
	}
}

func TestDilate(t *testing.T) {
	w, h := 20, 20
	mask := make([]bool, w*h)
	mask[10*w+10] = true

	cases := []struct {
		size, iterations int
		count            int
	}{
		{1, 1, 1},
		{3, 1, 9},
		{3, 2, 25},
		{5, 1, 25},
		{15, 1, 225},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%dx%d_%d", c.size, c.size, c.iterations), func(t *testing.T) {
			out := Dilate(mask, w, h, c.size, c.iterations)
			n := 0
			for _, v := range out {
				if v {
					n++
				}
			}
			if n != c.count {
				t.Errorf("Dilated to %d pixels, expected %d", n, c.count)
			}
		})
	}
}
