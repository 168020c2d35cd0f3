// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package crop

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/disintegration/imaging"
	"rescribe.xyz/mathsheet/ocr"
	"rescribe.xyz/mathsheet/split"
)

type testConn struct {
	src, out string
	logged   int
}

func (c *testConn) ListImages(pattern string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(c.src, pattern))
	sort.Strings(paths)
	return paths, err
}

func (c *testConn) OutPath(name string) string {
	return filepath.Join(c.out, name)
}

func (c *testConn) Log(v ...interface{}) {
	c.logged++
}

type headingOCR struct {
	row int
}

func (o headingOCR) Words(ctx context.Context, img image.Image) ([]ocr.Word, error) {
	return []ocr.Word{{Text: "针对训练", Box: image.Rect(20, o.row, 200, o.row+40)}}, nil
}

func (o headingOCR) Text(ctx context.Context, img image.Image) (string, error) {
	return "", nil
}

func makePage(t *testing.T, path string, w, h int) {
	img := imaging.New(w, h, color.White)
	err := imaging.Save(img, path)
	if err != nil {
		t.Fatalf("Error saving %s: %v", path, err)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		w, h, row int
		top, bot  int
	}{
		{100, 1000, 480, 480, 520},
		{37, 91, 43, 43, 48},
		{50, 100, 150, 100, 0},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%dx%d_%d", c.w, c.h, c.row), func(t *testing.T) {
			img := imaging.New(c.w, c.h, color.White)
			top, bottom := Split(img, c.row)
			if top.Bounds().Dy() != c.top || bottom.Bounds().Dy() != c.bot {
				t.Errorf("Heights %d and %d, expected %d and %d", top.Bounds().Dy(), bottom.Bounds().Dy(), c.top, c.bot)
			}
			if top.Bounds().Dy()+bottom.Bounds().Dy() != c.h {
				t.Errorf("Heights don't add up to %d", c.h)
			}
			if top.Bounds().Dx() != c.w || (c.bot > 0 && bottom.Bounds().Dx() != c.w) {
				t.Errorf("Widths changed from %d", c.w)
			}
		})
	}
}

func TestSplitKeepsPixels(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetGray(x, y, color.Gray{uint8(y * 10)})
		}
	}
	top, bottom := Split(img, 4)
	r, _, _, _ := top.At(3, 3).RGBA()
	if uint8(r>>8) != 30 {
		t.Errorf("Top row 3 has value %d, expected 30", r>>8)
	}
	r, _, _, _ = bottom.At(3, 0).RGBA()
	if uint8(r>>8) != 40 {
		t.Errorf("Bottom row 0 has value %d, expected 40", r>>8)
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		path, example, exercise string
	}{
		{"/a/b/page01.jpg", "page01_例题.jpg", "page01_习题.jpg"},
		{"第3讲.png", "第3讲_例题.png", "第3讲_习题.png"},
		{"noext", "noext_例题", "noext_习题"},
		{"dots.in.name.jpeg", "dots.in.name_例题.jpeg", "dots.in.name_习题.jpeg"},
	}
	for _, c := range cases {
		e, x := Names(c.path)
		if e != c.example || x != c.exercise {
			t.Errorf("Names for %s were %s %s, expected %s %s", c.path, e, x, c.example, c.exercise)
		}
	}
}

func TestBatch(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	makePage(t, filepath.Join(src, "02.jpg"), 1000, 1000)
	makePage(t, filepath.Join(src, "01.jpg"), 1000, 1000)
	makePage(t, filepath.Join(src, "03.png"), 1000, 1000)
	err := os.WriteFile(filepath.Join(src, "04.jpg"), []byte("not an image"), 0644)
	if err != nil {
		t.Fatalf("Error writing bad image: %v", err)
	}

	cases := []struct {
		name     string
		splitter Splitter
		method   split.Method
		top      int
	}{
		{"fixed", FixedRatio(split.DefaultRatio), split.MethodFixed, 480},
		{"smart", Smart{&split.Finder{OCR: headingOCR{row: 480}}}, split.MethodOCR, 480},
		{"smartclamped", Smart{&split.Finder{OCR: headingOCR{row: 900}}}, split.MethodOCR, 700},
		{"smartdefault", Smart{&split.Finder{}}, split.MethodDefault, 480},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conn := &testConn{src: src, out: out}
			b := Batch{Conn: conn, Splitter: c.splitter}
			records, stats, err := b.Run(context.Background())
			if err != nil {
				t.Fatalf("Error running batch: %v", err)
			}
			if stats.Total != 3 || stats.Success != 2 || stats.Failed != 1 {
				t.Errorf("Stats %+v, expected 3 total, 2 successes and 1 failure", stats)
			}
			if stats.ByMethod[c.method] != 2 {
				t.Errorf("Method %s used %d times, expected 2", c.method, stats.ByMethod[c.method])
			}
			if conn.logged != 1 {
				t.Errorf("Logged %d errors, expected 1", conn.logged)
			}
			if len(records) != 2 || filepath.Base(records[0].Path) != "01.jpg" {
				t.Fatalf("Records not in name order: %v", records)
			}
			for _, r := range records {
				top, err := imaging.Open(r.Example)
				if err != nil {
					t.Fatalf("Error opening %s: %v", r.Example, err)
				}
				bottom, err := imaging.Open(r.Exercise)
				if err != nil {
					t.Fatalf("Error opening %s: %v", r.Exercise, err)
				}
				if top.Bounds().Dx() != 1000 || top.Bounds().Dy() != c.top {
					t.Errorf("Example is %v, expected 1000x%d", top.Bounds().Size(), c.top)
				}
				if bottom.Bounds().Dx() != 1000 || bottom.Bounds().Dy() != 1000-c.top {
					t.Errorf("Exercise is %v, expected 1000x%d", bottom.Bounds().Size(), 1000-c.top)
				}
			}
		})
	}
}

func TestBatchCancelled(t *testing.T) {
	src := t.TempDir()
	makePage(t, filepath.Join(src, "01.jpg"), 10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := Batch{Conn: &testConn{src: src, out: t.TempDir()}, Splitter: FixedRatio(0.5)}
	_, _, err := b.Run(ctx)
	if err == nil {
		t.Errorf("Expected an error from a cancelled batch")
	}
}

// cancellingOCR cancels the batch while recognising a page, as an
// interrupt does when it kills tesseract
type cancellingOCR struct {
	cancel context.CancelFunc
}

func (o cancellingOCR) Words(ctx context.Context, img image.Image) ([]ocr.Word, error) {
	o.cancel()
	return nil, ctx.Err()
}

func (o cancellingOCR) Text(ctx context.Context, img image.Image) (string, error) {
	return "", ctx.Err()
}

func TestBatchInterruptedPage(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	makePage(t, filepath.Join(src, "a.jpg"), 100, 1000)
	makePage(t, filepath.Join(src, "b.jpg"), 100, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conn := &testConn{src: src, out: out}
	b := Batch{Conn: conn, Splitter: Smart{&split.Finder{OCR: cancellingOCR{cancel}}}}
	records, stats, err := b.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(records) != 0 || stats.Success != 0 || stats.Failed != 0 {
		t.Errorf("Interrupted page counted: records %v, stats %+v", records, stats)
	}
	if stats.Total != 2 {
		t.Errorf("Total %d, expected 2", stats.Total)
	}
	saved, err := filepath.Glob(filepath.Join(out, "*"))
	if err != nil {
		t.Fatalf("Error listing output: %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("Interrupted page was saved: %v", saved)
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{Failed: 1, ByMethod: map[split.Method]int{split.MethodOCR: 3, split.MethodDefault: 2}}
	expected := "  ocr: 3\n  default: 2\n  failed: 1\n"
	if s.String() != expected {
		t.Errorf("Got %q, expected %q", s.String(), expected)
	}
}
