// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"rescribe.xyz/mathsheet/catalog"
	"rescribe.xyz/mathsheet/crop"
	"rescribe.xyz/mathsheet/split"
	"rescribe.xyz/mathsheet/svg"
)

func TestLoadConfigFile(t *testing.T) {
	for _, k := range []string{envSrc, envFigures, envLang} {
		if _, ok := os.LookupEnv(k); ok {
			t.Skipf("%s is set in the environment", k)
		}
	}
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	err := os.WriteFile(p, []byte("MATHSHEET_SRC=pages\nMATHSHEET_FIGURES=figs\n"), 0644)
	if err != nil {
		t.Fatalf("Error writing .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv(envSrc)
		os.Unsetenv(envFigures)
	})

	c, err := LoadConfigFile(p)
	if err != nil {
		t.Fatalf("Error loading config: %v", err)
	}
	if c.Src != "pages" || c.Figures != "figs" {
		t.Errorf("Values from .env not used: %+v", c)
	}
	if c.Lang != defaultLang || c.CropOut != defaultCropOut {
		t.Errorf("Defaults not used: %+v", c)
	}
	if c.EnvPath != p {
		t.Errorf("EnvPath is %s, expected %s", c.EnvPath, p)
	}

	_, err = LoadConfigFile(filepath.Join(dir, "missing"))
	if err == nil {
		t.Errorf("Expected error loading a missing file")
	}
}

func TestDirs(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "a", "b")
	for _, n := range []string{"3.jpg", "1.jpg", "2.jpg", "notes.txt"} {
		err := os.WriteFile(filepath.Join(src, n), []byte{}, 0644)
		if err != nil {
			t.Fatalf("Error writing %s: %v", n, err)
		}
	}

	d := Dirs{Src: src, Out: out}
	err := d.Init()
	if err != nil {
		t.Fatalf("Error initialising: %v", err)
	}
	if info, err := os.Stat(out); err != nil || !info.IsDir() {
		t.Errorf("Output directory not created")
	}
	paths, err := d.ListImages("*.jpg")
	if err != nil {
		t.Fatalf("Error listing images: %v", err)
	}
	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	if strings.Join(names, ",") != "1.jpg,2.jpg,3.jpg" {
		t.Errorf("Listed %v, expected 1.jpg, 2.jpg and 3.jpg", names)
	}
	if d.OutPath("x.jpg") != filepath.Join(out, "x.jpg") {
		t.Errorf("Wrong out path %s", d.OutPath("x.jpg"))
	}
	var logged bytes.Buffer
	d.Logger = log.New(&logged, "", 0)
	var conn crop.Conn = &d
	conn.Log("Error processing", "4.jpg")
	if logged.String() != "Error processing 4.jpg\n" {
		t.Errorf("Logged %q", logged.String())
	}

	missing := Dirs{Src: filepath.Join(src, "nonexistent"), Out: out}
	if err := missing.Init(); err == nil {
		t.Errorf("Expected error for a missing source directory")
	}
}

func records(n int) []crop.Record {
	var r []crop.Record
	methods := []split.Method{split.MethodOCR, split.MethodLine, split.MethodDefault}
	for i := 0; i < n; i++ {
		r = append(r, crop.Record{
			Path:   filepath.Join("pages", string(rune('a'+i))+".jpg"),
			Result: split.Result{Method: methods[i%len(methods)], Row: 400 + i*10, Height: 1000},
		})
	}
	return r
}

func TestGraph(t *testing.T) {
	var buf bytes.Buffer
	err := Graph(records(5), "test", &buf)
	if err != nil {
		t.Fatalf("Error drawing graph: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("Graph is not a PNG")
	}

	err = Graph(records(1), "test", &buf)
	if err == nil {
		t.Errorf("Expected error graphing a single page")
	}
}

func TestProof(t *testing.T) {
	dir := t.TempDir()
	var recs []crop.Record
	for _, r := range records(2) {
		r.Example = filepath.Join(dir, filepath.Base(r.Path)+"_top.jpg")
		r.Exercise = filepath.Join(dir, filepath.Base(r.Path)+"_bottom.png")
		for _, p := range []string{r.Example, r.Exercise} {
			err := imaging.Save(imaging.New(200, 100, color.White), p)
			if err != nil {
				t.Fatalf("Error saving %s: %v", p, err)
			}
		}
		recs = append(recs, r)
	}

	out := filepath.Join(dir, "proof.pdf")
	err := WriteProof(recs, out)
	if err != nil {
		t.Fatalf("Error writing proof: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Error reading proof: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Errorf("Proof is not a PDF")
	}

	recs[0].Example = filepath.Join(dir, "missing.jpg")
	err = WriteProof(recs, out)
	if err == nil {
		t.Errorf("Expected error for a missing image")
	}
}

func TestCaptionName(t *testing.T) {
	cases := []struct {
		path     string
		n        int
		expected string
	}{
		{"pages/p01.jpg", 1, "p01.jpg"},
		{"pages/第3讲.jpg", 2, "page 2"},
		{"页.png", 7, "page 7"},
		{"a b.png", 3, "a b.png"},
	}
	for _, c := range cases {
		if s := captionName(c.path, c.n); s != c.expected {
			t.Errorf("Caption for %s was %q, expected %q", c.path, s, c.expected)
		}
	}
}

func TestRasterize(t *testing.T) {
	s, err := svg.NumberLine(svg.NumberLineOpts{Start: -5, End: 5})
	if err != nil {
		t.Fatalf("Error building number line: %v", err)
	}
	cases := []struct {
		scale float64
		size  image.Point
	}{
		{1, image.Pt(400, 80)},
		{2, image.Pt(800, 160)},
		{0, image.Pt(400, 80)},
	}
	for _, c := range cases {
		img, err := Rasterize(s, c.scale)
		if err != nil {
			t.Fatalf("Error rasterizing: %v", err)
		}
		if img.Bounds().Size() != c.size {
			t.Errorf("Scale %v gave size %v, expected %v", c.scale, img.Bounds().Size(), c.size)
		}
		// the axis runs across the middle
		y := c.size.Y / 2
		dark := false
		for x := 0; x < c.size.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				dark = true
				break
			}
		}
		if !dark {
			t.Errorf("Scale %v: axis not drawn", c.scale)
		}
	}
}

func TestWriteSet(t *testing.T) {
	dir := t.TempDir()
	set := catalog.Set{
		Name: "test",
		Figures: []catalog.Figure{
			{Name: "good.svg", Build: func() (string, error) { return svg.RegularPolygon(5) }},
			{Name: "bad.svg", Build: func() (string, error) { return svg.RegularPolygon(1) }},
		},
	}
	f := FigureWriter{Dir: dir, Preview: 1}
	w, err := f.WriteSet(set)
	if err != nil {
		t.Fatalf("Error writing set: %v", err)
	}
	if len(w.Errors) != 1 || len(w.Files) != 1 || w.Files[0] != "good.svg" {
		t.Errorf("Got errors %v and files %v, expected 1 error and good.svg", w.Errors, w.Files)
	}
	for _, n := range []string{"good.svg", "good.png"} {
		if _, err := os.Stat(filepath.Join(dir, n)); err != nil {
			t.Errorf("%s not written", n)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.svg")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("bad.svg should not be written")
	}
}

func TestIndex(t *testing.T) {
	sections := []IndexSection{
		{Title: "basic", About: "number lines", Files: []string{"a.svg", "b c.svg"}},
		{Title: "geometry", Files: []string{"d.svg"}},
	}
	b, err := Index("Figures & more", sections)
	if err != nil {
		t.Fatalf("Error making index: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		"<title>Figures &amp; more</title>",
		"<h2>basic</h2>",
		"<h2>geometry</h2>",
		`src="a.svg"`,
		`src="b%20c.svg"`,
		`src="d.svg"`,
		"</html>",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Index missing %s", want)
		}
	}
}
