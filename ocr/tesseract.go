// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"rescribe.xyz/utils/pkg/hocr"
)

var wconf = regexp.MustCompile(`x_wconf ([0-9.]+)`)

// Tesseract is an Engine which runs the tesseract command on a
// temporary copy of each image. Zero values are replaced by the
// defaults: "tesseract", chi_sim+eng, OEM 3 and PSM 6.
type Tesseract struct {
	Cmd     string
	Lang    string
	OEM     int
	PSM     int
	TempDir string
}

// CheckTesseract checks that the tesseract command can be run
func CheckTesseract(cmd string) error {
	if cmd == "" {
		cmd = "tesseract"
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	err = exec.Command(path, "--version").Run()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}
	return nil
}

func (t *Tesseract) cmd() string {
	if t.Cmd == "" {
		return "tesseract"
	}
	return t.Cmd
}

func (t *Tesseract) args(in, base string) []string {
	lang, oem, psm := t.Lang, t.OEM, t.PSM
	if lang == "" {
		lang = "chi_sim+eng"
	}
	if oem == 0 {
		oem = 3
	}
	if psm == 0 {
		psm = 6
	}
	return []string{in, base, "--oem", strconv.Itoa(oem), "--psm", strconv.Itoa(psm), "-l", lang}
}

// run writes img to a temporary png, runs tesseract on it with any
// extra arguments, and returns the content of the output file with
// the given extension
func (t *Tesseract) run(ctx context.Context, img image.Image, ext string, extra ...string) ([]byte, error) {
	dir, err := os.MkdirTemp(t.TempDir, "mathsheet-ocr")
	if err != nil {
		return nil, fmt.Errorf("Error creating temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "page.png")
	f, err := os.Create(in)
	if err != nil {
		return nil, fmt.Errorf("Error creating %s: %v", in, err)
	}
	err = png.Encode(f, img)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("Error encoding %s: %v", in, err)
	}

	base := filepath.Join(dir, "page")
	args := append(t.args(in, base), extra...)
	cmd := exec.CommandContext(ctx, t.cmd(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("Error running tesseract: %s\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	return os.ReadFile(base + ext)
}

// Words runs tesseract with hOCR output and returns the words found
func (t *Tesseract) Words(ctx context.Context, img image.Image) ([]Word, error) {
	b, err := t.run(ctx, img, ".hocr", "hocr")
	if err != nil {
		return nil, err
	}
	words, err := ParseHOCR(b)
	if err != nil {
		return nil, err
	}
	min := img.Bounds().Min
	for i := range words {
		words[i].Box = words[i].Box.Add(min)
	}
	return words, nil
}

// Text runs tesseract with plain text output
func (t *Tesseract) Text(ctx context.Context, img image.Image) (string, error) {
	b, err := t.run(ctx, img, ".txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseHOCR extracts the words from a hOCR document, in reading
// order, numbering their lines from 0
func ParseHOCR(b []byte) ([]Word, error) {
	h, err := hocr.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("Error parsing hOCR: %v", err)
	}

	var words []Word
	for li, l := range h.Lines {
		for _, w := range l.Words {
			text := strings.TrimSpace(html.UnescapeString(w.Text))
			if text == "" {
				continue
			}
			coords, err := hocr.BoxCoords(w.Title)
			if err != nil {
				return nil, fmt.Errorf("Error parsing word coordinates: %v", err)
			}
			var conf float64
			if m := wconf.FindStringSubmatch(w.Title); m != nil {
				conf, _ = strconv.ParseFloat(m[1], 64)
			}
			words = append(words, Word{
				Text: text,
				Box:  image.Rect(coords[0], coords[1], coords[2], coords[3]),
				Line: li,
				Conf: conf,
			})
		}
	}
	return words, nil
}
