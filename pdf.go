// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"rescribe.xyz/mathsheet/crop"
)

const pageWidth = 5 // pageWidth in inches

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

// Proof is a PDF with a page for each cut page image, showing the two
// halves back together with the cut marked in red, so the split rows
// can be checked at a glance
type Proof struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *Proof) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// register adds an image to the pdf, re-encoded as PNG so that any
// format that can be opened can be used
func (p *Proof) register(path string) (image.Rectangle, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("Could not open file %s: %v", path, err)
	}
	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, imaging.PNG)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("Could not encode image %s: %v", path, err)
	}
	p.fpdf.RegisterImageOptionsReader(path, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	return img.Bounds(), p.fpdf.Error()
}

// AddPage adds a page made from the two halves in r
func (p *Proof) AddPage(r crop.Record) error {
	top, err := p.register(r.Example)
	if err != nil {
		return err
	}
	bottom, err := p.register(r.Exercise)
	if err != nil {
		return err
	}
	w := top.Dx()
	if bottom.Dx() > w {
		w = bottom.Dx()
	}
	h := top.Dy() + bottom.Dy()
	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(w), Ht: pxToPt(h)})

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.fpdf.ImageOptions(r.Example, 0, 0, pxToPt(top.Dx()), pxToPt(top.Dy()), false, opts, 0, "")
	p.fpdf.ImageOptions(r.Exercise, 0, pxToPt(top.Dy()), pxToPt(bottom.Dx()), pxToPt(bottom.Dy()), false, opts, 0, "")

	y := pxToPt(top.Dy())
	p.fpdf.SetDrawColor(231, 76, 60)
	p.fpdf.SetLineWidth(2)
	p.fpdf.Line(0, y, pxToPt(w), y)

	p.fpdf.SetTextColor(231, 76, 60)
	p.fpdf.SetXY(4, y-14)
	caption := fmt.Sprintf("%s  %s  %.1f%%", captionName(r.Path, p.fpdf.PageNo()), r.Result.Method, r.Result.Ratio()*100)
	p.fpdf.CellFormat(pxToPt(w)-8, 12, caption, "", 0, "R", false, 0, "")
	return p.fpdf.Error()
}

// captionName is the base name of path, or "page n" if it can't be
// written in the core fonts, which only cover ASCII here
func captionName(path string, n int) string {
	name := filepath.Base(path)
	for _, r := range name {
		if r < 0x20 || r > 0x7e {
			return fmt.Sprintf("page %d", n)
		}
	}
	return name
}

// Save saves the PDF to the file at path
func (p *Proof) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}

// WriteProof makes a proof PDF of every record and saves it to path
func WriteProof(records []crop.Record, path string) error {
	var p Proof
	err := p.Setup()
	if err != nil {
		return fmt.Errorf("Error setting up PDF: %v", err)
	}
	for _, r := range records {
		err = p.AddPage(r)
		if err != nil {
			return fmt.Errorf("Error adding page %s to PDF: %v", r.Path, err)
		}
	}
	err = p.Save(path)
	if err != nil {
		return fmt.Errorf("Error saving PDF %s: %v", path, err)
	}
	return nil
}
