// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The mathsheet package contains tools and functions for preparing the
images of math exercise books: drawing the figures that go with each
exercise, and cutting scanned exercise pages into their worked example
and exercise halves.

Introduction

Each tool is a standalone command which reads from one directory and
writes to another, so they can be run whenever new pages or figures
are needed. Presuming you have the go tools installed, you can install
them with this command:
  go install rescribe.xyz/mathsheet/cmd/...

All of the tools give information on what they do and how they work
with the '-h' flag, so for example to get usage information on the
smartcrop tool simply run the following:
  smartcrop -h

Figures

Figures are drawn as SVG by the svg package, and the figures for each
part of the book are listed in named sets by the catalog package. The
mkfigures tool saves a set, or all of them, to a directory, optionally
with a PNG preview of each and an HTML index page to look through them
all.

Cropping pages

Pages are cut at a row found by the split package. It first looks for
the heading which starts the exercises ("针对训练") with OCR, then for
a long horizontal rule in the middle of the page, and if neither is
found it cuts at 48% of the page height. Whatever is found, the cut is
kept between 30% and 70% of the height.

The smartcrop tool does this for a directory of pages, and can also
write a graph of where each page was cut and a proof PDF showing every
cut, which is the quickest way to spot pages that need attention. The
cropsplit tool instead cuts every page at a fixed proportion of its
height, and needs no OCR.

OCR is done by the tesseract command, which must be installed along
with its Chinese (chi_sim) language data. Building with '-tags
gosseract' adds an in-process engine using the tesseract library
directly, and '-tags gocv' uses OpenCV for line detection.

Extracting figures

The extractfigs tool finds the diagrams on page images and saves each
as a separate PNG, named with the kind of figure it appears to be.

Configuration

The directories used by default are set in settings.go. They can be
changed with a .env file next to the tool executables, or one named by
the MATHSHEET_ENV environment variable, setting any of MATHSHEET_SRC,
MATHSHEET_OUT, MATHSHEET_SMART_OUT, MATHSHEET_EXTRACT,
MATHSHEET_FIGURES, TESSERACT_CMD and TESSERACT_LANG. Command line flags
override these.
*/
package mathsheet
