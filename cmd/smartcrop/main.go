// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// smartcrop cuts exercise page images where the exercises start
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"rescribe.xyz/mathsheet"
	"rescribe.xyz/mathsheet/crop"
	"rescribe.xyz/mathsheet/lines"
	"rescribe.xyz/mathsheet/ocr"
	"rescribe.xyz/mathsheet/split"
)

const usage = `Usage: smartcrop [-v] [-gosseract] [-nolines] [-graph file.png] [-pdf file.pdf] [srcdir] [outdir]

Cuts each page image in srcdir into the worked example above and the
exercises below, saving them as name_例题 and name_习题 in outdir.

The cut is made at the first of these which is found:
- the top of the heading "针对训练", found with OCR
- a long horizontal rule in the middle of the page
- 48% of the way down the page
and is always kept between 30% and 70% of the page height.

Tesseract, with its chi_sim language data, must be installed. With
-gosseract the tesseract library is used directly, which needs the
tool to have been built with -tags gosseract.

A graph of where each page was cut can be saved with -graph, and a
PDF showing every cut, to check them quickly, with -pdf.

`

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func main() {
	cfg := mathsheet.LoadConfig()

	verbose := flag.Bool("v", false, "verbose")
	usegosseract := flag.Bool("gosseract", false, "use the tesseract library rather than the command")
	tesscmd := flag.String("tesseract", cfg.Tesseract, "tesseract command")
	lang := flag.String("l", cfg.Lang, "tesseract language(s)")
	nolines := flag.Bool("nolines", false, "don't look for horizontal rules")
	pattern := flag.String("p", "*.jpg", "pattern of page images to cut")
	quality := flag.Int("q", crop.DefaultQuality, "JPEG quality")
	graph := flag.String("graph", "", "save a graph of the split rows to this file")
	pdf := flag.String("pdf", "", "save a proof PDF of the cuts to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var n NullWriter
	verboselog := log.New(n, "", 0)
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	}

	var engine ocr.Engine
	if *usegosseract {
		g, err := ocr.NewGosseract(*lang)
		if errors.Is(err, ocr.ErrNotEnabled) {
			log.Fatalln("Error: -gosseract needs smartcrop to be built with -tags gosseract")
		}
		if err != nil {
			log.Fatalln("Error setting up tesseract:", err)
		}
		engine = g
	} else {
		err := ocr.CheckTesseract(*tesscmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, ocr.InstallHint)
			os.Exit(1)
		}
		engine = &ocr.Tesseract{Cmd: *tesscmd, Lang: *lang}
	}

	finder := &split.Finder{OCR: engine, Logger: verboselog}
	if !*nolines {
		finder.Lines = lines.Default()
	}

	dirs := mathsheet.Dirs{Src: cfg.Src, Out: cfg.SmartOut}
	if flag.NArg() > 0 {
		dirs.Src = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		dirs.Out = flag.Arg(1)
	}
	err := dirs.Init()
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := crop.Batch{
		Conn:     &dirs,
		Pattern:  *pattern,
		Splitter: crop.Smart{Finder: finder},
		Quality:  *quality,
		Progress: os.Stdout,
	}
	records, stats, err := b.Run(ctx)
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		log.Fatalln("Error cutting pages:", err)
	}
	if interrupted {
		fmt.Printf("\nInterrupted after %d of %d pages\n", stats.Success+stats.Failed, stats.Total)
	}
	if stats.Total == 0 {
		fmt.Printf("No images matching %s found in %s\n", *pattern, dirs.Src)
		return
	}

	fmt.Printf("\nCut %d of %d pages into %s\n", stats.Success, stats.Total, dirs.Out)
	fmt.Print(stats)

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			log.Fatalln("Error creating file", *graph, err)
		}
		err = mathsheet.Graph(records, filepath.Base(dirs.Src), f)
		f.Close()
		if err != nil {
			log.Println("Error creating graph", err)
		} else {
			fmt.Println("Saved graph to", *graph)
		}
	}

	if *pdf != "" {
		err = mathsheet.WriteProof(records, *pdf)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println("Saved proof to", *pdf)
	}
}
