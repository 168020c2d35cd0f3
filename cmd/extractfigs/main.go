// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// extractfigs saves the diagrams found on page images
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"rescribe.xyz/mathsheet"
	"rescribe.xyz/mathsheet/figure"
	"rescribe.xyz/mathsheet/lines"
)

const usage = `Usage: extractfigs [-v] [-t threshold] [-sauvola] [-k ksize] [-w wsize] [-index] [srcdir] [outdir]

Finds the diagrams on each page image in srcdir and saves each as
name_figN_kind.png in outdir, where kind is number_line, table,
geometry or shape depending on the lines found in it.

Pages are binarised at a fixed threshold, counting any pixel no
lighter than it as ink, or with the Sauvola method if -sauvola is
given, which copes better with uneven lighting. With -index an index.html showing every figure found, page
by page, is written to outdir too.

`

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func main() {
	cfg := mathsheet.LoadConfig()

	verbose := flag.Bool("v", false, "verbose")
	thresh := flag.Int("t", figure.DefaultThreshold, "binarise at this fixed threshold (0-255)")
	sauvola := flag.Bool("sauvola", false, "binarise with Sauvola rather than a fixed threshold")
	ksize := flag.Float64("k", 0.3, "Sauvola ksize")
	wsize := flag.Int("w", 19, "Sauvola window size")
	pattern := flag.String("p", "*.jpg", "pattern of page images to search")
	index := flag.Bool("index", false, "write an index.html of the figures")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *thresh < 0 || *thresh > 255 {
		log.Fatalln("Threshold must be between 0 and 255")
	}

	var n NullWriter
	verboselog := log.New(n, "", 0)
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	}

	dirs := mathsheet.Dirs{Src: cfg.Src, Out: cfg.Extract}
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

	e := figure.Extractor{
		Lines:     lines.Default(),
		Binarizer: figure.Threshold(uint8(*thresh)),
		Logger:    verboselog,
	}
	if *sauvola {
		e.Binarizer = figure.Sauvola(*ksize, *wsize)
	}

	paths, err := dirs.ListImages(*pattern)
	if err != nil {
		log.Fatalln("Error listing images:", err)
	}
	if len(paths) == 0 {
		fmt.Printf("No images matching %s found in %s\n", *pattern, dirs.Src)
		return
	}

	var sections []mathsheet.IndexSection
	total, failed := 0, 0
	for i, path := range paths {
		fmt.Printf("[%d/%d] %s ", i+1, len(paths), filepath.Base(path))
		saved, err := e.Extract(path, dirs.OutPath)
		if err != nil {
			fmt.Println("failed")
			dirs.Log("Error processing", path, err)
			failed++
			continue
		}
		fmt.Printf("%d figures\n", len(saved))
		total += len(saved)

		s := mathsheet.IndexSection{Title: filepath.Base(path)}
		for _, p := range saved {
			s.Files = append(s.Files, filepath.Base(p))
		}
		sections = append(sections, s)
	}

	if *index {
		fn := filepath.Join(dirs.Out, "index.html")
		err = mathsheet.WriteIndex(fn, "Figures from "+filepath.Base(dirs.Src), sections)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println("Saved index to", fn)
	}

	fmt.Printf("Saved %d figures from %d pages into %s\n", total, len(paths)-failed, dirs.Out)
	if failed > 0 {
		fmt.Printf("%d pages failed\n", failed)
	}
}
