// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// mkfigures draws the SVG figures used in the exercise books
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rescribe.xyz/mathsheet"
	"rescribe.xyz/mathsheet/catalog"
)

const usage = `Usage: mkfigures [-v] [-o outdir] [-preview scale] [-index] [-l] [set...]

Draws the SVG figures of each named set into outdir, or of every set
if none are named. A figure which can't be drawn is reported and
skipped.

With -preview a PNG is also drawn beside each figure, at the given
scale. These show only the lines and shapes of each figure, without
any text. With -index an index.html listing every figure drawn is
written to outdir too.

`

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func main() {
	cfg := mathsheet.LoadConfig()

	verbose := flag.Bool("v", false, "verbose")
	out := flag.String("o", cfg.Figures, "output directory")
	preview := flag.Float64("preview", 0, "draw PNG previews at this scale")
	index := flag.Bool("index", false, "write an index.html of the figures")
	list := flag.Bool("l", false, "list the figure sets and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, s := range catalog.All() {
			fmt.Printf("%-10s %3d figures  %s\n", s.Name, len(s.Figures), s.About)
		}
		return
	}

	var n NullWriter
	verboselog := log.New(n, "", 0)
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	}

	sets := catalog.All()
	if flag.NArg() > 0 {
		sets = nil
		for _, name := range flag.Args() {
			s, err := catalog.Lookup(name)
			if err != nil {
				log.Fatalln(err)
			}
			sets = append(sets, s)
		}
	}

	w := mathsheet.FigureWriter{Dir: *out, Preview: *preview, Logger: verboselog}

	var written []mathsheet.Written
	total, failed := 0, 0
	for _, s := range sets {
		fmt.Printf("Drawing %s (%d figures)\n", s.Name, len(s.Figures))
		res, err := w.WriteSet(s)
		if err != nil {
			log.Fatalln("Error drawing figures:", err)
		}
		for _, err := range res.Errors {
			log.Println(err)
		}
		written = append(written, res)
		total += len(res.Files)
		failed += len(res.Errors)
	}

	if *index {
		fn := filepath.Join(*out, "index.html")
		var names []string
		for _, s := range sets {
			names = append(names, s.Name)
		}
		err := mathsheet.WriteIndex(fn, "Figures: "+strings.Join(names, ", "), mathsheet.Sections(written))
		if err != nil {
			log.Fatalln(err)
		}
		verboselog.Println("Saved", fn)
	}

	fmt.Printf("Drew %d figures in %s\n", total, *out)
	if failed > 0 {
		fmt.Printf("%d figures failed\n", failed)
		os.Exit(1)
	}
}
