// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// cropsplit cuts exercise page images at a fixed proportion of their
// height
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/mathsheet"
	"rescribe.xyz/mathsheet/crop"
	"rescribe.xyz/mathsheet/split"
)

const usage = `Usage: cropsplit [-r ratio] [-p pattern] [-q quality] [srcdir] [outdir]

Cuts each page image in srcdir at ratio of its height (48% unless
-r is given), saving the part above as name_例题 and the part below
as name_习题 in outdir.
Pages are processed in name order, and any which can't be cut are
reported and skipped.

`

func main() {
	cfg := mathsheet.LoadConfig()

	ratio := flag.Float64("r", split.DefaultRatio, "proportion of the page height to cut at")
	pattern := flag.String("p", "*.jpg", "pattern of page images to cut")
	quality := flag.Int("q", crop.DefaultQuality, "JPEG quality")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *ratio <= 0 || *ratio >= 1 {
		log.Fatalln("Ratio must be between 0 and 1")
	}

	dirs := mathsheet.Dirs{Src: cfg.Src, Out: cfg.CropOut}
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

	b := crop.Batch{
		Conn:     &dirs,
		Pattern:  *pattern,
		Splitter: crop.FixedRatio(*ratio),
		Quality:  *quality,
		Progress: os.Stdout,
	}
	_, stats, err := b.Run(context.Background())
	if err != nil {
		log.Fatalln(err)
	}
	if stats.Total == 0 {
		fmt.Printf("No images matching %s found in %s\n", *pattern, dirs.Src)
		return
	}

	fmt.Printf("Cut %d of %d pages into %s\n", stats.Success, stats.Total, dirs.Out)
	if stats.Failed > 0 {
		fmt.Printf("%d pages failed\n", stats.Failed)
	}
}
