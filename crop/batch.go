// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package crop

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"rescribe.xyz/mathsheet/split"
)

// Conn is where pages come from and halves go to
type Conn interface {
	ListImages(pattern string) ([]string, error)
	OutPath(name string) string
	Log(v ...interface{})
}

// Record describes a page which was cut successfully
type Record struct {
	Path     string
	Example  string
	Exercise string
	Result   split.Result
}

// Stats counts the outcome of a batch
type Stats struct {
	Total    int
	Success  int
	Failed   int
	ByMethod map[split.Method]int
}

// String summarises the counts, listing only methods which were used
func (s Stats) String() string {
	var b strings.Builder
	for _, m := range []split.Method{split.MethodOCR, split.MethodLine, split.MethodDefault, split.MethodFixed} {
		if n := s.ByMethod[m]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", m, n)
		}
	}
	if s.Failed > 0 {
		fmt.Fprintf(&b, "  failed: %d\n", s.Failed)
	}
	return b.String()
}

// Batch cuts every page matching Pattern. Progress, one line per
// page, is written to Progress if it is set.
type Batch struct {
	Conn     Conn
	Pattern  string
	Splitter Splitter
	Quality  int
	Progress io.Writer
}

// Run cuts each page in name order. A page which fails is logged and
// counted, and the batch carries on. An error is only returned if
// the pages can't be listed or the context is done, in which case the
// records and stats of the pages already cut are returned with it.
func (b *Batch) Run(ctx context.Context) ([]Record, Stats, error) {
	stats := Stats{ByMethod: map[split.Method]int{}}
	pattern := b.Pattern
	if pattern == "" {
		pattern = "*.jpg"
	}
	paths, err := b.Conn.ListImages(pattern)
	if err != nil {
		return nil, stats, fmt.Errorf("Error listing images: %v", err)
	}
	stats.Total = len(paths)

	progress := b.Progress
	if progress == nil {
		progress = io.Discard
	}

	var records []Record
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return records, stats, err
		}
		fmt.Fprintf(progress, "[%d/%d] %s ", i+1, len(paths), filepath.Base(path))
		r, err := b.Page(ctx, path)
		if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
			fmt.Fprintln(progress, "interrupted")
			return records, stats, ctxErr
		}
		if err != nil {
			fmt.Fprintln(progress, "failed")
			b.Conn.Log("Error processing", path, err)
			stats.Failed++
			continue
		}
		fmt.Fprintf(progress, "ok [%s] split at %.1f%%\n", r.Result.Method, r.Result.Ratio()*100)
		stats.Success++
		stats.ByMethod[r.Result.Method]++
		records = append(records, r)
	}

	return records, stats, nil
}

// Page cuts a single page and saves both halves. Nothing is saved if
// ctx is done by the time the row is found.
func (b *Batch) Page(ctx context.Context, path string) (Record, error) {
	img, err := Open(path)
	if err != nil {
		return Record{}, err
	}
	res := b.Splitter.SplitRow(ctx, img)
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	top, bottom := Split(img, res.Row)

	example, exercise := Names(path)
	r := Record{
		Path:     path,
		Example:  b.Conn.OutPath(example),
		Exercise: b.Conn.OutPath(exercise),
		Result:   res,
	}
	err = Save(top, r.Example, b.Quality)
	if err != nil {
		return Record{}, err
	}
	err = Save(bottom, r.Exercise, b.Quality)
	if err != nil {
		return Record{}, err
	}
	return r, nil
}
