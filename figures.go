// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rescribe.xyz/mathsheet/catalog"
)

// Written records the figures of a set that were saved, and the
// errors for any that could not be
type Written struct {
	Set    catalog.Set
	Files  []string
	Errors []error
}

// FigureWriter saves figure sets as SVG files in Dir, with a PNG
// preview beside each if Preview is above 0, drawn at that scale
type FigureWriter struct {
	Dir     string
	Preview float64
	Logger  *log.Logger
}

func (f *FigureWriter) logger() *log.Logger {
	if f.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return f.Logger
}

// WriteSet builds and saves every figure in set. A figure which fails
// is recorded and the rest are still written; an error is only
// returned if the output directory can't be created.
func (f *FigureWriter) WriteSet(set catalog.Set) (Written, error) {
	w := Written{Set: set}
	err := os.MkdirAll(f.Dir, 0755)
	if err != nil {
		return w, fmt.Errorf("Error creating output directory: %v", err)
	}
	for _, fig := range set.Figures {
		err = f.write(fig)
		if err != nil {
			w.Errors = append(w.Errors, err)
			continue
		}
		w.Files = append(w.Files, fig.Name)
	}
	return w, nil
}

func (f *FigureWriter) write(fig catalog.Figure) error {
	s, err := fig.Build()
	if err != nil {
		return fmt.Errorf("Error building %s: %v", fig.Name, err)
	}
	path := filepath.Join(f.Dir, fig.Name)
	err = os.WriteFile(path, []byte(s), 0644)
	if err != nil {
		return fmt.Errorf("Error writing %s: %v", path, err)
	}
	f.logger().Println("Saved", path)
	if f.Preview <= 0 {
		return nil
	}
	png := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	return SavePreview(s, f.Preview, png)
}
