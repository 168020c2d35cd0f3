// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Dirs is a source directory of page images and an output directory
// for what is made from them. It satisfies crop.Conn.
type Dirs struct {
	// these should be set before running Init(), or left to defaults
	Src    string
	Out    string
	Logger *log.Logger
}

// Init checks the source directory exists and creates the output
// directory if needed
func (d *Dirs) Init() error {
	if d.Src == "" {
		d.Src = defaultSrc
	}
	if d.Out == "" {
		d.Out = defaultCropOut
	}
	info, err := os.Stat(d.Src)
	if err != nil {
		return fmt.Errorf("Error opening source directory: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("Error opening source directory: %s is not a directory", d.Src)
	}

	err = os.MkdirAll(d.Out, 0755)
	if err != nil {
		return fmt.Errorf("Error creating output directory: %v", err)
	}

	if d.Logger == nil {
		d.Logger = log.New(os.Stdout, "", 0)
	}

	return nil
}

// ListImages lists the files in Src matching pattern, sorted by name
func (d *Dirs) ListImages(pattern string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(d.Src, pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// OutPath is where a file called name is saved
func (d *Dirs) OutPath(name string) string {
	return filepath.Join(d.Out, name)
}

// Log records an item with the Logger. Arguments are handled as with
// fmt.Println.
func (d *Dirs) Log(v ...interface{}) {
	d.Logger.Println(v...)
}
