// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
)

const indexHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: auto; }
img { max-width: 30em; border: 1px solid #ddd; margin: 0.5em 0; }
</style>
</head>
<body>
`

const indexTail = `</body>
</html>
`

// IndexSection is a titled group of images in an index page
type IndexSection struct {
	Title string
	About string
	Files []string
}

// IndexMarkdown lists the images of each section under a heading.
// Image links are relative, so the index should be saved in the same
// directory as the files.
func IndexMarkdown(title string, sections []IndexSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if s.About != "" {
			fmt.Fprintf(&b, "%s\n\n", s.About)
		}
		for _, f := range s.Files {
			fmt.Fprintf(&b, "### %s\n\n![%s](<%s>)\n\n", f, f, filepath.ToSlash(f))
		}
	}
	return b.String()
}

// Index renders sections as a complete HTML page
func Index(title string, sections []IndexSection) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, indexHead, html.EscapeString(title))
	md := goldmark.New()
	err := md.Convert([]byte(IndexMarkdown(title, sections)), &buf)
	if err != nil {
		return nil, fmt.Errorf("Error converting index: %v", err)
	}
	buf.WriteString(indexTail)
	return buf.Bytes(), nil
}

// WriteIndex saves an HTML index of sections to path
func WriteIndex(path, title string, sections []IndexSection) error {
	b, err := Index(title, sections)
	if err != nil {
		return err
	}
	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return fmt.Errorf("Error writing index %s: %v", path, err)
	}
	return nil
}

// Sections makes an index section from each set of written figures
func Sections(written []Written) []IndexSection {
	var s []IndexSection
	for _, w := range written {
		s = append(s, IndexSection{Title: w.Set.Name, About: w.Set.About, Files: w.Files})
	}
	return s
}
