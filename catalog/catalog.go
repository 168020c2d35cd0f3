// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package catalog lists the figures drawn for each worksheet, grouped
// into named sets.
package catalog

import (
	"fmt"
	"strings"
)

// Figure is a single named drawing. Name is the file name it is saved
// as.
type Figure struct {
	Name  string
	Build func() (string, error)
}

// Set is a group of figures drawn together
type Set struct {
	Name    string
	About   string
	Figures []Figure
}

func static(build func() string) func() (string, error) {
	return func() (string, error) {
		return build(), nil
	}
}

var sets = []Set{
	basicSet(),
	geometrySet(),
	moreSet(),
	exercisesSet(),
	trainingSet(),
	practiceSet(),
	finalSet(),
}

// All returns every set, in a fixed order
func All() []Set {
	return sets
}

// Names lists the names of all sets
func Names() []string {
	var names []string
	for _, s := range sets {
		names = append(names, s.Name)
	}
	return names
}

// Lookup finds a set by name
func Lookup(name string) (Set, error) {
	for _, s := range sets {
		if s.Name == name {
			return s, nil
		}
	}
	return Set{}, fmt.Errorf("No figure set named %s, choose from %s", name, strings.Join(Names(), ", "))
}
