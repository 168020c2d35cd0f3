// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package catalog

import (
	"strings"
	"testing"
)

func TestBuildAll(t *testing.T) {
	for _, set := range All() {
		t.Run(set.Name, func(t *testing.T) {
			if len(set.Figures) == 0 {
				t.Fatalf("Set %s has no figures", set.Name)
			}
			seen := make(map[string]bool)
			for _, f := range set.Figures {
				if seen[f.Name] {
					t.Errorf("Duplicate figure name %s", f.Name)
				}
				seen[f.Name] = true
				if !strings.HasSuffix(f.Name, ".svg") {
					t.Errorf("Figure name %s does not end in .svg", f.Name)
				}
				s, err := f.Build()
				if err != nil {
					t.Errorf("Error building %s: %v", f.Name, err)
					continue
				}
				if !strings.HasSuffix(s, "</svg>\n") {
					t.Errorf("Figure %s is not a complete svg", f.Name)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"basic", true},
		{"geometry", true},
		{"final", true},
		{"nonexistent", false},
		{"", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Lookup(c.name)
			if c.ok && err != nil {
				t.Fatalf("Error looking up %s: %v", c.name, err)
			}
			if !c.ok {
				if err == nil {
					t.Fatalf("Expected error looking up %s", c.name)
				}
				if !strings.Contains(err.Error(), "basic, geometry") {
					t.Errorf("Error does not list the sets: %v", err)
				}
				return
			}
			if s.Name != c.name {
				t.Errorf("Got set %s, expected %s", s.Name, c.name)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	expected := []string{"basic", "geometry", "more", "exercises", "training", "practice", "final"}
	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("Got %d sets, expected %d", len(names), len(expected))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Set %d is %s, expected %s", i, names[i], expected[i])
		}
	}
}
