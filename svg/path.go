// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package svg

import (
	"math"
	"strconv"
	"strings"
)

// Num formats a coordinate with at most two decimal places, without
// trailing zeros, and never as "-0"
func Num(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// PathData builds the d attribute of a path
type PathData struct {
	cmds []string
}

func (p *PathData) add(cmd string, nums ...float64) *PathData {
	s := make([]string, len(nums))
	for i, n := range nums {
		s[i] = Num(n)
	}
	p.cmds = append(p.cmds, cmd+strings.Join(s, ","))
	return p
}

// M moves to x, y
func (p *PathData) M(x, y float64) *PathData {
	return p.add("M", x, y)
}

// L draws a line to x, y
func (p *PathData) L(x, y float64) *PathData {
	return p.add("L", x, y)
}

// Q draws a quadratic curve to x, y pulled towards cx, cy
func (p *PathData) Q(cx, cy, x, y float64) *PathData {
	p.add("Q", cx, cy)
	p.cmds[len(p.cmds)-1] += " " + Num(x) + "," + Num(y)
	return p
}

// A draws an elliptical arc of radius r to x, y
func (p *PathData) A(r float64, large, sweep bool, x, y float64) *PathData {
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}
	p.cmds = append(p.cmds, "A"+Num(r)+","+Num(r)+" 0 "+flag(large)+" "+flag(sweep)+" "+Num(x)+","+Num(y))
	return p
}

// Z closes the path
func (p *PathData) Z() *PathData {
	p.cmds = append(p.cmds, "Z")
	return p
}

func (p *PathData) String() string {
	return strings.Join(p.cmds, " ")
}

// polar returns the point r away from o at deg degrees, measured
// anticlockwise from the positive x axis as on paper
func polar(o Point, r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{o.X + r*math.Cos(rad), o.Y - r*math.Sin(rad)}
}

// arc is the path of a circular arc around o from one angle
// anticlockwise to another, in paper degrees
func arc(o Point, r, from, to float64) *PathData {
	s, e := polar(o, r, from), polar(o, r, to)
	sweep := to - from
	for sweep < 0 {
		sweep += 360
	}
	return new(PathData).M(s.X, s.Y).A(r, sweep > 180, false, e.X, e.Y)
}
