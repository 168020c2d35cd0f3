// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"

	"rescribe.xyz/mathsheet/svg"
)

func basicSet() Set {
	ab := func(a, b float64) func() (string, error) {
		return func() (string, error) {
			lo, hi := int(min(a, b))-2, int(max(a, b))+2
			return svg.NumberLine(svg.NumberLineOpts{
				Start: lo, End: hi, Width: 600, Height: 100, Cycle: true,
				Points: []svg.Mark{{Value: a, Label: "A"}, {Value: b, Label: "B"}},
			})
		}
	}
	return Set{
		Name:  "basic",
		About: "number lines for rational numbers",
		Figures: []Figure{
			{"number-line-basic.svg", func() (string, error) {
				return svg.NumberLine(svg.NumberLineOpts{
					Start: -5, End: 5, Width: 600, Height: 100,
					Points: []svg.Mark{{Value: 0, Label: "O", Class: "point-dark"}},
				})
			}},
			{"number-line-circle.svg", func() (string, error) {
				return svg.RollingCircles(-3, 7, []svg.Roll{{At: -1, Radius: 1, Label: "A"}}, 600, 150)
			}},
			{"triangle-flip.svg", func() (string, error) {
				return svg.TriangleOnAxis(svg.TriangleOpts{Start: -3, End: 5, At: 0, Side: 1, Width: 600, Height: 150})
			}},
			{"number-line-ab.svg", ab(-8, 10)},
			{"moving-points.svg", func() (string, error) {
				return svg.MovingPoints(svg.MovingOpts{
					Start: -8, End: 10,
					Points:    []svg.Mark{{Value: -8, Label: "A(-8)"}, {Value: 10, Label: "B(10)"}},
					Mover:     svg.Mark{Value: -4, Label: "P"},
					Direction: 1,
				})
			}},
			{"circle-numbers.svg", func() (string, error) {
				return svg.NumberedCircle([]string{"0", "1", "2", "3"}, -1, 3)
			}},
			{"number-line-abcd.svg", func() (string, error) {
				return svg.NumberLineLetters([]svg.Letter{
					{At: 0.15, Above: "a", Point: "point"},
					{At: 0.3, Above: "b", Point: "point-blue"},
					{At: 0.5, Below: "0", Tick: true},
					{At: 0.65, Above: "c", Point: "point-green"},
					{At: 0.85, Above: "d", Point: "point-dark"},
				}, 600, 100)
			}},
			{"number-line-ab-2.svg", ab(-2, 4)},
			{"number-line-ab-3.svg", ab(-5, 4)},
		},
	}
}

func geometrySet() Set {
	rays := func(n int, span float64) func() (string, error) {
		return func() (string, error) { return svg.Rays(n, span) }
	}
	bisector := func(deg float64) func() (string, error) {
		return func() (string, error) { return svg.Bisector(deg) }
	}
	return Set{
		Name:  "geometry",
		About: "angles, rays and segments",
		Figures: []Figure{
			{"angle-rays-5.svg", rays(5, 150)},
			{"angle-rays-4.svg", rays(4, 120)},
			{"angle-rays-3.svg", rays(3, 90)},
			{"angle-bisector.svg", static(func() string {
				return svg.Fan(svg.FanOpts{
					Width: 400, Height: 300, Origin: svg.Pt(100, 250), OriginLabel: "O", Arrows: true,
					Rays: []svg.Ray{
						{Label: "A", Deg: 0, Length: 200},
						{Label: "B", Deg: 60, Length: 200, Colour: "#3498db"},
						{Label: "C", Deg: 30, Length: 180, Colour: "#e74c3c", Dashed: true},
					},
					Arcs: []svg.Arc{{From: 0, To: 60, R: 40}},
				})
			})},
			{"rotating-angle.svg", static(func() string {
				return svg.Fan(svg.FanOpts{
					Width: 400, Height: 300, Origin: svg.Pt(200, 200), OriginLabel: "O", Arrows: true,
					Rays: []svg.Ray{
						{Label: "A", Deg: 0, Length: 130},
						{Label: "B", Deg: 120, Length: 130},
						{Label: "M", Deg: 45, Length: 130, Colour: "#3498db", Dashed: true},
						{Label: "N", Deg: 80, Length: 130, Colour: "#e74c3c", Dashed: true},
					},
					Arcs: []svg.Arc{
						{From: 0, To: 120, R: 30, Label: "120°"},
						{From: 31, To: 59, R: 58, Label: "旋转", Colour: "#27ae60", Arrow: true},
					},
				})
			})},
			{"segment-abc.svg", func() (string, error) {
				return svg.Segment([]svg.SegmentPoint{{At: 0, Label: "A"}, {At: 0.5, Label: "B"}, {At: 1, Label: "C"}}, 400, 100, false)
			}},
			{"segment-midpoints.svg", func() (string, error) {
				return svg.Segment([]svg.SegmentPoint{
					{At: 0, Label: "A", Colour: "#e74c3c"},
					{At: 0.25, Label: "M", Below: true, Colour: "#9b59b6"},
					{At: 0.5, Label: "C", Colour: "#3498db"},
					{At: 0.75, Label: "N", Below: true, Colour: "#f39c12"},
					{At: 1, Label: "B", Colour: "#27ae60"},
				}, 500, 100, false)
			}},
			{"triangle-lines.svg", static(func() string {
				return svg.Triangle([3]svg.Point{{X: 150, Y: 30}, {X: 50, Y: 200}, {X: 250, Y: 200}}, [3]string{"A", "B", "C"}, true, 300, 250)
			})},
			{"angle-aob-150.svg", bisector(150)},
			{"angle-aob-120.svg", bisector(120)},
			{"rays-abcde.svg", static(func() string {
				return svg.Fan(svg.FanOpts{
					Width: 400, Height: 350, Origin: svg.Pt(80, 300), OriginLabel: "O", Arrows: true,
					Rays: []svg.Ray{
						{Label: "A", Deg: 0, Length: 280},
						{Label: "B", Deg: 30, Length: 238, Colour: "#e74c3c"},
						{Label: "C", Deg: 60, Length: 238, Colour: "#3498db", Dashed: true},
						{Label: "D", Deg: 90, Length: 238, Colour: "#27ae60", Dashed: true},
						{Label: "E", Deg: 120, Length: 280, Colour: "#f39c12"},
					},
				})
			})},
		},
	}
}

func moreSet() Set {
	figs := []Figure{
		{"area-square.svg", func() (string, error) { return svg.AreaSquare(13, 7) }},
		{"chess-pattern.svg", func() (string, error) {
			return svg.Grid(svg.GridOpts{
				Rows: 3, Cols: 3,
				Black: []svg.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}},
				White: []svg.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}},
			})
		}},
	}
	for i := 1; i <= 4; i++ {
		n := i
		figs = append(figs, Figure{fmt.Sprintf("matchstick-%d.svg", n), func() (string, error) { return svg.Matchsticks(n) }})
	}
	for _, sides := range []int{3, 4, 5, 6} {
		n := sides
		figs = append(figs, Figure{fmt.Sprintf("polygon-%d.svg", n), func() (string, error) { return svg.RegularPolygon(n) }})
	}
	figs = append(figs,
		Figure{"house-plan.svg", static(func() string {
			return svg.FloorPlan([]svg.Room{
				{X: 50, Y: 50, W: 120, H: 120, Name: "主卧", Note: "a×b"},
				{X: 170, Y: 50, W: 100, H: 80, Name: "次卧"},
				{X: 170, Y: 130, W: 180, H: 120, Name: "客厅"},
				{X: 270, Y: 50, W: 80, H: 80, Name: "厨房"},
			}, "a m", "b m")
		})},
		Figure{"cube.svg", static(func() string { return svg.Cube(80) })},
		Figure{"two-circles.svg", func() (string, error) {
			return svg.RollingCircles(-5, 7, []svg.Roll{
				{At: 0, Radius: 1, Colour: "#e74c3c", ShowRadius: true},
				{At: 4, Radius: 2, Colour: "#3498db", ShowRadius: true},
			}, 500, 200)
		}},
		Figure{"folding-line.svg", func() (string, error) {
			return svg.NumberLineFold(svg.FoldOpts{
				Start: -5, End: 5, Width: 500, Height: 120,
				Points: []svg.Mark{{Value: -3, Label: "A"}, {Value: 5, Label: "B"}},
			})
		}},
		Figure{"jumping-point.svg", func() (string, error) {
			return svg.Jumps(0, 10, svg.Mark{Value: 8, Label: "P"}, []svg.Mark{{Value: 4, Label: "M₁"}, {Value: 2, Label: "M₂"}}, 500, 150)
		}},
	)
	return Set{Name: "more", About: "patterns, areas and solids", Figures: figs}
}
