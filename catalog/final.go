// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package catalog

import (
	"rescribe.xyz/mathsheet/svg"
)

func pts(xy ...float64) []svg.Point {
	var p []svg.Point
	for i := 0; i+1 < len(xy); i += 2 {
		p = append(p, svg.Pt(xy[i], xy[i+1]))
	}
	return p
}

func finalSet() Set {
	return Set{
		Name:  "final",
		About: "figures for the end of term quiz",
		Figures: []Figure{
			{"final-number-line-1.svg", func() (string, error) {
				return svg.NumberLine(svg.NumberLineOpts{
					Start: -2, End: 2, Width: 600, Height: 160,
					Points: []svg.Mark{mk(-1.3, "b"), mk(1.3, "a")},
				})
			}},
			{"final-cube-net.svg", func() (string, error) {
				return svg.CubeNet([]string{"5", "1", "2", "3", "4", "6"}, "图1")
			}},
			{"final-cube-stack.svg", func() (string, error) { return svg.CubeStack(3, "图2") }},
			{"final-triangles.svg", static(func() string {
				return svg.Panels([]svg.Panel{
					{
						Caption: "A",
						Shapes:  [][]svg.Point{pts(0, 80, 80, 80, 0, 0), pts(10, 70, 70, 70, 70, 10)},
						Labels:  []svg.PanelLabel{{At: svg.Pt(8, 65), Text: "α"}, {At: svg.Pt(55, 65), Text: "β"}},
					},
					{
						Caption: "B",
						Shapes:  [][]svg.Point{pts(0, 80, 80, 80, 80, 0), pts(10, 70, 70, 70, 10, 10)},
						Labels:  []svg.PanelLabel{{At: svg.Pt(60, 65), Text: "β"}, {At: svg.Pt(18, 25), Text: "α"}},
					},
					{
						Caption: "C",
						Shapes:  [][]svg.Point{pts(0, 80, 80, 80, 40, 0), pts(20, 80, 60, 80, 40, 30)},
						Labels:  []svg.PanelLabel{{At: svg.Pt(8, 70), Text: "α"}, {At: svg.Pt(60, 70), Text: "β"}},
					},
					{
						Caption: "D",
						Shapes:  [][]svg.Point{pts(0, 80, 80, 80, 80, 20), pts(0, 60, 60, 60, 0, 0)},
						Labels:  []svg.PanelLabel{{At: svg.Pt(65, 70), Text: "α"}, {At: svg.Pt(8, 50), Text: "β"}},
					},
				}, 80)
			})},
			{"final-angle-12.svg", static(func() string {
				return svg.Fan(svg.FanOpts{
					Width: 400, Height: 180, Origin: svg.Pt(100, 150), OriginLabel: "O",
					Rays: []svg.Ray{
						{Label: "B", Deg: 0, Length: 250},
						{Label: "A", Deg: 90, Length: 130},
						{Label: "C", Deg: 31.4, Length: 211},
						{Label: "D", Deg: 16.5, Length: 229},
					},
					Arcs: []svg.Arc{
						{From: 16.5, To: 31.4, R: 60, Colour: "#2563eb"},
						{From: 0, To: 90, R: 15, Right: true},
					},
				})
			})},
			{"final-number-line-15.svg", func() (string, error) {
				return svg.NumberLineLetters([]svg.Letter{
					{At: 0.077, Above: "A", Below: "-26", Point: "point-blue", Tick: true},
					{At: 0.327, Above: "B", Below: "-10", Point: "point-blue", Tick: true},
					{At: 0.481, Below: "0", Tick: true},
					{At: 0.635, Above: "C", Below: "10", Point: "point-blue", Tick: true},
				}, 600, 130)
			}},
			{"final-segment-16.svg", func() (string, error) {
				return svg.Segment([]svg.SegmentPoint{
					{At: 0, Label: "M"}, {At: 0.2, Label: "C"}, {At: 0.4, Label: "A"},
					{At: 0.6, Label: "B"}, {At: 0.8, Label: "D"}, {At: 1, Label: "N"},
				}, 600, 140, true)
			}},
			{"final-angle-16-2.svg", static(func() string {
				return svg.Fan(svg.FanOpts{
					Width: 380, Height: 180, Origin: svg.Pt(150, 130), OriginLabel: "O", Caption: "图2",
					Rays: []svg.Ray{
						{Label: "M", Deg: 145, Length: 122},
						{Label: "N", Deg: 0, Length: 180},
						{Label: "C", Deg: 126.9, Length: 100, Colour: "#666", Thin: true},
						{Label: "A", Deg: 63.4, Length: 112},
						{Label: "B", Deg: 21.8, Length: 162},
						{Label: "D", Deg: 8.1, Length: 141, Colour: "#666", Thin: true},
					},
				})
			})},
			{"final-angle-16-3.svg", static(func() string {
				return svg.Fan(svg.FanOpts{
					Width: 370, Height: 180, Origin: svg.Pt(100, 130), OriginLabel: "O", Caption: "图3",
					Rays: []svg.Ray{
						{Label: "M", Deg: 139.4, Length: 92},
						{Label: "N", Deg: 0, Length: 220},
						{Label: "C", Deg: 102.5, Length: 92},
						{Label: "A", Deg: 51.3, Length: 128},
						{Label: "B", Deg: 18.4, Length: 190},
						{Label: "D", Deg: 7.9, Length: 182},
					},
				})
			})},
		},
	}
}
