// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rescribe.xyz/mathsheet/crop"
	"rescribe.xyz/mathsheet/split"
)

const maxticks = 40
const yticknum = 10

// guides are drawn across the graph at the clamp limits and the
// default split ratio
var guides = []struct {
	name  string
	ratio float64
	c     drawing.Color
}{
	{"min", 0.3, chart.ColorRed},
	{"default", split.DefaultRatio, chart.ColorOrange},
	{"max", 0.7, chart.ColorRed},
}

var methodColours = map[split.Method]drawing.Color{
	split.MethodOCR:     chart.ColorAlternateGreen,
	split.MethodLine:    chart.ColorBlue,
	split.MethodDefault: chart.ColorOrange,
	split.MethodFixed:   chart.ColorAlternateGray,
}

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(name string, xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// Graph draws the split row of each page as a percentage of its
// height, in page order, with each method used drawn in its own
// colour
func Graph(records []crop.Record, title string, w io.Writer) error {
	if len(records) < 2 {
		return errors.New("Not enough pages to graph")
	}

	var xvalues []float64
	var ticks []chart.Tick
	var yticks []chart.Tick
	tickevery := len(records) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	bymethod := make(map[split.Method]*chart.ContinuousSeries)
	var order []split.Method
	for i, r := range records {
		x := float64(i + 1)
		xvalues = append(xvalues, x)
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%.0f", x)})
		}
		s, ok := bymethod[r.Result.Method]
		if !ok {
			s = &chart.ContinuousSeries{
				Name: string(r.Result.Method),
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    methodColours[r.Result.Method],
				},
			}
			bymethod[r.Result.Method] = s
			order = append(order, r.Result.Method)
		}
		s.XValues = append(s.XValues, x)
		s.YValues = append(s.YValues, r.Result.Ratio()*100)
	}
	// Make last tick the final page
	final := float64(len(records))
	ticks[len(ticks)-1] = chart.Tick{Value: final, Label: fmt.Sprintf("%.0f", final)}
	for i := 0; i <= yticknum; i++ {
		n := float64(i*100) / yticknum
		yticks = append(yticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.0f%%", n)})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Page",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Split row",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 100.0,
			},
			Ticks: yticks,
		},
	}
	for _, g := range guides {
		graph.Series = append(graph.Series, createLine(g.name, xvalues, g.ratio*100, g.c))
	}
	for _, m := range order {
		graph.Series = append(graph.Series, *bymethod[m])
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}
