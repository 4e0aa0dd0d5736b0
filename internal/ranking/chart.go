package ranking

import (
	"bytes"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartData is the parallel-array contract consumed by charting frontends:
// labels[i] is the display name for data[i].
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// ProgressionSeries is one player's line on a progression chart.
type ProgressionSeries struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// RenderBarChart produces a PNG bar chart from a label/value pairing, used for
// leaderboards and the general classification.
func RenderBarChart(title string, data ChartData) ([]byte, error) {
	if len(data.Labels) == 0 {
		return renderNoDataPlaceholder(title)
	}

	bars := make([]chart.Value, len(data.Labels))
	for i, label := range data.Labels {
		bars[i] = chart.Value{Label: label, Value: data.Data[i]}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    800,
		Height:   400,
		BarWidth: 40,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// RenderProgressionChart produces a PNG line chart with one time series per
// player; empty series are skipped.
func RenderProgressionChart(title string, series []ProgressionSeries) ([]byte, error) {
	var lines []chart.Series
	for _, s := range series {
		if len(s.Dates) == 0 {
			continue
		}
		dates, values := s.Dates, s.Values
		if len(dates) == 1 {
			// go-chart refuses a zero x-range delta, so a player with a
			// single tournament gets a flat two-point line.
			dates = []time.Time{dates[0].Add(-12 * time.Hour), dates[0]}
			values = []float64{values[0], values[0]}
		}
		lines = append(lines, chart.TimeSeries{
			Name:    s.Name,
			XValues: dates,
			YValues: values,
			Style: chart.Style{
				StrokeWidth: 2,
				DotWidth:    4,
			},
		})
	}
	if len(lines) == 0 {
		return renderNoDataPlaceholder(title)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Tournament date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "Points",
		},
		Series: lines,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(title string) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No results found"
	)

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis:  chart.YAxis{Style: chart.Hidden()},
		// Chart.Render requires at least one series; this one is invisible.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					DotColor:    drawing.ColorTransparent,
				},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
