package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Line(t *testing.T) {
	c := Chart{
		Title: "cumulative payoff",
		Kind:  Line,
		Series: []Series{
			{Label: "player 1", Points: []float64{1, 2, 3}},
			{Label: "player 2", Points: []float64{3, 2, 1}},
		},
	}
	out := Render(c, 40, 6)
	assert.Contains(t, out, "cumulative payoff")
	assert.Contains(t, out, "player 1")
	assert.Contains(t, out, "player 2")
}

func TestRender_PercentScalesAndLabels(t *testing.T) {
	c := Chart{
		Title:   "coop",
		Kind:    Line,
		Series:  []Series{{Label: "coop_rate", Points: []float64{0.5, 1.0}}},
		Percent: true,
	}
	out := Render(c, 40, 6)
	assert.Contains(t, out, "coop (%)")
	assert.Contains(t, out, "100")
}

func TestRender_EmptyChart(t *testing.T) {
	out := Render(Chart{Title: "empty", Kind: Line}, 40, 6)
	assert.Contains(t, out, "no rounds")
}

func TestRender_Histogram(t *testing.T) {
	points := []float64{1, 1, 1, 2, 2, 3, 9, 9, 9, 9, 10, 10}
	c := Chart{
		Title:  "offer distribution",
		Kind:   Histogram,
		Series: []Series{{Label: "offer", Points: points}},
	}
	out := Render(c, 60, 6)
	assert.Contains(t, out, "offer distribution")
	assert.Contains(t, out, "█")
}

func TestRender_HistogramSingleValue(t *testing.T) {
	c := Chart{
		Title:  "flat",
		Kind:   Histogram,
		Series: []Series{{Label: "x", Points: []float64{5, 5, 5}}},
	}
	// Zero span must not divide by zero.
	out := Render(c, 60, 6)
	assert.Contains(t, out, "flat")
}

func TestRender_DualAxisLegendCarriesRanges(t *testing.T) {
	c := Chart{
		Title: "attendance and crowding",
		Kind:  DualAxis,
		Series: []Series{
			{Label: "attendance", Points: []float64{40, 60, 80}},
			{Label: "attendance_rate", Points: []float64{0.4, 0.6, 0.8}},
		},
	}
	out := Render(c, 40, 6)
	assert.Contains(t, out, "attendance and crowding")
	assert.Contains(t, out, "attendance [40.00–80.00]")
	assert.Contains(t, out, "attendance_rate [0.40–0.80]")
}

func TestRender_DualAxisConstantSecondSeries(t *testing.T) {
	// A flat secondary series has zero span; rescaling must not divide
	// by zero.
	c := Chart{
		Title: "flat overlay",
		Kind:  DualAxis,
		Series: []Series{
			{Label: "pool", Points: []float64{10, 20, 30}},
			{Label: "usage_ratio", Points: []float64{0.5, 0.5, 0.5}},
		},
	}
	out := Render(c, 40, 6)
	assert.Contains(t, out, "flat overlay")
	assert.Contains(t, out, "usage_ratio [0.50–0.50]")
}

func TestStackSeries_Cumulative(t *testing.T) {
	c := Chart{
		Series: []Series{
			{Label: "a", Points: []float64{1, 1}},
			{Label: "b", Points: []float64{2, 3}},
		},
	}
	stacked := stackSeries(c)
	assert.Equal(t, []float64{1, 1}, stacked.Series[0].Points)
	assert.Equal(t, []float64{3, 4}, stacked.Series[1].Points)
}

func TestRender_StackedArea(t *testing.T) {
	c := Chart{
		Title: "mix",
		Kind:  StackedArea,
		Series: []Series{
			{Label: "rock", Points: []float64{0.5, 0.4}},
			{Label: "paper", Points: []float64{0.3, 0.4}},
		},
		Percent: true,
	}
	out := Render(c, 40, 6)
	for _, label := range []string{"rock", "paper"} {
		assert.True(t, strings.Contains(out, label), "legend should name %s", label)
	}
}
