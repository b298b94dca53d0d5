// Package charts maps simulation results onto renderable chart
// specifications. A registry keyed by game id selects the strategy;
// games without one fall back to a generic numeric-field plot.
package charts

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/khushi2704rj-sephora/GameForge/internal/result"
)

// ChartKind selects a rendering shape.
type ChartKind int

const (
	Line ChartKind = iota
	StackedArea
	Histogram
	// DualAxis overlays exactly two series with heterogeneous units.
	// The second series is rescaled onto the first's range and each
	// legend entry carries its own value range.
	DualAxis
)

// Series is one named sequence of y-values, indexed by round.
type Series struct {
	Label  string
	Points []float64
}

// Chart is a renderable specification produced by a strategy. Percent
// marks fraction-valued series scaled to percentages at render time.
type Chart struct {
	Title   string
	Kind    ChartKind
	Series  []Series
	Percent bool
}

// Strategy consumes a result and produces zero or more charts. A
// strategy must never fail: missing fields degrade to the generic
// output, zero rounds produce zero charts.
type Strategy func(res *result.Result) []Chart

// Fixed palette, reused cyclically by series position.
var palette = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

var legendPalette = []lipgloss.Color{"86", "213", "220", "82", "196", "63"}

// PaletteColor returns the plot color for series position i.
func PaletteColor(i int) asciigraph.AnsiColor {
	return palette[i%len(palette)]
}

func legendColor(i int) lipgloss.Color {
	return legendPalette[i%len(legendPalette)]
}
