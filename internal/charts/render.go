package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const histogramBins = 10

var (
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Render draws one chart as terminal text. Charts with no series render
// a placeholder line rather than failing.
func Render(c Chart, width, height int) string {
	if len(c.Series) == 0 {
		return dimStyle.Render("(no rounds to plot)")
	}
	switch c.Kind {
	case Histogram:
		return renderHistogram(c, width)
	case StackedArea:
		return renderLines(stackSeries(c), width, height)
	case DualAxis:
		return renderDualAxis(c, width, height)
	default:
		return renderLines(c, width, height)
	}
}

func renderLines(c Chart, width, height int) string {
	data := make([][]float64, len(c.Series))
	colors := make([]asciigraph.AnsiColor, len(c.Series))
	for i, s := range c.Series {
		points := s.Points
		if c.Percent {
			points = scale(points, 100)
		}
		data[i] = points
		colors[i] = PaletteColor(i)
	}

	title := c.Title
	if c.Percent {
		title += " (%)"
	}
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(title),
		asciigraph.SeriesColors(colors...),
	)
	return graph + "\n" + legend(c.Series)
}

// renderDualAxis overlays two series whose units differ. The axis
// labels belong to the first series; the second is rescaled onto that
// range and the legend states each series' own span.
func renderDualAxis(c Chart, width, height int) string {
	if len(c.Series) != 2 {
		return renderLines(c, width, height)
	}
	left, right := c.Series[0], c.Series[1]
	lLo, lHi := bounds(left.Points)
	rLo, rHi := bounds(right.Points)

	rescaled := make([]float64, len(right.Points))
	for i, v := range right.Points {
		if rHi > rLo {
			rescaled[i] = lLo + (v-rLo)*(lHi-lLo)/(rHi-rLo)
		} else {
			rescaled[i] = lLo
		}
	}

	graph := asciigraph.PlotMany([][]float64{left.Points, rescaled},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(c.Title),
		asciigraph.SeriesColors(PaletteColor(0), PaletteColor(1)),
	)
	leg := "  " +
		lipgloss.NewStyle().Foreground(legendColor(0)).
			Render(fmt.Sprintf("── %s [%.2f–%.2f]", left.Label, lLo, lHi)) +
		"   " +
		lipgloss.NewStyle().Foreground(legendColor(1)).
			Render(fmt.Sprintf("── %s [%.2f–%.2f]", right.Label, rLo, rHi))
	return graph + "\n" + leg
}

func bounds(points []float64) (lo, hi float64) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi = points[0], points[0]
	for _, v := range points {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// stackSeries converts a distribution-over-categories chart into
// cumulative lines so the bands read as a stacked area.
func stackSeries(c Chart) Chart {
	stacked := Chart{Title: c.Title, Series: make([]Series, len(c.Series)), Percent: c.Percent}
	n := 0
	for _, s := range c.Series {
		if len(s.Points) > n {
			n = len(s.Points)
		}
	}
	acc := make([]float64, n)
	for i, s := range c.Series {
		points := make([]float64, len(s.Points))
		for j, v := range s.Points {
			acc[j] += v
			points[j] = acc[j]
		}
		stacked.Series[i] = Series{Label: s.Label, Points: points}
	}
	return stacked
}

func renderHistogram(c Chart, width int) string {
	points := c.Series[0].Points
	if len(points) == 0 {
		return dimStyle.Render("(no rounds to plot)")
	}
	lo, hi := points[0], points[0]
	for _, v := range points {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	bins := histogramBins
	if len(points) < bins {
		bins = len(points)
	}
	counts := make([]int, bins)
	span := hi - lo
	for _, v := range points {
		idx := 0
		if span > 0 {
			idx = int(float64(bins) * (v - lo) / span)
			if idx == bins {
				idx--
			}
		}
		counts[idx]++
	}
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}

	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	var b strings.Builder
	for i, n := range counts {
		binLo := lo + span*float64(i)/float64(bins)
		binHi := lo + span*float64(i+1)/float64(bins)
		bar := 0
		if maxCount > 0 {
			bar = n * barWidth / maxCount
		}
		b.WriteString(fmt.Sprintf("%9.2f–%-9.2f ", binLo, binHi))
		b.WriteString(lipgloss.NewStyle().Foreground(legendColor(0)).Render(strings.Repeat("█", bar)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %d", n)))
		b.WriteString("\n")
	}
	b.WriteString(captionStyle.Render(c.Title))
	return b.String()
}

func legend(series []Series) string {
	parts := make([]string, len(series))
	for i, s := range series {
		parts[i] = lipgloss.NewStyle().Foreground(legendColor(i)).Render("── " + s.Label)
	}
	return "  " + strings.Join(parts, "   ")
}

func scale(points []float64, factor float64) []float64 {
	out := make([]float64, len(points))
	for i, v := range points {
		out[i] = v * factor
	}
	return out
}
