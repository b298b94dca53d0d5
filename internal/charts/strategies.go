package charts

import (
	"github.com/khushi2704rj-sephora/GameForge/internal/result"
)

// Game-specific strategies. Each one knows which state fields the
// service emits for its game. When the expected fields are absent the
// strategy returns the generic output instead of failing.

// matrixGame covers two-player matrix games that report a cumulative
// payoff pair plus a single cooperation-style rate field.
func matrixGame(rateKey, rateTitle string) Strategy {
	return func(res *result.Result) []Chart {
		var charts []Chart
		if p1, ok := res.NumericElement("cumulative", 0); ok {
			if p2, ok := res.NumericElement("cumulative", 1); ok {
				charts = append(charts, Chart{
					Title: "cumulative payoff",
					Kind:  Line,
					Series: []Series{
						{Label: "player 1", Points: p1},
						{Label: "player 2", Points: p2},
					},
				})
			}
		}
		if rate, ok := res.NumericColumn(rateKey); ok {
			charts = append(charts, Chart{
				Title:   rateTitle,
				Kind:    Line,
				Series:  []Series{{Label: rateKey, Points: rate}},
				Percent: true,
			})
		}
		if len(charts) == 0 {
			return Generic(res)
		}
		return charts
	}
}

func publicGoods(res *result.Result) []Chart {
	var charts []Chart
	if contrib, ok := res.NumericColumn("avg_contribution"); ok {
		charts = append(charts, Chart{
			Title:  "average contribution",
			Kind:   Line,
			Series: []Series{{Label: "avg_contribution", Points: contrib}},
		})
	}
	if free, ok := res.NumericColumn("free_rider_ratio"); ok {
		charts = append(charts, Chart{
			Title:   "free riders",
			Kind:    Line,
			Series:  []Series{{Label: "free_rider_ratio", Points: free}},
			Percent: true,
		})
	}
	if len(charts) == 0 {
		return Generic(res)
	}
	return charts
}

func tragedyOfCommons(res *result.Result) []Chart {
	var charts []Chart
	if pool, ok := res.NumericColumn("pool"); ok {
		series := []Series{{Label: "pool", Points: pool}}
		if harvest, ok := res.NumericColumn("total_harvest"); ok {
			series = append(series, Series{Label: "total_harvest", Points: harvest})
		}
		charts = append(charts, Chart{Title: "common pool", Kind: Line, Series: series})
	}
	if usage, ok := res.NumericColumn("usage_ratio"); ok {
		charts = append(charts, Chart{
			Title:   "usage ratio",
			Kind:    Line,
			Series:  []Series{{Label: "usage_ratio", Points: usage}},
			Percent: true,
		})
	}
	if len(charts) == 0 {
		return Generic(res)
	}
	return charts
}

func elFarolBar(res *result.Result) []Chart {
	var charts []Chart
	att, hasAtt := res.NumericColumn("attendance")
	rate, hasRate := res.NumericColumn("attendance_rate")
	switch {
	case hasAtt && hasRate:
		// Head count and crowding fraction share an x-axis but not
		// units, so they overlay on a dual axis.
		charts = append(charts, Chart{
			Title: "attendance and crowding",
			Kind:  DualAxis,
			Series: []Series{
				{Label: "attendance", Points: att},
				{Label: "attendance_rate", Points: rate},
			},
		})
	case hasAtt:
		charts = append(charts, Chart{
			Title:  "bar attendance",
			Kind:   Line,
			Series: []Series{{Label: "attendance", Points: att}},
		})
	case hasRate:
		charts = append(charts, Chart{
			Title:   "attendance rate",
			Kind:    Line,
			Series:  []Series{{Label: "attendance_rate", Points: rate}},
			Percent: true,
		})
	}
	if avg, ok := res.NumericColumn("avg_attendance"); ok && hasAtt {
		charts = append(charts, Chart{
			Title: "average attendance",
			Kind:  Line,
			Series: []Series{
				{Label: "attendance", Points: att},
				{Label: "avg_attendance", Points: avg},
			},
		})
	}
	if len(charts) == 0 {
		return Generic(res)
	}
	return charts
}

func rockPaperScissors(res *result.Result) []Chart {
	rock, okR := res.NumericColumn("p1_rock_rate")
	paper, okP := res.NumericColumn("p1_paper_rate")
	scissors, okS := res.NumericColumn("p1_scissors_rate")
	if !okR || !okP || !okS {
		return Generic(res)
	}
	charts := []Chart{{
		Title: "player 1 action mix",
		Kind:  StackedArea,
		Series: []Series{
			{Label: "rock", Points: rock},
			{Label: "paper", Points: paper},
			{Label: "scissors", Points: scissors},
		},
		Percent: true,
	}}
	if p1, ok := res.NumericElement("cumulative", 0); ok {
		if p2, ok := res.NumericElement("cumulative", 1); ok {
			charts = append(charts, Chart{
				Title: "cumulative payoff",
				Kind:  Line,
				Series: []Series{
					{Label: "player 1", Points: p1},
					{Label: "player 2", Points: p2},
				},
			})
		}
	}
	return charts
}

func ultimatum(res *result.Result) []Chart {
	var charts []Chart
	offer, hasOffer := res.NumericColumn("offer")
	if hasOffer {
		series := []Series{{Label: "offer", Points: offer}}
		if acc, ok := res.NumericColumn("acceptance_rate"); ok {
			series = append(series, Series{Label: "acceptance_rate", Points: acc})
		}
		charts = append(charts, Chart{
			Title:   "offers and acceptance",
			Kind:    Line,
			Series:  series,
			Percent: true,
		})
		charts = append(charts, Chart{
			Title:  "offer distribution",
			Kind:   Histogram,
			Series: []Series{{Label: "offer", Points: offer}},
		})
	}
	if len(charts) == 0 {
		return Generic(res)
	}
	return charts
}

func trustGame(res *result.Result) []Chart {
	var charts []Chart
	if sent, ok := res.NumericColumn("sent"); ok {
		series := []Series{{Label: "sent", Points: sent}}
		if ret, ok := res.NumericColumn("returned"); ok {
			series = append(series, Series{Label: "returned", Points: ret})
		}
		charts = append(charts, Chart{Title: "amounts sent and returned", Kind: Line, Series: series})
	}
	if trust, ok := res.NumericColumn("avg_trust"); ok {
		charts = append(charts, Chart{
			Title:   "trust level",
			Kind:    Line,
			Series:  []Series{{Label: "avg_trust", Points: trust}},
			Percent: true,
		})
	}
	if len(charts) == 0 {
		return Generic(res)
	}
	return charts
}

func auctionMechanisms(res *result.Result) []Chart {
	var charts []Chart
	price, hasPrice := res.NumericColumn("price")
	if rev, ok := res.NumericColumn("revenue"); ok {
		series := []Series{{Label: "revenue", Points: rev}}
		if hasPrice {
			series = append(series, Series{Label: "price", Points: price})
		}
		charts = append(charts, Chart{Title: "auction revenue", Kind: Line, Series: series})
	}
	if hasPrice {
		charts = append(charts, Chart{
			Title:  "winning price distribution",
			Kind:   Histogram,
			Series: []Series{{Label: "price", Points: price}},
		})
	}
	if len(charts) == 0 {
		return Generic(res)
	}
	return charts
}
