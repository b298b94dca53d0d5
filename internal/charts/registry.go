package charts

import (
	"sort"

	"github.com/khushi2704rj-sephora/GameForge/internal/result"
)

// maxGenericSeries caps how many state fields the generic strategy plots.
const maxGenericSeries = 4

// Registry maps game ids to rendering strategies. Resolution is total:
// ids without a registered strategy get the generic one.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register binds a strategy to a game id, replacing any prior binding.
func (r *Registry) Register(id string, s Strategy) {
	r.strategies[id] = s
}

// Resolve returns the strategy for id, or Generic when none is
// registered. Absence is the default-path trigger, not an error.
func (r *Registry) Resolve(id string) Strategy {
	if s, ok := r.strategies[id]; ok {
		return s
	}
	return Generic
}

// Generic is the always-available fallback: it plots up to four state
// fields that are numeric in every round, one line per field. Keys are
// taken in sorted order since decoded JSON objects carry no ordering.
// Zero rounds or zero numeric fields yield zero charts.
func Generic(res *result.Result) []Chart {
	if len(res.Rounds) == 0 {
		return nil
	}
	keys := make([]string, 0, len(res.Rounds[0].State))
	for k := range res.Rounds[0].State {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var series []Series
	for _, k := range keys {
		if len(series) == maxGenericSeries {
			break
		}
		col, ok := res.NumericColumn(k)
		if !ok {
			continue
		}
		series = append(series, Series{Label: k, Points: col})
	}
	if len(series) == 0 {
		return nil
	}
	return []Chart{{Title: "state over rounds", Kind: Line, Series: series}}
}

// Default returns a registry with every game-specific strategy installed.
func Default() *Registry {
	r := NewRegistry()
	r.Register("prisoners_dilemma", matrixGame("coop_rate", "cooperation rate"))
	r.Register("stag_hunt", matrixGame("stag_rate", "stag hunting rate"))
	r.Register("public_goods", publicGoods)
	r.Register("tragedy_of_commons", tragedyOfCommons)
	r.Register("el_farol_bar", elFarolBar)
	r.Register("rock_paper_scissors", rockPaperScissors)
	r.Register("ultimatum", ultimatum)
	r.Register("trust_game", trustGame)
	r.Register("auction_mechanisms", auctionMechanisms)
	return r
}
