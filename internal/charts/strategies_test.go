package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushi2704rj-sephora/GameForge/internal/result"
)

func matrixRounds() []result.Round {
	return []result.Round{
		{Index: 0, State: map[string]any{"cumulative": []any{3.0, 3.0}, "coop_rate": 1.0}},
		{Index: 1, State: map[string]any{"cumulative": []any{3.0, 8.0}, "coop_rate": 0.75}},
	}
}

func TestPrisonersDilemma_Charts(t *testing.T) {
	res := &result.Result{GameID: "prisoners_dilemma", Rounds: matrixRounds()}
	specs := Default().Resolve("prisoners_dilemma")(res)

	require.Len(t, specs, 2)
	assert.Equal(t, "cumulative payoff", specs[0].Title)
	require.Len(t, specs[0].Series, 2)
	assert.Equal(t, []float64{3, 8}, specs[0].Series[1].Points)
	assert.True(t, specs[1].Percent)
}

func TestSpecificStrategy_DegradesToGeneric(t *testing.T) {
	// Expected fields missing entirely: the strategy must fall back to
	// the generic selection instead of failing.
	res := &result.Result{
		GameID: "prisoners_dilemma",
		Rounds: []result.Round{
			{Index: 0, State: map[string]any{"something_else": 1.0}},
			{Index: 1, State: map[string]any{"something_else": 2.0}},
		},
	}
	specs := Default().Resolve("prisoners_dilemma")(res)
	require.Len(t, specs, 1)
	require.Len(t, specs[0].Series, 1)
	assert.Equal(t, "something_else", specs[0].Series[0].Label)
}

func TestSpecificStrategy_EmptyRounds(t *testing.T) {
	reg := Default()
	for _, id := range []string{
		"prisoners_dilemma", "stag_hunt", "public_goods", "tragedy_of_commons",
		"el_farol_bar", "rock_paper_scissors", "ultimatum", "trust_game",
		"auction_mechanisms",
	} {
		assert.Empty(t, reg.Resolve(id)(&result.Result{GameID: id}), "game %s", id)
	}
}

func TestRockPaperScissors_StackedArea(t *testing.T) {
	res := &result.Result{
		GameID: "rock_paper_scissors",
		Rounds: []result.Round{
			{Index: 0, State: map[string]any{
				"p1_rock_rate": 0.5, "p1_paper_rate": 0.3, "p1_scissors_rate": 0.2}},
			{Index: 1, State: map[string]any{
				"p1_rock_rate": 0.4, "p1_paper_rate": 0.4, "p1_scissors_rate": 0.2}},
		},
	}
	specs := Default().Resolve("rock_paper_scissors")(res)
	require.NotEmpty(t, specs)
	assert.Equal(t, StackedArea, specs[0].Kind)
	assert.Len(t, specs[0].Series, 3)
}

func TestUltimatum_IncludesHistogram(t *testing.T) {
	res := &result.Result{
		GameID: "ultimatum",
		Rounds: []result.Round{
			{Index: 0, State: map[string]any{"offer": 0.4, "acceptance_rate": 1.0}},
			{Index: 1, State: map[string]any{"offer": 0.3, "acceptance_rate": 0.5}},
		},
	}
	specs := Default().Resolve("ultimatum")(res)
	require.Len(t, specs, 2)
	assert.Equal(t, Histogram, specs[1].Kind)
}

func TestElFarol_DualAxisForHeterogeneousUnits(t *testing.T) {
	// Head count and crowding fraction use different units, so the
	// strategy overlays them on a dual axis instead of a shared one.
	res := &result.Result{
		GameID: "el_farol_bar",
		Rounds: []result.Round{
			{Index: 0, State: map[string]any{"attendance": 55.0, "attendance_rate": 0.55}},
			{Index: 1, State: map[string]any{"attendance": 62.0, "attendance_rate": 0.62}},
		},
	}
	specs := Default().Resolve("el_farol_bar")(res)
	require.NotEmpty(t, specs)
	assert.Equal(t, DualAxis, specs[0].Kind)
	require.Len(t, specs[0].Series, 2)
	assert.Equal(t, "attendance", specs[0].Series[0].Label)
	assert.Equal(t, "attendance_rate", specs[0].Series[1].Label)
}

func TestElFarol_PartialFields(t *testing.T) {
	// attendance present, avg_attendance missing: still a chart, fewer series.
	res := &result.Result{
		GameID: "el_farol_bar",
		Rounds: []result.Round{
			{Index: 0, State: map[string]any{"attendance": 55.0}},
			{Index: 1, State: map[string]any{"attendance": 62.0}},
		},
	}
	specs := Default().Resolve("el_farol_bar")(res)
	require.Len(t, specs, 1)
	assert.Len(t, specs[0].Series, 1)
}
