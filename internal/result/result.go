// Package result defines the normalized shape of a completed simulation
// run as returned by the execution service.
package result

// Metadata carries run provenance reported by the service.
type Metadata struct {
	ComputeTimeMs float64 `json:"compute_time_ms"`
	Engine        string  `json:"engine"`
}

// Round is one discrete time-step: per-actor actions, per-actor payoffs,
// and an arbitrary state snapshot. Rounds within a result are ordered by
// Index, strictly increasing.
type Round struct {
	Index   int            `json:"round_num"`
	Actions []any          `json:"actions"`
	Payoffs []float64      `json:"payoffs"`
	State   map[string]any `json:"state"`
}

// Equilibrium is a named strategic outcome reported by the service.
type Equilibrium struct {
	Name        string    `json:"name"`
	Strategies  []string  `json:"strategies"`
	Payoffs     []float64 `json:"payoffs,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Result is the response contract of a single run. It is owned by the
// view that requested it and replaced wholesale by the next run.
type Result struct {
	GameID     string         `json:"game_id"`
	Config     map[string]any `json:"config"`
	Rounds     []Round        `json:"rounds"`
	Equilibria []Equilibrium  `json:"equilibria"`
	Summary    map[string]any `json:"summary"`
	Metadata   Metadata       `json:"metadata"`
}

// NumericColumn extracts the state field key as one value per round.
// It reports false unless the field is present and numeric in every round.
func (r *Result) NumericColumn(key string) ([]float64, bool) {
	if len(r.Rounds) == 0 {
		return nil, false
	}
	col := make([]float64, len(r.Rounds))
	for i, rd := range r.Rounds {
		f, ok := AsNumber(rd.State[key])
		if !ok {
			return nil, false
		}
		col[i] = f
	}
	return col, true
}

// NumericElement extracts element idx of a sequence-valued state field,
// one value per round. It reports false if the field is missing, not a
// sequence, too short, or non-numeric in any round.
func (r *Result) NumericElement(key string, idx int) ([]float64, bool) {
	if len(r.Rounds) == 0 {
		return nil, false
	}
	col := make([]float64, len(r.Rounds))
	for i, rd := range r.Rounds {
		seq, ok := rd.State[key].([]any)
		if !ok || idx >= len(seq) {
			return nil, false
		}
		f, ok := AsNumber(seq[idx])
		if !ok {
			return nil, false
		}
		col[i] = f
	}
	return col, true
}

// AsNumber reports v as a float64 when it carries a numeric type.
// JSON decoding yields float64, but results assembled in tests may use
// native int values.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
