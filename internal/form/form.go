// Package form derives live configuration state from a parameter schema.
// It is the only writer of Configuration values; every edit goes through
// Update so type correctness is preserved without per-game code.
package form

import (
	"fmt"
	"strconv"

	"github.com/khushi2704rj-sephora/GameForge/internal/schema"
)

// Configuration maps parameter names to typed values. The full map,
// including untouched defaults, is always submitted with a run request.
type Configuration map[string]schema.Value

// UnknownParameterError reports an edit against a name the schema does
// not declare. Callers treat the edit as a no-op.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter: %s", e.Name)
}

// Initialize builds a configuration holding every parameter's default,
// preserving its declared kind.
func Initialize(params []schema.ParameterSpec) Configuration {
	cfg := make(Configuration, len(params))
	for _, p := range params {
		cfg[p.Name] = p.DefaultValue()
	}
	return cfg
}

// Update returns a new configuration with exactly the named entry
// replaced by raw coerced to the parameter's kind. All other entries are
// carried over untouched. Numeric input that fails to parse and select
// input outside the declared options leave the prior value in place.
// Bounds are not re-checked here; the edit surface constrains them.
func Update(cfg Configuration, params []schema.ParameterSpec, name, raw string) (Configuration, error) {
	var spec *schema.ParameterSpec
	for i := range params {
		if params[i].Name == name {
			spec = &params[i]
			break
		}
	}
	if spec == nil {
		return cfg, &UnknownParameterError{Name: name}
	}

	next := make(Configuration, len(cfg))
	for k, v := range cfg {
		next[k] = v
	}

	prior := cfg[name]
	switch spec.Kind {
	case schema.KindInt:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			next[name] = schema.IntValue(int64(f))
		} else {
			next[name] = prior
		}
	case schema.KindFloat:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			next[name] = schema.FloatValue(f)
		} else {
			next[name] = prior
		}
	case schema.KindSelect:
		next[name] = prior
		for _, opt := range spec.Options {
			if opt == raw {
				next[name] = schema.SelectValue(raw)
				break
			}
		}
	default:
		next[name] = schema.TextValue(raw)
	}
	return next, nil
}
