package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the value type a parameter accepts. The names match
// the service's wire format.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindSelect Kind = "select"
	KindText   Kind = "text"
)

// Value is a tagged union holding one typed parameter value. A Value
// never changes kind after construction; edits produce new Values.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func SelectValue(v string) Value { return Value{kind: KindSelect, s: v} }
func TextValue(v string) Value   { return Value{kind: KindText, s: v} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) Int() int64     { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Str() string    { return v.s }

// String renders the value for display and for edit-buffer prefill.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// MarshalJSON encodes the value as a bare scalar so a configuration
// serializes to the plain JSON object the service expects.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		return json.Marshal(v.f)
	default:
		return json.Marshal(v.s)
	}
}

// ParameterSpec describes one configurable input of a game. Default is
// kept as decoded JSON; DefaultValue coerces it to the declared kind.
type ParameterSpec struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"type"`
	Default     any      `json:"default"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Options     []string `json:"options,omitempty"`
	Description string   `json:"description,omitempty"`
}

// DefaultValue returns the spec's default coerced to its declared kind.
func (p ParameterSpec) DefaultValue() Value {
	switch p.Kind {
	case KindInt:
		if f, ok := asNumber(p.Default); ok {
			return IntValue(int64(f))
		}
		return IntValue(0)
	case KindFloat:
		if f, ok := asNumber(p.Default); ok {
			return FloatValue(f)
		}
		return FloatValue(0)
	case KindSelect:
		if s, ok := p.Default.(string); ok {
			return SelectValue(s)
		}
		return SelectValue("")
	default:
		if s, ok := p.Default.(string); ok {
			return TextValue(s)
		}
		return TextValue("")
	}
}

// Validate checks the spec's internal invariants: numeric defaults must
// lie within declared bounds, select defaults must be one of the options.
func (p ParameterSpec) Validate() error {
	switch p.Kind {
	case KindInt, KindFloat:
		f, ok := asNumber(p.Default)
		if !ok {
			return fmt.Errorf("parameter %q: default %v is not numeric", p.Name, p.Default)
		}
		if p.Min != nil && f < *p.Min {
			return fmt.Errorf("parameter %q: default %v below min %v", p.Name, f, *p.Min)
		}
		if p.Max != nil && f > *p.Max {
			return fmt.Errorf("parameter %q: default %v above max %v", p.Name, f, *p.Max)
		}
	case KindSelect:
		s, ok := p.Default.(string)
		if !ok {
			return fmt.Errorf("parameter %q: select default %v is not a string", p.Name, p.Default)
		}
		for _, opt := range p.Options {
			if opt == s {
				return nil
			}
		}
		return fmt.Errorf("parameter %q: default %q not among options", p.Name, s)
	case KindText:
	default:
		return fmt.Errorf("parameter %q: unknown kind %q", p.Name, p.Kind)
	}
	return nil
}

// GameInfo is a game's descriptor as returned by the catalog endpoint.
// Fetched once per detail view and treated as immutable afterwards.
type GameInfo struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Tier             int             `json:"tier"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Parameters       []ParameterSpec `json:"parameters"`
	Available        bool            `json:"available"`
	Engine           string          `json:"engine,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	TheoryCard       string          `json:"theory_card,omitempty"`
}

// Validate checks parameter name uniqueness and each parameter's invariants.
func (g GameInfo) Validate() error {
	seen := make(map[string]bool, len(g.Parameters))
	for _, p := range g.Parameters {
		if seen[p.Name] {
			return fmt.Errorf("game %q: duplicate parameter %q", g.ID, p.Name)
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return fmt.Errorf("game %q: %w", g.ID, err)
		}
	}
	return nil
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
