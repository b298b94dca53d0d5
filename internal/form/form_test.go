package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushi2704rj-sephora/GameForge/internal/schema"
)

func ptr(f float64) *float64 { return &f }

func testParams() []schema.ParameterSpec {
	return []schema.ParameterSpec{
		{Name: "rounds", Kind: schema.KindInt, Default: 50.0, Min: ptr(1), Max: ptr(500)},
		{Name: "noise", Kind: schema.KindFloat, Default: 0.1, Min: ptr(0), Max: ptr(0.5)},
		{Name: "strategy", Kind: schema.KindSelect, Default: "tit_for_tat",
			Options: []string{"tit_for_tat", "always_defect", "random"}},
		{Name: "label", Kind: schema.KindText, Default: "run 1"},
	}
}

func TestInitialize_DefaultsAndKinds(t *testing.T) {
	cfg := Initialize(testParams())

	require.Len(t, cfg, 4)
	assert.Equal(t, schema.KindInt, cfg["rounds"].Kind())
	assert.Equal(t, int64(50), cfg["rounds"].Int())
	assert.Equal(t, schema.KindFloat, cfg["noise"].Kind())
	assert.Equal(t, 0.1, cfg["noise"].Float())
	assert.Equal(t, "tit_for_tat", cfg["strategy"].Str())
	assert.Equal(t, "run 1", cfg["label"].Str())
}

func TestInitialize_KeysMatchSchemaExactly(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	assert.Len(t, cfg, len(params))
	for _, p := range params {
		_, ok := cfg[p.Name]
		assert.True(t, ok, "missing key %s", p.Name)
	}
}

func TestUpdate_IntScenario(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "rounds", "120")
	require.NoError(t, err)
	assert.Equal(t, int64(120), next["rounds"].Int())
	assert.Equal(t, schema.KindInt, next["rounds"].Kind())
	// Prior configuration untouched.
	assert.Equal(t, int64(50), cfg["rounds"].Int())
}

func TestUpdate_IntTruncatesFractionalInput(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "rounds", "12.9")
	require.NoError(t, err)
	assert.Equal(t, int64(12), next["rounds"].Int())
}

func TestUpdate_ChangesExactlyOneKey(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "noise", "0.25")
	require.NoError(t, err)
	assert.Equal(t, 0.25, next["noise"].Float())
	for name, v := range cfg {
		if name == "noise" {
			continue
		}
		assert.Equal(t, v, next[name], "key %s must be unchanged", name)
	}
}

func TestUpdate_UnknownParameter(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "nope", "1")
	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
	assert.Equal(t, cfg, next)
}

func TestUpdate_SelectRejectsUnknownOption(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "strategy", "cheat")
	require.NoError(t, err)
	assert.Equal(t, "tit_for_tat", next["strategy"].Str())

	next, err = Update(cfg, params, "strategy", "random")
	require.NoError(t, err)
	assert.Equal(t, "random", next["strategy"].Str())
}

func TestUpdate_UnparseableNumberRetainsPrior(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "rounds", "lots")
	require.NoError(t, err)
	assert.Equal(t, int64(50), next["rounds"].Int())

	next, err = Update(cfg, params, "noise", "")
	require.NoError(t, err)
	assert.Equal(t, 0.1, next["noise"].Float())
}

func TestUpdate_TextPassthrough(t *testing.T) {
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "label", "  anything at all  ")
	require.NoError(t, err)
	assert.Equal(t, "  anything at all  ", next["label"].Str())
}

func TestUpdate_NoBoundClampingOnWrite(t *testing.T) {
	// The synthesizer trusts the edit surface to clamp; a raw write past
	// max goes through unchanged.
	params := testParams()
	cfg := Initialize(params)

	next, err := Update(cfg, params, "rounds", "9999")
	require.NoError(t, err)
	assert.Equal(t, int64(9999), next["rounds"].Int())
}
