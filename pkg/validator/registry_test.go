package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/freshval/pkg/validator"
)

func halfOf(target any, params ...any) bool {
	n, ok := target.(int)
	if !ok || len(params) == 0 {
		return false
	}
	whole, ok := params[0].(int)
	return ok && n*2 == whole
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers and looks up checks", func(t *testing.T) {
		r, err := validator.NewRegistry()
		require.NoError(t, err)
		require.NoError(t, r.RegisterFunc("halfOf", true, "{name} ({val}) must{not} be half of {1}", halfOf))

		c, ok := r.Lookup("halfOf")
		require.True(t, ok)
		assert.Equal(t, "halfOf", c.Name)
		assert.True(t, c.ContinueOnFail)
		assert.True(t, c.Validate(8, 16))
		assert.Equal(t, []string{"halfOf"}, r.Names())
	})

	t.Run("rejects incomplete checks", func(t *testing.T) {
		tests := []struct {
			name  string
			check validator.Check
		}{
			{name: "missing name", check: validator.Check{Message: "m", Validate: halfOf}},
			{name: "blank name", check: validator.Check{Name: "  ", Message: "m", Validate: halfOf}},
			{name: "missing message", check: validator.Check{Name: "x", Validate: halfOf}},
			{name: "missing predicate", check: validator.Check{Name: "x", Message: "m"}},
			{name: "reserved characters", check: validator.Check{Name: "a.b", Message: "m", Validate: halfOf}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r, err := validator.NewRegistry()
				require.NoError(t, err)
				assert.ErrorIs(t, r.Register(tt.check), validator.ErrInvalidValidator)

				_, err = validator.NewRegistry(tt.check)
				assert.ErrorIs(t, err, validator.ErrInvalidValidator)
			})
		}
	})

	t.Run("default registry is read-only", func(t *testing.T) {
		r := validator.DefaultRegistry()
		assert.Same(t, r, validator.DefaultRegistry())

		err := r.RegisterFunc("halfOf", true, "m", halfOf)
		assert.ErrorIs(t, err, validator.ErrInvalidValidator)
		_, ok := r.Lookup("halfOf")
		assert.False(t, ok)
	})

	t.Run("default registry holds the built-ins", func(t *testing.T) {
		names := validator.DefaultRegistry().Names()
		for _, name := range []string{
			validator.CheckRequired, validator.CheckNumber, validator.CheckInteger,
			validator.CheckString, validator.CheckEqualTo, validator.CheckOneOf,
			validator.CheckUUID, validator.CheckEmail, validator.CheckTrimmed,
		} {
			assert.Contains(t, names, name)
		}
	})

	t.Run("nil registry lookups miss", func(t *testing.T) {
		var r *validator.Registry
		_, ok := r.Lookup("required")
		assert.False(t, ok)
	})
}

func TestEngineRegisterCheck(t *testing.T) {
	t.Parallel()

	t.Run("custom check runs through the chain", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, v.RegisterCheckFunc("halfOf", true, "{name} ({val}) must{not} be half of {1}", halfOf))

		v.Is(8, "n").Check("halfOf", 16)
		assert.Empty(t, v.Errors())

		v.Is(8, "n").Check("halfOf", 10)
		errs := v.Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "n (8) must be half of 10", errs[0].Message)
		assert.Equal(t, []any{10}, errs[0].Parameters)

		v.Reset()
		v.Is(8, "n").Not().Check("halfOf", 16)
		require.Len(t, v.Errors(), 1)
		assert.Equal(t, "n (8) must not be half of 16", v.Errors()[0].Message)
	})

	t.Run("checks are scoped to their engine", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, v.RegisterCheckFunc("halfOf", true, "m", halfOf))

		other := validator.New()
		assert.PanicsWithError(t, `unknown check: "halfOf"`, func() {
			other.Is(8, "n").Check("halfOf", 16)
		})
	})

	t.Run("custom checks shadow built-ins", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, v.RegisterCheck(validator.Check{
			Name:     validator.CheckString,
			Message:  "{name} must be text",
			Validate: func(any, ...any) bool { return false },
		}))

		v.Is("hello", "greeting").Str()
		require.Len(t, v.Errors(), 1)
		assert.Equal(t, "greeting must be text", v.Errors()[0].Message)

		w := validator.New()
		w.Is("hello", "greeting").Str()
		assert.Empty(t, w.Errors())
	})

	t.Run("invalid registration", func(t *testing.T) {
		v := validator.New()
		err := v.RegisterCheckFunc("", true, "m", halfOf)
		assert.ErrorIs(t, err, validator.ErrInvalidValidator)
		err = v.RegisterCheckFunc("x", true, "m", nil)
		assert.ErrorIs(t, err, validator.ErrInvalidValidator)
	})

	t.Run("transforming custom check", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, v.RegisterCheck(validator.Check{
			Name:           "doubled",
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be an int",
			Validate:       func(target any, _ ...any) bool { _, ok := target.(int); return ok },
			Transform:      func(target any) any { return target.(int) * 2 },
		}))

		v.Is(map[string]any{"n": 4}, "").Property("n").Check("doubled")
		assert.Equal(t, map[string]any{"n": 8}, v.TransformationOutput())
	})
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	r, err := validator.NewRegistry(validator.Check{
		Name:     "even",
		Message:  "{name} ({val}) must{not} be even",
		Validate: func(target any, _ ...any) bool { n, ok := target.(int); return ok && n%2 == 0 },
	})
	require.NoError(t, err)

	v := validator.New(validator.WithDefaults(r))
	v.Is(3, "n").Check("even")
	require.Len(t, v.Errors(), 1)
	assert.Equal(t, "n (3) must be even", v.Errors()[0].Message)

	assert.Panics(t, func() { v.Is(3, "n").Number() })
}
