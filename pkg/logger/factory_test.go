package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/freshval/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("drops debug records by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("adds source", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithSource()).Info("msg")
		assert.Contains(t, decode(t, buf), slog.SourceKey)
	})

	t.Run("nil output is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logger.New(logger.WithOutput(nil))
		})
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestWithLevelName(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logs    bool
	}{
		{name: "debug enables debug", level: "debug", logs: true},
		{name: "case insensitive", level: "DEBUG", logs: true},
		{name: "warn hides debug", level: "warn", logs: false},
		{name: "unknown keeps info", level: "verbose", logs: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger.New(logger.WithOutput(buf), logger.WithLevelName(tt.level)).Debug("msg")
			assert.Equal(t, tt.logs, buf.Len() > 0)
		})
	}
}

func TestWithDevelopment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithDevelopment("app"), logger.WithOutput(buf))
	log.Debug("msg")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "app=app")
	assert.Contains(t, out, "env=development")
}

func TestWithProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithProduction("app"), logger.WithOutput(buf))
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("msg")
	entry := decode(t, buf)
	assert.Equal(t, "app", entry["app"])
	assert.Equal(t, "production", entry["env"])
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{env: "prod", expected: "production"},
		{env: "Production", expected: "production"},
		{env: "staging", expected: "development"},
		{env: "", expected: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger.New(
				logger.WithEnvironment(tt.env, "app"),
				logger.WithFormat(logger.FormatJSON),
				logger.WithOutput(buf),
			).Info("msg")
			assert.Equal(t, tt.expected, decode(t, buf)["env"])
		})
	}
}

func TestEmptyAppNameKeepsDefaults(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.New(logger.WithDevelopment(""), logger.WithOutput(buf)).Info("msg")
	entry := decode(t, buf)
	assert.NotContains(t, entry, "app")
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("through default")
	assert.Equal(t, "through default", decode(t, buf)["msg"])
}
