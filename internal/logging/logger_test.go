package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/homecalc/homeownership-calculator/internal/calculation"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"json", "console", "", "xml"} {
		l, err := New(Config{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
}

func TestNew_LevelGate(t *testing.T) {
	l, err := New(Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Info("projection served")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"projection served"`)
	assert.Contains(t, string(data), `"ts":`)
}

func TestNew_BadOutputPath(t *testing.T) {
	_, err := New(Config{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "x.log")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build zap logger")
}

func TestNewSugared_SatisfiesEngineLogger(t *testing.T) {
	s, err := NewSugared(Config{Level: "error"})
	require.NoError(t, err)

	var engineLogger calculation.Logger = s
	engineLogger.Debugf("dropped %d", 1)

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(s)
	assert.Equal(t, s, engine.Logger)
}
