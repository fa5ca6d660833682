package gradclip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.2, cfg.HandleStart)
	assert.Equal(t, 0.8, cfg.HandleEnd)
	assert.Equal(t, DefaultBezierSamples, cfg.BezierSamples)
	assert.Equal(t, DefaultCurveSamples, cfg.CurveSamples)
	assert.Equal(t, 8.0, cfg.InsertTolerance)
}

func TestParseConfig_TOML(t *testing.T) {
	data := []byte(`
handle_start = 0.1
handle_end = 0.9
stop_policy = "strict"
cache_size = 64
`)
	cfg, err := ParseConfig(data, ".toml")
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.HandleStart)
	assert.Equal(t, 0.9, cfg.HandleEnd)
	assert.Equal(t, StrictStops, cfg.StopPolicy)
	assert.Equal(t, 64, cfg.CacheSize)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultCurveSamples, cfg.CurveSamples)
}

func TestParseConfig_YAML(t *testing.T) {
	data := []byte("bezier_samples: 50\ncurve_samples: 12\ninsert_tolerance: 4.5\nstop_policy: skip\n")
	cfg, err := ParseConfig(data, ".YML")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.BezierSamples)
	assert.Equal(t, 12, cfg.CurveSamples)
	assert.Equal(t, 4.5, cfg.InsertTolerance)
	assert.Equal(t, SkipMalformedStops, cfg.StopPolicy)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"unknown format", "{}", ".json"},
		{"bad toml", "handle_start = ", ".toml"},
		{"bad policy", `stop_policy = "lenient"`, ".toml"},
		{"handles reversed", "handle_start: 0.9\nhandle_end: 0.1\n", ".yaml"},
		{"handle out of range", "handle_end = 1.5", ".toml"},
		{"zero samples", "curve_samples: 0\n", ".yaml"},
		{"negative cache", "cache_size = -1", ".toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.ext)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_ValidateReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BezierSamples = 0
	cfg.InsertTolerance = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bezier_samples")
	assert.Contains(t, err.Error(), "insert_tolerance")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradclip.toml")
	require.NoError(t, os.WriteFile(path, []byte("insert_tolerance = 12\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.InsertTolerance)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_CodecOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HandleStart, cfg.HandleEnd = 0, 1
	cfg.StopPolicy = StrictStops
	cfg.CacheSize = 4

	c := NewCodec(cfg.CodecOptions()...)
	require.NotNil(t, c.opts.cache)
	assert.Equal(t, HandleFractions{Start: 0, End: 1}, c.opts.handles)
	assert.Equal(t, StrictStops, c.opts.policy)

	_, err := c.Parse("linear-gradient(red 0%, blue)", Box{Width: 10, Height: 10})
	assert.ErrorIs(t, err, ErrMalformedStop)

	cfg.CacheSize = 0
	assert.Nil(t, NewCodec(cfg.CodecOptions()...).opts.cache)
}
