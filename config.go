package gradclip

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the editor tunables that hosts commonly keep in a settings
// file. Zero values are replaced by defaults in LoadConfig.
type Config struct {
	// HandleStart and HandleEnd place derived linear gradient handles.
	HandleStart float64 `toml:"handle_start" yaml:"handle_start"`
	HandleEnd   float64 `toml:"handle_end" yaml:"handle_end"`

	// BezierSamples is the sample count for curve hit-testing.
	BezierSamples int `toml:"bezier_samples" yaml:"bezier_samples"`

	// CurveSamples is the flattening step count for polygon() output.
	CurveSamples int `toml:"curve_samples" yaml:"curve_samples"`

	// InsertTolerance is the maximum click distance, in canvas pixels, for
	// inserting a point on an edge.
	InsertTolerance float64 `toml:"insert_tolerance" yaml:"insert_tolerance"`

	// StopPolicy is "skip" or "strict".
	StopPolicy StopPolicy `toml:"stop_policy" yaml:"stop_policy"`

	// CacheSize bounds the parse cache; 0 disables it.
	CacheSize int `toml:"cache_size" yaml:"cache_size"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		HandleStart:     DefaultHandleFractions.Start,
		HandleEnd:       DefaultHandleFractions.End,
		BezierSamples:   DefaultBezierSamples,
		CurveSamples:    DefaultCurveSamples,
		InsertTolerance: 8,
		StopPolicy:      SkipMalformedStops,
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) settings file on top
// of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gradclip: read config: %w", err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes settings in the format named by ext (".toml",
// ".yaml" or ".yml") on top of DefaultConfig.
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and reports every problem found.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	check(c.HandleStart >= 0 && c.HandleStart <= 1, "handle_start %v outside [0,1]", c.HandleStart)
	check(c.HandleEnd >= 0 && c.HandleEnd <= 1, "handle_end %v outside [0,1]", c.HandleEnd)
	check(c.HandleStart < c.HandleEnd, "handle_start %v not before handle_end %v", c.HandleStart, c.HandleEnd)
	check(c.BezierSamples >= 1, "bezier_samples %d < 1", c.BezierSamples)
	check(c.CurveSamples >= 1, "curve_samples %d < 1", c.CurveSamples)
	check(c.InsertTolerance >= 0, "insert_tolerance %v < 0", c.InsertTolerance)
	check(c.CacheSize >= 0, "cache_size %d < 0", c.CacheSize)
	check(c.StopPolicy == SkipMalformedStops || c.StopPolicy == StrictStops, "stop_policy %v", c.StopPolicy)
	return errors.Join(errs...)
}

// CodecOptions turns the settings into codec options. A positive
// CacheSize attaches a new ParseCache.
func (c Config) CodecOptions() []CodecOption {
	opts := []CodecOption{
		WithHandleFractions(c.HandleStart, c.HandleEnd),
		WithStopPolicy(c.StopPolicy),
	}
	if c.CacheSize > 0 {
		opts = append(opts, WithParseCache(NewParseCache(c.CacheSize)))
	}
	return opts
}
