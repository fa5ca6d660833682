package gradclip

import (
	"fmt"
	"strings"
)

// StopPolicy decides what the parser does with a color stop segment that
// does not have the shape "<color> <number>(%|px)".
type StopPolicy int

const (
	// SkipMalformedStops drops the segment and keeps parsing. This is the
	// default: a stored gradient with one bad stop still opens.
	SkipMalformedStops StopPolicy = iota
	// StrictStops fails the parse with ErrMalformedStop.
	StrictStops
)

// String returns "skip" or "strict".
func (p StopPolicy) String() string {
	switch p {
	case SkipMalformedStops:
		return "skip"
	case StrictStops:
		return "strict"
	default:
		return fmt.Sprintf("StopPolicy(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p StopPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *StopPolicy) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "skip":
		*p = SkipMalformedStops
	case "strict":
		*p = StrictStops
	default:
		return fmt.Errorf("%w: unknown stop policy %q", ErrInvalidConfig, b)
	}
	return nil
}

// CodecOption configures a Codec during creation.
//
// Example:
//
//	// Fail on the first malformed stop instead of dropping it
//	c := gradclip.NewCodec(gradclip.WithStopPolicy(gradclip.StrictStops))
type CodecOption func(*codecOptions)

// codecOptions holds optional configuration for Codec creation.
type codecOptions struct {
	handles HandleFractions
	policy  StopPolicy
	cache   *ParseCache
}

// defaultOptions returns the default codec options.
func defaultOptions() codecOptions {
	return codecOptions{
		handles: DefaultHandleFractions,
		policy:  SkipMalformedStops,
	}
}

// WithHandleFractions sets where parsed linear gradients place their
// handles along the gradient line, as fractions of its length.
func WithHandleFractions(start, end float64) CodecOption {
	return func(o *codecOptions) {
		o.handles = HandleFractions{Start: start, End: end}
	}
}

// WithStopPolicy sets how malformed color stops are handled.
func WithStopPolicy(p StopPolicy) CodecOption {
	return func(o *codecOptions) {
		o.policy = p
	}
}

// WithParseCache memoizes Parse results in c. The cache may be shared
// between codecs; results are keyed by the codec options too.
func WithParseCache(c *ParseCache) CodecOption {
	return func(o *codecOptions) {
		o.cache = c
	}
}
