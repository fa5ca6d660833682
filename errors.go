package gradclip

import "errors"

// Sentinel errors returned by the codec, the config loader and the clip
// path parser and validator. Use errors.Is to test for them; they are usually wrapped
// with the offending input.
var (
	// ErrUnrecognizedGradient is returned when a string is not a
	// linear-gradient() or radial-gradient() value.
	ErrUnrecognizedGradient = errors.New("gradclip: unrecognized gradient")

	// ErrMalformedStop is returned under StrictStops when a color stop does
	// not have the shape "<color> <number>(%|px)".
	ErrMalformedStop = errors.New("gradclip: malformed color stop")

	// ErrUnrecognizedShape is returned when a clip-path string is not a
	// polygon() value with at least three vertices.
	ErrUnrecognizedShape = errors.New("gradclip: unrecognized clip shape")

	// ErrInvalidShape is returned by ClipPath.Validate when the point count
	// does not fit the shape kind.
	ErrInvalidShape = errors.New("gradclip: invalid clip shape")

	// ErrInvalidConfig is returned when a configuration file fails validation.
	ErrInvalidConfig = errors.New("gradclip: invalid config")
)
