// Package css is a small tokenizer layer over the tdewolff CSS lexer for
// the handful of value grammars gradclip reads back: gradient argument
// lists, color stops, angles, radial preludes and polygon() vertex lists.
//
// Everything here works on whole tokens. Commas nested inside function
// calls such as rgba(0, 0, 0, 0.5) never split a segment, and a stop is
// accepted only when its token sequence has exactly the expected shape.
package css
