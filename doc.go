// Package gradclip is the geometry engine behind an editor's gradient and
// clip-path tools.
//
// # Overview
//
// gradclip converts between editable models and the CSS text applied to
// elements:
//   - GradientState ⇄ linear-gradient() / radial-gradient() via Codec
//   - ClipPath → polygon(), path() and the circle/ellipse/inset basic shapes
//
// It also solves the gradient line the way browsers do (SolveLinearLine)
// and supports interactive point editing: proximity insertion, removal with
// a three point floor, preset-aware moves and line/curve toggling.
//
// # Quick Start
//
//	import "github.com/gogpu/gradclip"
//
//	box := gradclip.Box{Width: 400, Height: 300}
//
//	// Reopen a stored fill, falling back to black→white on bad input
//	g := gradclip.ParseGradientOrDefault(stored, box)
//	g.AddStop("#1e90ff", 50)
//	css := gradclip.SerializeGradient(g, box)
//
//	// Edit a clip shape in canvas pixels
//	c := gradclip.NewPolygon(gradclip.Pt(0, 0), gradclip.Pt(100, 0), gradclip.Pt(100, 100), gradclip.Pt(0, 100))
//	c.InsertByProximity(gradclip.Pt(50, 2), 8)
//	clip := c.ToPercentagePolygon(gradclip.Box{Width: 100, Height: 100}, gradclip.DefaultCurveSamples)
//
// # Coordinate System
//
// Pixel coordinates follow CSS: origin at the top-left, X right, Y down.
// Gradient angles are CSS angles: 0° points up and angles grow clockwise.
// Gradient handles are stored in relative box coordinates in [0,1].
//
// # Round Trips
//
// Parsing what Serialize produced restores the stops and the angle.
// Linear handle positions are not encoded in CSS and come back at the
// conventional 20%/80% positions along the gradient line.
//
// # Concurrency
//
// All functions are synchronous and keep no hidden state. Models are owned
// by the caller. Codec and ParseCache are safe for concurrent use.
package gradclip

// Version is the current version of the library.
const Version = "0.1.0"
