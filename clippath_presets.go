package gradclip

import (
	"fmt"
	"strings"
)

// ShapeKind names a canonical clip shape. Presets other than ShapePolygon
// interpret a small fixed point set; see PresetFor.
type ShapeKind int

const (
	// ShapePolygon is a freeform outline of lines and curves.
	ShapePolygon ShapeKind = iota
	// ShapeCircle is {center, radius handle}.
	ShapeCircle
	// ShapeEllipse is {center, x-radius handle, y-radius handle}.
	ShapeEllipse
	// ShapeInset is {top, right, bottom, left} edge points.
	ShapeInset
)

var shapeNames = map[ShapeKind]string{
	ShapePolygon: "polygon",
	ShapeCircle:  "circle",
	ShapeEllipse: "ellipse",
	ShapeInset:   "inset",
}

// String returns the CSS function name of the shape.
func (k ShapeKind) String() string {
	if s, ok := shapeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if s, ok := shapeNames[k]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%w: kind %d", ErrUnrecognizedShape, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(b []byte) error {
	name := strings.ToLower(string(b))
	if name == "" {
		*k = ShapePolygon
		return nil
	}
	for kind, s := range shapeNames {
		if s == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnrecognizedShape, b)
}

// PointRole names what a preset point stands for.
type PointRole string

// Point roles used by the built-in presets.
const (
	RoleVertex  PointRole = "vertex"
	RoleCenter  PointRole = "center"
	RoleRadius  PointRole = "radius"
	RoleRadiusX PointRole = "radius-x"
	RoleRadiusY PointRole = "radius-y"
	RoleTop     PointRole = "top"
	RoleRight   PointRole = "right"
	RoleBottom  PointRole = "bottom"
	RoleLeft    PointRole = "left"
)

// Transform is how dependent points follow their anchor.
type Transform int

const (
	// Translate shifts dependents by the anchor's delta.
	Translate Transform = iota
)

// apply moves p, control points included, by the anchor delta.
func (t Transform) apply(p PathPoint, delta Point) PathPoint {
	switch t {
	case Translate:
		p.X += delta.X
		p.Y += delta.Y
		p.CP1 = p.CP1.Add(delta)
		p.CP2 = p.CP2.Add(delta)
	}
	return p
}

// Link lists the points that follow an anchor point.
type Link struct {
	Dependents []int
	Transform  Transform
}

// Preset describes how a shape kind interprets its points.
type Preset struct {
	// Roles gives the role of each point by index. Nil for polygons.
	Roles []PointRole
	// Links maps an anchor index to the points that follow it.
	Links map[int]Link
	// Fixed forbids inserting or removing points.
	Fixed bool
}

var presets = map[ShapeKind]Preset{
	ShapePolygon: {},
	ShapeCircle: {
		Roles: []PointRole{RoleCenter, RoleRadius},
		Links: map[int]Link{0: {Dependents: []int{1}, Transform: Translate}},
		Fixed: true,
	},
	ShapeEllipse: {
		Roles: []PointRole{RoleCenter, RoleRadiusX, RoleRadiusY},
		Links: map[int]Link{0: {Dependents: []int{1, 2}, Transform: Translate}},
		Fixed: true,
	},
	ShapeInset: {
		Roles: []PointRole{RoleTop, RoleRight, RoleBottom, RoleLeft},
		Fixed: true,
	},
}

// PresetFor returns the preset table entry for kind.
func PresetFor(kind ShapeKind) (Preset, bool) {
	p, ok := presets[kind]
	return p, ok
}

// NewPolygon creates a freeform clip path with straight edges through pts.
// The caller supplies at least MinClipPoints points; NewPolygon does not
// check the count, Validate does.
func NewPolygon(pts ...Point) *ClipPath {
	return newShape(ShapePolygon, pts)
}

// NewCircle creates a circle preset with its radius handle to the right of
// the center.
func NewCircle(center Point, radius float64) *ClipPath {
	return newPreset(ShapeCircle, center, center.Add(Point{X: radius}))
}

// NewEllipse creates an ellipse preset with handles to the right of and
// above the center.
func NewEllipse(center Point, rx, ry float64) *ClipPath {
	return newPreset(ShapeEllipse, center, center.Add(Point{X: rx}), center.Add(Point{Y: -ry}))
}

// NewInset creates an inset preset for a canvas, with edge handles at the
// middle of each inset edge.
func NewInset(canvas Box, top, right, bottom, left float64) *ClipPath {
	c := canvas.Center()
	return newPreset(ShapeInset,
		Point{X: c.X, Y: top},
		Point{X: canvas.Width - right, Y: c.Y},
		Point{X: c.X, Y: canvas.Height - bottom},
		Point{X: left, Y: c.Y},
	)
}

func newPreset(kind ShapeKind, pts ...Point) *ClipPath {
	return newShape(kind, pts)
}

func newShape(kind ShapeKind, pts []Point) *ClipPath {
	c := &ClipPath{Kind: kind, Points: make([]PathPoint, 0, len(pts))}
	for _, p := range pts {
		c.Points = append(c.Points, PathPoint{ID: c.newPointID(), X: p.X, Y: p.Y})
	}
	return c
}
