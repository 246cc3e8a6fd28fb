package easel

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3D vector used for positions, extents, scales and directions.
// World space is right-handed with Y up, in meters.
type Vec3 = r3.Vec

// Vec2 is a 2D vector used for screen-space touch points, in pixels.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to a premultiplied color.RGBA for hosts that draw with
// the image/color types.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// ColorWhite is the default material color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFrameBackground is the neutral grey behind the image.
var ColorFrameBackground = Color{R: 158.0 / 255, G: 158.0 / 255, B: 158.0 / 255, A: 1}

// ColorGrid is the translucent tint of a pending region visualization.
var ColorGrid = Color{R: 0.3, G: 0.7, B: 1, A: 0.5}

// Rect is an axis-aligned screen rectangle with its origin at the top-left,
// Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Extent is the detected size of a plane: Width along the plane's local X,
// Depth along its local Z. Meters.
type Extent struct {
	Width, Depth float64
}

// Area returns Width * Depth.
func (e Extent) Area() float64 {
	return e.Width * e.Depth
}

// NodeType distinguishes what geometry a Node carries.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no geometry
	NodeTypeBox                       // chamfered box primitive
	NodeTypePlane                     // single-sided rectangle
	NodeTypeGrid                      // region visualization (flat, translucent)
)

// String returns the node type name.
func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeBox:
		return "box"
	case NodeTypePlane:
		return "plane"
	case NodeTypeGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Alignment is the orientation class of a detected plane.
type Alignment uint8

const (
	AlignmentHorizontal Alignment = iota // floors, tables
	AlignmentVertical                    // walls
)

// String returns the alignment name.
func (a Alignment) String() string {
	if a == AlignmentVertical {
		return "vertical"
	}
	return "horizontal"
}

// AnchorKind tags the variant carried by an Anchor.
type AnchorKind uint8

const (
	AnchorGeneric AnchorKind = iota // plain tracked pose, no plane data
	AnchorPlane                     // detected plane; Anchor.Plane is valid
)

// GesturePhase is the recognizer state attached to a pinch or rotate event.
type GesturePhase uint8

const (
	GestureBegan     GesturePhase = iota // recognizer started
	GestureChanged                       // recognizer reported a new value
	GestureEnded                         // recognizer finished normally
	GestureCancelled                     // recognizer was interrupted
)

// String returns the phase name.
func (p GesturePhase) String() string {
	switch p {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
