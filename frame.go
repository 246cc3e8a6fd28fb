package easel

import "math"

// imageLift keeps the image plane just in front of the background panel
// so the two surfaces never z-fight.
const imageLift = 0.0001

// Names of the frame parts, in the order BuildFrame adds them.
const (
	PartBackground = "background"
	PartImage      = "image"
	PartRailTop    = "rail-top"
	PartRailLeft   = "rail-left"
	PartRailRight  = "rail-right"
	PartRailBottom = "rail-bottom"
)

// FrameSpec holds the physical parameters of a frame.
type FrameSpec struct {
	// TargetWidth, when positive, fixes the panel width in meters and
	// derives the height from the content aspect ratio.
	TargetWidth float64
	// PixelsPerMeter converts pixel dimensions when TargetWidth is zero.
	PixelsPerMeter float64
	// RailWidth is the in-plane thickness of each rail.
	RailWidth float64
	// Depth is how far the rails stand out from the wall.
	Depth float64
	// ChamferRadius rounds the box edges.
	ChamferRadius float64
}

// PanelSize returns the physical width and height for content.
func (s FrameSpec) PanelSize(c *Content) (width, height float64) {
	aspect := c.AspectRatio()
	if s.TargetWidth > 0 {
		return s.TargetWidth, s.TargetWidth / aspect
	}
	width = float64(c.Width) / s.PixelsPerMeter
	return width, width / aspect
}

// BuildFrame assembles the framed picture as one container with five
// children: the background panel, the image plane and four rails. The
// container's local space has the wall surface in its XZ plane with the
// face normal along +Y and the picture's up direction along +Z, matching a
// vertical plane anchor. Moving, rotating or scaling the container carries
// the whole assembly rigidly.
func BuildFrame(c *Content, spec FrameSpec) *Node {
	w, h := spec.PanelSize(c)
	t := spec.RailWidth
	depth := spec.Depth
	panelDepth := depth / 2

	root := NewContainer("frame")
	root.UserData = c

	// The panel is a thin box standing on the wall: its face (local +Z of
	// the box) is turned onto the wall normal by the -90° pitch.
	panel := NewBox(PartBackground, w, h, panelDepth, spec.ChamferRadius)
	panel.Material.Color = ColorFrameBackground
	panel.Euler = Vec3{X: -math.Pi / 2}
	panel.Position = Vec3{Y: panelDepth / 2}
	root.AddChild(panel)

	img := NewPlane(PartImage, w, h)
	img.Material = Material{Color: ColorWhite, Image: c.Image}
	img.Euler = Vec3{X: -math.Pi / 2}
	img.Position = Vec3{Y: depth/2 + imageLift}
	root.AddChild(img)

	// Top and bottom rails run along X and cover the corners; the side
	// rails are turned a further -90° about Y to run along Z between them.
	top := newRail(PartRailTop, w+2*t, t, depth, spec.ChamferRadius)
	top.Euler = Vec3{X: -math.Pi / 2}
	top.Position = Vec3{Y: depth / 2, Z: h/2 + t/2}
	root.AddChild(top)

	left := newRail(PartRailLeft, h, t, depth, spec.ChamferRadius)
	left.Euler = Vec3{X: -math.Pi / 2, Y: -math.Pi / 2}
	left.Position = Vec3{X: -w/2 - t/2, Y: depth / 2}
	root.AddChild(left)

	right := newRail(PartRailRight, h, t, depth, spec.ChamferRadius)
	right.Euler = Vec3{X: -math.Pi / 2, Y: -math.Pi / 2}
	right.Position = Vec3{X: w/2 + t/2, Y: depth / 2}
	root.AddChild(right)

	bottom := newRail(PartRailBottom, w+2*t, t, depth, spec.ChamferRadius)
	bottom.Euler = Vec3{X: -math.Pi / 2}
	bottom.Position = Vec3{Y: depth / 2, Z: -h/2 - t/2}
	root.AddChild(bottom)

	return root
}

func newRail(name string, length, thickness, depth, chamfer float64) *Node {
	n := NewBox(name, length, thickness, depth, chamfer)
	n.Material.Color = Color{R: 0.12, G: 0.09, B: 0.07, A: 1}
	return n
}
