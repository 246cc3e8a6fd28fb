package easel

import (
	"errors"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNoContent is returned by Place when no picture has been chosen.
	ErrNoContent = errors.New("easel: no content to place")
	// ErrAnchorConsumed is returned by Place for an anchor already used.
	ErrAnchorConsumed = errors.New("easel: placement anchor already consumed")
	// ErrAlreadyPlaced is returned by Place while another object exists.
	ErrAlreadyPlaced = errors.New("easel: an object is already placed")
)

// GestureAccumulator holds the values a gesture session builds on. Only
// the committed yaw is buffered; the current scale is read off the object.
type GestureAccumulator struct {
	BaseYaw float64
}

// PlacedObject is the single framed picture on the wall. Its world pose is
// split across two nodes: Anchor carries position, heading and the fixed
// wall pitch (written by drags), Node carries yaw about the face normal and
// scale (written by gestures) and parents the frame geometry.
type PlacedObject struct {
	ID       uuid.UUID
	Content  *Content
	Anchor   *Node
	Node     *Node
	Dragging bool

	Gesture GestureAccumulator
}

// Transform returns the object's world transform.
func (o *PlacedObject) Transform() Mat4 {
	return o.Node.WorldTransform()
}

// Position returns the object's world position.
func (o *PlacedObject) Position() Vec3 {
	return o.Anchor.Position
}

// Yaw returns the live rotation about the face normal.
func (o *PlacedObject) Yaw() float64 {
	return o.Node.Euler.Y
}

// Scale returns the live per-axis scale.
func (o *PlacedObject) Scale() Vec3 {
	return o.Node.Scale
}

// PlacementController owns the placed object and its world transform.
type PlacementController struct {
	wallPitch float64
	spec      FrameSpec
	layer     *Node
	regions   *RegionAggregator
	notify    *notifier

	object *PlacedObject

	// onPlace is called with each new object (appear animation).
	onPlace func(*PlacedObject)
}

// NewPlacementController creates a controller that parents objects under
// layer and clears the grids of regions once something is placed.
func NewPlacementController(cfg Config, layer *Node, regions *RegionAggregator) *PlacementController {
	return &PlacementController{
		wallPitch: cfg.WallPitch,
		spec:      cfg.frameSpec(),
		layer:     layer,
		regions:   regions,
	}
}

// Place consumes anchor and builds the framed content at its pose.
func (c *PlacementController) Place(anchor *PlacementAnchor, content *Content) (*PlacedObject, error) {
	switch {
	case anchor == nil || anchor.Consumed:
		return nil, ErrAnchorConsumed
	case content == nil:
		return nil, ErrNoContent
	case c.object != nil:
		return nil, ErrAlreadyPlaced
	}

	pose := NewContainer("placement")
	c.pose(pose, anchor.Transform)

	frame := BuildFrame(content, c.spec)
	pose.AddChild(frame)
	c.layer.AddChild(pose)

	if c.regions != nil {
		c.regions.ClearGrids()
	}
	anchor.Consumed = true

	obj := &PlacedObject{
		ID:      uuid.New(),
		Content: content,
		Anchor:  pose,
		Node:    frame,
	}
	c.object = obj
	debugf("placement: placed %s (%s %dx%d)", obj.ID, content.Name, content.Width, content.Height)
	if c.onPlace != nil {
		c.onPlace(obj)
	}
	c.notify.emit(Notification{Type: NotifyPlaced, ObjectID: obj.ID, Transform: obj.Transform()})
	return obj, nil
}

// Reposition moves obj onto the plane hit at hit. Position and heading
// follow the hit surface and the pitch is forced back to the wall pitch;
// yaw and scale from earlier gestures are left alone.
func (c *PlacementController) Reposition(obj *PlacedObject, hit Mat4) {
	if obj == nil || obj != c.object {
		return
	}
	c.pose(obj.Anchor, hit)
	c.notify.emit(Notification{Type: NotifyMoved, ObjectID: obj.ID, Transform: obj.Transform()})
}

func (c *PlacementController) pose(n *Node, surface Mat4) {
	normal := r3.Unit(surface.Axis(1))
	n.SetPosition(surface.Translation())
	n.SetEuler(Vec3{X: c.wallPitch, Y: headingFromNormal(normal)})
}

// Object returns the placed object, or nil.
func (c *PlacementController) Object() *PlacedObject {
	return c.object
}

// Clear disposes the placed object.
func (c *PlacementController) Clear() {
	if c.object == nil {
		return
	}
	obj := c.object
	c.object = nil
	obj.Anchor.Dispose()
	debugf("placement: cleared %s", obj.ID)
	c.notify.emit(Notification{Type: NotifyCleared, ObjectID: obj.ID})
}
