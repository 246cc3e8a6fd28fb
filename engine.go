package easel

import (
	"io"
	"math"
)

// Default camera parameters until the host reports its own viewport.
var (
	defaultViewport = Rect{Width: 1080, Height: 1920}
	defaultFovY     = 60 * math.Pi / 180
)

// Primitive is one drawable node flattened for the renderer.
type Primitive struct {
	Node     *Node
	Geometry Geometry
	Material Material
	World    Mat4
	Alpha    float64
}

// Engine is the top-level object that owns the scene tree, the tracked
// regions, the placed object and the input state. Every input arrives as an
// Event through Apply; the engine never draws and never blocks.
//
// Engine is not safe for concurrent use.
type Engine struct {
	cfg Config

	root    *Node
	grids   *Node
	objects *Node

	camera   *Camera
	sceneHit *SceneHitTester

	decider   *CommitDecider
	regions   *RegionAggregator
	placement *PlacementController
	touches   *TouchClassifier
	gestures  *GestureComposer
	anim      *animator

	notify  notifier
	content *Content
	status  Status
	debug   bool
}

// NewEngine creates an engine with an empty scene. The tree has two layers
// under the root: "grids" for region visualizations and "objects" for the
// placed frame.
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg}

	e.root = NewContainer("root")
	e.grids = NewContainer("grids")
	e.objects = NewContainer("objects")
	e.root.AddChild(e.grids)
	e.root.AddChild(e.objects)

	e.camera = NewCamera(defaultViewport, defaultFovY)
	e.decider = NewCommitDecider()
	e.regions = NewRegionAggregator(cfg.CommitArea, e.decider, e.grids)
	e.placement = NewPlacementController(cfg, e.objects, e.regions)
	e.gestures = NewGestureComposer(cfg, e.placement)
	e.sceneHit = &SceneHitTester{
		Camera:    e.camera,
		Surfaces:  e.regions.Surfaces,
		UseExtent: cfg.PlaneExtentHit,
	}
	e.touches = NewTouchClassifier(cfg, e.sceneHit, e.placement, e.gestures)
	e.anim = newAnimator(cfg.AppearDuration.Seconds())

	e.regions.notify = &e.notify
	e.placement.notify = &e.notify
	e.regions.onGrid = func(prev, grid *Node) {
		if prev == nil {
			e.anim.appear(grid)
			return
		}
		e.anim.carry(prev, grid)
	}
	e.placement.onPlace = func(obj *PlacedObject) { e.anim.appear(obj.Anchor) }

	e.status = Status{Tracking: TrackingLimited, Reason: ReasonInitializing}
	e.status.Message = statusMessage(e.status)
	e.SetDebugMode(cfg.Debug)
	return e
}

// Apply advances the engine by one event. Events must be applied in the
// order they happened.
func (e *Engine) Apply(ev Event) {
	debugf("event %s", ev.Type)
	switch ev.Type {
	case EventAnchorAdded:
		e.committed(e.regions.AnchorAdded(ev.Anchor))
	case EventAnchorUpdated:
		e.committed(e.regions.AnchorUpdated(ev.Anchor))
	case EventAnchorRemoved:
		e.regions.AnchorRemoved(ev.Anchor.ID)

	case EventTrackingChanged:
		s := e.status
		s.Tracking = ev.Tracking
		s.Reason = ev.Reason
		if ev.Tracking != TrackingLimited {
			s.Reason = ReasonNone
		}
		e.setStatus(s)
	case EventSessionInterrupted:
		e.touches.Reset()
		e.gestures.Cancel()
		e.regions.ClearGrids()
		s := e.status
		s.Interrupted = true
		e.setStatus(s)
	case EventInterruptionEnded:
		s := e.status
		s.Interrupted = false
		e.setStatus(s)
	case EventSessionFailed:
		e.reset()
		s := e.status
		s.Failed = true
		s.Err = ev.Err
		e.setStatus(s)
	case EventSessionReset:
		e.reset()
		s := e.status
		s.Failed = false
		s.Err = ""
		s.Interrupted = false
		e.setStatus(s)

	case EventCameraMoved:
		e.camera.Pose = ev.Camera

	case EventTouchBegan:
		e.touches.TouchBegan(ev.TouchID, ev.Point, ev.At)
	case EventTouchMoved:
		e.touches.TouchMoved(ev.TouchID, ev.Point, ev.At)
	case EventTouchEnded:
		e.touches.TouchEnded(ev.TouchID, ev.At)
	case EventTouchCancelled:
		e.touches.TouchCancelled(ev.TouchID)

	case EventPinch:
		e.gestures.Pinch(ev.Phase, ev.Scale)
	case EventRotate:
		e.gestures.Rotate(ev.Phase, ev.Rotation)
	}
}

// ApplyAll applies events in order.
func (e *Engine) ApplyAll(events []Event) {
	for _, ev := range events {
		e.Apply(ev)
	}
}

// committed handles the result of an anchor event.
func (e *Engine) committed(anchor *PlacementAnchor) {
	if anchor == nil {
		return
	}
	e.notify.emit(Notification{Type: NotifyCommitted, RegionID: anchor.RegionID, Transform: anchor.Transform})
	e.place()
}

// place consumes the pending anchor once content is known.
func (e *Engine) place() {
	anchor := e.decider.Pending()
	if anchor == nil || e.content == nil {
		return
	}
	if _, err := e.placement.Place(anchor, e.content); err != nil {
		debugf("place: %v", err)
		return
	}
	s := e.status
	s.Placed = true
	e.setStatus(s)
}

// reset returns to a fresh placement session.
func (e *Engine) reset() {
	e.touches.Reset()
	e.gestures.Cancel()
	e.placement.Clear()
	e.regions.Reset()
	e.decider.Reset()
	e.anim.finish()
	e.status.Placed = false
}

func (e *Engine) setStatus(s Status) {
	e.decider.SetEnabled(s.CanCommit())
	s.Message = statusMessage(s)
	if s == e.status {
		return
	}
	e.status = s
	debugf("status: %s", s.Message)
	e.notify.emit(Notification{Type: NotifyStatus, Status: s})
}

// Update advances appear animations by dt seconds.
func (e *Engine) Update(dt float64) {
	e.anim.update(float32(dt))
}

// SetContent chooses the picture to hang. If an anchor is already waiting,
// the object is placed immediately.
func (e *Engine) SetContent(c *Content) {
	e.content = c
	e.place()
}

// Content returns the chosen picture, or nil.
func (e *Engine) Content() *Content {
	return e.content
}

// Status returns the current status projection.
func (e *Engine) Status() Status {
	return e.status
}

// PlacedTransform returns the placed object's world transform.
func (e *Engine) PlacedTransform() (Mat4, bool) {
	obj := e.placement.Object()
	if obj == nil {
		return Mat4{}, false
	}
	return obj.Transform(), true
}

// Object returns the placed object, or nil.
func (e *Engine) Object() *PlacedObject {
	return e.placement.Object()
}

// Regions returns the pending regions ordered by id.
func (e *Engine) Regions() []TrackedRegion {
	return e.regions.Regions()
}

// GestureState returns the gesture arbitration state.
func (e *Engine) GestureState() GestureState {
	return e.gestures.State()
}

// Root returns the scene's root container node. The tree must be treated
// as read-only.
func (e *Engine) Root() *Node {
	return e.root
}

// Primitives refreshes world transforms and returns every visible drawable
// node in depth-first order.
func (e *Engine) Primitives() []Primitive {
	updateWorldTransform(e.root, Identity, 1.0, false)
	var out []Primitive
	e.root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Type != NodeTypeContainer {
			out = append(out, Primitive{
				Node:     n,
				Geometry: n.Geometry,
				Material: n.Material,
				World:    n.worldTransform,
				Alpha:    n.worldAlpha,
			})
		}
		return true
	})
	return out
}

// Camera returns the camera used for screen-space hit tests.
func (e *Engine) Camera() *Camera {
	return e.camera
}

// SetViewport sets the screen rectangle and vertical field of view of the
// camera image.
func (e *Engine) SetViewport(viewport Rect, fovY float64) {
	e.camera.Viewport = viewport
	e.camera.FovY = fovY
}

// SetHitTester replaces the built-in raycaster. Passing nil restores it.
func (e *Engine) SetHitTester(h HitTester) {
	if h == nil {
		h = e.sceneHit
	}
	e.touches.SetHitTester(h)
}

// SetEventSink sets the optional notification observer.
func (e *Engine) SetEventSink(sink EventSink) {
	e.notify.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and state changes are logged to the debug output.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	globalDebug = enabled
}

// DumpTree writes an indented outline of the scene tree to w.
func (e *Engine) DumpTree(w io.Writer) {
	updateWorldTransform(e.root, Identity, 1.0, false)
	debugDumpTree(w, e.root, 0)
}
