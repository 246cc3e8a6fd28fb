package easel

import "math"

// GestureState is the transform writer currently in control of the placed
// object.
type GestureState uint8

const (
	GestureIdle     GestureState = iota // nothing is manipulating the object
	GestureDragging                     // a touch is repositioning it
	GestureRotating                     // a rotation recognizer owns yaw
	GestureScaling                      // a pinch recognizer owns scale
)

// String returns the state name.
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GestureRotating:
		return "rotating"
	case GestureScaling:
		return "scaling"
	default:
		return "unknown"
	}
}

// gestureArbiter is the one place that decides which writers may touch the
// object's transform. Pinch and rotate write disjoint channels and may run
// together; position writes are refused while either is active, since both
// recognizers start with touches that would otherwise read as a drag.
type gestureArbiter struct {
	dragging bool
	rotating bool
	scaling  bool

	// Set when a session was opened by a Changed without Began. Such a
	// session also ends when a finger lands with no other finger down.
	rotateImplicit bool
	scaleImplicit  bool
}

func (a *gestureArbiter) state() GestureState {
	switch {
	case a.rotating:
		return GestureRotating
	case a.scaling:
		return GestureScaling
	case a.dragging:
		return GestureDragging
	default:
		return GestureIdle
	}
}

func (a *gestureArbiter) canWritePosition() bool {
	return !a.rotating && !a.scaling
}

// GestureComposer folds independent pinch and rotate recognizer updates
// into the placed object's scale and yaw.
type GestureComposer struct {
	placement *PlacementController
	minScale  float64
	maxScale  float64

	arbiter gestureArbiter

	// pinchApplied is the part of the current pinch session's cumulative
	// scale already multiplied into the object.
	pinchApplied float64
}

// NewGestureComposer creates a composer writing to placement's object.
func NewGestureComposer(cfg Config, placement *PlacementController) *GestureComposer {
	return &GestureComposer{
		placement:    placement,
		minScale:     cfg.MinScale,
		maxScale:     cfg.MaxScale,
		pinchApplied: 1,
	}
}

// State returns the current arbitration state.
func (g *GestureComposer) State() GestureState {
	return g.arbiter.state()
}

// Pinch applies a pinch recognizer update. scale is cumulative since the
// gesture began; each change multiplies the object's scale by the part not
// yet applied, so sessions compose as a running product.
func (g *GestureComposer) Pinch(phase GesturePhase, scale float64) {
	switch phase {
	case GestureBegan:
		g.arbiter.scaling = true
		g.arbiter.scaleImplicit = false
		g.pinchApplied = 1
	case GestureChanged:
		if !g.arbiter.scaling {
			g.arbiter.scaling = true
			g.arbiter.scaleImplicit = true
			g.pinchApplied = 1
		}
		if scale <= 0 {
			return
		}
		inc := scale / g.pinchApplied
		g.pinchApplied = scale
		// Without an object the change is only tracked, so a placement
		// mid-gesture scales from the next change on.
		if obj := g.placement.Object(); obj != nil {
			g.applyScale(obj, inc)
		}
	case GestureEnded, GestureCancelled:
		g.arbiter.scaling = false
		g.arbiter.scaleImplicit = false
		g.pinchApplied = 1
	}
}

func (g *GestureComposer) applyScale(obj *PlacedObject, factor float64) {
	s := obj.Scale()
	hi := math.Max(s.X, math.Max(s.Y, s.Z))
	lo := math.Min(s.X, math.Min(s.Y, s.Z))
	// Limit the factor so no axis leaves [minScale, maxScale]; a uniform
	// factor keeps the frame's proportions.
	if hi > 0 && factor*hi > g.maxScale {
		factor = g.maxScale / hi
	}
	if lo > 0 && factor*lo < g.minScale {
		factor = g.minScale / lo
	}
	if factor == 1 {
		return
	}
	obj.Node.SetScale(Vec3{X: s.X * factor, Y: s.Y * factor, Z: s.Z * factor})
	g.placement.notify.emit(Notification{Type: NotifyScaled, ObjectID: obj.ID, Transform: obj.Transform()})
}

// Rotate applies a rotation recognizer update. While the gesture changes,
// yaw is the committed base plus the gesture's rotation; on end the live
// yaw becomes the new base.
//
// Hosts should bracket changes with Began and Ended or Cancelled. A
// session opened by a bare Changed is closed by the next touch that lands
// while no other finger is down.
func (g *GestureComposer) Rotate(phase GesturePhase, rotation float64) {
	obj := g.placement.Object()
	switch phase {
	case GestureBegan:
		g.arbiter.rotating = true
		g.arbiter.rotateImplicit = false
	case GestureChanged:
		if !g.arbiter.rotating {
			g.arbiter.rotating = true
			g.arbiter.rotateImplicit = true
		}
		if obj == nil {
			return
		}
		obj.Node.SetYaw(obj.Gesture.BaseYaw + rotation)
		g.placement.notify.emit(Notification{Type: NotifyRotated, ObjectID: obj.ID, Transform: obj.Transform()})
	case GestureEnded, GestureCancelled:
		g.arbiter.rotating = false
		g.arbiter.rotateImplicit = false
		if obj != nil {
			obj.Gesture.BaseYaw = obj.Yaw()
		}
	}
}

// Cancel ends every active gesture session as if its recognizer reported
// cancelled, committing the yaw currently shown.
func (g *GestureComposer) Cancel() {
	if g.arbiter.rotating {
		g.Rotate(GestureCancelled, 0)
	}
	if g.arbiter.scaling {
		g.Pinch(GestureCancelled, 1)
	}
	g.arbiter.dragging = false
}

// firstTouch closes sessions opened without Began: both recognizers need
// two fingers, so none of them can still be running.
func (g *GestureComposer) firstTouch() {
	if g.arbiter.rotateImplicit {
		g.Rotate(GestureEnded, 0)
	}
	if g.arbiter.scaleImplicit {
		g.Pinch(GestureEnded, 1)
	}
}

func (g *GestureComposer) allowDrag() bool {
	return g.arbiter.canWritePosition()
}

func (g *GestureComposer) beginDrag() {
	g.arbiter.dragging = true
}

func (g *GestureComposer) endDrag() {
	g.arbiter.dragging = false
}
