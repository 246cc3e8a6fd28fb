package easel

import "time"

// maxTouches is the number of concurrent touches tracked. Extra fingers
// are ignored until a slot frees up.
const maxTouches = 10

// TouchSession is the state of one finger from began to ended.
type TouchSession struct {
	ID         int
	Start      time.Time
	StartPoint Vec2
	LastPoint  Vec2
	// Target is the object the touch began on, or nil.
	Target *PlacedObject
	// Moved is set once a move repositioned the target.
	Moved bool
}

type touchState struct {
	used    bool
	session TouchSession
}

// TouchClassifier decides, per touch, whether the touch is a tap or a drag
// of the placed object and, for drags, relocates the object onto the plane
// under the finger. Only the first touch that lands on the object may drag
// it; moves within the debounce window after touch-down are ignored.
type TouchClassifier struct {
	debounce  time.Duration
	hit       HitTester
	placement *PlacementController
	gestures  *GestureComposer

	slots [maxTouches]touchState
	// drag is the slot owning the object, or -1.
	drag int
}

// NewTouchClassifier creates a classifier that drags placement's object
// using hit for screen-space queries. gestures may be nil.
func NewTouchClassifier(cfg Config, hit HitTester, placement *PlacementController, gestures *GestureComposer) *TouchClassifier {
	return &TouchClassifier{
		debounce:  cfg.DragDebounce,
		hit:       hit,
		placement: placement,
		gestures:  gestures,
		drag:      -1,
	}
}

// SetHitTester replaces the hit-tester used by later touches.
func (c *TouchClassifier) SetHitTester(h HitTester) {
	c.hit = h
}

// TouchBegan starts a session for id. Reports whether the touch landed on
// the placed object and now owns it.
func (c *TouchClassifier) TouchBegan(id int, pt Vec2, at time.Time) bool {
	if c.gestures != nil && c.ActiveTouches() == 0 {
		c.gestures.firstTouch()
	}
	slot := c.touchSlot(id)
	if slot < 0 {
		debugf("touch: no free slot for %d", id)
		return false
	}
	if slot == c.drag {
		// A repeated began for a live id restarts the session.
		c.releaseDrag()
	}
	s := TouchSession{ID: id, Start: at, StartPoint: pt, LastPoint: pt}
	obj := c.placement.Object()
	if obj != nil && c.drag < 0 && c.hit != nil && c.hit.HitObject(pt, obj.Node) {
		s.Target = obj
		c.drag = slot
	}
	c.slots[slot].session = s
	return s.Target != nil
}

// TouchMoved updates the session for id. Reports whether the move
// repositioned the object.
func (c *TouchClassifier) TouchMoved(id int, pt Vec2, at time.Time) bool {
	slot := c.findSlot(id)
	if slot < 0 {
		return false
	}
	s := &c.slots[slot].session
	s.LastPoint = pt
	if slot != c.drag || s.Target == nil {
		return false
	}
	if at.Sub(s.Start) <= c.debounce {
		return false
	}
	if s.Target != c.placement.Object() {
		return false
	}
	if c.gestures != nil && !c.gestures.allowDrag() {
		return false
	}
	hit, ok := c.hit.HitPlane(pt)
	if !ok {
		return false
	}
	if !s.Moved {
		s.Moved = true
		s.Target.Dragging = true
		if c.gestures != nil {
			c.gestures.beginDrag()
		}
		debugf("touch: %d dragging %s", id, s.Target.ID)
	}
	c.placement.Reposition(s.Target, hit)
	return true
}

// TouchEnded closes the session for id. Reports whether the touch was a
// tap on the object: it began on it and never dragged it.
func (c *TouchClassifier) TouchEnded(id int, at time.Time) bool {
	slot := c.findSlot(id)
	if slot < 0 {
		return false
	}
	s := c.slots[slot].session
	c.free(slot)
	return s.Target != nil && !s.Moved
}

// TouchCancelled discards the session for id.
func (c *TouchClassifier) TouchCancelled(id int) {
	if slot := c.findSlot(id); slot >= 0 {
		c.free(slot)
	}
}

// Session returns the live session for id.
func (c *TouchClassifier) Session(id int) (TouchSession, bool) {
	slot := c.findSlot(id)
	if slot < 0 {
		return TouchSession{}, false
	}
	return c.slots[slot].session, true
}

// ActiveTouches returns the number of fingers down.
func (c *TouchClassifier) ActiveTouches() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].used {
			n++
		}
	}
	return n
}

// Reset drops every session.
func (c *TouchClassifier) Reset() {
	c.releaseDrag()
	c.slots = [maxTouches]touchState{}
}

func (c *TouchClassifier) free(slot int) {
	if slot == c.drag {
		c.releaseDrag()
	}
	c.slots[slot] = touchState{}
}

func (c *TouchClassifier) releaseDrag() {
	if c.drag < 0 {
		return
	}
	if t := c.slots[c.drag].session.Target; t != nil {
		t.Dragging = false
	}
	if c.gestures != nil {
		c.gestures.endDrag()
	}
	c.drag = -1
}

// touchSlot returns the slot mapped to id, allocating one if needed.
// Returns -1 if all slots are in use.
func (c *TouchClassifier) touchSlot(id int) int {
	if slot := c.findSlot(id); slot >= 0 {
		return slot
	}
	for i := range c.slots {
		if !c.slots[i].used {
			c.slots[i].used = true
			c.slots[i].session.ID = id
			return i
		}
	}
	return -1
}

func (c *TouchClassifier) findSlot(id int) int {
	for i := range c.slots {
		if c.slots[i].used && c.slots[i].session.ID == id {
			return i
		}
	}
	return -1
}
