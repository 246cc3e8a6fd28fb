// Package ebitenhost turns ebiten mouse, touch and wheel input into easel
// events, so an ebiten game can drive an Engine directly.
package ebitenhost

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/easel"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	// wheelScaleStep is the pinch scale produced by one wheel notch.
	wheelScaleStep = 0.1
	// wheelRotateStep is the rotation (radians) produced by one wheel
	// notch while shift is held.
	wheelRotateStep = math.Pi / 36
)

// inputReader is the slice of the ebiten input API the adapter reads.
// Tests substitute a scripted implementation.
type inputReader interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(ebiten.MouseButton) bool
	AppendTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	TouchPosition(ebiten.TouchID) (int, int)
	Wheel() (float64, float64)
	IsKeyPressed(ebiten.Key) bool
}

type ebitenReader struct{}

func (ebitenReader) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenReader) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenReader) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenReader) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }
func (ebitenReader) Wheel() (float64, float64)                  { return ebiten.Wheel() }
func (ebitenReader) IsKeyPressed(k ebiten.Key) bool             { return ebiten.IsKeyPressed(k) }

// --- Per-pointer state ---

type pointerState struct {
	down bool
	last easel.Vec2
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	pointer0    int
	pointer1    int
	initialDist float64
	prevAngle   float64
	rotation    float64
}

// Input polls ebiten once per frame and reports what changed as easel
// events. The mouse is pointer 0 and acts as a single finger; touches take
// pointers 1-9. Two fingers down produce pinch and rotate recognizer
// updates; the wheel produces a one-frame pinch (or rotate with shift).
type Input struct {
	reader inputReader

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	pinch        pinchState

	events []easel.Event
}

// NewInput creates an adapter reading live ebiten input.
func NewInput() *Input {
	return &Input{reader: ebitenReader{}}
}

// Poll reads the current input state and returns the events since the
// previous Poll, stamped at now. The returned slice is reused by the next
// call.
func (in *Input) Poll(now time.Time) []easel.Event {
	in.events = in.events[:0]
	in.processMousePointer(now)
	in.processTouchPointers(now)
	in.detectPinch(now)
	in.processWheel(now)
	return in.events
}

// processMousePointer handles the left mouse button (pointer 0).
func (in *Input) processMousePointer(now time.Time) {
	mx, my := in.reader.CursorPosition()
	pressed := in.reader.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(0, easel.Vec2{X: float64(mx), Y: float64(my)}, pressed, now)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *Input) processTouchPointers(now time.Time) {
	touchIDs := in.reader.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := in.reader.TouchPosition(tid)
		in.processPointer(slot, easel.Vec2{X: float64(tx), Y: float64(ty)}, true, now)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.last, false, now)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns one pointer's pressed state into touch events.
func (in *Input) processPointer(id int, pt easel.Vec2, pressed bool, now time.Time) {
	ps := &in.pointers[id]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.last = pt
		in.events = append(in.events, easel.TouchEvent(easel.EventTouchBegan, now, id, pt))
	case !pressed && ps.down:
		ps.down = false
		in.events = append(in.events, easel.TouchEvent(easel.EventTouchEnded, now, id, pt))
	case pressed && ps.down:
		if pt != ps.last {
			ps.last = pt
			in.events = append(in.events, easel.TouchEvent(easel.EventTouchMoved, now, id, pt))
		}
	}
}

// --- Pinch detection ---

func (in *Input) detectPinch(now time.Time) {
	var p [2]int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if in.pointers[i].down {
			if count < 2 {
				p[count] = i
			}
			count++
		}
	}

	if count != 2 {
		in.endPinch(now)
		return
	}

	a, b := in.pointers[p[0]].last, in.pointers[p[1]].last
	dx, dy := b.X-a.X, b.Y-a.Y
	dist := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)

	if !in.pinch.active || in.pinch.pointer0 != p[0] || in.pinch.pointer1 != p[1] {
		in.endPinch(now)
		in.pinch = pinchState{
			active:      true,
			pointer0:    p[0],
			pointer1:    p[1],
			initialDist: dist,
			prevAngle:   angle,
		}
		in.events = append(in.events,
			easel.PinchEvent(now, easel.GestureBegan, 1),
			easel.RotateEvent(now, easel.GestureBegan, 0),
		)
		return
	}

	scale := 1.0
	if in.pinch.initialDist > 0 {
		scale = dist / in.pinch.initialDist
	}
	// Screen Y points down, so a clockwise finger twist has a positive
	// screen angle; accumulate wrapped deltas so the total can pass ±π.
	in.pinch.rotation += wrapAngle(angle - in.pinch.prevAngle)
	in.pinch.prevAngle = angle

	in.events = append(in.events,
		easel.PinchEvent(now, easel.GestureChanged, scale),
		easel.RotateEvent(now, easel.GestureChanged, -in.pinch.rotation),
	)
}

func (in *Input) endPinch(now time.Time) {
	if !in.pinch.active {
		return
	}
	in.pinch.active = false
	in.events = append(in.events,
		easel.PinchEvent(now, easel.GestureEnded, 1),
		easel.RotateEvent(now, easel.GestureEnded, -in.pinch.rotation),
	)
}

// processWheel turns one frame of wheel movement into a complete gesture.
func (in *Input) processWheel(now time.Time) {
	_, dy := in.reader.Wheel()
	if dy == 0 {
		return
	}
	if in.reader.IsKeyPressed(ebiten.KeyShift) {
		r := dy * wheelRotateStep
		in.events = append(in.events,
			easel.RotateEvent(now, easel.GestureBegan, 0),
			easel.RotateEvent(now, easel.GestureChanged, r),
			easel.RotateEvent(now, easel.GestureEnded, r),
		)
		return
	}
	s := math.Max(1+dy*wheelScaleStep, wheelScaleStep)
	in.events = append(in.events,
		easel.PinchEvent(now, easel.GestureBegan, 1),
		easel.PinchEvent(now, easel.GestureChanged, s),
		easel.PinchEvent(now, easel.GestureEnded, s),
	)
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
