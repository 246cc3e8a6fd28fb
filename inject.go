package easel

import "time"

// TouchTap returns a touch-down and touch-up at the same point, step apart.
func TouchTap(id int, pt Vec2, at time.Time, step time.Duration) []Event {
	return []Event{
		TouchEvent(EventTouchBegan, at, id, pt),
		TouchEvent(EventTouchEnded, at.Add(step), id, pt),
	}
}

// TouchDrag returns a full drag sequence: touch-down at from, moves
// linearly interpolated over frames-2 intermediate frames, and touch-up at
// to. Consecutive events are step apart; the first move is delayed by hold
// so the sequence can be pushed past the drag debounce. Minimum frames is 2
// (down + up).
func TouchDrag(id int, from, to Vec2, frames int, at time.Time, hold, step time.Duration) []Event {
	if frames < 2 {
		frames = 2
	}
	events := make([]Event, 0, frames)
	events = append(events, TouchEvent(EventTouchBegan, at, id, from))
	t := at.Add(hold)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		pt := Vec2{X: from.X + (to.X-from.X)*f, Y: from.Y + (to.Y-from.Y)*f}
		events = append(events, TouchEvent(EventTouchMoved, t, id, pt))
		t = t.Add(step)
	}
	events = append(events, TouchEvent(EventTouchEnded, t, id, to))
	return events
}

// PinchSequence returns a pinch gesture whose cumulative scale goes from 1
// to scale over the given number of change updates.
func PinchSequence(scale float64, updates int, at time.Time, step time.Duration) []Event {
	if updates < 1 {
		updates = 1
	}
	events := make([]Event, 0, updates+2)
	events = append(events, PinchEvent(at, GestureBegan, 1))
	for i := 1; i <= updates; i++ {
		f := float64(i) / float64(updates)
		at = at.Add(step)
		events = append(events, PinchEvent(at, GestureChanged, 1+(scale-1)*f))
	}
	events = append(events, PinchEvent(at.Add(step), GestureEnded, scale))
	return events
}

// RotateSequence returns a rotation gesture whose cumulative rotation goes
// from 0 to rotation radians over the given number of change updates.
func RotateSequence(rotation float64, updates int, at time.Time, step time.Duration) []Event {
	if updates < 1 {
		updates = 1
	}
	events := make([]Event, 0, updates+2)
	events = append(events, RotateEvent(at, GestureBegan, 0))
	for i := 1; i <= updates; i++ {
		f := float64(i) / float64(updates)
		at = at.Add(step)
		events = append(events, RotateEvent(at, GestureChanged, rotation*f))
	}
	events = append(events, RotateEvent(at.Add(step), GestureEnded, rotation))
	return events
}
