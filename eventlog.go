package easel

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// eventRecord is the JSON form of one Event. Only the fields relevant to
// the type are written.
type eventRecord struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`

	Anchor *anchorRecord `json:"anchor,omitempty"`

	Tracking string `json:"tracking,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Err      string `json:"err,omitempty"`
	Camera   *Mat4  `json:"camera,omitempty"`

	Touch *int    `json:"touch,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`

	Phase    string  `json:"phase,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

type anchorRecord struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind,omitempty"`
	Alignment string    `json:"alignment,omitempty"`
	Width     float64   `json:"width,omitempty"`
	Depth     float64   `json:"depth,omitempty"`
	Transform *Mat4     `json:"transform,omitempty"`
}

// eventLog is the top-level JSON structure of an event log.
type eventLog struct {
	Events []eventRecord `json:"events"`
}

// LoadEventLog parses a JSON event log.
func LoadEventLog(jsonData []byte) ([]Event, error) {
	var log eventLog
	if err := json.Unmarshal(jsonData, &log); err != nil {
		return nil, fmt.Errorf("parse event log: %w", err)
	}
	if len(log.Events) == 0 {
		return nil, fmt.Errorf("parse event log: no events")
	}
	events := make([]Event, 0, len(log.Events))
	for i, rec := range log.Events {
		ev, err := rec.event()
		if err != nil {
			return nil, fmt.Errorf("parse event log: event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// MarshalEventLog encodes events in the format read by LoadEventLog.
func MarshalEventLog(events []Event) ([]byte, error) {
	log := eventLog{Events: make([]eventRecord, 0, len(events))}
	for _, ev := range events {
		log.Events = append(log.Events, newEventRecord(ev))
	}
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal event log: %w", err)
	}
	return data, nil
}

// MarshalEvent encodes a single event as one JSON object.
func MarshalEvent(ev Event) ([]byte, error) {
	data, err := json.Marshal(newEventRecord(ev))
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// UnmarshalEvent decodes one object written by MarshalEvent.
func UnmarshalEvent(data []byte) (Event, error) {
	var rec eventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Event{}, fmt.Errorf("parse event: %w", err)
	}
	ev, err := rec.event()
	if err != nil {
		return Event{}, fmt.Errorf("parse event: %w", err)
	}
	return ev, nil
}

func newEventRecord(ev Event) eventRecord {
	rec := eventRecord{Type: ev.Type.String(), At: ev.At}
	switch ev.Type {
	case EventAnchorAdded, EventAnchorUpdated:
		a := ev.Anchor
		t := a.Transform
		ar := &anchorRecord{ID: a.ID, Kind: "generic", Transform: &t}
		if a.Kind == AnchorPlane {
			ar.Kind = "plane"
			ar.Alignment = a.Plane.Alignment.String()
			ar.Width = a.Plane.Extent.Width
			ar.Depth = a.Plane.Extent.Depth
		}
		rec.Anchor = ar
	case EventAnchorRemoved:
		rec.Anchor = &anchorRecord{ID: ev.Anchor.ID}
	case EventTrackingChanged:
		rec.Tracking = ev.Tracking.String()
		rec.Reason = ev.Reason.String()
	case EventSessionFailed:
		rec.Err = ev.Err
	case EventCameraMoved:
		c := ev.Camera
		rec.Camera = &c
	case EventTouchBegan, EventTouchMoved, EventTouchEnded, EventTouchCancelled:
		id := ev.TouchID
		rec.Touch = &id
		rec.X, rec.Y = ev.Point.X, ev.Point.Y
	case EventPinch:
		rec.Phase = ev.Phase.String()
		rec.Scale = ev.Scale
	case EventRotate:
		rec.Phase = ev.Phase.String()
		rec.Rotation = ev.Rotation
	}
	return rec
}

func (rec eventRecord) event() (Event, error) {
	typ, ok := parseEventType(rec.Type)
	if !ok {
		return Event{}, fmt.Errorf("unknown event type %q", rec.Type)
	}
	ev := Event{Type: typ, At: rec.At}
	switch typ {
	case EventAnchorRemoved:
		if rec.Anchor == nil {
			return Event{}, fmt.Errorf("%s: missing anchor", rec.Type)
		}
		ev.Anchor = Anchor{ID: rec.Anchor.ID}
	case EventAnchorAdded, EventAnchorUpdated:
		if rec.Anchor == nil {
			return Event{}, fmt.Errorf("%s: missing anchor", rec.Type)
		}
		a, err := rec.Anchor.anchor()
		if err != nil {
			return Event{}, fmt.Errorf("%s: %w", rec.Type, err)
		}
		ev.Anchor = a
	case EventTrackingChanged:
		state, ok := parseName(rec.Tracking, TrackingNotAvailable, TrackingNormal)
		if !ok {
			return Event{}, fmt.Errorf("unknown tracking state %q", rec.Tracking)
		}
		ev.Tracking = state
		if rec.Reason != "" {
			reason, ok := parseName(rec.Reason, ReasonNone, ReasonRelocalizing)
			if !ok {
				return Event{}, fmt.Errorf("unknown tracking reason %q", rec.Reason)
			}
			ev.Reason = reason
		}
	case EventSessionFailed:
		ev.Err = rec.Err
	case EventCameraMoved:
		if rec.Camera == nil {
			return Event{}, fmt.Errorf("%s: missing camera", rec.Type)
		}
		ev.Camera = *rec.Camera
	case EventTouchBegan, EventTouchMoved, EventTouchEnded, EventTouchCancelled:
		if rec.Touch == nil {
			return Event{}, fmt.Errorf("%s: missing touch id", rec.Type)
		}
		ev.TouchID = *rec.Touch
		ev.Point = Vec2{X: rec.X, Y: rec.Y}
	case EventPinch, EventRotate:
		phase, ok := parseName(rec.Phase, GestureBegan, GestureCancelled)
		if !ok {
			return Event{}, fmt.Errorf("unknown gesture phase %q", rec.Phase)
		}
		ev.Phase = phase
		ev.Scale = rec.Scale
		ev.Rotation = rec.Rotation
		if typ == EventPinch && ev.Scale == 0 {
			ev.Scale = 1
		}
	}
	return ev, nil
}

func (ar *anchorRecord) anchor() (Anchor, error) {
	a := Anchor{ID: ar.ID, Transform: Identity}
	if ar.Transform != nil {
		a.Transform = *ar.Transform
	}
	switch ar.Kind {
	case "", "generic":
		a.Kind = AnchorGeneric
	case "plane":
		a.Kind = AnchorPlane
		align, ok := parseName(ar.Alignment, AlignmentHorizontal, AlignmentVertical)
		if !ok {
			return Anchor{}, fmt.Errorf("unknown alignment %q", ar.Alignment)
		}
		a.Plane = PlaneInfo{Alignment: align, Extent: Extent{Width: ar.Width, Depth: ar.Depth}}
	default:
		return Anchor{}, fmt.Errorf("unknown anchor kind %q", ar.Kind)
	}
	return a, nil
}

// parseName finds the value in [first, last] whose String is s.
func parseName[T interface {
	~uint8
	String() string
}](s string, first, last T) (T, bool) {
	for v := first; v <= last; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// Replayer feeds a recorded event log into an Engine, either one event at
// a time or up to a point on the log's clock.
type Replayer struct {
	events []Event
	cursor int
}

// NewReplayer creates a replayer over events.
func NewReplayer(events []Event) *Replayer {
	return &Replayer{events: events}
}

// Done reports whether every event has been applied.
func (r *Replayer) Done() bool {
	return r.cursor >= len(r.events)
}

// Next applies the next event. Returns false when the log is exhausted.
func (r *Replayer) Next(e *Engine) bool {
	if r.Done() {
		return false
	}
	e.Apply(r.events[r.cursor])
	r.cursor++
	return true
}

// AdvanceTo applies every remaining event stamped at or before t and
// returns how many were applied.
func (r *Replayer) AdvanceTo(e *Engine, t time.Time) int {
	n := 0
	for !r.Done() && !r.events[r.cursor].At.After(t) {
		r.Next(e)
		n++
	}
	return n
}

// Start returns the timestamp of the first event, or the zero time.
func (r *Replayer) Start() time.Time {
	if len(r.events) == 0 {
		return time.Time{}
	}
	return r.events[0].At
}
