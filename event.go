package easel

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of an Event.
type EventType uint8

const (
	EventAnchorAdded        EventType = iota // tracking reported a new anchor
	EventAnchorUpdated                       // tracking refined an existing anchor
	EventAnchorRemoved                       // tracking dropped an anchor
	EventTrackingChanged                     // camera tracking quality changed
	EventSessionInterrupted                  // session paused (app backgrounded, camera taken)
	EventInterruptionEnded                   // session resumed after an interruption
	EventSessionFailed                       // session stopped with an error
	EventSessionReset                        // host requested a fresh placement session
	EventCameraMoved                         // new camera pose for screen-space hit tests
	EventTouchBegan                          // finger down
	EventTouchMoved                          // finger moved while down
	EventTouchEnded                          // finger lifted
	EventTouchCancelled                      // touch stolen by the system
	EventPinch                               // pinch recognizer update
	EventRotate                              // rotation recognizer update
)

var eventTypeNames = [...]string{
	EventAnchorAdded:        "anchorAdded",
	EventAnchorUpdated:      "anchorUpdated",
	EventAnchorRemoved:      "anchorRemoved",
	EventTrackingChanged:    "trackingChanged",
	EventSessionInterrupted: "sessionInterrupted",
	EventInterruptionEnded:  "interruptionEnded",
	EventSessionFailed:      "sessionFailed",
	EventSessionReset:       "sessionReset",
	EventCameraMoved:        "cameraMoved",
	EventTouchBegan:         "touchBegan",
	EventTouchMoved:         "touchMoved",
	EventTouchEnded:         "touchEnded",
	EventTouchCancelled:     "touchCancelled",
	EventPinch:              "pinch",
	EventRotate:             "rotate",
}

// String returns the event type's wire name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// parseEventType is the inverse of EventType.String.
func parseEventType(s string) (EventType, bool) {
	for i, name := range eventTypeNames {
		if name == s {
			return EventType(i), true
		}
	}
	return 0, false
}

// PlaneInfo is the plane variant of an Anchor.
type PlaneInfo struct {
	Alignment Alignment
	Extent    Extent
}

// Anchor is a tracked real-world pose. Kind selects the variant: Plane is
// only meaningful when Kind is AnchorPlane.
type Anchor struct {
	ID        uuid.UUID
	Kind      AnchorKind
	Plane     PlaneInfo
	Transform Mat4
}

// IsVerticalPlane reports whether a is a wall candidate.
func (a Anchor) IsVerticalPlane() bool {
	return a.Kind == AnchorPlane && a.Plane.Alignment == AlignmentVertical
}

// Event is the single ordered input of the Engine. A flat struct is used for
// every kind; only the fields relevant to Type are read.
type Event struct {
	Type EventType
	At   time.Time

	// Anchor events (EventAnchorRemoved reads Anchor.ID only)
	Anchor Anchor

	// EventTrackingChanged
	Tracking TrackingState
	Reason   TrackingReason

	// EventSessionFailed
	Err string

	// EventCameraMoved
	Camera Mat4

	// Touch events
	TouchID int
	Point   Vec2

	// Gesture events
	Phase    GesturePhase
	Scale    float64 // pinch scale relative to gesture start
	Rotation float64 // rotation in radians relative to gesture start
}

// --- Constructors ---

// AnchorAddedEvent reports a new anchor.
func AnchorAddedEvent(at time.Time, a Anchor) Event {
	return Event{Type: EventAnchorAdded, At: at, Anchor: a}
}

// AnchorUpdatedEvent reports a refined anchor.
func AnchorUpdatedEvent(at time.Time, a Anchor) Event {
	return Event{Type: EventAnchorUpdated, At: at, Anchor: a}
}

// AnchorRemovedEvent reports a dropped anchor.
func AnchorRemovedEvent(at time.Time, id uuid.UUID) Event {
	return Event{Type: EventAnchorRemoved, At: at, Anchor: Anchor{ID: id}}
}

// WallAnchor builds a vertical plane anchor.
func WallAnchor(id uuid.UUID, extent Extent, transform Mat4) Anchor {
	return Anchor{
		ID:        id,
		Kind:      AnchorPlane,
		Plane:     PlaneInfo{Alignment: AlignmentVertical, Extent: extent},
		Transform: transform,
	}
}

// TrackingEvent reports a tracking quality change.
func TrackingEvent(at time.Time, state TrackingState, reason TrackingReason) Event {
	return Event{Type: EventTrackingChanged, At: at, Tracking: state, Reason: reason}
}

// TouchEvent builds a touch event of the given type.
func TouchEvent(typ EventType, at time.Time, id int, pt Vec2) Event {
	return Event{Type: typ, At: at, TouchID: id, Point: pt}
}

// PinchEvent builds a pinch recognizer update.
func PinchEvent(at time.Time, phase GesturePhase, scale float64) Event {
	return Event{Type: EventPinch, At: at, Phase: phase, Scale: scale}
}

// RotateEvent builds a rotation recognizer update.
func RotateEvent(at time.Time, phase GesturePhase, rotation float64) Event {
	return Event{Type: EventRotate, At: at, Phase: phase, Rotation: rotation}
}

// CameraEvent reports a new camera pose.
func CameraEvent(at time.Time, pose Mat4) Event {
	return Event{Type: EventCameraMoved, At: at, Camera: pose}
}
