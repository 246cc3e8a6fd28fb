package easel

import "github.com/google/uuid"

// NotificationType identifies an engine output.
type NotificationType uint8

const (
	NotifyRegionAdded   NotificationType = iota // a grid visualization appeared
	NotifyRegionUpdated                         // a grid was rebuilt from a new extent
	NotifyRegionRemoved                         // a grid was dropped (removed, committed or cleared)
	NotifyCommitted                             // a placement anchor was issued
	NotifyPlaced                                // the object was created
	NotifyMoved                                 // the object was repositioned by a drag
	NotifyScaled                                // a pinch changed the object's scale
	NotifyRotated                               // a rotation changed the object's yaw
	NotifyCleared                               // the object was removed
	NotifyStatus                                // the status projection changed
)

// Notification is emitted to the EventSink after each state change the
// renderer or host UI may care about.
type Notification struct {
	Type      NotificationType
	RegionID  uuid.UUID
	ObjectID  uuid.UUID
	Transform Mat4
	Extent    Extent
	Status    Status
}

// EventSink is the interface for optional observers (an ECS world, a
// recorder, the host UI). Calls happen synchronously inside Engine.Apply.
type EventSink interface {
	Emit(n Notification)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Notification)

// Emit calls f(n).
func (f EventSinkFunc) Emit(n Notification) { f(n) }

// notifier fans out to an optional sink; the zero value discards.
type notifier struct {
	sink EventSink
}

func (nt *notifier) emit(n Notification) {
	if nt == nil || nt.sink == nil {
		return
	}
	nt.sink.Emit(n)
}
