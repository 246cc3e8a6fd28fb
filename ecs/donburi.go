// Package ecs provides ECS adapters for easel.
package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// NotificationEventType is the Donburi event type for easel notifications.
var NotificationEventType = events.NewEventType[easel.Notification]()

// RegionData is the component carried by pending region entities.
type RegionData struct {
	ID        uuid.UUID
	Extent    easel.Extent
	Transform easel.Mat4
}

// PlacementData is the component carried by the placed object's entity.
type PlacementData struct {
	ID        uuid.UUID
	Transform easel.Mat4
}

// StatusData is the component of the singleton status entity.
type StatusData struct {
	easel.Status
}

var (
	// Region marks entities mirroring pending regions.
	Region = donburi.NewComponentType[RegionData]()
	// Placement marks the entity mirroring the placed object.
	Placement = donburi.NewComponentType[PlacementData]()
	// StatusComponent holds the latest status projection.
	StatusComponent = donburi.NewComponentType[StatusData]()

	regionQuery = donburi.NewQuery(filter.Contains(Region))
)

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Notifications are published to NotificationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) easel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(n easel.Notification) {
	NotificationEventType.Publish(s.world, n)
}

// Mirror is an EventSink that publishes every notification and keeps
// entities in the world in step with the engine.
type Mirror struct {
	world     donburi.World
	regions   map[uuid.UUID]donburi.Entity
	placement donburi.Entity
	status    donburi.Entity
}

// NewDonburiMirror creates a Mirror over world.
func NewDonburiMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:   world,
		regions: make(map[uuid.UUID]donburi.Entity),
	}
}

// Emit implements easel.EventSink.
func (m *Mirror) Emit(n easel.Notification) {
	switch n.Type {
	case easel.NotifyRegionAdded, easel.NotifyRegionUpdated:
		e, ok := m.regions[n.RegionID]
		if !ok || !m.world.Valid(e) {
			e = m.world.Create(Region)
			m.regions[n.RegionID] = e
		}
		Region.SetValue(m.world.Entry(e), RegionData{ID: n.RegionID, Extent: n.Extent, Transform: n.Transform})
	case easel.NotifyRegionRemoved:
		if e, ok := m.regions[n.RegionID]; ok {
			if m.world.Valid(e) {
				m.world.Remove(e)
			}
			delete(m.regions, n.RegionID)
		}
	case easel.NotifyPlaced, easel.NotifyMoved, easel.NotifyScaled, easel.NotifyRotated:
		if m.placement == donburi.Null || !m.world.Valid(m.placement) {
			m.placement = m.world.Create(Placement)
		}
		Placement.SetValue(m.world.Entry(m.placement), PlacementData{ID: n.ObjectID, Transform: n.Transform})
	case easel.NotifyCleared:
		if m.placement != donburi.Null && m.world.Valid(m.placement) {
			m.world.Remove(m.placement)
		}
		m.placement = donburi.Null
	case easel.NotifyStatus:
		if m.status == donburi.Null || !m.world.Valid(m.status) {
			m.status = m.world.Create(StatusComponent)
		}
		StatusComponent.SetValue(m.world.Entry(m.status), StatusData{Status: n.Status})
	}
	NotificationEventType.Publish(m.world, n)
}

// NumRegions returns the number of region entities in the world.
func (m *Mirror) NumRegions() int {
	return regionQuery.Count(m.world)
}

// Placed returns the placed object's component, if one exists.
func (m *Mirror) Placed() (PlacementData, bool) {
	if m.placement == donburi.Null || !m.world.Valid(m.placement) {
		return PlacementData{}, false
	}
	return *Placement.Get(m.world.Entry(m.placement)), true
}

// Status returns the latest mirrored status.
func (m *Mirror) Status() (easel.Status, bool) {
	if m.status == donburi.Null || !m.world.Valid(m.status) {
		return easel.Status{}, false
	}
	return StatusComponent.Get(m.world.Entry(m.status)).Status, true
}
