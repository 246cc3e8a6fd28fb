package ecs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []easel.Notification
	NotificationEventType.Subscribe(world, func(w donburi.World, n easel.Notification) {
		received = append(received, n)
	})

	id := uuid.New()
	sink.Emit(easel.Notification{Type: easel.NotifyRegionAdded, RegionID: id, Extent: easel.Extent{Width: 0.2, Depth: 0.2}})
	sink.Emit(easel.Notification{Type: easel.NotifyScaled})

	// Events are queued until processed.
	NotificationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != easel.NotifyRegionAdded || received[0].RegionID != id {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != easel.NotifyScaled {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink easel.EventSink = NewDonburiSink(world)
	_ = sink
	var mirror easel.EventSink = NewDonburiMirror(world)
	_ = mirror
}

func TestMirror_RegionLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	m := NewDonburiMirror(world)

	a, b := uuid.New(), uuid.New()
	m.Emit(easel.Notification{Type: easel.NotifyRegionAdded, RegionID: a})
	m.Emit(easel.Notification{Type: easel.NotifyRegionAdded, RegionID: b})
	m.Emit(easel.Notification{Type: easel.NotifyRegionUpdated, RegionID: a, Extent: easel.Extent{Width: 0.3, Depth: 0.1}})
	if got := m.NumRegions(); got != 2 {
		t.Fatalf("NumRegions = %d, want 2", got)
	}

	e := m.regions[a]
	if got := Region.Get(world.Entry(e)).Extent; got != (easel.Extent{Width: 0.3, Depth: 0.1}) {
		t.Errorf("extent = %+v", got)
	}

	m.Emit(easel.Notification{Type: easel.NotifyRegionRemoved, RegionID: a})
	if got := m.NumRegions(); got != 1 {
		t.Errorf("NumRegions after remove = %d, want 1", got)
	}
}

func TestMirror_PlacementFollowsEngine(t *testing.T) {
	world := donburi.NewWorld()
	m := NewDonburiMirror(world)

	e := easel.NewEngine(easel.DefaultConfig())
	e.SetEventSink(m)
	c, err := easel.SizedContent("art", 2000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	e.SetContent(c)

	wall := easel.Translate(easel.Vec3{Z: -1}).Mul(easel.RotateX(1.5707963267948966))
	e.Apply(easel.AnchorAddedEvent(time.Unix(0, 0), easel.WallAnchor(uuid.New(), easel.Extent{Width: 0.4, Depth: 0.4}, wall)))

	placed, ok := m.Placed()
	if !ok {
		t.Fatal("expected a placement entity")
	}
	if placed.ID != e.Object().ID {
		t.Errorf("placement id = %s, want %s", placed.ID, e.Object().ID)
	}
	if st, ok := m.Status(); !ok || !st.Placed {
		t.Errorf("mirrored status = %+v, %v", st, ok)
	}

	e.Apply(easel.Event{Type: easel.EventSessionReset, At: time.Unix(1, 0)})
	if _, ok := m.Placed(); ok {
		t.Error("placement entity should be removed on reset")
	}
}

func TestMirror_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	m := NewDonburiMirror(world)

	var count1, count2 int
	NotificationEventType.Subscribe(world, func(w donburi.World, n easel.Notification) {
		count1++
	})
	NotificationEventType.Subscribe(world, func(w donburi.World, n easel.Notification) {
		count2++
	})

	m.Emit(easel.Notification{Type: easel.NotifyCleared})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
