package easel

import "testing"

func TestStatusCanCommit(t *testing.T) {
	tests := []struct {
		name string
		s    Status
		want bool
	}{
		{"normal", Status{Tracking: TrackingNormal}, true},
		{"limited", Status{Tracking: TrackingLimited, Reason: ReasonExcessiveMotion}, true},
		{"not available", Status{Tracking: TrackingNotAvailable}, false},
		{"interrupted", Status{Tracking: TrackingNormal, Interrupted: true}, false},
		{"failed", Status{Tracking: TrackingNormal, Failed: true}, false},
	}
	for _, tt := range tests {
		if got := tt.s.CanCommit(); got != tt.want {
			t.Errorf("%s: CanCommit = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{Status{Failed: true, Interrupted: true}, "Session failed"},
		{Status{Failed: true, Err: "boom"}, "Session failed: boom"},
		{Status{Tracking: TrackingNormal, Interrupted: true, Placed: true}, "Session interrupted"},
		{Status{Tracking: TrackingNotAvailable}, "Tracking unavailable"},
		{Status{Tracking: TrackingLimited, Reason: ReasonInitializing}, "Initializing"},
		{Status{Tracking: TrackingLimited, Reason: ReasonExcessiveMotion}, "Too much motion: slow down"},
		{Status{Tracking: TrackingLimited, Reason: ReasonInsufficientFeatures}, "Not enough surface detail: point at a textured wall"},
		{Status{Tracking: TrackingLimited, Reason: ReasonRelocalizing}, "Resuming session"},
		{Status{Tracking: TrackingLimited}, "Tracking limited"},
		{Status{Tracking: TrackingNormal}, "Point the camera at a wall"},
		{Status{Tracking: TrackingNormal, Placed: true}, "Drag to move, pinch to scale, rotate with two fingers"},
	}
	for _, tt := range tests {
		if got := statusMessage(tt.s); got != tt.want {
			t.Errorf("statusMessage(%+v) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestTrackingStrings(t *testing.T) {
	states := map[TrackingState]string{
		TrackingNotAvailable: "notAvailable",
		TrackingLimited:      "limited",
		TrackingNormal:       "normal",
		TrackingState(9):     "unknown",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("TrackingState(%d) = %q, want %q", s, got, want)
		}
	}
	reasons := map[TrackingReason]string{
		ReasonNone:                 "none",
		ReasonInitializing:         "initializing",
		ReasonExcessiveMotion:      "excessiveMotion",
		ReasonInsufficientFeatures: "insufficientFeatures",
		ReasonRelocalizing:         "relocalizing",
		TrackingReason(9):          "unknown",
	}
	for r, want := range reasons {
		if got := r.String(); got != want {
			t.Errorf("TrackingReason(%d) = %q, want %q", r, got, want)
		}
	}
}

// --- Notifications ---

func TestNotifierZeroValueDiscards(t *testing.T) {
	var nt notifier
	nt.emit(Notification{Type: NotifyPlaced}) // should not panic

	var nilNotifier *notifier
	nilNotifier.emit(Notification{Type: NotifyPlaced}) // should not panic
}

func TestEventSinkFunc(t *testing.T) {
	var got []NotificationType
	nt := notifier{sink: EventSinkFunc(func(n Notification) { got = append(got, n.Type) })}
	nt.emit(Notification{Type: NotifyScaled})
	nt.emit(Notification{Type: NotifyRotated})
	if len(got) != 2 || got[0] != NotifyScaled || got[1] != NotifyRotated {
		t.Errorf("got %v", got)
	}
}

func TestEngineSinkReplaced(t *testing.T) {
	e := NewEngine(DefaultConfig())
	first, second := &recorder{}, &recorder{}
	e.SetEventSink(first)
	e.Apply(TrackingEvent(epoch, TrackingNormal, ReasonNone))
	e.SetEventSink(second)
	e.Apply(TrackingEvent(epoch, TrackingNotAvailable, ReasonNone))
	e.SetEventSink(nil)
	e.Apply(TrackingEvent(epoch, TrackingNormal, ReasonNone))

	if len(first.got) != 1 || len(second.got) != 1 {
		t.Errorf("first = %d, second = %d, want 1 each", len(first.got), len(second.got))
	}
	if second.got[0].Status.Tracking != TrackingNotAvailable {
		t.Errorf("status = %+v", second.got[0].Status)
	}
}
