package easel

import (
	"image/color"
	"testing"
)

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside top", 50, 19, false},
		{"outside bottom", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestExtentArea(t *testing.T) {
	assertNear(t, "area", Extent{Width: 0.4, Depth: 0.25}.Area(), 0.1)
	assertNear(t, "zero", Extent{}.Area(), 0)
}

// --- Enum constant values (catch accidental iota drift) ---

func TestEnumValues(t *testing.T) {
	if NodeTypeContainer != 0 || NodeTypeGrid != 3 {
		t.Errorf("NodeType values drifted: %d, %d", NodeTypeContainer, NodeTypeGrid)
	}
	if AnchorGeneric != 0 || AnchorPlane != 1 {
		t.Errorf("AnchorKind values drifted")
	}
	if GestureBegan != 0 || GestureCancelled != 3 {
		t.Errorf("GesturePhase values drifted")
	}
	if EventAnchorAdded != 0 || EventRotate != 14 {
		t.Errorf("EventType values drifted: %d, %d", EventAnchorAdded, EventRotate)
	}
	if NotifyRegionAdded != 0 || NotifyStatus != 9 {
		t.Errorf("NotificationType values drifted")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{NodeTypeContainer.String(), "container"},
		{NodeTypeBox.String(), "box"},
		{NodeTypePlane.String(), "plane"},
		{NodeTypeGrid.String(), "grid"},
		{NodeType(42).String(), "unknown"},
		{AlignmentHorizontal.String(), "horizontal"},
		{AlignmentVertical.String(), "vertical"},
		{GestureBegan.String(), "began"},
		{GestureChanged.String(), "changed"},
		{GestureEnded.String(), "ended"},
		{GestureCancelled.String(), "cancelled"},
		{GesturePhase(42).String(), "unknown"},
		{EventAnchorAdded.String(), "anchorAdded"},
		{EventTouchCancelled.String(), "touchCancelled"},
		{EventType(200).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEventTypeNamesRoundTrip(t *testing.T) {
	for typ := EventAnchorAdded; typ <= EventRotate; typ++ {
		got, ok := parseEventType(typ.String())
		if !ok || got != typ {
			t.Errorf("parseEventType(%q) = %v, %v", typ.String(), got, ok)
		}
	}
	if _, ok := parseEventType("unknown"); ok {
		t.Error("unknown should not parse")
	}
}

// --- Color ---

func TestColorWhite(t *testing.T) {
	if ColorWhite.R != 1 || ColorWhite.G != 1 || ColorWhite.B != 1 || ColorWhite.A != 1 {
		t.Errorf("ColorWhite = %v, want {1,1,1,1}", ColorWhite)
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{Color{R: 1, A: 0.5}, color.RGBA{R: 127, A: 127}},
		{Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := tt.c.RGBA(); got != tt.want {
			t.Errorf("%v.RGBA() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestAnchorIsVerticalPlane(t *testing.T) {
	if !wall(1, 1, 1).IsVerticalPlane() {
		t.Error("wall anchor should be a vertical plane")
	}
	if (Anchor{Kind: AnchorGeneric, Plane: PlaneInfo{Alignment: AlignmentVertical}}).IsVerticalPlane() {
		t.Error("generic anchors are never planes")
	}
}
