package easel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.Position = Vec3{X: 0.1, Y: 0.2, Z: -1}

	g := TweenPosition(node, Vec3{X: 1, Y: 2, Z: -3}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Position.X-1) > 1e-5 || math.Abs(node.Position.Y-2) > 1e-5 || math.Abs(node.Position.Z+3) > 1e-5 {
		t.Errorf("Position = %v, want ~{1 2 -3}", node.Position)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")

	g := TweenScale(node, Vec3{X: 2, Y: 3, Z: 0.5}, 0.5, ease.Linear)

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done at halfway")
	}
	if math.Abs(node.Scale.X-1.5) > 0.01 {
		t.Errorf("Scale.X = %f, want ~1.5 at halfway", node.Scale.X)
	}
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Scale.X-2) > 0.01 || math.Abs(node.Scale.Y-3) > 0.01 || math.Abs(node.Scale.Z-0.5) > 0.01 {
		t.Errorf("Scale = %v, want ~{2 3 0.5}", node.Scale)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewContainer("alpha")
	node.Alpha = 1.0

	tw := TweenAlpha(node, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(node.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", node.Alpha)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewContainer("done")
	g := TweenPosition(node, Vec3{X: 5, Y: 5}, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewContainer("dirty")
	node.transformDirty = false

	g := TweenPosition(node, Vec3{X: 1}, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	node.Position = Vec3{X: 0.5, Y: 0.25}

	g := TweenPosition(node, Vec3{X: 2, Y: 2}, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.Position != (Vec3{X: 0.5, Y: 0.25}) {
		t.Errorf("Position changed to %v on disposed node", node.Position)
	}
}

func TestTweenGroupDisposedMidAnimation(t *testing.T) {
	node := NewContainer("mid-dispose")

	g := TweenPosition(node, Vec3{X: 1, Y: 1}, 1.0, ease.Linear)
	g.Update(0.1)
	g.Update(0.1)
	if g.Done {
		t.Fatal("should not be Done yet")
	}

	x := node.Position.X
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after mid-animation dispose")
	}
	if node.Position.X != x {
		t.Errorf("X changed from %f to %f after dispose", x, node.Position.X)
	}
}

// --- animator ---

func TestAnimatorAppear(t *testing.T) {
	a := newAnimator(0.25)
	n := NewPlane("panel", 0.2, 0.1)

	a.appear(n)
	if n.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0 at start of fade", n.Alpha)
	}
	if a.active() != 1 {
		t.Fatalf("active = %d, want 1", a.active())
	}

	a.update(0.125)
	if n.Alpha <= 0 || n.Alpha >= 1 {
		t.Errorf("Alpha = %f, want strictly between 0 and 1 mid-fade", n.Alpha)
	}
	a.update(0.125)
	if a.active() != 0 {
		t.Errorf("active = %d, want 0 after fade completes", a.active())
	}
	if math.Abs(n.Alpha-1) > 1e-6 {
		t.Errorf("Alpha = %f, want 1", n.Alpha)
	}
}

func TestAnimatorZeroDuration(t *testing.T) {
	a := newAnimator(0)
	n := NewPlane("panel", 0.2, 0.1)
	a.appear(n)
	if a.active() != 0 || n.Alpha != 1 {
		t.Errorf("active = %d, Alpha = %f; zero duration should leave the node opaque", a.active(), n.Alpha)
	}
}

func TestAnimatorFinish(t *testing.T) {
	a := newAnimator(1)
	kept := NewPlane("kept", 0.2, 0.1)
	gone := NewPlane("gone", 0.2, 0.1)
	a.appear(kept)
	a.appear(gone)
	gone.Dispose()

	a.finish()
	if a.active() != 0 {
		t.Errorf("active = %d, want 0", a.active())
	}
	if kept.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1 after finish", kept.Alpha)
	}
}

func TestAnimatorDropsDisposed(t *testing.T) {
	a := newAnimator(1)
	n := NewPlane("panel", 0.2, 0.1)
	a.appear(n)
	n.Dispose()
	a.update(0.1)
	if a.active() != 0 {
		t.Errorf("active = %d, want 0 once the node is disposed", a.active())
	}
}
