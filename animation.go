package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha) and call Update(dt) each frame. The group auto-applies values
// and marks the node dirty. If the target node is disposed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that moves node to the given local
// position.
func TweenPosition(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(node.Position.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Position.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(node.Position.Z), float32(to.Z), duration, fn)
	g.fields[0] = &node.Position.X
	g.fields[1] = &node.Position.Y
	g.fields[2] = &node.Position.Z
	return g
}

// TweenScale creates a TweenGroup that animates all three scale axes.
func TweenScale(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(node.Scale.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Scale.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(node.Scale.Z), float32(to.Z), duration, fn)
	g.fields[0] = &node.Scale.X
	g.fields[1] = &node.Scale.Y
	g.fields[2] = &node.Scale.Z
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// animator runs the appear fades started by the engine. Groups whose node
// is disposed finish on their next update.
type animator struct {
	duration float32
	groups   []*TweenGroup
}

func newAnimator(seconds float64) *animator {
	return &animator{duration: float32(seconds)}
}

// appear fades n in from transparent. A zero duration leaves n opaque.
func (a *animator) appear(n *Node) {
	if a.duration <= 0 {
		return
	}
	n.SetAlpha(0)
	a.groups = append(a.groups, TweenAlpha(n, 1, a.duration, ease.OutQuad))
}

// carry hands prev's alpha and any fade still running on it to next, the
// node rebuilt in its place. Only appear fades are tracked, so the moved
// field is always Alpha.
func (a *animator) carry(prev, next *Node) {
	next.SetAlpha(prev.Alpha)
	for _, g := range a.groups {
		if g.target == prev {
			g.target = next
			g.fields[0] = &next.Alpha
		}
	}
}

func (a *animator) update(dt float32) {
	live := a.groups[:0]
	for _, g := range a.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(a.groups[len(live):])
	a.groups = live
}

// finish snaps every running fade to its end value.
func (a *animator) finish() {
	for _, g := range a.groups {
		if g.target != nil && !g.target.IsDisposed() {
			g.target.SetAlpha(1)
		}
	}
	clear(a.groups)
	a.groups = a.groups[:0]
}

func (a *animator) active() int {
	return len(a.groups)
}
