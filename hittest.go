package easel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// planeHalfThickness gives flat primitives a sliver of depth so rays
// grazing them still register.
const planeHalfThickness = 1e-4

// HitTester resolves screen points against the scene. The Engine ships a
// SceneHitTester; hosts with a native hit-test (a platform raycast) can
// supply their own.
type HitTester interface {
	// HitObject reports whether the point lands on any primitive of obj.
	HitObject(p Vec2, obj *Node) bool
	// HitPlane returns the pose of the first detected plane under the
	// point: the plane's rotation with the hit point as translation.
	HitPlane(p Vec2) (Mat4, bool)
}

// SceneHitTester casts camera rays against the placed object's primitives
// and the known surfaces.
type SceneHitTester struct {
	Camera *Camera
	// Surfaces lists the planes for HitPlane.
	Surfaces func() []Surface
	// UseExtent limits plane hits to each plane's detected extent.
	UseExtent bool
}

// HitObject implements HitTester.
func (h *SceneHitTester) HitObject(p Vec2, obj *Node) bool {
	if h.Camera == nil || obj == nil || obj.IsDisposed() {
		return false
	}
	_, ok := RaycastNode(h.Camera.ScreenToRay(p), obj)
	return ok
}

// HitPlane implements HitTester.
func (h *SceneHitTester) HitPlane(p Vec2) (Mat4, bool) {
	if h.Camera == nil || h.Surfaces == nil {
		return Mat4{}, false
	}
	ray := h.Camera.ScreenToRay(p)
	best := math.Inf(1)
	var hit Mat4
	for _, s := range h.Surfaces() {
		t, ok := raySurface(ray, s, h.UseExtent)
		if !ok || t >= best {
			continue
		}
		best = t
		hit = s.Transform
		pt := ray.At(t)
		hit[3], hit[7], hit[11] = pt.X, pt.Y, pt.Z
	}
	return hit, !math.IsInf(best, 1)
}

// RaycastNode returns the distance along ray to the nearest visible,
// interactable primitive in the subtree rooted at root.
func RaycastNode(ray Ray, root *Node) (float64, bool) {
	best := math.Inf(1)
	root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if !n.Interactable || n.Type == NodeTypeContainer {
			return true
		}
		half := n.Geometry.HalfExtents()
		if n.Type != NodeTypeBox {
			half.Z = planeHalfThickness
		}
		inv := invertMat4(n.WorldTransform())
		local := Ray{Origin: inv.TransformPoint(ray.Origin), Dir: inv.TransformDir(ray.Dir)}
		if t, ok := rayBox(local, half); ok && t < best {
			best = t
		}
		return true
	})
	return best, !math.IsInf(best, 1)
}

// rayBox intersects a ray with the origin-centered box of the given half
// extents using the slab method. The ray direction need not be unit
// length; t is in units of that direction, which world-to-local transforms
// preserve.
func rayBox(ray Ray, half Vec3) (float64, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	o := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	d := [3]float64{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}
	h := [3]float64{half.X, half.Y, half.Z}
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < -h[i] || o[i] > h[i] {
				return 0, false
			}
			continue
		}
		t1 := (-h[i] - o[i]) / d[i]
		t2 := (h[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}

// raySurface intersects a ray with a plane anchor's surface. The plane
// passes through the anchor origin with its normal along the anchor's
// local Y.
func raySurface(ray Ray, s Surface, useExtent bool) (float64, bool) {
	n := r3.Unit(s.Transform.Axis(1))
	denom := r3.Dot(n, ray.Dir)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t := r3.Dot(r3.Sub(s.Transform.Translation(), ray.Origin), n) / denom
	if t < 0 {
		return 0, false
	}
	if useExtent {
		local := invertMat4(s.Transform).TransformPoint(ray.At(t))
		if math.Abs(local.X) > s.Extent.Width/2 || math.Abs(local.Z) > s.Extent.Depth/2 {
			return 0, false
		}
	}
	return t, true
}

// headingFromNormal returns the Y rotation that, combined with a -90°
// pitch, turns an object's +Y face normal onto the wall normal n.
func headingFromNormal(n Vec3) float64 {
	return math.Atan2(-n.X, -n.Z)
}
