package easel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ray is a half-line in world space.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// Camera is a pinhole camera used to turn screen points into world rays.
// The camera looks down its local -Z axis with +Y up.
type Camera struct {
	// Pose is the camera-to-world transform, refreshed from
	// EventCameraMoved.
	Pose Mat4
	// FovY is the vertical field of view in radians.
	FovY float64
	// Viewport is the screen-space rectangle the camera image fills.
	Viewport Rect
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(viewport Rect, fovY float64) *Camera {
	return &Camera{Pose: Identity, FovY: fovY, Viewport: viewport}
}

// ScreenToRay returns the world ray through screen point p.
func (c *Camera) ScreenToRay(p Vec2) Ray {
	vp := c.Viewport
	ndcX := (p.X-vp.X)/vp.Width*2 - 1
	ndcY := 1 - (p.Y-vp.Y)/vp.Height*2
	tanHalf := math.Tan(c.FovY / 2)
	aspect := vp.Width / vp.Height

	dir := Vec3{X: ndcX * tanHalf * aspect, Y: ndcY * tanHalf, Z: -1}
	return Ray{
		Origin: c.Pose.Translation(),
		Dir:    r3.Unit(c.Pose.TransformDir(dir)),
	}
}

// WorldToScreen projects a world point. ok is false for points behind the
// camera.
func (c *Camera) WorldToScreen(p Vec3) (s Vec2, ok bool) {
	pc := invertMat4(c.Pose).TransformPoint(p)
	if pc.Z >= 0 {
		return Vec2{}, false
	}
	vp := c.Viewport
	tanHalf := math.Tan(c.FovY / 2)
	aspect := vp.Width / vp.Height
	ndcX := (pc.X / -pc.Z) / (tanHalf * aspect)
	ndcY := (pc.Y / -pc.Z) / tanHalf
	return Vec2{
		X: vp.X + (ndcX+1)/2*vp.Width,
		Y: vp.Y + (1-ndcY)/2*vp.Height,
	}, true
}
