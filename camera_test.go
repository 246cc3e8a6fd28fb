package easel

import (
	"math"
	"testing"
)

func testCamera() *Camera {
	return NewCamera(Rect{Width: 1080, Height: 1920}, math.Pi/3)
}

func TestNewCameraDefaults(t *testing.T) {
	cam := testCamera()
	assertMatrix(t, "pose", cam.Pose, Identity)
	assertNear(t, "fov", cam.FovY, math.Pi/3)
}

func TestScreenToRayCenter(t *testing.T) {
	cam := testCamera()
	ray := cam.ScreenToRay(Vec2{X: 540, Y: 960})
	assertVec(t, "origin", ray.Origin, Vec3{})
	assertVec(t, "dir", ray.Dir, Vec3{Z: -1})
}

func TestScreenToRayEdges(t *testing.T) {
	cam := testCamera()
	tan := math.Tan(math.Pi / 6)

	// Top edge of the screen is half the vertical field of view up.
	top := cam.ScreenToRay(Vec2{X: 540, Y: 0})
	assertNear(t, "top slope", top.Dir.Y/-top.Dir.Z, tan)

	// Screen Y grows downward.
	bottom := cam.ScreenToRay(Vec2{X: 540, Y: 1920})
	assertNear(t, "bottom slope", bottom.Dir.Y/-bottom.Dir.Z, -tan)

	right := cam.ScreenToRay(Vec2{X: 1080, Y: 960})
	assertNear(t, "right slope", right.Dir.X/-right.Dir.Z, tan*1080/1920)
}

func TestScreenToRayFollowsPose(t *testing.T) {
	cam := testCamera()
	cam.Pose = Translate(Vec3{X: 1, Y: 1.5}).Mul(RotateY(math.Pi / 2))
	ray := cam.ScreenToRay(Vec2{X: 540, Y: 960})
	assertVec(t, "origin", ray.Origin, Vec3{X: 1, Y: 1.5})
	// Turned left a quarter: looking down -X.
	assertVec(t, "dir", ray.Dir, Vec3{X: -1})
}

func TestScreenToRayOffsetViewport(t *testing.T) {
	cam := NewCamera(Rect{X: 100, Y: 50, Width: 200, Height: 200}, math.Pi/2)
	ray := cam.ScreenToRay(Vec2{X: 200, Y: 150})
	assertVec(t, "dir", ray.Dir, Vec3{Z: -1})
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	cam := testCamera()
	cam.Pose = Translate(Vec3{X: 0.2, Y: 1.4, Z: 0.5}).Mul(RotateY(0.3)).Mul(RotateX(-0.2))

	for _, p := range []Vec2{{X: 540, Y: 960}, {X: 10, Y: 20}, {X: 1000, Y: 1800}, {X: 300, Y: 1500}} {
		ray := cam.ScreenToRay(p)
		s, ok := cam.WorldToScreen(ray.At(2.5))
		if !ok {
			t.Fatalf("point in front of the camera reported behind: %v", p)
		}
		if math.Abs(s.X-p.X) > 1e-6 || math.Abs(s.Y-p.Y) > 1e-6 {
			t.Errorf("WorldToScreen(ScreenToRay(%v)) = %v", p, s)
		}
	}
}

func TestWorldToScreenBehind(t *testing.T) {
	cam := testCamera()
	if _, ok := cam.WorldToScreen(Vec3{Z: 1}); ok {
		t.Error("point behind the camera should not project")
	}
	if _, ok := cam.WorldToScreen(Vec3{X: 1}); ok {
		t.Error("point in the camera plane should not project")
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Vec3{X: 1}, Dir: Vec3{Z: -1}}
	assertVec(t, "at", r.At(2), Vec3{X: 1, Z: -2})
}
