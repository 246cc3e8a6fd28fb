package easel

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mat4 is a 4x4 row-major transform matrix. Element (row r, column c) is
// stored at index r*4+c. Points are column vectors: p' = M * p.
//
//	| 0  1  2  3 |
//	| 4  5  6  7 |
//	| 8  9 10 11 |
//	|12 13 14 15 |
type Mat4 [16]float64

// Identity is the identity transform.
var Identity = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translate returns a pure translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity
	m[3], m[7], m[11] = v.X, v.Y, v.Z
	return m
}

// RotateX returns a rotation of theta radians about the X axis.
func RotateX(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation of theta radians about the Y axis.
func RotateY(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation of theta radians about the Z axis.
func RotateZ(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns a non-uniform scale matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	return multiplyMat4(m, o)
}

// Translation returns the translation column of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[3], Y: m[7], Z: m[11]}
}

// Axis returns column i (0=X, 1=Y, 2=Z) of the rotation/scale block.
func (m Mat4) Axis(i int) Vec3 {
	return Vec3{X: m[i], Y: m[4+i], Z: m[8+i]}
}

// TransformPoint applies m to a point (w = 1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// TransformDir applies the linear part of m to a direction (w = 0).
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[1]*d.Y + m[2]*d.Z,
		Y: m[4]*d.X + m[5]*d.Y + m[6]*d.Z,
		Z: m[8]*d.X + m[9]*d.Y + m[10]*d.Z,
	}
}

// Inverse returns the inverse of m, or Identity if m is singular.
func (m Mat4) Inverse() Mat4 {
	return invertMat4(m)
}

// multiplyMat4 multiplies two 4x4 matrices: result = p * c.
func multiplyMat4(p, c Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			out[r*4+col] = p[r*4]*c[col] +
				p[r*4+1]*c[4+col] +
				p[r*4+2]*c[8+col] +
				p[r*4+3]*c[12+col]
		}
	}
	return out
}

// invertMat4 computes the inverse through gonum's LU-based Inverse.
// Returns the identity matrix if the matrix is singular or ill-conditioned.
func invertMat4(m Mat4) Mat4 {
	src := mat.NewDense(4, 4, m[:])
	var inv mat.Dense
	if err := inv.Inverse(src); err != nil {
		return Identity
	}
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = inv.At(r, c)
		}
	}
	return out
}

// eulerMat4 builds the rotation Ry(e.Y) * Rx(e.X) * Rz(e.Z).
// Y is applied outermost so that yaw never disturbs the pitch correction.
func eulerMat4(e Vec3) Mat4 {
	return multiplyMat4(multiplyMat4(RotateY(e.Y), RotateX(e.X)), RotateZ(e.Z))
}

// eulerFromMat4 decomposes the rotation block of a rigid transform into
// the Y-X-Z angles used by eulerMat4. Scale is divided out per column.
func eulerFromMat4(m Mat4) Vec3 {
	sx := r3.Norm(m.Axis(0))
	sy := r3.Norm(m.Axis(1))
	sz := r3.Norm(m.Axis(2))
	if sx == 0 || sy == 0 || sz == 0 {
		return Vec3{}
	}
	m02, m10, m11 := m[2]/sz, m[4]/sx, m[5]/sy
	m12, m22 := m[6]/sz, m[10]/sz

	x := math.Asin(clamp(-m12, -1, 1))
	if math.Abs(m12) < 1-1e-9 {
		return Vec3{X: x, Y: math.Atan2(m02, m22), Z: math.Atan2(m10, m11)}
	}
	// Gimbal lock: fold Z into Y.
	m00, m20 := m[0]/sx, m[8]/sx
	return Vec3{X: x, Y: math.Atan2(-m20, m00), Z: 0}
}

// composeTRS computes T(position) * R(euler) * S(scale).
func composeTRS(position, euler, scale Vec3) Mat4 {
	m := eulerMat4(euler)
	for r := 0; r < 3; r++ {
		m[r*4] *= scale.X
		m[r*4+1] *= scale.Y
		m[r*4+2] *= scale.Z
	}
	m[3], m[7], m[11] = position.X, position.Y, position.Z
	return m
}

// computeLocalTransform computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> RotateZ -> RotateX -> RotateY -> Translate(Position)
func computeLocalTransform(n *Node) Mat4 {
	return composeTRS(n.Position, n.Euler, n.Scale)
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this pass,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform Mat4, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyMat4(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(p Vec3) {
	n.Position = p
	n.transformDirty = true
}

// SetEuler sets the node's rotation angles (radians) and marks it dirty.
func (n *Node) SetEuler(e Vec3) {
	n.Euler = e
	n.transformDirty = true
}

// SetYaw sets the rotation about the node's local Y axis and marks it dirty.
func (n *Node) SetYaw(yaw float64) {
	n.Euler.Y = yaw
	n.transformDirty = true
}

// SetScale sets the node's per-axis scale and marks it dirty.
func (n *Node) SetScale(s Vec3) {
	n.Scale = s
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next refresh. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// LocalTransform returns the node's local matrix.
func (n *Node) LocalTransform() Mat4 {
	return computeLocalTransform(n)
}

// WorldTransform composes the local matrices from the root down to n.
// It does not rely on the cached world transform, so it is exact even
// between refreshes.
func (n *Node) WorldTransform() Mat4 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyMat4(computeLocalTransform(p), m)
	}
	return m
}

// WorldToLocal converts a world-space point to this node's local space.
func (n *Node) WorldToLocal(p Vec3) Vec3 {
	return invertMat4(n.WorldTransform()).TransformPoint(p)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return n.WorldTransform().TransformPoint(p)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
