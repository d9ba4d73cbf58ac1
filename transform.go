package birthday

import "github.com/go-gl/mathgl/mgl64"

// Transform is a local position/rotation/scale triple. Animators produce one
// per tick.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// IdentityTransform has zero translation and rotation and unit scale.
var IdentityTransform = Transform{Scale: Vec3{1, 1, 1}}

// Matrix returns T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	if t.Rotation[0] != 0 {
		m = m.Mul4(mgl64.HomogRotate3DX(t.Rotation[0]))
	}
	if t.Rotation[1] != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(t.Rotation[1]))
	}
	if t.Rotation[2] != 0 {
		m = m.Mul4(mgl64.HomogRotate3DZ(t.Rotation[2]))
	}
	return m.Mul4(mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// LocalTransform returns the node's local transform.
func (n *Node) LocalTransform() Transform {
	return Transform{Position: n.Position, Rotation: n.Rotation, Scale: n.Scale}
}

// SetTransform replaces the node's local transform and marks it dirty.
func (n *Node) SetTransform(t Transform) {
	n.Position = t.Position
	n.Rotation = t.Rotation
	n.Scale = t.Scale
	n.transformDirty = true
}

// updateWorldTransform recomputes world matrices for dirty nodes and their
// descendants. parentRecomputed forces recomputation below a changed parent.
func updateWorldTransform(n *Node, parent mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldMatrix = parent.Mul4(n.LocalTransform().Matrix())
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldMatrix, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians) and marks it dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.Rotation = Vec3{x, y, z}
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = Vec3{x, y, z}
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldMatrix returns the world matrix computed by the last update.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	return n.worldMatrix
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return mgl64.TransformCoordinate(p, n.worldMatrix)
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return n.worldMatrix.Col(3).Vec3()
}
