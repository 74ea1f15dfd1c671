package nebula

import "math"

// Affine 3D matrices are stored row-major as 3x4:
//
//	| m0 m1  m2  m3  |
//	| m4 m5  m6  m7  |
//	| m8 m9  m10 m11 |
//
// with an implicit bottom row of (0, 0, 0, 1).

// identityTransform is the identity affine matrix.
var identityTransform = [12]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// eulerMatrix returns the rotation for Euler angles applied in XYZ order,
// i.e. Rx * Ry * Rz, matching three.js' default rotation order.
func eulerMatrix(r Vec3) [12]float64 {
	sx, cx := math.Sincos(r.X)
	sy, cy := math.Sincos(r.Y)
	sz, cz := math.Sincos(r.Z)

	ae, af := cx*cz, cx*sz
	be, bf := sx*cz, sx*sz

	return [12]float64{
		cy * cz, -cy * sz, sy, 0,
		af + be*sy, ae - bf*sy, -sx * cy, 0,
		bf - ae*sy, be + af*sy, cx * cy, 0,
	}
}

// computeLocalTransform composes Translate(Position) * Rotate(Rotation) * Scale.
func computeLocalTransform(n *Node) [12]float64 {
	m := eulerMatrix(n.Rotation)
	s := n.Scale
	for row := 0; row < 3; row++ {
		m[row*4] *= s
		m[row*4+1] *= s
		m[row*4+2] *= s
	}
	m[3] = n.Position.X
	m[7] = n.Position.Y
	m[11] = n.Position.Z
	return m
}

// multiplyAffine3 multiplies two affine matrices: result = p * c.
func multiplyAffine3(p, c [12]float64) [12]float64 {
	var out [12]float64
	for row := 0; row < 3; row++ {
		r0, r1, r2 := p[row*4], p[row*4+1], p[row*4+2]
		out[row*4] = r0*c[0] + r1*c[4] + r2*c[8]
		out[row*4+1] = r0*c[1] + r1*c[5] + r2*c[9]
		out[row*4+2] = r0*c[2] + r1*c[6] + r2*c[10]
		out[row*4+3] = r0*c[3] + r1*c[7] + r2*c[11] + p[row*4+3]
	}
	return out
}

// transformPoint3 applies an affine matrix to a point.
func transformPoint3(m [12]float64, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// updateWorldTransform recomputes a node's world matrix and accumulated scale.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parent [12]float64, parentScale float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine3(parent, computeLocalTransform(n))
		n.worldScale = parentScale * n.Scale
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldScale, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(p Vec3) {
	n.Position = p
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians) and marks it dirty.
func (n *Node) SetRotation(r Vec3) {
	n.Rotation = r
	n.transformDirty = true
}

// SetScale sets the node's uniform scale and marks it dirty.
func (n *Node) SetScale(s float64) {
	n.Scale = s
	n.transformDirty = true
}

// MarkDirty forces recomputation of the world transform on the next frame.
// Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldPosition returns the node's origin in world space as of the last
// update walk.
func (n *Node) WorldPosition() Vec3 {
	return Vec3{n.worldTransform[3], n.worldTransform[7], n.worldTransform[11]}
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return transformPoint3(n.worldTransform, p)
}
