package geom

import "math"

// Rot3 is a 3x3 rotation matrix stored row-major, following the same
// flat row-major layout used for rigid transforms elsewhere in the
// toolkit.
type Rot3 struct {
	m [9]float64
}

// IdentityRot3 returns the identity rotation.
func IdentityRot3() Rot3 {
	return Rot3{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewRot3 builds a rotation from row-major entries. The caller is
// responsible for supplying an orthonormal matrix.
func NewRot3(r00, r01, r02, r10, r11, r12, r20, r21, r22 float64) Rot3 {
	return Rot3{m: [9]float64{r00, r01, r02, r10, r11, r12, r20, r21, r22}}
}

// At returns the matrix entry at row i, column j.
func (r Rot3) At(i, j int) float64 {
	return r.m[3*i+j]
}

// Row returns row i of the rotation matrix.
func (r Rot3) Row(i int) [3]float64 {
	return [3]float64{r.m[3*i], r.m[3*i+1], r.m[3*i+2]}
}

// Compose returns r * q.
func (r Rot3) Compose(q Rot3) Rot3 {
	var out Rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.m[3*i+j] = r.m[3*i]*q.m[j] + r.m[3*i+1]*q.m[3+j] + r.m[3*i+2]*q.m[6+j]
		}
	}
	return out
}

// Rotate applies the rotation to a point.
func (r Rot3) Rotate(p Point3) Point3 {
	return Point3{
		X: r.m[0]*p.X + r.m[1]*p.Y + r.m[2]*p.Z,
		Y: r.m[3]*p.X + r.m[4]*p.Y + r.m[5]*p.Z,
		Z: r.m[6]*p.X + r.m[7]*p.Y + r.m[8]*p.Z,
	}
}

// Unrotate applies the inverse rotation (transpose) to a point.
func (r Rot3) Unrotate(p Point3) Point3 {
	return Point3{
		X: r.m[0]*p.X + r.m[3]*p.Y + r.m[6]*p.Z,
		Y: r.m[1]*p.X + r.m[4]*p.Y + r.m[7]*p.Z,
		Z: r.m[2]*p.X + r.m[5]*p.Y + r.m[8]*p.Z,
	}
}

// RotExpmap maps an axis-angle vector [wx wy wz] to a rotation via the
// Rodrigues formula.
func RotExpmap(w [3]float64) Rot3 {
	theta := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
	if theta < 1e-10 {
		// First-order approximation I + [w]x for tiny angles.
		return NewRot3(
			1, -w[2], w[1],
			w[2], 1, -w[0],
			-w[1], w[0], 1,
		)
	}
	kx, ky, kz := w[0]/theta, w[1]/theta, w[2]/theta
	s, c := math.Sin(theta), math.Cos(theta)
	v := 1 - c
	return NewRot3(
		c+kx*kx*v, kx*ky*v-kz*s, kx*kz*v+ky*s,
		ky*kx*v+kz*s, c+ky*ky*v, ky*kz*v-kx*s,
		kz*kx*v-ky*s, kz*ky*v+kx*s, c+kz*kz*v,
	)
}

// Pose3 is a spatial rigid pose: rotation plus translation.
type Pose3 struct {
	R Rot3
	T Point3
}

// IdentityPose3 returns the identity pose, the conventional zero sensor
// offset.
func IdentityPose3() Pose3 {
	return Pose3{R: IdentityRot3()}
}

// Rotation returns the rotation component.
func (p Pose3) Rotation() Rot3 { return p.R }

// Translation returns the translation component.
func (p Pose3) Translation() Point3 { return p.T }

// Compose chains two poses: the result maps q's local frame through p.
func (p Pose3) Compose(q Pose3) Pose3 {
	return Pose3{
		R: p.R.Compose(q.R),
		T: p.TransformFrom(q.T),
	}
}

// TransformFrom maps a point expressed in p's local frame into the frame
// p itself is expressed in: R*pt + t.
func (p Pose3) TransformFrom(pt Point3) Point3 {
	r := p.R.Rotate(pt)
	return Point3{X: r.X + p.T.X, Y: r.Y + p.T.Y, Z: r.Z + p.T.Z}
}

// TransformTo maps a point from p's parent frame into p's local frame:
// R^T*(pt - t).
func (p Pose3) TransformTo(pt Point3) Point3 {
	return p.R.Unrotate(pt.Sub(p.T))
}

// Retract applies a 6-dimensional tangent step [wx wy wz vx vy vz]:
// rotation via the SO(3) exponential map, translation in the local
// frame.
func (p Pose3) Retract(d []float64) Pose3 {
	dr := RotExpmap([3]float64{d[0], d[1], d[2]})
	dt := p.R.Rotate(Point3{X: d[3], Y: d[4], Z: d[5]})
	return Pose3{
		R: p.R.Compose(dr),
		T: Point3{X: p.T.X + dt.X, Y: p.T.Y + dt.Y, Z: p.T.Z + dt.Z},
	}
}
