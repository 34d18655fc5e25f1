package geom

import "math"

// Pose2 is a planar rigid pose [x y theta]. Theta is kept in (-pi, pi].
type Pose2 struct {
	X, Y, Theta float64
}

// NewPose2 builds a pose with the heading normalised into (-pi, pi].
func NewPose2(x, y, theta float64) Pose2 {
	return Pose2{X: x, Y: y, Theta: wrapAngle(theta)}
}

// Compose chains two poses: the result maps q's local frame through p.
func (p Pose2) Compose(q Pose2) Pose2 {
	c, s := math.Cos(p.Theta), math.Sin(p.Theta)
	return Pose2{
		X:     p.X + c*q.X - s*q.Y,
		Y:     p.Y + s*q.X + c*q.Y,
		Theta: wrapAngle(p.Theta + q.Theta),
	}
}

// TransformFrom maps a point expressed in p's local frame into the frame
// p itself is expressed in.
func (p Pose2) TransformFrom(pt Point2) Point2 {
	c, s := math.Cos(p.Theta), math.Sin(p.Theta)
	return Point2{
		X: p.X + c*pt.X - s*pt.Y,
		Y: p.Y + s*pt.X + c*pt.Y,
	}
}

// Retract applies a tangent step [dx dy dtheta] via the SE(2) exponential
// map composed onto p.
func (p Pose2) Retract(d []float64) Pose2 {
	return p.Compose(expmapSE2(d[0], d[1], d[2]))
}

// expmapSE2 maps a twist [vx vy w] to a pose. For small rotations it
// degenerates to a straight translation.
func expmapSE2(vx, vy, w float64) Pose2 {
	if math.Abs(w) < 1e-10 {
		return Pose2{X: vx, Y: vy, Theta: w}
	}
	s, c := math.Sin(w), math.Cos(w)
	return Pose2{
		X:     (s*vx - (1-c)*vy) / w,
		Y:     ((1-c)*vx + s*vy) / w,
		Theta: wrapAngle(w),
	}
}

// wrapAngle normalises an angle into (-pi, pi].
func wrapAngle(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
