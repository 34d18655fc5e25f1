package geom

import "fmt"

// Cal3 is a five-parameter pinhole calibration: focal lengths, skew and
// principal point.
type Cal3 struct {
	Fx, Fy, Skew, U0, V0 float64
}

// Uncalibrate maps normalised image coordinates to pixel coordinates.
func (c Cal3) Uncalibrate(p Point2) Point2 {
	return Point2{
		X: c.Fx*p.X + c.Skew*p.Y + c.U0,
		Y: c.Fy*p.Y + c.V0,
	}
}

// Calibrate maps pixel coordinates back to normalised image coordinates.
// It is the exact inverse of Uncalibrate.
func (c Cal3) Calibrate(p Point2) Point2 {
	y := (p.Y - c.V0) / c.Fy
	x := (p.X - c.U0 - c.Skew*y) / c.Fx
	return Point2{X: x, Y: y}
}

// PinholeCamera is a calibrated camera at a known world pose. The camera
// looks down its local +Z axis.
type PinholeCamera struct {
	Pose Pose3
	Cal  Cal3
}

// Backproject lifts a pixel observation to the world point that projects
// onto it at the given depth along the optical axis. It is total: every
// finite pixel and depth yields a point.
func (c PinholeCamera) Backproject(p Point2, depth float64) Point3 {
	pn := c.Cal.Calibrate(p)
	return c.Pose.TransformFrom(Point3{X: pn.X * depth, Y: pn.Y * depth, Z: depth})
}

// Project maps a world point to pixel coordinates. Points at or behind
// the image plane cannot be projected and return an error.
func (c PinholeCamera) Project(p Point3) (Point2, error) {
	pc := c.Pose.TransformTo(p)
	if pc.Z <= 0 {
		return Point2{}, fmt.Errorf("geom: point at depth %g is behind the camera", pc.Z)
	}
	return c.Cal.Uncalibrate(Point2{X: pc.X / pc.Z, Y: pc.Y / pc.Z}), nil
}
