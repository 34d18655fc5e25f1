// Package geom provides the planar and spatial geometric types consumed
// by the values store and factor graph: points, rigid poses, rotations
// and a calibrated pinhole camera.
//
// Every type carries a Retract method, the manifold update that applies
// a small tangent-space step and yields a new value of the same type.
// For points the tangent space is the plane/space itself, so Retract is
// plain vector addition.
package geom

// Point2 is a planar point [x y].
type Point2 struct {
	X, Y float64
}

// Retract applies a 2-dimensional tangent step by addition.
func (p Point2) Retract(d []float64) Point2 {
	return Point2{X: p.X + d[0], Y: p.Y + d[1]}
}

// Point3 is a spatial point [x y z].
type Point3 struct {
	X, Y, Z float64
}

// Retract applies a 3-dimensional tangent step by addition.
func (p Point3) Retract(d []float64) Point3 {
	return Point3{X: p.X + d[0], Y: p.Y + d[1], Z: p.Z + d[2]}
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}
