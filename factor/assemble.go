package factor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/noise"
	"github.com/banshee-data/slamkit/values"
)

// checkPixels validates the 2xK pixel-measurement layout against its
// paired key list. Shape errors are reported before anything mutates.
func checkPixels(pixels mat.Matrix, keys []key.Key) error {
	r, c := pixels.Dims()
	if r != 2 {
		return fmt.Errorf("%w: pixels must be 2xK, got %dx%d", ErrShape, r, c)
	}
	if c != len(keys) {
		return fmt.Errorf("%w: %d pixel columns paired with %d keys", ErrShape, c, len(keys))
	}
	return nil
}

// InsertBackprojections seeds landmark estimates: for each column k of
// the 2xK pixel matrix, the pixel is backprojected through camera at the
// fixed depth and the resulting Point3 is inserted into v under keys[k].
//
// Backprojection itself is total, so after shape validation the only
// mid-loop failure is inserting over an existing key; in that case
// earlier insertions are left in place.
func InsertBackprojections(v *values.Values, camera geom.PinholeCamera, keys []key.Key, pixels mat.Matrix, depth float64) error {
	if err := checkPixels(pixels, keys); err != nil {
		return err
	}
	_, cols := pixels.Dims()
	for k := 0; k < cols; k++ {
		p := geom.Point2{X: pixels.At(0, k), Y: pixels.At(1, k)}
		if err := v.Insert(keys[k], camera.Backproject(p, depth)); err != nil {
			return err
		}
	}
	return nil
}

// InsertProjectionFactors appends one projection factor per column of
// the 2xK pixel matrix, all sharing the same pose key and each bound to
// the landmark key of its column. Factors are appended in column order.
func InsertProjectionFactors(g *Graph, poseKey key.Key, landmarkKeys []key.Key, pixels mat.Matrix, model noise.Model, cal geom.Cal3, sensorOffset geom.Pose3) error {
	if err := checkPixels(pixels, landmarkKeys); err != nil {
		return err
	}
	_, cols := pixels.Dims()
	for k := 0; k < cols; k++ {
		measured := geom.Point2{X: pixels.At(0, k), Y: pixels.At(1, k)}
		g.Add(NewProjectionFactor(measured, model, poseKey, landmarkKeys[k], cal, sensorOffset))
	}
	return nil
}
