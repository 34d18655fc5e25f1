package values

import (
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/slamkit/geom"
)

// The extractors convert one type-filtered view of a store into a dense
// matrix with one row per entry, rows in ascending key order. A store
// with no matching entries yields an empty matrix (gonum cannot allocate
// a 0xN Dense, so the empty Dense stands in for the zero-row case).

// ExtractPoint2 returns all Point2 values as an Nx2 matrix [x y].
func ExtractPoint2(v *Values) *mat.Dense {
	points := Filter[geom.Point2](v)
	if len(points) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(points), 2, nil)
	for i, kv := range points {
		out.SetRow(i, []float64{kv.Value.X, kv.Value.Y})
	}
	return out
}

// ExtractPoint3 returns all Point3 values as an Nx3 matrix [x y z].
func ExtractPoint3(v *Values) *mat.Dense {
	points := Filter[geom.Point3](v)
	if len(points) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(points), 3, nil)
	for i, kv := range points {
		out.SetRow(i, []float64{kv.Value.X, kv.Value.Y, kv.Value.Z})
	}
	return out
}

// ExtractPose2 returns all Pose2 values as an Nx3 matrix [x y theta].
func ExtractPose2(v *Values) *mat.Dense {
	poses := Filter[geom.Pose2](v)
	if len(poses) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(poses), 3, nil)
	for i, kv := range poses {
		out.SetRow(i, []float64{kv.Value.X, kv.Value.Y, kv.Value.Theta})
	}
	return out
}

// ExtractPose3 returns all Pose3 values as an Nx12 matrix: the flattened
// row-major rotation [r11..r33] followed by the translation [x y z].
func ExtractPose3(v *Values) *mat.Dense {
	poses := Filter[geom.Pose3](v)
	if len(poses) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(poses), 12, nil)
	for i, kv := range poses {
		row := make([]float64, 0, 12)
		r := kv.Value.Rotation()
		for j := 0; j < 3; j++ {
			rj := r.Row(j)
			row = append(row, rj[0], rj[1], rj[2])
		}
		t := kv.Value.Translation()
		row = append(row, t.X, t.Y, t.Z)
		out.SetRow(i, row)
	}
	return out
}

// AllPose3s returns a new store holding only the Pose3 entries of v,
// under their original keys.
func AllPose3s(v *Values) *Values {
	out := New()
	for _, kv := range Filter[geom.Pose3](v) {
		// Keys come from a filtered view of a valid store, so insertion
		// into a fresh store cannot fail.
		_ = out.Insert(kv.Key, kv.Value)
	}
	return out
}
