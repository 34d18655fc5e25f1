package factor

import (
	"fmt"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/noise"
	"github.com/banshee-data/slamkit/values"
)

// ProjectionFactor ties one Pose3 unknown and one Point3 landmark
// through a pixel observation of the landmark by a calibrated camera
// mounted at a fixed offset from the body frame. Factors are immutable
// after construction.
type ProjectionFactor struct {
	Measured     geom.Point2
	Noise        noise.Model
	PoseKey      key.Key
	LandmarkKey  key.Key
	Calibration  geom.Cal3
	SensorOffset geom.Pose3
}

// NewProjectionFactor builds a projection factor. sensorOffset is the
// body-to-sensor pose; pass geom.IdentityPose3() for a camera rigidly at
// the body origin.
func NewProjectionFactor(measured geom.Point2, model noise.Model, poseKey, landmarkKey key.Key, cal geom.Cal3, sensorOffset geom.Pose3) *ProjectionFactor {
	return &ProjectionFactor{
		Measured:     measured,
		Noise:        model,
		PoseKey:      poseKey,
		LandmarkKey:  landmarkKey,
		Calibration:  cal,
		SensorOffset: sensorOffset,
	}
}

// Keys returns the pose key followed by the landmark key.
func (f *ProjectionFactor) Keys() []key.Key {
	return []key.Key{f.PoseKey, f.LandmarkKey}
}

// Dim returns the residual dimension, 2 for a pixel measurement.
func (f *ProjectionFactor) Dim() int { return 2 }

// UnwhitenedError projects the current landmark estimate through the
// camera at the current pose estimate and returns predicted - measured
// in pixels.
func (f *ProjectionFactor) UnwhitenedError(v *values.Values) ([]float64, error) {
	pose, err := values.At[geom.Pose3](v, f.PoseKey)
	if err != nil {
		return nil, fmt.Errorf("projection factor pose: %w", err)
	}
	landmark, err := values.At[geom.Point3](v, f.LandmarkKey)
	if err != nil {
		return nil, fmt.Errorf("projection factor landmark: %w", err)
	}
	camera := geom.PinholeCamera{Pose: pose.Compose(f.SensorOffset), Cal: f.Calibration}
	predicted, err := camera.Project(landmark)
	if err != nil {
		return nil, err
	}
	return []float64{predicted.X - f.Measured.X, predicted.Y - f.Measured.Y}, nil
}
