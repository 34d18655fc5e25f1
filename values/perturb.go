package values

import (
	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/noise"
)

// The perturbers replace every value of one type with its retraction by
// a fresh noise draw. Draws are consumed strictly in ascending key
// order with no interleaving, so a fixed seed and key set determine the
// output store bit-for-bit.

// PerturbPoint2 perturbs all Point2 values with isotropic Gaussian noise
// of standard deviation sigma.
func PerturbPoint2(v *Values, sigma float64, seed uint64) error {
	sampler := noise.NewSampler(noise.Isotropic(2, sigma), seed)
	for _, kv := range Filter[geom.Point2](v) {
		if err := v.Update(kv.Key, kv.Value.Retract(sampler.Sample())); err != nil {
			return err
		}
	}
	return nil
}

// PerturbPose2 perturbs all Pose2 values with diagonal Gaussian noise:
// sigmaT on both translation axes, sigmaR on the heading.
func PerturbPose2(v *Values, sigmaT, sigmaR float64, seed uint64) error {
	sampler := noise.NewSampler(noise.Diagonal(sigmaT, sigmaT, sigmaR), seed)
	for _, kv := range Filter[geom.Pose2](v) {
		if err := v.Update(kv.Key, kv.Value.Retract(sampler.Sample())); err != nil {
			return err
		}
	}
	return nil
}

// PerturbPoint3 perturbs all Point3 values with isotropic Gaussian noise
// of standard deviation sigma.
func PerturbPoint3(v *Values, sigma float64, seed uint64) error {
	sampler := noise.NewSampler(noise.Isotropic(3, sigma), seed)
	for _, kv := range Filter[geom.Point3](v) {
		if err := v.Update(kv.Key, kv.Value.Retract(sampler.Sample())); err != nil {
			return err
		}
	}
	return nil
}
