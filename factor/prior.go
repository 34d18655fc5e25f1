package factor

import (
	"fmt"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/noise"
	"github.com/banshee-data/slamkit/values"
)

// PointPrior anchors one Point3 unknown to a known position. It is the
// simplest second factor kind; graphs routinely interleave priors with
// projection factors.
type PointPrior struct {
	Key   key.Key
	Prior geom.Point3
	Noise noise.Model
}

// NewPointPrior builds a prior factor on a Point3 unknown.
func NewPointPrior(k key.Key, prior geom.Point3, model noise.Model) *PointPrior {
	return &PointPrior{Key: k, Prior: prior, Noise: model}
}

// Keys returns the single anchored key.
func (f *PointPrior) Keys() []key.Key {
	return []key.Key{f.Key}
}

// Dim returns the residual dimension, 3 for a spatial point.
func (f *PointPrior) Dim() int { return 3 }

// UnwhitenedError returns estimate - prior.
func (f *PointPrior) UnwhitenedError(v *values.Values) ([]float64, error) {
	p, err := values.At[geom.Point3](v, f.Key)
	if err != nil {
		return nil, fmt.Errorf("point prior: %w", err)
	}
	d := p.Sub(f.Prior)
	return []float64{d.X, d.Y, d.Z}, nil
}
