package values

import (
	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
)

// LocalToWorld re-expresses entries of local under the given base frame
// and returns them in a fresh store under their original keys. With no
// keys given it walks the whole store in ascending key order; otherwise
// it visits the given keys in input order.
//
// Each entry is interpreted in fixed precedence: a Pose2 is composed
// with base; failing that, a Point2 is transformed from base's frame;
// anything else (including an absent key) is skipped silently.
func LocalToWorld(local *Values, base geom.Pose2, keys ...key.Key) *Values {
	if len(keys) == 0 {
		keys = local.Keys()
	}
	world := New()
	for _, k := range keys {
		raw, ok := local.get(k)
		if !ok {
			continue
		}
		switch val := raw.(type) {
		case geom.Pose2:
			_ = world.Insert(k, base.Compose(val))
		case geom.Point2:
			_ = world.Insert(k, base.TransformFrom(val))
		}
	}
	return world
}
