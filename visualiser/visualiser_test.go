package visualiser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/values"
)

func TestPlotValuesWritesFile(t *testing.T) {
	v := values.New()
	for i, pose := range []geom.Pose2{
		geom.NewPose2(0, 0, 0),
		geom.NewPose2(1, 0.2, 0.1),
		geom.NewPose2(2, 0.5, 0.2),
	} {
		if err := v.Insert(key.NewSymbol('x', uint64(i)).Key(), pose); err != nil {
			t.Fatal(err)
		}
	}
	if err := v.Insert(key.NewSymbol('l', 0).Key(), geom.Point2{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := v.Insert(key.NewSymbol('m', 0).Key(), geom.Point3{X: 2, Y: -1, Z: 3}); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "values.png")
	if err := PlotValues(v, "test", out); err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestPlotValuesEmptyStore(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.png")
	if err := PlotValues(values.New(), "empty", out); err != nil {
		t.Fatalf("plotting an empty store should succeed: %v", err)
	}
}
