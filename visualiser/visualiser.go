// Package visualiser renders estimation-state stores to image files:
// the Pose2 trajectory as a connected line, planar and spatial
// landmarks as scatters (spatial ones top-down).
package visualiser

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/values"
)

// PlotValues draws the Pose2 trajectory and Point2/Point3 landmarks of
// v and saves the plot to path (format from the file extension). An
// empty store still produces a valid, empty plot.
func PlotValues(v *values.Values, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Add(plotter.NewGrid())

	poses := values.Filter[geom.Pose2](v)
	if len(poses) > 0 {
		pts := make(plotter.XYs, 0, len(poses))
		for _, kv := range poses {
			pts = append(pts, plotter.XY{X: kv.Value.X, Y: kv.Value.Y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("trajectory line: %v", err)
		}
		line.Width = vg.Points(1)
		line.Color = color.RGBA{B: 255, A: 255}
		p.Add(line)
		p.Legend.Add("trajectory", line)
	}

	if err := addScatter(p, pointXYs2(v), "landmarks", color.RGBA{R: 220, A: 255}); err != nil {
		return err
	}
	if err := addScatter(p, pointXYs3(v), "landmarks (3d, top-down)", color.RGBA{G: 160, A: 255}); err != nil {
		return err
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %v", err)
	}
	return nil
}

func pointXYs2(v *values.Values) plotter.XYs {
	points := values.Filter[geom.Point2](v)
	pts := make(plotter.XYs, 0, len(points))
	for _, kv := range points {
		pts = append(pts, plotter.XY{X: kv.Value.X, Y: kv.Value.Y})
	}
	return pts
}

func pointXYs3(v *values.Values) plotter.XYs {
	points := values.Filter[geom.Point3](v)
	pts := make(plotter.XYs, 0, len(points))
	for _, kv := range points {
		pts = append(pts, plotter.XY{X: kv.Value.X, Y: kv.Value.Y})
	}
	return pts
}

func addScatter(p *plot.Plot, pts plotter.XYs, label string, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("%s scatter: %v", label, err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)
	p.Legend.Add(label, s)
	return nil
}
