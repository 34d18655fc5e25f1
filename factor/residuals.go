package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/slamkit/values"
)

// ReprojectionErrors collects the unwhitened residuals of every
// projection factor in g, evaluated against v, as the columns of a 2xK
// matrix. K is counted in a first pass; a second pass fills columns in
// graph order, skipping other factor kinds in both passes. A graph with
// no projection factors yields an empty matrix.
func ReprojectionErrors(g *Graph, v *values.Values) (*mat.Dense, error) {
	n := 0
	for _, f := range g.factors {
		if _, ok := f.(*ProjectionFactor); ok {
			n++
		}
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(2, n, nil)
	col := 0
	for _, f := range g.factors {
		pf, ok := f.(*ProjectionFactor)
		if !ok {
			continue
		}
		e, err := pf.UnwhitenedError(v)
		if err != nil {
			return nil, err
		}
		out.Set(0, col, e[0])
		out.Set(1, col, e[1])
		col++
	}
	return out, nil
}
