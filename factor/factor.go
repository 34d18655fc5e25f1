// Package factor provides the measurement-factor graph: an ordered
// collection of heterogeneous factors, projection and prior factor
// kinds, batch assembly from pixel-measurement matrices, and residual
// collection.
package factor

import (
	"errors"

	"github.com/banshee-data/slamkit/key"
	"github.com/banshee-data/slamkit/values"
)

// ErrShape is returned when a pixel-measurement matrix does not match
// the 2xK layout paired with its key list.
var ErrShape = errors.New("factor: measurement matrix shape mismatch")

// Factor is one measurement binding a set of unknowns. A factor can
// evaluate its unwhitened residual, the raw discrepancy between
// predicted and observed measurement, against a values store.
type Factor interface {
	Keys() []key.Key
	Dim() int
	UnwhitenedError(v *values.Values) ([]float64, error)
}

// Graph is an ordered, appendable factor collection. Iteration order is
// insertion order; residual collection preserves it.
type Graph struct {
	factors []Factor
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a factor.
func (g *Graph) Add(f Factor) {
	g.factors = append(g.factors, f)
}

// Len returns the number of factors.
func (g *Graph) Len() int {
	return len(g.factors)
}

// At returns the i-th factor in insertion order.
func (g *Graph) At(i int) Factor {
	return g.factors[i]
}
