// Package noise provides tangent-space Gaussian noise models and a
// seeded sampler for drawing reproducible perturbations from them.
package noise

// Model is a zero-mean Gaussian over a fixed-dimension tangent vector
// with independent axes. Isotropic models share one standard deviation
// across all axes; diagonal models carry one per axis.
type Model struct {
	sigmas []float64
}

// Isotropic builds a dim-dimensional model with the same standard
// deviation on every axis.
func Isotropic(dim int, sigma float64) Model {
	sigmas := make([]float64, dim)
	for i := range sigmas {
		sigmas[i] = sigma
	}
	return Model{sigmas: sigmas}
}

// Diagonal builds a model with one standard deviation per axis.
func Diagonal(sigmas ...float64) Model {
	out := make([]float64, len(sigmas))
	copy(out, sigmas)
	return Model{sigmas: out}
}

// Dim returns the tangent-space dimension of the model.
func (m Model) Dim() int {
	return len(m.sigmas)
}

// Sigmas returns a copy of the per-axis standard deviations.
func (m Model) Sigmas() []float64 {
	out := make([]float64, len(m.sigmas))
	copy(out, m.sigmas)
	return out
}
