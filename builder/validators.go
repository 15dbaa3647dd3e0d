// Package builder: parameter validators shared by the constructors.
package builder

import "fmt"

const (
	minProbability = 0.0
	maxProbability = 1.0
)

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < minProbability || p > maxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}
