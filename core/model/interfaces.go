// Package model defines the capability interfaces implemented by fitted-model
// values. The extraction layer depends only on these interfaces, never on a
// concrete model family.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// FamilyTagger is implemented by fitted-model values that carry a model-family
// identity tag. Extractor dispatch is resolved by this tag, not by inspecting
// the concrete type.
type FamilyTagger interface {
	// Family returns a stable identifier for the model family,
	// e.g. "penalized_linear" or "tree_ensemble".
	Family() string
}

// CharacteristicReporter is implemented by fitted models that can report
// scalar structural characteristics, such as the number of active predictors.
// An empty mapping is a legitimate result for families with nothing to report.
//
// Implementations must be pure: no mutation of the model, no shared state, so
// that concurrent extraction across fits needs no synchronization.
type CharacteristicReporter interface {
	Characteristics() map[string]float64
}

// Predictor is implemented by models that can predict on new data.
type Predictor interface {
	// Predict returns predictions for the input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is implemented by models that expose their hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
