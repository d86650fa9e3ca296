// Package linear provides the fitted-state representation of the penalized
// linear model family and its characteristic definitions. Training is the
// fitting layer's concern; this package only represents and inspects the
// result of a fit.
package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

// Family is the identity tag of the penalized linear model family.
const Family = "penalized_linear"

// CoefZeroTol is the zero tolerance below which a fitted coefficient is
// treated as inactive. Fixed for the family: an "active predictor" is one
// whose coefficient magnitude exceeds this threshold, so active counts are
// exact integers with no rounding ambiguity.
const CoefZeroTol = 1e-10

// Characteristic names reported by this family.
const (
	CharNumActiveFeatures = "num_active_features"
	CharNumFeatures       = "num_features"
)

// PenalizedRegression is the fitted state of a penalized linear regression
// (lasso / elastic net style). Values are immutable after construction.
type PenalizedRegression struct {
	coef      []float64
	intercept float64
	penalty   float64
	l1Ratio   float64
}

// NewPenalizedRegression wraps the output of a penalized linear fit.
// The coefficient slice is copied; penalty is the regularization strength
// and l1Ratio the L1 share in [0, 1] (1 = pure lasso).
func NewPenalizedRegression(coef []float64, intercept, penalty, l1Ratio float64) *PenalizedRegression {
	c := make([]float64, len(coef))
	copy(c, coef)
	return &PenalizedRegression{
		coef:      c,
		intercept: intercept,
		penalty:   penalty,
		l1Ratio:   l1Ratio,
	}
}

// Family returns the model-family identity tag.
func (m *PenalizedRegression) Family() string { return Family }

// Coef returns a copy of the fitted coefficients.
func (m *PenalizedRegression) Coef() []float64 {
	c := make([]float64, len(m.coef))
	copy(c, m.coef)
	return c
}

// Intercept returns the fitted intercept.
func (m *PenalizedRegression) Intercept() float64 { return m.intercept }

// Penalty returns the regularization strength the model was fit with.
func (m *PenalizedRegression) Penalty() float64 { return m.penalty }

// NumActive returns the number of active predictors: coefficients whose
// magnitude exceeds CoefZeroTol.
func (m *PenalizedRegression) NumActive() int {
	n := 0
	for _, w := range m.coef {
		if math.Abs(w) > CoefZeroTol {
			n++
		}
	}
	return n
}

// Characteristics reports the structural summary of the fit.
func (m *PenalizedRegression) Characteristics() map[string]float64 {
	return map[string]float64{
		CharNumActiveFeatures: float64(m.NumActive()),
		CharNumFeatures:       float64(len(m.coef)),
	}
}

// GetParams returns the model's hyperparameters.
func (m *PenalizedRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"penalty":  m.penalty,
		"l1_ratio": m.l1Ratio,
	}
}

// Predict computes X·coef + intercept for each row of X.
func (m *PenalizedRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, cols := X.Dims()
	if cols != len(m.coef) {
		return nil, errors.NewDimensionError("Predict", len(m.coef), cols, 1)
	}
	if rows == 0 {
		return nil, errors.NewValueError("Predict", "empty input matrix")
	}

	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		sum := m.intercept
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * m.coef[j]
		}
		out.Set(i, 0, sum)
	}
	return out, nil
}
