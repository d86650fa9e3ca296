package tune

import (
	"fmt"
	"math"
)

// Shared fixture: 3 combinations × 5 resamples, each successful fit reporting
// num_active_features, with one rmse metric row per fit. The fit at
// (combo-02, boot-04) fails: no extraction, NaN metric.
const (
	scenarioCombos    = 3
	scenarioResamples = 5
)

func scenarioComboID(i int) string    { return fmt.Sprintf("combo-%02d", i+1) }
func scenarioResampleID(j int) string { return fmt.Sprintf("boot-%02d", j+1) }

func scenarioFailed(i, j int) bool { return i == 1 && j == 3 }

// scenarioActive is the per-fit num_active_features value.
func scenarioActive(i, j int) float64 { return float64(10 - 2*i - j%2) }

// scenarioRMSE is the per-fit rmse value.
func scenarioRMSE(i, j int) float64 { return 1.0 + 0.1*float64(i) + 0.01*float64(j) }

func buildScenarioResult() *Result {
	combos := make([]Combination, scenarioCombos)
	for i := range combos {
		combos[i] = Combination{
			ID:     scenarioComboID(i),
			Params: map[string]any{"penalty": math.Pow(10, float64(i-2))},
		}
	}
	resamples := make([]string, scenarioResamples)
	for j := range resamples {
		resamples[j] = scenarioResampleID(j)
	}

	res := NewResult(combos, resamples)
	for i := 0; i < scenarioCombos; i++ {
		for j := 0; j < scenarioResamples; j++ {
			fit := FitResult{
				CombinationID: scenarioComboID(i),
				ResampleID:    scenarioResampleID(j),
			}
			metric := MetricRow{
				CombinationID: scenarioComboID(i),
				ResampleID:    scenarioResampleID(j),
				Metric:        "rmse",
				Value:         scenarioRMSE(i, j),
			}
			if scenarioFailed(i, j) {
				fit.Fail(fmt.Errorf("optimizer diverged"))
				metric.Value = math.NaN()
			} else {
				res.Attach(Extraction{
					CombinationID: fit.CombinationID,
					ResampleID:    fit.ResampleID,
					Values:        Characteristics{"num_active_features": scenarioActive(i, j)},
				})
			}
			res.AddFit(fit)
			res.AddMetric(metric)
		}
	}
	return res
}

// scenarioMeanActive is the expected per-combination mean of
// num_active_features over surviving resamples.
func scenarioMeanActive(i int) float64 {
	sum, n := 0.0, 0
	for j := 0; j < scenarioResamples; j++ {
		if scenarioFailed(i, j) {
			continue
		}
		sum += scenarioActive(i, j)
		n++
	}
	return sum / float64(n)
}

// scenarioMeanRMSE is the expected per-combination mean rmse over surviving
// resamples.
func scenarioMeanRMSE(i int) float64 {
	sum, n := 0.0, 0
	for j := 0; j < scenarioResamples; j++ {
		if scenarioFailed(i, j) {
			continue
		}
		sum += scenarioRMSE(i, j)
		n++
	}
	return sum / float64(n)
}
