// Package tune implements characteristic extraction for hyperparameter tuning
// runs: a per-fit extraction hook, a post-hoc collector assembling a tidy
// long-form table, an optional metric joiner, and an optional wide-form
// reshaper.
//
// The tuning engine itself lives elsewhere. This package consumes its result
// structure (Result) and exposes the hook it invokes once per fit.
package tune

// Combination is one assignment of values to a model's tunable configuration
// settings. Many fits share one combination, one per resample. The engine
// generates combinations before tuning starts; they are never mutated here.
type Combination struct {
	ID     string         `json:"id"`
	Params map[string]any `json:"params,omitempty"`
}

// FitContext identifies the fit an extraction hook invocation belongs to.
type FitContext struct {
	CombinationID string
	ResampleID    string
}

// fitKey indexes side-table entries and fit entries by identity.
type fitKey struct {
	combination string
	resample    string
}
