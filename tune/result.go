package tune

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

// FitResult is one entry of a tuning run: the outcome of fitting one model to
// one resample under one combination. The fitted model is transient; the
// engine may discard it once extraction has run.
type FitResult struct {
	CombinationID string `json:"combination_id"`
	ResampleID    string `json:"resample_id"`

	// Model holds the fitted model while it is still alive. Never serialized.
	Model any `json:"-"`

	Failed        bool   `json:"failed,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// Fail marks the fit as failed. Failed fits contribute no characteristic rows.
func (f *FitResult) Fail(err error) {
	f.Failed = true
	if err != nil {
		f.FailureReason = err.Error()
	}
}

// Extraction is the metadata the hook produces for one fit: the extracted
// characteristics tagged with the fit's identity. Never mutated once created.
type Extraction struct {
	CombinationID string          `json:"combination_id"`
	ResampleID    string          `json:"resample_id"`
	Values        Characteristics `json:"values"`
}

// Empty reports whether the extraction carries no characteristics.
func (e Extraction) Empty() bool { return len(e.Values) == 0 }

// MetricRow is one row of the engine's performance-metric table:
// one (combination, resample, metric name, metric value) entry.
type MetricRow struct {
	CombinationID string  `json:"combination_id"`
	ResampleID    string  `json:"resample_id"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
}

// Result is the boundary type for a completed tuning run. The engine owns the
// fit entries and the metrics table; extractions live in a side table keyed by
// (combination, resample) so this subsystem never rewrites the engine's own
// entries.
type Result struct {
	RunID        string        `json:"run_id"`
	Combinations []Combination `json:"combinations"`
	Resamples    []string      `json:"resamples"`
	Fits         []FitResult   `json:"fits"`
	Extractions  []Extraction  `json:"extractions,omitempty"`
	Metrics      []MetricRow   `json:"metrics,omitempty"`

	mu sync.Mutex
}

// NewResult creates an empty run result for the given grid, with a fresh run id.
func NewResult(combinations []Combination, resamples []string) *Result {
	return &Result{
		RunID:        uuid.NewString(),
		Combinations: combinations,
		Resamples:    resamples,
	}
}

// Attach records one fit's extraction in the side table. Safe for concurrent
// use by engines that fit in parallel; each hook call owns its Extraction
// exclusively, so the append is the only shared step.
func (r *Result) Attach(ex Extraction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Extractions = append(r.Extractions, ex)
}

// AddFit records one fit entry. Safe for concurrent use.
func (r *Result) AddFit(f FitResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Fits = append(r.Fits, f)
}

// AddMetric records one metric row. Safe for concurrent use.
func (r *Result) AddMetric(m MetricRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Metrics = append(r.Metrics, m)
}

// Control configures what a tuning engine records per fit. The engine invokes
// Extract once per fit, immediately after that fit completes and before its
// working objects are discarded, and attaches the returned Extraction to the
// run's Result. A nil Extract disables extraction; affected fits simply
// contribute zero characteristic rows.
type Control struct {
	Extract ExtractFunc

	// SaveModels keeps fitted models on FitResult entries after the run.
	// Off by default: models can be large and extraction has already
	// captured what the tables need.
	SaveModels bool
}

// ReadResult decodes a serialized tuning result from r.
func ReadResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "decoding tuning result")
	}
	return &res, nil
}

// WriteJSON serializes the result to w.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encoding tuning result")
	}
	return nil
}
