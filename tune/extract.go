package tune

import (
	"sort"

	"github.com/YuminosukeSato/tunex/core/model"
	"github.com/YuminosukeSato/tunex/linear"
	"github.com/YuminosukeSato/tunex/pkg/errors"
	"github.com/YuminosukeSato/tunex/tree"
)

// Characteristics maps characteristic name to its scalar value for one fit.
// An empty mapping is a legitimate result: the family has nothing to report.
type Characteristics map[string]float64

// Extractor produces the characteristics of one fitted model. Extractors must
// be pure: no mutation of the model, no shared state, so the engine may run
// them concurrently across fits.
type Extractor func(fitted any) Characteristics

// ExtractFunc is the per-fit hook signature the tuning engine invokes through
// Control.Extract. Implementations must not retain the fitted model beyond
// their return; the engine may free it immediately afterwards.
type ExtractFunc func(fitted any, ctx FitContext) Extraction

// ExtractorRegistry resolves the extractor for a fitted model by its
// family-identity tag. Families with no registered extractor, and models that
// carry no tag at all, yield an empty Characteristics mapping rather than an
// error, so one unsupported family never aborts a tuning run.
type ExtractorRegistry struct {
	byFamily map[string]Extractor
}

// NewExtractorRegistry creates an empty registry.
func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{byFamily: make(map[string]Extractor)}
}

// DefaultRegistry returns a registry with the built-in families registered:
// penalized linear and tree ensemble, both extracted through their
// CharacteristicReporter implementation.
func DefaultRegistry() *ExtractorRegistry {
	r := NewExtractorRegistry()
	r.Register(linear.Family, FromReporter)
	r.Register(tree.Family, FromReporter)
	return r
}

// Register installs the extractor for a model family, replacing any previous
// registration. Register before tuning starts; the registry is read-only
// while fits run.
func (r *ExtractorRegistry) Register(family string, ex Extractor) {
	r.byFamily[family] = ex
}

// Families returns the registered family tags in sorted order.
func (r *ExtractorRegistry) Families() []string {
	families := make([]string, 0, len(r.byFamily))
	for f := range r.byFamily {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// Extract resolves and runs the extractor for one fitted model. The result is
// a fresh mapping owned by the caller.
func (r *ExtractorRegistry) Extract(fitted any) Characteristics {
	tagger, ok := fitted.(model.FamilyTagger)
	if !ok {
		errors.Warn(errors.NewUnsupportedFamilyWarning("<untagged>"))
		return Characteristics{}
	}

	ex, ok := r.byFamily[tagger.Family()]
	if !ok {
		errors.Warn(errors.NewUnsupportedFamilyWarning(tagger.Family()))
		return Characteristics{}
	}

	values := ex(fitted)
	if values == nil {
		return Characteristics{}
	}
	return values
}

// Hook returns the per-fit callback to register on Control.Extract. Each
// invocation reads only its own fitted model and returns its own Extraction,
// so concurrent fits need no synchronization here.
func (r *ExtractorRegistry) Hook() ExtractFunc {
	return func(fitted any, ctx FitContext) Extraction {
		return Extraction{
			CombinationID: ctx.CombinationID,
			ResampleID:    ctx.ResampleID,
			Values:        r.Extract(fitted),
		}
	}
}

// FromReporter adapts the CharacteristicReporter capability into an
// Extractor. Models registered under a family but not implementing the
// capability yield an empty mapping.
func FromReporter(fitted any) Characteristics {
	rep, ok := fitted.(model.CharacteristicReporter)
	if !ok {
		return Characteristics{}
	}
	return Characteristics(rep.Characteristics())
}
