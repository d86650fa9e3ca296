// Package errors provides structured error handling and the warning system
// used across tunex. Non-fatal conditions (an unsupported model family, a fit
// with no extraction metadata) are warnings routed through a configurable
// handler; only structural malformation of a tuning result is a real error.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("tunex-warning: %v\n", w)
	}
	// zerolog sink, set lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler. Warnings such as
// UnsupportedFamilyWarning are advisory: extraction continues with an empty
// characteristics mapping, so callers may install a no-op handler to silence
// them entirely.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc routes warnings to a zerolog-backed sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink if one is configured, falling
// back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// UnsupportedFamilyWarning is raised when the extractor registry has no
// characteristic definitions for a model family. The extraction returns an
// empty mapping instead of failing the tuning run.
type UnsupportedFamilyWarning struct {
	Family        string
	CombinationID string
	ResampleID    string
}

func (w *UnsupportedFamilyWarning) Error() string {
	if w.CombinationID != "" {
		return fmt.Sprintf("no characteristic extractor registered for model family %q (combination %s, resample %s); returning empty characteristics",
			w.Family, w.CombinationID, w.ResampleID)
	}
	return fmt.Sprintf("no characteristic extractor registered for model family %q; returning empty characteristics", w.Family)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *UnsupportedFamilyWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("family", w.Family).
		Str("combination_id", w.CombinationID).
		Str("resample_id", w.ResampleID).
		Str("type", "UnsupportedFamilyWarning")
}

// NewUnsupportedFamilyWarning creates a new UnsupportedFamilyWarning.
func NewUnsupportedFamilyWarning(family string) *UnsupportedFamilyWarning {
	return &UnsupportedFamilyWarning{Family: family}
}

// MissingExtractionWarning is raised when a successful fit carries no
// extraction metadata, typically because extraction was not enabled for the
// run or the hook never fired. The collector skips the fit.
type MissingExtractionWarning struct {
	CombinationID string
	ResampleID    string
}

func (w *MissingExtractionWarning) Error() string {
	return fmt.Sprintf("fit (combination %s, resample %s) has no extraction metadata; contributing zero rows", w.CombinationID, w.ResampleID)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *MissingExtractionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("combination_id", w.CombinationID).
		Str("resample_id", w.ResampleID).
		Str("type", "MissingExtractionWarning")
}

// NewMissingExtractionWarning creates a new MissingExtractionWarning.
func NewMissingExtractionWarning(combinationID, resampleID string) *MissingExtractionWarning {
	return &MissingExtractionWarning{CombinationID: combinationID, ResampleID: resampleID}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// MalformedResultError indicates that a tuning result does not have the shape
// the collector expects. This is the only fatal condition in the collection
// pipeline: partial failures, missing metadata, and unmatched join keys are
// all represented as absent rows or missing values instead.
type MalformedResultError struct {
	Op     string
	Reason string
}

func (e *MalformedResultError) Error() string {
	return fmt.Sprintf("tunex: %s: malformed tuning result: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *MalformedResultError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "MalformedResultError")
}

// NewMalformedResultError creates a MalformedResultError with a stack trace.
func NewMalformedResultError(op, reason string) error {
	err := &MalformedResultError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// DimensionError indicates that an input's dimensions do not match
// expectations, e.g. a prediction matrix with the wrong feature count.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("tunex: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError indicates that a parameter failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tunex: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError indicates an inappropriate argument value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("tunex: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors passthroughs
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives empty data.
	ErrEmptyData = New("empty data")
)
