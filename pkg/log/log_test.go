package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("collected characteristics",
		RowsKey, 14,
		CombinationKey, "combo-02",
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("captured output is not JSON: %v", err)
	}
	if entry["message"] != "collected characteristics" {
		t.Errorf("message = %v, want collected characteristics", entry["message"])
	}
	if entry[CombinationKey] != "combo-02" {
		t.Errorf("%s = %v, want combo-02", CombinationKey, entry[CombinationKey])
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("should be dropped")
	logger.Info("should also be dropped")
	logger.Warn("kept")

	out := buffer.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered messages: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("output missing warn message: %s", out)
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)
	ctxLogger := logger.With(RunKey, "run-abc")

	ctxLogger.Info("joining metrics")

	if !strings.Contains(buffer.String(), "run-abc") {
		t.Errorf("contextual field missing from output: %s", buffer.String())
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.NewMalformedResultError("Collect", "nil result")
	logger.Error("collection failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("output is not JSON: %v", jsonErr)
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Errorf("record missing %q attribute: %s", StacktraceAttrKey, buf.String())
	}
}

func TestUseZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	UseZerologWarnings(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewUnsupportedFamilyWarning("svm"))

	if !strings.Contains(buf.String(), "svm") {
		t.Errorf("zerolog output missing family: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "UnsupportedFamilyWarning") {
		t.Errorf("zerolog output missing warning type: %s", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Enabled(LevelDebug) = true at info level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("Enabled(LevelError) = false at info level")
	}
}
