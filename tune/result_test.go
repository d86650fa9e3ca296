package tune

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/YuminosukeSato/tunex/core/parallel"
)

func TestNewResultAssignsRunID(t *testing.T) {
	a := NewResult(nil, nil)
	b := NewResult(nil, nil)
	if a.RunID == "" {
		t.Error("NewResult() left RunID empty")
	}
	if a.RunID == b.RunID {
		t.Error("two runs share a RunID")
	}
}

func TestFitResultFail(t *testing.T) {
	var f FitResult
	f.Fail(fmt.Errorf("optimizer diverged"))
	if !f.Failed {
		t.Error("Fail() did not mark the fit failed")
	}
	if f.FailureReason != "optimizer diverged" {
		t.Errorf("FailureReason = %q", f.FailureReason)
	}
}

func TestAttachConcurrent(t *testing.T) {
	res := NewResult(nil, nil)

	const n = 500
	parallel.Parallelize(n, func(start, end int) {
		for i := start; i < end; i++ {
			res.Attach(Extraction{
				CombinationID: fmt.Sprintf("c%d", i),
				ResampleID:    "r1",
				Values:        Characteristics{"a": float64(i)},
			})
		}
	})

	if len(res.Extractions) != n {
		t.Fatalf("attached %d extractions, want %d", len(res.Extractions), n)
	}
	seen := make(map[string]bool, n)
	for _, ex := range res.Extractions {
		seen[ex.CombinationID] = true
	}
	if len(seen) != n {
		t.Errorf("found %d distinct combinations, want %d", len(seen), n)
	}
}

func TestResultJSONRoundTrip(t *testing.T) {
	res := NewResult(
		[]Combination{{ID: "c1", Params: map[string]any{"penalty": 0.1}}},
		[]string{"r1", "r2"},
	)
	res.AddFit(FitResult{CombinationID: "c1", ResampleID: "r1"})
	failed := FitResult{CombinationID: "c1", ResampleID: "r2"}
	failed.Fail(fmt.Errorf("singular matrix"))
	res.AddFit(failed)
	res.Attach(Extraction{CombinationID: "c1", ResampleID: "r1", Values: Characteristics{"num_active_features": 4}})
	res.AddMetric(MetricRow{CombinationID: "c1", ResampleID: "r1", Metric: "rmse", Value: 1.5})

	var buf bytes.Buffer
	if err := res.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	decoded, err := ReadResult(&buf)
	if err != nil {
		t.Fatalf("ReadResult() error = %v", err)
	}

	if decoded.RunID != res.RunID {
		t.Errorf("RunID = %q, want %q", decoded.RunID, res.RunID)
	}
	if len(decoded.Fits) != 2 || len(decoded.Extractions) != 1 || len(decoded.Metrics) != 1 {
		t.Fatalf("decoded shape fits/extractions/metrics = %d/%d/%d, want 2/1/1",
			len(decoded.Fits), len(decoded.Extractions), len(decoded.Metrics))
	}
	if !decoded.Fits[1].Failed || decoded.Fits[1].FailureReason != "singular matrix" {
		t.Errorf("failure marker lost in round trip: %+v", decoded.Fits[1])
	}
	if decoded.Extractions[0].Values["num_active_features"] != 4 {
		t.Errorf("extraction values lost in round trip: %+v", decoded.Extractions[0])
	}

	// A decoded run collects the same table as the in-memory one.
	table, err := Collect(decoded)
	if err != nil {
		t.Fatalf("Collect() on decoded result error = %v", err)
	}
	if len(table.Records) != 1 {
		t.Errorf("decoded run collected %d rows, want 1", len(table.Records))
	}
}

func TestReadResultRejectsGarbage(t *testing.T) {
	_, err := ReadResult(bytes.NewBufferString("{not json"))
	if err == nil {
		t.Error("ReadResult() accepted invalid JSON")
	}
}
