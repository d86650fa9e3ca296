package tune

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestCollectCharacteristicsShapes(t *testing.T) {
	silenceWarnings(t)
	res := buildScenarioResult()

	tests := []struct {
		name     string
		opts     []CollectOption
		wantType string
		wantRows int
		wantCols []string
	}{
		{
			name:     "long form",
			opts:     nil,
			wantType: "*tune.CharacteristicsTable",
			wantRows: 14,
			wantCols: []string{"combination_id", "resample_id", "name", "value"},
		},
		{
			name:     "joined form",
			opts:     []CollectOption{WithMetrics()},
			wantType: "*tune.JoinedTable",
			wantRows: 14,
			wantCols: []string{"combination_id", "resample_id", "name", "value", "rmse"},
		},
		{
			name:     "wide form with metrics",
			opts:     []CollectOption{WithMetrics(), Wide()},
			wantType: "*tune.WideTable",
			wantRows: 3,
			wantCols: []string{"combination_id", "penalty", "num_active_features", "rmse"},
		},
		{
			name:     "wide form without metrics",
			opts:     []CollectOption{Wide()},
			wantType: "*tune.WideTable",
			wantRows: 3,
			wantCols: []string{"combination_id", "penalty", "num_active_features"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := CollectCharacteristics(res, tt.opts...)
			if err != nil {
				t.Fatalf("CollectCharacteristics() error = %v", err)
			}
			if got := fmt.Sprintf("%T", table); got != tt.wantType {
				t.Errorf("table type = %s, want %s", got, tt.wantType)
			}
			if table.NumRows() != tt.wantRows {
				t.Errorf("NumRows() = %d, want %d", table.NumRows(), tt.wantRows)
			}
			got := table.ColumnNames()
			if len(got) != len(tt.wantCols) {
				t.Fatalf("ColumnNames() = %v, want %v", got, tt.wantCols)
			}
			for i := range tt.wantCols {
				if got[i] != tt.wantCols[i] {
					t.Errorf("column %d = %q, want %q", i, got[i], tt.wantCols[i])
				}
			}
		})
	}
}

func TestCollectCharacteristicsMalformed(t *testing.T) {
	if _, err := CollectCharacteristics(nil); err == nil {
		t.Error("CollectCharacteristics(nil) did not fail")
	}
}

func TestWriteCSVLong(t *testing.T) {
	table := &CharacteristicsTable{
		Records: []CharacteristicRecord{
			{"c1", "r1", "num_active_features", 12},
			{"c1", "r2", "num_active_features", 9},
		},
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "combination_id,resample_id,name,value" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "c1,r1,num_active_features,12" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestWriteCSVMissingValues(t *testing.T) {
	wide := &WideTable{
		ParamNames:          []string{"penalty"},
		CharacteristicNames: []string{"num_active_features"},
		MetricNames:         []string{"rmse"},
		Rows: []WideRow{
			{
				CombinationID: "c1",
				Params:        map[string]any{"penalty": 0.1},
				Cells: map[string]float64{
					"num_active_features": math.NaN(),
					"rmse":                1.25,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := wide.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "combination_id,penalty,num_active_features,rmse" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "c1,0.1,NA,1.25" {
		t.Errorf("row = %q, want NA for the missing characteristic", lines[1])
	}
}

func TestWriteCSVJoined(t *testing.T) {
	joined := &JoinedTable{
		MetricNames: []string{"rmse"},
		Rows: []JoinedRow{
			{
				CharacteristicRecord: CharacteristicRecord{"c1", "r1", "num_active_features", 5},
				Metrics:              map[string]float64{"rmse": 2.5},
			},
			{
				CharacteristicRecord: CharacteristicRecord{"c2", "r1", "num_active_features", 3},
				Metrics:              map[string]float64{"rmse": math.NaN()},
			},
		},
	}

	var buf bytes.Buffer
	if err := joined.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "c1,r1,num_active_features,5,2.5") {
		t.Errorf("joined CSV missing matched row:\n%s", out)
	}
	if !strings.Contains(out, "c2,r1,num_active_features,3,NA") {
		t.Errorf("joined CSV missing NA for unmatched combination:\n%s", out)
	}
}
