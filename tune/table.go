package tune

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

// Table is the value every collection mode returns: long, joined, or wide.
type Table interface {
	// ColumnNames returns the ordered column names of the table.
	ColumnNames() []string

	// NumRows returns the number of data rows.
	NumRows() int

	// WriteCSV renders the table as CSV with a header row.
	// Missing values render as "NA".
	WriteCSV(w io.Writer) error
}

// missingCell is how NaN cells render in CSV output. "NA" rather than zero or
// empty, so "not computed" stays distinguishable from "computed as zero".
const missingCell = "NA"

// Long-form identity columns, in the fixed output order.
var longColumns = []string{"combination_id", "resample_id", "name", "value"}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return missingCell
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatParam(v any) string {
	switch p := v.(type) {
	case float64:
		return strconv.FormatFloat(p, 'g', -1, 64)
	case nil:
		return missingCell
	default:
		return fmt.Sprint(p)
	}
}

// ColumnNames implements Table.
func (t *CharacteristicsTable) ColumnNames() []string {
	return append([]string(nil), longColumns...)
}

// NumRows implements Table.
func (t *CharacteristicsTable) NumRows() int { return len(t.Records) }

// WriteCSV implements Table.
func (t *CharacteristicsTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return errors.Wrap(err, "writing characteristics header")
	}
	for _, rec := range t.Records {
		row := []string{rec.CombinationID, rec.ResampleID, rec.Name, formatValue(rec.Value)}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing characteristics row")
		}
	}
	cw.Flush()
	return errors.WithStack(cw.Error())
}

// ColumnNames implements Table. Metric columns follow the long-form columns
// in first-seen order.
func (j *JoinedTable) ColumnNames() []string {
	cols := append([]string(nil), longColumns...)
	return append(cols, j.MetricNames...)
}

// NumRows implements Table.
func (j *JoinedTable) NumRows() int { return len(j.Rows) }

// WriteCSV implements Table.
func (j *JoinedTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(j.ColumnNames()); err != nil {
		return errors.Wrap(err, "writing joined header")
	}
	for _, r := range j.Rows {
		row := make([]string, 0, len(longColumns)+len(j.MetricNames))
		row = append(row, r.CombinationID, r.ResampleID, r.Name, formatValue(r.Value))
		for _, name := range j.MetricNames {
			v, ok := r.Metrics[name]
			if !ok {
				v = math.NaN()
			}
			row = append(row, formatValue(v))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing joined row")
		}
	}
	cw.Flush()
	return errors.WithStack(cw.Error())
}

// ColumnNames implements Table: combination id, parameter columns, then
// characteristic and metric columns.
func (wt *WideTable) ColumnNames() []string {
	cols := make([]string, 0, 1+len(wt.ParamNames)+len(wt.CharacteristicNames)+len(wt.MetricNames))
	cols = append(cols, "combination_id")
	cols = append(cols, wt.ParamNames...)
	cols = append(cols, wt.CharacteristicNames...)
	return append(cols, wt.MetricNames...)
}

// NumRows implements Table.
func (wt *WideTable) NumRows() int { return len(wt.Rows) }

// WriteCSV implements Table.
func (wt *WideTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(wt.ColumnNames()); err != nil {
		return errors.Wrap(err, "writing wide header")
	}
	for _, r := range wt.Rows {
		row := make([]string, 0, 1+len(wt.ParamNames)+len(wt.CharacteristicNames)+len(wt.MetricNames))
		row = append(row, r.CombinationID)
		for _, name := range wt.ParamNames {
			v, ok := r.Params[name]
			if !ok {
				row = append(row, missingCell)
				continue
			}
			row = append(row, formatParam(v))
		}
		for _, name := range wt.CharacteristicNames {
			row = append(row, formatValue(r.Cells[name]))
		}
		for _, name := range wt.MetricNames {
			row = append(row, formatValue(r.Cells[name]))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing wide row")
		}
	}
	cw.Flush()
	return errors.WithStack(cw.Error())
}
