package tune

import (
	"math"

	"github.com/YuminosukeSato/tunex/pkg/log"
)

// JoinedRow is one characteristic record plus, when metrics were joined, the
// per-metric means of its combination. A NaN mean marks a combination absent
// from the metrics table or one with zero successful resamples.
type JoinedRow struct {
	CharacteristicRecord
	Metrics map[string]float64
}

// JoinedTable is the characteristics table after the optional metric join.
// MetricNames is empty when no join was requested; rows then carry nil
// Metrics maps and the table is the characteristics table unchanged.
type JoinedTable struct {
	Combinations []Combination
	MetricNames  []string
	Rows         []JoinedRow
}

// JoinMetrics joins the engine's metric table onto the characteristics table
// at combination granularity. Metrics are first averaged over resamples per
// (combination, metric); the per-resample detail is deliberately discarded,
// because characteristic and metric resample values need not align one-to-one
// once some fits have failed.
//
// The join is a left join on combination id: every characteristic row is
// kept, and combinations missing from the metrics table get NaN metric cells.
// With addMetrics false the characteristics pass through with no metric
// columns.
func (t *CharacteristicsTable) JoinMetrics(metricRows []MetricRow, addMetrics bool) *JoinedTable {
	joined := &JoinedTable{
		Combinations: t.Combinations,
		Rows:         make([]JoinedRow, 0, len(t.Records)),
	}

	if !addMetrics {
		for _, rec := range t.Records {
			joined.Rows = append(joined.Rows, JoinedRow{CharacteristicRecord: rec})
		}
		return joined
	}

	names, means := summarizeMetrics(metricRows)
	joined.MetricNames = names

	for _, rec := range t.Records {
		cells := make(map[string]float64, len(names))
		for _, name := range names {
			if v, ok := means[rec.CombinationID][name]; ok {
				cells[name] = v
			} else {
				cells[name] = math.NaN()
			}
		}
		joined.Rows = append(joined.Rows, JoinedRow{
			CharacteristicRecord: rec,
			Metrics:              cells,
		})
	}

	log.GetLogger().Debug("joined metrics",
		log.OperationKey, "join",
		log.MetricsKey, len(names),
		log.RowsKey, len(joined.Rows),
	)
	return joined
}

// summarizeMetrics averages metric values per (combination, metric) over
// resamples. NaN entries (failed resamples) are ignored; a combination whose
// every entry for a metric is NaN gets no mean at all, which the join renders
// as a missing value rather than zero.
//
// The returned names preserve first-seen order from the metric table.
func summarizeMetrics(rows []MetricRow) ([]string, map[string]map[string]float64) {
	type acc struct {
		sum float64
		n   int
	}

	var names []string
	seen := make(map[string]bool)
	accs := make(map[string]map[string]*acc)

	for _, r := range rows {
		if !seen[r.Metric] {
			seen[r.Metric] = true
			names = append(names, r.Metric)
		}
		if math.IsNaN(r.Value) {
			continue
		}
		byMetric := accs[r.CombinationID]
		if byMetric == nil {
			byMetric = make(map[string]*acc)
			accs[r.CombinationID] = byMetric
		}
		a := byMetric[r.Metric]
		if a == nil {
			a = &acc{}
			byMetric[r.Metric] = a
		}
		a.sum += r.Value
		a.n++
	}

	means := make(map[string]map[string]float64, len(accs))
	for combo, byMetric := range accs {
		m := make(map[string]float64, len(byMetric))
		for name, a := range byMetric {
			if a.n > 0 {
				m[name] = a.sum / float64(a.n)
			}
		}
		means[combo] = m
	}
	return names, means
}
