package tune

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/tunex/pkg/log"
)

// WideRow is one row of the wide-form table: a combination's identity plus
// one cell per characteristic and metric column. NaN marks a cell with no
// value, e.g. a characteristic the combination's model family never reported.
type WideRow struct {
	CombinationID string
	Params        map[string]any
	Cells         map[string]float64
}

// WideTable has one row per combination: identity columns first, then
// characteristic columns in first-seen order, then metric columns in
// first-seen order. It is lossy with respect to per-resample detail; only
// means survive the pivot.
type WideTable struct {
	ParamNames          []string
	CharacteristicNames []string
	MetricNames         []string
	Rows                []WideRow
}

// PivotWide pivots the joined long-form table into one row per combination.
// Characteristic cells hold the mean over that combination's per-resample
// values; metric cells pass through unchanged, being one value per
// combination already. Characteristic and metric names share one cell
// namespace, with metrics written last.
func PivotWide(j *JoinedTable) *WideTable {
	wide := &WideTable{
		MetricNames: append([]string(nil), j.MetricNames...),
	}

	type group struct {
		sums    map[string]float64
		counts  map[string]int
		metrics map[string]float64
	}

	var comboOrder []string
	groups := make(map[string]*group)
	charSeen := make(map[string]bool)

	// Every engine combination gets a wide row, even one whose fits produced
	// no characteristic rows at all; its cells come out as missing values.
	for _, c := range j.Combinations {
		if groups[c.ID] != nil {
			continue
		}
		groups[c.ID] = &group{
			sums:   make(map[string]float64),
			counts: make(map[string]int),
		}
		comboOrder = append(comboOrder, c.ID)
	}

	for _, row := range j.Rows {
		g := groups[row.CombinationID]
		if g == nil {
			g = &group{
				sums:   make(map[string]float64),
				counts: make(map[string]int),
			}
			groups[row.CombinationID] = g
			comboOrder = append(comboOrder, row.CombinationID)
		}
		if !charSeen[row.Name] {
			charSeen[row.Name] = true
			wide.CharacteristicNames = append(wide.CharacteristicNames, row.Name)
		}
		g.sums[row.Name] += row.Value
		g.counts[row.Name]++
		if row.Metrics != nil {
			// Identical for every row of the combination after the join.
			g.metrics = row.Metrics
		}
	}

	params := make(map[string]map[string]any, len(j.Combinations))
	paramSeen := make(map[string]bool)
	for _, c := range j.Combinations {
		params[c.ID] = c.Params
		for name := range c.Params {
			paramSeen[name] = true
		}
	}
	for name := range paramSeen {
		wide.ParamNames = append(wide.ParamNames, name)
	}
	sort.Strings(wide.ParamNames)

	for _, comboID := range comboOrder {
		g := groups[comboID]
		cells := make(map[string]float64, len(wide.CharacteristicNames)+len(wide.MetricNames))
		for _, name := range wide.CharacteristicNames {
			if n := g.counts[name]; n > 0 {
				cells[name] = g.sums[name] / float64(n)
			} else {
				cells[name] = math.NaN()
			}
		}
		for _, name := range wide.MetricNames {
			if v, ok := g.metrics[name]; ok {
				cells[name] = v
			} else {
				cells[name] = math.NaN()
			}
		}
		wide.Rows = append(wide.Rows, WideRow{
			CombinationID: comboID,
			Params:        params[comboID],
			Cells:         cells,
		})
	}

	log.GetLogger().Debug("pivoted to wide form",
		log.OperationKey, "pivot",
		log.RowsKey, len(wide.Rows),
		log.ColumnsKey, 1+len(wide.ParamNames)+len(wide.CharacteristicNames)+len(wide.MetricNames),
	)
	return wide
}
