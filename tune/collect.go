package tune

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/tunex/pkg/errors"
	"github.com/YuminosukeSato/tunex/pkg/log"
)

// CharacteristicRecord is one row of the long-form characteristics table.
type CharacteristicRecord struct {
	CombinationID string
	ResampleID    string
	Name          string
	Value         float64
}

// CharacteristicsTable is the long-form table assembled by Collect: one row
// per (combination, resample, characteristic name) triple. Treated as
// immutable downstream.
type CharacteristicsTable struct {
	Combinations []Combination
	Records      []CharacteristicRecord
}

// Collect walks every fit of a completed tuning run and assembles the
// attached extractions into the long-form characteristics table.
//
// Row order is deterministic: combinations in engine order, resamples in
// engine order within each, characteristic names lexicographically within
// each fit. Failed fits and fits without extraction metadata contribute zero
// rows. Side-table entries with no corresponding fit entry are never emitted;
// the table only describes fits that actually occurred.
//
// The only fatal condition is a malformed result: nil, or a fit entry with
// neither identifying field set.
func Collect(res *Result) (*CharacteristicsTable, error) {
	const op = "Collect"
	if res == nil {
		return nil, errors.NewMalformedResultError(op, "nil result")
	}
	for i := range res.Fits {
		f := &res.Fits[i]
		if f.CombinationID == "" && f.ResampleID == "" {
			return nil, errors.NewMalformedResultError(op,
				fmt.Sprintf("fit entry %d carries neither combination nor resample id", i))
		}
	}

	fits := make(map[fitKey]*FitResult, len(res.Fits))
	for i := range res.Fits {
		f := &res.Fits[i]
		fits[fitKey{f.CombinationID, f.ResampleID}] = f
	}
	extracts := make(map[fitKey]*Extraction, len(res.Extractions))
	for i := range res.Extractions {
		ex := &res.Extractions[i]
		extracts[fitKey{ex.CombinationID, ex.ResampleID}] = ex
	}

	table := &CharacteristicsTable{
		Combinations: append([]Combination(nil), res.Combinations...),
	}

	skipped := 0
	for _, comboID := range combinationOrder(res) {
		for _, resampleID := range resampleOrder(res) {
			key := fitKey{comboID, resampleID}
			fit, attempted := fits[key]
			if !attempted {
				continue
			}
			if fit.Failed {
				skipped++
				continue
			}
			ex, ok := extracts[key]
			if !ok {
				errors.Warn(errors.NewMissingExtractionWarning(comboID, resampleID))
				skipped++
				continue
			}

			names := make([]string, 0, len(ex.Values))
			for name := range ex.Values {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				table.Records = append(table.Records, CharacteristicRecord{
					CombinationID: comboID,
					ResampleID:    resampleID,
					Name:          name,
					Value:         ex.Values[name],
				})
			}
		}
	}

	log.GetLogger().Debug("collected characteristics",
		log.OperationKey, "collect",
		log.RunKey, res.RunID,
		log.FitsKey, len(res.Fits),
		log.SkippedKey, skipped,
		log.RowsKey, len(table.Records),
	)
	return table, nil
}

// combinationOrder returns combination ids in engine order, extended with any
// ids that appear only on fit entries (first-seen order).
func combinationOrder(res *Result) []string {
	seen := make(map[string]bool, len(res.Combinations))
	order := make([]string, 0, len(res.Combinations))
	for _, c := range res.Combinations {
		if !seen[c.ID] {
			seen[c.ID] = true
			order = append(order, c.ID)
		}
	}
	for i := range res.Fits {
		id := res.Fits[i].CombinationID
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	return order
}

// resampleOrder returns resample ids in engine order, extended with any ids
// that appear only on fit entries (first-seen order).
func resampleOrder(res *Result) []string {
	seen := make(map[string]bool, len(res.Resamples))
	order := make([]string, 0, len(res.Resamples))
	for _, id := range res.Resamples {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	for i := range res.Fits {
		id := res.Fits[i].ResampleID
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	return order
}
