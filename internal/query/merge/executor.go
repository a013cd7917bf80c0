package merge

import (
	"fmt"
	"log/slog"

	"github.com/leengari/sheetmerge/internal/domain/table"
	"github.com/leengari/sheetmerge/internal/query/filter"
)

// Merge folds over the ordered join steps and produces one merged sheet.
//
// Step 0 seeds one MergedRow per record of its table, unfiltered. Every
// later step k filters its table once per accumulated row, using the join
// keys contributed by the PREVIOUS step's value for that row:
//
//   - a Seed contributes a single conjunction group,
//   - Matches contribute one group per matched record, so the filter is a
//     disjunction over every upstream record's key tuple and a one-to-many
//     join earlier in the chain fans out correctly into later steps.
//
// All matches, zero included, land under the step's name as a list.
// Rows are copied rather than extended in place, and input tables are
// never mutated, so repeated merges of the same tables are structurally
// equal.
//
// Complexity is a plain predicate scan, O(sum over steps of
// |accumulated rows| x |next table|). No index acceleration.
func Merge(steps []JoinStep) (*MergedSheet, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}

	seed := steps[0]
	slog.Debug("Starting merge",
		slog.String("seed", seed.Name),
		slog.Int("steps", len(steps)),
		slog.Int("seed_rows", len(seed.Table.Rows)),
	)

	sheet := &MergedSheet{
		Headers: make(map[string][]string, len(steps)),
		Rows:    make([]MergedRow, 0, len(seed.Table.Rows)),
	}

	// Headers accumulate independently of row processing.
	for _, step := range steps {
		sheet.Headers[step.Name] = step.Table.Headers
	}

	for _, record := range seed.Table.Rows {
		sheet.Rows = append(sheet.Rows, MergedRow{seed.Name: Seed{Record: record}})
	}

	for k := 1; k < len(steps); k++ {
		prev := steps[k-1]
		step := steps[k]

		next := make([]MergedRow, 0, len(sheet.Rows))
		for _, row := range sheet.Rows {
			matched := matchStep(row[prev.Name], prev.JoinColumns, step.Table)

			out := row.Copy()
			out[step.Name] = Matches{Records: matched}
			next = append(next, out)
		}
		sheet.Rows = next

		slog.Debug("Merge step completed",
			slog.String("step", step.Name),
			slog.Int("table_rows", len(step.Table.Rows)),
			slog.Int("merged_rows", len(sheet.Rows)),
		)
	}

	slog.Info("Merge completed",
		slog.String("seed", seed.Name),
		slog.Int("steps", len(steps)),
		slog.Int("result_rows", len(sheet.Rows)),
	)

	return sheet, nil
}

// matchStep filters the next table against the join keys carried by the
// previous step's value, preserving table row order.
func matchStep(prev StepValue, joinColumns []string, next *table.Table) []table.Record {
	keys := filter.JoinKeys(joinColumns)

	var set filter.Set
	switch v := prev.(type) {
	case Seed:
		set = filter.Set{keys(v.Record)}
	case Matches:
		// One group per upstream record. Zero upstream records leave the
		// set empty, which matches nothing.
		set = make(filter.Set, 0, len(v.Records))
		for _, rec := range v.Records {
			set = append(set, keys(rec))
		}
	}

	pred := filter.Build(set)
	matched := make([]table.Record, 0)
	for _, rec := range next.Rows {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// validateSteps checks the structural shape of the pipeline before any
// work happens. A join column absent from a table is deliberately NOT an
// error; it projects empty values and simply fails to match.
func validateSteps(steps []JoinStep) error {
	if len(steps) == 0 {
		return fmt.Errorf("merge requires at least one join step")
	}

	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.Table == nil {
			return fmt.Errorf("join step %q has no table", step.Name)
		}
		if step.Name == "" {
			return fmt.Errorf("join step %d has no name", i)
		}
		if seen[step.Name] {
			return fmt.Errorf("duplicate join step name %q", step.Name)
		}
		seen[step.Name] = true

		last := i == len(steps)-1
		if !last && len(step.JoinColumns) == 0 {
			return fmt.Errorf("join step %q needs join columns to feed the next step", step.Name)
		}

		if !last {
			for _, col := range step.JoinColumns {
				if !step.Table.HasColumn(col) {
					slog.Warn("Join column not in table headers (will match empty values only)",
						slog.String("step", step.Name),
						slog.String("column", col),
					)
				}
			}
		}
	}
	return nil
}
