package report

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/leengari/sheetmerge/internal/query/merge"
)

// Options selects which parts of a merged sheet feed the rate report:
// the seed step and column that key each output line, and the joined step
// and column the rates are read from.
type Options struct {
	KeyStep    string
	KeyColumn  string
	RateStep   string
	RateColumn string
}

// Line is one row of the rate report.
type Line struct {
	Key  string
	Rate decimal.Decimal
}

// Build derives the second-lowest distinct rate per merged row.
//
// Merged rows whose rate group has no parseable rate are skipped, not
// errors: a seed with no matches produces no report line.
func Build(sheet *merge.MergedSheet, opts Options) ([]Line, error) {
	lines := make([]Line, 0, len(sheet.Rows))
	skipped := 0

	for i, row := range sheet.Rows {
		seed, ok := row[opts.KeyStep].(merge.Seed)
		if !ok {
			return nil, fmt.Errorf("report key step %q is not the seed step", opts.KeyStep)
		}

		matches, ok := row[opts.RateStep].(merge.Matches)
		if !ok {
			return nil, fmt.Errorf("report rate step %q is not a joined step", opts.RateStep)
		}

		values := make([]string, 0, len(matches.Records))
		for _, rec := range matches.Records {
			values = append(values, rec[opts.RateColumn])
		}

		rate, found := SecondLowestRate(values)
		if !found {
			skipped++
			slog.Debug("No usable rate for merged row",
				slog.Int("row", i),
				slog.String("key", seed.Record[opts.KeyColumn]),
			)
			continue
		}

		lines = append(lines, Line{
			Key:  seed.Record[opts.KeyColumn],
			Rate: rate,
		})
	}

	slog.Info("Rate report built",
		slog.Int("lines", len(lines)),
		slog.Int("skipped", skipped),
	)
	return lines, nil
}

// SecondLowestRate returns the second-lowest distinct rate among values.
// Values that do not parse as decimals are ignored. When only one
// distinct rate exists it is returned as-is; when none parse, found is
// false.
func SecondLowestRate(values []string) (decimal.Decimal, bool) {
	distinct := make([]decimal.Decimal, 0, len(values))
	seen := make(map[string]bool, len(values))

	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			continue
		}
		key := d.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, d)
	}

	if len(distinct) == 0 {
		return decimal.Decimal{}, false
	}

	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].LessThan(distinct[j])
	})

	if len(distinct) == 1 {
		return distinct[0], true
	}
	return distinct[1], true
}
