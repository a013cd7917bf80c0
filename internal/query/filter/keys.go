package filter

import (
	"github.com/leengari/sheetmerge/internal/domain/table"
)

// JoinKeys returns a projection that extracts the named columns from a
// record as a conjunction group, in the given order, preserving
// duplicates. The result feeds Build; it is never evaluated standalone.
//
// A column the record does not carry projects the empty string, which
// only ever equals another empty value.
func JoinKeys(columns []string) func(table.Record) Group {
	return func(record table.Record) Group {
		group := make(Group, 0, len(columns))
		for _, col := range columns {
			group = append(group, Pair{
				Column: col,
				Value:  record[col],
			})
		}
		return group
	}
}
