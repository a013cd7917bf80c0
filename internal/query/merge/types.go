package merge

import (
	"fmt"

	"github.com/leengari/sheetmerge/internal/domain/table"
)

// JoinStep is one stage of the merge pipeline: the table whose records
// are matched at this stage, the columns used to filter the NEXT step's
// table, and the name under which this step's records appear in merged
// rows. Step order is fixed by the caller and significant.
type JoinStep struct {
	Table       *table.Table
	JoinColumns []string // nil on the final step; nothing to project forward
	Name        string
}

// StepValue is the value a merged row holds for one processed step.
// It is either a Seed (the single originating record of the first step)
// or Matches (the records of a later step's table that equality-matched
// the previous step). Consumers type-switch on the two concrete types.
type StepValue interface {
	stepValue()
}

// Seed wraps the single record a merged row originates from.
type Seed struct {
	Record table.Record
}

// Matches wraps the records of a joined table that matched the previous
// step's join keys. Zero matches is an empty (non-nil) list, never an
// omitted key.
type Matches struct {
	Records []table.Record
}

func (Seed) stepValue()    {}
func (Matches) stepValue() {}

// MergedRow maps each processed step name to its StepValue.
// Keys present = names of all processed steps so far, in processing order.
type MergedRow map[string]StepValue

// Copy creates a shallow copy of the merged row so that a later step can
// extend it without mutating the caller's row.
func (r MergedRow) Copy() MergedRow {
	dup := make(MergedRow, len(r)+1)
	for k, v := range r {
		dup[k] = v
	}
	return dup
}

// MergedSheet is the result of a full merge: per-step header lists plus
// the accumulated rows.
type MergedSheet struct {
	Headers map[string][]string
	Rows    []MergedRow
}

func (s *MergedSheet) String() string {
	return fmt.Sprintf("MergedSheet{steps=%d rows=%d}", len(s.Headers), len(s.Rows))
}
