package filter

import (
	"github.com/leengari/sheetmerge/internal/domain/table"
)

// PredicateFunc is a function that tests whether a record matches certain criteria
type PredicateFunc func(table.Record) bool

// Pair is a single column equality test
type Pair struct {
	Column string
	Value  string
}

// Group is a conjunction: every pair must match the record
type Group []Pair

// Set is a disjunction of groups: the record must satisfy at least one group.
// An empty Set matches nothing; callers that want "accept everything" pass
// a nil PredicateFunc to the consumer instead of an empty Set.
type Set []Group

// Build converts a filter set into a predicate function.
// The predicate is true iff at least one group in the set has every
// (column, value) pair equal to the record's value. Comparison is exact
// string equality, case-sensitive, no trimming.
//
// Evaluation short-circuits on the first satisfied group and on the first
// failing pair within a group. No evaluation order beyond "some group,
// every pair" is guaranteed, so pairs must be side-effect free.
func Build(set Set) PredicateFunc {
	return func(record table.Record) bool {
		for _, group := range set {
			if matchesGroup(record, group) {
				return true
			}
		}
		return false
	}
}

// matchesGroup tests whether every pair in the group matches the record.
// A column absent from the record reads as the empty string, so an empty
// expected value matches a missing column.
func matchesGroup(record table.Record, group Group) bool {
	for _, pair := range group {
		if record[pair.Column] != pair.Value {
			return false
		}
	}
	return true
}
