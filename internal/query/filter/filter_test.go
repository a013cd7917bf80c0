package filter_test

import (
	"testing"

	"github.com/leengari/sheetmerge/internal/domain/table"
	"github.com/leengari/sheetmerge/internal/query/filter"
)

// TestBuild_SingleEquality tests a one-group, one-pair filter set
func TestBuild_SingleEquality(t *testing.T) {
	pred := filter.Build(filter.Set{{{Column: "a", Value: "1"}}})

	if !pred(table.Record{"a": "1", "b": "2"}) {
		t.Error("expected record with a=1 to match")
	}
	if pred(table.Record{"a": "9", "b": "2"}) {
		t.Error("expected record with a=9 not to match")
	}
}

// TestBuild_EmptySet tests that an empty filter set rejects everything
func TestBuild_EmptySet(t *testing.T) {
	pred := filter.Build(filter.Set{})

	if pred(table.Record{"a": "1"}) {
		t.Error("empty filter set must reject every record")
	}
	if pred(table.Record{}) {
		t.Error("empty filter set must reject the empty record too")
	}
}

// TestBuild_NilSet tests that a nil set behaves like an empty one
func TestBuild_NilSet(t *testing.T) {
	pred := filter.Build(nil)

	if pred(table.Record{"a": "1"}) {
		t.Error("nil filter set must reject every record")
	}
}

// TestBuild_Disjunction tests OR semantics across groups
func TestBuild_Disjunction(t *testing.T) {
	pred := filter.Build(filter.Set{
		{{Column: "a", Value: "1"}},
		{{Column: "a", Value: "2"}},
	})

	if !pred(table.Record{"a": "1"}) {
		t.Error("expected a=1 to satisfy the first group")
	}
	if !pred(table.Record{"a": "2"}) {
		t.Error("expected a=2 to satisfy the second group")
	}
	if pred(table.Record{"a": "3"}) {
		t.Error("expected a=3 to satisfy neither group")
	}
}

// TestBuild_Conjunction tests AND semantics within a group
func TestBuild_Conjunction(t *testing.T) {
	pred := filter.Build(filter.Set{
		{{Column: "a", Value: "1"}, {Column: "b", Value: "2"}},
	})

	if !pred(table.Record{"a": "1", "b": "2"}) {
		t.Error("expected record matching both pairs to pass")
	}
	if pred(table.Record{"a": "1", "b": "9"}) {
		t.Error("expected record failing one pair to be rejected")
	}
}

// TestBuild_CaseSensitive tests that matching is exact, with no trimming
func TestBuild_CaseSensitive(t *testing.T) {
	pred := filter.Build(filter.Set{{{Column: "a", Value: "abc"}}})

	if pred(table.Record{"a": "ABC"}) {
		t.Error("matching must be case-sensitive")
	}
	if pred(table.Record{"a": " abc"}) {
		t.Error("matching must not trim values")
	}
}

// TestBuild_MissingColumn tests the empty-string assumption: a column the
// record does not carry reads as "", so it only matches an empty expected
// value. This mirrors the merger's permissive missing-column behavior.
func TestBuild_MissingColumn(t *testing.T) {
	pred := filter.Build(filter.Set{{{Column: "missing", Value: "x"}}})
	if pred(table.Record{"a": "1"}) {
		t.Error("missing column must not match a non-empty value")
	}

	empty := filter.Build(filter.Set{{{Column: "missing", Value: ""}}})
	if !empty(table.Record{"a": "1"}) {
		t.Error("missing column reads as empty string and must match \"\"")
	}
}

// TestJoinKeys_Projection tests order and duplicate preservation
func TestJoinKeys_Projection(t *testing.T) {
	keys := filter.JoinKeys([]string{"b", "a", "b"})
	group := keys(table.Record{"a": "1", "b": "2"})

	want := filter.Group{
		{Column: "b", Value: "2"},
		{Column: "a", Value: "1"},
		{Column: "b", Value: "2"},
	}
	if len(group) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(group))
	}
	for i := range want {
		if group[i] != want[i] {
			t.Errorf("pair %d: expected %+v, got %+v", i, want[i], group[i])
		}
	}
}

// TestJoinKeys_MissingColumn tests that absent columns project ""
func TestJoinKeys_MissingColumn(t *testing.T) {
	keys := filter.JoinKeys([]string{"nope"})
	group := keys(table.Record{"a": "1"})

	if group[0].Value != "" {
		t.Errorf("expected empty value for missing column, got %q", group[0].Value)
	}
}
