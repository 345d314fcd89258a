package outline

import (
	"fmt"
	"reflect"
	"testing"

	"dial-cli/internal/model"
)

func rowIDs(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, fmt.Sprintf("%s@%d", r.Task.ID, r.Depth))
	}
	return out
}

// Tree:
//
//	a
//	  b
//	    c
//	  d
//	e
func deepForest() model.Forest {
	return model.Forest{
		{ID: "a", Children: []*model.Task{
			{ID: "b", ParentID: "a", Children: []*model.Task{
				{ID: "c", ParentID: "b"},
			}},
			{ID: "d", ParentID: "a"},
		}},
		{ID: "e"},
	}
}

func TestFlatten_RootAndChildScenario(t *testing.T) {
	forest := model.Forest{
		{ID: "1", Title: "Root", Children: []*model.Task{{ID: "2", Title: "Child", ParentID: "1"}}},
	}
	expanded := NewExpandSet("1")

	rows := Flatten(forest, expanded)
	if got, want := rowIDs(rows), []string{"1@0", "2@1"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if rows[0].Marker() != MarkerExpanded || rows[1].Marker() != MarkerLeaf {
		t.Fatalf("unexpected markers: %v %v", rows[0].Marker(), rows[1].Marker())
	}

	var c Cursor
	c.Down(len(rows))
	if c.Index() != 1 {
		t.Fatalf("expected cursor 1, got %d", c.Index())
	}

	expanded.Collapse("1")
	rows = Flatten(forest, expanded)
	if got, want := rowIDs(rows), []string{"1@0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if rows[0].Marker() != MarkerCollapsed {
		t.Fatalf("expected collapsed marker, got %v", rows[0].Marker())
	}
	c.Clamp(len(rows))
	if c.Index() != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", c.Index())
	}
}

func TestFlatten_CollapsedParentHidesExpandedDescendants(t *testing.T) {
	// b is expanded but a is not: neither b's nor c's rows may appear.
	rows := Flatten(deepForest(), NewExpandSet("b"))
	if got, want := rowIDs(rows), []string{"a@0", "e@0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlatten_DepthCountsExpandedAncestors(t *testing.T) {
	rows := Flatten(deepForest(), NewExpandSet("a", "b"))
	if got, want := rowIDs(rows), []string{"a@0", "b@1", "c@2", "d@1", "e@0"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlatten_IsDeterministic(t *testing.T) {
	forest := deepForest()
	expanded := NewExpandSet("a", "b", "zzz")
	first := Flatten(forest, expanded)
	second := Flatten(forest, expanded)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical projections, got %v vs %v", rowIDs(first), rowIDs(second))
	}
}

func TestFlatten_IgnoresAdvisoryTreeHints(t *testing.T) {
	forest := model.Forest{
		{ID: "x", HasChildren: true, ChildrenCount: 3, TreeDepth: 4},
	}
	rows := Flatten(forest, NewExpandSet("x"))
	if len(rows) != 1 || rows[0].Depth != 0 || rows[0].HasChildren {
		t.Fatalf("expected server hints to be ignored, got %+v", rows)
	}
}

func TestFlatten_EmptyForest(t *testing.T) {
	if rows := Flatten(nil, NewExpandSet("a")); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rowIDs(rows))
	}
}

func TestExpandSet_StaleIdsAreInert(t *testing.T) {
	s := NewExpandSet("gone")
	rows := Flatten(deepForest(), s)
	if len(rows) != 2 {
		t.Fatalf("expected only roots, got %v", rowIDs(rows))
	}
	if !s.Has("gone") || s.Len() != 1 {
		t.Fatalf("expected stale id to remain in the set")
	}
	if !s.Toggle("a") || s.Toggle("a") {
		t.Fatalf("expected toggle to flip membership")
	}
	s.Expand("")
	if s.Has("") {
		t.Fatalf("expected empty id to be ignored")
	}
}

func TestCursor_ClampsAtBothEnds(t *testing.T) {
	var c Cursor
	c.Up()
	if c.Index() != 0 {
		t.Fatalf("expected up from 0 to stay at 0, got %d", c.Index())
	}
	for i := 0; i < 10; i++ {
		c.Down(3)
	}
	if c.Index() != 2 {
		t.Fatalf("expected down to stop at 2, got %d", c.Index())
	}
	c.Clamp(1)
	if c.Index() != 0 {
		t.Fatalf("expected clamp to 0, got %d", c.Index())
	}
	c.Set(7, 4)
	if c.Index() != 3 {
		t.Fatalf("expected set to clamp to 3, got %d", c.Index())
	}
}

func TestCursor_EmptyProjection(t *testing.T) {
	var c Cursor
	c.Down(0)
	c.Up()
	c.Clamp(0)
	if c.Index() != 0 {
		t.Fatalf("expected cursor 0 on empty projection, got %d", c.Index())
	}
	if _, ok := c.Current(nil); ok {
		t.Fatalf("expected no current row on empty projection")
	}
}

func TestCursor_CurrentResolvesRow(t *testing.T) {
	rows := Flatten(deepForest(), NewExpandSet("a"))
	var c Cursor
	c.Down(len(rows))
	c.Down(len(rows))
	row, ok := c.Current(rows)
	if !ok || row.Task.ID != "d" || row.Depth != 1 {
		t.Fatalf("expected d@1, got %+v (ok=%v)", row, ok)
	}
}
