package core_test

import (
	"testing"

	"github.com/jotlabs/jot/pkg/core"
)

func TestSanitize(t *testing.T) {
	in := []core.Note{
		{ID: "n1", Title: "first"},
		{},                          // no ID, dropped
		{ID: "n2", Content: "two"},  // content only is valid
		{ID: "n1", Title: "dupe"},   // duplicate ID, first wins
		{ID: "n3"},                  // bare ID is valid
	}

	got := core.Sanitize(in)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "n1" || got[0].Title != "first" {
		t.Errorf("first entry = %+v, want original n1", got[0])
	}
	if got[1].ID != "n2" || got[2].ID != "n3" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestCollection_PrependRemovesDuplicate(t *testing.T) {
	c := core.Collection{{ID: "a"}, {ID: "b"}}
	c = c.Prepend(core.Note{ID: "b", Title: "fresh"})

	if len(c) != 2 {
		t.Fatalf("len = %d, want 2", len(c))
	}
	if c[0].ID != "b" || c[0].Title != "fresh" {
		t.Errorf("head = %+v, want the fresh note", c[0])
	}
	if c[1].ID != "a" {
		t.Errorf("tail = %+v, want a", c[1])
	}
}

func TestCollection_ReplacePreservesPosition(t *testing.T) {
	c := core.Collection{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out, ok := c.Replace(core.Note{ID: "b", Title: "updated"})
	if !ok {
		t.Fatal("Replace reported no match")
	}
	if out[1].Title != "updated" {
		t.Errorf("entry not replaced in place: %+v", out)
	}
	// Source collection is untouched.
	if c[1].Title != "" {
		t.Errorf("Replace mutated the source collection")
	}

	if _, ok := out.Replace(core.Note{ID: "zzz"}); ok {
		t.Error("Replace matched a missing ID")
	}
}

func TestCollection_Remove(t *testing.T) {
	c := core.Collection{{ID: "a"}, {ID: "b"}}
	c = c.Remove("a")
	if len(c) != 1 || c[0].ID != "b" {
		t.Errorf("Remove left %+v", c)
	}
	// Removing an absent ID is a no-op.
	c = c.Remove("a")
	if len(c) != 1 {
		t.Errorf("Remove of absent ID changed the collection")
	}
}
