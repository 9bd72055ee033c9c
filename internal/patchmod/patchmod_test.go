package patchmod

import (
	"path/filepath"
	"testing"
)

func TestTable_AddAndLookup(t *testing.T) {
	tb := NewTable()
	tb.Add("java.base", "/patch/base")
	tb.Add("java.sql", "/patch/sql")

	e := tb.Lookup("java.base")
	if e == nil {
		t.Fatal("java.base not found")
	}
	if e.Path() != "/patch/base" {
		t.Errorf("unexpected path %q", e.Path())
	}
	if tb.Lookup("java.xml") != nil {
		t.Error("lookup of unknown module must return nil")
	}
}

func TestTable_DuplicateModuleAppends(t *testing.T) {
	sep := string(filepath.ListSeparator)
	tb := NewTable()
	tb.Add("java.base", "/a")
	tb.Add("java.sql", "/b")
	tb.Add("java.base", "/c")

	entries := tb.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Module != "java.base" || entries[1].Module != "java.sql" {
		t.Errorf("first-seen order lost: %s, %s", entries[0].Module, entries[1].Module)
	}
	if got := entries[0].Path(); got != "/a"+sep+"/c" {
		t.Errorf("expected appended path, got %q", got)
	}
	paths := entries[0].Paths()
	if len(paths) != 2 || paths[0] != "/a" || paths[1] != "/c" {
		t.Errorf("unexpected path elements %v", paths)
	}
}
