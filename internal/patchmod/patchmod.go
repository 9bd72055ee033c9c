// Package patchmod records module/path pairs from patch-module options. The
// table accumulates paths per module; the boot-search-path builder consumes
// it read-only after resolution.
package patchmod

import (
	"path/filepath"
	"strings"

	"vmargs/internal/argparse"
)

// Entry is one module's accumulated patch path.
type Entry struct {
	Module string
	path   string
}

// Path returns the accumulated path string, joined with the platform list
// separator.
func (e *Entry) Path() string { return e.path }

// Paths returns the individual path elements in append order.
func (e *Entry) Paths() []string {
	return strings.Split(e.path, string(filepath.ListSeparator))
}

// Table is the ordered module patch table.
type Table struct {
	entries []*Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add appends path for module. Duplicate module names append to the same
// accumulated path; a new module gets a tail entry.
func (t *Table) Add(module, path string) {
	if e := t.Lookup(module); e != nil {
		e.path = argparse.AppendPath(e.path, path)
		return
	}
	t.entries = append(t.entries, &Entry{Module: module, path: path})
}

// Lookup returns the entry for an exact module name, or nil.
func (t *Table) Lookup(module string) *Entry {
	for _, e := range t.entries {
		if e.Module == module {
			return e
		}
	}
	return nil
}

// Entries returns every entry in first-seen order.
func (t *Table) Entries() []*Entry { return t.entries }
