// Package props implements the ordered system-property list owned by the
// resolution pipeline. Properties are appended in resolution order; a key is
// unique within the list. Internal properties are invisible to external
// enumeration.
package props

import "vmargs/internal/argparse"

// Property is one key/value node. Writeable controls whether external
// callers may replace the value after resolution; Internal hides the node
// from external enumeration.
type Property struct {
	Key       string
	Value     string
	Writeable bool
	Internal  bool
}

// Append extends the value with the platform list separator. This bypasses
// the writeable check: the boot append path is non-writeable but still grows
// through late bootstrap search additions.
func (p *Property) Append(value string) {
	p.Value = argparse.AppendPath(p.Value, value)
}

// List is the ordered property list. It owns every node added to it.
type List struct {
	entries []*Property
}

// NewList returns an empty property list.
func NewList() *List {
	return &List{}
}

// Add appends a node at the tail without a uniqueness check. Callers use it
// only for keys known not to be present yet.
func (l *List) Add(p *Property) {
	l.entries = append(l.entries, p)
}

// UniqueAdd sets key to value. If the key exists its node keeps its list
// position: appendMode extends the existing value with the list separator,
// otherwise the value is replaced. A new key is appended at the tail as a
// writeable, non-internal node.
func (l *List) UniqueAdd(key, value string, appendMode bool) {
	for _, p := range l.entries {
		if p.Key == key {
			if appendMode {
				p.Append(value)
			} else {
				p.Value = value
			}
			return
		}
	}
	l.Add(&Property{Key: key, Value: value, Writeable: true})
}

// Lookup returns the node for key, or nil.
func (l *List) Lookup(key string) *Property {
	for _, p := range l.entries {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// Get returns the value for key and whether it is present.
func (l *List) Get(key string) (string, bool) {
	if p := l.Lookup(key); p != nil {
		return p.Value, true
	}
	return "", false
}

// SetWriteableValue replaces the value for key only when the property is
// writeable. It reports whether the write happened.
func (l *List) SetWriteableValue(key, value string) bool {
	p := l.Lookup(key)
	if p == nil || !p.Writeable {
		return false
	}
	p.Value = value
	return true
}

// External returns the properties visible to external consumers, in list
// order, skipping internal nodes.
func (l *List) External() []*Property {
	var out []*Property
	for _, p := range l.entries {
		if !p.Internal {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of nodes, including internal ones.
func (l *List) Count() int {
	return len(l.entries)
}

// KeyAt returns the key of the node at index i in list order.
func (l *List) KeyAt(i int) string {
	return l.entries[i].Key
}

// ValueAt returns the value of the node at index i in list order.
func (l *List) ValueAt(i int) string {
	return l.entries[i].Value
}
