package flags

import "fmt"

// Resolved is one canonical flag's current value and provenance.
type Resolved struct {
	Name   string
	Value  any
	Origin Origin
}

// Set holds at most one resolved value per canonical flag name. Reads fall
// back to the registry default when no write happened.
type Set struct {
	values map[string]*Resolved
}

// NewSet returns a set holding only registry defaults.
func NewSet() *Set {
	return &Set{values: make(map[string]*Resolved)}
}

// Set records value for a canonical flag with the given origin. A write
// with an origin lower than the current resolution is dropped; an equal or
// higher origin overwrites. Writing a conflicting value to a collector
// selector at equal (non-default) precedence is a hard error rather than
// an overwrite.
func (s *Set) Set(name string, value any, origin Origin) error {
	def := Lookup(name)
	if def == nil {
		return Errorf(UnknownOption, name, "flag is not in the registry")
	}
	if cur, ok := s.values[name]; ok {
		if origin < cur.Origin {
			return nil
		}
		if def.Collector && origin == cur.Origin && origin != OriginDefault && cur.Value != value {
			return Errorf(ConflictingSelection, name,
				"conflicting collector selection from the same source (%s)", origin)
		}
	}
	s.values[name] = &Resolved{Name: name, Value: value, Origin: origin}
	return nil
}

// SetErgo records an ergonomically chosen value unless the flag was set
// explicitly by any input source. Explicit user values are never
// overwritten by ergonomics.
func (s *Set) SetErgo(name string, value any) {
	if s.Explicit(name) {
		return
	}
	s.values[name] = &Resolved{Name: name, Value: value, Origin: OriginDefault}
}

// Explicit reports whether the flag was set by an input source rather than
// a default or ergonomics.
func (s *Set) Explicit(name string) bool {
	r, ok := s.values[name]
	return ok && r.Origin > OriginDefault
}

// Origin returns the provenance of the flag's current value.
func (s *Set) Origin(name string) Origin {
	if r, ok := s.values[name]; ok {
		return r.Origin
	}
	return OriginDefault
}

func (s *Set) value(name string) any {
	if r, ok := s.values[name]; ok {
		return r.Value
	}
	if def := Lookup(name); def != nil {
		return def.Default
	}
	panic(fmt.Sprintf("flags: %s is not in the registry", name))
}

// Bool returns the current value of a Bool flag.
func (s *Set) Bool(name string) bool {
	return s.value(name).(bool)
}

// Uintx returns the current value of a Uintx flag.
func (s *Set) Uintx(name string) uint64 {
	return s.value(name).(uint64)
}

// Size returns the current value of a MemorySize flag in bytes.
func (s *Set) Size(name string) uint64 {
	return s.value(name).(uint64)
}

// Str returns the current value of a String flag.
func (s *Set) Str(name string) string {
	return s.value(name).(string)
}

// Value returns the current value of any flag as an untyped result.
func (s *Set) Value(name string) any {
	return s.value(name)
}
