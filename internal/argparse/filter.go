package argparse

import (
	"fmt"
	"strings"
)

// MethodFilter selects class/method pairs for compilation control. Patterns
// grow two parallel lists: class entries with an "all methods" marker and
// method entries with an "all classes" marker. Lookup is a linear scan where
// the first matching class entry decides.
type MethodFilter struct {
	classes    []string
	allMethods []bool
	methods    []string
	allClasses []bool
}

// ParseMethodFilter parses a newline- or comma-delimited filter
// specification.
func ParseMethodFilter(text string) (*MethodFilter, error) {
	f := &MethodFilter{}
	if err := f.AddPatterns(text); err != nil {
		return nil, err
	}
	return f, nil
}

// AddPatterns parses and accumulates every pattern in a newline- or
// comma-delimited specification.
func (f *MethodFilter) AddPatterns(text string) error {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	for _, line := range lines {
		if err := f.AddPattern(line); err != nil {
			return err
		}
	}
	return nil
}

// AddPattern parses one filter pattern. Recognized forms:
//
//	Class::method  or  Class.method   select one method of one class
//	Class.                            select every method of the class
//	.method  or  method               select the method in every class
//
// A dotted class name splits at the last dot, so "pkg.Cls.run" names the
// method "run" on class "pkg.Cls".
func (f *MethodFilter) AddPattern(pattern string) error {
	p := strings.TrimSpace(pattern)
	if p == "" {
		return nil
	}
	var class, method string
	switch {
	case strings.Contains(p, "::"):
		i := strings.Index(p, "::")
		class, method = p[:i], p[i+2:]
	case strings.HasSuffix(p, "."):
		class = strings.TrimSuffix(p, ".")
	case strings.HasPrefix(p, "."):
		method = strings.TrimPrefix(p, ".")
	case strings.Contains(p, "."):
		i := strings.LastIndex(p, ".")
		class, method = p[:i], p[i+1:]
	default:
		method = p
	}
	if class == "" && method == "" {
		return fmt.Errorf("empty compile filter pattern %q", pattern)
	}
	if class != "" {
		f.classes = append(f.classes, class)
		f.allMethods = append(f.allMethods, method == "")
	}
	if method != "" {
		f.methods = append(f.methods, method)
		f.allClasses = append(f.allClasses, class == "")
	}
	return nil
}

// Empty reports whether no patterns have been added.
func (f *MethodFilter) Empty() bool {
	return len(f.classes) == 0 && len(f.methods) == 0
}

// Matches reports whether the class/method pair is selected. The first
// class entry equal to class decides: an all-methods entry matches any
// method, otherwise membership in the method list decides. A method entry
// marked all-classes matches regardless of class.
func (f *MethodFilter) Matches(class, method string) bool {
	for i, c := range f.classes {
		if c != class {
			continue
		}
		if f.allMethods[i] {
			return true
		}
		for _, m := range f.methods {
			if m == method {
				return true
			}
		}
		return false
	}
	for i, m := range f.methods {
		if m == method && f.allClasses[i] {
			return true
		}
	}
	return false
}
