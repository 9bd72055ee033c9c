// Package options collects the raw option sources into one ordered token
// stream with provenance, expanding options-file references in place. File
// access goes through the FileReader collaborator; the package performs no
// I/O of its own.
package options

import "vmargs/internal/flags"

// Token is one raw option annotated with its provenance.
type Token struct {
	Raw    string
	Origin flags.Origin
	// Depth is the options-file nesting depth the token came from; zero for
	// tokens taken directly from an environment variable or the command
	// line.
	Depth int
}

// FileReader abstracts options-file access.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Environ abstracts environment-variable lookup.
type Environ func(key string) string

// The two environment option sources, in ascending precedence.
const (
	EnvToolOptions = "VM_TOOL_OPTIONS"
	EnvOptions     = "VM_OPTIONS"
)
