// Package flags defines the canonical flag registry, the alias and
// lifecycle tables, the resolved-flag set with its precedence rules, and the
// classified errors and warnings used throughout the resolution pipeline.
package flags

// Origin records which input source produced a resolved flag value. Larger
// values take precedence; a later write only overwrites an earlier one when
// its origin is equal or higher.
type Origin int

const (
	// OriginDefault marks compiled-in and ergonomically chosen values.
	OriginDefault Origin = iota
	// OriginEnvToolOptions marks values from the VM_TOOL_OPTIONS variable.
	OriginEnvToolOptions
	// OriginEnvOptions marks values from the VM_OPTIONS variable.
	OriginEnvOptions
	// OriginOptionsFile marks values spliced in from an options file.
	OriginOptionsFile
	// OriginCommandLine marks values given directly on the command line.
	OriginCommandLine
)

func (o Origin) String() string {
	switch o {
	case OriginDefault:
		return "default"
	case OriginEnvToolOptions:
		return "env:VM_TOOL_OPTIONS"
	case OriginEnvOptions:
		return "env:VM_OPTIONS"
	case OriginOptionsFile:
		return "options file"
	case OriginCommandLine:
		return "command line"
	default:
		return "unknown"
	}
}
