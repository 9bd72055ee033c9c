// Package config implements the startup resolution pipeline: it merges the
// option sources, normalizes each token into the resolved flag set and the
// property/agent/patch structures, and runs the staged ergonomics that
// produce the final runtime configuration.
package config

import (
	"strings"

	"vmargs/internal/agents"
	"vmargs/internal/argparse"
	"vmargs/internal/flags"
	"vmargs/internal/options"
	"vmargs/internal/patchmod"
	"vmargs/internal/props"
)

// Mode is the execution mode selected by -Xint, -Xmixed or -Xcomp.
type Mode int

const (
	// ModeMixed interprets and compiles hot methods (the default).
	ModeMixed Mode = iota
	// ModeInt is interpreter-only execution.
	ModeInt
	// ModeComp compiles everything before first execution.
	ModeComp
)

func (m Mode) String() string {
	switch m {
	case ModeInt:
		return "interpreted"
	case ModeComp:
		return "compiled"
	default:
		return "mixed"
	}
}

// Collector enumerates the garbage collectors.
type Collector int

const (
	// NoCollector is the unselected state before ergonomics run.
	NoCollector Collector = iota
	// SerialGC is the single-threaded stop-the-world collector.
	SerialGC
	// ParallelGC is the multi-threaded throughput collector.
	ParallelGC
	// ConcMarkSweepGC is the concurrent low-pause collector.
	ConcMarkSweepGC
	// G1GC is the region-based incremental collector.
	G1GC
)

func (c Collector) String() string {
	switch c {
	case SerialGC:
		return "serial"
	case ParallelGC:
		return "parallel"
	case ConcMarkSweepGC:
		return "concmarksweep"
	case G1GC:
		return "g1"
	default:
		return "unselected"
	}
}

// collectorFlags maps each collector to its selector flag, in a fixed order
// so diagnostics are deterministic.
var collectorFlags = []struct {
	name string
	gc   Collector
}{
	{"UseSerialGC", SerialGC},
	{"UseParallelGC", ParallelGC},
	{"UseConcMarkSweepGC", ConcMarkSweepGC},
	{"UseG1GC", G1GC},
}

// HeapConfig is the resolved heap geometry. After resolution
// Min <= Initial <= Max holds and Alignment divides all three.
type HeapConfig struct {
	Min            uint64 `yaml:"min_bytes" json:"min_bytes"`
	Initial        uint64 `yaml:"initial_bytes" json:"initial_bytes"`
	Max            uint64 `yaml:"max_bytes" json:"max_bytes"`
	Alignment      uint64 `yaml:"alignment_bytes" json:"alignment_bytes"`
	CompressedOops bool   `yaml:"compressed_oops" json:"compressed_oops"`
}

// Well-known property keys seeded at context construction.
const (
	PropVMHome              = "vm.home"
	PropLibraryPath         = "vm.library.path"
	PropClassPath           = "vm.class.path"
	PropBootClassPathAppend = "vm.boot.class.path.append"
)

// Context owns every piece of configuration state the resolution pass
// produces. It is constructed once at startup and passed explicitly; there
// is no process-wide configuration singleton.
type Context struct {
	Flags      *flags.Set
	Properties *props.List
	Agents     *agents.Registry
	PatchTable *patchmod.Table

	Mode Mode
	GC   Collector
	Heap HeapConfig

	compileOnly      *argparse.MethodFilter
	checkCompileOnly bool

	bootClassPathAppend *props.Property

	vmFlags  []string // -XX options, resolution order
	vmArgs   []string // all other VM options, resolution order
	command  []string // trailing application command
	warnings []flags.Warning

	ignoreUnrecognized bool
}

// NewContext returns a context holding registry defaults and the seeded
// well-known properties.
func NewContext() *Context {
	c := &Context{
		Flags:       flags.NewSet(),
		Properties:  props.NewList(),
		Agents:      agents.NewRegistry(),
		PatchTable:  patchmod.NewTable(),
		compileOnly: &argparse.MethodFilter{},
	}
	c.Properties.Add(&props.Property{Key: PropVMHome, Writeable: true})
	c.Properties.Add(&props.Property{Key: PropLibraryPath, Writeable: true})
	c.Properties.Add(&props.Property{Key: PropClassPath, Writeable: true})
	c.bootClassPathAppend = &props.Property{Key: PropBootClassPathAppend, Internal: true}
	c.Properties.Add(c.bootClassPathAppend)
	return c
}

// Warn records a non-fatal classified diagnostic.
func (c *Context) Warn(kind flags.Kind, token, message string) {
	c.warnings = append(c.warnings, flags.Warning{Kind: kind, Token: token, Message: message})
}

// Warnings returns every diagnostic accumulated so far, in order.
func (c *Context) Warnings() []flags.Warning { return c.warnings }

// VMFlags returns the -XX option strings in resolution order.
func (c *Context) VMFlags() []string { return c.vmFlags }

// VMArgs returns the non -XX option strings in resolution order.
func (c *Context) VMArgs() []string { return c.vmArgs }

// Command returns the trailing application command, if any.
func (c *Context) Command() []string { return c.command }

// AppendBootClassPath grows the boot class path append property. The
// property is internal and non-writeable; this is the one sanctioned way to
// extend it, used for -Xbootclasspath/a and late bootstrap-search
// additions.
func (c *Context) AppendBootClassPath(path string) {
	c.bootClassPathAppend.Append(path)
}

// BootClassPathAppend returns the accumulated boot append path.
func (c *Context) BootClassPathAppend() string {
	return c.bootClassPathAppend.Value
}

// ShouldCompile reports whether a method passes the compile-only filter.
// With no filter configured every method passes.
func (c *Context) ShouldCompile(class, method string) bool {
	if !c.checkCompileOnly {
		return true
	}
	return c.compileOnly.Matches(class, method)
}

// Resolve runs the full pipeline: source collection and expansion, token
// normalization, then ergonomics. The returned context is always non-nil so
// accumulated warnings stay reachable; a non-nil error is the first fatal
// classified outcome and means the runtime must not start.
func Resolve(cmdline []string, env options.Environ, fs options.FileReader, m Machine) (*Context, error) {
	c := NewContext()

	// The application command starts at the first token that is not an
	// option; everything after it is opaque to this engine.
	vmOptions := cmdline
	for i, arg := range cmdline {
		if !strings.HasPrefix(arg, "-") {
			vmOptions = cmdline[:i]
			c.command = cmdline[i:]
			break
		}
	}

	stream, err := options.Collect(vmOptions, env, fs)
	if err != nil {
		return c, err
	}

	// Ignore-unrecognized mode must cover tokens that precede the flag, so
	// it is honored stream-wide before normalization starts.
	for _, tok := range stream {
		if tok.Raw == "-XX:+IgnoreUnrecognizedVMOptions" {
			c.ignoreUnrecognized = true
		}
	}

	for _, tok := range stream {
		if err := c.processToken(tok, fs); err != nil {
			return c, err
		}
	}

	if err := c.applyErgonomics(m); err != nil {
		return c, err
	}
	return c, nil
}
