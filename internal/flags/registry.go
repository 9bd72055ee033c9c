package flags

import "sort"

// Type is the declared value type of a flag definition.
type Type int

const (
	// Bool flags use the +name / -name toggle syntax.
	Bool Type = iota
	// Uintx flags take a non-negative decimal value.
	Uintx
	// MemorySize flags take a decimal value with an optional k/m/g suffix.
	MemorySize
	// String flags take the value text verbatim.
	String
)

// Definition describes one canonical flag.
type Definition struct {
	Name string
	Type Type
	// Default is the compiled-in value: bool, uint64, or string by Type.
	Default any
	// Collector marks the mutually exclusive garbage collector selectors.
	Collector bool
	// Min is the lower bound applied when parsing Uintx and MemorySize
	// values from the option stream.
	Min uint64
}

// definitions is the compiled-in flag table. Ergonomics may replace a
// default; user input may replace anything, subject to origin precedence.
var definitions = []Definition{
	// Garbage collector selection
	{Name: "UseSerialGC", Type: Bool, Default: false, Collector: true},
	{Name: "UseParallelGC", Type: Bool, Default: false, Collector: true},
	{Name: "UseConcMarkSweepGC", Type: Bool, Default: false, Collector: true},
	{Name: "UseG1GC", Type: Bool, Default: false, Collector: true},

	// Heap geometry
	{Name: "MinHeapSize", Type: MemorySize, Default: uint64(0)},
	{Name: "InitialHeapSize", Type: MemorySize, Default: uint64(0)},
	{Name: "MaxHeapSize", Type: MemorySize, Default: uint64(96) << 20, Min: 1 << 20},
	{Name: "NewSize", Type: MemorySize, Default: uint64(0)},
	{Name: "MaxNewSize", Type: MemorySize, Default: uint64(0)},
	{Name: "G1HeapRegionSize", Type: MemorySize, Default: uint64(0)},
	{Name: "MarkStackSizeMax", Type: MemorySize, Default: uint64(512) << 20},

	// Heap addressing and paging
	{Name: "UseCompressedOops", Type: Bool, Default: true},
	{Name: "UseLargePages", Type: Bool, Default: false},
	{Name: "UseTLAB", Type: Bool, Default: true},

	// Sizing heuristics
	{Name: "MaxRAMFraction", Type: Uintx, Default: uint64(4), Min: 1},
	{Name: "InitialRAMFraction", Type: Uintx, Default: uint64(64), Min: 1},

	// Collector tuning
	{Name: "ParallelGCThreads", Type: Uintx, Default: uint64(0), Min: 1},
	{Name: "ConcGCThreads", Type: Uintx, Default: uint64(0), Min: 1},
	{Name: "MaxGCPauseMillis", Type: Uintx, Default: uint64(0), Min: 1},
	{Name: "MaxGCMinorPauseMillis", Type: Uintx, Default: uint64(0), Min: 1},

	// Compilation
	{Name: "UseCompiler", Type: Bool, Default: true},
	{Name: "ProfileInterpreter", Type: Bool, Default: true},
	{Name: "BackgroundCompilation", Type: Bool, Default: true},
	{Name: "TieredCompilation", Type: Bool, Default: true},
	{Name: "TieredStopAtLevel", Type: Uintx, Default: uint64(4)},
	{Name: "CICompilerCount", Type: Uintx, Default: uint64(2), Min: 1},
	{Name: "AlwaysCompileLoopMethods", Type: Bool, Default: false},
	{Name: "UseOnStackReplacement", Type: Bool, Default: true},
	{Name: "ClipInlining", Type: Bool, Default: true},
	{Name: "CompileOnly", Type: String, Default: ""},
	{Name: "CompileOnlyFile", Type: String, Default: ""},

	// Threads
	{Name: "ThreadStackSize", Type: Uintx, Default: uint64(1024)},

	// Resolution behavior
	{Name: "IgnoreUnrecognizedVMOptions", Type: Bool, Default: false},
	{Name: "NeverActAsServerClassMachine", Type: Bool, Default: false},
	{Name: "PrintFlagsFinal", Type: Bool, Default: false},
	{Name: "VMOptionsFile", Type: String, Default: ""},

	// Crash handling
	{Name: "CreateCoredumpOnCrash", Type: Bool, Default: true},
}

var byName = func() map[string]*Definition {
	m := make(map[string]*Definition, len(definitions))
	for i := range definitions {
		m[definitions[i].Name] = &definitions[i]
	}
	return m
}()

// Lookup returns the definition for a canonical flag name, or nil.
func Lookup(name string) *Definition {
	return byName[name]
}

// Names returns every canonical flag name in sorted order.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for _, d := range definitions {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}
