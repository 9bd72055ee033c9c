package config

import (
	"strings"

	"vmargs/internal/flags"
)

// applyErgonomics runs the staged decision procedure that fills in the
// configuration the user left unspecified. The stages are strictly ordered
// and never revisited: collector selection, conservative heap alignment,
// heap sizing, default flag bundles, final consistency check.
func (c *Context) applyErgonomics(m Machine) error {
	if err := c.selectGC(m); err != nil {
		return err
	}
	c.computeAlignment(m)
	if err := c.setHeapSize(m); err != nil {
		return err
	}
	c.applyGCFlags(m)
	c.applyModeFlags()
	return c.checkConsistency()
}

// selectGC picks the collector. More than one explicitly enabled selector
// is fatal; exactly one wins; none selects ergonomically from the machine
// class. The selection is terminal.
func (c *Context) selectGC(m Machine) error {
	var chosen []string
	for _, cf := range collectorFlags {
		if c.Flags.Explicit(cf.name) && c.Flags.Bool(cf.name) {
			chosen = append(chosen, cf.name)
			c.GC = cf.gc
		}
	}
	if len(chosen) > 1 {
		return flags.Errorf(flags.ConflictingSelection, strings.Join(chosen, ", "),
			"multiple garbage collectors selected")
	}
	if len(chosen) == 0 {
		// Heuristic selection skips any collector the user explicitly
		// disabled, so the chosen collector never contradicts the flag set.
		prefer := []Collector{SerialGC, G1GC, ParallelGC, ConcMarkSweepGC}
		if c.serverClass(m) {
			prefer = []Collector{G1GC, SerialGC, ParallelGC, ConcMarkSweepGC}
		}
		c.GC = NoCollector
		for _, gc := range prefer {
			if !c.collectorDisabled(gc) {
				c.GC = gc
				break
			}
		}
		if c.GC == NoCollector {
			return flags.Errorf(flags.ConflictingSelection, "",
				"every garbage collector is explicitly disabled")
		}
	}
	for _, cf := range collectorFlags {
		c.Flags.SetErgo(cf.name, cf.gc == c.GC)
	}
	return nil
}

// collectorDisabled reports whether the user explicitly turned the
// collector's selector flag off.
func (c *Context) collectorDisabled(gc Collector) bool {
	for _, cf := range collectorFlags {
		if cf.gc == gc {
			return c.Flags.Explicit(cf.name) && !c.Flags.Bool(cf.name)
		}
	}
	return false
}

// Alignment inputs. All are powers of two; the conservative maximum heap
// alignment is their least common multiple.
const (
	// genHeapGranularity is the reservation granularity of the
	// generational collectors.
	genHeapGranularity = uint64(2) << 20
	// g1RegionGranularity is the largest region size G1 may choose.
	g1RegionGranularity = uint64(32) << 20
	// compressedOopsAlignment is the heap base alignment narrow reference
	// decoding requires.
	compressedOopsAlignment = uint64(64) << 10
	// maxHeapForCompressedOops is the largest heap addressable through
	// narrow references.
	maxHeapForCompressedOops = uint64(32) << 30
)

// computeAlignment derives the conservative maximum heap alignment from the
// chosen collector's granularity, the page size implied by the large-page
// settings, and the alignment narrow references would require. Compressed
// addressing eligibility is settled later, during sizing; the alignment
// stays conservative either way.
func (c *Context) computeAlignment(m Machine) {
	align := genHeapGranularity
	if c.GC == G1GC {
		align = lcm(align, g1RegionGranularity)
	}
	page := m.PageSize()
	if c.Flags.Bool("UseLargePages") {
		page = m.LargePageSize()
	}
	align = lcm(align, page)
	if c.Flags.Bool("UseCompressedOops") {
		align = lcm(align, compressedOopsAlignment)
	}
	c.Heap.Alignment = align
}

// applyGCFlags installs the chosen collector's default tuning for every
// flag the user did not set explicitly.
func (c *Context) applyGCFlags(m Machine) {
	f := c.Flags
	cpus := uint64(m.CPUCount())
	if cpus == 0 {
		cpus = 1
	}
	switch c.GC {
	case G1GC:
		f.SetErgo("ParallelGCThreads", cpus)
		f.SetErgo("ConcGCThreads", max(1, (cpus+2)/4))
		f.SetErgo("MaxGCPauseMillis", uint64(200))
		f.SetErgo("G1HeapRegionSize", g1RegionSize(c.Heap.Max))
	case ParallelGC:
		f.SetErgo("ParallelGCThreads", cpus)
	case ConcMarkSweepGC:
		f.SetErgo("ParallelGCThreads", cpus)
		f.SetErgo("ConcGCThreads", max(1, (cpus+3)/4))
	case SerialGC:
		f.SetErgo("ParallelGCThreads", uint64(1))
	}
}

// g1RegionSize picks the power-of-two region size targeting about 2048
// regions, clamped to [1 MiB, 32 MiB].
func g1RegionSize(maxHeap uint64) uint64 {
	size := uint64(1) << 20
	for size < g1RegionGranularity && size*2048 < maxHeap {
		size <<= 1
	}
	return size
}

// applyModeFlags installs the compilation-mode default bundle. Explicit
// user values always win over the bundle.
func (c *Context) applyModeFlags() {
	f := c.Flags
	switch c.Mode {
	case ModeInt:
		f.SetErgo("UseCompiler", false)
		f.SetErgo("ProfileInterpreter", false)
		f.SetErgo("TieredCompilation", false)
		f.SetErgo("BackgroundCompilation", false)
	case ModeComp:
		f.SetErgo("UseCompiler", true)
		f.SetErgo("ProfileInterpreter", true)
		f.SetErgo("BackgroundCompilation", false)
		f.SetErgo("AlwaysCompileLoopMethods", true)
		f.SetErgo("UseOnStackReplacement", false)
		f.SetErgo("ClipInlining", false)
	case ModeMixed:
		// Registry defaults already describe mixed mode.
	}
}

// checkConsistency re-validates the complete resolved flag set after every
// stage has run. Contradictions here are programming-adjacent user errors:
// the configuration is well-formed token by token but impossible as a
// whole.
func (c *Context) checkConsistency() error {
	f := c.Flags
	if f.Uintx("TieredStopAtLevel") > 4 {
		return flags.Errorf(flags.RangeError, "TieredStopAtLevel",
			"tier %d is not supported", f.Uintx("TieredStopAtLevel"))
	}
	if f.Explicit("BackgroundCompilation") && f.Bool("BackgroundCompilation") && !f.Bool("UseCompiler") {
		return flags.Errorf(flags.ConflictingSelection, "BackgroundCompilation",
			"background compilation requires the compiler")
	}
	if f.Explicit("TieredCompilation") && f.Bool("TieredCompilation") && !f.Bool("UseCompiler") {
		return flags.Errorf(flags.ConflictingSelection, "TieredCompilation",
			"tiered compilation requires the compiler")
	}
	if f.Explicit("G1HeapRegionSize") && c.GC != G1GC {
		c.Warn(flags.ConflictingSelection, "G1HeapRegionSize",
			"flag has no effect with the "+c.GC.String()+" collector")
	}
	if f.Explicit("MaxGCPauseMillis") && c.GC == SerialGC {
		c.Warn(flags.ConflictingSelection, "MaxGCPauseMillis",
			"pause time goal has no effect with the serial collector")
	}
	return nil
}

func lcm(a, b uint64) uint64 {
	return a / gcd(a, b) * b
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
