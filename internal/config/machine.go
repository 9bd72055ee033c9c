package config

// Machine supplies the host characteristics the ergonomics stages consult.
// The real implementation lives in internal/sysinfo; tests inject fakes.
// The engine itself never queries the operating system.
type Machine interface {
	// CPUCount is the number of processors available to the process.
	CPUCount() int
	// PhysicalMemory is the machine's physical memory in bytes.
	PhysicalMemory() uint64
	// AllocatableMemory caps size by the memory this process is currently
	// allowed to allocate or reserve.
	AllocatableMemory(size uint64) uint64
	// PageSize is the default virtual memory page size.
	PageSize() uint64
	// LargePageSize is the page size used when large pages are enabled.
	LargePageSize() uint64
}

// serverClass reports whether the machine qualifies for the throughput
// heuristics: at least two processors and at least two gibibytes of
// physical memory, unless the user opted out.
func (c *Context) serverClass(m Machine) bool {
	if c.Flags.Bool("NeverActAsServerClassMachine") {
		return false
	}
	return m.CPUCount() >= 2 && m.PhysicalMemory() >= 2<<30
}
