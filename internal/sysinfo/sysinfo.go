// Package sysinfo is the host-query collaborator for the ergonomics
// stages: processor count, physical memory, page sizes, and the
// allocatable-memory cap. It is injected into the pipeline; the resolution
// engine never queries the operating system directly.
package sysinfo

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// fallbackPhysicalMemory is used when the host does not expose a readable
// memory total.
const fallbackPhysicalMemory = uint64(4) << 30

// defaultLargePageSize matches the common huge-page configuration.
const defaultLargePageSize = uint64(2) << 20

// Host implements the machine interface consumed by the ergonomics
// resolver. Values are captured once at construction.
type Host struct {
	cpus     int
	physical uint64
	pageSize uint64
}

// New captures the host characteristics.
func New() *Host {
	return &Host{
		cpus:     runtime.NumCPU(),
		physical: readPhysicalMemory(),
		pageSize: uint64(os.Getpagesize()),
	}
}

// CPUCount returns the number of processors available to the process.
func (h *Host) CPUCount() int { return h.cpus }

// PhysicalMemory returns the machine's physical memory in bytes.
func (h *Host) PhysicalMemory() uint64 { return h.physical }

// PageSize returns the default virtual memory page size.
func (h *Host) PageSize() uint64 { return h.pageSize }

// LargePageSize returns the page size used when large pages are enabled.
func (h *Host) LargePageSize() uint64 { return defaultLargePageSize }

// AllocatableMemory caps size by a conservative estimate of what the
// process may still reserve: three quarters of physical memory.
func (h *Host) AllocatableMemory(size uint64) uint64 {
	if limit := h.physical / 4 * 3; size > limit {
		return limit
	}
	return size
}

// readPhysicalMemory scans /proc/meminfo for MemTotal. Hosts without it get
// the fallback value.
func readPhysicalMemory() uint64 {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return fallbackPhysicalMemory
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			break
		}
		return kb << 10
	}
	return fallbackPhysicalMemory
}
