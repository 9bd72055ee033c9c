package sysinfo

import "testing"

func TestNew(t *testing.T) {
	h := New()
	if h.CPUCount() < 1 {
		t.Errorf("CPUCount = %d", h.CPUCount())
	}
	if h.PhysicalMemory() == 0 {
		t.Error("PhysicalMemory = 0")
	}
	if h.PageSize() == 0 {
		t.Error("PageSize = 0")
	}
	if h.LargePageSize()%h.PageSize() != 0 {
		t.Errorf("large page size %d is not a multiple of page size %d",
			h.LargePageSize(), h.PageSize())
	}
}

func TestAllocatableMemory(t *testing.T) {
	h := &Host{physical: 8 << 30}
	limit := uint64(6) << 30 // three quarters of physical

	if got := h.AllocatableMemory(1 << 30); got != 1<<30 {
		t.Errorf("small request changed: %d", got)
	}
	if got := h.AllocatableMemory(limit); got != limit {
		t.Errorf("request at the limit changed: %d", got)
	}
	if got := h.AllocatableMemory(16 << 30); got != limit {
		t.Errorf("oversized request not capped: %d", got)
	}
}
