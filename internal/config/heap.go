package config

import (
	"math"

	"vmargs/internal/flags"
)

// setHeapSize derives the heap bounds: explicit flags where given,
// otherwise fractions of physical memory capped by what the process may
// allocate. Every size is rounded up to the conservative alignment and the
// Min <= Initial <= Max invariant is restored by raising values, never by
// lowering one the user set explicitly.
func (c *Context) setHeapSize(m Machine) error {
	f := c.Flags
	align := c.Heap.Alignment
	phys := m.PhysicalMemory()

	maxHeap := f.Size("MaxHeapSize")
	if !f.Explicit("MaxHeapSize") {
		reasonable := phys / f.Uintx("MaxRAMFraction")
		reasonable = m.AllocatableMemory(reasonable)
		if reasonable > maxHeap {
			maxHeap = reasonable
		}
	}

	// Compressed addressing eligibility is settled against the final
	// maximum. An explicit request that cannot be honored is demoted with
	// a warning rather than rejected.
	if f.Bool("UseCompressedOops") {
		if maxHeap > maxHeapForCompressedOops {
			c.Heap.CompressedOops = false
			if f.Explicit("UseCompressedOops") {
				c.Warn(flags.RangeError, "UseCompressedOops",
					"maximum heap size is too large for compressed references; disabling them")
			}
		} else {
			c.Heap.CompressedOops = true
		}
	}

	var minHeap uint64
	if f.Explicit("MinHeapSize") {
		minHeap = f.Size("MinHeapSize")
	}

	initialHeap := f.Size("InitialHeapSize")
	if !f.Explicit("InitialHeapSize") {
		reasonable := m.AllocatableMemory(phys / f.Uintx("InitialRAMFraction"))
		if reasonable > maxHeap {
			reasonable = maxHeap
		}
		if reasonable < minHeap {
			reasonable = minHeap
		}
		initialHeap = reasonable
	}
	if minHeap == 0 {
		minHeap = initialHeap
		if def := uint64(8) << 20; minHeap > def {
			minHeap = def
		}
	}

	var ok bool
	if minHeap, ok = alignUp(minHeap, align); !ok {
		return flags.Errorf(flags.RangeError, "MinHeapSize",
			"minimum heap size cannot be rounded up to the %d byte alignment", align)
	}
	if initialHeap, ok = alignUp(initialHeap, align); !ok {
		return flags.Errorf(flags.RangeError, "InitialHeapSize",
			"initial heap size cannot be rounded up to the %d byte alignment", align)
	}
	if maxHeap, ok = alignUp(maxHeap, align); !ok {
		return flags.Errorf(flags.RangeError, "MaxHeapSize",
			"maximum heap size cannot be rounded up to the %d byte alignment", align)
	}

	if minHeap > maxHeap {
		if f.Explicit("MinHeapSize") && f.Explicit("MaxHeapSize") {
			return flags.Errorf(flags.UnreconcilableBound, "MinHeapSize/MaxHeapSize",
				"minimum heap (%d) exceeds explicit maximum heap (%d)", minHeap, maxHeap)
		}
		if f.Explicit("MinHeapSize") {
			maxHeap = minHeap
		} else {
			minHeap = maxHeap
		}
	}
	if initialHeap < minHeap {
		initialHeap = minHeap
	}
	if initialHeap > maxHeap {
		if f.Explicit("InitialHeapSize") && f.Explicit("MaxHeapSize") {
			return flags.Errorf(flags.UnreconcilableBound, "InitialHeapSize/MaxHeapSize",
				"initial heap (%d) exceeds explicit maximum heap (%d)", initialHeap, maxHeap)
		}
		if f.Explicit("InitialHeapSize") {
			maxHeap = initialHeap
		} else {
			initialHeap = maxHeap
		}
	}

	c.Heap.Min = minHeap
	c.Heap.Initial = initialHeap
	c.Heap.Max = maxHeap
	return nil
}

// alignUp rounds size up to the next multiple of align. It reports failure
// when the rounded value does not fit in 64 bits; rounding must never wrap
// a near-limit size down to zero.
func alignUp(size, align uint64) (uint64, bool) {
	rem := size % align
	if rem == 0 {
		return size, true
	}
	pad := align - rem
	if size > math.MaxUint64-pad {
		return 0, false
	}
	return size + pad, true
}
