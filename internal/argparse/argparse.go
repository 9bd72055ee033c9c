// Package argparse holds the typed value parsers used during VM option
// resolution: memory sizes with unit suffixes, bounded unsigned integers,
// platform path-list accumulation, and the class/method compile filter.
package argparse

import (
	"errors"
	"math"
	"path/filepath"
	"strconv"
)

// RangeStatus classifies the outcome of parsing a bounded memory size.
type RangeStatus int

const (
	// InRange means the value parsed and satisfies the minimum.
	InRange RangeStatus = iota
	// TooSmall means the value parsed but is below the minimum.
	TooSmall
	// TooBig means the value overflows a 64-bit byte count.
	TooBig
	// Unreadable means the text is not a size literal at all.
	Unreadable
)

func (s RangeStatus) String() string {
	switch s {
	case InRange:
		return "in range"
	case TooSmall:
		return "too small"
	case TooBig:
		return "too big"
	default:
		return "unreadable"
	}
}

// ParseMemorySize parses an unsigned decimal literal with an optional
// single-letter unit suffix (k/K, m/M, g/G for KiB, MiB, GiB) and checks the
// resulting byte count against min. Overflow is detected before the
// multiplication wraps. The returned value is meaningful only when the
// status is InRange.
func ParseMemorySize(text string, min uint64) (uint64, RangeStatus) {
	if text == "" {
		return 0, Unreadable
	}
	digits := text
	var mult uint64 = 1
	switch text[len(text)-1] {
	case 'k', 'K':
		mult = 1 << 10
		digits = text[:len(text)-1]
	case 'm', 'M':
		mult = 1 << 20
		digits = text[:len(text)-1]
	case 'g', 'G':
		mult = 1 << 30
		digits = text[:len(text)-1]
	}
	if digits == "" {
		return 0, Unreadable
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// A literal that is numeric but exceeds 64 bits is a size problem,
		// not a syntax problem.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, TooBig
		}
		return 0, Unreadable
	}
	if n != 0 && n > math.MaxUint64/mult {
		return 0, TooBig
	}
	value := n * mult
	if value < min {
		return 0, TooSmall
	}
	return value, InRange
}

// ParseUintx parses a non-negative decimal integer. It reports failure when
// the text is malformed or the value is below min.
func ParseUintx(text string, min uint64) (uint64, bool) {
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil || n < min {
		return 0, false
	}
	return n, true
}

// AppendPath joins next onto an accumulated path string using the platform
// list separator. An empty accumulated value yields next unchanged.
func AppendPath(existing, next string) string {
	if next == "" {
		return existing
	}
	if existing == "" {
		return next
	}
	return existing + string(filepath.ListSeparator) + next
}
