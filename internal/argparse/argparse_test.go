package argparse

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMemorySize(t *testing.T) {
	tests := []struct {
		text   string
		min    uint64
		value  uint64
		status RangeStatus
	}{
		{"512m", 0, 512 << 20, InRange},
		{"512M", 0, 512 << 20, InRange},
		{"4k", 0, 4 << 10, InRange},
		{"4K", 0, 4 << 10, InRange},
		{"2g", 0, 2 << 30, InRange},
		{"2G", 0, 2 << 30, InRange},
		{"1024", 0, 1024, InRange},
		{"0", 0, 0, InRange},
		{"0g", 1, 0, TooSmall},
		{"64k", 1 << 20, 0, TooSmall},
		{"99999999999999g", 0, 0, TooBig},
		{"18446744073709551616", 0, 0, TooBig}, // one past 2^64-1
		{"abc", 0, 0, Unreadable},
		{"", 0, 0, Unreadable},
		{"g", 0, 0, Unreadable},
		{"12q", 0, 0, Unreadable},
		{"-5m", 0, 0, Unreadable},
		{"1.5g", 0, 0, Unreadable},
		{"0x10", 0, 0, Unreadable},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			value, status := ParseMemorySize(tt.text, tt.min)
			assert.Equal(t, tt.status, status)
			if tt.status == InRange {
				assert.Equal(t, tt.value, value)
			}
		})
	}
}

func TestParseMemorySize_MinBoundary(t *testing.T) {
	value, status := ParseMemorySize("1m", 1<<20)
	assert.Equal(t, InRange, status)
	assert.Equal(t, uint64(1)<<20, value)
}

func TestParseUintx(t *testing.T) {
	tests := []struct {
		text  string
		min   uint64
		value uint64
		ok    bool
	}{
		{"0", 0, 0, true},
		{"42", 0, 42, true},
		{"42", 42, 42, true},
		{"41", 42, 0, false},
		{"-1", 0, 0, false},
		{"4.2", 0, 0, false},
		{"", 0, 0, false},
		{"forty", 0, 0, false},
		{"18446744073709551615", 0, 1<<64 - 1, true},
		{"18446744073709551616", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			value, ok := ParseUintx(tt.text, tt.min)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.value, value)
			}
		})
	}
}

func TestAppendPath(t *testing.T) {
	sep := string(filepath.ListSeparator)
	assert.Equal(t, "/a", AppendPath("", "/a"))
	assert.Equal(t, "/a"+sep+"/b", AppendPath("/a", "/b"))
	assert.Equal(t, "/a", AppendPath("/a", ""))
	assert.Equal(t, "/a"+sep+"/b"+sep+"/c", AppendPath(AppendPath("/a", "/b"), "/c"))
}
