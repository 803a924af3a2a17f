package inquiry

import (
	"path/filepath"
	"testing"
)

// These tests exercise the real gopsutil-backed inquiry. Every query is
// allowed to report unavailable; what it may not do is report ok with a
// nonsense value.

func TestHostInquiryHostname(t *testing.T) {
	sys := NewHostInquiry()
	if name, ok := sys.Hostname(); ok && name == "" {
		t.Error("Hostname reported ok with empty value")
	}
}

func TestHostInquiryPlatform(t *testing.T) {
	sys := NewHostInquiry()
	if p, ok := sys.Platform(); ok && p == "" {
		t.Error("Platform reported ok with empty value")
	}
}

func TestHostInquiryMemoryStats(t *testing.T) {
	sys := NewHostInquiry()
	stats, ok := sys.MemoryStats()
	if !ok {
		t.Skip("memory stats unavailable on this system")
	}
	if stats.TotalMB <= 0 {
		t.Errorf("TotalMB = %v, want > 0", stats.TotalMB)
	}
	if stats.FreeMB < 0 || stats.FreeMB > stats.TotalMB {
		t.Errorf("FreeMB = %v out of range for total %v", stats.FreeMB, stats.TotalMB)
	}
}

func TestHostInquiryDiskStats(t *testing.T) {
	sys := NewHostInquiry()
	stats, ok := sys.DiskStats(RootDiskPath())
	if !ok {
		t.Skip("disk stats unavailable on this system")
	}
	if stats.TotalGB <= 0 {
		t.Errorf("TotalGB = %v, want > 0", stats.TotalGB)
	}
}

func TestHostInquiryListProcesses(t *testing.T) {
	sys := NewHostInquiry()
	procs, ok := sys.ListProcesses()
	if !ok {
		t.Skip("process enumeration unavailable on this system")
	}
	if len(procs) == 0 {
		t.Error("enumeration succeeded but returned no processes")
	}
	for _, p := range procs {
		if p.PID <= 0 {
			t.Errorf("process with non-positive pid: %+v", p)
			break
		}
	}
}

func TestRootDiskPath(t *testing.T) {
	if !filepath.IsAbs(RootDiskPath()) {
		t.Errorf("RootDiskPath() = %q, want absolute path", RootDiskPath())
	}
}
