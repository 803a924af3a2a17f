// Package inquiry isolates all OS-level fact queries behind a capability
// interface. Probes depend on the interface only, so tests can inject fakes
// that simulate unavailable, slow, or malformed answers deterministically.
package inquiry

// MemoryStats holds system memory usage in MB.
type MemoryStats struct {
	TotalMB float64
	FreeMB  float64
}

// DiskStats holds disk usage for one filesystem in GB.
type DiskStats struct {
	TotalGB float64
	FreeGB  float64
}

// LoadStats holds load averages (zero on platforms without them).
type LoadStats struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// Process is one entry from the host process table.
type Process struct {
	PID         int32
	CommandLine string
}

// SystemInquiry answers questions about the host. Every method reports
// availability through its second return value instead of an error: an
// unavailable fact is a normal outcome callers must handle as data, never
// a condition they need to recover from.
type SystemInquiry interface {
	// Hostname returns the host's name.
	Hostname() (string, bool)

	// CurrentUser returns the name of the user running the process.
	CurrentUser() (string, bool)

	// WorkingDirectory returns the current working directory.
	WorkingDirectory() (string, bool)

	// Platform returns a human-readable OS/kernel description.
	Platform() (string, bool)

	// ProductName returns a hardware product description, best-effort.
	ProductName() (string, bool)

	// ListProcesses enumerates the process table. The bool is false only
	// when enumeration itself failed; individual unreadable processes are
	// silently skipped.
	ListProcesses() ([]Process, bool)

	// MemoryStats returns system memory usage.
	MemoryStats() (MemoryStats, bool)

	// DiskStats returns disk usage for the filesystem containing path.
	DiskStats(path string) (DiskStats, bool)

	// LoadAverages returns system load averages.
	LoadAverages() (LoadStats, bool)

	// TailKernelLog returns up to n recent kernel/system log lines.
	TailKernelLog(n int) ([]string, bool)
}
