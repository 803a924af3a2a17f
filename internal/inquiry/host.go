package inquiry

import (
	"context"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// HostInquiry is the real SystemInquiry backed by gopsutil, with a bounded
// external command for the kernel log tail.
type HostInquiry struct {
	execTimeout time.Duration
}

// NewHostInquiry creates an inquiry backend for the local host.
func NewHostInquiry() *HostInquiry {
	return &HostInquiry{execTimeout: 2 * time.Second}
}

// Hostname returns the host's name.
func (h *HostInquiry) Hostname() (string, bool) {
	if info, err := host.Info(); err == nil && info.Hostname != "" {
		return info.Hostname, true
	}
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// CurrentUser returns the name of the user running the process.
func (h *HostInquiry) CurrentUser() (string, bool) {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "", false
	}
	return u.Username, true
}

// WorkingDirectory returns the current working directory.
func (h *HostInquiry) WorkingDirectory() (string, bool) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return wd, true
}

// Platform returns a human-readable OS/kernel description.
func (h *HostInquiry) Platform() (string, bool) {
	info, err := host.Info()
	if err != nil {
		return "", false
	}
	parts := []string{info.OS}
	if info.Platform != "" {
		parts = append(parts, info.Platform+" "+info.PlatformVersion)
	}
	if info.KernelVersion != "" {
		parts = append(parts, "kernel "+info.KernelVersion)
	}
	return strings.Join(parts, ", "), true
}

// ProductName returns the hardware product description via ghw, best-effort.
func (h *HostInquiry) ProductName() (string, bool) {
	product, err := ghw.Product()
	if err != nil || product == nil {
		return "", false
	}
	name := strings.TrimSpace(product.Vendor + " " + product.Name)
	if name == "" || strings.Contains(strings.ToLower(name), "unknown") {
		return "", false
	}
	return name, true
}

// ListProcesses enumerates the process table. Individual processes that
// disappear or deny access mid-scan are skipped, not failures.
func (h *HostInquiry) ListProcesses() ([]Process, bool) {
	procs, err := process.Processes()
	if err != nil {
		return nil, false
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		cmdline, err := p.Cmdline()
		if err != nil || cmdline == "" {
			if name, nerr := p.Name(); nerr == nil {
				cmdline = name
			}
		}
		if cmdline == "" {
			continue
		}
		out = append(out, Process{PID: p.Pid, CommandLine: cmdline})
	}
	return out, true
}

// MemoryStats returns system memory usage.
func (h *HostInquiry) MemoryStats() (MemoryStats, bool) {
	vm, err := mem.VirtualMemory()
	if err != nil || vm.Total == 0 {
		return MemoryStats{}, false
	}
	return MemoryStats{
		TotalMB: float64(vm.Total) / 1024 / 1024,
		FreeMB:  float64(vm.Available) / 1024 / 1024,
	}, true
}

// DiskStats returns disk usage for the filesystem containing path.
func (h *HostInquiry) DiskStats(path string) (DiskStats, bool) {
	if path == "" {
		path = RootDiskPath()
	}
	usage, err := disk.Usage(path)
	if err != nil || usage.Total == 0 {
		return DiskStats{}, false
	}
	return DiskStats{
		TotalGB: float64(usage.Total) / 1024 / 1024 / 1024,
		FreeGB:  float64(usage.Free) / 1024 / 1024 / 1024,
	}, true
}

// LoadAverages returns system load averages.
func (h *HostInquiry) LoadAverages() (LoadStats, bool) {
	avg, err := load.Avg()
	if err != nil {
		return LoadStats{}, false
	}
	return LoadStats{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, true
}

// TailKernelLog returns up to n recent kernel/system log lines using the
// platform's log command, bounded by a short timeout.
func (h *HostInquiry) TailKernelLog(n int) ([]string, bool) {
	if n <= 0 {
		return nil, true
	}

	var name string
	var args []string
	switch runtime.GOOS {
	case "linux":
		name, args = "dmesg", []string{"--nopager"}
	case "darwin":
		name, args = "log", []string{"show", "--last", "2m", "--style", "compact"}
	case "windows":
		name, args = "wevtutil", []string{"qe", "System", "/c:" + strconv.Itoa(n), "/rd:true", "/f:text"}
	default:
		return nil, false
	}

	if _, err := exec.LookPath(name); err != nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.execTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, false
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, true
}

// RootDiskPath returns the path used for whole-disk usage queries.
func RootDiskPath() string {
	if runtime.GOOS == "windows" {
		drive := os.Getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		return drive + "\\"
	}
	return "/"
}
