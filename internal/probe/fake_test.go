package probe

import (
	"time"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
)

// fakeInquiry is a deterministic SystemInquiry for probe tests. The zero
// value answers "unavailable" to everything.
type fakeInquiry struct {
	hostname   string
	hostnameOK bool

	user   string
	userOK bool

	wd   string
	wdOK bool

	platform   string
	platformOK bool

	product   string
	productOK bool

	procs      []inquiry.Process
	procsOK    bool
	procsDelay time.Duration

	memory inquiry.MemoryStats
	memOK  bool

	disk   inquiry.DiskStats
	diskOK bool

	loadStats inquiry.LoadStats
	loadOK    bool

	tail   []string
	tailOK bool
}

func (f *fakeInquiry) Hostname() (string, bool)         { return f.hostname, f.hostnameOK }
func (f *fakeInquiry) CurrentUser() (string, bool)      { return f.user, f.userOK }
func (f *fakeInquiry) WorkingDirectory() (string, bool) { return f.wd, f.wdOK }
func (f *fakeInquiry) Platform() (string, bool)         { return f.platform, f.platformOK }
func (f *fakeInquiry) ProductName() (string, bool)      { return f.product, f.productOK }

func (f *fakeInquiry) ListProcesses() ([]inquiry.Process, bool) {
	if f.procsDelay > 0 {
		time.Sleep(f.procsDelay)
	}
	return f.procs, f.procsOK
}

func (f *fakeInquiry) MemoryStats() (inquiry.MemoryStats, bool) {
	return f.memory, f.memOK
}

func (f *fakeInquiry) DiskStats(string) (inquiry.DiskStats, bool) {
	return f.disk, f.diskOK
}

func (f *fakeInquiry) LoadAverages() (inquiry.LoadStats, bool) {
	return f.loadStats, f.loadOK
}

func (f *fakeInquiry) TailKernelLog(int) ([]string, bool) {
	return f.tail, f.tailOK
}
