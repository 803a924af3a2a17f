package report

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/logging"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/tui"
)

// Writer persists a report to its artifact file and mirrors a short
// human-readable summary to the caller's output. A failed artifact write
// never fails the run: the full report falls back to the summary stream.
type Writer struct {
	dir       string
	out       io.Writer
	render    *tui.Renderer
	sanitizer *logging.Sanitizer
	logger    *slog.Logger
}

// NewWriter creates a writer placing artifacts in dir and the summary on out.
func NewWriter(dir string, out io.Writer, render *tui.Renderer, sanitizer *logging.Sanitizer, logger *slog.Logger) *Writer {
	if sanitizer == nil {
		sanitizer = logging.NewSanitizer()
	}
	return &Writer{dir: dir, out: out, render: render, sanitizer: sanitizer, logger: logger}
}

// ArtifactName returns the artifact file name for a report.
func ArtifactName(r *Report) string {
	return fmt.Sprintf("mcp_diagnostic_%s.txt", r.GeneratedAt().Format("20060102_150405"))
}

// Write renders the summary and writes the artifact. It returns the artifact
// path, empty when the artifact could not be written. The returned error is
// always nil today; the signature leaves room for future fatal conditions.
func (w *Writer) Write(r *Report) (string, error) {
	w.writeSummary(r)

	data := []byte(w.sanitizer.Sanitize(string(MarshalArtifact(r))))
	path := filepath.Join(w.dir, ArtifactName(r))

	if err := atomicWriteFile(path, data, 0o600); err != nil {
		if w.logger != nil {
			w.logger.Warn("artifact write failed, falling back to stdout", "path", path, "error", err)
		}
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, w.render.Muted(fmt.Sprintf("could not write report file (%v); full report follows", err)))
		fmt.Fprintln(w.out)
		_, _ = w.out.Write(data)
		return "", nil
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.render.Muted("Full report saved to: "+path))
	return path, nil
}

func (w *Writer) writeSummary(r *Report) {
	fmt.Fprintln(w.out, w.render.Title("mcp-doctor diagnostic summary"))
	fmt.Fprintln(w.out, w.render.Muted(fmt.Sprintf("host %s, run %s", r.Host(), r.RunID())))
	fmt.Fprintln(w.out)

	for _, f := range r.Findings() {
		detail := w.sanitizer.Sanitize(f.Detail)
		fmt.Fprintf(w.out, "%s %s: %s\n", w.render.StatusTag(string(f.Status)), f.Name, detail)
	}

	remediations := r.Remediations()
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.render.Section("Recovery suggestions"))
	if len(remediations) == 0 {
		fmt.Fprintln(w.out, "  no specific issues detected")
		return
	}
	for i, s := range remediations {
		fmt.Fprintf(w.out, "  %d. %s\n", i+1, w.sanitizer.Sanitize(s))
	}
	fmt.Fprintln(w.out, w.render.Muted("  if the client stays stuck after these steps, quit it fully and restart it from a terminal outside the stuck session"))
}
