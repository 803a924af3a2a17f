package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/config"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// manyServers is the count past which a config is suspected of overloading
// the service.
const manyServers = 5

// ConfigProbe locates the service's configuration file through the
// locator's priority-ordered candidate list.
type ConfigProbe struct {
	locator *config.Locator
}

// NewConfigProbe creates a config probe over the given locator.
func NewConfigProbe(locator *config.Locator) *ConfigProbe {
	return &ConfigProbe{locator: locator}
}

// Name identifies the probe.
func (p *ConfigProbe) Name() string { return "mcp-config" }

// Run locates the config file and summarizes its server list when the
// preview parses as JSON.
func (p *ConfigProbe) Run(_ context.Context, _ inquiry.SystemInquiry, _ report.EnvSnapshot) report.Finding {
	loc := p.locator.Locate()

	if !loc.Exists {
		return report.Finding{
			Name:        p.Name(),
			Status:      report.StatusWarn,
			Detail:      "no MCP configuration file found in any known location",
			Remediation: "create a minimal config file, e.g. {\"mcpServers\":{}}",
		}
	}
	if !loc.Readable {
		return report.Finding{
			Name:        p.Name(),
			Status:      report.StatusWarn,
			Detail:      fmt.Sprintf("found at %s but unreadable", loc.Path),
			Remediation: "check file permissions on " + loc.Path,
		}
	}

	detail := "found at " + loc.Path
	f := report.Finding{Name: p.Name(), Status: report.StatusOK}

	servers, parsed := config.ParseServerList(loc.Preview)
	switch {
	case parsed && len(servers.Names) > 0:
		detail += fmt.Sprintf("; %d configured servers: %s", len(servers.Names), strings.Join(servers.Names, ", "))
		if len(servers.Names) > manyServers {
			f.Remediation = fmt.Sprintf("reduce the number of configured MCP servers (current: %d)", len(servers.Names))
		}
	case parsed:
		detail += "; no servers configured"
	case loc.Truncated:
		detail += "; preview truncated, server list not parsed"
	default:
		detail += "; content is not valid JSON"
	}

	f.Detail = detail
	return f
}
