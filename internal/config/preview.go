package config

import (
	"encoding/json"
	"sort"
)

// ServerList is the part of the service's config file worth reporting:
// which servers are configured.
type ServerList struct {
	Names []string
}

// ParseServerList extracts the configured server names from a config file
// preview. The bool is false when the preview is not parseable JSON, which
// is expected for previews truncated at the byte cap.
func ParseServerList(preview []byte) (ServerList, bool) {
	var doc struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(preview, &doc); err != nil {
		return ServerList{}, false
	}
	names := make([]string, 0, len(doc.MCPServers))
	for name := range doc.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return ServerList{Names: names}, true
}
