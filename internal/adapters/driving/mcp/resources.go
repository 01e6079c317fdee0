package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "joltage://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent",
		Name:        "recent-inputs",
		Description: "Input files computed recently, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current output and watch settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

func (s *Server) handleRecentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recent := []string{}
	if s.ports.Settings != nil {
		recent = append(recent, s.ports.Settings.RecentInputs()...)
	}
	return jsonResource(req.Params.URI, recent)
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type settingsInfo struct {
		Format          string `json:"format"`
		ShowBanks       bool   `json:"show_banks"`
		WatchIntervalMS int64  `json:"watch_min_interval_ms"`
	}

	if s.ports.Settings == nil {
		return nil, ErrSettingsUnavailable
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Format:          settings.Output.Format.String(),
		ShowBanks:       settings.Output.ShowBanks,
		WatchIntervalMS: settings.Watch.MinInterval.Milliseconds(),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
