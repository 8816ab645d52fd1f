package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for fieldsort resources.
	uriScheme = "fieldsort://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "locales",
		Name:        "locales",
		Description: "Locales available to sort keys, and the active one",
		MIMEType:    mimeJSON,
	}, s.handleLocalesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Configured sort defaults",
		MIMEType:    mimeJSON,
	}, s.handleSettingsResource)
}

type localesInfo struct {
	Active  string   `json:"active"`
	Locales []string `json:"locales"`
}

type settingsInfo struct {
	Locale       string   `json:"locale"`
	ExtraLocales []string `json:"extra_locales"`
	DefaultKeys  []string `json:"default_keys"`
	Interactive  bool     `json:"interactive"`
	Strict       bool     `json:"strict"`
}

// handleLocalesResource returns the selectable locales.
func (s *Server) handleLocalesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	locales, active := s.ports.Sorter.Locales()

	info := localesInfo{
		Active:  active.String(),
		Locales: make([]string, len(locales)),
	}
	for i, l := range locales {
		info.Locales[i] = l.String()
	}

	return jsonResource(req.Params.URI, info)
}

// handleSettingsResource returns the configured defaults.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Locale:       settings.Locale,
		ExtraLocales: settings.LocaleStrings(),
		DefaultKeys:  settings.DefaultKeySpecs(),
		Interactive:  settings.Interactive,
		Strict:       settings.Strict,
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
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}
