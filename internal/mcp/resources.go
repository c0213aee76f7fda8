package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/markovml/pandas-ai/internal/mcp/tools"
)

// Resource URI scheme: pandasai://
// Supported URIs:
//   pandasai://hint/{kind}
//   pandasai://history/{id}

// MimeText is the MIME type for plain-text resources.
const MimeText = "text/plain"

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "pandasai://hint/{kind}",
		Name:        "Template Hint",
		Description: "The template hint for an output kind: the exact text to embed in a generation prompt describing the {type, value} shape. Documentation for the generator; never parse it.",
		MIMEType:    MimeText,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.8,
		},
	}, s.handleResourceHint)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "pandasai://history/{id}",
		Name:        "Validation Entry",
		Description: "A single recorded validation call with its outcome and payload snippet. IDs come from validate tool responses or pandasai_validation_history.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.4,
		},
	}, s.handleResourceHistory)
}

// Resource handlers

func (s *Server) handleResourceHint(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	kind, ok := s.deps.Registry.Lookup(params["kind"])
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: MimeText,
				Text:     kind.TemplateHint(),
			},
		},
	}, nil
}

func (s *Server) handleResourceHistory(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	if s.deps.History == nil {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}
	entry, ok := s.deps.History.Get(params["id"])
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	return toResourceResult(req.Params.URI, entry)
}

// Helper functions

// parseResourceURI extracts parameters from a pandasai:// URI.
func parseResourceURI(uri string) (map[string]string, error) {
	if !strings.HasPrefix(uri, "pandasai://") {
		return nil, tools.ErrInvalidInput("invalid URI scheme: expected pandasai://")
	}

	path := strings.TrimPrefix(uri, "pandasai://")
	parts := strings.Split(path, "/")

	if len(parts) == 0 {
		return nil, tools.ErrInvalidInput("empty resource path")
	}

	params := make(map[string]string)

	switch parts[0] {
	case "hint":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput("hint URI requires an output kind name")
		}
		params["kind"] = parts[1]

	case "history":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput("history URI requires an entry ID")
		}
		params["id"] = parts[1]

	default:
		return nil, tools.ErrInvalidInput(fmt.Sprintf("unknown resource type: %s", parts[0]))
	}

	return params, nil
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: tools.MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
