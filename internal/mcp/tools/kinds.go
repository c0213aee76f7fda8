package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/markovml/pandas-ai/pkg/outputs"
	"github.com/markovml/pandas-ai/pkg/types"
)

// ListKindsInput is the input for pandasai_list_kinds.
type ListKindsInput struct {
	IncludeHints bool `json:"include_hints,omitempty" jsonschema:"Include the full template hint text for each kind (default: false)"`
}

// KindInfo describes one output kind.
type KindInfo struct {
	Name         string   `json:"name"`
	TemplateHint string   `json:"template_hint,omitempty"`
	Accepts      []string `json:"accepts,omitzero"` // default kind only: the whitelist
}

// ListKindsOutput is the output for pandasai_list_kinds.
type ListKindsOutput struct {
	Kinds []KindInfo `json:"kinds,omitzero"`
}

// ToolListKinds lists the registered output kinds. Hints are optional
// because the chart-flavored default hint alone runs to several KB.
func ToolListKinds(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListKindsInput) (*sdkmcp.CallToolResult, ListKindsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListKindsInput) (*sdkmcp.CallToolResult, ListKindsOutput, error) {
		out := ListKindsOutput{Kinds: make([]KindInfo, 0, len(d.Registry.Names()))}
		for _, name := range d.Registry.Names() {
			kind, _ := d.Registry.Lookup(name)
			info := KindInfo{Name: name}
			if input.IncludeHints {
				info.TemplateHint = kind.TemplateHint()
			}
			if name == types.KindDefault {
				info.Accepts = outputs.DefaultKinds()
			}
			out.Kinds = append(out.Kinds, info)
		}
		return nil, out, nil
	}
}
