package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/markovml/pandas-ai/pkg/types"
)

// CheckChartConfigInput is the input for pandasai_check_chart_config.
type CheckChartConfigInput struct {
	Config string `json:"config" jsonschema:"required,Chart config JSON object (the 'value' of a highchart result)"`
}

// CheckChartConfigOutput is the output for pandasai_check_chart_config.
type CheckChartConfigOutput struct {
	Outcome types.Outcome `json:"outcome"`
}

// ToolCheckChartConfig runs the deep structural check on a chart config.
// The highchart output kind itself only gates on "is this an object"; this
// tool is for callers that want to know whether the config would render.
func ToolCheckChartConfig(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CheckChartConfigInput) (*sdkmcp.CallToolResult, CheckChartConfigOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CheckChartConfigInput) (*sdkmcp.CallToolResult, CheckChartConfigOutput, error) {
		if input.Config == "" {
			return nil, CheckChartConfigOutput{}, ErrInvalidInput("config is required")
		}
		if max := d.Config.MaxResultBytes; max > 0 && len(input.Config) > max {
			return nil, CheckChartConfigOutput{}, ErrPayloadTooLarge(len(input.Config), max)
		}

		var cfg map[string]any
		if err := json.Unmarshal([]byte(input.Config), &cfg); err != nil {
			return nil, CheckChartConfigOutput{}, ErrInvalidInput("config is not a JSON object: " + err.Error())
		}

		return nil, CheckChartConfigOutput{Outcome: d.Chart.Check(cfg)}, nil
	}
}
