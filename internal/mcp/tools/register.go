package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: pandasai_validate_result
	AddTool(srv, &sdkmcp.Tool{
		Name:        "pandasai_validate_result",
		Description: "Validate a generated {type, value} result against an output kind (number, string, dataframe, plot, highchart, or default). Returns valid plus ordered diagnostics: type mismatch first, then value mismatch. Pass expr (jq) to locate the result object inside a larger response document.",
	}, ToolValidateResult(d))

	// Tool 2: pandasai_validate_batch
	AddTool(srv, &sdkmcp.Tool{
		Name:        "pandasai_validate_batch",
		Description: "Validate many results in one call. Per-item failures (bad JSON, unknown kind, missing 'type' field) are reported per item; the summary says how many matched.",
	}, ToolValidateBatch(d))

	// Tool 3: pandasai_list_kinds
	AddTool(srv, &sdkmcp.Tool{
		Name:        "pandasai_list_kinds",
		Description: "List the registered output kinds. Set include_hints=true for the full template hint text to embed in a generation prompt (the chart hint is large; prefer the pandasai://hint/{kind} resource for a single kind).",
	}, ToolListKinds(d))

	// Tool 4: pandasai_check_chart_config
	AddTool(srv, &sdkmcp.Tool{
		Name:        "pandasai_check_chart_config",
		Description: "Deep-check a highchart config object against the chart schema (required chart/series sections, shapes of title and data). The highchart output kind only gates on 'is this an object'; use this when you need to know whether the config would render.",
	}, ToolCheckChartConfig(d))

	// Tool 5: pandasai_validation_history
	AddTool(srv, &sdkmcp.Tool{
		Name:        "pandasai_validation_history",
		Description: "List recent validation calls, newest first. Set failed_only=true to see only rejections and errors, or id to fetch one entry.",
	}, ToolValidationHistory(d))
}
