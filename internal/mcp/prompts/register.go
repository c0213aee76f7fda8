package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	// Prompt 1: Result format instructions for a generator
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "result_format",
		Description: "RECOMMENDED: Instruction block telling a generator exactly what {type, value} result to produce for an output kind. Embed it verbatim in the generation prompt, then validate the response with pandasai_validate_result.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "output_type",
				Description: "Output kind name (number, string, dataframe, plot, highchart); omit for the permissive default",
				Required:    false,
			},
		},
	}, HandleResultFormat(cfg))

	// Prompt 2: Diagnose a failing result
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "diagnose_result",
		Description: "Workflow guide for figuring out why generated results keep failing validation, using the validate, history, and chart-check tools.",
		Arguments:   []*sdkmcp.PromptArgument{},
	}, HandleDiagnoseResult(cfg))
}
