package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleResultFormat serves the instruction block a caller embeds in the
// generation prompt. The template hint is included verbatim; everything
// around it tells the generator how strictly the shape is enforced.
func HandleResultFormat(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		name := req.Params.Arguments["output_type"]
		kind := cfg.Registry.Select(name)

		var sb strings.Builder
		sb.WriteString("# Result Format\n\n")
		sb.WriteString("Return the answer as a single JSON object with exactly two keys, \"type\" and \"value\":\n\n")
		sb.WriteString(kind.TemplateHint())
		sb.WriteString("\n\n**Rules**:\n")
		sb.WriteString("- Output only the JSON object, with no surrounding prose\n")
		sb.WriteString("- The \"type\" string is matched exactly, case-sensitive, no aliases\n")
		if kind.Name() == "default" {
			sb.WriteString("- Any of the listed type values is acceptable; pick the one that fits the answer\n")
		} else {
			sb.WriteString(fmt.Sprintf("- The \"type\" must be %q; the \"value\" must match the shape above\n", kind.Name()))
		}
		sb.WriteString("- Do not quote numbers: `\"value\": 125`, never `\"value\": \"125\"`\n")
		sb.WriteString("\nThe response will be checked with `pandasai_validate_result`; a mismatch returns diagnostics naming the offending key.\n")

		return &sdkmcp.GetPromptResult{
			Description: fmt.Sprintf("Result format instructions for the %q output kind", kind.Name()),
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}

// HandleDiagnoseResult serves a workflow guide for debugging repeated
// validation failures.
func HandleDiagnoseResult(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# Diagnosing Failing Results\n\n")
		sb.WriteString("## Workflow\n\n")
		sb.WriteString("1. **Reproduce**: `pandasai_validate_result(kind, result)` - the diagnostics are ordered: type mismatch first, then value mismatch. Two messages mean both keys are wrong\n")
		sb.WriteString("2. **Look for a pattern**: `pandasai_validation_history(failed_only: true)` - repeated identical diagnostics usually mean the generation prompt disagrees with the template hint\n")
		sb.WriteString("3. **Compare against the hint**: read `pandasai://hint/{kind}` and check the generation prompt embeds it verbatim\n")
		sb.WriteString("4. **Charts only**: if the highchart kind passes but rendering fails, run `pandasai_check_chart_config` on the value for a section-by-section report\n")
		sb.WriteString("\n## Common failure shapes\n")
		sb.WriteString("- Quoted numbers (`\"125\"`) fail the number kind; the decoder never coerces strings\n")
		sb.WriteString("- The default kind reports no diagnostics at all; switch to the concrete kind to see why a record was rejected\n")
		sb.WriteString("- A MISSING_FIELD error means the record has no \"type\" key - the payload is malformed, not mismatched\n")
		sb.WriteString("- Plot paths fail on whitespace in the first segment; the check is purely syntactic and never touches the filesystem\n")

		return &sdkmcp.GetPromptResult{
			Description: "Guide for debugging validation failures",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
