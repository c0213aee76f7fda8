package tools

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/markovml/pandas-ai/pkg/outputs"
	"github.com/markovml/pandas-ai/pkg/types"
)

// ValidateResultInput is the input for pandasai_validate_result.
type ValidateResultInput struct {
	Kind   string `json:"kind,omitempty" jsonschema:"Output kind to validate against: number, string, dataframe, plot, highchart, or default (default: default)"`
	Result string `json:"result" jsonschema:"required,Result JSON with 'type' and 'value' keys, optionally wrapped in a Markdown code fence"`
	Expr   string `json:"expr,omitempty" jsonschema:"Optional jq expression locating the result object inside a larger response document"`
}

// ValidateResultOutput is the output for pandasai_validate_result.
type ValidateResultOutput struct {
	Kind      string        `json:"kind"`
	Outcome   types.Outcome `json:"outcome"`
	HistoryID string        `json:"history_id,omitempty"`
}

// ToolValidateResult validates a single generated result against an output
// kind. A missing "type" field under the default kind surfaces as a
// MISSING_FIELD coded error, not as a soft rejection.
func ToolValidateResult(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateResultInput) (*sdkmcp.CallToolResult, ValidateResultOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateResultInput) (*sdkmcp.CallToolResult, ValidateResultOutput, error) {
		if input.Result == "" {
			return nil, ValidateResultOutput{}, ErrInvalidInput("result is required")
		}

		kind, err := d.ResolveKind(input.Kind)
		if err != nil {
			return nil, ValidateResultOutput{}, err
		}

		rec, err := d.DecodeRecord(input.Result, input.Expr)
		if err != nil {
			return nil, ValidateResultOutput{}, err
		}

		outcome, err := kind.Validate(rec)
		historyID := d.RecordHistory(kind.Name(), input.Result, outcome, err)
		if err != nil {
			if errors.Is(err, outputs.ErrTypeFieldMissing) {
				return nil, ValidateResultOutput{}, ErrMissingField(err)
			}
			return nil, ValidateResultOutput{}, err
		}

		return nil, ValidateResultOutput{
			Kind:      kind.Name(),
			Outcome:   outcome,
			HistoryID: historyID,
		}, nil
	}
}
