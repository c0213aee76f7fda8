package tools

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/markovml/pandas-ai/pkg/outputs"
)

// BatchItem is one result to validate.
type BatchItem struct {
	Kind   string `json:"kind,omitempty" jsonschema:"Output kind for this item (default: default)"`
	Result string `json:"result" jsonschema:"required,Result JSON with 'type' and 'value' keys"`
	Expr   string `json:"expr,omitempty" jsonschema:"Optional jq expression locating the result object"`
}

// ValidateBatchInput is the input for pandasai_validate_batch.
type ValidateBatchInput struct {
	Items []BatchItem `json:"items" jsonschema:"required,Results to validate"`
}

// ItemOutcome is the per-item result.
type ItemOutcome struct {
	Index       int      `json:"index"`
	Kind        string   `json:"kind,omitempty"`
	Valid       bool     `json:"valid"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// BatchSummary summarizes a batch validation.
type BatchSummary struct {
	Total        int  `json:"total"`
	ValidCount   int  `json:"valid_count"`
	InvalidCount int  `json:"invalid_count"`
	ErrorCount   int  `json:"error_count"`
	AllValid     bool `json:"all_valid"`
}

// ValidateBatchOutput is the output for pandasai_validate_batch.
type ValidateBatchOutput struct {
	Summary BatchSummary  `json:"summary"`
	Results []ItemOutcome `json:"results,omitzero"`
}

// ToolValidateBatch validates many results concurrently. Items are
// independent, so per-item failures (bad JSON, unknown kind, missing type
// field) land in that item's Error instead of failing the whole call.
func ToolValidateBatch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateBatchInput) (*sdkmcp.CallToolResult, ValidateBatchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateBatchInput) (*sdkmcp.CallToolResult, ValidateBatchOutput, error) {
		if len(input.Items) == 0 {
			return nil, ValidateBatchOutput{}, ErrInvalidInput("items is required")
		}
		if max := d.Config.BatchMaxResults; max > 0 && len(input.Items) > max {
			return nil, ValidateBatchOutput{}, ErrInvalidInput("too many items in one batch")
		}

		results := make([]ItemOutcome, len(input.Items))

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(d.Config.BatchWorkers)
		for i, item := range input.Items {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = d.validateOne(i, item)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, ValidateBatchOutput{}, err
		}

		summary := BatchSummary{Total: len(results)}
		for _, r := range results {
			switch {
			case r.Error != "":
				summary.ErrorCount++
			case r.Valid:
				summary.ValidCount++
			default:
				summary.InvalidCount++
			}
		}
		summary.AllValid = summary.ValidCount == summary.Total

		return nil, ValidateBatchOutput{Summary: summary, Results: results}, nil
	}
}

// validateOne validates a single batch item, folding every failure mode
// into the item outcome.
func (d *Deps) validateOne(index int, item BatchItem) ItemOutcome {
	out := ItemOutcome{Index: index}

	kind, err := d.ResolveKind(item.Kind)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Kind = kind.Name()

	rec, err := d.DecodeRecord(item.Result, item.Expr)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	outcome, err := kind.Validate(rec)
	d.RecordHistory(kind.Name(), item.Result, outcome, err)
	if err != nil {
		if errors.Is(err, outputs.ErrTypeFieldMissing) {
			err = ErrMissingField(err)
		}
		out.Error = err.Error()
		return out
	}

	out.Valid = outcome.Valid
	out.Diagnostics = outcome.Diagnostics
	return out
}
