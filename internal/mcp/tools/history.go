package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/markovml/pandas-ai/internal/history"
)

// DefaultHistoryLimit is the default number of entries returned.
const DefaultHistoryLimit = 20

// ValidationHistoryInput is the input for pandasai_validation_history.
type ValidationHistoryInput struct {
	ID         string `json:"id,omitempty" jsonschema:"Return only the entry with this ID (errors if absent)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Max entries to return, newest first (default: 20)"`
	FailedOnly bool   `json:"failed_only,omitempty" jsonschema:"Return only rejected or errored validations"`
}

// ValidationHistoryOutput is the output for pandasai_validation_history.
type ValidationHistoryOutput struct {
	Entries  []history.Entry `json:"entries,omitzero"`
	Disabled bool            `json:"disabled,omitempty"`
}

// ToolValidationHistory returns recent validation calls.
func ToolValidationHistory(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidationHistoryInput) (*sdkmcp.CallToolResult, ValidationHistoryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidationHistoryInput) (*sdkmcp.CallToolResult, ValidationHistoryOutput, error) {
		if d.History == nil {
			return nil, ValidationHistoryOutput{Disabled: true}, nil
		}

		if input.ID != "" {
			entry, ok := d.History.Get(input.ID)
			if !ok {
				return nil, ValidationHistoryOutput{}, ErrNotFound("history entry", input.ID)
			}
			return nil, ValidationHistoryOutput{Entries: []history.Entry{*entry}}, nil
		}

		limit := input.Limit
		if limit <= 0 {
			limit = DefaultHistoryLimit
		}

		var entries []history.Entry
		for _, e := range d.History.Recent(limit) {
			if input.FailedOnly && e.Outcome.Valid && e.Error == "" {
				continue
			}
			entries = append(entries, *e)
		}

		return nil, ValidationHistoryOutput{Entries: entries}, nil
	}
}
