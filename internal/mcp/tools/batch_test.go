package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolValidateBatch_mixedOutcomes(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateBatch(d)

	_, out, err := handler(context.Background(), nil, ValidateBatchInput{
		Items: []BatchItem{
			{Kind: "number", Result: `{"type": "number", "value": 125}`},
			{Kind: "number", Result: `{"type": "number", "value": "125"}`},
			{Kind: "string", Result: `not json`},
			{Result: `{"value": "missing type"}`},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.ValidCount)
	assert.Equal(t, 1, out.Summary.InvalidCount)
	assert.Equal(t, 2, out.Summary.ErrorCount)
	assert.False(t, out.Summary.AllValid)

	require.Len(t, out.Results, 4)
	assert.True(t, out.Results[0].Valid)
	assert.False(t, out.Results[1].Valid)
	assert.Len(t, out.Results[1].Diagnostics, 1)
	assert.Contains(t, out.Results[2].Error, ErrCodeInvalidInput)
	assert.Contains(t, out.Results[3].Error, ErrCodeMissingField)
}

func TestToolValidateBatch_resultsKeepInputOrder(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateBatch(d)

	items := make([]BatchItem, 30)
	for i := range items {
		items[i] = BatchItem{Kind: "number", Result: fmt.Sprintf(`{"type": "number", "value": %d}`, i)}
	}

	_, out, err := handler(context.Background(), nil, ValidateBatchInput{Items: items})
	require.NoError(t, err)
	require.Len(t, out.Results, 30)
	for i, r := range out.Results {
		assert.Equal(t, i, r.Index)
		assert.True(t, r.Valid)
	}
	assert.True(t, out.Summary.AllValid)
}

func TestToolValidateBatch_limits(t *testing.T) {
	d := testDeps(t)
	d.Config.BatchMaxResults = 2
	handler := ToolValidateBatch(d)

	_, _, err := handler(context.Background(), nil, ValidateBatchInput{
		Items: []BatchItem{{Result: "{}"}, {Result: "{}"}, {Result: "{}"}},
	})
	assert.Error(t, err)

	_, _, err = handler(context.Background(), nil, ValidateBatchInput{})
	assert.Error(t, err)
}
