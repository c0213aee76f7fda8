package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolListKinds(t *testing.T) {
	d := testDeps(t)
	handler := ToolListKinds(d)

	_, out, err := handler(context.Background(), nil, ListKindsInput{})
	require.NoError(t, err)

	names := make([]string, 0, len(out.Kinds))
	for _, k := range out.Kinds {
		names = append(names, k.Name)
		assert.Empty(t, k.TemplateHint, "hints are opt-in")
	}
	assert.Equal(t, []string{"dataframe", "default", "highchart", "number", "plot", "string"}, names)
}

func TestToolListKinds_withHints(t *testing.T) {
	d := testDeps(t)
	handler := ToolListKinds(d)

	_, out, err := handler(context.Background(), nil, ListKindsInput{IncludeHints: true})
	require.NoError(t, err)

	for _, k := range out.Kinds {
		assert.NotEmpty(t, k.TemplateHint, "kind %s", k.Name)
		if k.Name == "default" {
			assert.Equal(t, []string{"string", "number", "dataframe", "plot"}, k.Accepts)
		} else {
			assert.Empty(t, k.Accepts)
		}
	}
}

func TestToolCheckChartConfig(t *testing.T) {
	d := testDeps(t)
	handler := ToolCheckChartConfig(d)

	_, out, err := handler(context.Background(), nil, CheckChartConfigInput{
		Config: `{"chart": {"type": "line"}, "series": [{"name": "s1", "data": [10, 15, 7]}]}`,
	})
	require.NoError(t, err)
	assert.True(t, out.Outcome.Valid)

	_, out, err = handler(context.Background(), nil, CheckChartConfigInput{
		Config: `{"title": {"text": "missing chart and series"}}`,
	})
	require.NoError(t, err)
	assert.False(t, out.Outcome.Valid)
	assert.NotEmpty(t, out.Outcome.Diagnostics)

	_, _, err = handler(context.Background(), nil, CheckChartConfigInput{Config: `[1, 2]`})
	assert.Error(t, err, "non-object config is an input error")

	_, _, err = handler(context.Background(), nil, CheckChartConfigInput{})
	assert.Error(t, err)
}

func TestToolValidationHistory(t *testing.T) {
	d := testDeps(t)

	validate := ToolValidateResult(d)
	_, _, err := validate(context.Background(), nil, ValidateResultInput{Kind: "number", Result: `{"type": "number", "value": 1}`})
	require.NoError(t, err)
	_, _, err = validate(context.Background(), nil, ValidateResultInput{Kind: "number", Result: `{"type": "number", "value": "x"}`})
	require.NoError(t, err)

	handler := ToolValidationHistory(d)

	_, out, err := handler(context.Background(), nil, ValidationHistoryInput{})
	require.NoError(t, err)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "number", out.Entries[0].Kind)
	assert.False(t, out.Entries[0].Outcome.Valid, "newest entry first")

	_, out, err = handler(context.Background(), nil, ValidationHistoryInput{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.False(t, out.Entries[0].Outcome.Valid)
}

func TestToolValidationHistory_byID(t *testing.T) {
	d := testDeps(t)

	validate := ToolValidateResult(d)
	_, res, err := validate(context.Background(), nil, ValidateResultInput{Kind: "string", Result: `{"type": "string", "value": "hi"}`})
	require.NoError(t, err)
	require.NotEmpty(t, res.HistoryID)

	handler := ToolValidationHistory(d)

	_, out, err := handler(context.Background(), nil, ValidationHistoryInput{ID: res.HistoryID})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, res.HistoryID, out.Entries[0].ID)

	_, _, err = handler(context.Background(), nil, ValidationHistoryInput{ID: "v-999999"})
	require.Error(t, err)
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeNotFound, coded.Code)
}

func TestToolValidationHistory_disabled(t *testing.T) {
	d := testDeps(t)
	d.History = nil

	_, out, err := ToolValidationHistory(d)(context.Background(), nil, ValidationHistoryInput{})
	require.NoError(t, err)
	assert.True(t, out.Disabled)
	assert.Empty(t, out.Entries)
}
