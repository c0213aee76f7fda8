package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markovml/pandas-ai/internal/chartschema"
	"github.com/markovml/pandas-ai/internal/config"
	"github.com/markovml/pandas-ai/internal/history"
	"github.com/markovml/pandas-ai/pkg/dataframe"
	"github.com/markovml/pandas-ai/pkg/outputs"
	"github.com/markovml/pandas-ai/pkg/types"
)

func testDeps(t *testing.T) *Deps {
	t.Helper()

	log, err := history.NewLog(16)
	require.NoError(t, err)
	checker, err := chartschema.NewChecker()
	require.NoError(t, err)

	return &Deps{
		Config: &config.Config{
			BatchWorkers:    4,
			BatchMaxResults: 50,
			MaxResultBytes:  10_000,
		},
		Registry: outputs.NewRegistry(dataframe.NewClassifier(), types.HintStandard),
		History:  log,
		Chart:    checker,
	}
}

func TestToolValidateResult_match(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateResult(d)

	_, out, err := handler(context.Background(), nil, ValidateResultInput{
		Kind:   "number",
		Result: `{"type": "number", "value": 125}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "number", out.Kind)
	assert.True(t, out.Outcome.Valid)
	assert.Empty(t, out.Outcome.Diagnostics)
	assert.NotEmpty(t, out.HistoryID)
}

func TestToolValidateResult_mismatchReportsDiagnostics(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateResult(d)

	_, out, err := handler(context.Background(), nil, ValidateResultInput{
		Kind:   "number",
		Result: `{"type": "number", "value": "125"}`,
	})
	require.NoError(t, err, "a mismatch is a soft failure, not a tool error")
	assert.False(t, out.Outcome.Valid)
	assert.Len(t, out.Outcome.Diagnostics, 1)
}

func TestToolValidateResult_defaultKind(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateResult(d)

	// Empty kind selects the default kind, which accepts any whitelisted
	// tag without inspecting the value and never explains rejections.
	_, out, err := handler(context.Background(), nil, ValidateResultInput{
		Result: `{"type": "plot", "value": "x"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "default", out.Kind)
	assert.True(t, out.Outcome.Valid)

	_, out, err = handler(context.Background(), nil, ValidateResultInput{
		Result: `{"type": "highchart", "value": {}}`,
	})
	require.NoError(t, err)
	assert.False(t, out.Outcome.Valid)
	assert.Empty(t, out.Outcome.Diagnostics)
}

func TestToolValidateResult_missingTypeIsCodedError(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateResult(d)

	_, _, err := handler(context.Background(), nil, ValidateResultInput{
		Result: `{"value": "x"}`,
	})
	require.Error(t, err)

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeMissingField, coded.Code)
	assert.True(t, errors.Is(err, outputs.ErrTypeFieldMissing))
}

func TestToolValidateResult_unknownKind(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateResult(d)

	_, _, err := handler(context.Background(), nil, ValidateResultInput{
		Kind:   "json",
		Result: `{"type": "json", "value": {}}`,
	})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeUnknownKind, coded.Code)
}

func TestToolValidateResult_extractWithExpr(t *testing.T) {
	d := testDeps(t)
	handler := ToolValidateResult(d)

	_, out, err := handler(context.Background(), nil, ValidateResultInput{
		Kind:   "string",
		Result: `{"run": {"result": {"type": "string", "value": "hi"}}}`,
		Expr:   ".run.result",
	})
	require.NoError(t, err)
	assert.True(t, out.Outcome.Valid)
}

func TestToolValidateResult_payloadLimit(t *testing.T) {
	d := testDeps(t)
	d.Config.MaxResultBytes = 10
	handler := ToolValidateResult(d)

	_, _, err := handler(context.Background(), nil, ValidateResultInput{
		Result: `{"type": "string", "value": "a long payload"}`,
	})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodePayloadTooLarge, coded.Code)
}

func TestToolValidateResult_requiresResult(t *testing.T) {
	d := testDeps(t)
	_, _, err := ToolValidateResult(d)(context.Background(), nil, ValidateResultInput{Kind: "number"})
	assert.Error(t, err)
}
