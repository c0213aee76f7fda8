package outputs

import (
	"errors"
	"slices"

	"github.com/markovml/pandas-ai/pkg/types"
)

// ErrTypeFieldMissing is returned by DefaultType.Validate when the record
// has no "type" key at all.
var ErrTypeFieldMissing = errors.New(`result record has no "type" field`)

// defaultKinds is the whitelist of kind names the default output type
// accepts. Note that "highchart" is intentionally absent even though the
// chart-flavored hint (hintChartDefault) shows highchart examples: callers
// have shipped against the narrower whitelist, so widening it is a decision
// for the system owner, not this package. See NewMKVDefault.
var defaultKinds = []string{
	types.KindString,
	types.KindNumber,
	types.KindDataFrame,
	types.KindPlot,
}

// DefaultType is the permissive fallback kind used when the caller does not
// want per-kind strictness. It accepts any record whose declared type is one
// of the kinds the downstream renderer understands, without inspecting the
// value at all.
//
// Compatibility note: this kind deliberately diverges from the strict
// contract in two ways. It never produces diagnostics, even on failure, and
// it requires the "type" key to be present, failing hard with
// ErrTypeFieldMissing instead of reporting a soft mismatch. Callers depend
// on both behaviors; do not unify them with the strict path.
type DefaultType struct {
	hint string
}

// NewDefault returns the "default" kind with the standard template hint
// describing the four renderable kinds.
func NewDefault() *DefaultType {
	return &DefaultType{hint: hintDefault}
}

// NewMKVDefault returns the "default" kind carrying the extended hint used
// by Markov chart-capable deployments. It differs from NewDefault only in
// the hint text: the hint advertises "highchart" payloads, but the
// whitelist checked by Validate still rejects them. That discrepancy is
// preserved from the upstream design; resolving it means either fixing the
// hint or widening defaultKinds, upstream's call.
func NewMKVDefault() *DefaultType {
	return &DefaultType{hint: hintChartDefault}
}

// Name implements OutputType.
func (t *DefaultType) Name() string { return types.KindDefault }

// TemplateHint implements OutputType.
func (t *DefaultType) TemplateHint() string { return t.hint }

// Validate reports whether the record's declared type is one of the
// whitelisted kinds. The value is not inspected and no diagnostics are ever
// returned. A record without a "type" key fails with ErrTypeFieldMissing.
func (t *DefaultType) Validate(rec types.Record) (types.Outcome, error) {
	tag, ok := rec["type"]
	if !ok {
		return types.Outcome{}, ErrTypeFieldMissing
	}
	name, _ := tag.(string)
	return types.Outcome{Valid: slices.Contains(defaultKinds, name)}, nil
}

// DefaultKinds returns a copy of the whitelist accepted by the default kind.
func DefaultKinds() []string {
	return slices.Clone(defaultKinds)
}
