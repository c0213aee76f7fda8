// Package outputs implements the closed set of output kinds a generated
// result may claim, and the validation contract shared by all of them.
//
// A result is a loosely-typed {"type": ..., "value": ...} record produced by
// an upstream generator (an LLM, or code the LLM wrote). Each output kind
// pairs a canonical name with a value predicate and a template hint: the
// hint is embedded verbatim into the generation prompt, the predicate is
// applied to whatever came back.
package outputs

import (
	"fmt"

	"github.com/markovml/pandas-ai/pkg/types"
)

// OutputType is the capability set every output kind implements.
//
// Validate reports whether the record matches the kind. The returned error
// is nil on every strict kind regardless of match; only the default kind
// can fail hard (see DefaultType).
type OutputType interface {
	Name() string
	TemplateHint() string
	Validate(rec types.Record) (types.Outcome, error)
}

// TabularClassifier recognizes dataframe-like values. Classify returns a
// non-empty identifier (e.g. "dataframe", "series") when the value is a
// recognized tabular structure and "" otherwise. The production
// implementation lives in pkg/dataframe; the dataframe kind only depends
// on this contract.
type TabularClassifier interface {
	Classify(v any) string
}

// strictKind is the shared implementation behind the non-default kinds.
// Its Validate runs both the type check and the value predicate
// unconditionally; diagnostics accumulate in a fixed order (type mismatch
// first, then value mismatch) so a caller sees every problem in one pass.
type strictKind struct {
	name    string
	hint    string
	valueOK func(v any) bool
}

func (k *strictKind) Name() string { return k.name }

func (k *strictKind) TemplateHint() string { return k.hint }

// typeOK is the default type-match rule: an exact, case-sensitive string
// comparison against the kind name. A missing or non-string tag never
// matches.
func (k *strictKind) typeOK(actual any) bool {
	s, ok := actual.(string)
	return ok && s == k.name
}

// Validate checks the "type" and "value" keys of the record. Missing keys
// are treated as nil values, never as an error; the function is total over
// any record.
func (k *strictKind) Validate(rec types.Record) (types.Outcome, error) {
	var diags []string
	actualType, actualValue := rec["type"], rec["value"]

	typeOK := k.typeOK(actualType)
	if !typeOK {
		diags = append(diags, fmt.Sprintf(
			"The result dict contains inappropriate 'type'. Expected '%s', actual '%v'.",
			k.name, actualType,
		))
	}
	valueOK := k.valueOK(actualValue)
	if !valueOK {
		diags = append(diags, fmt.Sprintf(
			"Actual value %#v seems to be inappropriate for the type '%s'.",
			actualValue, k.name,
		))
	}

	return types.Outcome{Valid: typeOK && valueOK, Diagnostics: diags}, nil
}
