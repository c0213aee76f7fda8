package outputs

import (
	"reflect"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/markovml/pandas-ai/pkg/types"
)

// NewNumber returns the "number" kind. The value must be a numeric scalar:
// any integer or floating-point type, or an arbitrary-precision
// decimal.Decimal. Strings, containers, booleans, and nil are rejected.
func NewNumber() OutputType {
	return &strictKind{
		name:    types.KindNumber,
		hint:    hintNumber,
		valueOK: isNumericScalar,
	}
}

func isNumericScalar(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		decimal.Decimal, *decimal.Decimal:
		return true
	}
	return false
}

// NewString returns the "string" kind. The value must be a native string;
// numbers, byte slices, and nil are rejected.
func NewString() OutputType {
	return &strictKind{
		name: types.KindString,
		hint: hintString,
		valueOK: func(v any) bool {
			_, ok := v.(string)
			return ok
		},
	}
}

// plotPathPattern accepts either a chain of /-separated absolute path
// segments (word characters, dots, hyphens) or a relative first token with
// optional further segments. It is a syntactic shape check only and never
// touches the filesystem.
//
// The pattern is a translation of the upstream `^(\/[\w.-]+)+(/[\w.-]+)*$|
// ^[^\s/]+(/[\w.-]+)*$` into this engine's dialect: upstream `$` also
// matches before a single trailing newline and `\w` covers Unicode word
// characters, so `$` becomes `\n?$` and `[\w.-]` becomes
// `[\p{L}\p{N}_.-]`. One residue remains: `\s` here is ASCII-only, so the
// relative-token class admits Unicode space characters upstream rejects.
var plotPathPattern = regexp.MustCompile(`^(\/[\p{L}\p{N}_.-]+)+(/[\p{L}\p{N}_.-]+)*\n?$|^[^\s/]+(/[\p{L}\p{N}_.-]+)*\n?$`)

// NewPlot returns the "plot" kind. The value must be a string shaped like a
// filesystem path to a rendered chart image. Whether the file exists is not
// this kind's concern.
func NewPlot() OutputType {
	return &strictKind{
		name: types.KindPlot,
		hint: hintPlot,
		valueOK: func(v any) bool {
			s, ok := v.(string)
			return ok && plotPathPattern.MatchString(s)
		},
	}
}

// NewDataFrame returns the "dataframe" kind. Recognition of tabular values
// is delegated to the classifier; a nil classifier rejects every value.
func NewDataFrame(c TabularClassifier) OutputType {
	return &strictKind{
		name: types.KindDataFrame,
		hint: hintDataFrame,
		valueOK: func(v any) bool {
			return c != nil && c.Classify(v) != ""
		},
	}
}

// NewHighChart returns the "highchart" kind. The value must be a mapping
// (a chart config object); the config's internal structure is deliberately
// not inspected here. internal/chartschema offers a deep check for callers
// that want one.
func NewHighChart() OutputType {
	return &strictKind{
		name:    types.KindHighChart,
		hint:    hintHighChart,
		valueOK: isMapping,
	}
}

func isMapping(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(map[string]any); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}
