// Package types contains shared data types used across the validator
// packages and the MCP server.
package types

// Record is the loosely-typed result produced by an upstream generator.
// Only the "type" and "value" keys carry meaning; anything else is ignored.
type Record map[string]any

// Type returns the claimed output-kind tag, or nil when the key is absent.
func (r Record) Type() any {
	return r["type"]
}

// Value returns the payload, or nil when the key is absent.
func (r Record) Value() any {
	return r["value"]
}

// Outcome contains the result of validating a single record.
// Diagnostics is empty when Valid is true; otherwise it holds up to two
// messages (type mismatch first, then value mismatch).
type Outcome struct {
	Valid       bool     `json:"valid"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// Canonical output-kind names.
const (
	KindNumber    = "number"
	KindString    = "string"
	KindDataFrame = "dataframe"
	KindPlot      = "plot"
	KindHighChart = "highchart"
	KindDefault   = "default"
)

// HintStyle selects which template hint the default output kind carries.
type HintStyle string

// Hint style constants.
const (
	// HintStandard describes the four renderable kinds.
	HintStandard HintStyle = "standard"
	// HintChart is the extended hint used by chart-capable deployments.
	// It additionally shows highchart config examples.
	HintChart HintStyle = "chart"
)
