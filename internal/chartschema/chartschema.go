// Package chartschema performs deep structural validation of highchart
// config objects.
//
// The highchart output kind deliberately checks only "is this a mapping";
// this package is the opt-in second pass for callers that want to know
// whether the config would actually render. The schema is reflected from Go
// struct definitions and compiled once per checker.
package chartschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	invopop "github.com/invopop/jsonschema"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/markovml/pandas-ai/pkg/types"
)

// ChartConfig is the schema source for a renderable chart config.
// Fields without omitempty are required; everything else, including keys
// not modeled here (dataLabels, colorAxis stops, ...), is allowed through.
type ChartConfig struct {
	Chart  ChartSpec      `json:"chart"`
	Title  *TitleSpec     `json:"title,omitempty"`
	XAxis  map[string]any `json:"xAxis,omitempty"`
	YAxis  map[string]any `json:"yAxis,omitempty"`
	Series []SeriesSpec   `json:"series"`
}

// ChartSpec identifies the chart renderer.
type ChartSpec struct {
	Type string `json:"type"`
}

// TitleSpec is the chart title block.
type TitleSpec struct {
	Text string `json:"text,omitempty"`
}

// SeriesSpec is a single data series.
type SeriesSpec struct {
	Name string `json:"name,omitempty"`
	Data []any  `json:"data"`
}

// Checker validates chart configs against the reflected schema.
type Checker struct {
	schema *jsonschema.Schema
}

// NewChecker reflects ChartConfig into a JSON schema and compiles it.
func NewChecker() (*Checker, error) {
	reflector := &invopop.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	reflected := reflector.Reflect(&ChartConfig{})

	// Round-trip to a plain map so the compiler sees a clean JSON value.
	schemaJSON, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var schemaValue any
	if err := json.Unmarshal(schemaJSON, &schemaValue); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("chart.json", schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("chart.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Checker{schema: compiled}, nil
}

// Check validates a chart config value. The value is round-tripped through
// JSON so records decoded with non-standard number types validate the same
// way the serialized config would.
func (c *Checker) Check(value any) types.Outcome {
	data, err := json.Marshal(value)
	if err != nil {
		return types.Outcome{Diagnostics: []string{"config is not JSON-encodable: " + err.Error()}}
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return types.Outcome{Diagnostics: []string{"invalid JSON: " + err.Error()}}
	}

	if err := c.schema.Validate(instance); err != nil {
		return types.Outcome{Diagnostics: extractValidationErrors(err)}
	}
	return types.Outcome{Valid: true}
}

// extractValidationErrors extracts human-readable messages from a
// validation error.
func extractValidationErrors(err error) []string {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		errorsByPath := make(map[string][]string)
		collectErrors(validationErr, errorsByPath)

		var result []string
		for path, msgs := range errorsByPath {
			seen := make(map[string]bool)
			for _, msg := range msgs {
				if seen[msg] {
					continue
				}
				seen[msg] = true
				if path != "" {
					result = append(result, fmt.Sprintf("%s: %s", path, msg))
				} else {
					result = append(result, msg)
				}
			}
		}
		return result
	}
	return []string{err.Error()}
}

// printer is a default English printer for localized error messages.
var printer = message.NewPrinter(language.English)

// collectErrors recursively collects leaf errors (those without causes).
func collectErrors(err *jsonschema.ValidationError, errorsByPath map[string][]string) {
	instancePath := ""
	if len(err.InstanceLocation) > 0 {
		instancePath = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		errMsg := err.ErrorKind.LocalizedString(printer)
		// Schema-reference messages carry no information for the caller.
		if !strings.HasPrefix(errMsg, "$ref ") && !strings.HasPrefix(errMsg, "doesn't validate with") {
			errorsByPath[instancePath] = append(errorsByPath[instancePath], errMsg)
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errorsByPath)
	}
}
