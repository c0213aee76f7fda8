// Package resultjson decodes generator output into result records.
//
// Generators rarely hand back clean JSON: LLMs wrap payloads in Markdown
// code fences, and provider APIs bury the result object inside a response
// envelope. Decode handles the former, Extract the latter. Both return a
// types.Record whose numeric leaves are real numeric scalars, so the number
// kind's predicate sees int64/float64/decimal values rather than strings.
package resultjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
	"github.com/shopspring/decimal"

	"github.com/markovml/pandas-ai/pkg/types"
)

// Decode parses a JSON object into a result record. Markdown code fences
// around the payload are stripped first. JSON numbers decode to int64 when
// integral, float64 otherwise, and decimal.Decimal when they fit neither.
func Decode(data []byte) (types.Record, error) {
	data = stripFences(data)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}

	rec := make(types.Record, len(raw))
	for k, v := range raw {
		rec[k] = normalize(v)
	}
	return rec, nil
}

// Extract locates a result record inside a larger JSON document using a jq
// expression (e.g. ".choices[0].message.content" or ".result"). The first
// value the expression yields must be an object; it is returned as a
// normalized record.
func Extract(data []byte, expression string) (types.Record, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("invalid JSON data: %w", err)
	}

	iter := code.Run(input)
	v, ok := iter.Next()
	if !ok {
		return nil, fmt.Errorf("expression %q yielded no values", expression)
	}
	if err, isErr := v.(error); isErr {
		return nil, fmt.Errorf("expression %q failed: %w", expression, err)
	}

	// The matched value may itself be a fenced JSON string (an LLM message
	// body); round-trip everything through Decode for uniform number
	// handling.
	switch matched := v.(type) {
	case string:
		return Decode([]byte(matched))
	case map[string]any:
		b, err := json.Marshal(matched)
		if err != nil {
			return nil, fmt.Errorf("re-encoding matched object: %w", err)
		}
		return Decode(b)
	default:
		return nil, fmt.Errorf("expression %q yielded %T, want an object", expression, v)
	}
}

// stripFences removes a surrounding Markdown code fence, with or without a
// language tag, leaving other input untouched.
func stripFences(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return data
	}

	trimmed = bytes.TrimPrefix(trimmed, []byte("```"))
	if idx := bytes.IndexByte(trimmed, '\n'); idx >= 0 {
		// Drop the language tag line ("json", "python", ...).
		first := bytes.TrimSpace(trimmed[:idx])
		if !bytes.ContainsAny(first, "{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = bytes.TrimSpace(trimmed)
	trimmed = bytes.TrimSuffix(trimmed, []byte("```"))
	return bytes.TrimSpace(trimmed)
}

// normalize converts json.Number leaves to numeric scalars, recursing into
// objects and arrays. Numbers that fit neither int64 nor float64 become
// arbitrary-precision decimals; on a parse failure the raw token is kept.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return d
		}
		return val
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
