package tools

import (
	"github.com/markovml/pandas-ai/internal/chartschema"
	"github.com/markovml/pandas-ai/internal/config"
	"github.com/markovml/pandas-ai/internal/history"
	"github.com/markovml/pandas-ai/pkg/outputs"
	"github.com/markovml/pandas-ai/pkg/resultjson"
	"github.com/markovml/pandas-ai/pkg/types"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config   *config.Config
	Registry *outputs.Registry
	History  *history.Log // nil when HISTORY_MAX_ITEMS is 0
	Chart    *chartschema.Checker
}

// DecodeRecord parses a raw result payload into a record, optionally
// locating it inside a larger document with a jq expression. Payloads over
// the configured size limit are rejected before any parsing.
func (d *Deps) DecodeRecord(raw string, expr string) (types.Record, error) {
	if max := d.Config.MaxResultBytes; max > 0 && len(raw) > max {
		return nil, ErrPayloadTooLarge(len(raw), max)
	}
	var rec types.Record
	var err error
	if expr != "" {
		rec, err = resultjson.Extract([]byte(raw), expr)
	} else {
		rec, err = resultjson.Decode([]byte(raw))
	}
	if err != nil {
		return nil, ErrInvalidInput(err.Error())
	}
	return rec, nil
}

// ResolveKind maps a configured kind name to its output type. An empty name
// selects the default kind; an unknown one is an error rather than a silent
// fallback, since a tool caller spelled it out explicitly.
func (d *Deps) ResolveKind(name string) (outputs.OutputType, error) {
	if name == "" {
		return d.Registry.Default(), nil
	}
	k, ok := d.Registry.Lookup(name)
	if !ok {
		return nil, ErrUnknownKind(name, d.Registry.Names())
	}
	return k, nil
}

// RecordHistory stores a validation call when history is enabled, returning
// the assigned entry ID or "".
func (d *Deps) RecordHistory(kind, snippet string, outcome types.Outcome, err error) string {
	if d.History == nil {
		return ""
	}
	return d.History.Record(kind, snippet, outcome, err).ID
}
