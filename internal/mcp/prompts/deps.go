// Package prompts contains MCP prompt implementations for result validation.
package prompts

import (
	"github.com/markovml/pandas-ai/pkg/outputs"
)

// Config holds configuration needed by prompts.
type Config struct {
	Registry *outputs.Registry
}
