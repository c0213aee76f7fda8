package mcpsrv

import (
	"github.com/markovml/pandas-ai/internal/chartschema"
	"github.com/markovml/pandas-ai/internal/config"
	"github.com/markovml/pandas-ai/internal/history"
	"github.com/markovml/pandas-ai/pkg/outputs"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Config   *config.Config
	Registry *outputs.Registry
	History  *history.Log
	Chart    *chartschema.Checker
}
