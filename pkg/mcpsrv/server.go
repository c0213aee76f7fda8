package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/markovml/pandas-ai/internal/chartschema"
	"github.com/markovml/pandas-ai/internal/config"
	"github.com/markovml/pandas-ai/internal/history"
	"github.com/markovml/pandas-ai/internal/logging"
	"github.com/markovml/pandas-ai/internal/mcp"
	"github.com/markovml/pandas-ai/internal/mcp/tools"
	"github.com/markovml/pandas-ai/pkg/dataframe"
	"github.com/markovml/pandas-ai/pkg/outputs"
)

// Server is the result-validation MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin validation tools.
//
// Configuration is loaded from environment variables (HINT_STYLE,
// HISTORY_MAX_ITEMS, LOG_LEVEL, ...; see internal/config for all options).
// Use functional options to override logging, swap the tabular classifier,
// or register custom tools.
func NewServer(opts ...Option) (*Server, error) {
	cfg := &serverConfig{
		config: config.Load(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logCfg := logging.Config{
		Level:      cfg.config.LogLevel,
		Format:     cfg.config.LogFormat,
		FilePath:   cfg.config.LogFile,
		MaxSizeMB:  cfg.config.LogMaxSizeMB,
		MaxBackups: cfg.config.LogMaxBackups,
		MaxAgeDays: cfg.config.LogMaxAgeDays,
		Compress:   cfg.config.LogCompress,
	}
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create infrastructure
	classifier := cfg.classifier
	if classifier == nil {
		classifier = dataframe.NewClassifier()
	}
	registry := outputs.NewRegistry(classifier, cfg.config.HintStyle)

	var log *history.Log
	if cfg.config.HistoryMaxItems > 0 {
		log, err = history.NewLog(cfg.config.HistoryMaxItems)
		if err != nil {
			return nil, fmt.Errorf("failed to create history log: %w", err)
		}
	}

	checker, err := chartschema.NewChecker()
	if err != nil {
		return nil, fmt.Errorf("failed to compile chart schema: %w", err)
	}

	toolDeps := &tools.Deps{
		Config:   cfg.config,
		Registry: registry,
		History:  log,
		Chart:    checker,
	}

	// Public deps mirror the tool deps for custom tools.
	deps := &Deps{
		Config:   cfg.config,
		Registry: registry,
		History:  log,
		Chart:    checker,
	}

	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}

	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.promptRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.resourceRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
