// Command uvz-server runs the UVZ research MCP server over stdio.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/uvzkit/uvz-server/pkg/analysis"
	"github.com/uvzkit/uvz-server/pkg/config"
	"github.com/uvzkit/uvz-server/pkg/shared/websearch"
	"github.com/uvzkit/uvz-server/pkg/tools"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to the optional YAML config file")
	flag.Parse()

	// stdout carries the MCP stdio transport, so all logging goes to stderr.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.Logging.Level != "" {
		if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			log = log.Level(level)
		} else {
			log.Warn().Str("level", cfg.Logging.Level).Msg("Unknown log level, keeping default")
		}
	}

	ctx := context.Background()

	var backend analysis.Analyzer
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, AI analysis operations will fail closed")
	} else {
		gemini, err := analysis.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Gemini client, AI analysis operations will fail closed")
		} else {
			backend = gemini
			log.Info().Msg("Gemini API configured")
		}
	}
	adapter := analysis.NewAdapter(backend, log)

	searcher := websearch.NewClient(log, websearch.Options{
		Timeout:   time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		UserAgent: cfg.Search.UserAgent,
	})

	toolkit := tools.NewToolkit(adapter, searcher, log)
	registry := tools.NewRegistry()
	for _, tool := range toolkit.Tools() {
		registry.Register(tool)
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "uvz", Version: version}, nil)
	tools.Attach(server, registry, log)

	log.Info().Str("version", version).Msg("Starting UVZ MCP server")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error().Err(err).Msg("Server error")
		os.Exit(1)
	}
}
