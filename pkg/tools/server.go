package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Attach registers every tool in the registry on the MCP server.
func Attach(server *mcp.Server, registry *Registry, log zerolog.Logger) {
	for _, tool := range registry.All() {
		server.AddTool(&tool.Tool, handler(tool, log))
	}
}

// handler adapts a Tool to the MCP call contract. Whatever happens inside an
// operation, the caller gets back a plain-text result; errors never cross the
// tool boundary as transport failures.
func handler(tool *Tool, log zerolog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := log.With().
			Str("tool", tool.Name).
			Str("request_id", xid.New().String()).
			Logger()

		start := time.Now()
		text, isError := runTool(ctx, tool, decodeArgs(req.Params.Arguments), logger)
		logger.Debug().
			Dur("duration", time.Since(start)).
			Bool("error", isError).
			Msg("Tool invocation finished")

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
			IsError: isError,
		}, nil
	}
}

// runTool executes the tool and flattens every failure mode, including
// panics, into the "Error: ..." text contract.
func runTool(ctx context.Context, tool *Tool, args map[string]any, logger zerolog.Logger) (text string, isError bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Any("panic", r).Msg("Tool execution panicked")
			text = fmt.Sprintf("Error: %v", r)
			isError = true
		}
	}()

	result, err := tool.Execute(ctx, args)
	if err != nil {
		logger.Error().Err(err).Msg("Tool execution failed")
		return "Error: " + err.Error(), true
	}
	return result.Text, result.IsError()
}

// decodeArgs normalizes the transport's argument payload to a string map.
// The SDK hands raw JSON to untyped handlers; in-process callers pass maps.
func decodeArgs(v any) map[string]any {
	switch args := v.(type) {
	case map[string]any:
		return args
	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(args, &m); err == nil && m != nil {
			return m
		}
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(args, &m); err == nil && m != nil {
			return m
		}
	}
	return map[string]any{}
}
