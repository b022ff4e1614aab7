// Package tools implements the nine UVZ research and content operations
// exposed at the MCP tool boundary. Each operation is a thin composition over
// the shared sanitizer, search aggregator, prompt templates, and analysis
// adapter; the only per-operation variance is required fields, query count,
// prompt template, and report headings.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool definition with its execution logic.
type Tool struct {
	mcp.Tool        // Name, Description, Annotations, InputSchema
	Group    string // research or content
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Tool groups.
const (
	GroupResearch = "research"
	GroupContent  = "content"
)

// Result is the outcome of a tool invocation. The tool boundary speaks plain
// text only: failures surface as "Error: ..." strings with an error status,
// never as a typed failure channel.
type Result struct {
	Status ResultStatus
	Text   string
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	// ResultSuccess indicates the tool produced a report.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates a user-facing "Error: ..." outcome.
	ResultError ResultStatus = "error"
)

// IsError returns true for an error-status result.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}
