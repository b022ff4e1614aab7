// Package analysis wraps the generative-text backend behind a uniform call
// contract with failure isolation: the rest of the pipeline only ever sees
// plain text, never an error value or an exception.
package analysis

import (
	"context"

	"github.com/rs/zerolog"
)

// NotConfigured is returned by every call when no backend credential was
// present at startup.
const NotConfigured = "Error: Gemini API key not configured"

// Analyzer produces free-form text for a prompt.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Adapter converts Analyzer outcomes to the plain-string contract the tool
// boundary requires. It holds the one process-wide backend handle, built once
// at startup and read-only afterwards. A nil backend means no credential was
// configured; every call then fails closed without touching the network.
type Adapter struct {
	backend Analyzer
	log     zerolog.Logger
}

// NewAdapter wraps the backend. backend may be nil.
func NewAdapter(backend Analyzer, log zerolog.Logger) *Adapter {
	return &Adapter{
		backend: backend,
		log:     log.With().Str("component", "analysis").Logger(),
	}
}

// Configured reports whether a backend is available.
func (a *Adapter) Configured() bool {
	return a.backend != nil
}

// Analyze runs the prompt through the backend. Backend errors never
// propagate: they come back as "Error: ..." text so a failing dependency
// degrades the report instead of aborting the operation.
func (a *Adapter) Analyze(ctx context.Context, prompt string) string {
	if a.backend == nil {
		return NotConfigured
	}
	text, err := a.backend.Analyze(ctx, prompt)
	if err != nil {
		a.log.Error().Err(err).Msg("Analysis backend call failed")
		return "Error: " + err.Error()
	}
	return text
}
