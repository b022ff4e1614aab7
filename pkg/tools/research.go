package tools

import (
	"context"
	"fmt"

	"github.com/uvzkit/uvz-server/pkg/shared/prompts"
	"github.com/uvzkit/uvz-server/pkg/shared/sanitize"
	"github.com/uvzkit/uvz-server/pkg/shared/websearch"
)

// executeResearchUVZTopic gathers web sources for a topic and folds them into
// an AI research report. Without a configured backend it degrades to a raw
// source listing.
func (tk *Toolkit) executeResearchUVZTopic(ctx context.Context, args map[string]any) (*Result, error) {
	topic := ReadString(args, "topic")
	if topic == "" {
		return ErrorResult("Error: Topic is required"), nil
	}

	topicClean := sanitize.Clean(topic)
	numSources, err := ParseCount(ReadString(args, "sources"), 10)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	results := tk.search.Search(ctx, topicClean+" guide tutorial best practices")
	if len(results) == 0 {
		return TextResult("No search results found for: " + topicClean), nil
	}
	if numSources > 0 && numSources < len(results) {
		results = results[:numSources]
	}
	sourcesText := websearch.FormatSources(results)

	if !tk.analyzer.Configured() {
		return TextResult(fmt.Sprintf("Research Results: %s\n\nSources:\n%s", topicClean, sourcesText)), nil
	}

	aiAnalysis := tk.analyzer.Analyze(ctx, prompts.TopicResearch(topicClean, sourcesText))
	return TextResult(fmt.Sprintf(
		"Research Report: %s\n\nAI Analysis:\n%s\n\nSources:\n%s",
		topicClean, aiAnalysis, sourcesText)), nil
}

// executeValidateUVZDemand probes three demand-signal queries and folds the
// aggregated signals into a go/no-go validation.
func (tk *Toolkit) executeValidateUVZDemand(ctx context.Context, args map[string]any) (*Result, error) {
	uvz := ReadString(args, "uvz_description")
	if uvz == "" {
		return ErrorResult("Error: UVZ description is required"), nil
	}

	uvzClean := sanitize.Clean(uvz)
	queries := []string{
		uvzClean + " problems",
		uvzClean + " solutions needed",
		"how to " + uvzClean,
	}
	signals := tk.search.SearchAll(ctx, queries, 3)
	if len(signals) == 0 {
		return TextResult("Limited demand signals found for: " + uvzClean), nil
	}
	findings := websearch.FormatSignals(signals)

	if !tk.analyzer.Configured() {
		return TextResult(fmt.Sprintf("Market Signals: %s\n\n%s", uvzClean, findings)), nil
	}

	validation := tk.analyzer.Analyze(ctx, prompts.DemandValidation(uvzClean, findings))
	return TextResult(fmt.Sprintf(
		"Demand Validation: %s\n\n%s\n\nRaw Signals:\n%s",
		uvzClean, validation, findings)), nil
}

// executeCompetitiveAnalysis lists competing offers in a UVZ space and folds
// them into a differentiation analysis.
func (tk *Toolkit) executeCompetitiveAnalysis(ctx context.Context, args map[string]any) (*Result, error) {
	uvz := ReadString(args, "uvz")
	if uvz == "" {
		return ErrorResult("Error: UVZ description is required"), nil
	}

	uvzClean := sanitize.Clean(uvz)
	numCompetitors, err := ParseCount(ReadString(args, "competitors"), 5)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	results := tk.search.Search(ctx, uvzClean+" courses guides products solutions")
	if len(results) == 0 {
		return TextResult("No competitors found for: " + uvzClean), nil
	}
	if numCompetitors > 0 && numCompetitors < len(results) {
		results = results[:numCompetitors]
	}
	competitorsText := websearch.FormatSources(results)

	if !tk.analyzer.Configured() {
		return TextResult(fmt.Sprintf("Competitors: %s\n\n%s", uvzClean, competitorsText)), nil
	}

	report := tk.analyzer.Analyze(ctx, prompts.CompetitorAnalysis(uvzClean, competitorsText))
	return TextResult(fmt.Sprintf(
		"Competitive Analysis: %s\n\n%s\n\nCompetitors:\n%s",
		uvzClean, report, competitorsText)), nil
}
