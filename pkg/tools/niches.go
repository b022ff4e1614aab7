package tools

import (
	"context"
	"fmt"

	"github.com/uvzkit/uvz-server/pkg/analysis"
	"github.com/uvzkit/uvz-server/pkg/shared/prompts"
	"github.com/uvzkit/uvz-server/pkg/shared/sanitize"
)

// executeIdentifyIndustryNiches surveys an industry for niche candidates.
func (tk *Toolkit) executeIdentifyIndustryNiches(ctx context.Context, args map[string]any) (*Result, error) {
	industry := ReadString(args, "industry")
	if industry == "" {
		return ErrorResult("Error: Industry name is required"), nil
	}
	if !tk.analyzer.Configured() {
		return ErrorResult(analysis.NotConfigured), nil
	}

	industryClean := sanitize.Clean(industry)
	depth, err := ParseCount(ReadString(args, "depth"), 3)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	report := tk.analyzer.Analyze(ctx, prompts.IndustryNiches(industryClean, depth))
	return TextResult(fmt.Sprintf(
		"Industry Analysis: %s\n\n%s\n\nNext Steps: Use drill_uvz to go deeper",
		industryClean, report)), nil
}

// executeDrillUVZ narrows a niche down to its Unique Value Zone.
func (tk *Toolkit) executeDrillUVZ(ctx context.Context, args map[string]any) (*Result, error) {
	niche := ReadString(args, "niche")
	if niche == "" {
		return ErrorResult("Error: Niche description is required"), nil
	}
	if !tk.analyzer.Configured() {
		return ErrorResult(analysis.NotConfigured), nil
	}

	nicheClean := sanitize.Clean(niche)
	focusClean := "general opportunities"
	if focus := ReadString(args, "focus_area"); focus != "" {
		focusClean = sanitize.Clean(focus)
	}

	report := tk.analyzer.Analyze(ctx, prompts.DrillUVZ(nicheClean, focusClean))
	return TextResult(fmt.Sprintf("UVZ Deep Dive: %s\n\n%s", nicheClean, report)), nil
}
