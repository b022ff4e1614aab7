package tools

import (
	"context"
	"fmt"

	"github.com/uvzkit/uvz-server/pkg/analysis"
	"github.com/uvzkit/uvz-server/pkg/shared/prompts"
	"github.com/uvzkit/uvz-server/pkg/shared/sanitize"
)

// Recognized copy types for generate_marketing_copy.
const (
	CopyTypeLandingPage   = "landing_page"
	CopyTypeEmailSequence = "email_sequence"
	CopyTypeSocialPosts   = "social_posts"
)

// executeGenerateMarketingCopy writes marketing copy in one of three fixed
// formats. The copy type is a closed set; anything else is rejected before
// the backend is touched.
func (tk *Toolkit) executeGenerateMarketingCopy(ctx context.Context, args map[string]any) (*Result, error) {
	productTitle := ReadString(args, "product_title")
	uvz := ReadString(args, "uvz")
	if productTitle == "" || uvz == "" {
		return ErrorResult("Error: Product title and UVZ required"), nil
	}
	if !tk.analyzer.Configured() {
		return ErrorResult(analysis.NotConfigured), nil
	}

	titleClean := sanitize.Clean(productTitle)
	uvzClean := sanitize.Clean(uvz)
	copyType := sanitize.Clean(ReadStringDefault(args, "copy_type", CopyTypeLandingPage))

	var prompt string
	switch copyType {
	case CopyTypeLandingPage:
		prompt = prompts.LandingPageCopy(titleClean, uvzClean)
	case CopyTypeEmailSequence:
		prompt = prompts.EmailSequenceCopy(titleClean, uvzClean)
	case CopyTypeSocialPosts:
		prompt = prompts.SocialPostsCopy(titleClean, uvzClean)
	default:
		return ErrorResult("Error: Unknown copy type. Use: landing_page, email_sequence, or social_posts"), nil
	}

	copyContent := tk.analyzer.Analyze(ctx, prompt)
	return TextResult(fmt.Sprintf(
		"Marketing Copy: %s\n\nProduct: %s\n\n%s",
		copyType, titleClean, copyContent)), nil
}
