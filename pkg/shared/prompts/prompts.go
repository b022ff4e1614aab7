// Package prompts builds the fixed instruction templates sent to the analysis
// backend. Every function is pure: slots are filled with already-sanitized
// field values and/or serialized search-result text. Search-harvested text is
// inserted verbatim; user input must be sanitized by the caller first.
package prompts

import "fmt"

// IndustryNiches asks for a fixed number of niche candidates in an industry.
func IndustryNiches(industry string, depth int) string {
	return fmt.Sprintf("Analyze the %s industry and identify %d highly specific niches. "+
		"For each provide: 1. Niche Name 2. Market Size 3. Unique Value Zone (UVZ) "+
		"4. Target Audience 5. Differentiation 6. Monetization Potential. "+
		"Format as structured markdown.", industry, depth)
}

// DrillUVZ narrows a niche down to its Unique Value Zone.
func DrillUVZ(niche, focus string) string {
	return fmt.Sprintf("Deep UVZ analysis for niche: %s, focus: %s. "+
		"Provide: Problem Statement, Target Avatar, Current Solutions, The Gap, "+
		"Value Proposition, Validation Signals, Competition Level, Monetization Pathways, "+
		"Quick Win Strategy. Be extremely specific.", niche, focus)
}

// TopicResearch folds aggregated search sources into a research instruction.
func TopicResearch(topic, sources string) string {
	return fmt.Sprintf("Based on these search results about '%s', provide: Key Insights, "+
		"Common Themes, Best Practices, Knowledge Gaps, Content Opportunities.\n\n%s", topic, sources)
}

// DemandValidation folds demand signals into a go/no-go analysis instruction.
func DemandValidation(uvz, findings string) string {
	return fmt.Sprintf("Analyze market signals for: %s\n\n%s\n\n"+
		"Provide: Demand Level, Market Signals, Competition Analysis, Opportunity Score (1-10), "+
		"Red Flags, Green Lights, Recommended Action (Go/No-Go).", uvz, findings)
}

// EbookOutline asks for a complete digital-product outline.
func EbookOutline(topic, audience string, pages int) string {
	return fmt.Sprintf("Create comprehensive ebook outline for: Topic: %s, Audience: %s, "+
		"Length: ~%d pages. Include: Title, Subtitle, Target Reader, Chapter Structure "+
		"(10+ chapters with objectives, sections, estimated pages), Unique Selling Points, "+
		"Key Takeaways, Marketing Hooks.", topic, audience, pages)
}

// ChapterExpansion turns an outline chapter into detailed sections.
func ChapterExpansion(chapter, keyPoints string) string {
	return fmt.Sprintf("Expand chapter: %s. Key points: %s. Provide: Opening Hook, Introduction, "+
		"Main Sections (3-7 with key concepts, talking points, examples, mistakes to avoid, "+
		"action steps), Chapter Summary, Transition. Include estimated word count and "+
		"supporting elements needed.", chapter, keyPoints)
}

// ChapterContent asks for full prose for a chapter.
func ChapterContent(chapter, outline, tone string) string {
	return fmt.Sprintf("Write full chapter in %s tone: %s\n\nOutline:\n%s\n\n"+
		"Requirements: engaging prose, examples, subheadings, bullet points for lists, "+
		"actionable takeaways, 2000-3000 words.", tone, chapter, outline)
}

// CompetitorAnalysis folds competitor listings into a differentiation analysis.
func CompetitorAnalysis(uvz, competitors string) string {
	return fmt.Sprintf("Analyze competitors for: %s\n\n%s\n\n"+
		"Provide: Market Saturation, Competitor Strengths, Weaknesses, Market Gaps, "+
		"Differentiation Strategy, Positioning, Pricing Insights, Content Strategy.", uvz, competitors)
}

// LandingPageCopy asks for conversion-focused landing page copy.
func LandingPageCopy(title, uvz string) string {
	return fmt.Sprintf("Create high-converting landing page for: %s, UVZ: %s. "+
		"Include: Hero (headline, subheadline, CTA), Problem, Solution, Benefits, Social Proof, "+
		"Features, Guarantee, Final CTA, FAQ.", title, uvz)
}

// EmailSequenceCopy asks for a five-email launch sequence.
func EmailSequenceCopy(title, uvz string) string {
	return fmt.Sprintf("Create 5-email sequence for: %s, UVZ: %s. "+
		"Each email: subject, preview, body (300-500 words), CTA. "+
		"Emails: 1-Welcome, 2-Story+Problem, 3-Solution, 4-Social Proof, 5-Urgency.", title, uvz)
}

// SocialPostsCopy asks for a ten-post social media batch.
func SocialPostsCopy(title, uvz string) string {
	return fmt.Sprintf("Create 10 social posts for: %s, UVZ: %s. "+
		"Include 3 educational, 3 engagement, 2 promotional, 2 testimonial posts. "+
		"Each: platform, text, hashtags, visual description.", title, uvz)
}
