package tools

// Tool names and descriptions for the nine operations. All parameters are
// strings, including numeric-looking ones such as counts and depths, which
// are parsed internally with per-operation defaults.

const (
	IdentifyIndustryNichesName        = "identify_industry_niches"
	IdentifyIndustryNichesDescription = "Analyze an industry and identify potential niches with UVZ opportunities using AI analysis."

	DrillUVZName        = "drill_uvz"
	DrillUVZDescription = "Drill down into a specific niche to identify the Unique Value Zone with laser precision."

	ResearchUVZTopicName        = "research_uvz_topic"
	ResearchUVZTopicDescription = "Research a UVZ topic using free web search and AI analysis to gather insights."

	ValidateUVZDemandName        = "validate_uvz_demand"
	ValidateUVZDemandDescription = "Validate market demand for a UVZ by analyzing search trends, discussions, and market signals."

	GenerateEbookOutlineName        = "generate_ebook_outline"
	GenerateEbookOutlineDescription = "Generate a comprehensive ebook outline for a digital product based on UVZ research."

	ExpandChapterName        = "expand_chapter"
	ExpandChapterDescription = "Expand a chapter from an ebook outline into detailed sections with talking points."

	GenerateChapterContentName        = "generate_chapter_content"
	GenerateChapterContentDescription = "Generate full written content for a chapter based on the expanded outline."

	CompetitiveAnalysisName        = "competitive_analysis"
	CompetitiveAnalysisDescription = "Analyze competitors in a UVZ space to identify differentiation opportunities."

	GenerateMarketingCopyName        = "generate_marketing_copy"
	GenerateMarketingCopyDescription = "Generate marketing copy for a digital product including landing page, email sequences, or social posts."
)

func stringParam(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// IdentifyIndustryNichesSchema returns the JSON schema for identify_industry_niches.
func IdentifyIndustryNichesSchema() map[string]any {
	return objectSchema(map[string]any{
		"industry": stringParam("The industry to analyze, e.g. 'pet grooming'"),
		"depth":    stringParam("How many niches to identify (default 3)"),
	}, "industry")
}

// DrillUVZSchema returns the JSON schema for drill_uvz.
func DrillUVZSchema() map[string]any {
	return objectSchema(map[string]any{
		"niche":      stringParam("The niche to drill into"),
		"focus_area": stringParam("Optional focus area within the niche"),
	}, "niche")
}

// ResearchUVZTopicSchema returns the JSON schema for research_uvz_topic.
func ResearchUVZTopicSchema() map[string]any {
	return objectSchema(map[string]any{
		"topic":   stringParam("The topic to research"),
		"sources": stringParam("Maximum number of sources to include (default 10)"),
	}, "topic")
}

// ValidateUVZDemandSchema returns the JSON schema for validate_uvz_demand.
func ValidateUVZDemandSchema() map[string]any {
	return objectSchema(map[string]any{
		"uvz_description": stringParam("Description of the UVZ to validate"),
	}, "uvz_description")
}

// GenerateEbookOutlineSchema returns the JSON schema for generate_ebook_outline.
func GenerateEbookOutlineSchema() map[string]any {
	return objectSchema(map[string]any{
		"topic":    stringParam("The ebook topic"),
		"audience": stringParam("Target audience (default 'general audience')"),
		"length":   stringParam("Approximate page count (default 50)"),
	}, "topic")
}

// ExpandChapterSchema returns the JSON schema for expand_chapter.
func ExpandChapterSchema() map[string]any {
	return objectSchema(map[string]any{
		"chapter_title": stringParam("Title of the chapter to expand"),
		"key_points":    stringParam("Key points the chapter must cover"),
	}, "chapter_title")
}

// GenerateChapterContentSchema returns the JSON schema for generate_chapter_content.
func GenerateChapterContentSchema() map[string]any {
	return objectSchema(map[string]any{
		"chapter_title": stringParam("Title of the chapter"),
		"outline":       stringParam("The expanded chapter outline"),
		"tone":          stringParam("Writing tone (default 'professional')"),
	}, "chapter_title", "outline")
}

// CompetitiveAnalysisSchema returns the JSON schema for competitive_analysis.
func CompetitiveAnalysisSchema() map[string]any {
	return objectSchema(map[string]any{
		"uvz":         stringParam("The UVZ space to analyze"),
		"competitors": stringParam("Maximum number of competitors to list (default 5)"),
	}, "uvz")
}

// GenerateMarketingCopySchema returns the JSON schema for generate_marketing_copy.
func GenerateMarketingCopySchema() map[string]any {
	return objectSchema(map[string]any{
		"product_title": stringParam("The product title"),
		"uvz":           stringParam("The UVZ the product serves"),
		"copy_type":     stringParam("One of landing_page, email_sequence, social_posts (default landing_page)"),
	}, "product_title", "uvz")
}
