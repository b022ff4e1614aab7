package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/uvzkit/uvz-server/pkg/analysis"
	"github.com/uvzkit/uvz-server/pkg/shared/websearch"
)

// Searcher issues best-effort web searches. An empty slice means no results
// or a soft failure upstream; searches never report errors.
type Searcher interface {
	Search(ctx context.Context, query string) []websearch.Result
	SearchAll(ctx context.Context, queries []string, perQuery int) []websearch.Result
}

// Toolkit wires the shared collaborators into the nine operations. All fields
// are read-only after construction; no state survives a single invocation.
type Toolkit struct {
	analyzer *analysis.Adapter
	search   Searcher
	log      zerolog.Logger
}

// NewToolkit creates the toolkit over an analysis adapter and a searcher.
func NewToolkit(analyzer *analysis.Adapter, search Searcher, log zerolog.Logger) *Toolkit {
	return &Toolkit{
		analyzer: analyzer,
		search:   search,
		log:      log.With().Str("component", "tools").Logger(),
	}
}

// Tools returns every operation as an MCP tool definition, in registration
// order.
func (tk *Toolkit) Tools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        IdentifyIndustryNichesName,
				Description: IdentifyIndustryNichesDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Identify Industry Niches"},
				InputSchema: IdentifyIndustryNichesSchema(),
			},
			Group:   GroupResearch,
			Execute: tk.executeIdentifyIndustryNiches,
		},
		{
			Tool: mcp.Tool{
				Name:        DrillUVZName,
				Description: DrillUVZDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Drill UVZ"},
				InputSchema: DrillUVZSchema(),
			},
			Group:   GroupResearch,
			Execute: tk.executeDrillUVZ,
		},
		{
			Tool: mcp.Tool{
				Name:        ResearchUVZTopicName,
				Description: ResearchUVZTopicDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Research UVZ Topic"},
				InputSchema: ResearchUVZTopicSchema(),
			},
			Group:   GroupResearch,
			Execute: tk.executeResearchUVZTopic,
		},
		{
			Tool: mcp.Tool{
				Name:        ValidateUVZDemandName,
				Description: ValidateUVZDemandDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Validate UVZ Demand"},
				InputSchema: ValidateUVZDemandSchema(),
			},
			Group:   GroupResearch,
			Execute: tk.executeValidateUVZDemand,
		},
		{
			Tool: mcp.Tool{
				Name:        GenerateEbookOutlineName,
				Description: GenerateEbookOutlineDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Generate Ebook Outline"},
				InputSchema: GenerateEbookOutlineSchema(),
			},
			Group:   GroupContent,
			Execute: tk.executeGenerateEbookOutline,
		},
		{
			Tool: mcp.Tool{
				Name:        ExpandChapterName,
				Description: ExpandChapterDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Expand Chapter"},
				InputSchema: ExpandChapterSchema(),
			},
			Group:   GroupContent,
			Execute: tk.executeExpandChapter,
		},
		{
			Tool: mcp.Tool{
				Name:        GenerateChapterContentName,
				Description: GenerateChapterContentDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Generate Chapter Content"},
				InputSchema: GenerateChapterContentSchema(),
			},
			Group:   GroupContent,
			Execute: tk.executeGenerateChapterContent,
		},
		{
			Tool: mcp.Tool{
				Name:        CompetitiveAnalysisName,
				Description: CompetitiveAnalysisDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Competitive Analysis"},
				InputSchema: CompetitiveAnalysisSchema(),
			},
			Group:   GroupResearch,
			Execute: tk.executeCompetitiveAnalysis,
		},
		{
			Tool: mcp.Tool{
				Name:        GenerateMarketingCopyName,
				Description: GenerateMarketingCopyDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Generate Marketing Copy"},
				InputSchema: GenerateMarketingCopySchema(),
			},
			Group:   GroupContent,
			Execute: tk.executeGenerateMarketingCopy,
		},
	}
}
