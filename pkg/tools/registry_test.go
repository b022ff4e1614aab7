package tools

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/uvzkit/uvz-server/pkg/analysis"
)

func TestRegistryHoldsAllOperations(t *testing.T) {
	tk := NewToolkit(analysis.NewAdapter(nil, zerolog.Nop()), &fakeSearcher{}, zerolog.Nop())
	registry := NewRegistry()
	for _, tool := range tk.Tools() {
		registry.Register(tool)
	}

	want := []string{
		CompetitiveAnalysisName,
		DrillUVZName,
		ExpandChapterName,
		GenerateChapterContentName,
		GenerateEbookOutlineName,
		GenerateMarketingCopyName,
		IdentifyIndustryNichesName,
		ResearchUVZTopicName,
		ValidateUVZDemandName,
	}
	all := registry.All()
	if len(all) != len(want) {
		t.Fatalf("registry holds %d tools, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("All()[%d] = %q, want %q (sorted order)", i, all[i].Name, name)
		}
	}

	for _, name := range want {
		tool := registry.Get(name)
		if tool == nil {
			t.Fatalf("Get(%q) = nil", name)
		}
		if tool.Execute == nil {
			t.Errorf("%s has no executor", name)
		}
		if tool.Description == "" {
			t.Errorf("%s has no description", name)
		}
		if tool.InputSchema == nil {
			t.Errorf("%s has no input schema", name)
		}
	}

	if got := len(registry.ByGroup(GroupResearch)); got != 5 {
		t.Errorf("research group holds %d tools, want 5", got)
	}
	if got := len(registry.ByGroup(GroupContent)); got != 4 {
		t.Errorf("content group holds %d tools, want 4", got)
	}
	if registry.Get("unknown_tool") != nil {
		t.Error("Get of unknown tool should be nil")
	}
}
