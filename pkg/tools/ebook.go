package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/uvzkit/uvz-server/pkg/analysis"
	"github.com/uvzkit/uvz-server/pkg/shared/prompts"
	"github.com/uvzkit/uvz-server/pkg/shared/sanitize"
)

// executeGenerateEbookOutline produces a full digital-product outline.
func (tk *Toolkit) executeGenerateEbookOutline(ctx context.Context, args map[string]any) (*Result, error) {
	topic := ReadString(args, "topic")
	if topic == "" {
		return ErrorResult("Error: Topic is required"), nil
	}
	if !tk.analyzer.Configured() {
		return ErrorResult(analysis.NotConfigured), nil
	}

	topicClean := sanitize.Clean(topic)
	audienceClean := "general audience"
	if audience := ReadString(args, "audience"); audience != "" {
		audienceClean = sanitize.Clean(audience)
	}
	pages, err := ParseCount(ReadString(args, "length"), 50)
	if err != nil {
		return ErrorResult("Error: " + err.Error()), nil
	}

	outline := tk.analyzer.Analyze(ctx, prompts.EbookOutline(topicClean, audienceClean, pages))
	return TextResult("Ebook Outline Generated\n\n" + outline), nil
}

// executeExpandChapter expands one outline chapter into detailed sections.
// Key points are a content field and pass through unsanitized; only the
// chapter title is filtered.
func (tk *Toolkit) executeExpandChapter(ctx context.Context, args map[string]any) (*Result, error) {
	chapterTitle := ReadString(args, "chapter_title")
	if chapterTitle == "" {
		return ErrorResult("Error: Chapter title is required"), nil
	}
	if !tk.analyzer.Configured() {
		return ErrorResult(analysis.NotConfigured), nil
	}

	chapterClean := sanitize.Clean(chapterTitle)
	keyPoints := ReadStringDefault(args, "key_points", "Cover the main aspects")

	expansion := tk.analyzer.Analyze(ctx, prompts.ChapterExpansion(chapterClean, keyPoints))
	return TextResult(fmt.Sprintf("Chapter Expansion: %s\n\n%s", chapterClean, expansion)), nil
}

// executeGenerateChapterContent writes full prose for a chapter from its
// expanded outline. The outline is a content field and passes through
// unsanitized.
func (tk *Toolkit) executeGenerateChapterContent(ctx context.Context, args map[string]any) (*Result, error) {
	chapterTitle := ReadString(args, "chapter_title")
	outline := ReadString(args, "outline")
	if chapterTitle == "" || outline == "" {
		return ErrorResult("Error: Chapter title and outline required"), nil
	}
	if !tk.analyzer.Configured() {
		return ErrorResult(analysis.NotConfigured), nil
	}

	chapterClean := sanitize.Clean(chapterTitle)
	toneClean := sanitize.Clean(ReadStringDefault(args, "tone", "professional"))

	content := tk.analyzer.Analyze(ctx, prompts.ChapterContent(chapterClean, outline, toneClean))
	wordCount := len(strings.Fields(content))
	return TextResult(fmt.Sprintf(
		"Chapter Content: %s\n\n%s\n\nStats: ~%d words, %s tone",
		chapterClean, content, wordCount, toneClean)), nil
}
