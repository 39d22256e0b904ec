package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"commentscope/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxPromptComments bounds how many comments from a bucket are quoted
// into a summarization prompt. The remainder is deliberately ignored rather
// than sampled, so results stay deterministic given the fetch order.
const DefaultMaxPromptComments = 30

// Summarizer turns sentiment buckets into HTML theme summaries and produces
// the strategic conclusion, one generation call per fragment. Generation
// failures never propagate: they degrade to inline error fragments so one
// category's failure cannot take down the rest of the report.
type Summarizer struct {
	gen         TextGenerator
	maxComments int
}

func NewSummarizer(gen TextGenerator, maxComments int) *Summarizer {
	if maxComments <= 0 {
		maxComments = DefaultMaxPromptComments
	}
	return &Summarizer{gen: gen, maxComments: maxComments}
}

// SummarizeCategory returns an HTML bullet-list fragment of the recurring
// themes in one bucket. An empty bucket returns a fixed fragment without
// contacting the service. The returned fragment is always renderable; a
// non-nil error reports that this category degraded to an inline error
// fragment.
func (s *Summarizer) SummarizeCategory(ctx context.Context, comments []models.ScoredComment, category string) (string, error) {
	if len(comments) == 0 {
		return fmt.Sprintf("<p>No %s comments to analyze.</p>", category), nil
	}

	sample := comments
	if len(sample) > s.maxComments {
		sample = sample[:s.maxComments]
	}

	var quoted strings.Builder
	for _, c := range sample {
		fmt.Fprintf(&quoted, "- %q\n", c.Text)
	}

	prompt := fmt.Sprintf(
		"You are an audience analyst. Based ONLY on the following '%s' comments, "+
			"summarize the key themes in 2-3 concise bullet points. Format the output as "+
			"simple HTML bullet points using <ul> and <li> tags.\n\nComments:\n%s",
		category, quoted.String(),
	)

	log.Printf("Summarizing %d %s comments...", len(sample), category)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		fragment := fmt.Sprintf("<p class='text-red-400'>Error summarizing %s comments: %v</p>", category, err)
		return fragment, fmt.Errorf("%s summary failed: %w", category, err)
	}
	return text, nil
}

// StrategicConclusion combines aggregate sentiment statistics with the cleaned
// positive and negative summaries into one strategy prompt and returns 3-4
// actionable recommendations as an HTML fragment. With zero comments the
// service is not contacted at all. As with SummarizeCategory, the fragment is
// always renderable and the error only reports degradation.
func (s *Summarizer) StrategicConclusion(ctx context.Context, classified models.Classification, summaries models.Summaries) (string, error) {
	total := classified.Total()
	if total == 0 {
		return "<p>Not enough comment data to generate strategic suggestions.</p>", nil
	}

	numPositive := len(classified.Positive)
	numNegative := len(classified.Negative)
	positiveShare := float64(numPositive) / float64(total) * 100
	negativeShare := float64(numNegative) / float64(total) * 100

	prompt := fmt.Sprintf(
		"You are a content strategy consultant. I will provide you with a sentiment analysis "+
			"report for a video. Your task is to provide 3-4 actionable, strategic suggestions "+
			"for the creator. Focus on what's working (strengths to double down on), what isn't "+
			"(weaknesses to address), and how they can improve audience engagement or content "+
			"strategy. Format the output as an HTML unordered list (<ul> and <li> tags).\n\n"+
			"--- ANALYSIS REPORT ---\n"+
			"Total Comments: %d\n"+
			"Positive Comments: %d (%.1f%%)\n"+
			"Negative Comments: %d (%.1f%%)\n\n"+
			"Key Positive Themes:\n%s\n\n"+
			"Key Negative Themes:\n%s\n"+
			"--- END REPORT ---\n\n"+
			"Strategic Suggestions:",
		total,
		numPositive, positiveShare,
		numNegative, negativeShare,
		stripHTML(summaries.Positive),
		stripHTML(summaries.Negative),
	)

	log.Println("Generating strategic conclusion...")
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		fragment := fmt.Sprintf("<p class='text-red-400'>Failed to generate strategic conclusion: %v</p>", err)
		return fragment, fmt.Errorf("strategic conclusion failed: %w", err)
	}
	return text, nil
}

// stripHTML flattens an HTML fragment to its text content so markup from one
// generation call does not leak into the next prompt.
func stripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.TrimSpace(doc.Text())
}
