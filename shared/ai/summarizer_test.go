package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"commentscope/internal/models"
)

// fakeGenerator records prompts and returns a canned response or error.
type fakeGenerator struct {
	prompts  []string
	response string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func scored(n int, text string) []models.ScoredComment {
	comments := make([]models.ScoredComment, n)
	for i := range comments {
		comments[i] = models.ScoredComment{Text: text, Score: 0.5}
	}
	return comments
}

func TestSummarizeCategoryEmptyBucket(t *testing.T) {
	gen := &fakeGenerator{response: "<ul><li>unused</li></ul>"}
	s := NewSummarizer(gen, 0)

	got, err := s.SummarizeCategory(context.Background(), nil, "negative")
	if err != nil {
		t.Fatalf("empty bucket should not degrade: %v", err)
	}
	if got != "<p>No negative comments to analyze.</p>" {
		t.Errorf("unexpected fragment: %s", got)
	}
	if len(gen.prompts) != 0 {
		t.Errorf("empty bucket must not contact the service, got %d calls", len(gen.prompts))
	}
}

func TestSummarizeCategoryBoundsPromptSize(t *testing.T) {
	gen := &fakeGenerator{response: "<ul><li>theme</li></ul>"}
	s := NewSummarizer(gen, 0)

	if _, err := s.SummarizeCategory(context.Background(), scored(45, "great energy"), "positive"); err != nil {
		t.Fatalf("SummarizeCategory() error: %v", err)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(gen.prompts))
	}
	if got := strings.Count(gen.prompts[0], "- \"great energy\""); got != DefaultMaxPromptComments {
		t.Errorf("prompt quotes %d comments, want %d", got, DefaultMaxPromptComments)
	}
	if !strings.Contains(gen.prompts[0], "'positive' comments") {
		t.Errorf("prompt missing category label: %s", gen.prompts[0])
	}
}

func TestSummarizeCategoryFailureDegradesInline(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	s := NewSummarizer(gen, 0)

	got, err := s.SummarizeCategory(context.Background(), scored(3, "meh"), "neutral")
	if err == nil {
		t.Fatal("degraded summary should report its error")
	}
	if !strings.Contains(got, "Error summarizing neutral comments") ||
		!strings.Contains(got, "connection refused") {
		t.Errorf("expected inline error fragment, got %s", got)
	}
}

func TestStrategicConclusionZeroComments(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	s := NewSummarizer(gen, 0)

	got, err := s.StrategicConclusion(context.Background(), models.Classification{}, models.Summaries{})
	if err != nil {
		t.Fatalf("zero comments should not degrade: %v", err)
	}
	if !strings.Contains(got, "Not enough comment data") {
		t.Errorf("expected insufficient-data fragment, got %s", got)
	}
	if len(gen.prompts) != 0 {
		t.Errorf("zero comments must not contact the service, got %d calls", len(gen.prompts))
	}
}

func TestStrategicConclusionPrompt(t *testing.T) {
	gen := &fakeGenerator{response: "<ul><li>advice</li></ul>"}
	s := NewSummarizer(gen, 0)

	classified := models.Classification{
		Positive: scored(3, "good"),
		Negative: scored(1, "bad"),
		Neutral:  scored(4, "meh"),
	}
	summaries := models.Summaries{
		Positive: "<ul><li>crowd loves the drops</li></ul>",
		Negative: "<ul><li>audio too quiet</li></ul>",
	}

	got, err := s.StrategicConclusion(context.Background(), classified, summaries)
	if err != nil {
		t.Fatalf("StrategicConclusion() error: %v", err)
	}
	if got != "<ul><li>advice</li></ul>" {
		t.Errorf("unexpected conclusion: %s", got)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(gen.prompts))
	}

	prompt := gen.prompts[0]
	for _, want := range []string{
		"Total Comments: 8",
		"Positive Comments: 3 (37.5%)",
		"Negative Comments: 1 (12.5%)",
		"crowd loves the drops",
		"audio too quiet",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	// Summary markup must be stripped before re-prompting.
	if strings.Contains(prompt, "<li>crowd") || strings.Contains(prompt, "<ul>") {
		t.Errorf("prompt leaks HTML markup:\n%s", prompt)
	}
}

func TestStrategicConclusionFailureDegradesInline(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	s := NewSummarizer(gen, 0)

	got, err := s.StrategicConclusion(context.Background(),
		models.Classification{Positive: scored(2, "good")}, models.Summaries{})
	if err == nil {
		t.Fatal("degraded conclusion should report its error")
	}
	if !strings.Contains(got, "Failed to generate strategic conclusion") {
		t.Errorf("expected inline error fragment, got %s", got)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"Bullet list", "<ul><li>one</li><li>two</li></ul>", "onetwo"},
		{"Plain text untouched", "just text", "just text"},
		{"Nested markup", "<p>outer <b>inner</b></p>", "outer inner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripHTML(tt.in); got != tt.expected {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}
