package sentiment

import (
	"testing"

	"commentscope/internal/models"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected models.Bucket
	}{
		{"Strongly positive", 0.9, models.BucketPositive},
		{"Positive boundary is closed", 0.05, models.BucketPositive},
		{"Just below positive boundary", 0.049, models.BucketNeutral},
		{"Zero is neutral", 0.0, models.BucketNeutral},
		{"Just above negative boundary", -0.049, models.BucketNeutral},
		{"Negative boundary is closed", -0.05, models.BucketNegative},
		{"Strongly negative", -0.9, models.BucketNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucketFor(tt.score); got != tt.expected {
				t.Errorf("bucketFor(%v) = %s, want %s", tt.score, got, tt.expected)
			}
		})
	}
}

func TestClassifyPartitionsEveryComment(t *testing.T) {
	comments := []string{
		"This set is absolutely amazing, I love it!",
		"Worst performance I have ever seen, terrible.",
		"The drop comes at 12:34.",
		"Great mix, fantastic energy!",
		"Awful sound quality, really disappointing.",
	}

	classifier := NewClassifier()
	result := classifier.Classify(comments)

	if total := result.Total(); total != len(comments) {
		t.Errorf("bucket sizes sum to %d, want %d", total, len(comments))
	}

	// Every scored comment must agree with the threshold rule for its bucket.
	for _, c := range result.Positive {
		if c.Score < positiveThreshold {
			t.Errorf("positive bucket holds score %v below threshold", c.Score)
		}
	}
	for _, c := range result.Negative {
		if c.Score > negativeThreshold {
			t.Errorf("negative bucket holds score %v above threshold", c.Score)
		}
	}
	for _, c := range result.Neutral {
		if c.Score >= positiveThreshold || c.Score <= negativeThreshold {
			t.Errorf("neutral bucket holds out-of-band score %v", c.Score)
		}
	}
}

func TestClassifyPreservesOrderWithinBuckets(t *testing.T) {
	comments := []string{
		"I love this, wonderful work!",
		"Absolutely fantastic, great job!",
		"This is amazing, best set ever!",
	}

	classifier := NewClassifier()
	result := classifier.Classify(comments)

	if len(result.Positive) != len(comments) {
		t.Fatalf("expected all %d comments positive, got %d", len(comments), len(result.Positive))
	}
	for i, c := range result.Positive {
		if c.Text != comments[i] {
			t.Errorf("position %d: got %q, want %q", i, c.Text, comments[i])
		}
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	result := NewClassifier().Classify(nil)
	if len(result.Positive) != 0 || len(result.Negative) != 0 || len(result.Neutral) != 0 {
		t.Errorf("empty input should yield three empty buckets, got %+v", result)
	}
}
