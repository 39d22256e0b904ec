package sentiment

import (
	"commentscope/internal/models"

	"github.com/jonreiter/govader"
)

// Classification thresholds on the VADER compound score. The dead zone around
// zero deliberately biases borderline comments toward neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classifier scores comments with a VADER lexicon and partitions them into
// sentiment buckets.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewClassifier() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify scores every comment and splits the input into positive, negative
// and neutral buckets, preserving input order within each bucket. An empty
// input yields three empty buckets, not an error.
func (c *Classifier) Classify(comments []string) models.Classification {
	var result models.Classification
	for _, comment := range comments {
		scored := models.ScoredComment{
			Text:  comment,
			Score: c.analyzer.PolarityScores(comment).Compound,
		}
		switch bucketFor(scored.Score) {
		case models.BucketPositive:
			result.Positive = append(result.Positive, scored)
		case models.BucketNegative:
			result.Negative = append(result.Negative, scored)
		default:
			result.Neutral = append(result.Neutral, scored)
		}
	}
	return result
}

// bucketFor applies the threshold rule to a compound score. Both thresholds
// are closed boundaries: exactly 0.05 is positive, exactly -0.05 is negative.
func bucketFor(score float64) models.Bucket {
	switch {
	case score >= positiveThreshold:
		return models.BucketPositive
	case score <= negativeThreshold:
		return models.BucketNegative
	default:
		return models.BucketNeutral
	}
}
