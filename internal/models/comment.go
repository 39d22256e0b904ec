package models

// Bucket identifies the sentiment partition a comment landed in.
type Bucket string

const (
	BucketPositive Bucket = "positive"
	BucketNegative Bucket = "negative"
	BucketNeutral  Bucket = "neutral"
)

// ScoredComment pairs a raw comment with its compound polarity score in [-1, 1].
type ScoredComment struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Classification holds the three sentiment buckets. Each bucket preserves the
// original fetch order of its comments, and every input comment appears in
// exactly one bucket.
type Classification struct {
	Positive []ScoredComment `json:"positive_comments"`
	Negative []ScoredComment `json:"negative_comments"`
	Neutral  []ScoredComment `json:"neutral_comments"`
}

// Total returns the number of classified comments across all buckets.
func (c Classification) Total() int {
	return len(c.Positive) + len(c.Negative) + len(c.Neutral)
}
