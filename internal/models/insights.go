package models

// TimestampInsight aggregates every mention of one literal timestamp string
// across the positive bucket. Comment holds the first comment that mentioned
// the timestamp; Mentions counts every match, including repeats within a
// single comment.
type TimestampInsight struct {
	Timestamp string `json:"timestamp"` // mm:ss or hh:mm:ss
	Comment   string `json:"comment"`
	Mentions  int    `json:"count"`
}

// KeywordCount is one ranked keyword mined from positive-comment text.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Insights is the mined output of the positive bucket: up to 5 timestamps
// ranked by mention count and up to 10 keywords ranked by frequency.
type Insights struct {
	Timestamps []TimestampInsight `json:"top_timestamps_with_comments"`
	Keywords   []KeywordCount     `json:"top_keywords"`
}

// Summaries holds the three per-category HTML theme fragments returned by the
// summarization gateway.
type Summaries struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
	Neutral  string `json:"neutral"`
}
