package insights

import (
	"regexp"
	"sort"
	"strings"

	"commentscope/internal/models"
)

const (
	maxTimestamps = 5
	maxKeywords   = 10
)

var (
	// Matches mm:ss and hh:mm:ss mentions like "12:34" or "1:02:45".
	timestampPattern = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)

	// Runs of at least four word characters. The explicit Unicode classes
	// keep accented words like "città" in one token; Go's \w is ASCII-only
	// and would split them into fragments.
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{4,}`)
)

// DefaultStopwords excludes generic praise words and the word "video" itself,
// which would otherwise dominate every keyword ranking.
var DefaultStopwords = []string{
	"this", "that", "with", "what", "from", "your", "have", "just", "like", "love", "video",
}

// Extractor mines positive comments for recurring timestamp mentions and
// frequent keywords. It is pure and total over any string input.
type Extractor struct {
	stopwords map[string]struct{}
}

// NewExtractor builds an extractor with the given stopword list; a nil or
// empty list falls back to DefaultStopwords.
func NewExtractor(stopwords []string) *Extractor {
	if len(stopwords) == 0 {
		stopwords = DefaultStopwords
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{stopwords: set}
}

// Extract returns up to 5 timestamp insights ranked by mention count and up
// to 10 keywords ranked by frequency. An empty bucket yields empty lists.
func (e *Extractor) Extract(positive []models.ScoredComment) models.Insights {
	return models.Insights{
		Timestamps: e.topTimestamps(positive),
		Keywords:   e.topKeywords(positive),
	}
}

// topTimestamps aggregates mentions by literal timestamp string. The first
// comment carrying a timestamp becomes its representative; every subsequent
// match increments the count, including repeats within one comment. Ties keep
// first-seen order.
func (e *Extractor) topTimestamps(positive []models.ScoredComment) []models.TimestampInsight {
	byStamp := make(map[string]*models.TimestampInsight)
	var order []string

	for _, c := range positive {
		for _, ts := range timestampPattern.FindAllString(c.Text, -1) {
			insight, seen := byStamp[ts]
			if !seen {
				insight = &models.TimestampInsight{Timestamp: ts, Comment: c.Text}
				byStamp[ts] = insight
				order = append(order, ts)
			}
			insight.Mentions++
		}
	}

	result := make([]models.TimestampInsight, 0, len(order))
	for _, ts := range order {
		result = append(result, *byStamp[ts])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Mentions > result[j].Mentions
	})
	if len(result) > maxTimestamps {
		result = result[:maxTimestamps]
	}
	return result
}

// topKeywords counts lower-cased tokens of length >= 4 across all positive
// text, minus the stopword set. Ties keep first-seen order.
func (e *Extractor) topKeywords(positive []models.ScoredComment) []models.KeywordCount {
	var sb strings.Builder
	for _, c := range positive {
		sb.WriteString(c.Text)
		sb.WriteString(" ")
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(sb.String()), -1) {
		if _, skip := e.stopwords[word]; skip {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	result := make([]models.KeywordCount, 0, len(order))
	for _, word := range order {
		result = append(result, models.KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > maxKeywords {
		result = result[:maxKeywords]
	}
	return result
}
