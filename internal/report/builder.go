package report

import (
	"encoding/json"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"commentscope/internal/models"
)

const (
	topReactions = 3

	// Relative-frequency thresholds for keyword display tiers.
	tierLargeShare  = 0.7
	tierMediumShare = 0.4
)

// Options carries the presentation policy knobs. Zero values fall back to the
// stock preview lengths.
type Options struct {
	ReactionPreviewChars int
	MomentPreviewChars   int
}

func (o Options) withDefaults() Options {
	if o.ReactionPreviewChars <= 0 {
		o.ReactionPreviewChars = 100
	}
	if o.MomentPreviewChars <= 0 {
		o.MomentPreviewChars = 150
	}
	return o
}

// Reaction is one of the most extreme comments in either direction.
type Reaction struct {
	Score   float64
	Preview string
}

// Moment is a timestamp insight enriched with the playback offset used for
// time-anchored embeds.
type Moment struct {
	Timestamp    string
	StartSeconds int
	Mentions     int
	Preview      string
}

// KeywordTag is a ranked keyword with its display weight tier.
type KeywordTag struct {
	Word      string
	Count     int
	SizeClass string
}

// HistogramBin is one bar of the score-distribution chart.
type HistogramBin struct {
	Label string
	Count int
}

// Data is the fully derived document model handed to the renderer. It is a
// pure function of the pipeline outputs: rendering the same Data twice
// produces byte-identical artifacts.
type Data struct {
	VideoID       string
	Details       models.VideoDetails
	TotalComments int

	PositiveCount int
	NegativeCount int
	NeutralCount  int

	Histogram     []HistogramBin
	HistogramJSON template.JS
	BinLabelsJSON template.JS
	DoughnutJSON  template.JS

	TopPositive []Reaction
	TopNegative []Reaction
	Moments     []Moment
	Keywords    []KeywordTag

	PositiveSummary template.HTML
	NegativeSummary template.HTML
	NeutralSummary  template.HTML
	Conclusion      template.HTML
}

// Build derives every presentation aggregate from the pipeline outputs.
func Build(videoID string, details models.VideoDetails, classified models.Classification,
	mined models.Insights, summaries models.Summaries, conclusion string, opts Options) Data {

	opts = opts.withDefaults()
	histogram := buildHistogram(classified)

	data := Data{
		VideoID:       videoID,
		Details:       details,
		TotalComments: classified.Total(),
		PositiveCount: len(classified.Positive),
		NegativeCount: len(classified.Negative),
		NeutralCount:  len(classified.Neutral),

		Histogram:     histogram,
		HistogramJSON: marshalJS(histogramCounts(histogram)),
		BinLabelsJSON: marshalJS(histogramLabels(histogram)),
		DoughnutJSON: marshalJS([]int{
			len(classified.Positive), len(classified.Negative), len(classified.Neutral),
		}),

		TopPositive: topReactionsFor(classified.Positive, false, opts.ReactionPreviewChars),
		TopNegative: topReactionsFor(classified.Negative, true, opts.ReactionPreviewChars),
		Moments:     buildMoments(mined.Timestamps, opts.MomentPreviewChars),
		Keywords:    tierKeywords(mined.Keywords),

		PositiveSummary: template.HTML(summaries.Positive),
		NegativeSummary: template.HTML(summaries.Negative),
		NeutralSummary:  template.HTML(summaries.Neutral),
		Conclusion:      template.HTML(conclusion),
	}
	return data
}

// buildHistogram distributes scores across five fixed bins. The neutral bin
// carries the whole neutral bucket count rather than being recomputed from
// scores; all intervals are half-open except the final bin, which is closed
// on both ends.
func buildHistogram(classified models.Classification) []HistogramBin {
	bins := []HistogramBin{
		{Label: "-1.0 to -0.6"},
		{Label: "-0.6 to -0.2"},
		{Label: "Neutral (-0.2 to 0.2)", Count: len(classified.Neutral)},
		{Label: "0.2 to 0.6"},
		{Label: "0.6 to 1.0"},
	}
	for _, c := range classified.Negative {
		switch {
		case c.Score >= -1.0 && c.Score < -0.6:
			bins[0].Count++
		case c.Score >= -0.6 && c.Score < -0.2:
			bins[1].Count++
		}
	}
	for _, c := range classified.Positive {
		switch {
		case c.Score >= 0.2 && c.Score < 0.6:
			bins[3].Count++
		case c.Score >= 0.6 && c.Score <= 1.0:
			bins[4].Count++
		}
	}
	return bins
}

func histogramCounts(bins []HistogramBin) []int {
	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	return counts
}

func histogramLabels(bins []HistogramBin) []string {
	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
	}
	return labels
}

// topReactionsFor picks the three most extreme comments: highest scores for
// the positive bucket, lowest for the negative one.
func topReactionsFor(bucket []models.ScoredComment, ascending bool, previewChars int) []Reaction {
	sorted := make([]models.ScoredComment, len(bucket))
	copy(sorted, bucket)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Score < sorted[j].Score
		}
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > topReactions {
		sorted = sorted[:topReactions]
	}

	reactions := make([]Reaction, 0, len(sorted))
	for _, c := range sorted {
		reactions = append(reactions, Reaction{
			Score:   c.Score,
			Preview: truncate(c.Text, previewChars),
		})
	}
	return reactions
}

func buildMoments(insights []models.TimestampInsight, previewChars int) []Moment {
	moments := make([]Moment, 0, len(insights))
	for _, ins := range insights {
		moments = append(moments, Moment{
			Timestamp:    ins.Timestamp,
			StartSeconds: OffsetSeconds(ins.Timestamp),
			Mentions:     ins.Mentions,
			Preview:      truncate(ins.Comment, previewChars),
		})
	}
	return moments
}

// tierKeywords assigns display weight tiers keyed to each keyword's frequency
// relative to the top keyword. A rendering concern only; ranking is untouched.
func tierKeywords(keywords []models.KeywordCount) []KeywordTag {
	tags := make([]KeywordTag, 0, len(keywords))
	if len(keywords) == 0 {
		return tags
	}
	max := keywords[0].Count
	if max < 1 {
		max = 1
	}
	for _, kw := range keywords {
		sizeClass := "text-lg"
		switch {
		case float64(kw.Count) > float64(max)*tierLargeShare:
			sizeClass = "text-2xl"
		case float64(kw.Count) > float64(max)*tierMediumShare:
			sizeClass = "text-xl"
		}
		tags = append(tags, KeywordTag{Word: kw.Word, Count: kw.Count, SizeClass: sizeClass})
	}
	return tags
}

// OffsetSeconds converts an mm:ss or hh:mm:ss timestamp string into a total
// playback offset in seconds. Malformed input yields 0.
func OffsetSeconds(timestamp string) int {
	parts := strings.Split(timestamp, ":")
	fields := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0
		}
		fields = append(fields, n)
	}
	switch len(fields) {
	case 2:
		return fields[0]*60 + fields[1]
	case 3:
		return fields[0]*3600 + fields[1]*60 + fields[2]
	default:
		return 0
	}
}

// truncate shortens s to at most n runes, appending an ellipsis marker when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func marshalJS(v any) template.JS {
	data, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(data)
}
