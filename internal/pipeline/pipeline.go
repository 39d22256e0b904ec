package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"commentscope/internal/insights"
	"commentscope/internal/models"
	"commentscope/internal/report"
	"commentscope/internal/sentiment"
	"commentscope/shared/ai"
	"commentscope/shared/config"
	"commentscope/shared/monitoring"
	"commentscope/shared/storage"
)

// VideoSource supplies the metadata and comment stream for one video. The
// production implementation is internal/youtube.Client.
type VideoSource interface {
	VideoDetails(ctx context.Context, videoID string) (models.VideoDetails, error)
	Comments(ctx context.Context, videoID string) ([]string, error)
}

// Pipeline runs the full comment analysis for a single video: classify,
// mine insights, summarize, synthesize strategy, compile the report, and
// record the result in the registry. One sequential flow per invocation.
type Pipeline struct {
	source     VideoSource
	classifier *sentiment.Classifier
	extractor  *insights.Extractor
	summarizer *ai.Summarizer
	compiler   *report.Compiler
	registry   *storage.ReportRegistry
	monitor    *monitoring.Monitor

	fetchTimeout    time.Duration
	generateTimeout time.Duration
}

func New(cfg *config.Config, source VideoSource, gen ai.TextGenerator, registry *storage.ReportRegistry) (*Pipeline, error) {
	compiler, err := report.NewCompiler(cfg.Report.OutputDir, report.Options{
		ReactionPreviewChars: cfg.Report.ReactionPreviewChars,
		MomentPreviewChars:   cfg.Report.MomentPreviewChars,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report compiler: %w", err)
	}

	return &Pipeline{
		source:          source,
		classifier:      sentiment.NewClassifier(),
		extractor:       insights.NewExtractor(cfg.Report.Stopwords),
		summarizer:      ai.NewSummarizer(gen, cfg.AI.MaxPromptComments),
		compiler:        compiler,
		registry:        registry,
		monitor:         monitoring.NewMonitor(),
		fetchTimeout:    time.Duration(cfg.YouTube.FetchTimeoutSeconds) * time.Second,
		generateTimeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}, nil
}

// Monitor exposes run health for the web server's health endpoints.
func (p *Pipeline) Monitor() *monitoring.Monitor {
	return p.monitor
}

// Run analyzes one video and returns the report artifact name. Metadata and
// comment fetch failures are fatal; summarization and strategy failures
// degrade to inline fragments inside the compiled report.
func (p *Pipeline) Run(ctx context.Context, videoID string) (string, error) {
	startTime := time.Now()
	log.Printf("Starting analysis for video %s", videoID)

	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	details, err := p.source.VideoDetails(fetchCtx, videoID)
	cancel()
	if err != nil {
		p.monitor.RecordCriticalFailure(err, time.Since(startTime))
		return "", fmt.Errorf("failed to fetch video details: %w", err)
	}
	log.Printf("Analyzing %q by %q", details.Title, details.ChannelTitle)

	fetchCtx, cancel = context.WithTimeout(ctx, p.fetchTimeout)
	comments, err := p.source.Comments(fetchCtx, videoID)
	cancel()
	if err != nil {
		p.monitor.RecordCriticalFailure(err, time.Since(startTime))
		return "", fmt.Errorf("failed to fetch comments: %w", err)
	}

	classified := p.classifier.Classify(comments)
	log.Printf("Classified %d comments: %d positive, %d negative, %d neutral",
		classified.Total(), len(classified.Positive), len(classified.Negative), len(classified.Neutral))

	mined := p.extractor.Extract(classified.Positive)
	log.Printf("Mined %d timestamp insights and %d keywords", len(mined.Timestamps), len(mined.Keywords))

	var summaries models.Summaries
	summaries.Positive = p.summarizeCategory(ctx, classified.Positive, "positive", startTime)
	summaries.Negative = p.summarizeCategory(ctx, classified.Negative, "negative", startTime)
	summaries.Neutral = p.summarizeCategory(ctx, classified.Neutral, "neutral", startTime)

	genCtx, cancel := context.WithTimeout(ctx, p.generateTimeout)
	conclusion, err := p.summarizer.StrategicConclusion(genCtx, classified, summaries)
	cancel()
	if err != nil {
		p.monitor.RecordPartialFailure(err, time.Since(startTime))
	}

	artifact, err := p.compiler.Compile(videoID, details, classified, mined, summaries, conclusion)
	if err != nil {
		p.monitor.RecordCriticalFailure(err, time.Since(startTime))
		return "", fmt.Errorf("failed to compile report: %w", err)
	}

	p.registry.Upsert(videoID, details.Title)
	if err := p.registry.Persist(); err != nil {
		// The registry is best-effort metadata; a failed persist does not
		// invalidate the generated report.
		log.Printf("Warning: failed to persist report registry: %v", err)
	}

	summary := fmt.Sprintf("analyzed %d comments for video %s", classified.Total(), videoID)
	p.monitor.RecordSuccess(summary, time.Since(startTime))
	return artifact, nil
}

// summarizeCategory always returns a renderable fragment; a degraded category
// is logged and counted against run health without aborting the run.
func (p *Pipeline) summarizeCategory(ctx context.Context, bucket []models.ScoredComment, category string, startTime time.Time) string {
	genCtx, cancel := context.WithTimeout(ctx, p.generateTimeout)
	defer cancel()
	fragment, err := p.summarizer.SummarizeCategory(genCtx, bucket, category)
	if err != nil {
		p.monitor.RecordPartialFailure(err, time.Since(startTime))
	}
	return fragment
}
