// Package main provides the commentscope CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"commentscope/internal/pipeline"
	"commentscope/internal/web"
	"commentscope/internal/youtube"
	"commentscope/shared/ai"
	"commentscope/shared/config"
	"commentscope/shared/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commentscope",
		Short: "Sentiment analysis reports for YouTube comment streams",
		Long: "Commentscope fetches the comments of a YouTube video, classifies their sentiment, " +
			"mines timestamps and keywords, asks Gemini for theme summaries and strategic advice, " +
			"and compiles everything into a self-contained HTML report.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	return rootCmd
}

// buildPipeline wires the production collaborators from configuration.
func buildPipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, *storage.ReportRegistry, error) {
	source, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	gen, err := ai.NewGemini(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	registry, err := storage.NewReportRegistry(cfg.Report.RegistryFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open report registry: %w", err)
	}

	p, err := pipeline.New(cfg, source, gen, registry)
	if err != nil {
		return nil, nil, err
	}
	return p, registry, nil
}

// newServeCmd starts the web front end.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI for running analyses and browsing reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			p, registry, err := buildPipeline(ctx, cfg)
			if err != nil {
				return err
			}

			server := web.NewServer(p, registry, p.Monitor(), cfg.Report.OutputDir, cfg.Server.Port)
			return server.Start(ctx)
		},
	}
}

// newAnalyzeCmd runs one analysis pass from the command line.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <youtube-url>",
		Short: "Analyze one video and print the report path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			videoID, ok := web.ExtractVideoID(args[0])
			if !ok {
				return fmt.Errorf("could not find an 11-character video ID in %q", args[0])
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			p, _, err := buildPipeline(ctx, cfg)
			if err != nil {
				return err
			}

			artifact, err := p.Run(ctx, videoID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Report generated: %s\n", filepath.Join(cfg.Report.OutputDir, artifact))
			return nil
		},
	}
}
