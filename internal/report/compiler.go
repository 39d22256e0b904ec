package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"

	"commentscope/internal/models"
)

//go:embed template/report.html
var reportHTML string

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

// Compiler renders analysis results into self-contained HTML artifacts, one
// per video ID, inside a fixed output directory.
type Compiler struct {
	outputDir string
	opts      Options
}

func NewCompiler(outputDir string, opts Options) (*Compiler, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Compiler{outputDir: outputDir, opts: opts.withDefaults()}, nil
}

// ArtifactName returns the deterministic file name for a video's report.
func ArtifactName(videoID string) string {
	return videoID + "_report.html"
}

// Compile derives the document model, renders it, and writes the artifact,
// overwriting any previous report for the same video. It returns the artifact
// file name.
func (c *Compiler) Compile(videoID string, details models.VideoDetails, classified models.Classification,
	mined models.Insights, summaries models.Summaries, conclusion string) (string, error) {

	data := Build(videoID, details, classified, mined, summaries, conclusion, c.opts)
	rendered, err := Render(data)
	if err != nil {
		return "", err
	}

	name := ArtifactName(videoID)
	path := filepath.Join(c.outputDir, name)
	if err := os.WriteFile(path, rendered, 0644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	log.Printf("HTML report generated: %s", path)
	return name, nil
}

// Render executes the report template over a document model. Output is a pure
// function of the input.
func Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.Bytes(), nil
}
