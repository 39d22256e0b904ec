package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsFromEnvOnly(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("default model = %s", cfg.AI.Model)
	}
	if cfg.AI.MaxPromptComments != 30 {
		t.Errorf("default prompt cap = %d, want 30", cfg.AI.MaxPromptComments)
	}
	if cfg.Report.ReactionPreviewChars != 100 || cfg.Report.MomentPreviewChars != 150 {
		t.Errorf("default previews = %d/%d, want 100/150",
			cfg.Report.ReactionPreviewChars, cfg.Report.MomentPreviewChars)
	}
	if cfg.Server.Port != 5001 {
		t.Errorf("default port = %d, want 5001", cfg.Server.Port)
	}
}

func TestLoadRequiresKeys(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail without a Gemini API key")
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yaml := `
youtube:
  api_key: file-yt-key
ai:
  gemini_api_key: file-gm-key
  model: gemini-2.0-pro
report:
  output_dir: /tmp/out
server:
  port: 9999
`
	if err := os.WriteFile(configPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.YouTube.APIKey != "file-yt-key" || cfg.AI.Model != "gemini-2.0-pro" {
		t.Errorf("yaml values not applied: %+v", cfg)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
}
