package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube YouTubeConfig `yaml:"youtube"`
	AI      AIConfig      `yaml:"ai"`
	Report  ReportConfig  `yaml:"report"`
	Server  ServerConfig  `yaml:"server"`
}

type YouTubeConfig struct {
	APIKey              string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
}

type AIConfig struct {
	GeminiAPIKey      string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model             string `yaml:"model"`
	MaxPromptComments int    `yaml:"max_prompt_comments"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
}

type ReportConfig struct {
	OutputDir            string   `yaml:"output_dir"`
	RegistryFile         string   `yaml:"registry_file"`
	ReactionPreviewChars int      `yaml:"reaction_preview_chars"`
	MomentPreviewChars   int      `yaml:"moment_preview_chars"`
	Stopwords            []string `yaml:"stopwords"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// Load reads config.yaml (or $CONFIG_FILE), layering .env and environment
// variables underneath for secrets. A missing config file is fine: every
// non-secret field has a default and both API keys can come from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	cfg.ApplyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills every unset policy field with the stock value.
func (c *Config) ApplyDefaults() {
	if c.YouTube.FetchTimeoutSeconds <= 0 {
		c.YouTube.FetchTimeoutSeconds = 30
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.AI.MaxPromptComments <= 0 {
		c.AI.MaxPromptComments = 30
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "reports"
	}
	if c.Report.RegistryFile == "" {
		c.Report.RegistryFile = "reports_data.json"
	}
	if c.Report.ReactionPreviewChars <= 0 {
		c.Report.ReactionPreviewChars = 100
	}
	if c.Report.MomentPreviewChars <= 0 {
		c.Report.MomentPreviewChars = 150
	}
	if c.Server.Port <= 0 {
		c.Server.Port = 5001
	}
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	return nil
}
