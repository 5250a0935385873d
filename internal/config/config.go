// Package config loads the snapshot pipeline configuration from YAML
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ccmoon/moonpulse/pkg/epoch"
	"github.com/ccmoon/moonpulse/pkg/sentiment"
)

// Config is the root configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Reddit    RedditConfig    `yaml:"reddit"`
	Window    WindowConfig    `yaml:"window"`
	Epoch     EpochConfig     `yaml:"epoch"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Authors   AuthorsConfig   `yaml:"authors"`
	Registry  RegistryConfig  `yaml:"registry"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Server    ServerConfig    `yaml:"server"`
	Export    ExportConfig    `yaml:"export"`
	Notify    NotifyConfig    `yaml:"notify"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RedditConfig configures the fetch collaborator.
type RedditConfig struct {
	ClientID           string `yaml:"client_id"`
	ClientSecret       string `yaml:"client_secret"`
	Subreddit          string `yaml:"subreddit"`
	MaxPosts           int    `yaml:"max_posts"`
	MaxCommentsPerPost int    `yaml:"max_comments_per_post"`
	// UseFeed switches to the credential-less Atom feed collector
	// (posts only, no engagement data).
	UseFeed bool `yaml:"use_feed"`
}

// WindowConfig selects the collection time window: a fixed date range
// when Start/End are set, otherwise the trailing DaysBack days.
type WindowConfig struct {
	Start    string `yaml:"start"` // YYYY-MM-DD, inclusive from 00:00:00 UTC
	End      string `yaml:"end"`   // YYYY-MM-DD, inclusive to 23:59:59 UTC
	DaysBack int    `yaml:"days_back"`
}

// Resolve returns the concrete UTC window and a label for filenames.
func (w WindowConfig) Resolve(now time.Time) (start, end time.Time, label string, err error) {
	if w.Start != "" && w.End != "" {
		start, err = time.ParseInLocation("2006-01-02", w.Start, time.UTC)
		if err != nil {
			return start, end, "", fmt.Errorf("parse window start: %w", err)
		}
		end, err = time.ParseInLocation("2006-01-02", w.End, time.UTC)
		if err != nil {
			return start, end, "", fmt.Errorf("parse window end: %w", err)
		}
		end = end.Add(24*time.Hour - time.Second)
		return start, end, w.Start + "_to_" + w.End, nil
	}

	days := w.DaysBack
	if days <= 0 {
		days = 1
	}
	end = now.UTC()
	start = end.AddDate(0, 0, -days)
	return start, end, fmt.Sprintf("last%dd", days), nil
}

// EpochConfig configures the reward period calendar.
type EpochConfig struct {
	LengthDays      int    `yaml:"length_days"`
	ReferenceNumber int    `yaml:"reference_number"`
	ReferenceStart  string `yaml:"reference_start"` // YYYY-MM-DD
	MinNumber       int    `yaml:"min_number"`
}

// Calendar converts the config into an epoch.Calendar.
func (e EpochConfig) Calendar() (epoch.Calendar, error) {
	ref, err := time.ParseInLocation("2006-01-02", e.ReferenceStart, time.UTC)
	if err != nil {
		return epoch.Calendar{}, fmt.Errorf("parse epoch reference_start: %w", err)
	}
	return epoch.Calendar{
		LengthDays:      e.LengthDays,
		ReferenceNumber: e.ReferenceNumber,
		ReferenceStart:  ref,
		MinNumber:       e.MinNumber,
	}, nil
}

// SentimentConfig configures labeling thresholds, the engagement
// adjuster and optional lexicon overrides.
type SentimentConfig struct {
	Labeler  sentiment.Labeler  `yaml:"labels"`
	Adjuster sentiment.Adjuster `yaml:"adjuster"`
	Lexicon  *sentiment.Lexicon `yaml:"lexicon"`
}

// EffectiveLexicon returns the configured lexicon or the default.
func (s SentimentConfig) EffectiveLexicon() sentiment.Lexicon {
	if s.Lexicon != nil {
		return *s.Lexicon
	}
	return sentiment.DefaultLexicon()
}

// ScoringConfig holds engagement-score adjustments applied before
// sentiment adjustment and attribution.
type ScoringConfig struct {
	// MemePenalty multiplies a post's raw engagement score when its
	// flair contains "meme" (case-insensitive). A disincentive, not an
	// exclusion.
	MemePenalty float64 `yaml:"meme_penalty"`
}

// AuthorsConfig configures author-based exclusions.
type AuthorsConfig struct {
	// Ignored authors are dropped at fetch time entirely.
	Ignored []string `yaml:"ignored"`
	// ExemptBots (plus deleted accounts) are rewards-exempt and skipped
	// for mention recording.
	ExemptBots []string `yaml:"exempt_bots"`
}

// RegistryConfig points at an optional registry override file.
type RegistryConfig struct {
	Path string `yaml:"path"`
}

// ScheduleConfig configures the daemon's snapshot cron.
type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

// ServerConfig configures the read-only aggregates HTTP API.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ExportConfig configures CSV export output.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// NotifyConfig configures run-summary webhooks.
type NotifyConfig struct {
	SlackWebhookURL   string `yaml:"slack_webhook_url"`
	DiscordWebhookURL string `yaml:"discord_webhook_url"`
}

// Default returns a Config with production defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./moonpulse.db"},
		Reddit: RedditConfig{
			Subreddit:          "CryptoCurrency",
			MaxPosts:           800,
			MaxCommentsPerPost: 300,
		},
		Window: WindowConfig{DaysBack: 1},
		Epoch: EpochConfig{
			LengthDays:      28,
			ReferenceNumber: 69,
			ReferenceStart:  "2025-11-10",
			MinNumber:       1,
		},
		Sentiment: SentimentConfig{
			Labeler:  sentiment.DefaultLabeler(),
			Adjuster: sentiment.DefaultAdjuster(),
		},
		Scoring: ScoringConfig{MemePenalty: 0.0025},
		Authors: AuthorsConfig{
			Ignored:    []string{"iowxss6_bot"},
			ExemptBots: []string{"coinfeeds-bot", "iowxss6_bot"},
		},
		Schedule: ScheduleConfig{Cron: "30 2 * * *"},
		Server:   ServerConfig{Port: 8080},
		Export:   ExportConfig{Dir: "./exports"},
	}
}

// Load reads configuration from a YAML file and applies env var
// overrides. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOONPULSE_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("REDDIT_CLIENT_ID"); v != "" {
		cfg.Reddit.ClientID = v
	}
	if v := os.Getenv("REDDIT_CLIENT_SECRET"); v != "" {
		cfg.Reddit.ClientSecret = v
	}
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Notify.SlackWebhookURL = v
	}
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.Notify.DiscordWebhookURL = v
	}
}
