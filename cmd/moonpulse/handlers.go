package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ccmoon/moonpulse/internal/config"
	"github.com/ccmoon/moonpulse/internal/export"
	"github.com/ccmoon/moonpulse/internal/pipeline"
	"github.com/ccmoon/moonpulse/internal/registry"
	"github.com/ccmoon/moonpulse/internal/scheduler"
	"github.com/ccmoon/moonpulse/internal/store"
	"github.com/ccmoon/moonpulse/pkg/notify"
	"github.com/ccmoon/moonpulse/pkg/redditsrc"
	"github.com/ccmoon/moonpulse/pkg/server"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func buildPipeline(cfg *config.Config, log *logrus.Logger) (*pipeline.Pipeline, error) {
	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}

	cal, err := cfg.Epoch.Calendar()
	if err != nil {
		return nil, err
	}

	return pipeline.New(pipeline.Options{
		Lexicon:     cfg.Sentiment.EffectiveLexicon(),
		Labeler:     cfg.Sentiment.Labeler,
		Adjuster:    cfg.Sentiment.Adjuster,
		Calendar:    cal,
		Registry:    reg,
		MemePenalty: cfg.Scoring.MemePenalty,
		ExemptBots:  cfg.Authors.ExemptBots,
		Log:         log,
	}), nil
}

// buildCollector resolves the collection window at call time so daemon
// runs always cover the trailing window, not the window at startup.
func buildCollector(cfg *config.Config, now time.Time) (redditsrc.Collector, *redditsrc.CallCounter, string, error) {
	start, end, label, err := cfg.Window.Resolve(now)
	if err != nil {
		return nil, nil, "", err
	}

	opts := redditsrc.Options{
		Subreddit:          cfg.Reddit.Subreddit,
		Start:              start,
		End:                end,
		MaxPosts:           cfg.Reddit.MaxPosts,
		MaxCommentsPerPost: cfg.Reddit.MaxCommentsPerPost,
		IgnoredAuthors:     cfg.Authors.Ignored,
	}

	if cfg.Reddit.UseFeed {
		return redditsrc.NewFeed(opts), nil, label, nil
	}

	if cfg.Reddit.ClientID == "" || cfg.Reddit.ClientSecret == "" {
		return nil, nil, "", fmt.Errorf("reddit credentials missing (set REDDIT_CLIENT_ID / REDDIT_CLIENT_SECRET or reddit.use_feed: true)")
	}

	calls := &redditsrc.CallCounter{}
	return redditsrc.NewClient(cfg.Reddit.ClientID, cfg.Reddit.ClientSecret, opts, calls), calls, label, nil
}

func buildNotifier(cfg *config.Config, log *logrus.Logger) *notify.Manager {
	var notifiers []notify.Notifier
	if cfg.Notify.SlackWebhookURL != "" {
		notifiers = append(notifiers, notify.NewSlack(cfg.Notify.SlackWebhookURL))
	}
	if cfg.Notify.DiscordWebhookURL != "" {
		notifiers = append(notifiers, notify.NewDiscord(cfg.Notify.DiscordWebhookURL))
	}
	return notify.NewManager(notifiers, log)
}

func runSnapshot() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	pipe, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	collector, calls, label, err := buildCollector(cfg, time.Now().UTC())
	if err != nil {
		return err
	}
	log.WithField("window", label).Info("snapshot starting")

	res, err := pipe.Snapshot(context.Background(), collector, db, calls)
	if err != nil {
		return err
	}

	notifier := buildNotifier(cfg, log)
	if notifier.HasNotifiers() {
		notifier.Broadcast(context.Background(), notify.RunSummary{
			Items:    res.Items,
			Posts:    res.Posts,
			Comments: res.Comments,
			APICalls: res.APICalls,
			Duration: res.Duration,
		})
	}

	fmt.Printf("merged %d items (%d posts, %d comments) in %s\n",
		res.Items, res.Posts, res.Comments, res.Duration.Round(time.Second))
	return nil
}

func runLeaderboard(epochNum string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	rows, err := db.ProjectLeaderboard(context.Background(), epochNum)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("no mentions recorded (try a snapshot first: moonpulse snapshot)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tMENTIONS\tCATEGORY\tPROJECT")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", r.TotalScore, r.Mentions, r.Category, r.Name)
	}
	return w.Flush()
}

func runExport(epochNum, since string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	_, _, label, err := cfg.Window.Resolve(now)
	if err != nil {
		return err
	}
	if epochNum != "" {
		label = "epoch" + epochNum
	}

	w := export.New(db, cfg.Export.Dir)
	ctx := context.Background()

	activityPath, err := w.Snapshot(ctx, store.ListOpts{Epoch: epochNum, Since: since}, label, now)
	if err != nil {
		return err
	}
	usersPath, err := w.UserSummary(ctx, label, now)
	if err != nil {
		return err
	}

	fmt.Println(activityPath)
	fmt.Println(usersPath)
	return nil
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()

	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	return server.New(db, port, log).ListenAndServe()
}

func runDaemon(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()

	if port == 0 {
		port = cfg.Server.Port
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	pipe, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}
	notifier := buildNotifier(cfg, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	factory := func(now time.Time) (redditsrc.Collector, *redditsrc.CallCounter, error) {
		collector, calls, _, err := buildCollector(cfg, now)
		return collector, calls, err
	}

	sched := scheduler.New(pipe, db, factory, notifier, cfg.Schedule.Cron, log)
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("scheduler stopped")
		}
	}()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
	}()

	return server.New(db, port, log).ListenAndServe()
}
