package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"launchstories/db"
	"launchstories/internal/config"
	"launchstories/internal/repository"
	"launchstories/internal/story"
	"launchstories/pkg/google"
	"launchstories/pkg/llm"
	"launchstories/pkg/slack"
)

// App holds the clients shared by the API server and storyctl.
type App struct {
	Config   config.Config
	Service  *story.Service
	Sheets   *google.SheetsClient
	Enhancer llm.Enhancer
}

// Build connects every configured integration. Sheets is mandatory; docs,
// Slack, Postgres and Redis are skipped with a warning when unavailable.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if cfg.SheetsID == "" {
		return nil, errors.New("GOOGLE_SHEETS_ID is not defined")
	}

	creds := cfg.GoogleCredentials()
	opts, err := creds.ClientOptions(ctx)
	if err != nil {
		return nil, err
	}

	sheets, err := google.NewSheetsClient(ctx, cfg.SheetsID, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize sheets client: %w", err)
	}

	a := &App{Config: cfg, Sheets: sheets}
	deps := story.Deps{Sheets: sheets}

	if cfg.DriveFolderID != "" {
		docs, err := google.NewDocsClientFromOptions(ctx, cfg.DriveFolderID, opts...)
		if err != nil {
			slog.Warn("google docs archive disabled", "error", err)
		} else {
			deps.Docs = docs
		}
	} else {
		slog.Info("GOOGLE_DRIVE_FOLDER_ID not set, skipping doc creation")
	}

	if cfg.SlackWebhookURL != "" {
		notifier, err := slack.NewNotifier(cfg.SlackWebhookURL)
		if err != nil {
			slog.Warn("slack notifications disabled", "error", err)
		} else {
			deps.Notifier = notifier
		}
	}

	err = db.Connect(ctx, cfg.DatabaseURL)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		slog.Info("DATABASE_URL not set, submission ledger disabled")
	case err != nil:
		slog.Warn("error connecting to DB, submission ledger disabled", "error", err)
	default:
		ledger := repository.NewSubmissionRepository(db.DB)
		if err := ledger.EnsureSchema(ctx); err != nil {
			slog.Warn("error preparing submission ledger", "error", err)
		} else {
			deps.Ledger = ledger
		}
	}

	deps.Cache = newLeaderboardCache(ctx, cfg)

	enhancer, err := cfg.NewEnhancer()
	if err != nil {
		a.Close()
		return nil, err
	}
	if enhancer == nil {
		slog.Warn("no LLM API key configured, story enhancement disabled", "provider", cfg.LLMProvider)
	}
	a.Enhancer = enhancer

	a.Service = story.NewService(deps)
	return a, nil
}

// newLeaderboardCache returns nil when LEADERBOARD_CACHE_TTL is zero or
// negative, so every leaderboard read goes to the sheet.
func newLeaderboardCache(ctx context.Context, cfg config.Config) story.LeaderboardCache {
	if cfg.LeaderboardTTL <= 0 {
		slog.Info("LEADERBOARD_CACHE_TTL not positive, leaderboard cache disabled", "ttl", cfg.LeaderboardTTL)
		return nil
	}

	err := db.ConnectRedis(ctx, cfg.RedisURL)
	switch {
	case err == nil:
		return repository.NewRedisLeaderboardCache(db.Redis, cfg.LeaderboardTTL)
	case errors.Is(err, db.ErrNotConfigured):
		return repository.NewMemoryLeaderboardCache(cfg.LeaderboardTTL)
	default:
		slog.Warn("error connecting to redis, using in-memory leaderboard cache", "error", err)
		return repository.NewMemoryLeaderboardCache(cfg.LeaderboardTTL)
	}
}

// CheckHeader warns when the first sheet's header row does not match the
// columns written by FormatRow.
func (a *App) CheckHeader(ctx context.Context) error {
	name, err := a.Sheets.SheetName(ctx)
	if err != nil {
		return err
	}

	header, err := a.Sheets.Header(ctx, name)
	if err != nil {
		return err
	}

	if !story.HeaderMatches(header) {
		return fmt.Errorf("sheet %q header %v does not match expected columns %v", name, header, story.Columns)
	}
	return nil
}

func (a *App) Close() {
	db.Close()
	db.CloseRedis()
}
