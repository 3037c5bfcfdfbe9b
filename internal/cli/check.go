package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"launchstories/db"
	"launchstories/internal/config"
	"launchstories/internal/repository"
	"launchstories/internal/story"
	"launchstories/pkg/google"
	"launchstories/pkg/llm"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

const (
	statusOK      = "ok"
	statusSkipped = "skipped"
	statusFailed  = "failed"
)

var (
	checkLive    bool
	checkTimeout time.Duration
)

type checkResult struct {
	Name   string
	Status string
	Detail string
}

type probe struct {
	name string
	run  func(ctx context.Context, cfg config.Config) (status, detail string)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connectivity to every configured integration",
	Long: `Check probes the story sheet, the LLM provider, Postgres and Redis in
parallel and reports what is reachable. Unconfigured optional integrations
are reported as skipped.

With --live the LLM provider is sent a short sample note.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkLive, "live", false, "send a sample enhancement request to the LLM provider")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "timeout for all probes")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	results := runProbes(ctx, cfg, defaultProbes())
	defer db.Close()
	defer db.CloseRedis()

	return printChecks(cmd.OutOrStdout(), results)
}

func defaultProbes() []probe {
	return []probe{
		{name: "google sheets", run: probeSheets},
		{name: "google drive", run: probeDrive},
		{name: "slack", run: probeSlack},
		{name: "llm", run: probeLLM},
		{name: "postgres", run: probePostgres},
		{name: "redis", run: probeRedis},
	}
}

func runProbes(ctx context.Context, cfg config.Config, probes []probe) []checkResult {
	results := make([]checkResult, len(probes))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, p := range probes {
		eg.Go(func() error {
			status, detail := p.run(egCtx, cfg)
			results[i] = checkResult{Name: p.name, Status: status, Detail: detail}
			return nil
		})
	}
	eg.Wait()

	return results
}

// printChecks writes one line per probe and fails if any probe failed.
func printChecks(w io.Writer, results []checkResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	failed := 0
	for _, r := range results {
		if r.Status == statusFailed {
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Status, r.Detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

func probeSheets(ctx context.Context, cfg config.Config) (string, string) {
	if cfg.SheetsID == "" {
		return statusFailed, "GOOGLE_SHEETS_ID is not defined"
	}

	opts, err := cfg.GoogleCredentials().ClientOptions(ctx)
	if err != nil {
		return statusFailed, err.Error()
	}

	client, err := google.NewSheetsClient(ctx, cfg.SheetsID, opts...)
	if err != nil {
		return statusFailed, err.Error()
	}

	name, err := client.SheetName(ctx)
	if err != nil {
		return statusFailed, err.Error()
	}

	header, err := client.Header(ctx, name)
	if err != nil {
		return statusFailed, fmt.Sprintf("sheet %q: %v", name, err)
	}
	if !story.HeaderMatches(header) {
		return statusFailed, fmt.Sprintf("sheet %q header does not match the expected columns", name)
	}

	return statusOK, fmt.Sprintf("sheet %q, %d columns", name, len(header))
}

func probeDrive(ctx context.Context, cfg config.Config) (string, string) {
	if cfg.DriveFolderID == "" {
		return statusSkipped, "GOOGLE_DRIVE_FOLDER_ID not set, docs are not archived"
	}

	opts, err := cfg.GoogleCredentials().ClientOptions(ctx)
	if err != nil {
		return statusFailed, err.Error()
	}

	return checkDriveFolder(ctx, cfg.DriveFolderID, opts...)
}

func checkDriveFolder(ctx context.Context, folderID string, opts ...option.ClientOption) (string, string) {
	client, err := google.NewDocsClientFromOptions(ctx, folderID, opts...)
	if err != nil {
		return statusFailed, err.Error()
	}

	name, err := client.CheckFolder(ctx)
	if err != nil {
		return statusFailed, err.Error()
	}
	return statusOK, fmt.Sprintf("folder %q (%s)", name, folderID)
}

func probeSlack(ctx context.Context, cfg config.Config) (string, string) {
	if cfg.SlackWebhookURL == "" {
		return statusSkipped, "SLACK_WEBHOOK_URL not set"
	}
	return statusOK, "webhook configured"
}

func probeLLM(ctx context.Context, cfg config.Config) (string, string) {
	enhancer, err := cfg.NewEnhancer()
	if err != nil {
		return statusFailed, err.Error()
	}
	if enhancer == nil {
		return statusSkipped, fmt.Sprintf("no API key for provider %q, enhancement disabled", cfg.LLMProvider)
	}
	if !checkLive {
		return statusOK, "provider " + cfg.LLMProvider + " configured"
	}

	res, err := enhancer.Enhance(ctx, llm.EnhanceInput{
		MerchantName: "Connectivity Check",
		Notes:        "Merchant moved checkout to the new platform and saw faster payouts.",
	})
	if err != nil {
		return statusFailed, err.Error()
	}
	return statusOK, fmt.Sprintf("model %s returned %d characters", res.ModelUsed, len(res.Story))
}

func probePostgres(ctx context.Context, cfg config.Config) (string, string) {
	err := db.Connect(ctx, cfg.DatabaseURL)
	if errors.Is(err, db.ErrNotConfigured) {
		return statusSkipped, "DATABASE_URL not set, ledger disabled"
	}
	if err != nil {
		return statusFailed, err.Error()
	}

	repo := repository.NewSubmissionRepository(db.DB)
	if err := repo.EnsureSchema(ctx); err != nil {
		return statusFailed, err.Error()
	}

	total, err := repo.CountSubmissions(ctx)
	if err != nil {
		return statusFailed, err.Error()
	}
	return statusOK, fmt.Sprintf("%d submissions recorded", total)
}

func probeRedis(ctx context.Context, cfg config.Config) (string, string) {
	err := db.ConnectRedis(ctx, cfg.RedisURL)
	if errors.Is(err, db.ErrNotConfigured) {
		return statusSkipped, "REDIS_URL not set, using in-memory leaderboard cache"
	}
	if err != nil {
		return statusFailed, err.Error()
	}
	return statusOK, "ping succeeded"
}
