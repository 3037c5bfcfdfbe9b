package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"launchstories/db"
	"launchstories/internal/model"
	"launchstories/internal/repository"

	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent submissions from the Postgres ledger",
	RunE:  runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 20, "number of submissions to list")
}

func runRecent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err = db.Connect(ctx, cfg.DatabaseURL)
	if errors.Is(err, db.ErrNotConfigured) {
		return errors.New("DATABASE_URL is not set, the submission ledger is disabled")
	}
	if err != nil {
		return fmt.Errorf("connect to DB: %w", err)
	}
	defer db.Close()

	limit := recentLimit
	if limit <= 0 {
		limit = 20
	}

	subs, err := repository.NewSubmissionRepository(db.DB).GetRecentSubmissions(ctx, limit)
	if err != nil {
		return fmt.Errorf("list submissions: %w", err)
	}

	return printSubmissions(cmd.OutOrStdout(), subs)
}

func printSubmissions(w io.Writer, subs []model.Submission) error {
	if len(subs) == 0 {
		_, err := fmt.Fprintln(w, "No submissions recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMITTED\tCONSULTANT\tMERCHANT\tSLACK\tDOC")
	for _, s := range subs {
		doc := s.DocURL
		if doc == "" {
			doc = "-"
		}
		slack := "no"
		if s.SlackNotified {
			slack = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.LaunchConsultant, s.MerchantName, slack, doc)
	}
	return tw.Flush()
}
