package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"launchstories/internal/model"

	"github.com/spf13/cobra"
)

var leaderboardJSON bool

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print consultants ranked by submitted stories",
	RunE:  runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().BoolVar(&leaderboardJSON, "json", false, "print the leaderboard as JSON")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	contributors, err := a.Service.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("fetch leaderboard: %w", err)
	}

	if leaderboardJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(contributors)
	}
	return printLeaderboard(cmd.OutOrStdout(), contributors)
}

func printLeaderboard(w io.Writer, contributors []model.Contributor) error {
	if len(contributors) == 0 {
		_, err := fmt.Fprintln(w, "No stories submitted yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCONSULTANT\tSUBMISSIONS")
	for _, c := range contributors {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", c.Rank, c.Name, c.Submissions)
	}
	return tw.Flush()
}
