package cli

import (
	"context"
	"fmt"
	"time"

	"launchstories/internal/export"
	"launchstories/internal/story"

	"github.com/spf13/cobra"
)

var exportOut string

// sheetReader is the part of the Sheets client an export needs.
type sheetReader interface {
	SheetName(ctx context.Context) (string, error)
	Header(ctx context.Context, sheet string) ([]string, error)
	Rows(ctx context.Context, sheet string) ([][]string, error)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the story sheet and leaderboard to an Excel workbook",
	Long: `Export reads every row of the story sheet and writes them, together
with the current leaderboard, to an .xlsx file.

Example:
  storyctl export --out launch-stories.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "launch-stories.xlsx", "output workbook path")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	stories, consultants, err := exportSheet(ctx, a.Sheets, exportOut)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d stories and %d consultants to %s\n", stories, consultants, exportOut)
	return nil
}

// exportSheet copies the sheet under its own header row, so the workbook
// stays correct even when the sheet's columns drift from story.Columns.
func exportSheet(ctx context.Context, src sheetReader, path string) (int, int, error) {
	sheet, err := src.SheetName(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve sheet name: %w", err)
	}

	header, err := src.Header(ctx, sheet)
	if err != nil {
		return 0, 0, fmt.Errorf("read sheet header: %w", err)
	}

	rows, err := src.Rows(ctx, sheet)
	if err != nil {
		return 0, 0, fmt.Errorf("read sheet rows: %w", err)
	}

	contributors := story.BuildLeaderboard(rows)

	if err := export.WriteWorkbook(path, header, rows, contributors); err != nil {
		return 0, 0, err
	}
	return len(rows), len(contributors), nil
}
