package export

import (
	"fmt"

	"launchstories/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	StoriesSheet     = "Stories"
	LeaderboardSheet = "Leaderboard"
)

var leaderboardHeader = []any{"Rank", "Launch Consultant", "Submissions"}

// BuildWorkbook lays out a snapshot of the story sheet and its leaderboard.
func BuildWorkbook(header []string, rows [][]string, contributors []model.Contributor) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", StoriesSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRow(f, StoriesSheet, 1, toAny(header)); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, StoriesSheet, i+2, toAny(row)); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(LeaderboardSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRow(f, LeaderboardSheet, 1, leaderboardHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, c := range contributors {
		if err := writeRow(f, LeaderboardSheet, i+2, []any{c.Rank, c.Name, c.Submissions}); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func WriteWorkbook(path string, header []string, rows [][]string, contributors []model.Contributor) error {
	f, err := BuildWorkbook(header, rows, contributors)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
