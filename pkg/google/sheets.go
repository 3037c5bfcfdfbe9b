package google

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	defaultSheetName = "Sheet1"
	valueInputOption = "USER_ENTERED"
)

var ErrNoHeaders = errors.New("no headers found in the sheet")

type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
}

func NewSheetsClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*SheetsClient, error) {
	if spreadsheetID == "" {
		return nil, errors.New("GOOGLE_SHEETS_ID is not defined")
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize sheets API: %w", err)
	}

	return &SheetsClient{service: service, spreadsheetID: spreadsheetID}, nil
}

// SheetName returns the title of the first tab.
func (c *SheetsClient) SheetName(ctx context.Context) (string, error) {
	ss, err := c.service.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get spreadsheet: %w", err)
	}

	if len(ss.Sheets) == 0 {
		return "", errors.New("no sheets found in the spreadsheet")
	}

	props := ss.Sheets[0].Properties
	if props == nil || props.Title == "" {
		return defaultSheetName, nil
	}
	return props.Title, nil
}

func (c *SheetsClient) Header(ctx context.Context, sheet string) ([]string, error) {
	values, err := c.values(ctx, sheet+"!A1:Z1")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrNoHeaders
	}
	return values[0], nil
}

// Rows returns every row below the header.
func (c *SheetsClient) Rows(ctx context.Context, sheet string) ([][]string, error) {
	values, err := c.values(ctx, sheet+"!A:Z")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrNoHeaders
	}
	return values[1:], nil
}

func (c *SheetsClient) Append(ctx context.Context, sheet string, row []any) error {
	vr := &sheets.ValueRange{Values: [][]any{row}}

	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, sheet+"!A:Z", vr).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func (c *SheetsClient) values(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values %s: %w", rng, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, r := range resp.Values {
		cells := make([]string, len(r))
		for j, v := range r {
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows, nil
}
