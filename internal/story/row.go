package story

import (
	"strings"
	"time"

	"launchstories/internal/model"
)

// Columns is the sheet header. FormatRow emits values in exactly this order.
var Columns = []string{
	"Launch Consultant",
	"Merchant Name",
	"Salesforce Case",
	"Opportunity Revenue",
	"Launch Status",
	"D2C GMV",
	"B2B GMV",
	"POS Pro GMV",
	"Notes",
	"Enhanced Story",
	"Submission Date",
}

const (
	consultantColumn = 0
	sheetDateLayout  = "02-01-2006"
	formDateLayout   = "2006-01-02"
)

func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func FormatRow(s model.Story, now time.Time) []any {
	row := []any{
		NormalizeName(s.LaunchConsultant),
		s.MerchantName,
		s.SalesforceCaseLink,
		s.OpportunityRevenue,
		s.LaunchStatus,
	}

	for _, lob := range model.LinesOfBusiness {
		if s.Selected(lob) {
			row = append(row, s.GMV[lob])
		} else {
			row = append(row, model.NotApplicable)
		}
	}

	return append(row,
		s.Notes,
		s.EnhancedStory,
		SubmissionDate(s, now).Format(sheetDateLayout),
	)
}

// SubmissionDate prefers the date picked in the form and falls back to now.
func SubmissionDate(s model.Story, now time.Time) time.Time {
	if s.SubmissionDate != "" {
		if d, err := time.Parse(formDateLayout, s.SubmissionDate); err == nil {
			return d
		}
	}
	return now
}

// HeaderMatches reports whether a sheet header row starts with Columns.
func HeaderMatches(header []string) bool {
	if len(header) < len(Columns) {
		return false
	}
	for i, c := range Columns {
		if strings.TrimSpace(header[i]) != c {
			return false
		}
	}
	return true
}
