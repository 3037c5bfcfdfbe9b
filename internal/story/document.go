package story

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"launchstories/internal/model"
)

func DocumentTitle(s model.Story, now time.Time) string {
	return fmt.Sprintf("Launch Story - %s - %s", s.MerchantName, now.Format("01/02/2006"))
}

func FormatDocument(s model.Story, now time.Time) string {
	team := s.Team
	if team == "" {
		team = "N/A"
	}

	var lobs []string
	for _, l := range s.LineOfBusiness {
		lobs = append(lobs, string(l))
	}

	var sb strings.Builder
	sb.WriteString("Launch Story Details\n===================\n\n")
	sb.WriteString("Merchant Information\n-------------------\n")
	fmt.Fprintf(&sb, "Merchant Name: %s\n", s.MerchantName)
	fmt.Fprintf(&sb, "Launch Consultant: %s\n", NormalizeName(s.LaunchConsultant))
	fmt.Fprintf(&sb, "Team: %s\n", team)
	fmt.Fprintf(&sb, "Launch Status: %s\n", s.LaunchStatus)
	fmt.Fprintf(&sb, "Salesforce Case: %s\n", s.SalesforceCaseLink)
	fmt.Fprintf(&sb, "Opportunity Revenue: %s\n\n", s.OpportunityRevenue)
	sb.WriteString("Business Lines\n-------------\n")
	sb.WriteString(strings.Join(lobs, ", ") + "\n\n")
	sb.WriteString("GMV Details\n----------\n")
	for _, line := range GMVLines(s) {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\nLaunch Story\n-----------\n")
	sb.WriteString(s.EnhancedStory + "\n\n")
	sb.WriteString("Additional Notes\n--------------\n")
	sb.WriteString(s.Notes + "\n\n")
	fmt.Fprintf(&sb, "Document generated on %s\n", now.Format("2006-01-02 15:04:05"))
	return sb.String()
}

// GMVLines renders "<line>: <gmv>" for every selected line of business that has a value.
func GMVLines(s model.Story) []string {
	var lines []string
	for _, lob := range model.LinesOfBusiness {
		if v := s.GMV[lob]; v != "" && s.Selected(lob) {
			lines = append(lines, fmt.Sprintf("%s: %s", lob, v))
		}
	}
	return lines
}

func TotalGMV(s model.Story) float64 {
	var total float64
	for _, lob := range model.LinesOfBusiness {
		if !s.Selected(lob) {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s.GMV[lob]), ",", ""), 64)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}
