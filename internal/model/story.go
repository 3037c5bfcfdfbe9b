package model

import "time"

type LineOfBusiness string

const (
	D2C    LineOfBusiness = "D2C"
	B2B    LineOfBusiness = "B2B"
	POSPro LineOfBusiness = "POS Pro"

	NotApplicable = "n/a"
)

// LinesOfBusiness lists every line of business in sheet column order.
var LinesOfBusiness = []LineOfBusiness{D2C, B2B, POSPro}

type Story struct {
	MerchantName       string                    `json:"merchantName"`
	LaunchConsultant   string                    `json:"launchConsultant"`
	Team               string                    `json:"team,omitempty"`
	SalesforceCaseLink string                    `json:"salesforceCaseLink"`
	OpportunityRevenue string                    `json:"opportunityRevenue"`
	LaunchStatus       string                    `json:"launchStatus"`
	LineOfBusiness     []LineOfBusiness          `json:"lineOfBusiness"`
	GMV                map[LineOfBusiness]string `json:"gmv"`
	Notes              string                    `json:"notes"`
	EnhancedStory      string                    `json:"enhancedStory"`
	SubmissionDate     string                    `json:"submissionDate,omitempty"`
}

// Selected reports whether lob is one of the story's lines of business.
func (s Story) Selected(lob LineOfBusiness) bool {
	for _, l := range s.LineOfBusiness {
		if l == lob {
			return true
		}
	}
	return false
}

type Contributor struct {
	Name        string `json:"name"`
	Submissions int    `json:"submissions"`
	Rank        int    `json:"rank"`
}

type Submission struct {
	ID               string
	MerchantName     string
	LaunchConsultant string
	SheetName        string
	DocURL           string
	SlackNotified    bool
	CreatedAt        time.Time
}
