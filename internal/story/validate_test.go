package story

import (
	"errors"
	"testing"

	"launchstories/internal/model"

	"github.com/go-playground/assert/v2"
)

func validStory() model.Story {
	return model.Story{
		MerchantName:       "Acme Outfitters",
		LaunchConsultant:   "  Jane   Doe ",
		SalesforceCaseLink: "https://example.lightning.force.com/case/1",
		OpportunityRevenue: "1,000,000.00",
		LaunchStatus:       "Launched",
		LineOfBusiness:     []model.LineOfBusiness{model.D2C, model.POSPro},
		GMV: map[model.LineOfBusiness]string{
			model.D2C:    "250,000",
			model.POSPro: "40000.50",
		},
		Notes:         "Migrated from Magento in three weeks.",
		EnhancedStory: "CHALLENGE: ...",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *model.Story)
		wantErr string
	}{
		{
			name:   "valid story",
			mutate: func(s *model.Story) {},
		},
		{
			name: "missing fields listed in order",
			mutate: func(s *model.Story) {
				s.MerchantName = ""
				s.LaunchStatus = "   "
				s.LineOfBusiness = nil
			},
			wantErr: "Missing required fields: merchantName, launchStatus, lineOfBusiness",
		},
		{
			name:    "missing revenue",
			mutate:  func(s *model.Story) { s.OpportunityRevenue = "" },
			wantErr: "Missing required fields: opportunityRevenue",
		},
		{
			name:    "malformed revenue",
			mutate:  func(s *model.Story) { s.OpportunityRevenue = "1,00" },
			wantErr: "Invalid opportunity revenue format. " + moneyHint,
		},
		{
			name: "unknown line of business",
			mutate: func(s *model.Story) {
				s.LineOfBusiness = []model.LineOfBusiness{"Wholesale"}
			},
			wantErr: "Unknown line of business: Wholesale",
		},
		{
			name:    "missing gmv",
			mutate:  func(s *model.Story) { s.LineOfBusiness = append(s.LineOfBusiness, model.B2B) },
			wantErr: "Missing GMV for: B2B",
		},
		{
			name:    "malformed gmv",
			mutate:  func(s *model.Story) { s.GMV[model.D2C] = "$250k" },
			wantErr: "Invalid GMV format for D2C. " + moneyHint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStory()
			tt.mutate(&s)

			err := Validate(s)
			if tt.wantErr == "" {
				assert.Equal(t, nil, err)
				return
			}

			var verr *ValidationError
			assert.Equal(t, true, errors.As(err, &verr))
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}

func TestIsMoney(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1000", true},
		{"1,000", true},
		{"1,000,000.00", true},
		{"12.5", true},
		{"0", true},
		{"1,00", false},
		{"1000,000", false},
		{"12.345", false},
		{"-5", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMoney(tt.input))
		})
	}
}
