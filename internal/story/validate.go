package story

import (
	"fmt"
	"regexp"
	"strings"

	"launchstories/internal/model"
)

// Money amounts: plain digits or comma-grouped thousands, up to two decimals.
var moneyPattern = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d+)(\.\d{1,2})?$`)

const moneyHint = "Please use numbers with optional thousands separators and up to 2 decimal places (e.g., 1,000,000.00)"

// ValidationError is a client error; its message is returned to the caller as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func Validate(s model.Story) error {
	var missing []string
	required := []struct {
		field string
		value string
	}{
		{"merchantName", s.MerchantName},
		{"launchConsultant", s.LaunchConsultant},
		{"salesforceCaseLink", s.SalesforceCaseLink},
		{"launchStatus", s.LaunchStatus},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(s.LineOfBusiness) == 0 {
		missing = append(missing, "lineOfBusiness")
	}
	if strings.TrimSpace(s.OpportunityRevenue) == "" {
		missing = append(missing, "opportunityRevenue")
	}
	if len(missing) > 0 {
		return invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !IsMoney(s.OpportunityRevenue) {
		return invalid("Invalid opportunity revenue format. %s", moneyHint)
	}

	for _, lob := range s.LineOfBusiness {
		if !knownLineOfBusiness(lob) {
			return invalid("Unknown line of business: %s", lob)
		}
	}

	var missingGMV []string
	for _, lob := range s.LineOfBusiness {
		if strings.TrimSpace(s.GMV[lob]) == "" {
			missingGMV = append(missingGMV, string(lob))
		}
	}
	if len(missingGMV) > 0 {
		return invalid("Missing GMV for: %s", strings.Join(missingGMV, ", "))
	}

	for _, lob := range s.LineOfBusiness {
		if !IsMoney(s.GMV[lob]) {
			return invalid("Invalid GMV format for %s. %s", lob, moneyHint)
		}
	}

	return nil
}

func IsMoney(v string) bool {
	return moneyPattern.MatchString(strings.TrimSpace(v))
}

func knownLineOfBusiness(lob model.LineOfBusiness) bool {
	for _, l := range model.LinesOfBusiness {
		if l == lob {
			return true
		}
	}
	return false
}
