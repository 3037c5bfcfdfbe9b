package handler

import "launchstories/internal/model"

type EnhanceRequest struct {
	MerchantName     string `json:"merchantName"`
	Notes            string `json:"notes"`
	AdditionalPrompt string `json:"additionalPrompt"`
}

type EnhanceResponse struct {
	EnhancedStory string `json:"enhancedStory"`
}

type SubmitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
	DocURL       string `json:"docUrl,omitempty"`
}

type LeaderboardResponse struct {
	Contributors []model.Contributor `json:"contributors"`
}
