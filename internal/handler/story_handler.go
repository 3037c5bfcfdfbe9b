package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"launchstories/internal/model"
	"launchstories/internal/story"
	"launchstories/pkg/llm"

	"github.com/gin-gonic/gin"
)

type StorySubmitter interface {
	Submit(ctx context.Context, s model.Story) (*story.SubmitResult, error)
}

type StoryHandler struct {
	enhancer  llm.Enhancer
	submitter StorySubmitter
}

// NewStoryHandler accepts a nil enhancer; the enhance route then answers 503.
func NewStoryHandler(enhancer llm.Enhancer, submitter StorySubmitter) *StoryHandler {
	return &StoryHandler{enhancer: enhancer, submitter: submitter}
}

func (h *StoryHandler) EnhanceStory(c *gin.Context) {
	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid enhance request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Notes) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notes are required"})
		return
	}

	if h.enhancer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Story enhancement is not configured"})
		return
	}

	result, err := h.enhancer.Enhance(c.Request.Context(), llm.EnhanceInput{
		MerchantName:     req.MerchantName,
		Notes:            req.Notes,
		AdditionalPrompt: req.AdditionalPrompt,
	})
	if err != nil {
		slog.Error("error enhancing story", "error", err, "merchant", req.MerchantName)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enhance story"})
		return
	}

	slog.Info("story enhanced", "merchant", req.MerchantName, "model", result.ModelUsed)

	c.JSON(http.StatusOK, EnhanceResponse{EnhancedStory: result.Story})
}

func (h *StoryHandler) SubmitStory(c *gin.Context) {
	var s model.Story
	if err := c.ShouldBindJSON(&s); err != nil {
		slog.Warn("invalid submit request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.submitter.Submit(c.Request.Context(), s)
	if err != nil {
		var verr *story.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}

		slog.Error("error submitting story", "error", err, "merchant", s.MerchantName)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit story"})
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Success:      true,
		Message:      "Story submitted successfully",
		SubmissionID: result.ID,
		DocURL:       result.DocURL,
	})
}
