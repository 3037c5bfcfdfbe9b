package handler

import (
	"context"
	"log/slog"
	"net/http"

	"launchstories/internal/model"

	"github.com/gin-gonic/gin"
)

type LeaderboardSource interface {
	Leaderboard(ctx context.Context) ([]model.Contributor, error)
	Ping(ctx context.Context) error
}

type LeaderboardHandler struct {
	source LeaderboardSource
}

func NewLeaderboardHandler(source LeaderboardSource) *LeaderboardHandler {
	return &LeaderboardHandler{source: source}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	contributors, err := h.source.Leaderboard(c.Request.Context())
	if err != nil {
		slog.Error("error fetching leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}

	if contributors == nil {
		contributors = []model.Contributor{}
	}

	c.JSON(http.StatusOK, LeaderboardResponse{Contributors: contributors})
}

func (h *LeaderboardHandler) GetHealth(c *gin.Context) {
	err := h.source.Ping(c.Request.Context())
	if err != nil {
		slog.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"sheet":  "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"sheet":  "reachable",
	})
}
