package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"launchstories/internal/config"
	"launchstories/internal/repository"

	"github.com/go-playground/assert/v2"
)

func TestBuildRequiresSheet(t *testing.T) {
	_, err := Build(context.Background(), config.Config{})
	assert.NotEqual(t, nil, err)
	assert.Equal(t, "GOOGLE_SHEETS_ID is not defined", err.Error())
}

func TestBuildRequiresCredentials(t *testing.T) {
	_, err := Build(context.Background(), config.Config{SheetsID: "sheet-123", GoogleClientEmail: "svc@example.iam.gserviceaccount.com"})
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "GOOGLE_SHEETS_PRIVATE_KEY, GOOGLE_SHEETS_PROJECT_ID"))
}

func TestNewLeaderboardCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		ttl     time.Duration
		enabled bool
	}{
		{name: "zero ttl disables cache", ttl: 0},
		{name: "negative ttl disables cache", ttl: -time.Second},
		{name: "positive ttl without redis uses memory", ttl: 30 * time.Second, enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newLeaderboardCache(ctx, config.Config{LeaderboardTTL: tt.ttl})
			if !tt.enabled {
				assert.Equal(t, true, cache == nil)
				return
			}
			_, ok := cache.(*repository.MemoryLeaderboardCache)
			assert.Equal(t, true, ok)
		})
	}
}
