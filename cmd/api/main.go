package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"launchstories/internal/app"
	"launchstories/internal/config"
	"launchstories/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	v, err := config.New(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	cfg := config.Load(v)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	a, err := app.Build(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("error initializing services: %v", err)
	}
	defer a.Close()

	if err := a.CheckHeader(ctx); err != nil {
		slog.Warn("sheet header check failed", "error", err)
	}
	cancel()

	storyHandler := handler.NewStoryHandler(a.Enhancer, a.Service)
	leaderboardHandler := handler.NewLeaderboardHandler(a.Service)
	limiter := handler.NewClientLimiter(cfg.EnhanceRatePerMin, cfg.EnhanceRateBurst)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	api := r.Group("/api")
	api.POST("/enhance-story", limiter.Middleware(), storyHandler.EnhanceStory)
	api.POST("/submit-story", storyHandler.SubmitStory)
	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	r.GET("/health", leaderboardHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
