package config

import (
	"fmt"
	"strings"
	"time"

	"launchstories/pkg/google"
	"launchstories/pkg/llm"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Port        string
	FrontendURL string

	LLMProvider     string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	LLMTimeout      time.Duration

	SheetsID          string
	GoogleClientEmail string
	GooglePrivateKey  string
	GoogleProjectID   string
	DriveFolderID     string
	SlackWebhookURL   string
	DatabaseURL       string
	RedisURL          string
	LeaderboardTTL    time.Duration
	EnhanceRatePerMin float64
	EnhanceRateBurst  int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("LLM_TIMEOUT", "60s")
	v.SetDefault("LEADERBOARD_CACHE_TTL", "30s")
	v.SetDefault("ENHANCE_RATE_PER_MINUTE", 6)
	v.SetDefault("ENHANCE_RATE_BURST", 3)
}

// New loads .env (if present) and returns a viper instance reading the
// environment, optionally layered over a config file.
func New(configFile string) (*viper.Viper, error) {
	godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) Config {
	return Config{
		Port:              v.GetString("PORT"),
		FrontendURL:       v.GetString("FRONTEND_URL"),
		LLMProvider:       strings.ToLower(v.GetString("LLM_PROVIDER")),
		OpenAIAPIKey:      v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL:     v.GetString("OPENAI_BASE_URL"),
		OpenAIModel:       v.GetString("OPENAI_MODEL"),
		AnthropicAPIKey:   v.GetString("ANTHROPIC_API_KEY"),
		AnthropicModel:    v.GetString("ANTHROPIC_MODEL"),
		LLMTimeout:        v.GetDuration("LLM_TIMEOUT"),
		SheetsID:          v.GetString("GOOGLE_SHEETS_ID"),
		GoogleClientEmail: v.GetString("GOOGLE_SHEETS_CLIENT_EMAIL"),
		GooglePrivateKey:  v.GetString("GOOGLE_SHEETS_PRIVATE_KEY"),
		GoogleProjectID:   v.GetString("GOOGLE_SHEETS_PROJECT_ID"),
		DriveFolderID:     v.GetString("GOOGLE_DRIVE_FOLDER_ID"),
		SlackWebhookURL:   v.GetString("SLACK_WEBHOOK_URL"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		RedisURL:          v.GetString("REDIS_URL"),
		LeaderboardTTL:    v.GetDuration("LEADERBOARD_CACHE_TTL"),
		EnhanceRatePerMin: v.GetFloat64("ENHANCE_RATE_PER_MINUTE"),
		EnhanceRateBurst:  v.GetInt("ENHANCE_RATE_BURST"),
	}
}

func (c Config) GoogleCredentials() google.Credentials {
	return google.Credentials{
		ClientEmail: c.GoogleClientEmail,
		PrivateKey:  c.GooglePrivateKey,
		ProjectID:   c.GoogleProjectID,
	}
}

// NewEnhancer builds the configured LLM provider. A nil enhancer with a nil
// error means no provider key is set.
func (c Config) NewEnhancer() (llm.Enhancer, error) {
	switch c.LLMProvider {
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return nil, nil
		}
		return llm.NewAnthropicClient(llm.Config{
			APIKey:  c.AnthropicAPIKey,
			Model:   c.AnthropicModel,
			Timeout: c.LLMTimeout,
		})
	case ProviderOpenAI, "":
		if c.OpenAIAPIKey == "" {
			return nil, nil
		}
		return llm.NewOpenAIClient(llm.Config{
			APIKey:  c.OpenAIAPIKey,
			BaseURL: c.OpenAIBaseURL,
			Model:   c.OpenAIModel,
			Timeout: c.LLMTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
}
