package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Database (optional; leaderboard mirror is skipped when empty)
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Feed endpoints
	FeedBaseURL  string `mapstructure:"FEED_BASE_URL"`
	TeeTimesURL  string `mapstructure:"TEE_TIMES_URL"`
	TournamentID string `mapstructure:"TOURNAMENT_ID"`
	SeasonYear   string `mapstructure:"SEASON_YEAR"`

	// Output
	OutputDir string `mapstructure:"OUTPUT_DIR"`

	// Export scheduling
	ExportSchedule    string `mapstructure:"EXPORT_SCHEDULE"`
	SkipInitialExport bool   `mapstructure:"SKIP_INITIAL_EXPORT"`

	// External API resilience
	ExternalAPITimeout      time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`
	FeedRetryAttempts       int           `mapstructure:"FEED_RETRY_ATTEMPTS"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("FEED_BASE_URL", "https://statdata.pgatour.com")
	viper.SetDefault("TEE_TIMES_URL", "https://s3.amazonaws.com/de-pgat/DellMatchPlay/teetimes.json")
	viper.SetDefault("TOURNAMENT_ID", "470")
	viper.SetDefault("SEASON_YEAR", "2017")
	viper.SetDefault("OUTPUT_DIR", "./out")
	viper.SetDefault("EXPORT_SCHEDULE", "")          // No scheduled re-export by default
	viper.SetDefault("SKIP_INITIAL_EXPORT", false)   // Keep current behavior by default
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "30s")  // Conservative timeout
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5) // Fail after 5 consecutive failures
	viper.SetDefault("FEED_RETRY_ATTEMPTS", 3)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
