package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret string
}

// MatchingConfig holds the matching policy knobs: the search radius bounds
// and the re-pairing exclusion window.
type MatchingConfig struct {
	DefaultRadiusMiles   float64
	MinRadiusMiles       float64
	MaxRadiusMiles       float64
	RecencyExclusionDays int
}

type RateLimitConfig struct {
	MatchRequestsPerMinute int
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("MATCH_DEFAULT_RADIUS_MILES", 20.0)
	viper.SetDefault("MATCH_MIN_RADIUS_MILES", 1.0)
	viper.SetDefault("MATCH_MAX_RADIUS_MILES", 100.0)
	viper.SetDefault("MATCH_RECENCY_EXCLUSION_DAYS", 7)
	viper.SetDefault("RATE_LIMIT_MATCH_PER_MINUTE", 10)
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret: viper.GetString("JWT_ACCESS_SECRET"),
		},
		Matching: MatchingConfig{
			DefaultRadiusMiles:   viper.GetFloat64("MATCH_DEFAULT_RADIUS_MILES"),
			MinRadiusMiles:       viper.GetFloat64("MATCH_MIN_RADIUS_MILES"),
			MaxRadiusMiles:       viper.GetFloat64("MATCH_MAX_RADIUS_MILES"),
			RecencyExclusionDays: viper.GetInt("MATCH_RECENCY_EXCLUSION_DAYS"),
		},
		RateLimit: RateLimitConfig{
			MatchRequestsPerMinute: viper.GetInt("RATE_LIMIT_MATCH_PER_MINUTE"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.Matching.MinRadiusMiles < 1 {
		return fmt.Errorf("minimum match radius must be at least 1 mile")
	}
	if c.Matching.MaxRadiusMiles > 100 {
		return fmt.Errorf("maximum match radius must not exceed 100 miles")
	}
	if c.Matching.MinRadiusMiles > c.Matching.MaxRadiusMiles {
		return fmt.Errorf("minimum match radius exceeds maximum")
	}
	if c.Matching.RecencyExclusionDays < 0 {
		return fmt.Errorf("recency exclusion days must not be negative")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
