package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB           DBConfig
	Server       ServerConfig
	Redis        RedisConfig
	LoggerConfig LoggerConfig
	Auth         AuthConfig
	Analysis     AnalysisConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

// AuthConfig holds the shared secret of the identity provider's HS256 tokens.
type AuthConfig struct {
	JWTSecret string
}

// AnalysisConfig tunes the results pipeline.
type AnalysisConfig struct {
	// MinResponses is the distinct submitted response count needed for correlations.
	MinResponses int
	// BasicCategories make up the composite score and the core correlations.
	BasicCategories []string
	CacheTTL        time.Duration
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("analysis.min_responses", 10)
	viper.SetDefault("analysis.basic_categories", []string{
		"Perceived Usefulness",
		"Perceived Ease of Use",
		"Attitude",
		"Behavioral Intention",
	})
	viper.SetDefault("analysis.cache_ttl", 300)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LoggerConfig: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		Analysis: AnalysisConfig{
			MinResponses:    viper.GetInt("analysis.min_responses"),
			BasicCategories: viper.GetStringSlice("analysis.basic_categories"),
			CacheTTL:        viper.GetDuration("analysis.cache_ttl") * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Analysis.MinResponses < 1 {
		return fmt.Errorf("analysis.min_responses must be positive, got %d", c.Analysis.MinResponses)
	}
	if len(c.Analysis.BasicCategories) == 0 {
		return fmt.Errorf("analysis.basic_categories must not be empty")
	}
	return nil
}

// GetDSN returns a postgres connection URL.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     c.DB.DBName,
		RawQuery: "sslmode=" + c.DB.SSLMode,
	}
	return u.String()
}
