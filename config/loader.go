package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort           = 8090
	DefaultTitle          = "Sentiment Analysis App"
	DefaultVectorizerPath = "artifacts/tfidf_vectorizer.json"
	DefaultClassifierPath = "artifacts/random_forest_model.json"
	DefaultDatabasePath   = "predictions.db"
	DefaultHistoryLimit   = 50
)

// New returns a viper instance with defaults, config search paths and
// environment overrides set up. Callers may bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// server.port <- SERVER_PORT, model.classifier_path <- MODEL_CLASSIFIER_PATH
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// PORT is the container platform convention; SERVER_PORT wins when both are set.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.mode", "release")
	v.SetDefault("page.title", DefaultTitle)
	v.SetDefault("page.background_image", "")
	v.SetDefault("model.vectorizer_path", DefaultVectorizerPath)
	v.SetDefault("model.classifier_path", DefaultClassifierPath)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.database_path", DefaultDatabasePath)
	v.SetDefault("history.limit", DefaultHistoryLimit)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	return v
}

// Load reads .env, the optional config file (or configFile when set) and the
// environment into a validated Config.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// Best-effort: a missing .env is normal outside development.
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Page.Title == "" {
		cfg.Page.Title = DefaultTitle
	}
	if cfg.History.Limit <= 0 {
		cfg.History.Limit = DefaultHistoryLimit
	}
	if cfg.History.DatabasePath == "" {
		cfg.History.DatabasePath = DefaultDatabasePath
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	switch cfg.Server.Mode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("server.mode must be release, debug or test, got %q", cfg.Server.Mode)
	}
	if cfg.Model.VectorizerPath == "" {
		return errors.New("model.vectorizer_path is required")
	}
	if cfg.Model.ClassifierPath == "" {
		return errors.New("model.classifier_path is required")
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
