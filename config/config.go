package config

// Config is the application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Page    PageConfig    `mapstructure:"page"`
	Model   ModelConfig   `mapstructure:"model"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: release, debug, test
}

// PageConfig holds the presentation settings of the review page.
type PageConfig struct {
	Title           string `mapstructure:"title"`
	BackgroundImage string `mapstructure:"background_image"` // empty disables the background
}

// ModelConfig points at the exported vectorizer and classifier artifacts.
type ModelConfig struct {
	VectorizerPath string `mapstructure:"vectorizer_path"`
	ClassifierPath string `mapstructure:"classifier_path"`
}

type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
	Limit        int    `mapstructure:"limit"` // page size for /history and /api/predictions
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
