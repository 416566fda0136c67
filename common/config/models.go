package config

type GeneralConfig struct {
	LogDirectory string `yaml:"logDirectory"`
	LogColors    bool   `yaml:"logColors"`
	JsonLogs     bool   `yaml:"jsonLogs"`
	LogLevel     string `yaml:"logLevel"`
}

type PreviewsConfig struct {
	// MaxMinithumbnailBytes bounds how large a packed minithumbnail the
	// display helpers will expand. Zero disables the limit.
	MaxMinithumbnailBytes int `yaml:"maxMinithumbnailBytes"`
}

type MetricsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BindAddress string `yaml:"bindAddress"`
	Port        int    `yaml:"port"`
}

type SentryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dsn         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}

type RepoConfig struct {
	General  GeneralConfig  `yaml:"repo"`
	Previews PreviewsConfig `yaml:"previews"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Sentry   SentryConfig   `yaml:"sentry"`
}
