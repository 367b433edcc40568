package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// Rates controls cache freshness, the background refresh interval and the
// per-source fetch bound.
type Rates struct {
	FreshnessSeconds     int   `mapstructure:"freshness_seconds"`
	RefreshSeconds       int   `mapstructure:"refresh_seconds"`
	SourceTimeoutSeconds int   `mapstructure:"source_timeout_seconds"`
	HistoryCacheSize     int64 `mapstructure:"history_cache_size"`
}

// Sources holds the base URLs of the five upstream quote providers. All of
// them are keyless public endpoints; the URLs are configurable so tests and
// staging can point at stubs.
type Sources struct {
	BluelyticsURL       string `mapstructure:"bluelytics_url"`
	FrankfurterURL      string `mapstructure:"frankfurter_url"`
	ExchangerateHostURL string `mapstructure:"exchangerate_host_url"`
	OpenERAPIURL        string `mapstructure:"open_er_api_url"`
	ExchangerateAPIURL  string `mapstructure:"exchangerate_api_url"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Rates      Rates      `mapstructure:"rates"`
	Sources    Sources    `mapstructure:"sources"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("rates.freshness_seconds", 60)
	viper.SetDefault("rates.refresh_seconds", 60)
	viper.SetDefault("rates.source_timeout_seconds", 5)
	viper.SetDefault("rates.history_cache_size", 1024)
	viper.SetDefault("sources.bluelytics_url", "https://api.bluelytics.com.ar")
	viper.SetDefault("sources.frankfurter_url", "https://api.frankfurter.app")
	viper.SetDefault("sources.exchangerate_host_url", "https://api.exchangerate.host")
	viper.SetDefault("sources.open_er_api_url", "https://open.er-api.com")
	viper.SetDefault("sources.exchangerate_api_url", "https://api.exchangerate-api.com")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// rates env vars
	_ = viper.BindEnv("rates.freshness_seconds", "RATES_FRESHNESS_SECONDS")
	_ = viper.BindEnv("rates.refresh_seconds", "RATES_REFRESH_SECONDS")
	_ = viper.BindEnv("rates.source_timeout_seconds", "RATES_SOURCE_TIMEOUT_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
