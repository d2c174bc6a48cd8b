package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REQUEST_TIMEOUT_SEC=10
//	CRIPTOYA_BASE_URL=https://criptoya.com/api
//	CRIPTOYA_USER_AGENT=quotepulse/1.0
//	EXCLUDED_EXCHANGES=paydecep2p
//	DEFAULT_ASSET=USDT
//	DEFAULT_FIAT=ARS
//	DEFAULT_VOLUME=1
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	CriptoYa CriptoYaConfig // upstream price API
	Quote    QuoteConfig    // averaging defaults
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // deadline applied to every API request
}

// CriptoYaConfig defines how the upstream API is reached.
type CriptoYaConfig struct {
	BaseURL   string
	UserAgent string
}

// QuoteConfig defines the averaging defaults.
//
// Fields:
//   - ExcludedExchanges: exchanges never averaged (case-insensitive).
//   - DefaultAsset / DefaultFiat: pair used when a request leaves them empty.
//   - DefaultVolume: volume used when a request leaves it out.
type QuoteConfig struct {
	ExcludedExchanges []string
	DefaultAsset      string
	DefaultFiat       string
	DefaultVolume     float64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT_SEC", 10)

	viper.SetDefault("CRIPTOYA_BASE_URL", "https://criptoya.com/api")
	viper.SetDefault("CRIPTOYA_USER_AGENT", "quotepulse/1.0")

	viper.SetDefault("EXCLUDED_EXCHANGES", "paydecep2p")
	viper.SetDefault("DEFAULT_ASSET", "USDT")
	viper.SetDefault("DEFAULT_FIAT", "ARS")
	viper.SetDefault("DEFAULT_VOLUME", 1.0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SEC")) * time.Second,
		},
		CriptoYa: CriptoYaConfig{
			BaseURL:   strings.TrimSpace(viper.GetString("CRIPTOYA_BASE_URL")),
			UserAgent: viper.GetString("CRIPTOYA_USER_AGENT"),
		},
		Quote: QuoteConfig{
			ExcludedExchanges: splitCSV(viper.GetString("EXCLUDED_EXCHANGES")),
			DefaultAsset:      strings.ToUpper(strings.TrimSpace(viper.GetString("DEFAULT_ASSET"))),
			DefaultFiat:       strings.ToUpper(strings.TrimSpace(viper.GetString("DEFAULT_FIAT"))),
			DefaultVolume:     viper.GetFloat64("DEFAULT_VOLUME"),
		},
	}

	validateConfig()
}

// splitCSV turns "a, b,,c" into [a b c].
func splitCSV(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT_SEC")
	}
	if AppConfig.CriptoYa.BaseURL == "" {
		missing = append(missing, "CRIPTOYA_BASE_URL")
	}
	if AppConfig.Quote.DefaultAsset == "" {
		missing = append(missing, "DEFAULT_ASSET")
	}
	if AppConfig.Quote.DefaultFiat == "" {
		missing = append(missing, "DEFAULT_FIAT")
	}
	if AppConfig.Quote.DefaultVolume <= 0 {
		missing = append(missing, "DEFAULT_VOLUME")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
