package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Currency enumeration strategies accepted by CURRENCY_ENUMERATION.
const (
	EnumerationDirect     = "direct"
	EnumerationLocaleScan = "locale-scan"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required,numeric"`
	IsProduction bool
	// DisplayLocaleName is the BCP 47 tag names and symbols are rendered in.
	DisplayLocaleName   string `validate:"required,bcp47_language_tag"`
	DisplayLocale       language.Tag
	CurrencyEnumeration string `validate:"oneof=direct locale-scan"`
	IconPrefix          string `validate:"required"`
	IconFallback        string
	IconManifestPath    string
	RateLimit           string `validate:"required"` // ulule/limiter format, e.g. "300-M"
	CORSAllowedOrigins  []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DISPLAY_LOCALE", "en-US")
	v.SetDefault("CURRENCY_ENUMERATION", EnumerationDirect)
	v.SetDefault("ICON_PREFIX", "flag_")
	v.SetDefault("ICON_FALLBACK", "")
	v.SetDefault("ICON_MANIFEST", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		DisplayLocaleName:   v.GetString("DISPLAY_LOCALE"),
		CurrencyEnumeration: strings.ToLower(v.GetString("CURRENCY_ENUMERATION")),
		IconPrefix:          v.GetString("ICON_PREFIX"),
		IconFallback:        v.GetString("ICON_FALLBACK"),
		IconManifestPath:    v.GetString("ICON_MANIFEST"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	tag, err := language.Parse(cfg.DisplayLocaleName)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_LOCALE %q: %w", cfg.DisplayLocaleName, err)
	}
	cfg.DisplayLocale = tag

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.IsProduction && len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		log.Println("Warning: CORS_ALLOWED_ORIGINS allows every origin in production.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
