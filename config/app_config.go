package config

import (
	"os"
	"strconv"
	"strings"

	"trendsight/internal/models"
)

// AppConfig holds the server-level settings read once at startup.
type AppConfig struct {
	Port           string
	JWTSecret      string
	MaxKeywords    int
	BrandWatchlist models.BrandWatchlist
}

func LoadAppConfig() AppConfig {
	cfg := AppConfig{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MaxKeywords: getEnvInt("MAX_KEYWORDS", 10),
	}

	cfg.BrandWatchlist = ParseBrandWatchlist(os.Getenv("BRAND_WATCHLIST"))

	return cfg
}

// ParseBrandWatchlist parses the BRAND_WATCHLIST format:
// "Acme:ACME Inc|AcmeCorp,Globex" — comma-separated brands, each optionally
// followed by pipe-separated aliases after a colon. Order is preserved.
func ParseBrandWatchlist(raw string) models.BrandWatchlist {
	var watchlist models.BrandWatchlist

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, aliasPart, hasAliases := strings.Cut(entry, ":")
		brand := models.Brand{Name: strings.TrimSpace(name)}
		if brand.Name == "" {
			continue
		}

		if hasAliases {
			for _, alias := range strings.Split(aliasPart, "|") {
				alias = strings.TrimSpace(alias)
				if alias != "" {
					brand.Aliases = append(brand.Aliases, alias)
				}
			}
		}

		watchlist = append(watchlist, brand)
	}

	return watchlist
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
