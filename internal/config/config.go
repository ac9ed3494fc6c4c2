// Package config loads runtime settings from flags and the environment.
package config

import (
	"time"

	"catalogview/internal/models"
	"catalogview/internal/presenter"

	"github.com/spf13/viper"
)

// Keys understood by Load. Each one can be set as an environment variable.
const (
	KeyAppPort          = "APP_PORT"
	KeyCatalogBaseURL   = "CATALOG_BASE_URL"
	KeyPlaceholderImage = "PLACEHOLDER_IMAGE_URL"
	KeyPageSize         = "PAGE_SIZE"
	KeyFetchTimeout     = "FETCH_TIMEOUT"
	KeyViewTTL          = "VIEW_TTL"
	KeySweepInterval    = "VIEW_SWEEP_INTERVAL"
)

// Config holds everything the server and the CLI need.
type Config struct {
	AppPort          string
	CatalogBaseURL   string
	PlaceholderImage string
	PageSize         int
	FetchTimeout     time.Duration // zero disables the timeout
	ViewTTL          time.Duration
	SweepInterval    time.Duration
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAppPort, ":8080")
	v.SetDefault(KeyCatalogBaseURL, "http://localhost:3000/api")
	v.SetDefault(KeyPlaceholderImage, presenter.DefaultPlaceholderImage)
	v.SetDefault(KeyPageSize, models.DefaultPageSize)
	v.SetDefault(KeyFetchTimeout, time.Duration(0))
	v.SetDefault(KeyViewTTL, 30*time.Minute)
	v.SetDefault(KeySweepInterval, time.Minute)
}

// New returns a viper instance with defaults set and environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return v
}

// Load reads the configuration from v.
func Load(v *viper.Viper) Config {
	pageSize := v.GetInt(KeyPageSize)
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	return Config{
		AppPort:          v.GetString(KeyAppPort),
		CatalogBaseURL:   v.GetString(KeyCatalogBaseURL),
		PlaceholderImage: v.GetString(KeyPlaceholderImage),
		PageSize:         pageSize,
		FetchTimeout:     v.GetDuration(KeyFetchTimeout),
		ViewTTL:          v.GetDuration(KeyViewTTL),
		SweepInterval:    v.GetDuration(KeySweepInterval),
	}
}
