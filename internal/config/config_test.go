package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{KeyAppPort, KeyCatalogBaseURL, KeyPlaceholderImage, KeyPageSize, KeyFetchTimeout, KeyViewTTL, KeySweepInterval} {
		t.Setenv(key, "")
	}

	c := Load(New())

	assert.Equal(t, ":8080", c.AppPort)
	assert.Equal(t, "http://localhost:3000/api", c.CatalogBaseURL)
	assert.Equal(t, "https://via.placeholder.com/150", c.PlaceholderImage)
	assert.Equal(t, 10, c.PageSize)
	assert.Zero(t, c.FetchTimeout)
	assert.Equal(t, 30*time.Minute, c.ViewTTL)
	assert.Equal(t, time.Minute, c.SweepInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(KeyAppPort, ":9090")
	t.Setenv(KeyCatalogBaseURL, "https://catalog.example.com/api")
	t.Setenv(KeyPlaceholderImage, "https://img.example.com/none.png")
	t.Setenv(KeyPageSize, "25")
	t.Setenv(KeyFetchTimeout, "5s")
	t.Setenv(KeyViewTTL, "10m")
	t.Setenv(KeySweepInterval, "30s")

	c := Load(New())

	assert.Equal(t, ":9090", c.AppPort)
	assert.Equal(t, "https://catalog.example.com/api", c.CatalogBaseURL)
	assert.Equal(t, "https://img.example.com/none.png", c.PlaceholderImage)
	assert.Equal(t, 25, c.PageSize)
	assert.Equal(t, 5*time.Second, c.FetchTimeout)
	assert.Equal(t, 10*time.Minute, c.ViewTTL)
	assert.Equal(t, 30*time.Second, c.SweepInterval)
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	t.Setenv(KeyPageSize, "0")
	assert.Equal(t, 10, Load(New()).PageSize)
}
