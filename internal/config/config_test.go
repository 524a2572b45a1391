package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "CATALOG_FILE", "RATE_LIMIT_RPS", "ALLOW_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "127.0.0.1:8082", cfg.Addr())
	assert.Equal(t, "config/sku_mapping.xlsx", cfg.CatalogFile)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_FILE", "/tmp/catalog.csv")
	t.Setenv("ALLOW_ORIGINS", "http://a,http://b")
	t.Setenv("RATE_LIMIT_RPS", "0")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/catalog.csv", cfg.CatalogFile)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.AllowOrigins)
	assert.Zero(t, cfg.RateLimitRPS)
}

func TestSetupLogger_BadLevelFallsBackToInfo(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	SetupLogger(Config{LogLevel: "loud"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
