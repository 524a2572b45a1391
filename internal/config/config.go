package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host           string
	Port           int
	AllowOrigins   []string
	LogLevel       string
	LogFile        string
	MaxUploadMB    int
	CatalogFile    string  // таблица соответствий артикулов
	RateLimitRPS   float64 // 0 — без лимита
	RateLimitBurst int
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "32"))
	rps, _ := strconv.ParseFloat(getenv("RATE_LIMIT_RPS", "50"), 64)
	burst, _ := strconv.Atoi(getenv("RATE_LIMIT_BURST", "100"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           port,
		AllowOrigins:   origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFile:        getenv("LOG_FILE", "logs/sku-mapper.log"),
		MaxUploadMB:    mb,
		CatalogFile:    getenv("CATALOG_FILE", "config/sku_mapping.xlsx"),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
