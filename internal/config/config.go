package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	DBDSN            string `envconfig:"DB_DSN" default:"kachabity.db"`
	LogFile          string `envconfig:"LOG_FILE" default:""`
	PlaceholderImage string `envconfig:"PLACEHOLDER_IMAGE_URL" default:"media/placeholder.png"`
	AdminToken       string `envconfig:"ADMIN_TOKEN" default:""`
}

func Load() (Config, error) {
	// best-effort .env for local runs
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg, nil
}
