package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config — конфигурация сервера. Значения читаются из переменных
// окружения, флаги командной строки имеют приоритет над ними.
type Config struct {
	Port    string `env:"PG_PORT" envDefault:"8080"`
	DataDir string `env:"PG_DATA_DIR" envDefault:"data"`
	DBPath  string `env:"PG_DB_PATH" envDefault:"pocketgrove.db"`
	// Seed world-генератора. 0 — сгенерировать случайный.
	Seed int64 `env:"PG_SEED" envDefault:"0"`
}

// Load читает конфигурацию из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
