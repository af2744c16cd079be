// Package config centraliza la lectura de variables de entorno del servidor.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Storage string

const (
	StorageSQLite   Storage = "sqlite"
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

type Config struct {
	HTTPAddress string

	Storage    Storage
	DBDSN      string
	SQLitePath string

	KafkaBrokers []string
	KafkaTopic   string

	SlotWidth     time.Duration
	TimelineSlots int
	Location      *time.Location
}

// Load lee el entorno con defaults para uso local (sqlite en ./ptdb.sqlite, puerto 8181).
func Load() Config {
	cfg := Config{
		HTTPAddress:   ":" + getEnv("PORT", "8181"),
		DBDSN:         getEnv("DB_DSN", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "./ptdb.sqlite"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "pet-acts"),
		SlotWidth:     getDurationEnv("SLOT_WIDTH", 10*time.Minute),
		TimelineSlots: getIntEnv("TIMELINE_SLOTS", 100),
		Location:      getLocationEnv("TIMELINE_TZ", time.Local),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))

	switch Storage(strings.ToLower(getEnv("STORAGE", ""))) {
	case StoragePostgres:
		cfg.Storage = StoragePostgres
	case StorageMemory:
		cfg.Storage = StorageMemory
	case StorageSQLite:
		cfg.Storage = StorageSQLite
	default:
		// Sin STORAGE explícito: postgres si hay DSN, si no el archivo sqlite.
		if cfg.DBDSN != "" {
			cfg.Storage = StoragePostgres
		} else {
			cfg.Storage = StorageSQLite
		}
	}

	if cfg.SlotWidth < time.Minute {
		cfg.SlotWidth = 10 * time.Minute
	}
	if cfg.TimelineSlots <= 0 {
		cfg.TimelineSlots = 100
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getLocationEnv(key string, fallback *time.Location) *time.Location {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if loc, err := time.LoadLocation(value); err == nil {
			return loc
		}
	}
	return fallback
}
