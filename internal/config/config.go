package config

import (
	"os"
	"strconv"

	"uevent/internal/database"
)

// Config contains the application configuration
type Config struct {
	LogLevel  string
	LogFormat string

	Database database.Config
	Seed     Seed
}

// Range is an inclusive [Min, Max] draw range for a per-relation count.
type Range struct {
	Min int
	Max int
}

// Seed describes the statistical shape of the generated dataset.
type Seed struct {
	Users     int
	Companies int

	EventsPerCompany     Range
	CommentsPerTarget    Range
	ReactionsPerComment  Range
	PromoCodesPerCompany Range
	NewsPerCompany       Range
	SubscriptionsPerUser Range
	NotificationsPerUser Range
}

// Load loads the configuration from environment variables
func Load() *Config {
	return &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "uevent"),
			Password:           getEnv("DB_PASSWORD", "uevent"),
			DBName:             getEnv("DB_NAME", "uevent"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 100),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Seed: Seed{
			Users:     getEnvInt("SEED_USERS", 250),
			Companies: getEnvInt("SEED_COMPANIES", 150),

			EventsPerCompany:     getEnvRange("SEED_EVENTS_PER_COMPANY", 2, 15),
			CommentsPerTarget:    getEnvRange("SEED_COMMENTS_PER_TARGET", 0, 15),
			ReactionsPerComment:  getEnvRange("SEED_REACTIONS_PER_COMMENT", 0, 8),
			PromoCodesPerCompany: getEnvRange("SEED_PROMO_CODES_PER_COMPANY", 0, 3),
			NewsPerCompany:       getEnvRange("SEED_NEWS_PER_COMPANY", 0, 5),
			SubscriptionsPerUser: getEnvRange("SEED_SUBSCRIPTIONS_PER_USER", 0, 10),
			NotificationsPerUser: getEnvRange("SEED_NOTIFICATIONS_PER_USER", 0, 15),
		},
	}
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvRange reads <key>_MIN and <key>_MAX with the given defaults
func getEnvRange(key string, defMin, defMax int) Range {
	return Range{
		Min: getEnvInt(key+"_MIN", defMin),
		Max: getEnvInt(key+"_MAX", defMax),
	}
}
