package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		Port:          getEnv("PORT"),
		MigrationsDir: getOptionalEnv("MIGRATIONS_DIR", "./migrations"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SecureCookies: getBoolEnv("SECURE_COOKIES", false),
		CORS: CORSConfig{
			AllowedOrigins: splitList(getOptionalEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Slack: SlackConfig{
			Token:         os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:     os.Getenv("SLACK_CHANNEL_ID"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
	}
	if cfg.AdminPassword == "" {
		log.Warn("ADMIN_PASSWORD is not set, admin login is disabled")
	}
	return cfg
}

func getOptionalEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn("Ignoring invalid boolean environment variable", "key", key, "value", value)
		return fallback
	}
	return b
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
