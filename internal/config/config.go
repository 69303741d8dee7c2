package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
// Every field has a default so the server starts with no env at all, using
// the embedded SQLite database and the demo admin accounts.
type Config struct {
	DatabaseURL          string
	SQLitePath           string
	JWTSecret            string
	JWTIssuer            string
	SessionTTLSeconds    int64
	IdleTTLSeconds       int64
	AdminCredentials     map[string]string
	MetricsDiskPath      string
	MetricsSampleSeconds int
	CorsOrigins          []string
}

func Load() Config {
	return Config{
		DatabaseURL:          envOr("DATABASE_URL", ""),
		SQLitePath:           envOr("SQLITE_PATH", "storage/data.db"),
		JWTSecret:            envOr("JWT_SECRET", "dev-only-secret-change-me"),
		JWTIssuer:            envOr("JWT_ISSUER", "aisolution"),
		SessionTTLSeconds:    int64(envOrInt("SESSION_TTL_SECONDS", 14400)),
		IdleTTLSeconds:       int64(envOrInt("IDLE_TTL_SECONDS", 14400)),
		AdminCredentials:     parseCredentials(envOr("ADMIN_CREDENTIALS", "")),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "storage"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}

// parseCredentials reads "user:secret" pairs separated by commas. Secrets
// may be plaintext or bcrypt/argon2id hashes. The demo accounts apply when
// nothing is configured.
func parseCredentials(raw string) map[string]string {
	creds := map[string]string{}
	for _, pair := range parseCSV(raw) {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		user := strings.TrimSpace(parts[0])
		secret := strings.TrimSpace(parts[1])
		if user != "" && secret != "" {
			creds[user] = secret
		}
	}
	if len(creds) == 0 {
		creds["Ramesh"] = "rameshji"
		creds["admin"] = "admin123"
		creds["test"] = "test123"
	}
	return creds
}
