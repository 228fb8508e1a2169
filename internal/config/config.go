package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv         string
	AppPort        string
	TrustedProxies []string

	// TranslationFolder replaces the embedded message files when set.
	TranslationFolder string

	DbDriver string
	// DatabaseURL overrides the per-driver settings below when set.
	DatabaseURL string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgName     string
	PgSSLMode  string

	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration
	DbSlowThreshold   time.Duration
	DbAutoMigrate     bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:         getEnv("APP_ENV", "production"),
		AppPort:        getEnv("APP_PORT", "8080"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		TranslationFolder: getEnv("TRANSLATION_FOLDER", ""),

		DbDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		DbHost:     getEnv("MYSQL_HOST", "db"),
		DbPort:     getEnv("MYSQL_PORT", "3306"),
		DbUser:     getEnv("MYSQL_USER", "taskflow"),
		DbPassword: getEnv("MYSQL_PASSWORD", "taskflow"),
		DbName:     getEnv("MYSQL_DATABASE", "taskflow"),
		DbParams:   getEnv("MYSQL_PARAMS", "parseTime=true&charset=utf8mb4&loc=UTC"),

		PgHost:     getEnv("POSTGRES_HOST", "db"),
		PgPort:     getEnv("POSTGRES_PORT", "5432"),
		PgUser:     getEnv("POSTGRES_USER", "taskflow"),
		PgPassword: getEnv("POSTGRES_PASSWORD", "taskflow"),
		PgName:     getEnv("POSTGRES_DB", "taskflow"),
		PgSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		DbMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DbMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DbConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		DbSlowThreshold:   getEnvDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		DbAutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
