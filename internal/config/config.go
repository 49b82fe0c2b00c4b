package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig collects everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	SiteBaseURL   string

	AdminEmail        string
	AdminName         string
	AdminPasswordHash string

	MediaBackend  string // "local" or "s3"
	UploadDir     string
	UploadURLPath string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3Region      string
	S3PublicURL   string

	RedisURL string

	OpenAIAPIKey string
	OpenAIModel  string

	UmamiWebsiteID string
	UmamiAPIKey    string

	MaintenanceMode        bool
	MaintenanceBypassToken string
	MaintenanceAllowedIPs  []string

	LogLevel  string
	LogPretty bool
}

// Load reads the application config from environment variables, filling in
// safe defaults for anything missing. A .env file is honored when present.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	port := getEnv("PORT", "8080")
	listenAddr := getEnv("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	var allowedIPs []string
	for _, ip := range strings.Split(os.Getenv("MAINTENANCE_ALLOWED_IPS"), ",") {
		if trimmed := strings.TrimSpace(ip); trimmed != "" {
			allowedIPs = append(allowedIPs, trimmed)
		}
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  getEnv("DATABASE_PATH", "devfolio.db"),
		SessionSecret: getEnv("SESSION_SECRET", "devfolio-dev-secret"),
		GinMode:       getEnv("GIN_MODE", "release"),
		SiteBaseURL:   getEnv("SITE_BASE_URL", "http://localhost:8080"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminName:         getEnv("ADMIN_NAME", "Admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		MediaBackend:  getEnv("MEDIA_BACKEND", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath: getEnv("UPLOAD_URL_PATH", "/static/uploads"),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:   getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:      getEnv("S3_BUCKET", "devfolio-media"),
		S3Region:      getEnv("S3_REGION", "auto"),
		S3PublicURL:   getEnv("S3_PUBLIC_URL", ""),

		RedisURL: getEnv("REDIS_URL", ""),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		UmamiWebsiteID: getEnv("UMAMI_WEBSITE_ID", ""),
		UmamiAPIKey:    getEnv("UMAMI_API_KEY", ""),

		MaintenanceMode:        getEnv("MAINTENANCE_MODE", "") == "true",
		MaintenanceBypassToken: getEnv("MAINTENANCE_BYPASS_TOKEN", ""),
		MaintenanceAllowedIPs:  allowedIPs,

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("LOG_PRETTY", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
