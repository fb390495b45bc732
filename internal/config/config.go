package config

import (
	"os"
	"time"
)

// Config is read once at startup. A missing DATABASE_URL or S3 bucket does not
// stop the process: the affected gateway is replaced by an inert no-op
// implementation so the app can still boot in unconfigured environments.
type Config struct {
	Port        string
	DatabaseURL string
	ObjectStore ObjectStoreConfig
	// SessionTTL bounds how long an abandoned intake session is kept in memory.
	SessionTTL time.Duration
}

type ObjectStoreConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
	// PublicBaseURL overrides how public object URLs are built. When empty the
	// URL is derived from the endpoint (or the AWS virtual-hosted style).
	PublicBaseURL string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ObjectStore: ObjectStoreConfig{
			Bucket:          os.Getenv("TAILORFLOW_S3_BUCKET"),
			Region:          getEnv("TAILORFLOW_S3_REGION", "us-east-1"),
			Endpoint:        os.Getenv("TAILORFLOW_S3_ENDPOINT"),
			AccessKeyID:     os.Getenv("TAILORFLOW_S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("TAILORFLOW_S3_SECRET_ACCESS_KEY"),
			PathStyle:       getEnv("TAILORFLOW_S3_PATH_STYLE", "false") == "true",
			PublicBaseURL:   os.Getenv("TAILORFLOW_PUBLIC_BASE_URL"),
		},
		SessionTTL: getDurationEnv("INTAKE_SESSION_TTL", 2*time.Hour),
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
