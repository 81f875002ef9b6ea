// Package config loads exporter settings once at the process boundary. The
// core pipeline never reaches into ambient configuration; it receives this
// struct (or fields of it) explicitly.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every setting the exporter needs. Fields map to GANAKA_*
// environment variables; a .env file in the working directory is honored but
// never overrides the shell environment.
type Config struct {
	// LogRoot is the Kiro storage directory containing session-hash
	// directories. GANAKA_LOG_ROOT; defaults to ~/.kiro/globalStorage/kiro.kiroagent.
	LogRoot string

	// Object store (S3-compatible) settings for CSV upload.
	Endpoint  string // GANAKA_S3_ENDPOINT; defaults to s3.amazonaws.com
	AccessKey string // GANAKA_S3_ACCESS_KEY
	SecretKey string // GANAKA_S3_SECRET_KEY
	Region    string // GANAKA_S3_REGION; defaults to us-east-1
	Bucket    string // GANAKA_S3_BUCKET
	Prefix    string // GANAKA_S3_PREFIX; key prefix for daily objects
	UseSSL    bool   // GANAKA_S3_SSL; defaults to true

	// Reporting identity. When IdentityURL is set, Username is resolved
	// against that service; otherwise UserID/DisplayName are used as-is.
	Username    string // GANAKA_USERNAME
	UserID      string // GANAKA_USER_ID
	DisplayName string // GANAKA_DISPLAY_NAME
	IdentityURL string // GANAKA_IDENTITY_URL
}

// Load reads configuration from the environment, after a best-effort load of
// a .env file in the working directory.
func Load() Config {
	// godotenv never overrides variables already set in the shell.
	_ = godotenv.Load()

	return Config{
		LogRoot:     env("GANAKA_LOG_ROOT", defaultLogRoot()),
		Endpoint:    env("GANAKA_S3_ENDPOINT", "s3.amazonaws.com"),
		AccessKey:   env("GANAKA_S3_ACCESS_KEY", ""),
		SecretKey:   env("GANAKA_S3_SECRET_KEY", ""),
		Region:      env("GANAKA_S3_REGION", "us-east-1"),
		Bucket:      env("GANAKA_S3_BUCKET", ""),
		Prefix:      env("GANAKA_S3_PREFIX", "metrics"),
		UseSSL:      envBool("GANAKA_S3_SSL", true),
		Username:    env("GANAKA_USERNAME", ""),
		UserID:      env("GANAKA_USER_ID", ""),
		DisplayName: env("GANAKA_DISPLAY_NAME", ""),
		IdentityURL: env("GANAKA_IDENTITY_URL", ""),
	}
}

func defaultLogRoot() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kiro", "globalStorage", "kiro.kiroagent")
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
