package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "s3.amazonaws.com", cfg.Endpoint)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "metrics", cfg.Prefix)
	assert.True(t, cfg.UseSSL)
	assert.NotEmpty(t, cfg.LogRoot)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GANAKA_LOG_ROOT", "/var/logs/kiro")
	t.Setenv("GANAKA_S3_BUCKET", "metrics-bucket")
	t.Setenv("GANAKA_S3_SSL", "false")
	t.Setenv("GANAKA_USERNAME", "jdoe")

	cfg := Load()

	assert.Equal(t, "/var/logs/kiro", cfg.LogRoot)
	assert.Equal(t, "metrics-bucket", cfg.Bucket)
	assert.False(t, cfg.UseSSL)
	assert.Equal(t, "jdoe", cfg.Username)
}

func TestEnvBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("GANAKA_S3_SSL", "not-a-bool")
	assert.True(t, Load().UseSSL)
}
