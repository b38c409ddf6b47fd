package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "5242880")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(5242880), cfg.MaxFileSize)
}

func TestLoadConfigIgnoresBadMaxFileSize(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
}
