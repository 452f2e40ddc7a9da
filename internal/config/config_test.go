package config_test

import (
	"testing"
	"time"

	"go-payslip/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("IMPORT_SESSION_TTL", "")
	t.Setenv("MINIO_USE_SSL", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.ImportSessionTTL)
	assert.False(t, cfg.Minio.UseSSL)
	assert.Equal(t, "payslips", cfg.Minio.Bucket)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("IMPORT_SESSION_TTL", "5m")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.ImportSessionTTL)
	assert.True(t, cfg.Minio.UseSSL)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("IMPORT_SESSION_TTL", "soon")

	_, err := config.Load()

	assert.Error(t, err)
}
