package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "brainstorm.db", c.DatabaseDSN)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
