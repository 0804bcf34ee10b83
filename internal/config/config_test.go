package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestFromFileDefaults(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/test.db\n")

	config, err := FromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", config.DBPath)
	assert.Equal(t, "8080", config.ApiPort)
	assert.Equal(t, 100, config.CacheSize)
	assert.Equal(t, "backtick", config.Dialect)
	assert.False(t, config.Debug)
}

func TestFromFileOverrides(t *testing.T) {
	path := writeConfig(t, "api_port: \"9090\"\ncache_size: 5\ndialect: space\ndebug: true\n")

	config, err := FromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "9090", config.ApiPort)
	assert.Equal(t, 5, config.CacheSize)
	assert.Equal(t, "space", config.Dialect)
	assert.True(t, config.Debug)
}

func TestFromFileInvalidDialect(t *testing.T) {
	path := writeConfig(t, "dialect: base64\n")

	_, err := FromFile(path)
	assert.Error(t, err)
}

func TestFromFileInvalidCacheSize(t *testing.T) {
	path := writeConfig(t, "cache_size: -1\n")

	_, err := FromFile(path)
	assert.Error(t, err)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
