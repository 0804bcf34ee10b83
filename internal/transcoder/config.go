package transcoder

import (
	"log/slog"

	"github.com/javi11/uudrive/internal/history"
	"github.com/javi11/uudrive/pkg/uue"
)

type Config struct {
	log       *slog.Logger
	history   history.TranscodeHistory
	cacheSize int
	dialect   uue.Dialect
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		log:       slog.Default(),
		cacheSize: 100,
		dialect:   uue.UseBackticks,
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.log = log
	}
}

func WithHistory(history history.TranscodeHistory) Option {
	return func(c *Config) {
		c.history = history
	}
}

func WithCacheSize(cacheSize int) Option {
	return func(c *Config) {
		c.cacheSize = cacheSize
	}
}

func WithDefaultDialect(dialect uue.Dialect) Option {
	return func(c *Config) {
		c.dialect = dialect
	}
}
