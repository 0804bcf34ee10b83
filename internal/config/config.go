package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/javi11/uudrive/pkg/uue"
	"gopkg.in/yaml.v2"
)

type Config struct {
	LogPath   string `yaml:"log_path" default:"/config/activity.log"`
	ApiPort   string `yaml:"api_port" default:"8080"`
	DBPath    string `yaml:"db_path" default:"/config/uudrive.db"`
	CacheSize int    `yaml:"cache_size" default:"100"`
	Dialect   string `yaml:"dialect" default:"backtick"`
	Debug     bool   `yaml:"debug" default:"false"`
}

func FromFile(path string) (*Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse the config file
	var config Config
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&config)
	if err != nil {
		return nil, err
	}

	if config.CacheSize <= 0 {
		return nil, fmt.Errorf("cache_size must be greater than 0")
	}

	if _, err := uue.ParseDialect(config.Dialect); err != nil {
		return nil, err
	}

	return &config, nil
}
