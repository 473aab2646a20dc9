package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the service configuration, loaded from the environment
// with defaults for everything except the MongoDB connection string.
type Config struct {
	ServerAddr string `mapstructure:"server_addr"`
	MongoURI   string `mapstructure:"mongo_uri"`
	MongoDB    string `mapstructure:"mongo_db"`
	LogLevel   string `mapstructure:"log_level"`
	StaticDir  string `mapstructure:"static_dir"`
}

// Load reads configuration with precedence ENV > defaults. A missing
// MONGOURI is a hard error so misconfiguration fails at startup instead
// of surfacing as an obscure connection failure later.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server_addr", "127.0.0.1:8080")
	v.SetDefault("mongo_db", "news")
	v.SetDefault("log_level", "info")
	v.SetDefault("static_dir", "./static")

	v.BindEnv("server_addr", "SERVER_ADDR")
	v.BindEnv("mongo_uri", "MONGOURI")
	v.BindEnv("mongo_db", "MONGO_DB")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("static_dir", "STATIC_DIR")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGOURI is not set: a MongoDB connection string is required")
	}
	return nil
}
