// Package config loads server configuration from a config file and
// environment variables. Environment variables use the GRIMOIRE_ prefix
// and override file values (GRIMOIRE_REDIS_ENDPOINT, GRIMOIRE_SERVER_PORT).
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/spellwright/grimoire-api/internal/errors"
)

// ServerConfig holds gRPC server settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	PoolSize int    `mapstructure:"pool_size"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

// Config is the full server configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// Validate checks the loaded configuration for obvious mistakes
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		vb.InvalidField("server.port", "must be in (0, 65535]")
	}
	if c.Redis.Endpoint == "" {
		vb.RequiredField("redis.endpoint")
	}

	return vb.Build()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("redis.endpoint", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
}

// Load reads configuration from the given file path (optional) and the
// environment. An empty path loads defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GRIMOIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
