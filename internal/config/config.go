package config

import (
	"ctchen222/tictactoe-cli/internal/validator"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string        `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile     string        `yaml:"log-file" env:"TTT_LOG_FILE"`
	Difficulty  string        `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"hard" validate:"oneof=easy medium hard"`
	ThinkDelay  time.Duration `yaml:"think-delay" env:"TTT_THINK_DELAY" env-default:"1s"`
	SplashDelay time.Duration `yaml:"splash-delay" env:"TTT_SPLASH_DELAY" env-default:"2s"`
	NoColor     bool          `yaml:"no-color" env:"TTT_NO_COLOR"`
	HTTP        HTTP          `yaml:"http"`
	Storage     Storage       `yaml:"storage"`
	Telemetry   Telemetry     `yaml:"telemetry"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"TTT_HTTP_ADDR" env-default:":8080" validate:"required"`
}

// Storage backends are optional; an empty value turns the backend off.
type Storage struct {
	SQLitePath string `yaml:"sqlite-path" env:"TTT_SQLITE_PATH"`
	RedisAddr  string `yaml:"redis-addr" env:"TTT_REDIS_ADDR"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
}

// Load reads the YAML file at path, then environment overrides. An empty path reads
// the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for callers that cannot continue without a config.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
