package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/topi314/tint"

	"github.com/hupe1980/strongflags/internal/codegen"
)

// Config is the generator configuration assembled from defaults, the config
// file, STRONGFLAGS_* environment variables and command-line flags.
type Config struct {
	Order       string    `cfg:"order"`
	Concurrency int       `cfg:"concurrency"`
	Log         LogConfig `cfg:"log"`
}

// LogConfig configures CLI log output.
type LogConfig struct {
	Level   string `cfg:"level"`
	Format  string `cfg:"format"`
	NoColor bool   `cfg:"no_color"`
}

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("order", string(codegen.Descending))
	v.SetDefault("concurrency", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logFormatText)
	v.SetDefault("log.no_color", false)
}

func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	setDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".strongflags")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("strongflags")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(c *mapstructure.DecoderConfig) {
		c.TagName = "cfg"
	}); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func newLogHandler(cfg LogConfig, w io.Writer) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	switch strings.ToLower(cfg.Format) {
	case logFormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case logFormatText, "":
		noColor := cfg.NoColor
		if f, ok := w.(*os.File); ok {
			w = colorable.NewColorable(f)
		} else {
			noColor = true
		}
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    noColor,
		}), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}
