// Package config loads the command line configuration from steamwebapi.yml and STEAMWEBAPI_ prefixed
// environment variables.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/leighmacdonald/steamwebapi/pkg/log"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	ErrReadConfig     = errors.New("failed to read config file")
	ErrFormatConfig   = errors.New("invalid config file format")
	ErrDecodeDuration = errors.New("invalid duration")
)

type Config struct {
	SteamKey string     `mapstructure:"steam_key"`
	BaseURL  string     `mapstructure:"base_url"`
	HTTP     HTTPConfig `mapstructure:"http"`
	Log      LogConfig  `mapstructure:"logging"`
}

type HTTPConfig struct {
	Timeout       time.Duration `mapstructure:"timeout"`
	UserAgent     string        `mapstructure:"user_agent"`
	RetainPayload bool          `mapstructure:"retain_payload"`
	// Metrics prints request counters and latencies to stderr once a command completes.
	Metrics bool `mapstructure:"metrics"`
}

type LogConfig struct {
	Level     string `mapstructure:"level"`
	File      string `mapstructure:"file"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// WebAPI returns the client settings. The http client and logger are left for the caller.
func (c Config) WebAPI() webapi.Config {
	return webapi.Config{
		BaseURL:       c.BaseURL,
		Timeout:       c.HTTP.Timeout,
		UserAgent:     c.HTTP.UserAgent,
		RetainPayload: c.HTTP.RetainPayload,
	}
}

func (c Config) LogOptions(version string) log.Options {
	return log.Options{
		Level:     log.Level(c.Log.Level),
		File:      c.Log.File,
		SentryDSN: c.Log.SentryDSN,
		Version:   version,
	}
}

// Read loads the configuration. An explicit cfgFile must exist, otherwise steamwebapi.yml is searched for in
// the home and working directories and defaults are used when it is absent.
func Read(cfgFile string) (Config, error) {
	var config Config

	reader := newReader()

	if cfgFile != "" {
		reader.SetConfigFile(cfgFile)
	}

	if errRead := reader.ReadInConfig(); errRead != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(errRead, &notFound) {
			return config, errors.Join(errRead, ErrReadConfig)
		}
	}

	if errUnmarshal := reader.Unmarshal(&config, viper.DecodeHook(mapstructure.DecodeHookFunc(decodeDuration()))); errUnmarshal != nil {
		return config, errors.Join(errUnmarshal, ErrFormatConfig)
	}

	config.SteamKey = strings.TrimSpace(config.SteamKey)

	return config, nil
}

func newReader() *viper.Viper {
	reader := viper.New()

	if home, errHomeDir := homedir.Dir(); errHomeDir == nil {
		reader.AddConfigPath(home)
	}

	reader.AddConfigPath(".")
	reader.SetConfigName("steamwebapi")
	reader.SetConfigType("yml")
	reader.SetEnvPrefix("steamwebapi")
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	reader.AutomaticEnv()

	defaultConfig := map[string]any{
		"steam_key":           "",
		"base_url":            webapi.DefaultBaseURL,
		"http.timeout":        webapi.DefaultTimeout.String(),
		"http.user_agent":     webapi.DefaultUserAgent,
		"http.retain_payload": false,
		"http.metrics":        false,
		"logging.level":       string(log.Warn),
		"logging.file":        "",
		"logging.sentry_dsn":  "",
	}

	for configKey, value := range defaultConfig {
		reader.SetDefault(configKey, value)
	}

	return reader
}

// decodeDuration parses duration strings (1s, 1m, 1h) into time.Duration.
func decodeDuration() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, target reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || target != reflect.TypeFor[time.Duration]() {
			return data, nil
		}

		value, _ := data.(string)

		duration, errDuration := time.ParseDuration(value)
		if errDuration != nil {
			return nil, errors.Join(errDuration, fmt.Errorf("%w: %s", ErrDecodeDuration, value))
		}

		return duration, nil
	}
}
