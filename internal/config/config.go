// Package config resolves settings from defaults, an optional config
// file, and SUDOKULOGIC_* environment variables, in rising precedence.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	ArchivePath string
	LogLevel    string
	ImageOut    string
}

// Load reads sudokulogic.yaml from the working directory when present;
// a missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("archive-path", "sudokulogic.db")
	v.SetDefault("log-level", "info")
	v.SetDefault("image-out", "")

	v.SetEnvPrefix("sudokulogic")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("sudokulogic")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Addr:        v.GetString("addr"),
		ArchivePath: v.GetString("archive-path"),
		LogLevel:    v.GetString("log-level"),
		ImageOut:    v.GetString("image-out"),
	}, nil
}
