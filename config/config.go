// Package config wires defaults, environment variables and the optional
// config file into viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"youtube-downloader-web/filesystem"
)

const (
	// Name of the application, used as env prefix and config file name.
	Name = "ytdl"

	// EnvConfigPath overrides the directory the config file is read from.
	EnvConfigPath = "YTDL_CONFIG_PATH"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads ytdl.toml if present.
func Setup() error {
	viper.SetConfigName(Name)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(Name)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, f := range Fields() {
		envs := append([]string{f.Env()}, f.Legacy...)
		if err := viper.BindEnv(append([]string{f.Key}, envs...)...); err != nil {
			return err
		}
	}

	viper.SetTypeByDefaultValue(true)
	for _, f := range Fields() {
		viper.SetDefault(f.Key, f.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Dir is the directory holding the config file.
func Dir() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return custom
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, Name)
}
