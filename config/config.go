// Package config loads runtime configuration from TRACKBOARD_* environment
// variables, with an optional config.yaml for local development.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"db"`
	Server struct {
		Addr      string `mapstructure:"addr"`
		SampleCap int    `mapstructure:"sample_cap"`
	} `mapstructure:"server"`
	Sources struct {
		Tracks  string `mapstructure:"tracks"`
		Artists string `mapstructure:"artists"`
	} `mapstructure:"sources"`
	Cache struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"cache"`
}

func Load() *Config {
	viper.SetEnvPrefix("TRACKBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("db.path")
	viper.BindEnv("server.addr")
	viper.BindEnv("server.sample_cap")
	viper.BindEnv("sources.tracks")
	viper.BindEnv("sources.artists")
	viper.BindEnv("cache.dir")

	viper.SetDefault("db.path", "trackboard.db")
	viper.SetDefault("server.addr", ":9999")
	viper.SetDefault("server.sample_cap", 500)
	viper.SetDefault("cache.dir", ".cache")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config error: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("unable to decode config: %v", err)
	}

	return &cfg
}
