package main

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const defaultBaseURL = "https://duffin-blogs.yeems214.xyz/api"

type Config struct {
	BaseURL         string `mapstructure:"BLOG_API_BASE_URL"`
	CredentialsFile string `mapstructure:"BLOG_CREDENTIALS_FILE"`
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetDefault("BLOG_API_BASE_URL", defaultBaseURL)
	v.SetDefault("BLOG_CREDENTIALS_FILE", "")
	v.AutomaticEnv()

	// A missing .env just means defaults plus environment variables.
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
