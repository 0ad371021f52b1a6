package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	BackendGollm  = "gollm"
	BackendOpenAI = "openai"
)

type Config struct {
	Provider      string `env:"STORYSHAPE_PROVIDER" envDefault:"openai" validate:"required"`
	Model         string `env:"STORYSHAPE_MODEL" envDefault:"gpt-4o-mini" validate:"required"`
	APIKey        string `env:"STORYSHAPE_API_KEY"`
	Backend       string `env:"STORYSHAPE_REVIEW_BACKEND" envDefault:"gollm" validate:"oneof=gollm openai"`
	OpenAIBaseURL string `env:"STORYSHAPE_OPENAI_BASE_URL"`
	MaxRetries    int    `env:"STORYSHAPE_MAX_RETRIES" envDefault:"3" validate:"min=0"`
	MaxTokens     int    `env:"STORYSHAPE_MAX_TOKENS" envDefault:"4096" validate:"min=1"`
	OutputDir     string `env:"STORYSHAPE_OUTPUT_DIR" envDefault:"."`
}

// InitViper points viper at app.env in the current directory, then the
// user's home directory. A missing file is not an error.
func InitViper() {
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err != nil {
		log.Println("Error getting user home directory:", err)
	} else {
		viper.AddConfigPath(home)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found in current directory or home directory")
		} else {
			log.Println("Error reading config file:", err)
		}
	}
}

// Load builds the config from whatever viper has read. Process environment
// wins over values from the config file.
func Load() (Config, error) {
	values := make(map[string]string)
	for _, key := range viper.AllKeys() {
		values[strings.ToUpper(key)] = viper.GetString(key)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			values[k] = v
		}
	}
	return Parse(values)
}

// Parse reads the config from a plain key/value map.
func Parse(values map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: values}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
