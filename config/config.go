package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"port"`
	DataDir   string `mapstructure:"data_dir"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("data_dir", "data")

	// Read config file; a missing file is fine, defaults + env apply
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Bind environment variables
	v.BindEnv("JWT_SECRET")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
