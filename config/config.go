package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Log     LogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DatasetConfig struct {
	// Path to the student CSV file. When the file is missing or unreadable
	// the service falls back to the built-in demo dataset.
	Path string
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATASET_PATH", "students_data.csv")
	viper.SetDefault("LOG_LEVEL", "info")

	// A missing .env is fine; environment variables and defaults apply.
	_ = viper.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Dataset: DatasetConfig{
			Path: viper.GetString("DATASET_PATH"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
