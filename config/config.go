package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Questions Questions
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Questions holds paging behavior for question listings. PageSize is injected
// into the services rather than read as a package-level constant.
type Questions struct {
	PageSize int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("QUESTIONS_PER_PAGE", 10)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Questions.PageSize = viper.GetInt("QUESTIONS_PER_PAGE")

	log.Info().Str("port", config.Server.Port).Int("page_size", config.Questions.PageSize).Msg("Config loaded")
	return &config, nil
}
