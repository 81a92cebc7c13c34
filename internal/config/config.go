package config

import (
	"errors"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"restaurante-api/pkg/logger"
)

func MustInit() {
	// .env is optional; defaults below cover a bare local run.
	_ = godotenv.Load("./.env")

	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/restaurante-api")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("error while reading config file: " + err.Error())
		}
	}

	// PORT wins over the config file, as the original deployment expects.
	if err := viper.BindEnv("server.http.port", "PORT"); err != nil {
		panic("error while binding PORT: " + err.Error())
	}

	SetupLogger()
}

func setDefaults() {
	viper.SetDefault("server.http.port", "3001")
	viper.SetDefault("server.http.cors.allowed_origins", []string{"*"})
	viper.SetDefault("server.http.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("server.http.cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type"})
	viper.SetDefault("server.http.cors.exposed_headers", []string{"Content-Length"})
	viper.SetDefault("server.http.cors.allow_credentials", false)
	viper.SetDefault("server.http.cors.max_age", 300)
	viper.SetDefault("jaeger.endpoint", "http://localhost:14268/api/traces")
}

func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}
