package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort         string
	MetricsPort         string
	Environment         string
	PostgreSQLConfig    PostgreSQLConfig
	ImageConfig         ImageConfig
	RetainImageOnUpdate bool
	TracingConfig       TracingConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type ImageConfig struct {
	Dir           string
	SweepInterval time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		ImageConfig: ImageConfig{
			Dir:           os.Getenv("IMAGE_DIR"),
			SweepInterval: parseDuration(os.Getenv("IMAGE_SWEEP_INTERVAL"), time.Hour),
		},
		RetainImageOnUpdate: os.Getenv("RETAIN_IMAGE_ON_UPDATE") == "true",
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.ImageConfig.Dir == "" {
		conf.ImageConfig.Dir = "./public/images"
	}

	return &conf
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
