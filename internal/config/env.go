package config

import (
	"fmt"
	"os"
)

// Config is built once at startup and passed by reference to every component
// that needs it. Nothing reads the environment after boot.
type Config struct {
	AppEnv      string
	AppPort     string
	JWTSecret   string
	MongoURI    string
	MongoDBName string
}

func LoadEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:      os.Getenv("APP_ENV"),
		AppPort:     os.Getenv("APP_PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: os.Getenv("MONGO_DB_NAME"),
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	required := map[string]string{
		"JWT_SECRET":    cfg.JWTSecret,
		"MONGO_URI":     cfg.MongoURI,
		"MONGO_DB_NAME": cfg.MongoDBName,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("required environment variable %s is not set", name)
		}
	}

	return cfg, nil
}
