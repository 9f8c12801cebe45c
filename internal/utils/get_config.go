package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DatabaseURL string `yaml:"DATABASE_URL"`
	DBUser      string `yaml:"DB_USER"`
	DBName      string `yaml:"DB_NAME"`
	DBPassword  string `yaml:"DB_PASSWORD"`
	DBPort      string `yaml:"DB_PORT"`
	DBHost      string `yaml:"DB_HOST"`

	// HTTP server
	AppPort string `yaml:"APP_PORT"`
}

var config Config

// LoadConfig reads .env (if present) and config.yaml; environment variables
// fill any key the file leaves empty.
func LoadConfig() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	}

	fillFromEnv(&config.DatabaseURL, "DATABASE_URL")
	fillFromEnv(&config.DBUser, "DB_USER")
	fillFromEnv(&config.DBName, "DB_NAME")
	fillFromEnv(&config.DBPassword, "DB_PASSWORD")
	fillFromEnv(&config.DBPort, "DB_PORT")
	fillFromEnv(&config.DBHost, "DB_HOST")
	fillFromEnv(&config.AppPort, "APP_PORT")
}

func fillFromEnv(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

func GetConfig(key string) string {
	switch key {
	case "DATABASE_URL":
		return config.DatabaseURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	default:
		return ""
	}
}
