package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort        string
	APIAppName     string
	APIDebugMode   bool
	APIAccessToken string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	LogLevel      string
	LogFolderPath string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:        getEnv("API_PORT", "8080"),
		APIAppName:     getEnv("API_INSTANCE_APP_NAME", "user_api"),
		APIDebugMode:   getEnvAsBool("API_DEBUG_MODE", false),
		APIAccessToken: getEnv("API_X_API_TOKEN", "secret"),
		DBHost:         getEnv("POSTGRESQL_HOST", "localhost"),
		DBPort:         getEnv("POSTGRESQL_PORT", "5432"),
		DBUser:         getEnv("POSTGRESQL_USER", "postgres"),
		DBPassword:     getEnv("POSTGRESQL_PASSWORD", "postgres"),
		DBName:         getEnv("POSTGRESQL_DATABASE_NAME", "user_api_db"),
		DBSslMode:      getEnv("POSTGRESQL_SSL_MODE", "disable"),
		LogLevel:       getEnv("LOGGING_LEVEL", "debug"),
		LogFolderPath:  getEnv("LOGGING_FOLDER_PATH", "./logs"),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
