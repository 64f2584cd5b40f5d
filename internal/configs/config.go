package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the backend connection; overridable via environment.
const (
	DefaultBaseURL        = "https://dwarkesh-be.onrender.com"
	DefaultTimeoutSeconds = 10
	DefaultLogFile        = "dwarkesh-admin.log"
	DefaultLogLevel       = "info"
)

// APIConfig holds the backend connection settings.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// LogConfig holds the log sink settings.
type LogConfig struct {
	File  string
	Level string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	API APIConfig
	Log LogConfig
}

// LoadConfig loads configuration from the environment, optionally seeded from
// a .env file. A missing .env file is not an error: every setting has a
// default.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (path: %v): %v\n", envPath, err)
	}

	cfg := &AppConfig{}
	cfg.API.BaseURL = getEnvAsString("DWARKESH_API_BASE_URL", DefaultBaseURL)
	cfg.API.TimeoutSeconds = getEnvAsInt("DWARKESH_API_TIMEOUT_SECONDS", DefaultTimeoutSeconds)
	cfg.Log.File = getEnvAsString("DWARKESH_LOG_FILE", DefaultLogFile)
	cfg.Log.Level = getEnvAsString("DWARKESH_LOG_LEVEL", DefaultLogLevel)

	return cfg, nil
}

// getEnvAsString reads an environment variable or returns the default.
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int or returns the default.
// Logs a warning when the variable exists but cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}
