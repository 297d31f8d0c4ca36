package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultDBPath = "app.db"

// LoadEnvVars loads variables from a .env file if one is present.
// A missing file is not an error; the process environment still applies.
func LoadEnvVars() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// DBPath returns the SQLite database file path.
func DBPath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	return defaultDBPath
}

// ServerAddr returns the listen address for the HTTP server, or empty
// to let the framework pick its default.
func ServerAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ""
}
