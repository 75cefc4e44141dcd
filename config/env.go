package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env into the environment without overriding
// variables that are already set
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

func (c *Config) applyEnvOverrides() {
	c.Datasets.Unreliable = getEnv("NEWS_UNRELIABLE_DATASET", c.Datasets.Unreliable)
	c.Datasets.Credible = getEnv("NEWS_CREDIBLE_DATASET", c.Datasets.Credible)
	c.Datasets.Validation = getEnv("NEWS_VALIDATION_DATASET", c.Datasets.Validation)
	c.Datasets.Leak = getEnv("NEWS_LEAK_DATASET", c.Datasets.Leak)
	c.Datasets.UnreliableCategory = getEnv("NEWS_UNRELIABLE_CATEGORY", c.Datasets.UnreliableCategory)

	c.Ids.Reproducible = getEnvBool("NEWS_REPRODUCIBLE_IDS", c.Ids.Reproducible)

	c.Output.Dir = getEnv("NEWS_OUTPUT_DIR", c.Output.Dir)
	c.Output.SQLite = getEnv("NEWS_SQLITE_PATH", c.Output.SQLite)

	c.Storage.Path = getEnv("NEWS_STORAGE_PATH", c.Storage.Path)
	c.Storage.Threads = getEnvInt("NEWS_THREADS", c.Storage.Threads)

	c.Logging.Level = getEnv("NEWS_LOG_LEVEL", c.Logging.Level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
