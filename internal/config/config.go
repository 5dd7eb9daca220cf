package config

import "os"

type ClimateServiceConfig struct {
	ServerPort       string
	LogDir           string
	BaselineScenario string
	DefaultCrop      string
}

func New() *ClimateServiceConfig {
	return &ClimateServiceConfig{
		ServerPort:       getEnvOrDefault("SERVER_PORT", "8087"),
		LogDir:           getEnvOrDefault("LOG_DIR", "log/climate_service"),
		BaselineScenario: getEnvOrDefault("BASELINE_SCENARIO", "SSP2-4.5"),
		DefaultCrop:      getEnvOrDefault("DEFAULT_CROP", "Maize"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
