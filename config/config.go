package config

import (
	"os"
	"strings"
)

type Config struct {
	POSPort         string
	LoggerPort      string
	SessionSecret   string
	SpreadsheetID   string
	CredentialsFile string
	CredentialsJSON string
	ProductsSheet   string
	OrdersSheet     string
	SalesFile       string
	TemplatesGlob   string
}

func LoadConfig() *Config {
	return &Config{
		POSPort:         getEnv("POS_PORT", "8080"),
		LoggerPort:      getEnv("LOGGER_PORT", "8081"),
		SessionSecret:   getEnvFromFile("SESSION_SECRET_FILE", "SESSION_SECRET", "dev-only-secret"),
		SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS", "credentials.json"),
		CredentialsJSON: getEnvFromFile("GOOGLE_CREDENTIALS_FILE", "GOOGLE_CREDENTIALS_JSON", ""),
		ProductsSheet:   getEnv("PRODUCTS_SHEET", "products"),
		OrdersSheet:     getEnv("ORDERS_SHEET", "orders"),
		SalesFile:       getEnv("SALES_FILE", "sales.csv"),
		TemplatesGlob:   getEnv("TEMPLATES_GLOB", "templates/*.html"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}
