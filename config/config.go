package config

import (
	"os"
	"strings"
)

// Config carries everything the service reads from the environment. Defaults
// match the property this prototype was built for.
type Config struct {
	Port           string
	PropertyName   string
	WhatsAppNumber string
	PaymentNumber  string
	StorageDriver  string // "mysql" or "memory"
}

func Load() *Config {
	return &Config{
		Port:           EnvOrDefault("PORT", "8080"),
		PropertyName:   EnvOrDefault("PROPERTY_NAME", "Hospedaje Plaza"),
		WhatsAppNumber: EnvOrDefault("WHATSAPP_NUMBER", "51927137867"),
		PaymentNumber:  EnvOrDefault("PAYMENT_NUMBER", "927137867"),
		StorageDriver:  EnvOrDefault("STORAGE_DRIVER", "mysql"),
	}
}

// EnvOrDefault returns the trimmed env value or the fallback default.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
