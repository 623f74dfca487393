package service

import (
	"fmt"
	"os"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Stripe struct {
		SecretKey     string
		WebhookSecret string
	}

	Email struct {
		APIKey   string
		From     string
		FromName string
		OrderBcc string
	}

	Admin struct {
		Username string
		Password string
	}

	Shipping struct {
		EasyPostAPIKey string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/aveline.db"),
	}

	// Stripe
	config.Stripe.SecretKey = getEnv("STRIPE_SECRET_KEY", "")
	config.Stripe.WebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")

	// Email
	config.Email.APIKey = getEnv("SENDGRID_API_KEY", "")
	config.Email.From = getEnv("SENDGRID_FROM_EMAIL", "hello@avelinejewellery.com")
	config.Email.FromName = getEnv("SENDGRID_FROM_NAME", "Aveline Jewellery")
	config.Email.OrderBcc = getEnv("ORDER_BCC_EMAIL", "")

	// Admin
	config.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	config.Admin.Password = getEnv("ADMIN_PASSWORD", "")

	// Shipping
	config.Shipping.EasyPostAPIKey = getEnv("EASYPOST_API_KEY", "")

	if config.Environment == "production" {
		if config.Stripe.SecretKey == "" {
			return nil, fmt.Errorf("STRIPE_SECRET_KEY is required in production")
		}
		if config.Stripe.WebhookSecret == "" {
			return nil, fmt.Errorf("STRIPE_WEBHOOK_SECRET is required in production")
		}
		if config.Admin.Password == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD is required in production")
		}
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
