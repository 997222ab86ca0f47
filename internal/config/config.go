// config.go
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string

	AuthServiceURL string
	RabbitURL      string

	RedisAddr     string
	RedisUsername string
	RedisPassword string

	PaymentGatewayURL string
	PaymentSecretKey  string

	MailRelayURL string
	MailRelayKey string

	AllowedOrigins []string
}

func Load() *Config {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "5000"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:       getEnv("MONGO_DB_NAME", "localmarketDB"),
		AuthServiceURL:    getEnv("AUTH_SERVICE_URL", "http://localhost:3000"),
		RabbitURL:         getEnv("RABBIT_URL", "amqp://localhost"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisUsername:     getEnv("REDIS_USERNAME", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		PaymentGatewayURL: getEnv("PAYMENT_GATEWAY_URL", "https://api.stripe.com"),
		PaymentSecretKey:  getEnv("PAYMENT_SECRET_KEY", ""),
		MailRelayURL:      getEnv("MAIL_RELAY_URL", ""),
		MailRelayKey:      getEnv("MAIL_RELAY_KEY", ""),
		AllowedOrigins:    splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
