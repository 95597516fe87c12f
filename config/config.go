package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Base URL injected into links rendered in confirmation emails
	APIBaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Payment provider selection; only "razorpay" is wired today
	PaymentProvider string
	RazorpayKey     string
	RazorpaySecret  string

	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	KafkaBrokers []string
	KafkaTopic   string

	CORSOrigins []string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:" + port
	}

	provider, err := parseProvider(os.Getenv("PAYMENT_PROVIDER"))
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "registration-confirmations"
	}

	return &Config{
		Port:       port,
		APIBaseURL: apiBaseURL,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		PaymentProvider: provider,
		RazorpayKey:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   topic,

		CORSOrigins: splitCSV(os.Getenv("CORS_ORIGINS")),
	}
}

// parseProvider normalizes PAYMENT_PROVIDER. Only razorpay is wired today;
// anything else is a configuration mistake, not a silent fallback.
func parseProvider(s string) (string, error) {
	switch s {
	case "", "razorpay":
		return "razorpay", nil
	default:
		return "", fmt.Errorf("unsupported PAYMENT_PROVIDER %q", s)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
