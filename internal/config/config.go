package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment. A .env
// file is honored for local runs; real deployments inject the variables
// directly.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	QuotesTable   string
	InvoicesTable string
	ProjectsTable string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	NATSServerURL string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded, using environment")
	}

	return Config{
		Port:               getenv("PORT", "8080"),
		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		QuotesTable:   getenv("QUOTES_TABLE", "quotes"),
		InvoicesTable: getenv("INVOICES_TABLE", "invoices"),
		ProjectsTable: getenv("PROJECTS_TABLE", "projects"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     boolEnv("PAYMENT_GATEWAY_MOCK"),

		NATSServerURL: os.Getenv("NATS_SERVER_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
