package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPendingOrdersFile   = "orders.json"
	defaultFulfilledOrdersFile = "output_orders.json"
)

// Config holds the runtime settings: the paths of the two flat files that
// back the pending collection and the fulfilled log.
type Config struct {
	PendingOrdersFile   string
	FulfilledOrdersFile string
}

// getConfig reads settings from the environment, optionally seeded from a
// .env file in the working directory. Every value has a default, so the tool
// runs with zero setup.
func getConfig() Config {
	// The .env file is optional; already-set environment variables win.
	_ = godotenv.Load(".env")

	return Config{
		PendingOrdersFile:   envOrDefault("PENDING_ORDERS_FILE", defaultPendingOrdersFile),
		FulfilledOrdersFile: envOrDefault("FULFILLED_ORDERS_FILE", defaultFulfilledOrdersFile),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
