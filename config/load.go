package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads configuration from the environment. A .env file is honoured
// when present. Empty DATABASE_PATH / REDIS_ADDR / STRIPE_API_KEY select
// the in-process backends.
func Load() App {
	_ = godotenv.Load()

	cfg := App{
		Port:               getenv("APP_PORT", "8080"),
		Env:                getenv("APP_ENV", "dev"),
		DatabasePath:       os.Getenv("DATABASE_PATH"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		StripeAPIKey:       os.Getenv("STRIPE_API_KEY"),
		PaymentSuccessRate: getfloat("PAYMENT_SUCCESS_RATE", 0.95),
		SimulatedLatency:   time.Duration(getint("SIMULATED_LATENCY_MS", 500)) * time.Millisecond,
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
