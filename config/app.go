package config

import "time"

type App struct {
	Port               string        `env:"APP_PORT" default:"8080"`
	Env                string        `env:"APP_ENV" default:"dev"`
	DatabasePath       string        `env:"DATABASE_PATH"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	StripeAPIKey       string        `env:"STRIPE_API_KEY"`
	PaymentSuccessRate float64       `env:"PAYMENT_SUCCESS_RATE" default:"0.95"`
	SimulatedLatency   time.Duration `env:"SIMULATED_LATENCY_MS" default:"500"`
}
