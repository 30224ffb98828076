package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend selectors
const (
	StorageDynamo = "dynamo"
	StorageMemory = "memory"
)

type Config struct {
	Port           string
	StorageBackend string // "dynamo" for DynamoDB, "memory" for the in-process store

	AWSRegion        string
	AWSProfile       string
	UsersTable       string
	RestaurantsTable string
	PromosTable      string

	RedisURL    string // optional; empty disables the promo cache
	FrontendURL string // base URL embedded in promo QR codes

	JWTSecret   string // Secret key for JWT token signing
	JWTIssuer   string
	JWTTTL      int // JWT token expiration time in hours

	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for the auth endpoint (stricter)
	RateLimitAuthBurst int     // Burst size for the auth endpoint
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", StorageDynamo),

		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		AWSProfile:       getEnv("AWS_PROFILE", ""),
		UsersTable:       getEnv("USERS_TABLE", "valefood-users"),
		RestaurantsTable: getEnv("RESTAURANTS_TABLE", "valefood-restaurants"),
		PromosTable:      getEnv("PROMOS_TABLE", "valefood-promos"),

		RedisURL:    getEnv("REDIS_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "valefood-auth"),
		JWTTTL:    getEnvInt("JWT_TTL_HOURS", 24),

		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
