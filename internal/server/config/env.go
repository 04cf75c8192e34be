package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv populates Config fields from environment variables, loading an
// optional .env file first. A missing .env file is not an error; explicit
// environment variables win over file-provided ones because godotenv does
// not overwrite existing values.
//
// Supported variables:
//
//	ADDRESS             HTTP bind address (e.g., ":8080")
//	DATABASE_DSN        PostgreSQL DSN
//	JWT_SECRET          JWT HMAC secret key
//	TOKEN_TTL_MINUTES   access token validity, minutes
//	BCRYPT_COST         bcrypt work factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
}
