package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string

	ServerPort string

	// Session lifetimes in seconds. SessionMaxAge applies to normal logins,
	// RememberMaxAge when the user checks "remember me".
	SessionMaxAge  int
	RememberMaxAge int

	LogLevel string

	// Login/registration throttling, per client IP.
	LoginRatePerMin int
	LoginBurst      int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "buddystream.db"
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	sessionMaxAge, err := strconv.Atoi(os.Getenv("SESSION_MAX_AGE"))
	if err != nil || sessionMaxAge <= 0 {
		sessionMaxAge = 86400 // 1 day
	}

	rememberMaxAge, err := strconv.Atoi(os.Getenv("REMEMBER_MAX_AGE"))
	if err != nil || rememberMaxAge <= 0 {
		rememberMaxAge = 2592000 // 30 days
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	loginRate, err := strconv.Atoi(os.Getenv("LOGIN_RATE_PER_MIN"))
	if err != nil || loginRate <= 0 {
		loginRate = 10
	}

	loginBurst, err := strconv.Atoi(os.Getenv("LOGIN_BURST"))
	if err != nil || loginBurst <= 0 {
		loginBurst = 10
	}

	return &Config{
		DatabasePath: databasePath,

		ServerPort: serverPort,

		SessionMaxAge:  sessionMaxAge,
		RememberMaxAge: rememberMaxAge,

		LogLevel: logLevel,

		LoginRatePerMin: loginRate,
		LoginBurst:      loginBurst,
	}, nil
}
