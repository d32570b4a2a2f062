package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rangevault/rangevault/internal/app"
	"github.com/rangevault/rangevault/internal/auth"
	"github.com/rangevault/rangevault/internal/logger"
)

var (
	version = "dev"
)

// envOr returns the environment variable value or a fallback
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	// Optional .env file; flags still win over environment
	_ = godotenv.Load()

	port := flag.Int("port", envIntOr("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envOr("DB_PATH", "rangevault.db"), "SQLite database path")
	jwtSecret := flag.String("jwt-secret", envOr("JWT_SECRET", ""), "JWT signing secret (auto-generated if not set)")
	baseURL := flag.String("base-url", envOr("BASE_URL", ""), "Public base URL for QR deep links (detected if not set)")
	logLevel := flag.String("loglevel", envOr("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `RangeVault - Pre-flop Range Library

Usage:
  rangevault [options]

Options:
  -port int        HTTP server port (default 8080)
  -db string       SQLite database path (default "rangevault.db")
  -jwt-secret str  JWT signing secret (auto-generated if not set)
  -base-url str    Public base URL for QR deep links (detected if not set)
  -loglevel str    Log level: debug, info, warn, error (default "info")
  -version         Show version and exit
  -help            Show this help message

Each option can also be set via environment or a .env file
(PORT, DB_PATH, JWT_SECRET, BASE_URL, LOG_LEVEL).

Examples:
  rangevault                           # Run on port 8080 with rangevault.db
  rangevault -port 80 -db prod.db      # Production example
  rangevault -jwt-secret "$SECRET"     # Pin the signing secret across restarts

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("rangevault %s\n", version)
		os.Exit(0)
	}

	secret := *jwtSecret
	if secret == "" {
		secret = auth.GenerateSecret()
		// Tokens issued with a generated secret die with the process
		fmt.Fprintln(os.Stderr, "JWT secret not set; generated an ephemeral one")
	}
	tokenAuth := auth.New(secret)

	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	addr := fmt.Sprintf(":%d", *port)
	a, err := app.New(appLog, app.Config{DBPath: *dbPath, BaseURL: *baseURL}, tokenAuth, addr)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	if err := a.Run(addr); err != nil {
		log.Fatal(err)
	}
}
