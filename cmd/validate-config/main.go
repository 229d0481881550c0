package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/geniesugar/geniesugar/internal/config"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid.")
	fmt.Printf("  - Server Port: %s\n", cfg.Server.Port)
	fmt.Printf("  - App URL: %s\n", cfg.Server.AppURL)
	fmt.Printf("  - DB Host: %s\n", cfg.DB.Host)
	fmt.Printf("  - DB Port: %s\n", cfg.DB.Port)
	fmt.Printf("  - DB User: %s\n", cfg.DB.User)
	fmt.Printf("  - DB Name: %s\n", cfg.DB.DBName)
	fmt.Printf("  - Redis: %s:%s\n", cfg.Redis.Host, cfg.Redis.Port)
	fmt.Printf("  - SMTP Host: %s\n", valueOrUnset(cfg.SMTP.Host))
	fmt.Printf("  - SMTP From: %s\n", cfg.SMTP.From)
	fmt.Printf("  - Dexcom Client ID: %s\n", maskToken(cfg.Dexcom.ClientID))
	fmt.Printf("  - Token Secret: %s\n", maskToken(cfg.Auth.TokenSecret))
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func valueOrUnset(v string) string {
	if v == "" {
		return "<not set>"
	}
	return v
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
