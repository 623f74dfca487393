package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Pre-deploy sanity check: required environment variables are set, the
// database opens, and the schema contains the expected tables. Exits 1 on
// the first failure so CI can gate the deploy on it.

var requiredEnv = []string{
	"STRIPE_SECRET_KEY",
	"STRIPE_WEBHOOK_SECRET",
	"SENDGRID_API_KEY",
	"SENDGRID_FROM_EMAIL",
	"ADMIN_PASSWORD",
	"BASE_URL",
}

var requiredTables = []string{
	"products",
	"checkout_attempts",
	"orders",
	"reviews",
	"subscriptions",
	"contact_form_submissions",
	"search_logs",
}

func main() {
	failures := 0

	for _, key := range requiredEnv {
		if os.Getenv(key) == "" {
			fmt.Printf("FAIL  env %s is not set\n", key)
			failures++
		} else {
			fmt.Printf("ok    env %s\n", key)
		}
	}

	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" && strings.HasPrefix(key, "sk_test_") {
		fmt.Println("WARN  STRIPE_SECRET_KEY is a test key")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/aveline.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Printf("FAIL  open database %s: %v\n", dbPath, err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("FAIL  ping database %s: %v\n", dbPath, err)
		os.Exit(1)
	}
	fmt.Printf("ok    database %s\n", dbPath)

	for _, table := range requiredTables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			fmt.Printf("FAIL  table %s missing\n", table)
			failures++
			continue
		}
		fmt.Printf("ok    table %s\n", table)
	}

	if failures > 0 {
		fmt.Printf("\n%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nAll checks passed")
}
