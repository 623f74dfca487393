package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// Exports the catalog as CSV for spreadsheets and ad feeds. Usage:
//
//	go run ./scripts/export-products <db-path> [out.csv]
//
// With no output path the CSV goes to stdout.

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: export-products <db-path> [out.csv]")
		os.Exit(1)
	}

	db, err := sql.Open("sqlite3", os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	out := os.Stdout
	if len(os.Args) > 2 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	rows, err := db.Query(`
		SELECT id, name, slug, category, material, price_pence, review_count, is_active
		FROM products ORDER BY category, name`)
	if err != nil {
		log.Fatalf("Failed to query products: %v", err)
	}
	defer rows.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"id", "name", "slug", "category", "material", "price_gbp", "review_count", "active"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	count := 0
	for rows.Next() {
		var id, name, slug, category, material string
		var pricePence, reviewCount, isActive int64
		if err := rows.Scan(&id, &name, &slug, &category, &material, &pricePence, &reviewCount, &isActive); err != nil {
			log.Fatalf("Failed to scan product: %v", err)
		}

		record := []string{
			id, name, slug, category, material,
			fmt.Sprintf("%.2f", float64(pricePence)/100),
			strconv.FormatInt(reviewCount, 10),
			strconv.FormatInt(isActive, 10),
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("Failed to write record: %v", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed reading products: %v", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush CSV: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d products\n", count)
}
