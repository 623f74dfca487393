package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Seeds plausible customer reviews for the catalog. Usage:
//
//	go run ./scripts/seed-reviews <db-path> [category]
//
// With a category argument only that category's products are seeded.

const (
	minReviewsPerProduct = 2
	maxReviewsPerProduct = 8
)

var reviewTitles = []string{
	"Absolutely beautiful",
	"Even better in person",
	"Perfect gift",
	"Stunning quality",
	"My new favourite",
	"Exceeded expectations",
	"Lovely craftsmanship",
	"Wear it every day",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed-reviews <db-path> [category]")
		os.Exit(1)
	}
	dbPath := os.Args[1]

	var category string
	if len(os.Args) > 2 {
		category = os.Args[2]
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	productIDs, err := loadProductIDs(db, category)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	if len(productIDs) == 0 {
		log.Fatal("No matching products found. Seed products first.")
	}

	fmt.Printf("Seeding reviews for %d products...\n", len(productIDs))

	total := 0
	for _, productID := range productIDs {
		count := minReviewsPerProduct + rand.Intn(maxReviewsPerProduct-minReviewsPerProduct+1)
		for i := 0; i < count; i++ {
			if err := insertReview(db, productID); err != nil {
				log.Fatalf("Failed to insert review for %s: %v", productID, err)
			}
		}

		_, err := db.Exec(
			"UPDATE products SET review_count = review_count + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			count, productID,
		)
		if err != nil {
			log.Fatalf("Failed to update review count for %s: %v", productID, err)
		}
		total += count
	}

	fmt.Printf("Done: %d reviews across %d products\n", total, len(productIDs))
}

func loadProductIDs(db *sql.DB, category string) ([]string, error) {
	query := "SELECT id FROM products WHERE is_active = 1"
	args := []any{}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertReview(db *sql.DB, productID string) error {
	name := gofakeit.FirstName() + " " + string(gofakeit.LastName()[0]) + "."
	comment := gofakeit.Sentence(8 + rand.Intn(12))

	_, err := db.Exec(`
		INSERT INTO reviews (id, product_id, rating, title, comment, reviewer_name, reviewer_email, images, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL, datetime('now', ?))`,
		uuid.New().String(),
		productID,
		pickRating(),
		reviewTitles[rand.Intn(len(reviewTitles))],
		strings.TrimSpace(comment),
		name,
		gofakeit.Email(),
		fmt.Sprintf("-%d days", rand.Intn(180)),
	)
	return err
}

// pickRating skews positive the way real jewelry reviews do: mostly fives,
// some fours, the occasional three.
func pickRating() int {
	switch n := rand.Intn(100); {
	case n < 80:
		return 5
	case n < 95:
		return 4
	default:
		return 3
	}
}
