package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Seeds the starter jewelry catalog. Usage:
//
//	go run ./scripts/seed-products <db-path>
//
// Existing products are left alone; rows are matched by slug.

type seedProduct struct {
	Name        string
	Category    string
	Material    string
	PricePence  int64
	Description string
	SizeOptions []string
}

var catalog = []seedProduct{
	{"Luna Pendant", "necklaces", "sterling-silver", 4500, "A crescent moon pendant on an 18-inch chain.", nil},
	{"Orbit Necklace", "necklaces", "gold-vermeil", 6800, "Interlocking circles on a fine trace chain.", nil},
	{"Seafoam Drop Necklace", "necklaces", "sterling-silver", 5400, "Sea glass teardrop with a hammered silver bail.", nil},
	{"Stacking Ring", "rings", "sterling-silver", 2950, "A slim hammered band made for stacking.", []string{"J", "L", "N", "P", "R"}},
	{"Ember Signet Ring", "rings", "gold-vermeil", 7200, "A classic oval signet with a brushed finish.", []string{"L", "N", "P", "R", "T"}},
	{"Tidal Band", "rings", "recycled-gold", 12400, "A wave-textured band in 9ct recycled gold.", []string{"J", "L", "N", "P"}},
	{"Dune Hoops", "earrings", "gold-vermeil", 3800, "Small textured hoops for everyday wear.", nil},
	{"Pebble Studs", "earrings", "sterling-silver", 2400, "Organic pebble-shaped studs, sold as a pair.", nil},
	{"Cascade Drops", "earrings", "sterling-silver", 4600, "Three graduated bars that move as you do.", nil},
	{"Meridian Bangle", "bracelets", "sterling-silver", 5800, "A solid oval bangle with a flat polished face.", nil},
	{"Harbor Chain Bracelet", "bracelets", "gold-vermeil", 4900, "A fine curb chain with a toggle clasp.", nil},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed-products <db-path>")
		os.Exit(1)
	}

	db, err := sql.Open("sqlite3", os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	created := 0
	for _, p := range catalog {
		slug := slugify(p.Name)

		var exists int
		if err := db.QueryRow("SELECT COUNT(*) FROM products WHERE slug = ?", slug).Scan(&exists); err != nil {
			log.Fatalf("Failed to check product %s: %v", slug, err)
		}
		if exists > 0 {
			continue
		}

		var sizeOptions sql.NullString
		if len(p.SizeOptions) > 0 {
			raw, err := json.Marshal(p.SizeOptions)
			if err != nil {
				log.Fatalf("Failed to encode size options for %s: %v", slug, err)
			}
			sizeOptions = sql.NullString{String: string(raw), Valid: true}
		}

		_, err := db.Exec(`
			INSERT INTO products (id, name, slug, description, category, material, price_pence, image_url, size_options)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			p.Name,
			slug,
			p.Description,
			p.Category,
			p.Material,
			p.PricePence,
			"/images/products/"+slug+".jpg",
			sizeOptions,
		)
		if err != nil {
			log.Fatalf("Failed to insert product %s: %v", slug, err)
		}
		created++
	}

	fmt.Printf("Done: %d products created, %d already present\n", created, len(catalog)-created)
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
